package game

import (
	"github.com/olaugh/magpie-retro-sub001/board"
	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

type BackupMode int

const (
	// NoBackup never performs game backups. It can be used for autoplay
	// that takes back nothing.
	NoBackup BackupMode = iota
	// SimulationMode keeps a stack of game snapshots so that moves can
	// be played and unplayed during lookahead.
	SimulationMode
	// InteractiveGameplayMode keeps just one backup after every turn,
	// enough to take back the last play at a prompt.
	InteractiveGameplayMode
)

// stateBackup is the subset of Game that a play mutates. The board copy
// carries the cross sets and anchors, so restoring it restores the
// generator's caches too.
type stateBackup struct {
	board          *board.GameBoard
	bag            *tilemapping.Bag
	playing        PlayState
	scorelessTurns int
	onturn         int
	turnnum        int
	players        playerStates
}

func (g *Game) SetBackupMode(m BackupMode) {
	g.backupMode = m
}

func (g *Game) backupState() {
	if g.backupMode == InteractiveGameplayMode {
		g.stackPtr = 0
	}
	st := g.stateStack[g.stackPtr]
	st.board.CopyFrom(g.board)
	st.bag.CopyFrom(g.bag)
	st.playing = g.playing
	st.scorelessTurns = g.scorelessTurns
	st.players.copyFrom(g.players)
	if g.backupMode == SimulationMode {
		st.onturn = g.onturn
		st.turnnum = g.turnnum
		g.stackPtr++
	}
}

func copyPlayers(ps playerStates) playerStates {
	p := make([]*playerState, len(ps))
	for idx, porig := range ps {
		p[idx] = &playerState{
			nickname:        porig.nickname,
			points:          porig.points,
			bingos:          porig.bingos,
			turns:           porig.turns,
			rack:            porig.rack.Copy(),
			placeholderRack: make([]tilemapping.MachineLetter, RackTileLimit),
		}
	}
	return p
}

func (ps *playerStates) copyFrom(other playerStates) {
	for idx := range other {
		(*ps)[idx].rack.CopyFrom(other[idx].rack)
		(*ps)[idx].nickname = other[idx].nickname
		(*ps)[idx].points = other[idx].points
		(*ps)[idx].bingos = other[idx].bingos
		(*ps)[idx].turns = other[idx].turns
	}
}

// SetStateStackLength preallocates the snapshot stack so that backups
// during play never allocate.
func (g *Game) SetStateStackLength(length int) {
	g.stateStack = make([]*stateBackup, length)
	for idx := range g.stateStack {
		g.stateStack[idx] = &stateBackup{
			board:          g.board.Copy(),
			bag:            g.bag.Copy(),
			playing:        g.playing,
			scorelessTurns: g.scorelessTurns,
			players:        copyPlayers(g.players),
		}
	}
}

// UnplayLastMove restores the state from before the last PlayMove. The
// game must be in a backup mode.
func (g *Game) UnplayLastMove() {
	var b *stateBackup
	if g.backupMode == SimulationMode {
		b = g.stateStack[g.stackPtr-1]
		g.stackPtr--
		// Turn number and player on turn advance deterministically, so
		// they just step back rather than restore.
		g.turnnum--
		g.onturn = (g.onturn + (len(g.players) - 1)) % len(g.players)
	} else {
		b = g.stateStack[0]
	}

	g.board.CopyFrom(b.board)
	g.bag.CopyFrom(b.bag)
	g.playing = b.playing
	g.players.copyFrom(b.players)
	g.scorelessTurns = b.scorelessTurns
}

// ResetToFirstState unplays all the moves on the stack at once.
func (g *Game) ResetToFirstState() {
	b := g.stateStack[0]
	g.onturn = b.onturn
	g.turnnum = b.turnnum
	g.stackPtr = 0

	g.board.CopyFrom(b.board)
	g.bag.CopyFrom(b.bag)
	g.playing = b.playing
	g.players.copyFrom(b.players)
	g.scorelessTurns = b.scorelessTurns
}

// Copy creates a deep copy of the game. The lexicon and alphabet are
// shared; they never change during play.
func (g *Game) Copy() *Game {
	c := &Game{
		lexicon:            g.lexicon,
		alph:               g.alph,
		board:              g.board.Copy(),
		letterDistribution: g.letterDistribution,
		bag:                g.bag.Copy(),
		playing:            g.playing,
		wentfirst:          g.wentfirst,
		scorelessTurns:     g.scorelessTurns,
		onturn:             g.onturn,
		turnnum:            g.turnnum,
		players:            copyPlayers(g.players),
		backupMode:         g.backupMode,
	}
	c.SetStateStackLength(len(g.stateStack))
	return c
}
