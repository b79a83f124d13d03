// Package game encapsulates the main mechanics for a crossword game:
// dealing tiles, validating and playing moves, taking them back, and
// end-of-game accounting.
package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/olaugh/magpie-retro-sub001/board"
	"github.com/olaugh/magpie-retro-sub001/kwg"
	"github.com/olaugh/magpie-retro-sub001/move"
	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

const (
	// ExchangeLimit is the minimum number of tiles that must remain in
	// the bag for an exchange to be allowed.
	ExchangeLimit = 7
	RackTileLimit = 7
	// MaxScorelessTurns ends the game: three passes (or other scoreless
	// turns) in a row by each player.
	MaxScorelessTurns = 6
)

type PlayState int

const (
	StatePlaying PlayState = iota
	StateGameOver
)

// Game controls the business logic of a two-player game: drawing,
// making moves, score and turn bookkeeping. It doesn't care how it is
// played; automatic players and the shell both drive it from outside.
type Game struct {
	lexicon *kwg.KWG
	alph    *tilemapping.TileMapping

	board              *board.GameBoard
	letterDistribution *tilemapping.LetterDistribution
	bag                *tilemapping.Bag

	playing PlayState

	wentfirst      int
	scorelessTurns int
	onturn         int
	turnnum        int
	players        playerStates

	lastWordsFormed []tilemapping.MachineWord

	backupMode BackupMode
	stateStack []*stateBackup
	stackPtr   int
}

// NewGame instantiates a brand new game with the given rules. Call
// StartGame to deal tiles and begin.
func NewGame(rules *GameRules, playerNames []string) (*Game, error) {
	if len(playerNames) != 2 {
		return nil, errors.New("only two-player games are supported")
	}
	g := &Game{
		lexicon:            rules.Lexicon(),
		alph:               rules.Lexicon().GetAlphabet(),
		letterDistribution: rules.LetterDistribution(),
		board:              rules.Board().Copy(),
		backupMode:         NoBackup,
	}
	g.players = make(playerStates, len(playerNames))
	for idx, name := range playerNames {
		g.players[idx] = newPlayerState(name)
		g.players[idx].rack = tilemapping.NewRack(g.alph)
	}
	return g, nil
}

// StartGame clears the board, fills and shuffles the bag, and deals
// tiles to both players. The player who goes first is chosen at random.
func (g *Game) StartGame() {
	g.board.Clear()
	g.bag = g.letterDistribution.MakeBag()

	goesfirst := frand.Intn(2)
	for i := range g.players {
		n := g.bag.DrawAtMost(RackTileLimit, g.players[i].placeholderRack)
		g.players[i].rack.Set(g.players[i].placeholderRack[:n])
		g.players[i].resetScore()
	}
	g.playing = StatePlaying
	g.scorelessTurns = 0
	g.turnnum = 0
	g.onturn = goesfirst
	g.wentfirst = goesfirst
}

// ValidateMove validates the given move against the game rules and the
// current state. For a tile play it returns the words formed; the words
// are checked against the lexicon (void challenge rule).
func (g *Game) ValidateMove(m *move.Move) ([]tilemapping.MachineWord, error) {
	if g.playing == StateGameOver {
		return nil, errors.New("cannot play a move on a game that is over")
	}
	switch m.Action() {
	case move.MoveTypeExchange:
		if g.bag.TilesRemaining() < ExchangeLimit {
			return nil, fmt.Errorf("not allowed to exchange with fewer than %d tiles in the bag",
				ExchangeLimit)
		}
		// Leave implicitly checks that the exchanged tiles are on the rack.
		_, err := tilemapping.Leave(g.players[g.onturn].rack.TilesOn(), m.Tiles(), true)
		if err != nil {
			return nil, err
		}
		return nil, nil
	case move.MoveTypePass:
		return nil, nil
	case move.MoveTypePlay:
		return g.validateTilePlayMove(m)
	default:
		return nil, fmt.Errorf("move type %v is not user-inputtable", m.Action())
	}
}

func (g *Game) validateTilePlayMove(m *move.Move) ([]tilemapping.MachineWord, error) {
	if m.TilesPlayed() > RackTileLimit {
		return nil, errors.New("your play contained too many tiles")
	}
	_, err := tilemapping.Leave(g.players[g.onturn].rack.TilesOn(), m.Tiles(), false)
	if err != nil {
		return nil, err
	}

	row, col, vert := m.CoordsAndVertical()
	err = g.board.ErrorIfIllegalPlay(row, col, vert, m.Tiles())
	if err != nil {
		return nil, err
	}

	formedWords, err := g.board.FormedWords(m)
	if err != nil {
		return nil, err
	}
	illegalWords := g.validateWords(formedWords)
	if len(illegalWords) > 0 {
		return nil, fmt.Errorf("the play contained illegal words: %v",
			strings.Join(illegalWords, ", "))
	}
	return formedWords, nil
}

func (g *Game) validateWords(words []tilemapping.MachineWord) []string {
	var illegalWords []string
	for _, word := range words {
		if !kwg.FindMachineWord(g.lexicon, word) {
			illegalWords = append(illegalWords, word.UserVisible(g.alph))
		}
	}
	return illegalWords
}

func (g *Game) endOfGameCalcs(onturn int) {
	unplayedPts := g.calculateRackPts(otherPlayer(onturn)) * 2
	log.Debug().Int("onturn", onturn).Int("unplayedpts", unplayedPts).
		Msg("end-of-game-calcs")
	g.players[onturn].points += unplayedPts
}

// drawReplacement refills the rack of the player on turn with the leave
// plus up to numPlayed fresh tiles from the bag.
func (g *Game) drawReplacement(numPlayed int, leave tilemapping.MachineWord) {
	p := g.players[g.onturn]
	n := copy(p.placeholderRack, leave)
	drawn := g.bag.DrawAtMost(numPlayed, p.placeholderRack[n:])
	p.rack.Set(p.placeholderRack[:n+drawn])
}

// PlayMove plays a move on the board, draws replacement tiles, and
// advances the turn. If validate is true the move is validated first
// and rejected plays leave the game untouched. When a backup mode is
// set, the prior state is snapshotted so UnplayLastMove can restore it.
func (g *Game) PlayMove(m *move.Move, validate bool) error {
	if validate {
		wordsFormed, err := g.ValidateMove(m)
		if err != nil {
			return err
		}
		g.lastWordsFormed = wordsFormed
	}
	if g.backupMode != NoBackup {
		g.backupState()
	}

	switch m.Action() {
	case move.MoveTypePlay:
		g.board.PlayMove(m, g.lexicon, g.letterDistribution)
		score := m.Score()
		if score != 0 {
			g.scorelessTurns = 0
		}
		g.players[g.onturn].points += score
		if m.TilesPlayed() == RackTileLimit {
			g.players[g.onturn].bingos++
		}
		g.drawReplacement(m.TilesPlayed(), m.Leave())

		if g.players[g.onturn].rack.NumTiles() == 0 {
			g.playing = StateGameOver
			g.endOfGameCalcs(g.onturn)
		}

	case move.MoveTypePass:
		g.scorelessTurns++

	case move.MoveTypeExchange:
		p := g.players[g.onturn]
		n := copy(p.placeholderRack, m.Leave())
		err := g.bag.Exchange(m.Tiles(), p.placeholderRack[n:n+len(m.Tiles())])
		if err != nil {
			return err
		}
		p.rack.Set(p.placeholderRack[:n+len(m.Tiles())])
		g.scorelessTurns++

	default:
		return fmt.Errorf("cannot play a move of type %v", m.Action())
	}

	g.handleConsecutiveScorelessTurns()

	g.players[g.onturn].turns++
	g.onturn = (g.onturn + 1) % len(g.players)
	g.turnnum++
	return nil
}

func (g *Game) handleConsecutiveScorelessTurns() {
	if g.scorelessTurns < MaxScorelessTurns {
		return
	}
	log.Debug().Msg("game ended after six scoreless turns")
	g.playing = StateGameOver
	// Both players lose the value of their racks.
	for idx := range g.players {
		g.players[idx].points -= g.calculateRackPts(idx)
	}
}

// PlayScoringMove plays a move described by coordinates and word only,
// using the rack of the player on turn. It returns the scored move.
func (g *Game) PlayScoringMove(coords, word string, validate bool) (*move.Move, error) {
	rack := g.RackFor(g.onturn).String()
	m, err := g.CreateAndScorePlacementMove(coords, word, rack)
	if err != nil {
		return nil, err
	}
	err = g.PlayMove(m, validate)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// CreateAndScorePlacementMove creates a scored move from coordinates and
// user-visible tiles. Letters in the word that are already on the board
// become play-through markers.
func (g *Game) CreateAndScorePlacementMove(coords string, tiles string, rack string) (*move.Move, error) {
	row, col, vertical := move.FromBoardGameCoords(coords)

	mw, err := tilemapping.ToMachineWord(tiles, g.alph)
	if err != nil {
		return nil, err
	}
	rackmw, err := tilemapping.ToMachineWord(rack, g.alph)
	if err != nil {
		return nil, err
	}

	err = modifyForPlaythrough(mw, g.board, vertical, row, col)
	if err != nil {
		return nil, err
	}

	leavemw, err := tilemapping.Leave(rackmw, mw, false)
	if err != nil {
		return nil, err
	}
	err = g.board.ErrorIfIllegalPlay(row, col, vertical, mw)
	if err != nil {
		return nil, err
	}

	tilesPlayed := len(rackmw) - len(leavemw)
	m := move.NewScoringMove(0, mw, leavemw, vertical, tilesPlayed,
		g.alph, row, col)
	return move.NewScoringMove(g.board.ScoreMove(m, g.letterDistribution),
		mw, leavemw, vertical, tilesPlayed, g.alph, row, col), nil
}

// modifyForPlaythrough replaces the letters of a play that are already
// on the board with play-through markers, verifying they match.
func modifyForPlaythrough(tiles tilemapping.MachineWord, b *board.GameBoard,
	vertical bool, row int, col int) error {

	currow := row
	curcol := col
	for idx := range tiles {
		if vertical {
			currow = row + idx
		} else {
			curcol = col + idx
		}
		if currow > b.Dim()-1 || curcol > b.Dim()-1 {
			return errors.New("play out of bounds of board")
		}
		if tiles[idx] == 0 {
			continue
		}
		if b.HasLetter(currow, curcol) {
			onboard := b.GetLetter(currow, curcol)
			if onboard.Unblank() != tiles[idx].Unblank() {
				return fmt.Errorf("the play-through tile is incorrect (board %v, specified %v)",
					int(onboard), int(tiles[idx]))
			}
			tiles[idx] = 0
		}
	}
	return nil
}

func (g *Game) calculateRackPts(onturn int) int {
	return g.players[onturn].rack.ScoreOn(g.letterDistribution)
}

func otherPlayer(idx int) int {
	return (idx + 1) % 2
}

// SetRackFor sets the rack of the given player, moving the old tiles
// back into the bag and taking the new ones out of it.
func (g *Game) SetRackFor(playerIdx int, rack *tilemapping.Rack) error {
	g.bag.PutBack(g.players[playerIdx].rack.TilesOn())
	err := g.bag.RemoveTiles(rack.TilesOn())
	if err != nil {
		// put the old tiles back where they were
		g.bag.RemoveTiles(g.players[playerIdx].rack.TilesOn())
		return err
	}
	g.players[playerIdx].rack.CopyFrom(rack)
	return nil
}

// ThrowRacksIn returns both players' tiles to the bag.
func (g *Game) ThrowRacksIn() {
	for idx := range g.players {
		g.players[idx].throwRackIn(g.bag)
	}
}

// SetRandomRack throws the player's rack in and draws a fresh one.
func (g *Game) SetRandomRack(playerIdx int) {
	p := g.players[playerIdx]
	g.bag.PutBack(p.rack.TilesOn())
	n := g.bag.DrawAtMost(RackTileLimit, p.placeholderRack)
	p.rack.Set(p.placeholderRack[:n])
}

func (g *Game) RackFor(playerIdx int) *tilemapping.Rack {
	return g.players[playerIdx].rack
}

func (g *Game) RackLettersFor(playerIdx int) string {
	return g.players[playerIdx].rackLetters()
}

func (g *Game) PointsFor(playerIdx int) int {
	return g.players[playerIdx].points
}

func (g *Game) BingosFor(playerIdx int) int {
	return g.players[playerIdx].bingos
}

func (g *Game) SpreadFor(playerIdx int) int {
	return g.players[playerIdx].points - g.players[otherPlayer(playerIdx)].points
}

func (g *Game) NumPlayers() int {
	return len(g.players)
}

func (g *Game) Bag() *tilemapping.Bag {
	return g.bag
}

func (g *Game) Board() *board.GameBoard {
	return g.board
}

func (g *Game) Lexicon() *kwg.KWG {
	return g.lexicon
}

func (g *Game) Alphabet() *tilemapping.TileMapping {
	return g.alph
}

func (g *Game) LetterDistribution() *tilemapping.LetterDistribution {
	return g.letterDistribution
}

func (g *Game) Turn() int {
	return g.turnnum
}

func (g *Game) Playing() PlayState {
	return g.playing
}

func (g *Game) PlayerOnTurn() int {
	return g.onturn
}

func (g *Game) SetPlayerOnTurn(onTurn int) {
	g.onturn = onTurn
}

func (g *Game) NickOnTurn() string {
	return g.players[g.onturn].nickname
}

func (g *Game) SetPointsFor(player, pts int) {
	g.players[player].points = pts
}

func (g *Game) ScorelessTurns() int {
	return g.scorelessTurns
}

func (g *Game) FirstPlayer() int {
	return g.wentfirst
}

func (g *Game) LastWordsFormed() []tilemapping.MachineWord {
	return g.lastWordsFormed
}
