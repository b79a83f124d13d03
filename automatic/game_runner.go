// Package automatic plays computer-vs-computer games: two static equity
// players driving the move generator, with per-turn logging and
// aggregate statistics across many games.
package automatic

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/olaugh/magpie-retro-sub001/equity"
	"github.com/olaugh/magpie-retro-sub001/game"
	"github.com/olaugh/magpie-retro-sub001/move"
	"github.com/olaugh/magpie-retro-sub001/movegen"
	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

// GameRunner is the master struct for a single computer-vs-computer
// engine instance. A runner owns its own game and generator and plays
// any number of games sequentially; parallelism happens across runners.
type GameRunner struct {
	game    *game.Game
	movegen *movegen.GordonGenerator
	alph    *tilemapping.TileMapping

	logchan chan string
	// fingerprint hashes the sequence of plays of the current game so
	// that runs with the same seed and configuration can be compared.
	fingerprint *xxhash.Digest
}

// NewGameRunner instantiates and initializes a game runner from the
// given rules. The equity calculators are shared between both players.
func NewGameRunner(rules *game.GameRules, calcs []equity.EquityCalculator,
	logchan chan string) (*GameRunner, error) {

	g, err := game.NewGame(rules, []string{"p1", "p2"})
	if err != nil {
		return nil, err
	}
	gen := movegen.NewGordonGenerator(rules.Lexicon(), g.Board(),
		rules.LetterDistribution())
	gen.SetEquityCalculators(calcs)
	gen.SetRecordOnlyBest(true)
	gen.SetShadowPruning(true)

	return &GameRunner{
		game:        g,
		movegen:     gen,
		alph:        rules.Lexicon().GetAlphabet(),
		logchan:     logchan,
		fingerprint: xxhash.New(),
	}, nil
}

func (r *GameRunner) StartGame() {
	r.game.StartGame()
	r.fingerprint.Reset()
}

func (r *GameRunner) Game() *game.Game {
	return r.game
}

// genBestStaticTurn generates the single best static-equity play for
// the player on turn.
func (r *GameRunner) genBestStaticTurn(playerIdx int) *move.Move {
	oppRack := r.game.RackFor((playerIdx + 1) % 2)
	r.movegen.SetGameState(r.game.Bag(), oppRack)
	addExchange := r.game.Bag().TilesRemaining() >= game.ExchangeLimit
	plays := r.movegen.GenAll(r.game.RackFor(playerIdx), addExchange)
	return plays[0]
}

// PlayBestStaticTurn generates and plays the best static move for the
// player on turn, and emits a CSV log line if a log channel is set.
// The play's description is captured before PlayMove; the generator
// reuses its winner between calls.
func (r *GameRunner) PlayBestStaticTurn(playerIdx int) error {
	play := r.genBestStaticTurn(playerIdx)
	rackLetters := r.game.RackLettersFor(playerIdx)
	tilesRemaining := r.game.Bag().TilesRemaining()
	nickOnTurn := r.game.NickOnTurn()
	turnnum := r.game.Turn()

	desc := play.ShortDescription()
	score := play.Score()
	eq := play.Equity()
	tilesPlayed := play.TilesPlayed()
	leave := play.Leave().UserVisible(r.alph)

	err := r.game.PlayMove(play, false)
	if err != nil {
		return err
	}
	r.fingerprint.WriteString(desc)

	if r.logchan != nil {
		r.logchan <- fmt.Sprintf("%v,%v,%v,%v,%v,%v,%v,%v,%.3f,%v\n",
			nickOnTurn,
			turnnum,
			rackLetters,
			desc,
			score,
			r.game.PointsFor(playerIdx),
			tilesPlayed,
			leave,
			eq,
			tilesRemaining)
	}
	return nil
}

// PlayFullGame plays a game from start to finish and returns its result.
func (r *GameRunner) PlayFullGame() (*GameResult, error) {
	r.StartGame()
	for r.game.Playing() == game.StatePlaying {
		err := r.PlayBestStaticTurn(r.game.PlayerOnTurn())
		if err != nil {
			return nil, err
		}
	}
	res := &GameResult{
		Scores:      [2]int{r.game.PointsFor(0), r.game.PointsFor(1)},
		Bingos:      r.game.BingosFor(0) + r.game.BingosFor(1),
		Turns:       r.game.Turn(),
		FirstPlayer: r.game.FirstPlayer(),
		Fingerprint: r.fingerprint.Sum64(),
	}
	return res, nil
}

// GameResult summarizes one finished game.
type GameResult struct {
	Scores      [2]int
	Bingos      int
	Turns       int
	FirstPlayer int
	Fingerprint uint64
}
