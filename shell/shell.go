// Package shell implements an interactive readline-driven console for
// playing with the engine: loading lexica, setting racks, generating
// ranked move lists, playing and taking back moves, and running
// self-play batches.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/olaugh/magpie-retro-sub001/automatic"
	"github.com/olaugh/magpie-retro-sub001/config"
	"github.com/olaugh/magpie-retro-sub001/equity"
	"github.com/olaugh/magpie-retro-sub001/game"
	"github.com/olaugh/magpie-retro-sub001/move"
	"github.com/olaugh/magpie-retro-sub001/movegen"
	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

const autoplayLogFile = "/tmp/autoplay.txt"

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	game        *game.Game
	gen         *movegen.GordonGenerator
	calcs       []equity.EquityCalculator
	curGenPlays []*move.Move
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mmagpie>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		AutoComplete:        completer,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, cfg: cfg}
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stderr())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// load creates a fresh game with the named lexicon and deals the
// opening racks.
func (sc *ShellController) load(lexiconName string) error {
	rules, err := game.NewBasicGameRules(sc.cfg, lexiconName,
		sc.cfg.DefaultLetterDistribution)
	if err != nil {
		return err
	}
	g, err := game.NewGame(rules, []string{"player1", "player2"})
	if err != nil {
		return err
	}
	g.StartGame()
	g.SetBackupMode(game.InteractiveGameplayMode)
	g.SetStateStackLength(1)

	calc, err := equity.NewCombinedStaticCalculator(lexiconName, sc.cfg, "", "")
	if err != nil {
		return err
	}

	sc.game = g
	sc.calcs = []equity.EquityCalculator{calc}
	sc.gen = movegen.NewGordonGenerator(rules.Lexicon(), g.Board(),
		rules.LetterDistribution())
	sc.gen.SetEquityCalculators(sc.calcs)
	sc.gen.SetShadowPruning(sc.cfg.ShadowPruning)
	sc.curGenPlays = nil
	return nil
}

func (sc *ShellController) requireGame() error {
	if sc.game == nil {
		return errors.New("please load a lexicon first with the `load` command")
	}
	return nil
}

func (sc *ShellController) setRack(rack string) error {
	if err := sc.requireGame(); err != nil {
		return err
	}
	return sc.game.SetRackFor(sc.game.PlayerOnTurn(),
		tilemapping.RackFromString(rack, sc.game.Alphabet()))
}

func moveTableHeader() string {
	return "     Move                Leave  Score Equity"
}

func moveTableRow(idx int, m *move.Move, alph *tilemapping.TileMapping) string {
	return fmt.Sprintf("%3d: %-20s%-7s%-6d%-6.2f", idx+1,
		m.ShortDescription(), m.Leave().UserVisible(alph), m.Score(), m.Equity())
}

// genMovesAndDisplay generates every legal play for the player on turn
// and shows the numPlays best by equity.
func (sc *ShellController) genMovesAndDisplay(numPlays int) error {
	if err := sc.requireGame(); err != nil {
		return err
	}
	g := sc.game
	onturn := g.PlayerOnTurn()
	oppRack := g.RackFor((onturn + 1) % g.NumPlayers())
	sc.gen.SetGameState(g.Bag(), oppRack)
	canExchange := g.Bag().TilesRemaining() >= game.ExchangeLimit
	sc.gen.GenAll(g.RackFor(onturn), canExchange)
	sc.gen.SortPlaysByEquity()

	plays := sc.gen.Plays()
	if numPlays < len(plays) {
		plays = plays[:numPlays]
	}
	// Keep copies; the generator owns its play slice.
	sc.curGenPlays = make([]*move.Move, len(plays))
	sc.showMessage(moveTableHeader())
	for i, p := range plays {
		sc.curGenPlays[i] = new(move.Move)
		sc.curGenPlays[i].CopyFrom(p)
		sc.showMessage(moveTableRow(i, p, g.Alphabet()))
	}
	return nil
}

// playMove plays either a numbered play from the last `gen` (play #2)
// or a placement given as coordinates and a word (play 8D CABS).
func (sc *ShellController) playMove(fields []string) error {
	if err := sc.requireGame(); err != nil {
		return err
	}
	var m *move.Move
	var err error
	switch {
	case len(fields) == 1 && strings.HasPrefix(fields[0], "#"):
		playID, err := strconv.Atoi(fields[0][1:])
		if err != nil {
			return err
		}
		idx := playID - 1
		if idx < 0 || idx >= len(sc.curGenPlays) {
			return errors.New("play outside range")
		}
		m = sc.curGenPlays[idx]
	case len(fields) == 1 && fields[0] == "pass":
		m = move.NewPassMove(
			sc.game.RackFor(sc.game.PlayerOnTurn()).TilesOn(),
			sc.game.Alphabet())
	case len(fields) == 2:
		rack := sc.game.RackFor(sc.game.PlayerOnTurn()).String()
		m, err = sc.game.CreateAndScorePlacementMove(fields[0], fields[1], rack)
		if err != nil {
			return err
		}
	default:
		return errors.New("unrecognized arguments to `play`")
	}
	err = sc.game.PlayMove(m, true)
	if err != nil {
		return err
	}
	sc.curGenPlays = nil
	sc.showMessage(sc.game.ToDisplayText())
	return nil
}

func (sc *ShellController) unplay() error {
	if err := sc.requireGame(); err != nil {
		return err
	}
	if sc.game.Turn() == 0 {
		return errors.New("there is no move to take back")
	}
	sc.game.UnplayLastMove()
	sc.curGenPlays = nil
	sc.showMessage(sc.game.ToDisplayText())
	return nil
}

func (sc *ShellController) autoplay(fields []string) error {
	numGames := 10
	workers := 1
	var err error
	if len(fields) > 0 {
		numGames, err = strconv.Atoi(fields[0])
		if err != nil {
			return err
		}
	}
	if len(fields) > 1 {
		workers, err = strconv.Atoi(fields[1])
		if err != nil {
			return err
		}
	}
	stats, err := automatic.StartCompVCompGames(context.Background(), sc.cfg,
		numGames, workers, autoplayLogFile)
	if err != nil {
		return err
	}
	sc.showMessage(fmt.Sprintf(
		"played %d games: mean score %.1f (stdev %.1f), %.2f bingos/game, %.1f turns/game",
		stats.Games, stats.MeanScore, stats.StdevScore, stats.BingosPerGame,
		stats.MeanTurns))
	sc.showMessage("turn-by-turn log written to " + autoplayLogFile)
	return nil
}

func (sc *ShellController) execute(line string) error {
	fields, err := shellquote.Split(line)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "load":
		if len(args) != 1 {
			return errors.New("usage: load <lexicon>")
		}
		if err := sc.load(args[0]); err != nil {
			return err
		}
		sc.showMessage(sc.game.ToDisplayText())
		return nil
	case "show", "s":
		if err := sc.requireGame(); err != nil {
			return err
		}
		sc.showMessage(sc.game.ToDisplayText())
		return nil
	case "rack":
		if len(args) != 1 {
			return errors.New("usage: rack <letters>")
		}
		if err := sc.setRack(args[0]); err != nil {
			return err
		}
		sc.showMessage(sc.game.ToDisplayText())
		return nil
	case "gen":
		numPlays := sc.cfg.TopPlays
		if len(args) > 0 {
			numPlays, err = strconv.Atoi(args[0])
			if err != nil {
				return err
			}
		}
		return sc.genMovesAndDisplay(numPlays)
	case "play":
		return sc.playMove(args)
	case "unplay":
		return sc.unplay()
	case "autoplay":
		return sc.autoplay(args)
	case "help":
		usage(sc.l.Stderr())
		return nil
	default:
		return errors.New("unrecognized command: " + cmd)
	}
}

// Loop reads and executes commands until exit or EOF.
func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- os.Interrupt
				break
			}
			continue
		} else if err == io.EOF {
			sig <- os.Interrupt
			break
		}
		line = strings.TrimSpace(line)
		if line == "exit" || line == "quit" {
			sig <- os.Interrupt
			break
		}
		err = sc.execute(line)
		if err != nil {
			sc.showError(err)
		}
	}
	log.Debug().Msg("exiting shell loop")
}
