package game

import (
	"github.com/olaugh/magpie-retro-sub001/board"
	"github.com/olaugh/magpie-retro-sub001/config"
	"github.com/olaugh/magpie-retro-sub001/kwg"
	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

// GameRules bundles the instantiated objects needed to actually play a
// game: a board layout, a letter distribution, and a lexicon.
type GameRules struct {
	cfg      *config.Config
	board    *board.GameBoard
	dist     *tilemapping.LetterDistribution
	lexicon  *kwg.KWG
	distname string
}

// NewBasicGameRules loads the lexicon and letter distribution by name
// and pairs them with a standard board.
func NewBasicGameRules(cfg *config.Config, lexiconName, distName string) (*GameRules, error) {
	gd, err := kwg.Get(cfg, lexiconName)
	if err != nil {
		return nil, err
	}
	dist, err := tilemapping.GetDistribution(cfg, distName)
	if err != nil {
		return nil, err
	}
	return NewGameRules(cfg, gd, dist, distName), nil
}

// NewGameRules creates rules from already-loaded objects. Tests use this
// with small constructed lexica.
func NewGameRules(cfg *config.Config, gd *kwg.KWG,
	dist *tilemapping.LetterDistribution, distName string) *GameRules {

	return &GameRules{
		cfg:      cfg,
		board:    board.MakeBoard(board.CrosswordGameBoard),
		dist:     dist,
		lexicon:  gd,
		distname: distName,
	}
}

func (g *GameRules) Config() *config.Config {
	return g.cfg
}

func (g *GameRules) Board() *board.GameBoard {
	return g.board
}

func (g *GameRules) LetterDistribution() *tilemapping.LetterDistribution {
	return g.dist
}

func (g *GameRules) Lexicon() *kwg.KWG {
	return g.lexicon
}

func (g *GameRules) LexiconName() string {
	return g.lexicon.LexiconName()
}

func (g *GameRules) LetterDistributionName() string {
	return g.distname
}
