package board

import (
	"errors"
	"fmt"

	"github.com/olaugh/magpie-retro-sub001/move"
	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

var (
	errFirstMoveCenter = errors.New("the first play must touch the center square")
	errPlayDisjoint    = errors.New("the play is not next to any existing tiles")
)

// ErrorIfIllegalPlay returns an error if the play is illegal in terms of
// placement (not whether the words it forms are valid): it must fit on
// the board, it must not overlap existing tiles except where it plays
// through them, and it must connect to the rest of the position (or
// cover the center square on an empty board).
func (g *GameBoard) ErrorIfIllegalPlay(row, col int, vertical bool,
	word tilemapping.MachineWord) error {

	ri, ci := 0, 1
	if vertical {
		ri, ci = ci, ri
	}
	boardEmpty := g.IsEmpty()
	touchesCenter := false
	touchesTiles := false
	newTiles := 0
	for idx, ml := range word {
		newrow := row + (ri * idx)
		newcol := col + (ci * idx)
		if !g.posExists(newrow, newcol) {
			return fmt.Errorf("play extends off the board (row %d col %d)",
				newrow, newcol)
		}
		if ml == 0 {
			if !g.HasLetter(newrow, newcol) {
				return fmt.Errorf("a played-through marker at row %d col %d does not "+
					"match a tile on the board", newrow, newcol)
			}
			touchesTiles = true
			continue
		}
		if g.HasLetter(newrow, newcol) {
			return fmt.Errorf("a tile is already on row %d col %d", newrow, newcol)
		}
		newTiles++
		if boardEmpty && newrow == g.dim/2 && newcol == g.dim/2 {
			touchesCenter = true
		}
		// A fresh tile connects the play if any neighbor is occupied.
		for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			r, c := newrow+d[0], newcol+d[1]
			if g.posExists(r, c) && g.HasLetter(r, c) {
				touchesTiles = true
			}
		}
	}
	if newTiles == 0 {
		return errors.New("the play must place at least one new tile")
	}
	if newTiles > tilemapping.RackTileLimit {
		return fmt.Errorf("cannot place %d tiles in one play", newTiles)
	}
	if boardEmpty {
		if !touchesCenter {
			return errFirstMoveCenter
		}
	} else if !touchesTiles {
		return errPlayDisjoint
	}
	return nil
}

// FormedWords returns all of the words formed by the given play, the
// main word first. The board must not have had the play placed on it
// yet. Designated blanks stay designated in the returned words.
func (g *GameBoard) FormedWords(m *move.Move) ([]tilemapping.MachineWord, error) {
	row, col, vertical := m.CoordsAndVertical()
	if vertical {
		// Transposing the board makes every play horizontal.
		g.Transpose()
		row, col = col, row
		defer g.Transpose()
	}

	tiles := m.Tiles()
	if len(tiles) == 0 {
		return nil, errors.New("function must be called with a placement play")
	}
	words := []tilemapping.MachineWord{}

	// The main word covers the play's span plus any tiles it abuts on
	// either side.
	left := col
	for left > 0 && g.HasLetter(row, left-1) {
		left--
	}
	right := col + len(tiles) - 1
	for right < g.dim-1 && g.HasLetter(row, right+1) {
		right++
	}
	mainWord := make(tilemapping.MachineWord, 0, right-left+1)
	for c := left; c <= right; c++ {
		if c >= col && c < col+len(tiles) && tiles[c-col] != 0 {
			mainWord = append(mainWord, tiles[c-col])
		} else {
			mainWord = append(mainWord, g.GetLetter(row, c))
		}
	}
	words = append(words, mainWord)

	// Each fresh tile that has perpendicular neighbors forms a cross
	// word.
	for idx, ml := range tiles {
		if ml == 0 {
			continue
		}
		c := col + idx
		top := row
		for top > 0 && g.HasLetter(top-1, c) {
			top--
		}
		bot := row
		for bot < g.dim-1 && g.HasLetter(bot+1, c) {
			bot++
		}
		if top == bot {
			continue
		}
		crossWord := make(tilemapping.MachineWord, 0, bot-top+1)
		for r := top; r <= bot; r++ {
			if r == row {
				crossWord = append(crossWord, ml)
			} else {
				crossWord = append(crossWord, g.GetLetter(r, c))
			}
		}
		words = append(words, crossWord)
	}
	return words, nil
}

// ScoreMove computes the score of a placement play. It must be called
// before the play is placed on the board, with the board untransposed.
func (g *GameBoard) ScoreMove(m *move.Move, ld *tilemapping.LetterDistribution) int {
	row, col, vertical := m.CoordsAndVertical()
	if vertical {
		g.Transpose()
		row, col = col, row
		defer g.Transpose()
	}

	mainScore := 0
	crossScores := 0
	wordMultiplier := 1
	freshTiles := 0
	for idx, ml := range m.Tiles() {
		c := col + idx
		if ml == 0 {
			// played through
			mainScore += ld.Score(g.GetLetter(row, c))
			continue
		}
		freshTiles++
		bonus := g.GetBonus(row, c)
		lm := bonus.LetterMultiplier()
		wm := bonus.WordMultiplier()
		wordMultiplier *= wm
		mainScore += ld.Score(ml) * lm
		if cs := g.GetCrossScoreIdx(g.GetSqIdx(row, c)); cs >= 0 {
			crossScores += (cs + ld.Score(ml)*lm) * wm
		}
	}
	// Include any tiles the play abuts beyond its own span.
	for c := col - 1; c >= 0 && g.HasLetter(row, c); c-- {
		mainScore += ld.Score(g.GetLetter(row, c))
	}
	for c := col + len(m.Tiles()); c < g.dim && g.HasLetter(row, c); c++ {
		mainScore += ld.Score(g.GetLetter(row, c))
	}

	score := mainScore*wordMultiplier + crossScores
	if freshTiles == tilemapping.RackTileLimit {
		score += BingoBonus
	}
	return score
}

// BingoBonus is the bonus for playing all of one's tiles in a single play.
const BingoBonus = 50
