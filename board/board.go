package board

import (
	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

// BoardDirection is the direction of a play on the board.
type BoardDirection uint8

// WordDirection is the direction we traverse in when reading a word off
// the board.
type WordDirection int

func (bd BoardDirection) String() string {
	if bd == HorizontalDirection {
		return "(horizontal)"
	} else if bd == VerticalDirection {
		return "(vertical)"
	}
	return "none"
}

const (
	// HorizontalDirection is the main direction of a horizontal play.
	HorizontalDirection BoardDirection = iota
	// VerticalDirection is the main direction of a vertical play.
	VerticalDirection
)

const (
	LeftDirection  WordDirection = -1
	RightDirection WordDirection = 1
)

// A BonusSquare is a bonus square (duh)
type BonusSquare rune

const (
	// Bonus3WS is a triple word score
	Bonus3WS BonusSquare = '='
	// Bonus3LS is a triple letter score
	Bonus3LS BonusSquare = '"'
	// Bonus2LS is a double letter score
	Bonus2LS BonusSquare = '\''
	// Bonus2WS is a double word score
	Bonus2WS BonusSquare = '-'
	// NoBonus is a bonus-less square.
	NoBonus BonusSquare = ' '
)

// WordMultiplier returns the word multiplier for this bonus square.
func (b BonusSquare) WordMultiplier() int {
	switch b {
	case Bonus3WS:
		return 3
	case Bonus2WS:
		return 2
	}
	return 1
}

// LetterMultiplier returns the letter multiplier for this bonus square.
func (b BonusSquare) LetterMultiplier() int {
	switch b {
	case Bonus3LS:
		return 3
	case Bonus2LS:
		return 2
	}
	return 1
}

// A GameBoard is the main board structure. Every per-square quantity is
// kept twice, once for each play direction, so that the move generator
// can scan a "row" with plain index arithmetic no matter which direction
// it is generating in. View 0 is row-major (horizontal plays), view 1 is
// column-major (vertical plays); Transpose just flips which view the
// accessors read. Cross-sets, cross-scores and extension sets follow the
// same convention: crossSets[HorizontalDirection] holds the sets that
// constrain a tile placed during a horizontal play (so they are computed
// from the vertical neighbors), and vice versa.
type GameBoard struct {
	dim        int
	transposed bool

	letters     [2][]tilemapping.MachineLetter
	bonuses     [2][]BonusSquare
	crossSets   [2][]CrossSet
	crossScores [2][]int
	leftxSets   [2][]CrossSet
	rightxSets  [2][]CrossSet
	anchors     [2][]bool

	tilesPlayed int
}

// MakeBoard creates a board from a description string.
func MakeBoard(desc []string) *GameBoard {
	dim := len(desc)
	g := &GameBoard{dim: dim}
	for v := 0; v < 2; v++ {
		g.letters[v] = make([]tilemapping.MachineLetter, dim*dim)
		g.bonuses[v] = make([]BonusSquare, dim*dim)
		g.crossSets[v] = make([]CrossSet, dim*dim)
		g.crossScores[v] = make([]int, dim*dim)
		g.leftxSets[v] = make([]CrossSet, dim*dim)
		g.rightxSets[v] = make([]CrossSet, dim*dim)
		g.anchors[v] = make([]bool, dim*dim)
	}
	for row, s := range desc {
		for col, c := range s {
			g.bonuses[0][row*dim+col] = BonusSquare(c)
			g.bonuses[1][col*dim+row] = BonusSquare(c)
		}
	}
	g.Clear()
	return g
}

// Dim is the dimension of the board. It assumes the board is square.
func (g *GameBoard) Dim() int {
	return g.dim
}

func (g *GameBoard) view() int {
	if g.transposed {
		return 1
	}
	return 0
}

// Transpose flips the board such that rows become columns and vice versa.
// It costs nothing; accessors just start reading the other view.
func (g *GameBoard) Transpose() {
	g.transposed = !g.transposed
}

func (g *GameBoard) IsTransposed() bool {
	return g.transposed
}

// GetSqIdx returns the index of the row, col pair in the current view.
func (g *GameBoard) GetSqIdx(row, col int) int {
	return row*g.dim + col
}

// GetBonus returns the bonus at the given square, in the current view.
func (g *GameBoard) GetBonus(row, col int) BonusSquare {
	return g.bonuses[g.view()][row*g.dim+col]
}

// GetLetterMultiplier gets the letter multiplier for the square index, in
// the current view.
func (g *GameBoard) GetLetterMultiplier(sqIdx int) int {
	return g.bonuses[g.view()][sqIdx].LetterMultiplier()
}

// GetWordMultiplier gets the word multiplier for the square index, in
// the current view.
func (g *GameBoard) GetWordMultiplier(sqIdx int) int {
	return g.bonuses[g.view()][sqIdx].WordMultiplier()
}

// SetLetter sets the letter at the given row, col in the current view.
// Both views are kept in sync.
func (g *GameBoard) SetLetter(row, col int, letter tilemapping.MachineLetter) {
	v := g.view()
	g.letters[v][row*g.dim+col] = letter
	g.letters[1-v][col*g.dim+row] = letter
}

// GetLetter returns the letter at the given row, col in the current view.
func (g *GameBoard) GetLetter(row, col int) tilemapping.MachineLetter {
	return g.letters[g.view()][row*g.dim+col]
}

// HasLetter returns whether there is a tile on the given square.
func (g *GameBoard) HasLetter(row, col int) bool {
	return g.letters[g.view()][row*g.dim+col] != 0
}

// GetCrossSetIdx returns the cross set at the square index, in the
// current view. This is the set of letters that can legally be placed on
// the square during a play in the current direction.
func (g *GameBoard) GetCrossSetIdx(sqIdx int) CrossSet {
	return g.crossSets[g.view()][sqIdx]
}

// GetCrossScoreIdx returns the cross score at the square index, in the
// current view. A score of -1 means there is no perpendicular word
// through this square at all; 0 means there is one, made entirely of
// blanks.
func (g *GameBoard) GetCrossScoreIdx(sqIdx int) int {
	return g.crossScores[g.view()][sqIdx]
}

// GetLeftExtSetIdx returns the set of letters that can be placed on this
// square as the front hook of the tiles immediately to its right, for the
// current play direction.
func (g *GameBoard) GetLeftExtSetIdx(sqIdx int) CrossSet {
	return g.leftxSets[g.view()][sqIdx]
}

// GetRightExtSetIdx returns the set of letters that can extend the tiles
// immediately to this square's left, for the current play direction.
func (g *GameBoard) GetRightExtSetIdx(sqIdx int) CrossSet {
	return g.rightxSets[g.view()][sqIdx]
}

// GetCrossSet returns the cross set for plays in the given direction
// through the given (untransposed) square.
func (g *GameBoard) GetCrossSet(row, col int, dir BoardDirection) CrossSet {
	if dir == VerticalDirection {
		row, col = col, row
	}
	return g.crossSets[dir][row*g.dim+col]
}

// GetCrossScore returns the cross score for plays in the given direction
// through the given (untransposed) square.
func (g *GameBoard) GetCrossScore(row, col int, dir BoardDirection) int {
	if dir == VerticalDirection {
		row, col = col, row
	}
	return g.crossScores[dir][row*g.dim+col]
}

func (g *GameBoard) setCrossSet(row, col int, cs CrossSet, dir BoardDirection) {
	if dir == VerticalDirection {
		row, col = col, row
	}
	g.crossSets[dir][row*g.dim+col] = cs
}

func (g *GameBoard) setCrossScore(row, col, score int, dir BoardDirection) {
	if dir == VerticalDirection {
		row, col = col, row
	}
	g.crossScores[dir][row*g.dim+col] = score
}

func (g *GameBoard) setExtSets(row, col int, leftx, rightx CrossSet, dir BoardDirection) {
	if dir == VerticalDirection {
		row, col = col, row
	}
	g.leftxSets[dir][row*g.dim+col] = leftx
	g.rightxSets[dir][row*g.dim+col] = rightx
}

// IsAnchor returns whether the given square, in the current view, is an
// anchor. Anchors do not depend on the play direction; the square is
// simply kept in both views so that a transposed scan can look it up
// with plain index arithmetic.
func (g *GameBoard) IsAnchor(row, col int) bool {
	return g.anchors[g.view()][row*g.dim+col]
}

func (g *GameBoard) setAnchor(row, col int, val bool) {
	v := g.view()
	g.anchors[v][row*g.dim+col] = val
	g.anchors[1-v][col*g.dim+row] = val
}

// SetAllCrosses sets the cross sets and extension sets of every square
// to the trivial cross-set, which allows every letter.
func (g *GameBoard) SetAllCrosses() {
	for v := 0; v < 2; v++ {
		for i := range g.crossSets[v] {
			g.crossSets[v][i] = TrivialCrossSet
			g.leftxSets[v][i] = TrivialCrossSet
			g.rightxSets[v][i] = TrivialCrossSet
		}
	}
}

// ClearAllCrosses disallows every letter on every square.
func (g *GameBoard) ClearAllCrosses() {
	for v := 0; v < 2; v++ {
		for i := range g.crossSets[v] {
			g.crossSets[v][i] = 0
			g.leftxSets[v][i] = 0
			g.rightxSets[v][i] = 0
		}
	}
}

// Clear clears the board.
func (g *GameBoard) Clear() {
	for v := 0; v < 2; v++ {
		for i := range g.letters[v] {
			g.letters[v][i] = 0
			g.crossScores[v][i] = -1
		}
	}
	g.tilesPlayed = 0
	// Every letter is allowed on every square at the very beginning.
	g.SetAllCrosses()
	g.UpdateAllAnchors()
}

// IsEmpty returns if the board is empty.
func (g *GameBoard) IsEmpty() bool {
	return g.tilesPlayed == 0
}

// TilesPlayed returns the number of tiles on the board.
func (g *GameBoard) TilesPlayed() int {
	return g.tilesPlayed
}

func (g *GameBoard) posExists(row, col int) bool {
	return row >= 0 && row < g.dim && col >= 0 && col < g.dim
}

// leftAndRightEmpty returns true if the squares at col - 1 and col + 1
// on this row are empty, checking carefully for boundary conditions.
func (g *GameBoard) leftAndRightEmpty(row, col int) bool {
	if g.posExists(row, col-1) && g.HasLetter(row, col-1) {
		return false
	}
	if g.posExists(row, col+1) && g.HasLetter(row, col+1) {
		return false
	}
	return true
}

// WordEdge finds the edge of a word on the board, returning the column.
func (g *GameBoard) WordEdge(row, col int, dir WordDirection) int {
	for g.posExists(row, col) && g.HasLetter(row, col) {
		col += int(dir)
	}
	return col - int(dir)
}

// Copy returns a deep copy of this board.
func (g *GameBoard) Copy() *GameBoard {
	n := &GameBoard{dim: g.dim, transposed: g.transposed, tilesPlayed: g.tilesPlayed}
	for v := 0; v < 2; v++ {
		n.letters[v] = append([]tilemapping.MachineLetter(nil), g.letters[v]...)
		n.bonuses[v] = append([]BonusSquare(nil), g.bonuses[v]...)
		n.crossSets[v] = append([]CrossSet(nil), g.crossSets[v]...)
		n.crossScores[v] = append([]int(nil), g.crossScores[v]...)
		n.leftxSets[v] = append([]CrossSet(nil), g.leftxSets[v]...)
		n.rightxSets[v] = append([]CrossSet(nil), g.rightxSets[v]...)
		n.anchors[v] = append([]bool(nil), g.anchors[v]...)
	}
	return n
}

// CopyFrom copies the other board's state into this one. The boards must
// have the same dimension.
func (g *GameBoard) CopyFrom(other *GameBoard) {
	g.transposed = other.transposed
	g.tilesPlayed = other.tilesPlayed
	for v := 0; v < 2; v++ {
		copy(g.letters[v], other.letters[v])
		copy(g.bonuses[v], other.bonuses[v])
		copy(g.crossSets[v], other.crossSets[v])
		copy(g.crossScores[v], other.crossScores[v])
		copy(g.leftxSets[v], other.leftxSets[v])
		copy(g.rightxSets[v], other.rightxSets[v])
		copy(g.anchors[v], other.anchors[v])
	}
}
