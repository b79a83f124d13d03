package board

import (
	"github.com/olaugh/magpie-retro-sub001/move"
	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

type savedSquare struct {
	row, col    int
	letter      tilemapping.MachineLetter
	crossSets   [2]CrossSet
	crossScores [2]int
	leftxSets   [2]CrossSet
	rightxSets  [2]CrossSet
	anchor      bool
}

// A SpanSnapshot remembers every per-square quantity that playing a
// particular move can change, so the move can be taken back later
// without copying the whole board.
type SpanSnapshot struct {
	squares     []savedSquare
	tilesPlayed int
}

func (g *GameBoard) saveSquare(row, col int) savedSquare {
	h := row*g.dim + col
	v := col*g.dim + row
	return savedSquare{
		row:         row,
		col:         col,
		letter:      g.letters[0][h],
		crossSets:   [2]CrossSet{g.crossSets[0][h], g.crossSets[1][v]},
		crossScores: [2]int{g.crossScores[0][h], g.crossScores[1][v]},
		leftxSets:   [2]CrossSet{g.leftxSets[0][h], g.leftxSets[1][v]},
		rightxSets:  [2]CrossSet{g.rightxSets[0][h], g.rightxSets[1][v]},
		anchor:      g.anchors[0][h],
	}
}

func (g *GameBoard) restoreSquare(s savedSquare) {
	h := s.row*g.dim + s.col
	v := s.col*g.dim + s.row
	g.letters[0][h] = s.letter
	g.letters[1][v] = s.letter
	g.crossSets[0][h] = s.crossSets[0]
	g.crossSets[1][v] = s.crossSets[1]
	g.crossScores[0][h] = s.crossScores[0]
	g.crossScores[1][v] = s.crossScores[1]
	g.leftxSets[0][h] = s.leftxSets[0]
	g.leftxSets[1][v] = s.leftxSets[1]
	g.rightxSets[0][h] = s.rightxSets[0]
	g.rightxSets[1][v] = s.rightxSets[1]
	g.anchors[0][h] = s.anchor
	g.anchors[1][v] = s.anchor
}

// SaveSpan captures the state of every square that playing the given
// move can change: the squares the move covers, their direct neighbors
// (whose anchor status can flip), and the first empty square reached
// from each move square in each of the four directions, walking through
// any tiles in between (whose cross and extension data get recomputed).
// It must be called before the move is played, with the board
// untransposed.
func (g *GameBoard) SaveSpan(m *move.Move) *SpanSnapshot {
	snap := &SpanSnapshot{tilesPlayed: g.tilesPlayed}
	seen := map[int]bool{}
	add := func(row, col int) {
		idx := row*g.dim + col
		if seen[idx] {
			return
		}
		seen[idx] = true
		snap.squares = append(snap.squares, g.saveSquare(row, col))
	}

	row, col, vertical := m.CoordsAndVertical()
	dr, dc := 0, 1
	if vertical {
		dr, dc = 1, 0
	}
	for i := 0; i < len(m.Tiles()); i++ {
		r, c := row+i*dr, col+i*dc
		add(r, c)
		for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			rr, cc := r+d[0], c+d[1]
			if g.posExists(rr, cc) {
				add(rr, cc)
			}
			for g.posExists(rr, cc) && g.letters[0][rr*g.dim+cc] != 0 {
				rr, cc = rr+d[0], cc+d[1]
			}
			if g.posExists(rr, cc) {
				add(rr, cc)
			}
		}
	}
	return snap
}

// RestoreSpan puts back the state captured by SaveSpan, undoing the move
// it was captured for. The board must be untransposed.
func (g *GameBoard) RestoreSpan(snap *SpanSnapshot) {
	for i := range snap.squares {
		g.restoreSquare(snap.squares[i])
	}
	g.tilesPlayed = snap.tilesPlayed
}
