package board

import (
	"github.com/olaugh/magpie-retro-sub001/kwg"
	"github.com/olaugh/magpie-retro-sub001/move"
	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

// updateAnchor recomputes the anchor status of a single (untransposed)
// square. An anchor is an empty square with at least one occupied
// neighbor; plays can only start from anchors. Occupied squares are
// never anchors; plays through existing tiles are generated from the
// empty anchors next to them.
func (g *GameBoard) updateAnchor(row, col int) {
	if g.letters[0][row*g.dim+col] != 0 {
		g.setAnchor(row, col, false)
		return
	}
	neighbor := (row > 0 && g.letters[0][(row-1)*g.dim+col] != 0) ||
		(row < g.dim-1 && g.letters[0][(row+1)*g.dim+col] != 0) ||
		(col > 0 && g.letters[0][row*g.dim+col-1] != 0) ||
		(col < g.dim-1 && g.letters[0][row*g.dim+col+1] != 0)
	g.setAnchor(row, col, neighbor)
}

// UpdateAllAnchors recalculates the anchors for every square on the
// board. It assumes the board is not transposed.
func (g *GameBoard) UpdateAllAnchors() {
	if g.tilesPlayed > 0 {
		for i := 0; i < g.dim; i++ {
			for j := 0; j < g.dim; j++ {
				g.updateAnchor(i, j)
			}
		}
	} else {
		for i := 0; i < g.dim; i++ {
			for j := 0; j < g.dim; j++ {
				g.setAnchor(i, j, false)
			}
		}
		// If the board is empty, the start square is the only anchor.
		rc := g.dim / 2
		g.setAnchor(rc, rc, true)
	}
}

// updateAnchorsForMove recomputes anchors only around the squares the
// move touched. Placing a tile can change the anchor status of its own
// square and of its four direct neighbors, and nothing else.
func (g *GameBoard) updateAnchorsForMove(m *move.Move) {
	row, col, vertical := m.CoordsAndVertical()
	dr, dc := 0, 1
	if vertical {
		dr, dc = 1, 0
	}
	for i := 0; i < len(m.Tiles()); i++ {
		r, c := row+i*dr, col+i*dc
		g.updateAnchor(r, c)
		for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			if g.posExists(r+d[0], c+d[1]) {
				g.updateAnchor(r+d[0], c+d[1])
			}
		}
	}
}

func (g *GameBoard) placeMoveTiles(m *move.Move) {
	rowStart, colStart, vertical := m.CoordsAndVertical()
	var row, col int
	for idx, tile := range m.Tiles() {
		if tile == 0 {
			// a played-through marker
			continue
		}
		if vertical {
			row = rowStart + idx
			col = colStart
		} else {
			col = colStart + idx
			row = rowStart
		}
		g.SetLetter(row, col, tile)
	}
}

func (g *GameBoard) unplaceMoveTiles(m *move.Move) {
	rowStart, colStart, vertical := m.CoordsAndVertical()
	var row, col int
	for idx, tile := range m.Tiles() {
		if tile == 0 {
			continue
		}
		if vertical {
			row = rowStart + idx
			col = colStart
		} else {
			col = colStart + idx
			row = rowStart
		}
		g.SetLetter(row, col, 0)
	}
}

// PlayMove plays a move on a board. It must be called with the board
// untransposed. It regenerates the anchors, cross-sets, cross-scores and
// extension sets around the play.
func (g *GameBoard) PlayMove(m *move.Move, k *kwg.KWG, ld *tilemapping.LetterDistribution) {
	g.placeMoveTiles(m)
	g.tilesPlayed += m.TilesPlayed()
	g.updateAnchorsForMove(m)
	g.UpdateCrossSetsForMove(m, k, ld)
}
