package board

import (
	"github.com/olaugh/magpie-retro-sub001/kwg"
	"github.com/olaugh/magpie-retro-sub001/move"
	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

const (
	// TrivialCrossSet allows every possible letter. It is the default
	// state of a square.
	TrivialCrossSet = CrossSet(1<<tilemapping.MaxAlphabetSize) - 1
)

// A CrossSet is a bit mask of letters that are allowed on a square. It is
// inherently directional; the cross set used when generating horizontal
// plays is computed from the tile(s) directly above and/or below the
// relevant square, by checking which letters placed in between lead to
// valid words.
type CrossSet uint64

func (c CrossSet) Allowed(letter tilemapping.MachineLetter) bool {
	return c&(1<<uint8(letter)) != 0
}

func (c *CrossSet) Set(letter tilemapping.MachineLetter) {
	*c = *c | (1 << letter)
}

func (c *CrossSet) SetAll() {
	*c = TrivialCrossSet
}

func (c *CrossSet) Clear() {
	*c = 0
}

func CrossSetFromString(letters string, alph *tilemapping.TileMapping) CrossSet {
	c := CrossSet(0)
	for _, l := range letters {
		v, err := alph.Val(l)
		if err != nil {
			panic("letter error: " + string(l))
		}
		c.Set(v)
	}
	return c
}

// calcCrossSet computes the set of letters that can be placed between
// the given prefix and suffix to form a valid word, along with the sum
// of the tile scores of the prefix and suffix (designated blanks score
// zero). A cross score of -1 means there is no perpendicular word at
// all.
func calcCrossSet(k *kwg.KWG, prefix, suffix tilemapping.MachineWord,
	ld *tilemapping.LetterDistribution) (CrossSet, int) {

	if len(prefix) == 0 && len(suffix) == 0 {
		return TrivialCrossSet, -1
	}
	crossScore := 0
	for _, ml := range prefix {
		crossScore += ld.Score(ml)
	}
	for _, ml := range suffix {
		crossScore += ld.Score(ml)
	}

	nodeIdx := k.GetDawgRootNodeIndex()
	for _, ml := range prefix {
		nodeIdx = k.NextNodeIdx(nodeIdx, ml.Unblank())
		if nodeIdx == 0 {
			// The prefix itself is not a word part; no letter works.
			return 0, crossScore
		}
	}

	// nodeIdx is now the child group following the prefix. Any letter
	// here is a candidate; it must still spell a valid word through the
	// whole suffix.
	cs := CrossSet(0)
	for i := nodeIdx; ; i++ {
		t := k.Tile(i)
		if t != 0 {
			if len(suffix) == 0 {
				if k.Accepts(i) {
					cs.Set(tilemapping.MachineLetter(t))
				}
			} else if followsToWord(k, k.ArcIndex(i), suffix) {
				cs.Set(tilemapping.MachineLetter(t))
			}
		}
		if k.IsEnd(i) {
			break
		}
	}
	return cs, crossScore
}

// followsToWord returns whether walking the given suffix from the node
// group ends on a word.
func followsToWord(k *kwg.KWG, nodeIdx uint32, suffix tilemapping.MachineWord) bool {
	if nodeIdx == 0 {
		return false
	}
	for _, ml := range suffix[:len(suffix)-1] {
		nodeIdx = k.NextNodeIdx(nodeIdx, ml.Unblank())
		if nodeIdx == 0 {
			return false
		}
	}
	return k.InLetterSet(suffix[len(suffix)-1].Unblank(), nodeIdx)
}

// calcExtensionSets computes the extension sets for an empty square with
// the given runs of tiles before and after it, in the main word
// direction. The right extension set holds the letters that can follow
// the prefix run (found with a forward walk); the left extension set
// holds the letters that can directly precede the suffix run (found by
// walking the reversed suffix, then the separator, in the gaddag part of
// the graph). A run that is not there leaves its set trivial.
func calcExtensionSets(k *kwg.KWG, prefix, suffix tilemapping.MachineWord) (CrossSet, CrossSet) {
	leftx := TrivialCrossSet
	rightx := TrivialCrossSet

	if len(prefix) > 0 {
		nodeIdx := k.GetDawgRootNodeIndex()
		for _, ml := range prefix {
			nodeIdx = k.NextNodeIdx(nodeIdx, ml.Unblank())
			if nodeIdx == 0 {
				break
			}
		}
		if nodeIdx != 0 {
			_, ext := k.GetLetterSets(nodeIdx)
			rightx = CrossSet(ext)
		} else {
			rightx = 0
		}
	}

	if len(suffix) > 0 {
		nodeIdx := k.GetRootNodeIndex()
		for i := len(suffix) - 1; i >= 0 && nodeIdx != 0; i-- {
			nodeIdx = k.NextNodeIdx(nodeIdx, suffix[i].Unblank())
		}
		if nodeIdx != 0 {
			nodeIdx = k.NextNodeIdx(nodeIdx, 0)
		}
		if nodeIdx != 0 {
			_, ext := k.GetLetterSets(nodeIdx)
			leftx = CrossSet(ext)
		} else {
			leftx = 0
		}
	}
	return leftx, rightx
}

// collectRuns gathers the contiguous tiles above and below the given
// empty square when dir is HorizontalDirection, or to its left and right
// when dir is VerticalDirection. Coordinates are untransposed.
func (g *GameBoard) collectRuns(row, col int, dir BoardDirection) (tilemapping.MachineWord, tilemapping.MachineWord) {
	dr, dc := 1, 0
	if dir == VerticalDirection {
		dr, dc = 0, 1
	}
	var prefix, suffix tilemapping.MachineWord
	for r, c := row-dr, col-dc; g.posExists(r, c); r, c = r-dr, c-dc {
		ml := g.letters[0][r*g.dim+c]
		if ml == 0 {
			break
		}
		prefix = append(prefix, ml)
	}
	// The prefix was collected walking away from the square; put it back
	// in reading order.
	for i, j := 0, len(prefix)-1; i < j; i, j = i+1, j-1 {
		prefix[i], prefix[j] = prefix[j], prefix[i]
	}
	for r, c := row+dr, col+dc; g.posExists(r, c); r, c = r+dr, c+dc {
		ml := g.letters[0][r*g.dim+c]
		if ml == 0 {
			break
		}
		suffix = append(suffix, ml)
	}
	return prefix, suffix
}

// updateSquare recomputes all of the cross and extension data for a
// single (untransposed) square.
func (g *GameBoard) updateSquare(row, col int, k *kwg.KWG, ld *tilemapping.LetterDistribution) {
	if g.letters[0][row*g.dim+col] != 0 {
		// Occupied squares admit nothing.
		for _, dir := range []BoardDirection{HorizontalDirection, VerticalDirection} {
			g.setCrossSet(row, col, 0, dir)
			g.setCrossScore(row, col, 0, dir)
			g.setExtSets(row, col, 0, 0, dir)
		}
		return
	}

	// The vertical neighbors determine the cross data for horizontal
	// plays through this square, and the extension sets for vertical
	// plays. The horizontal neighbors determine the converse.
	prefix, suffix := g.collectRuns(row, col, HorizontalDirection)
	cs, score := calcCrossSet(k, prefix, suffix, ld)
	g.setCrossSet(row, col, cs, HorizontalDirection)
	g.setCrossScore(row, col, score, HorizontalDirection)
	leftx, rightx := calcExtensionSets(k, prefix, suffix)
	g.setExtSets(row, col, leftx, rightx, VerticalDirection)

	prefix, suffix = g.collectRuns(row, col, VerticalDirection)
	cs, score = calcCrossSet(k, prefix, suffix, ld)
	g.setCrossSet(row, col, cs, VerticalDirection)
	g.setCrossScore(row, col, score, VerticalDirection)
	leftx, rightx = calcExtensionSets(k, prefix, suffix)
	g.setExtSets(row, col, leftx, rightx, HorizontalDirection)
}

// GenAllCrossSets recomputes the cross sets, cross scores and extension
// sets for every square on the board. The board must be untransposed.
func (g *GameBoard) GenAllCrossSets(k *kwg.KWG, ld *tilemapping.LetterDistribution) {
	for row := 0; row < g.dim; row++ {
		for col := 0; col < g.dim; col++ {
			g.updateSquare(row, col, k, ld)
		}
	}
}

// UpdateCrossSetsForMove recomputes cross and extension data only for
// the squares a placement move could have affected: the squares the move
// covers, and the first empty square reached from each newly placed tile
// in each of the four directions, walking through any occupied squares
// in between. Everything else keeps its old data.
func (g *GameBoard) UpdateCrossSetsForMove(m *move.Move, k *kwg.KWG, ld *tilemapping.LetterDistribution) {
	rowStart, colStart, vertical := m.CoordsAndVertical()
	seen := map[int]bool{}
	recalc := func(row, col int) {
		idx := row*g.dim + col
		if seen[idx] {
			return
		}
		seen[idx] = true
		g.updateSquare(row, col, k, ld)
	}

	for idx, tile := range m.Tiles() {
		if tile == 0 {
			continue
		}
		row, col := rowStart, colStart
		if vertical {
			row += idx
		} else {
			col += idx
		}
		recalc(row, col)
		for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			r, c := row+d[0], col+d[1]
			for g.posExists(r, c) && g.letters[0][r*g.dim+c] != 0 {
				r, c = r+d[0], c+d[1]
			}
			if g.posExists(r, c) {
				recalc(r, c)
			}
		}
	}
}
