// Package movegen contains all the move-generating functions. It makes
// heavy use of the GADDAG (encoded as a KWG).
// Implementation notes:
// 1) Is the specification in the paper a bit buggy? Basically, if I assume
// an anchor is the leftmost tile of a word, the way the algorithm works,
// it will create words blindly. For example, if I have a word FIRE on the
// board, and I have the letter E on my rack, and I call
// GowOn(anchorColumn, E, .., leftstrip, rightstrip), there is no way that
// the algorithm will try placing the E at the beginning of FIRE (to form
// EFIRE, hypothetically). The anchors would have to be on the leftmost
// squares of words.
// 2) We assume anchors are empty squares adjacent to at least one tile,
// plus the center square on an empty board.
package movegen

import (
	"sort"

	"github.com/olaugh/magpie-retro-sub001/board"
	"github.com/olaugh/magpie-retro-sub001/equity"
	"github.com/olaugh/magpie-retro-sub001/kwg"
	"github.com/olaugh/magpie-retro-sub001/move"
	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

// BingoBonus is the bonus for playing all seven tiles from the rack.
const BingoBonus = 50

// MoveGenerator is a generic interface for generating moves.
type MoveGenerator interface {
	GenAll(rack *tilemapping.Rack, addExchange bool) []*move.Move
	Plays() []*move.Move
	SetPlayRecorder(pf PlayRecorderFunc)
	SetEquityCalculators(calcs []equity.EquityCalculator)
}

// GordonGenerator is the main move generation struct. It implements
// Steven A. Gordon's algorithm from his paper "A faster Scrabble Move
// Generation Algorithm", plus a shadow-play pruning pass that bounds
// each anchor's best possible equity before any real generation is done.
type GordonGenerator struct {
	gaddag             *kwg.KWG
	board              *board.GameBoard
	letterDistribution *tilemapping.LetterDistribution

	// tileScores is a cache of the letter distribution's scores,
	// indexed by machine letter.
	tileScores [tilemapping.MaxAlphabetSize + 1]int
	boardDim   int

	vertical      bool
	curRowIdx     int
	curAnchorCol  int
	lastAnchorCol int
	tilesPlayed   int

	strip         []tilemapping.MachineLetter
	exchangestrip []tilemapping.MachineLetter
	leavestrip    []tilemapping.MachineLetter

	plays       []*move.Move
	winner      *move.Move
	placeholder *move.Move

	playRecorder   PlayRecorderFunc
	recordOnlyBest bool

	equityCalculators []equity.EquityCalculator
	leaveCalc         equity.Leaves

	// The bag and opponent rack are only used for equity calculation;
	// they are set by the game layer before generation.
	bag     *tilemapping.Bag
	oppRack *tilemapping.Rack

	shadowEnabled bool

	// leave map state; see leave_map.go
	leaveMapEnabled      bool
	leaveMapIndex        int
	leaveMapValues       [1 << tilemapping.RackTileLimit]float64
	leaveMapBaseIndices  [tilemapping.MaxAlphabetSize + 1]int
	leaveMapReversedBits [tilemapping.RackTileLimit]int
	leaveMapLeave        [tilemapping.RackTileLimit]tilemapping.MachineLetter
	leaveMapRackCopy     tilemapping.Rack
	bestLeaves           [tilemapping.RackTileLimit]float64

	// shadow state; see shadow.go
	rackCrossSet            uint64
	shadowOriginalRackTotal int
	descendingTileScores    [tilemapping.RackTileLimit]int
	fullRackDescTileScores  [tilemapping.RackTileLimit]int
	anchorLeftExtSet        uint64
	anchorRightExtSet       uint64
	numUnrestrictedMuls     int
	lastWordMultiplier      int
	descendingEffLetterMuls [tilemapping.RackTileLimit]uint16
	descendingCrossWordMuls [tilemapping.RackTileLimit]uint16
	descendingLetterMuls    [tilemapping.RackTileLimit]uint8

	shadowMainwordRestrictedScore int
	shadowPerpAdditionalScore     int
	shadowWordMultiplier          int
	shadowTilesPlayed             int
	maxShadowTilesPlayed          int
	currentLeftCol                int
	currentRightCol               int
	highestShadowEquity           float64
	highestShadowScore            int
	shadowRackCopy                tilemapping.Rack
	shadowRightRackCopy           tilemapping.Rack
	rackCrossSetCopy              uint64

	// save buffers for shadowPlayRight
	descTileScoresCopy    [tilemapping.RackTileLimit]int
	descEffLetterMulsCopy [tilemapping.RackTileLimit]uint16
	descCrossWordMulsCopy [tilemapping.RackTileLimit]uint16
	descLetterMulsCopy    [tilemapping.RackTileLimit]uint8

	anchors     []Anchor
	anchorCount int
}

// NewGordonGenerator returns a Gordon move generator, which is
// initialized with the given board, letter distribution, and a gaddag.
func NewGordonGenerator(gd *kwg.KWG, b *board.GameBoard,
	ld *tilemapping.LetterDistribution) *GordonGenerator {

	dim := b.Dim()
	gen := &GordonGenerator{
		gaddag:             gd,
		board:              b,
		letterDistribution: ld,
		boardDim:           dim,
		strip:              make([]tilemapping.MachineLetter, dim),
		exchangestrip:      make([]tilemapping.MachineLetter, tilemapping.RackTileLimit),
		leavestrip:         make([]tilemapping.MachineLetter, tilemapping.RackTileLimit),
		winner:             new(move.Move),
		placeholder:        new(move.Move),
		playRecorder:       AllPlaysRecorder,
		// Two orientations' worth of anchors at most.
		anchors:       make([]Anchor, dim*dim*2),
		shadowEnabled: true,
	}
	for ml := 0; ml <= int(ld.TileMapping().NumLetters()); ml++ {
		gen.tileScores[ml] = ld.Score(tilemapping.MachineLetter(ml))
	}
	return gen
}

// SetPlayRecorder sets the play recorder.
func (gen *GordonGenerator) SetPlayRecorder(pr PlayRecorderFunc) {
	gen.playRecorder = pr
}

// SetRecordOnlyBest switches between recording every play and recording
// only the highest-equity play. Only the latter mode can use shadow
// pruning, since pruning requires a single best play to compare bounds
// against.
func (gen *GordonGenerator) SetRecordOnlyBest(best bool) {
	gen.recordOnlyBest = best
	if best {
		gen.playRecorder = TopPlayOnlyRecorder
	} else {
		gen.playRecorder = AllPlaysRecorder
	}
}

// SetShadowPruning turns the shadow pruning pass on or off. Turning it
// off never changes which play is found, only how long it takes.
func (gen *GordonGenerator) SetShadowPruning(on bool) {
	gen.shadowEnabled = on
}

func (gen *GordonGenerator) SetEquityCalculators(calcs []equity.EquityCalculator) {
	gen.equityCalculators = calcs
}

// SetGameState gives the generator the bag and opponent rack, which the
// equity calculators need. Pass a nil oppRack if it is unknown.
func (gen *GordonGenerator) SetGameState(bag *tilemapping.Bag, oppRack *tilemapping.Rack) {
	gen.bag = bag
	gen.oppRack = oppRack
}

func (gen *GordonGenerator) Plays() []*move.Move {
	return gen.plays
}

// tileScore returns the score for a machine letter as placed; designated
// blanks and played-through markers score zero.
func (gen *GordonGenerator) tileScore(ml tilemapping.MachineLetter) int {
	if ml == 0 || ml.IsBlanked() {
		return 0
	}
	return gen.tileScores[ml]
}

func (gen *GordonGenerator) bagTilesRemaining() int {
	if gen.bag == nil {
		return 1
	}
	return gen.bag.TilesRemaining()
}

// GenAll generates all moves on the board for the given rack. It assumes
// the cross-sets and anchors on the board are current. Exchanges are
// only tried if addExchange is true (the bag needs at least seven tiles
// for an exchange to be legal). A pass is always recorded.
func (gen *GordonGenerator) GenAll(rack *tilemapping.Rack, addExchange bool) []*move.Move {
	gen.plays = gen.plays[:0]
	gen.winner.Set(nil, nil, 0, 0, 0, 0, false, move.MoveTypeUnset,
		gen.letterDistribution.TileMapping())
	gen.vertical = false
	gen.tilesPlayed = 0

	gen.leaveCalc = nil
	for _, calc := range gen.equityCalculators {
		if lc, ok := calc.(equity.Leaves); ok {
			gen.leaveCalc = lc
			break
		}
	}
	gen.initLeaveMap(rack)

	bestLeavesComputed := false
	if addExchange || gen.usingShadow() {
		for i := range gen.bestLeaves {
			gen.bestLeaves[i] = 0
		}
		gen.generateExchangeMoves(rack, 0, 0, addExchange)
		bestLeavesComputed = true
	}

	if gen.usingShadow() {
		gen.genShadow(rack, bestLeavesComputed)
		gen.recordScoringPlaysFromAnchors(rack)
	} else {
		gen.genByOrientation(rack, board.HorizontalDirection)
		if !gen.board.IsEmpty() {
			gen.board.Transpose()
			gen.vertical = true
			gen.genByOrientation(rack, board.VerticalDirection)
			gen.board.Transpose()
			gen.vertical = false
		}
	}

	gen.playRecorder(gen, rack, 0, 0, move.MoveTypePass, 0)
	return gen.plays
}

func (gen *GordonGenerator) usingShadow() bool {
	return gen.recordOnlyBest && gen.shadowEnabled
}

func (gen *GordonGenerator) genByOrientation(rack *tilemapping.Rack, dir board.BoardDirection) {
	dim := gen.boardDim
	for row := 0; row < dim; row++ {
		gen.curRowIdx = row
		gen.lastAnchorCol = -1
		for col := 0; col < dim; col++ {
			if gen.board.IsAnchor(row, col) {
				gen.curAnchorCol = col
				gen.tilesPlayed = 0
				gen.recursiveGen(col, rack, gen.gaddag.GetRootNodeIndex(),
					col, col, !gen.vertical, 0, 0, 1)
				gen.lastAnchorCol = col
			}
		}
	}
}

// recursiveGen is an implementation of the Gordon Gen function. The
// main word score, cross score sum and word multiplier ride along as
// parameters so nothing needs to be recomputed at record time.
func (gen *GordonGenerator) recursiveGen(col int, rack *tilemapping.Rack, nodeIdx uint32,
	leftstrip, rightstrip int, uniquePlay bool,
	mainWordScore, crossScoreSum, wordMultiplier int) {

	if gen.board.HasLetter(gen.curRowIdx, col) {
		curLetter := gen.board.GetLetter(gen.curRowIdx, col)
		nnIdx := gen.gaddag.NextNodeIdx(nodeIdx, curLetter.Unblank())
		gen.goOn(col, curLetter, rack, nnIdx, nodeIdx, leftstrip, rightstrip,
			uniquePlay, mainWordScore, crossScoreSum, wordMultiplier)
		return
	}
	if rack.Empty() {
		return
	}

	sqIdx := gen.board.GetSqIdx(gen.curRowIdx, col)
	crossSet := gen.board.GetCrossSetIdx(sqIdx)
	hasBlank := rack.LetArr[0] > 0

	for i := nodeIdx; ; i++ {
		ml := tilemapping.MachineLetter(gen.gaddag.Tile(i))
		if ml != 0 && crossSet.Allowed(ml) && (rack.LetArr[ml] > 0 || hasBlank) {
			nnIdx := gen.gaddag.ArcIndex(i)
			if rack.LetArr[ml] > 0 {
				rack.Take(ml)
				gen.tilesPlayed++
				gen.leaveMapTakeTile(ml, rack.LetArr[ml])

				gen.goOn(col, ml, rack, nnIdx, nodeIdx, leftstrip, rightstrip,
					uniquePlay, mainWordScore, crossScoreSum, wordMultiplier)

				gen.leaveMapReturnTile(ml, rack.LetArr[ml])
				gen.tilesPlayed--
				rack.Add(ml)
			}
			if hasBlank {
				rack.Take(0)
				gen.tilesPlayed++
				gen.leaveMapTakeTile(0, rack.LetArr[0])

				gen.goOn(col, ml.Blank(), rack, nnIdx, nodeIdx, leftstrip, rightstrip,
					uniquePlay, mainWordScore, crossScoreSum, wordMultiplier)

				gen.leaveMapReturnTile(0, rack.LetArr[0])
				gen.tilesPlayed--
				rack.Add(0)
			}
		}
		if gen.gaddag.IsEnd(i) {
			break
		}
	}
}

// goOn is an implementation of the Gordon GoOn function.
func (gen *GordonGenerator) goOn(curCol int, L tilemapping.MachineLetter,
	rack *tilemapping.Rack, newNodeIdx, oldNodeIdx uint32,
	leftstrip, rightstrip int, uniquePlay bool,
	mainWordScore, crossScoreSum, wordMultiplier int) {

	sqIdx := gen.board.GetSqIdx(gen.curRowIdx, curCol)
	freshTile := !gen.board.HasLetter(gen.curRowIdx, curCol)

	letterMul := 1
	wordMul := 1
	if freshTile {
		letterMul = gen.board.GetLetterMultiplier(sqIdx)
		wordMul = gen.board.GetWordMultiplier(sqIdx)
	}
	ls := gen.tileScore(L) * letterMul
	mainWordScore += ls
	wordMultiplier *= wordMul
	if freshTile {
		if cs := gen.board.GetCrossScoreIdx(sqIdx); cs >= 0 {
			crossScoreSum += (cs + ls) * wordMul
		}
	}

	if curCol <= gen.curAnchorCol {
		if !freshTile {
			gen.strip[curCol] = 0
		} else {
			gen.strip[curCol] = L
			if gen.vertical && gen.board.GetCrossSetIdx(sqIdx) == board.TrivialCrossSet {
				// This tile got placed. If the cross set is trivial the play
				// is unique in this orientation; the other orientation will
				// not generate it.
				uniquePlay = true
			}
		}
		leftstrip = curCol

		noLetterDirectlyLeft := curCol == 0 ||
			!gen.board.HasLetter(gen.curRowIdx, curCol-1)
		// A left-side record is only legal if the word also ends cleanly
		// on the right; tiles directly right of the anchor must be
		// traversed through the separator first.
		noLetterRightOfAnchor := gen.curAnchorCol == gen.boardDim-1 ||
			!gen.board.HasLetter(gen.curRowIdx, gen.curAnchorCol+1)

		if gen.gaddag.InLetterSet(L, oldNodeIdx) && noLetterDirectlyLeft &&
			noLetterRightOfAnchor && gen.tilesPlayed > 0 {
			if uniquePlay || gen.tilesPlayed > 1 {
				gen.recordPlay(rack, leftstrip, rightstrip,
					mainWordScore, crossScoreSum, wordMultiplier)
			}
		}
		if newNodeIdx == 0 {
			return
		}
		// Keep generating prefixes if there is room to the left.
		if curCol > 0 && curCol-1 != gen.lastAnchorCol {
			gen.recursiveGen(curCol-1, rack, newNodeIdx, leftstrip, rightstrip,
				uniquePlay, mainWordScore, crossScoreSum, wordMultiplier)
		}
		// Then shift direction: cross the separator and play to the right
		// of the anchor.
		separationNodeIdx := gen.gaddag.NextNodeIdx(newNodeIdx, 0)
		if separationNodeIdx != 0 && noLetterDirectlyLeft &&
			gen.curAnchorCol < gen.boardDim-1 {
			gen.recursiveGen(gen.curAnchorCol+1, rack, separationNodeIdx,
				leftstrip, rightstrip, uniquePlay,
				mainWordScore, crossScoreSum, wordMultiplier)
		}
	} else {
		if !freshTile {
			gen.strip[curCol] = 0
		} else {
			gen.strip[curCol] = L
			if gen.vertical && gen.board.GetCrossSetIdx(sqIdx) == board.TrivialCrossSet {
				uniquePlay = true
			}
		}
		rightstrip = curCol

		noLetterDirectlyRight := curCol == gen.boardDim-1 ||
			!gen.board.HasLetter(gen.curRowIdx, curCol+1)

		if gen.gaddag.InLetterSet(L, oldNodeIdx) && noLetterDirectlyRight &&
			gen.tilesPlayed > 0 {
			if uniquePlay || gen.tilesPlayed > 1 {
				gen.recordPlay(rack, leftstrip, rightstrip,
					mainWordScore, crossScoreSum, wordMultiplier)
			}
		}
		if newNodeIdx != 0 && curCol < gen.boardDim-1 {
			gen.recursiveGen(curCol+1, rack, newNodeIdx, leftstrip, rightstrip,
				uniquePlay, mainWordScore, crossScoreSum, wordMultiplier)
		}
	}
}

func (gen *GordonGenerator) recordPlay(rack *tilemapping.Rack,
	leftstrip, rightstrip, mainWordScore, crossScoreSum, wordMultiplier int) {

	score := mainWordScore*wordMultiplier + crossScoreSum
	if gen.tilesPlayed == tilemapping.RackTileLimit {
		score += BingoBonus
	}
	gen.playRecorder(gen, rack, leftstrip, rightstrip, move.MoveTypePlay, score)
}

// generateExchangeMoves enumerates every subset of the rack. Each leaf
// of the enumeration is a possible exchange (the tiles in exchangestrip)
// and a possible leave (the tiles still on the rack); the best leave
// value per leave size is tracked for the shadow bound at the same time.
func (gen *GordonGenerator) generateExchangeMoves(rack *tilemapping.Rack,
	ml tilemapping.MachineLetter, stripidx int, recordExchanges bool) {

	for int(ml) < len(rack.LetArr) && rack.LetArr[ml] == 0 {
		ml++
	}
	if int(ml) == len(rack.LetArr) {
		leaveSize := int(rack.NumTiles())
		if gen.leaveMapEnabled && leaveSize > 0 && leaveSize <= tilemapping.RackTileLimit {
			if v := gen.leaveMapValue(); v > gen.bestLeaves[leaveSize-1] {
				gen.bestLeaves[leaveSize-1] = v
			}
		}
		if recordExchanges && stripidx > 0 {
			gen.playRecorder(gen, rack, 0, stripidx, move.MoveTypeExchange, 0)
		}
		return
	}
	gen.generateExchangeMoves(rack, ml+1, stripidx, recordExchanges)
	numthis := rack.LetArr[ml]
	for i := 0; i < numthis; i++ {
		gen.exchangestrip[stripidx] = ml
		stripidx++
		rack.Take(ml)
		gen.leaveMapTakeTile(ml, rack.LetArr[ml])
		gen.generateExchangeMoves(rack, ml+1, stripidx, recordExchanges)
	}
	for i := 0; i < numthis; i++ {
		gen.leaveMapReturnTile(ml, rack.LetArr[ml])
		rack.Add(ml)
	}
}

// SortPlaysByEquity sorts the generated plays by equity, with the same
// deterministic tie-break ordering the top-play recorder uses.
func (gen *GordonGenerator) SortPlaysByEquity() {
	sort.Slice(gen.plays, func(i, j int) bool {
		return gen.plays[i].Better(gen.plays[j])
	})
}
