package movegen

import (
	"github.com/olaugh/magpie-retro-sub001/board"
	"github.com/olaugh/magpie-retro-sub001/move"
	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

// Shadow playing computes an upper bound on the equity obtainable from
// each anchor, without consulting the lexicon at all. Anchors are then
// processed in descending bound order and real generation stops at the
// first anchor whose bound cannot beat the best play already found.
//
// The key idea: wherever the cross set restricts a square to a single
// letter we have, play that tile and score it exactly. Everywhere else,
// record the square's effective multiplier and assume at record time
// that the highest-scoring rack tiles land on the highest multipliers.

// nonOutplayPenalty is the fixed part of the endgame penalty for not
// playing out.
const nonOutplayPenalty = 10

// initShadowState prepares the per-turn shadow state from the rack.
func (gen *GordonGenerator) initShadowState(rack *tilemapping.Rack) {
	gen.rackCrossSet = 0
	for ml := range rack.LetArr {
		if rack.LetArr[ml] > 0 {
			gen.rackCrossSet |= uint64(1) << ml
		}
	}
	gen.setDescendingTileScores(rack)
}

// setDescendingTileScores fills descendingTileScores with the rack's
// tile scores in descending order. Insertion sort; the rack has at most
// seven tiles.
func (gen *GordonGenerator) setDescendingTileScores(rack *tilemapping.Rack) {
	idx := 0
	for ml := 0; ml < len(rack.LetArr); ml++ {
		for c := 0; c < rack.LetArr[ml]; c++ {
			score := gen.tileScores[ml]
			insertIdx := idx
			for insertIdx > 0 && gen.descendingTileScores[insertIdx-1] < score {
				gen.descendingTileScores[insertIdx] = gen.descendingTileScores[insertIdx-1]
				insertIdx--
			}
			gen.descendingTileScores[insertIdx] = score
			idx++
		}
	}
	for i := idx; i < len(gen.descendingTileScores); i++ {
		gen.descendingTileScores[i] = 0
	}
	copy(gen.fullRackDescTileScores[:], gen.descendingTileScores[:])
}

// genShadow shadows every anchor in both orientations and heapifies the
// results. bestLeaves must already be current when this is called with
// bestLeavesAlreadyComputed true.
func (gen *GordonGenerator) genShadow(rack *tilemapping.Rack, bestLeavesAlreadyComputed bool) {
	if !bestLeavesAlreadyComputed {
		for i := range gen.bestLeaves {
			gen.bestLeaves[i] = 0
		}
		gen.generateExchangeMoves(rack, 0, 0, false)
	}

	gen.initShadowState(rack)
	gen.anchorCount = 0

	gen.vertical = false
	gen.shadowByOrientation(rack)

	// On an empty board every play is generated horizontally.
	if !gen.board.IsEmpty() {
		gen.board.Transpose()
		gen.vertical = true
		gen.shadowByOrientation(rack)
		gen.board.Transpose()
		gen.vertical = false
	}

	gen.heapifyAnchors()
}

func (gen *GordonGenerator) shadowByOrientation(rack *tilemapping.Rack) {
	for row := 0; row < gen.boardDim; row++ {
		gen.curRowIdx = row
		gen.lastAnchorCol = -1
		for col := 0; col < gen.boardDim; col++ {
			if gen.board.IsAnchor(row, col) {
				gen.shadowPlayForAnchor(rack, col)
				gen.lastAnchorCol = col
			}
		}
	}
}

// shadowPlayForAnchor computes the equity bound for one anchor and
// pushes it onto the anchor list if any play is possible there.
func (gen *GordonGenerator) shadowPlayForAnchor(rack *tilemapping.Rack, col int) {
	if rack.NumTiles() == 0 {
		return
	}

	gen.currentLeftCol = col
	gen.currentRightCol = col
	gen.curAnchorCol = col
	gen.shadowTilesPlayed = 0
	gen.maxShadowTilesPlayed = 0
	gen.shadowOriginalRackTotal = int(rack.NumTiles())

	gen.shadowMainwordRestrictedScore = 0
	gen.shadowPerpAdditionalScore = 0
	gen.shadowWordMultiplier = 1
	gen.numUnrestrictedMuls = 0
	gen.lastWordMultiplier = 1
	for i := range gen.descendingEffLetterMuls {
		gen.descendingEffLetterMuls[i] = 0
		gen.descendingCrossWordMuls[i] = 0
		gen.descendingLetterMuls[i] = 0
	}
	copy(gen.descendingTileScores[:], gen.fullRackDescTileScores[:])

	gen.highestShadowEquity = 0
	gen.highestShadowScore = 0

	sqIdx := gen.board.GetSqIdx(gen.curRowIdx, col)
	gen.anchorLeftExtSet = uint64(gen.board.GetLeftExtSetIdx(sqIdx))
	gen.anchorRightExtSet = uint64(gen.board.GetRightExtSetIdx(sqIdx))

	gen.shadowRackCopy.CopyFrom(rack)
	gen.rackCrossSetCopy = gen.rackCrossSet

	gen.shadowStart(rack)

	rack.CopyFrom(&gen.shadowRackCopy)
	gen.rackCrossSet = gen.rackCrossSetCopy

	if gen.maxShadowTilesPlayed == 0 {
		return
	}
	gen.anchors[gen.anchorCount] = Anchor{
		HighestPossibleEquity: gen.highestShadowEquity,
		HighestPossibleScore:  int16(gen.highestShadowScore),
		Row:                   uint8(gen.curRowIdx),
		Col:                   uint8(col),
		LastAnchorCol:         int8(gen.lastAnchorCol),
		Vertical:              gen.vertical,
	}
	gen.anchorCount++
}

// shadowStart starts shadow play at the anchor square. Anchors are
// always empty squares; adjacent runs of board tiles are folded in as
// the word grows through them.
func (gen *GordonGenerator) shadowStart(rack *tilemapping.Rack) {
	sqIdx := gen.board.GetSqIdx(gen.curRowIdx, gen.currentLeftCol)
	crossSet := uint64(gen.board.GetCrossSetIdx(sqIdx))

	// A blank can play as any letter in the cross set.
	possible := crossSet & gen.rackCrossSet
	if rack.LetArr[0] > 0 {
		possible = crossSet
	}
	if possible == 0 {
		return
	}

	letterMul := gen.board.GetLetterMultiplier(sqIdx)
	wordMul := gen.board.GetWordMultiplier(sqIdx)
	crossScore := gen.board.GetCrossScoreIdx(sqIdx)
	if crossScore >= 0 {
		gen.shadowPerpAdditionalScore = crossScore * wordMul
	}

	gen.shadowWordMultiplier = wordMul
	if !gen.tryRestrictTile(rack, possible, letterMul, wordMul, gen.currentLeftCol) {
		gen.insertUnrestrictedMultipliers(gen.currentLeftCol)
	}
	gen.shadowTilesPlayed++

	// Any tiles directly adjacent are part of the word formed by this
	// single tile; fold their scores in before recording.
	for scanCol := gen.currentLeftCol - 1; scanCol >= 0; scanCol-- {
		ml := gen.board.GetLetter(gen.curRowIdx, scanCol)
		if ml == 0 {
			break
		}
		gen.shadowMainwordRestrictedScore += gen.tileScore(ml)
	}
	for scanCol := gen.currentLeftCol + 1; scanCol < gen.boardDim; scanCol++ {
		ml := gen.board.GetLetter(gen.curRowIdx, scanCol)
		if ml == 0 {
			break
		}
		gen.shadowMainwordRestrictedScore += gen.tileScore(ml)
	}

	gen.shadowRecord(rack)
	gen.shadowPlayLeft(rack)
}

// shadowPlayLeft extends leftward from the anchor. Each iteration
// first exhausts rightward extensions from the current position, then
// tries to move one square further left, stepping through any run of
// board tiles for free.
func (gen *GordonGenerator) shadowPlayLeft(rack *tilemapping.Rack) {
	hasBlank := rack.LetArr[0] > 0

	// The left extension set only constrains the anchor square itself;
	// squares further left are constrained by their own cross sets.
	gen.anchorLeftExtSet = uint64(board.TrivialCrossSet)

	for {
		possibleRight := gen.anchorRightExtSet & gen.rackCrossSet
		if hasBlank {
			possibleRight = gen.anchorRightExtSet
		}
		if possibleRight != 0 {
			gen.shadowPlayRight(rack)
		}
		gen.anchorRightExtSet = uint64(board.TrivialCrossSet)

		if gen.currentLeftCol == 0 {
			return
		}

		if gen.shadowTilesPlayed >= gen.shadowOriginalRackTotal {
			// Out of tiles. The word can still grow through any run of
			// board tiles directly to the left.
			if !gen.board.HasLetter(gen.curRowIdx, gen.currentLeftCol-1) {
				return
			}
			for gen.currentLeftCol > 0 {
				gen.currentLeftCol--
				ml := gen.board.GetLetter(gen.curRowIdx, gen.currentLeftCol)
				if ml == 0 {
					gen.currentLeftCol++
					break
				}
				gen.shadowMainwordRestrictedScore += gen.tileScore(ml)
			}
			gen.shadowRecord(rack)
			return
		}

		if gen.board.HasLetter(gen.curRowIdx, gen.currentLeftCol-1) {
			gen.currentLeftCol--
			ml := gen.board.GetLetter(gen.curRowIdx, gen.currentLeftCol)
			gen.shadowMainwordRestrictedScore += gen.tileScore(ml)
			continue
		}

		possibleLeft := gen.anchorLeftExtSet & gen.rackCrossSet
		if hasBlank {
			possibleLeft = gen.anchorLeftExtSet
		}
		if possibleLeft == 0 {
			return
		}
		gen.anchorLeftExtSet = uint64(board.TrivialCrossSet)

		gen.currentLeftCol--
		gen.shadowTilesPlayed++

		sqIdx := gen.board.GetSqIdx(gen.curRowIdx, gen.currentLeftCol)
		letterMul := gen.board.GetLetterMultiplier(sqIdx)
		wordMul := gen.board.GetWordMultiplier(sqIdx)
		gen.shadowWordMultiplier *= wordMul

		possibleLeft &= uint64(gen.board.GetCrossSetIdx(sqIdx))
		if !gen.tryRestrictTile(rack, possibleLeft, letterMul, wordMul, gen.currentLeftCol) {
			gen.insertUnrestrictedMultipliers(gen.currentLeftCol)
		}

		gen.shadowRecord(rack)
	}
}

// shadowPlayRight extends rightward from the current position. All
// state it touches is restored before it returns, so the leftward sweep
// can keep going afterwards.
func (gen *GordonGenerator) shadowPlayRight(rack *tilemapping.Rack) {
	origMain := gen.shadowMainwordRestrictedScore
	origPerp := gen.shadowPerpAdditionalScore
	origWordMul := gen.shadowWordMultiplier
	origRightCol := gen.currentRightCol
	origTilesPlayed := gen.shadowTilesPlayed
	origNumUnrestricted := gen.numUnrestrictedMuls

	gen.shadowRightRackCopy.CopyFrom(rack)
	origRackBits := gen.rackCrossSet
	copy(gen.descTileScoresCopy[:], gen.descendingTileScores[:])

	// The multiplier arrays are only saved if we actually modify them.
	savedMultipliers := false
	restrictedAny := false
	changedMultipliers := false
	hasBlank := rack.LetArr[0] > 0

	for {
		gen.currentRightCol++
		if gen.currentRightCol >= gen.boardDim {
			break
		}

		if gen.board.HasLetter(gen.curRowIdx, gen.currentRightCol) {
			ml := gen.board.GetLetter(gen.curRowIdx, gen.currentRightCol)
			gen.shadowMainwordRestrictedScore += gen.tileScore(ml)
			continue
		}

		gen.shadowTilesPlayed++
		if gen.shadowTilesPlayed > gen.shadowOriginalRackTotal {
			// Out of tiles; any further run of board tiles still
			// lengthens the word already formed.
			for scanCol := gen.currentRightCol + 1; scanCol < gen.boardDim; scanCol++ {
				ml := gen.board.GetLetter(gen.curRowIdx, scanCol)
				if ml == 0 {
					break
				}
				gen.shadowMainwordRestrictedScore += gen.tileScore(ml)
			}
			gen.shadowTilesPlayed--
			if gen.shadowTilesPlayed >= 1 {
				gen.shadowRecord(rack)
			}
			break
		}

		sqIdx := gen.board.GetSqIdx(gen.curRowIdx, gen.currentRightCol)
		crossSet := uint64(gen.board.GetCrossSetIdx(sqIdx))
		crossExt := crossSet & gen.anchorRightExtSet
		possible := crossExt & gen.rackCrossSet
		if hasBlank {
			possible = crossExt
		}
		gen.anchorRightExtSet = uint64(board.TrivialCrossSet)
		if possible == 0 {
			gen.shadowTilesPlayed--
			break
		}

		letterMul := gen.board.GetLetterMultiplier(sqIdx)
		wordMul := gen.board.GetWordMultiplier(sqIdx)
		crossScore := gen.board.GetCrossScoreIdx(sqIdx)
		if crossScore >= 0 {
			gen.shadowPerpAdditionalScore += crossScore * wordMul
		}
		gen.shadowWordMultiplier *= wordMul

		if gen.tryRestrictTile(rack, possible, letterMul, wordMul, gen.currentRightCol) {
			restrictedAny = true
		} else {
			if !savedMultipliers {
				copy(gen.descEffLetterMulsCopy[:], gen.descendingEffLetterMuls[:])
				copy(gen.descCrossWordMulsCopy[:], gen.descendingCrossWordMuls[:])
				copy(gen.descLetterMulsCopy[:], gen.descendingLetterMuls[:])
				savedMultipliers = true
			}
			gen.insertUnrestrictedMultipliers(gen.currentRightCol)
			changedMultipliers = true
		}

		// A run of board tiles directly ahead is part of the word if we
		// stop here; fold it in just for this record.
		savedMain := gen.shadowMainwordRestrictedScore
		for scanCol := gen.currentRightCol + 1; scanCol < gen.boardDim; scanCol++ {
			ml := gen.board.GetLetter(gen.curRowIdx, scanCol)
			if ml == 0 {
				break
			}
			gen.shadowMainwordRestrictedScore += gen.tileScore(ml)
		}
		gen.shadowRecord(rack)
		gen.shadowMainwordRestrictedScore = savedMain
	}

	gen.shadowMainwordRestrictedScore = origMain
	gen.shadowPerpAdditionalScore = origPerp
	gen.shadowWordMultiplier = origWordMul

	if restrictedAny {
		rack.CopyFrom(&gen.shadowRightRackCopy)
		gen.rackCrossSet = origRackBits
		copy(gen.descendingTileScores[:], gen.descTileScoresCopy[:])
	}
	if changedMultipliers {
		gen.numUnrestrictedMuls = origNumUnrestricted
		copy(gen.descendingEffLetterMuls[:], gen.descEffLetterMulsCopy[:])
		copy(gen.descendingCrossWordMuls[:], gen.descCrossWordMulsCopy[:])
		copy(gen.descendingLetterMuls[:], gen.descLetterMulsCopy[:])
	}

	gen.currentRightCol = origRightCol
	gen.shadowTilesPlayed = origTilesPlayed
	gen.maybeRecalculateEffectiveMultipliers()
}

// shadowRecord updates the running equity and score bounds with the
// current shadow position.
func (gen *GordonGenerator) shadowRecord(rack *tilemapping.Rack) {
	if gen.shadowTilesPlayed == 0 {
		return
	}
	gen.maybeRecalculateEffectiveMultipliers()

	// Pair the highest remaining tile scores with the highest effective
	// multipliers.
	unrestrictedScore := 0
	loopCount := gen.numUnrestrictedMuls
	if n := int(rack.NumTiles()); loopCount > n {
		loopCount = n
	}
	for i := 0; i < loopCount; i++ {
		unrestrictedScore += gen.descendingTileScores[i] * int(gen.descendingEffLetterMuls[i])
	}

	score := gen.shadowMainwordRestrictedScore*gen.shadowWordMultiplier +
		gen.shadowPerpAdditionalScore + unrestrictedScore
	if gen.shadowTilesPlayed >= tilemapping.RackTileLimit {
		score += BingoBonus
	}

	equity := float64(score)
	if gen.bagTilesRemaining() > 0 {
		if gen.leaveCalc != nil {
			tilesRemaining := gen.shadowOriginalRackTotal - gen.shadowTilesPlayed
			if tilesRemaining > 0 {
				equity += gen.bestLeaves[tilesRemaining-1]
			}
		}
	} else {
		equity += gen.shadowEndgameAdjustment()
	}

	if equity > gen.highestShadowEquity {
		gen.highestShadowEquity = equity
	}
	if score > gen.highestShadowScore {
		gen.highestShadowScore = score
	}
	if gen.shadowTilesPlayed > gen.maxShadowTilesPlayed {
		gen.maxShadowTilesPlayed = gen.shadowTilesPlayed
	}
}

// shadowEndgameAdjustment is the best-case endgame adjustment for the
// current shadow position: keeping tiles costs twice the cheapest
// possible leave plus the fixed penalty, and going out can gain at most
// twice the opponent's rack.
func (gen *GordonGenerator) shadowEndgameAdjustment() float64 {
	if gen.shadowOriginalRackTotal > gen.shadowTilesPlayed {
		lowestRackScore := 0
		for i := gen.shadowTilesPlayed; i < gen.shadowOriginalRackTotal; i++ {
			lowestRackScore += gen.descendingTileScores[i]
		}
		return float64(-lowestRackScore*2 - nonOutplayPenalty)
	}
	if gen.oppRack != nil {
		return float64(2 * gen.oppRack.ScoreOn(gen.letterDistribution))
	}
	return 0
}

// tryRestrictTile handles the case where a square's cross set restricts
// it to a single letter. The tile (or a blank standing in for it) is
// consumed from the rack and scored exactly. Returns false when more
// than one letter could go here.
func (gen *GordonGenerator) tryRestrictTile(rack *tilemapping.Rack,
	possibleLetters uint64, letterMul, wordMul, col int) bool {

	nonblank := possibleLetters &^ 1
	if nonblank == 0 || nonblank&(nonblank-1) != 0 {
		return false
	}
	ml := tilemapping.MachineLetter(0)
	for nonblank&1 == 0 {
		nonblank >>= 1
		ml++
	}

	var score int
	switch {
	case rack.LetArr[ml] > 0:
		rack.Take(ml)
		if rack.LetArr[ml] == 0 {
			gen.rackCrossSet &^= uint64(1) << ml
		}
		score = gen.tileScores[ml]
	case rack.LetArr[0] > 0:
		rack.Take(0)
		if rack.LetArr[0] == 0 {
			gen.rackCrossSet &^= 1
		}
		score = 0
	default:
		return false
	}
	gen.removeTileFromDescending(score)

	lsm := score * letterMul
	gen.shadowMainwordRestrictedScore += lsm
	sqIdx := gen.board.GetSqIdx(gen.curRowIdx, col)
	if gen.board.GetCrossScoreIdx(sqIdx) >= 0 {
		gen.shadowPerpAdditionalScore += lsm * wordMul
	}
	return true
}

// insertUnrestrictedMultipliers records the effective multipliers of a
// square anything from the rack could land on. The lists stay sorted
// descending so shadowRecord can pair them greedily with tile scores.
func (gen *GordonGenerator) insertUnrestrictedMultipliers(col int) {
	gen.maybeRecalculateEffectiveMultipliers()

	sqIdx := gen.board.GetSqIdx(gen.curRowIdx, col)
	letterMul := gen.board.GetLetterMultiplier(sqIdx)
	wordMul := gen.board.GetWordMultiplier(sqIdx)
	isCrossWord := 0
	if gen.board.GetCrossScoreIdx(sqIdx) >= 0 {
		isCrossWord = 1
	}
	effXWMul := uint16(letterMul * wordMul * isCrossWord)
	effLetterMul := uint16(gen.shadowWordMultiplier*letterMul) + effXWMul

	insertIdx := gen.numUnrestrictedMuls
	for insertIdx > 0 && gen.descendingEffLetterMuls[insertIdx-1] < effLetterMul {
		gen.descendingEffLetterMuls[insertIdx] = gen.descendingEffLetterMuls[insertIdx-1]
		gen.descendingCrossWordMuls[insertIdx] = gen.descendingCrossWordMuls[insertIdx-1]
		gen.descendingLetterMuls[insertIdx] = gen.descendingLetterMuls[insertIdx-1]
		insertIdx--
	}
	gen.descendingEffLetterMuls[insertIdx] = effLetterMul
	gen.descendingCrossWordMuls[insertIdx] = effXWMul
	gen.descendingLetterMuls[insertIdx] = uint8(letterMul)
	gen.numUnrestrictedMuls++
}

// maybeRecalculateEffectiveMultipliers brings the effective letter
// multipliers up to date after the accumulated word multiplier changed.
func (gen *GordonGenerator) maybeRecalculateEffectiveMultipliers() {
	if gen.lastWordMultiplier == gen.shadowWordMultiplier {
		return
	}
	gen.lastWordMultiplier = gen.shadowWordMultiplier

	for i := 0; i < gen.numUnrestrictedMuls; i++ {
		letterMul := int(gen.descendingLetterMuls[i])
		gen.descendingEffLetterMuls[i] =
			uint16(letterMul*gen.shadowWordMultiplier) + gen.descendingCrossWordMuls[i]
	}
	// Re-sort; insertion sort on at most seven entries.
	for i := 1; i < gen.numUnrestrictedMuls; i++ {
		key := gen.descendingEffLetterMuls[i]
		keyCW := gen.descendingCrossWordMuls[i]
		keyLM := gen.descendingLetterMuls[i]
		j := i - 1
		for j >= 0 && gen.descendingEffLetterMuls[j] < key {
			gen.descendingEffLetterMuls[j+1] = gen.descendingEffLetterMuls[j]
			gen.descendingCrossWordMuls[j+1] = gen.descendingCrossWordMuls[j]
			gen.descendingLetterMuls[j+1] = gen.descendingLetterMuls[j]
			j--
		}
		gen.descendingEffLetterMuls[j+1] = key
		gen.descendingCrossWordMuls[j+1] = keyCW
		gen.descendingLetterMuls[j+1] = keyLM
	}
}

// removeTileFromDescending removes one copy of a score from the
// descending tile score list.
func (gen *GordonGenerator) removeTileFromDescending(score int) {
	for i := len(gen.descendingTileScores) - 1; i >= 0; i-- {
		if gen.descendingTileScores[i] == score {
			copy(gen.descendingTileScores[i:], gen.descendingTileScores[i+1:])
			gen.descendingTileScores[len(gen.descendingTileScores)-1] = 0
			return
		}
	}
}

// recordScoringPlaysFromAnchors pops anchors in descending bound order
// and runs real generation on each, stopping at the first anchor whose
// bound cannot beat the best play found so far.
func (gen *GordonGenerator) recordScoringPlaysFromAnchors(rack *tilemapping.Rack) {
	for gen.anchorCount > 0 {
		anchor := gen.popAnchor()

		if gen.winner.Action() != move.MoveTypeUnset &&
			anchor.HighestPossibleEquity < gen.winner.Equity() {
			break
		}

		gen.curRowIdx = int(anchor.Row)
		gen.curAnchorCol = int(anchor.Col)
		gen.lastAnchorCol = int(anchor.LastAnchorCol)
		gen.vertical = anchor.Vertical
		if anchor.Vertical != gen.board.IsTransposed() {
			gen.board.Transpose()
		}

		gen.tilesPlayed = 0
		gen.recursiveGen(int(anchor.Col), rack, gen.gaddag.GetRootNodeIndex(),
			int(anchor.Col), int(anchor.Col), !anchor.Vertical, 0, 0, 1)
	}
	if gen.board.IsTransposed() {
		gen.board.Transpose()
	}
	gen.vertical = false
}
