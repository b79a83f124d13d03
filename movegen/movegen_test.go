package movegen

import (
	"testing"

	"github.com/matryer/is"

	"github.com/olaugh/magpie-retro-sub001/board"
	"github.com/olaugh/magpie-retro-sub001/config"
	"github.com/olaugh/magpie-retro-sub001/equity"
	"github.com/olaugh/magpie-retro-sub001/kwg"
	"github.com/olaugh/magpie-retro-sub001/move"
	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

var DefaultConfig = config.DefaultConfig()

var testWords = []string{
	"AB", "BA", "ABA", "CABS", "CAB", "BACS", "ABACUS", "SCUBA",
	"CUB", "CUBS", "BUS", "SUB", "AA", "AAS", "CASABA", "CASABAS",
}

func testKWG(t testing.TB) (*kwg.KWG, *tilemapping.LetterDistribution) {
	is := is.New(t)
	ld, err := tilemapping.EnglishLetterDistribution(DefaultConfig)
	is.NoErr(err)
	k, err := kwg.MakeKWG(ld, "TESTLEX", testWords)
	is.NoErr(err)
	return k, ld
}

func testLeaves(t testing.TB, ld *tilemapping.LetterDistribution) *equity.KLV {
	is := is.New(t)
	klv, err := equity.MakeKLV(ld, map[string]float64{
		"AB":  1.5,
		"AS":  8.0,
		"?S":  24.5,
		"ABS": 10.0,
		"AA":  -3.0,
		"AAB": 2.0,
		"SU":  4.0,
		"BU":  -1.0,
	})
	is.NoErr(err)
	return klv
}

// cabBoard returns a board with CAB played on row 8, starting at 8D.
func cabBoard(t testing.TB, k *kwg.KWG, ld *tilemapping.LetterDistribution) *board.GameBoard {
	b := board.MakeBoard(board.CrosswordGameBoard)
	b.SetRow(7, "   CAB", k.GetAlphabet())
	b.GenAllCrossSets(k, ld)
	b.UpdateAllAnchors()
	return b
}

func countByAction(plays []*move.Move, action move.MoveType) int {
	n := 0
	for _, m := range plays {
		if m.Action() == action {
			n++
		}
	}
	return n
}

func TestGenAllEmptyBoard(t *testing.T) {
	is := is.New(t)
	k, ld := testKWG(t)
	alph := k.GetAlphabet()
	b := board.MakeBoard(board.CrosswordGameBoard)

	gen := NewGordonGenerator(k, b, ld)
	rack := tilemapping.RackFromString("CABS", alph)
	plays := gen.GenAll(rack, false)

	// AB, BA (2 placements each), CAB (3), CABS and BACS (4 each) can
	// all be played through the start square, plus a pass.
	is.Equal(countByAction(plays, move.MoveTypePlay), 15)
	is.Equal(countByAction(plays, move.MoveTypePass), 1)
	is.Equal(len(plays), 16)

	// Everything on an empty board is generated horizontally; the
	// vertical versions would just be transpositions.
	for _, m := range plays {
		if m.Action() != move.MoveTypePlay {
			continue
		}
		_, _, vert := m.CoordsAndVertical()
		is.True(!vert)
	}

	gen.SortPlaysByEquity()
	// 16 points for the four-tile words; BACS beats CABS on the tile
	// tie-break, and 8E is the leftmost position.
	best := gen.Plays()[0]
	is.Equal(best.ShortDescription(), "8E BACS")
	is.Equal(best.Score(), 16)
	is.Equal(best.Equity(), 16.0)
}

func TestGenSingleTileHook(t *testing.T) {
	is := is.New(t)
	k, ld := testKWG(t)
	alph := k.GetAlphabet()
	b := cabBoard(t, k, ld)

	gen := NewGordonGenerator(k, b, ld)
	rack := tilemapping.RackFromString("S", alph)
	plays := gen.GenAll(rack, false)

	// The only spot for the S is the front hook making CABS.
	is.Equal(len(plays), 2)
	is.Equal(countByAction(plays, move.MoveTypePlay), 1)

	var hook *move.Move
	for _, m := range plays {
		if m.Action() == move.MoveTypePlay {
			hook = m
		}
	}
	is.Equal(hook.Score(), 8)
	is.Equal(hook.TilesPlayed(), 1)
	row, col, vert := hook.CoordsAndVertical()
	is.Equal(row, 7)
	is.Equal(col, 3)
	is.True(!vert)
	is.Equal(hook.Tiles().UserVisiblePlayedTiles(alph), "...S")
}

func TestGenPlaythrough(t *testing.T) {
	is := is.New(t)
	k, ld := testKWG(t)
	alph := k.GetAlphabet()
	b := cabBoard(t, k, ld)

	gen := NewGordonGenerator(k, b, ld)
	rack := tilemapping.RackFromString("SUBA", alph)
	plays := gen.GenAll(rack, false)

	// SCUBA plays vertically through the C, once.
	scubas := 0
	for _, m := range plays {
		if m.Action() != move.MoveTypePlay {
			continue
		}
		if m.Tiles().UserVisiblePlayedTiles(alph) == "S.UBA" {
			scubas++
			row, col, vert := m.CoordsAndVertical()
			is.Equal(row, 6)
			is.Equal(col, 3)
			is.True(vert)
			is.Equal(m.TilesPlayed(), 4)
			is.Equal(m.Score(), b.ScoreMove(m, ld))
		}
	}
	is.Equal(scubas, 1)
}

func TestGenScoresMatchBoardScore(t *testing.T) {
	is := is.New(t)
	k, ld := testKWG(t)
	alph := k.GetAlphabet()
	b := cabBoard(t, k, ld)

	gen := NewGordonGenerator(k, b, ld)
	rack := tilemapping.RackFromString("SUBA?", alph)
	plays := gen.GenAll(rack, false)

	// The generator scores incrementally; cross-check every placement
	// against the standalone scorer.
	nplacements := 0
	for _, m := range plays {
		if m.Action() != move.MoveTypePlay {
			continue
		}
		nplacements++
		is.Equal(m.Score(), b.ScoreMove(m, ld))
	}
	is.True(nplacements > 10)
}

func TestGenBlankPlays(t *testing.T) {
	is := is.New(t)
	k, ld := testKWG(t)
	alph := k.GetAlphabet()
	b := cabBoard(t, k, ld)

	gen := NewGordonGenerator(k, b, ld)
	rack := tilemapping.RackFromString("?", alph)
	plays := gen.GenAll(rack, false)

	// The blank hooks CABS and forms AA, AB, and BA against the board
	// tiles; it scores zero itself.
	is.Equal(countByAction(plays, move.MoveTypePlay), 7)
	maxScore := 0
	for _, m := range plays {
		if m.Action() != move.MoveTypePlay {
			continue
		}
		blanked := false
		for _, ml := range m.Tiles() {
			if ml.IsBlanked() {
				blanked = true
			}
		}
		is.True(blanked)
		is.Equal(m.Score(), b.ScoreMove(m, ld))
		if m.Score() > maxScore {
			maxScore = m.Score()
		}
	}
	// Best is the blank S making CABS: 3 + 1 + 3 + 0.
	is.Equal(maxScore, 7)
}

func TestGenEmptyRack(t *testing.T) {
	is := is.New(t)
	k, ld := testKWG(t)
	alph := k.GetAlphabet()
	b := cabBoard(t, k, ld)

	gen := NewGordonGenerator(k, b, ld)
	plays := gen.GenAll(tilemapping.RackFromString("", alph), false)
	is.Equal(len(plays), 1)
	is.Equal(plays[0].Action(), move.MoveTypePass)
}

func TestGenNoPlacements(t *testing.T) {
	is := is.New(t)
	k, ld := testKWG(t)
	alph := k.GetAlphabet()
	b := cabBoard(t, k, ld)

	// Nothing in the lexicon uses a Q or Z.
	gen := NewGordonGenerator(k, b, ld)
	plays := gen.GenAll(tilemapping.RackFromString("QZ", alph), false)
	is.Equal(len(plays), 1)
	is.Equal(plays[0].Action(), move.MoveTypePass)

	// The top-play path agrees: the pass is the only candidate.
	gen2 := NewGordonGenerator(k, b, ld)
	gen2.SetRecordOnlyBest(true)
	plays = gen2.GenAll(tilemapping.RackFromString("QZ", alph), false)
	is.Equal(len(plays), 1)
	is.Equal(plays[0].Action(), move.MoveTypePass)
}

func TestGenExchanges(t *testing.T) {
	is := is.New(t)
	k, ld := testKWG(t)
	alph := k.GetAlphabet()
	b := board.MakeBoard(board.CrosswordGameBoard)

	gen := NewGordonGenerator(k, b, ld)
	rack := tilemapping.RackFromString("CABS", alph)
	plays := gen.GenAll(rack, true)
	// 2^4 - 1 nonempty subsets of four distinct tiles.
	is.Equal(countByAction(plays, move.MoveTypeExchange), 15)

	// Duplicate letters only produce distinct multisets: the number of
	// copies of each letter matters, not which copy.
	gen = NewGordonGenerator(k, b, ld)
	rack = tilemapping.RackFromString("AAB?", alph)
	plays = gen.GenAll(rack, true)
	is.Equal(countByAction(plays, move.MoveTypeExchange), 11)
}

func TestGenBingo(t *testing.T) {
	is := is.New(t)
	k, ld := testKWG(t)
	alph := k.GetAlphabet()
	b := board.MakeBoard(board.CrosswordGameBoard)

	gen := NewGordonGenerator(k, b, ld)
	rack := tilemapping.RackFromString("AAABCSS", alph)
	gen.GenAll(rack, false)
	gen.SortPlaysByEquity()

	// CASABAS with the C on the 8D double letter square: (11 + 3) * 2
	// plus the bingo bonus. The same score is available at 8H, but 8D
	// wins the position tie-break.
	best := gen.Plays()[0]
	is.Equal(best.ShortDescription(), "8D CASABAS")
	is.Equal(best.Score(), 78)
	is.True(best.BingoPlayed())
}

func TestLeaveMap(t *testing.T) {
	is := is.New(t)
	k, ld := testKWG(t)
	alph := k.GetAlphabet()
	b := board.MakeBoard(board.CrosswordGameBoard)

	gen := NewGordonGenerator(k, b, ld)
	calc := &equity.ExhaustiveLeaveCalculator{}
	calc.SetLeaves(testLeaves(t, ld))
	gen.leaveCalc = calc

	rack := tilemapping.RackFromString("ABS", alph)
	gen.initLeaveMap(rack)
	is.True(gen.leaveMapEnabled)
	// Nothing played yet; the leave is the whole rack.
	is.Equal(gen.leaveMapValue(), 10.0)

	s, err := alph.Val('S')
	is.NoErr(err)
	bee, err := alph.Val('B')
	is.NoErr(err)

	rack.Take(s)
	gen.leaveMapTakeTile(s, rack.LetArr[s])
	is.Equal(gen.leaveMapValue(), 1.5) // AB

	rack.Take(bee)
	gen.leaveMapTakeTile(bee, rack.LetArr[bee])
	is.Equal(gen.leaveMapValue(), 0.0) // lone A is unknown

	gen.leaveMapReturnTile(bee, rack.LetArr[bee])
	rack.Add(bee)
	gen.leaveMapReturnTile(s, rack.LetArr[s])
	rack.Add(s)
	is.Equal(gen.leaveMapValue(), 10.0)
}

func TestLeaveMapDuplicates(t *testing.T) {
	is := is.New(t)
	k, ld := testKWG(t)
	alph := k.GetAlphabet()
	b := board.MakeBoard(board.CrosswordGameBoard)

	gen := NewGordonGenerator(k, b, ld)
	calc := &equity.ExhaustiveLeaveCalculator{}
	calc.SetLeaves(testLeaves(t, ld))
	gen.leaveCalc = calc

	rack := tilemapping.RackFromString("AAB", alph)
	gen.initLeaveMap(rack)
	is.Equal(gen.leaveMapValue(), 2.0) // AAB

	a, err := alph.Val('A')
	is.NoErr(err)
	bee, err := alph.Val('B')
	is.NoErr(err)

	// Taking either copy of the A lands on the same leave.
	rack.Take(a)
	gen.leaveMapTakeTile(a, rack.LetArr[a])
	is.Equal(gen.leaveMapValue(), 1.5) // AB

	rack.Take(bee)
	gen.leaveMapTakeTile(bee, rack.LetArr[bee])
	gen.leaveMapReturnTile(bee, rack.LetArr[bee])
	rack.Add(bee)
	is.Equal(gen.leaveMapValue(), 1.5)

	gen.leaveMapReturnTile(a, rack.LetArr[a])
	rack.Add(a)
	rack.Take(bee)
	gen.leaveMapTakeTile(bee, rack.LetArr[bee])
	is.Equal(gen.leaveMapValue(), -3.0) // AA
}

func TestBestLeaves(t *testing.T) {
	is := is.New(t)
	k, ld := testKWG(t)
	alph := k.GetAlphabet()
	b := board.MakeBoard(board.CrosswordGameBoard)

	gen := NewGordonGenerator(k, b, ld)
	calc := &equity.ExhaustiveLeaveCalculator{}
	calc.SetLeaves(testLeaves(t, ld))
	gen.leaveCalc = calc

	rack := tilemapping.RackFromString("ABS", alph)
	gen.initLeaveMap(rack)
	for i := range gen.bestLeaves {
		gen.bestLeaves[i] = 0
	}
	gen.generateExchangeMoves(rack, 0, 0, false)

	// Singles are all unknown; AS is the best pair and the full rack
	// the best triple. Negative leaves never beat the zero floor.
	is.Equal(gen.bestLeaves[0], 0.0)
	is.Equal(gen.bestLeaves[1], 8.0)
	is.Equal(gen.bestLeaves[2], 10.0)

	// The rack comes back intact from the enumeration.
	is.Equal(int(rack.NumTiles()), 3)
}
