package board

import (
	"testing"

	"github.com/matryer/is"

	"github.com/olaugh/magpie-retro-sub001/config"
	"github.com/olaugh/magpie-retro-sub001/kwg"
	"github.com/olaugh/magpie-retro-sub001/move"
	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

var DefaultConfig = config.DefaultConfig()

var testWords = []string{
	"AB", "BA", "ABA", "CABS", "CAB", "BACS", "ABACUS", "SCUBA",
	"CUB", "CUBS", "BUS", "SUB", "AA", "AAS",
}

func testKWG(t testing.TB) (*kwg.KWG, *tilemapping.LetterDistribution) {
	is := is.New(t)
	ld, err := tilemapping.EnglishLetterDistribution(DefaultConfig)
	is.NoErr(err)
	k, err := kwg.MakeKWG(ld, "TESTLEX", testWords)
	is.NoErr(err)
	return k, ld
}

func TestMakeBoard(t *testing.T) {
	is := is.New(t)
	b := MakeBoard(CrosswordGameBoard)
	is.Equal(b.Dim(), 15)
	is.True(b.IsEmpty())
	is.Equal(b.TilesPlayed(), 0)
	// The start square is the lone anchor on an empty board.
	is.True(b.IsAnchor(7, 7))
	for row := 0; row < 15; row++ {
		for col := 0; col < 15; col++ {
			if row == 7 && col == 7 {
				continue
			}
			is.True(!b.IsAnchor(row, col))
		}
	}
	// Before anything is on the board, every square allows every letter
	// and has no perpendicular word.
	is.Equal(b.GetCrossSet(7, 7, HorizontalDirection), TrivialCrossSet)
	is.Equal(b.GetCrossScore(7, 7, HorizontalDirection), -1)
	is.Equal(b.GetCrossScore(0, 0, VerticalDirection), -1)
}

func TestBonusSquares(t *testing.T) {
	is := is.New(t)
	b := MakeBoard(CrosswordGameBoard)
	is.Equal(b.GetBonus(0, 0), Bonus3WS)
	is.Equal(b.GetBonus(7, 7), Bonus2WS)
	is.Equal(b.GetBonus(0, 3), Bonus2LS)
	is.Equal(b.GetBonus(1, 5), Bonus3LS)
	is.Equal(b.GetBonus(1, 1), Bonus2WS)
	is.Equal(b.GetBonus(0, 1), NoBonus)
	is.Equal(Bonus3WS.WordMultiplier(), 3)
	is.Equal(Bonus3WS.LetterMultiplier(), 1)
	is.Equal(Bonus3LS.LetterMultiplier(), 3)
	is.Equal(Bonus3LS.WordMultiplier(), 1)
}

func TestTranspose(t *testing.T) {
	is := is.New(t)
	k, ld := testKWG(t)
	alph := k.GetAlphabet()
	b := MakeBoard(CrosswordGameBoard)
	b.SetRow(7, "   CAB", alph)
	b.GenAllCrossSets(k, ld)
	b.UpdateAllAnchors()

	c, err := alph.Val('C')
	is.NoErr(err)

	b.Transpose()
	is.True(b.IsTransposed())
	// (7, 3) becomes (3, 7) in the transposed view.
	is.Equal(b.GetLetter(3, 7), c)
	is.True(!b.HasLetter(7, 3))
	// Anchors follow along.
	is.True(b.IsAnchor(2, 7))
	b.Transpose()
	is.True(!b.IsTransposed())
	is.Equal(b.GetLetter(7, 3), c)
}

func TestAnchorsAfterSetRow(t *testing.T) {
	is := is.New(t)
	k, ld := testKWG(t)
	alph := k.GetAlphabet()
	b := MakeBoard(CrosswordGameBoard)
	b.SetRow(7, "   CAB", alph)
	b.GenAllCrossSets(k, ld)
	b.UpdateAllAnchors()

	// Only the empty squares next to CAB are anchors.
	expected := map[[2]int]bool{
		{7, 2}: true, {7, 6}: true,
		{6, 3}: true, {6, 4}: true, {6, 5}: true,
		{8, 3}: true, {8, 4}: true, {8, 5}: true,
	}
	for row := 0; row < 15; row++ {
		for col := 0; col < 15; col++ {
			is.Equal(b.IsAnchor(row, col), expected[[2]int{row, col}])
		}
	}
}

func TestPlayMoveIncrementalUpdate(t *testing.T) {
	is := is.New(t)
	k, ld := testKWG(t)
	alph := k.GetAlphabet()
	b := MakeBoard(CrosswordGameBoard)
	b.SetRow(7, "   CAB", alph)
	b.GenAllCrossSets(k, ld)
	b.UpdateAllAnchors()

	m := move.NewScoringMoveSimple(8, "8G", "S", "", alph)
	b.PlayMove(m, k, ld)
	is.Equal(b.TilesPlayed(), 4)

	// The incremental update must leave the board exactly as a full
	// recomputation would.
	full := b.Copy()
	full.GenAllCrossSets(k, ld)
	full.UpdateAllAnchors()
	is.True(b.Equals(full))
}

func TestPlayMoveVerticalIncrementalUpdate(t *testing.T) {
	is := is.New(t)
	k, ld := testKWG(t)
	alph := k.GetAlphabet()
	b := MakeBoard(CrosswordGameBoard)
	b.SetRow(7, "   CAB", alph)
	b.GenAllCrossSets(k, ld)
	b.UpdateAllAnchors()

	// AAS down column G; the S extends CAB to CABS.
	m := move.NewScoringMoveSimple(12, "G6", "AAS", "", alph)
	b.PlayMove(m, k, ld)
	is.Equal(b.TilesPlayed(), 6)

	full := b.Copy()
	full.GenAllCrossSets(k, ld)
	full.UpdateAllAnchors()
	is.True(b.Equals(full))
}

func TestSaveRestoreSpan(t *testing.T) {
	is := is.New(t)
	k, ld := testKWG(t)
	alph := k.GetAlphabet()
	b := MakeBoard(CrosswordGameBoard)
	b.SetRow(7, "   CAB", alph)
	b.GenAllCrossSets(k, ld)
	b.UpdateAllAnchors()

	before := b.Copy()
	m := move.NewScoringMoveSimple(8, "8G", "S", "", alph)
	snap := b.SaveSpan(m)
	b.PlayMove(m, k, ld)
	is.True(!b.Equals(before))
	b.RestoreSpan(snap)
	is.True(b.Equals(before))
}

func TestCopyAndCopyFrom(t *testing.T) {
	is := is.New(t)
	k, ld := testKWG(t)
	alph := k.GetAlphabet()
	b := MakeBoard(CrosswordGameBoard)
	b.SetRow(7, "   CAB", alph)
	b.GenAllCrossSets(k, ld)
	b.UpdateAllAnchors()

	c := b.Copy()
	is.True(b.Equals(c))

	m := move.NewScoringMoveSimple(8, "8G", "S", "", alph)
	b.PlayMove(m, k, ld)
	is.True(!b.Equals(c))

	b.CopyFrom(c)
	is.True(b.Equals(c))
}

func TestScoreMoveOpening(t *testing.T) {
	is := is.New(t)
	k, ld := testKWG(t)
	_ = k
	alph := ld.TileMapping()
	b := MakeBoard(CrosswordGameBoard)

	// CAB through the start square; the double word score doubles it.
	m := move.NewScoringMoveSimple(0, "8F", "CAB", "", alph)
	is.Equal(b.ScoreMove(m, ld), 14)

	// A designated blank scores zero for its letter.
	m = move.NewScoringMoveSimple(0, "8F", "CaB", "", alph)
	is.Equal(b.ScoreMove(m, ld), 12)
}

func TestScoreMoveHookAndCross(t *testing.T) {
	is := is.New(t)
	k, ld := testKWG(t)
	alph := k.GetAlphabet()
	b := MakeBoard(CrosswordGameBoard)
	b.SetRow(7, "   CAB", alph)
	b.GenAllCrossSets(k, ld)
	b.UpdateAllAnchors()

	// S at 8G extends CAB to CABS.
	m := move.NewScoringMoveSimple(0, "8G", "S", "", alph)
	is.Equal(b.ScoreMove(m, ld), 8)

	// AAS down column G: the second A lands on a double letter square,
	// and the S also scores in CABS.
	m = move.NewScoringMoveSimple(0, "G6", "AAS", "", alph)
	is.Equal(b.ScoreMove(m, ld), 12)
}

func TestFormedWords(t *testing.T) {
	is := is.New(t)
	k, ld := testKWG(t)
	alph := k.GetAlphabet()
	b := MakeBoard(CrosswordGameBoard)
	b.SetRow(7, "   CAB", alph)
	b.GenAllCrossSets(k, ld)
	b.UpdateAllAnchors()
	_ = ld

	m := move.NewScoringMoveSimple(0, "8G", "S", "", alph)
	words, err := b.FormedWords(m)
	is.NoErr(err)
	is.Equal(len(words), 1)
	is.Equal(words[0].UserVisible(alph), "CABS")
}

func TestErrorIfIllegalPlay(t *testing.T) {
	is := is.New(t)
	k, ld := testKWG(t)
	alph := k.GetAlphabet()
	b := MakeBoard(CrosswordGameBoard)

	toMW := func(s string) tilemapping.MachineWord {
		mw, err := tilemapping.ToMachineWord(s, alph)
		is.NoErr(err)
		return mw
	}

	// First move must cover the start square.
	is.True(b.ErrorIfIllegalPlay(0, 0, false, toMW("CAB")) != nil)
	is.NoErr(b.ErrorIfIllegalPlay(7, 5, false, toMW("CAB")))

	b.SetRow(7, "   CAB", alph)
	b.GenAllCrossSets(k, ld)
	b.UpdateAllAnchors()

	// Disconnected plays are rejected; connected ones are not.
	is.True(b.ErrorIfIllegalPlay(0, 0, false, toMW("AB")) != nil)
	is.NoErr(b.ErrorIfIllegalPlay(7, 6, false, toMW("S")))
	// Can't place a fresh tile on an occupied square.
	is.True(b.ErrorIfIllegalPlay(7, 3, false, toMW("BUS")) != nil)
	// Playing right off the edge fails.
	is.True(b.ErrorIfIllegalPlay(7, 13, false, toMW("CABS")) != nil)
}
