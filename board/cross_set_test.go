package board

import (
	"testing"

	"github.com/matryer/is"

	"github.com/olaugh/magpie-retro-sub001/move"
	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

func crossSetFromString(t testing.TB, letters string, alph *tilemapping.TileMapping) CrossSet {
	is := is.New(t)
	cs := CrossSet(0)
	for _, r := range letters {
		ml, err := alph.Val(r)
		is.NoErr(err)
		cs.Set(ml)
	}
	return cs
}

func TestCrossSetsAroundWord(t *testing.T) {
	is := is.New(t)
	k, ld := testKWG(t)
	alph := k.GetAlphabet()
	b := MakeBoard(CrosswordGameBoard)
	b.SetRow(7, "   CAB", alph)
	b.GenAllCrossSets(k, ld)
	b.UpdateAllAnchors()

	// Left of CAB, a horizontal play is unconstrained; the cross word
	// would be _CAB for a vertical play, and nothing fits there.
	is.Equal(b.GetCrossSet(7, 2, HorizontalDirection), TrivialCrossSet)
	is.Equal(b.GetCrossScore(7, 2, HorizontalDirection), -1)
	is.Equal(b.GetCrossSet(7, 2, VerticalDirection), CrossSet(0))
	is.Equal(b.GetCrossScore(7, 2, VerticalDirection), 7)

	// Right of CAB, only S makes a word (CABS) in a vertical play.
	is.Equal(b.GetCrossSet(7, 6, VerticalDirection),
		crossSetFromString(t, "S", alph))
	is.Equal(b.GetCrossScore(7, 6, VerticalDirection), 7)

	// Above and below the A, a horizontal play can form AA, BA / AA, AB.
	is.Equal(b.GetCrossSet(6, 4, HorizontalDirection),
		crossSetFromString(t, "AB", alph))
	is.Equal(b.GetCrossScore(6, 4, HorizontalDirection), 1)
	is.Equal(b.GetCrossSet(8, 4, HorizontalDirection),
		crossSetFromString(t, "AB", alph))
	is.Equal(b.GetCrossScore(8, 4, HorizontalDirection), 1)

	// A square far from any tiles stays trivial.
	is.Equal(b.GetCrossSet(0, 0, HorizontalDirection), TrivialCrossSet)
	is.Equal(b.GetCrossSet(0, 0, VerticalDirection), TrivialCrossSet)
	is.Equal(b.GetCrossScore(0, 0, VerticalDirection), -1)
}

func TestCrossSetsOccupiedSquare(t *testing.T) {
	is := is.New(t)
	k, ld := testKWG(t)
	alph := k.GetAlphabet()
	b := MakeBoard(CrosswordGameBoard)
	b.SetRow(7, "   CAB", alph)
	b.GenAllCrossSets(k, ld)

	// Occupied squares carry no cross or extension data.
	sq := b.GetSqIdx(7, 3)
	is.Equal(b.GetCrossSet(7, 3, HorizontalDirection), CrossSet(0))
	is.Equal(b.GetCrossSet(7, 3, VerticalDirection), CrossSet(0))
	is.Equal(b.GetCrossScore(7, 3, HorizontalDirection), 0)
	is.Equal(b.GetLeftExtSetIdx(sq), CrossSet(0))
	is.Equal(b.GetRightExtSetIdx(sq), CrossSet(0))
}

func TestExtensionSets(t *testing.T) {
	is := is.New(t)
	k, ld := testKWG(t)
	alph := k.GetAlphabet()
	b := MakeBoard(CrosswordGameBoard)
	b.SetRow(7, "   CAB", alph)
	b.GenAllCrossSets(k, ld)

	// On either side of CAB, the only letter that can sit next to the
	// run as part of a longer main word is the S of CABS.
	is.Equal(b.GetLeftExtSetIdx(b.GetSqIdx(7, 2)),
		crossSetFromString(t, "S", alph))
	is.Equal(b.GetRightExtSetIdx(b.GetSqIdx(7, 2)), TrivialCrossSet)
	is.Equal(b.GetRightExtSetIdx(b.GetSqIdx(7, 6)),
		crossSetFromString(t, "S", alph))
	is.Equal(b.GetLeftExtSetIdx(b.GetSqIdx(7, 6)), TrivialCrossSet)

	// In the transposed view the vertical extension sets appear. Above
	// the A at (7, 4), a vertical word ending there can be AA or BA.
	b.Transpose()
	is.Equal(b.GetLeftExtSetIdx(b.GetSqIdx(4, 6)),
		crossSetFromString(t, "AB", alph))
	is.Equal(b.GetRightExtSetIdx(b.GetSqIdx(4, 6)), TrivialCrossSet)
	b.Transpose()
}

func TestUpdateCrossSetsForMoveMatchesFullRecompute(t *testing.T) {
	is := is.New(t)
	k, ld := testKWG(t)
	alph := k.GetAlphabet()

	plays := []struct {
		coords string
		word   string
	}{
		{"8F", "CAB"},
		{"8I", "S"},
		{"F7", "S.UBA"},
		{"9E", "C.B"},
	}

	b := MakeBoard(CrosswordGameBoard)
	for _, p := range plays {
		m := move.NewScoringMoveSimple(0, p.coords, p.word, "", alph)
		b.PlayMove(m, k, ld)

		full := b.Copy()
		full.GenAllCrossSets(k, ld)
		full.UpdateAllAnchors()
		is.True(b.Equals(full))
	}
}
