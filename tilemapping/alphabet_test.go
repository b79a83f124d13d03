package tilemapping

import (
	"testing"

	"github.com/matryer/is"
)

func TestVal(t *testing.T) {
	is := is.New(t)
	alph := EnglishAlphabet()

	ml, err := alph.Val('A')
	is.NoErr(err)
	is.Equal(ml, MachineLetter(1))

	ml, err = alph.Val('Z')
	is.NoErr(err)
	is.Equal(ml, MachineLetter(26))

	ml, err = alph.Val('?')
	is.NoErr(err)
	is.Equal(ml, MachineLetter(0))

	// Lowercase letters are designated blanks.
	ml, err = alph.Val('c')
	is.NoErr(err)
	is.Equal(ml, MachineLetter(3).Blank())

	// Play-through marker.
	ml, err = alph.Val('.')
	is.NoErr(err)
	is.Equal(ml, MachineLetter(0))

	_, err = alph.Val('!')
	is.True(err != nil)
}

func TestToMachineLetters(t *testing.T) {
	is := is.New(t)
	alph := EnglishAlphabet()

	mls, err := ToMachineLetters("CAbS", alph)
	is.NoErr(err)
	is.Equal(mls, []MachineLetter{3, 1, 2 | 0x80, 19})

	_, err = ToMachineLetters("CA_S", alph)
	is.True(err != nil)
}

func TestUserVisible(t *testing.T) {
	is := is.New(t)
	alph := EnglishAlphabet()

	mw := MachineWord([]MachineLetter{3, 1, 2 | 0x80, 19})
	is.Equal(mw.UserVisible(alph), "CAbS")

	// Zeroes render as undesignated blanks normally, and as
	// play-through markers in a play string.
	mw = MachineWord([]MachineLetter{19, 0, 21, 2, 1})
	is.Equal(mw.UserVisible(alph), "S?UBA")
	is.Equal(mw.UserVisiblePlayedTiles(alph), "S.UBA")
}

func TestBlanking(t *testing.T) {
	is := is.New(t)

	ml := MachineLetter(5)
	is.True(!ml.IsBlanked())
	is.True(ml.Blank().IsBlanked())
	is.Equal(ml.Blank().Unblank(), ml)
	is.Equal(ml.Unblank(), ml)
}

func TestMachineWordScore(t *testing.T) {
	is := is.New(t)
	ld := englishLD(t)
	alph := ld.TileMapping()

	mw, err := ToMachineWord("CABS", alph)
	is.NoErr(err)
	is.Equal(mw.Score(ld), 8)

	// The designated blank scores zero; play-through markers score zero.
	mw, err = ToMachineWord("C.bS", alph)
	is.NoErr(err)
	is.Equal(mw.Score(ld), 4)
}
