package tilemapping

import (
	"testing"

	"github.com/matryer/is"

	"github.com/olaugh/magpie-retro-sub001/config"
)

var testConfig = config.DefaultConfig()

func englishLD(t testing.TB) *LetterDistribution {
	is := is.New(t)
	ld, err := EnglishLetterDistribution(testConfig)
	is.NoErr(err)
	return ld
}

func TestEnglishDistribution(t *testing.T) {
	is := is.New(t)
	ld := englishLD(t)

	is.Equal(ld.NumTotalTiles(), 100)
	is.Equal(ld.TileMapping().NumLetters(), uint8(26))

	total := 0
	for _, ct := range ld.Distribution() {
		total += int(ct)
	}
	is.Equal(total, 100)

	// 2 blanks, 12 Es, 1 Z.
	is.Equal(ld.Distribution()[0], uint8(2))
	is.Equal(ld.Distribution()[5], uint8(12))
	is.Equal(ld.Distribution()[26], uint8(1))
}

func TestLetterDistributionScores(t *testing.T) {
	is := is.New(t)
	ld := englishLD(t)

	is.Equal(ld.Score(MachineLetter(1)), 1)   // A
	is.Equal(ld.Score(MachineLetter(17)), 10) // Q
	is.Equal(ld.Score(MachineLetter(26)), 10) // Z
	is.Equal(ld.Score(MachineLetter(0)), 0)   // blank
	// A designated blank still scores as the blank.
	is.Equal(ld.Score(MachineLetter(26).Blank()), 0)
}

func TestLetterDistributionWordScore(t *testing.T) {
	is := is.New(t)
	ld := englishLD(t)

	mls, err := ToMachineLetters("CoOKIE", ld.TileMapping())
	is.NoErr(err)
	is.Equal(ld.WordScore(mls), 11)
}

func TestVowels(t *testing.T) {
	is := is.New(t)
	ld := englishLD(t)

	for _, r := range "AEIOU" {
		ml, err := ld.TileMapping().Val(r)
		is.NoErr(err)
		is.True(ml.IsVowel(ld))
	}
	for _, r := range "BCDZ" {
		ml, err := ld.TileMapping().Val(r)
		is.NoErr(err)
		is.True(!ml.IsVowel(ld))
	}
}
