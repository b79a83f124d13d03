package tilemapping

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestScoreOn(t *testing.T) {
	ld := englishLD(t)
	type racktest struct {
		rack string
		pts  int
	}
	testCases := []racktest{
		{"ABCDEFG", 16},
		{"XYZ", 22},
		{"??", 0},
		{"?QWERTY", 21},
		{"RETINAO", 7},
	}
	for _, tc := range testCases {
		r := RackFromString(tc.rack, ld.TileMapping())
		score := r.ScoreOn(ld)
		if score != tc.pts {
			t.Errorf("For %v, expected %v, got %v", tc.rack, tc.pts, score)
		}
	}
}

func emptyLetArr(alph *TileMapping) []int {
	return make([]int, alph.NumLetters()+1)
}

func TestRackFromString(t *testing.T) {
	alph := EnglishAlphabet()
	rack := RackFromString("AENPPSW", alph)

	expected := emptyLetArr(alph)
	expected[1] = 1
	expected[5] = 1
	expected[14] = 1
	expected[16] = 2
	expected[19] = 1
	expected[23] = 1

	assert.Equal(t, expected, rack.LetArr)
	assert.Equal(t, uint8(7), rack.NumTiles())
}

func TestRackTake(t *testing.T) {
	alph := EnglishAlphabet()
	rack := RackFromString("AENPPSW", alph)
	rack.Take(MachineLetter(16))
	expected := emptyLetArr(alph)
	expected[1] = 1
	expected[5] = 1
	expected[14] = 1
	expected[16] = 1
	expected[19] = 1
	expected[23] = 1

	assert.Equal(t, expected, rack.LetArr)

	rack.Take(MachineLetter(16))
	expected[16] = 0
	assert.Equal(t, expected, rack.LetArr)
}

func TestRackTakeAll(t *testing.T) {
	alph := EnglishAlphabet()
	rack := RackFromString("AENPPSW", alph)

	rack.Take(MachineLetter(16))
	rack.Take(MachineLetter(16))
	rack.Take(MachineLetter(1))
	rack.Take(MachineLetter(5))
	rack.Take(MachineLetter(14))
	rack.Take(MachineLetter(19))
	rack.Take(MachineLetter(23))
	expected := emptyLetArr(alph)

	assert.Equal(t, expected, rack.LetArr)
	assert.True(t, rack.Empty())
}

func TestRackTakeAndAdd(t *testing.T) {
	alph := EnglishAlphabet()
	rack := RackFromString("AENPPSW", alph)

	rack.Take(MachineLetter(16))
	rack.Take(MachineLetter(16))
	rack.Take(MachineLetter(1))
	rack.Add(MachineLetter(1))

	expected := emptyLetArr(alph)
	expected[1] = 1
	expected[5] = 1
	expected[14] = 1
	expected[19] = 1
	expected[23] = 1

	assert.Equal(t, expected, rack.LetArr)
	assert.Equal(t, uint8(6), rack.NumTiles())
}

func TestRackCopy(t *testing.T) {
	is := is.New(t)
	alph := EnglishAlphabet()
	rack := RackFromString("AENPPSW", alph)

	c := rack.Copy()
	c.Take(MachineLetter(1))
	is.Equal(rack.NumTiles(), uint8(7))
	is.Equal(c.NumTiles(), uint8(6))

	rack.CopyFrom(c)
	is.Equal(rack.NumTiles(), uint8(6))
	is.Equal(rack.CountOf(MachineLetter(1)), 0)
}

func TestRackString(t *testing.T) {
	is := is.New(t)
	alph := EnglishAlphabet()
	// TilesOn sorts, with the blank first.
	rack := RackFromString("PWASPEN?", alph)
	is.Equal(rack.String(), "?AENPPSW")
}
