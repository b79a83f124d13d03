package move

import (
	"testing"

	"github.com/matryer/is"

	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

type coordTestStruct struct {
	row      int
	col      int
	vertical bool
	output   string
}

var coordTests = []coordTestStruct{
	{0, 0, false, "1A"},
	{0, 0, true, "A1"},
	{14, 14, false, "15O"},
	{14, 14, true, "O15"},
	{9, 8, false, "10I"},
	{9, 8, true, "I10"},
	{1, 7, false, "2H"},
	{1, 7, true, "H2"},
}

func TestToBoardGameCoords(t *testing.T) {
	for _, tc := range coordTests {
		calc := ToBoardGameCoords(tc.row, tc.col, tc.vertical)
		if calc != tc.output {
			t.Errorf("For row=%v col=%v vertical=%v got %v, expected %v",
				tc.row, tc.col, tc.vertical, calc, tc.output)
		}
	}
}

func TestFromBoardGameCoords(t *testing.T) {
	for _, tc := range coordTests {
		row, col, vertical := FromBoardGameCoords(tc.output)
		if row != tc.row || col != tc.col || vertical != tc.vertical {
			t.Errorf("For coord %v expected (%v, %v, %v) got (%v, %v, %v)",
				tc.output, tc.row, tc.col, tc.vertical, row, col, vertical)
		}
	}
}

func TestBetterEquity(t *testing.T) {
	is := is.New(t)
	alph := tilemapping.EnglishAlphabet()
	m1 := NewScoringMoveSimple(35, "8D", "HELLO", "QI", alph)
	m1.SetEquity(30)
	m2 := NewScoringMoveSimple(20, "8D", "WORLD", "AE", alph)
	m2.SetEquity(31)
	is.True(m2.Better(m1))
	is.True(!m1.Better(m2))
}

func TestBetterTiebreaks(t *testing.T) {
	is := is.New(t)
	alph := tilemapping.EnglishAlphabet()

	// same equity, higher score wins
	m1 := NewScoringMoveSimple(36, "8D", "HELLO", "", alph)
	m2 := NewScoringMoveSimple(35, "8D", "HELLO", "", alph)
	is.True(m1.Better(m2))

	// same equity and score: lower row wins
	m3 := NewScoringMoveSimple(35, "7D", "HELLO", "", alph)
	is.True(m3.Better(m2))

	// then lower column
	m4 := NewScoringMoveSimple(35, "8C", "HELLO", "", alph)
	is.True(m4.Better(m2))

	// then horizontal over vertical
	m5 := NewScoringMoveSimple(35, "D8", "HELLO", "", alph)
	is.True(m2.Better(m5))
	is.True(!m5.Better(m2))

	// then fewer tiles played
	m6 := NewScoringMoveSimple(35, "8D", "HEL.O", "", alph)
	is.True(m6.Better(m2))

	// then the lexicographically smaller tile string
	m7 := NewScoringMoveSimple(35, "8D", "HELLP", "", alph)
	is.True(m2.Better(m7))

	// anything beats an unset move
	is.True(m2.Better(&Move{}))
	is.True(m2.Better(nil))
}

func TestSetAndCopyFrom(t *testing.T) {
	is := is.New(t)
	alph := tilemapping.EnglishAlphabet()
	mw, err := tilemapping.ToMachineWord("CAB", alph)
	is.NoErr(err)
	leave, err := tilemapping.ToMachineWord("EE", alph)
	is.NoErr(err)

	m := &Move{}
	is.True(m.IsEmpty())
	m.Set(mw, leave, 24, 7, 7, 3, false, MoveTypePlay, alph)
	is.True(!m.IsEmpty())

	// mutating the source must not change the move
	mw[0] = 25
	is.Equal(m.TilesString(), "CAB")

	m.SetEquity(31.5)
	other := &Move{}
	other.CopyFrom(m)
	is.Equal(other.ShortDescription(), "8H CAB")
	is.Equal(other.Equity(), 31.5)
	is.Equal(other.Score(), 24)
}

func TestFullRack(t *testing.T) {
	is := is.New(t)
	alph := tilemapping.EnglishAlphabet()
	m := NewScoringMoveSimple(30, "8D", "HeLLO", "AB", alph)
	is.Equal(m.FullRack(), "?ABHLLO")
}
