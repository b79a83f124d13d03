package shell

import (
	"testing"

	"github.com/matryer/is"

	"github.com/olaugh/magpie-retro-sub001/move"
	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

func TestMoveTableRow(t *testing.T) {
	is := is.New(t)
	alph := tilemapping.EnglishAlphabet()
	m := move.NewScoringMoveSimple(16, "8F", "CABS", "UUU", alph)
	m.SetEquity(18.5)

	row := moveTableRow(0, m, alph)
	is.Equal(row, "  1: 8F CABS             UUU    16    18.50 ")
}
