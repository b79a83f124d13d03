package movegen

import (
	"github.com/samber/lo"

	"github.com/olaugh/magpie-retro-sub001/equity"
	"github.com/olaugh/magpie-retro-sub001/move"
	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

// A PlayRecorderFunc decides what happens to a play once the generator
// has found it.
type PlayRecorderFunc func(*GordonGenerator, *tilemapping.Rack, int, int, move.MoveType, int)

func NullPlayRecorder(gen *GordonGenerator, a *tilemapping.Rack, leftstrip, rightstrip int,
	t move.MoveType, score int) {
}

// AllPlaysRecorder materializes every play into a move.Move, with its
// equity filled in from the equity calculators when any are set.
func AllPlaysRecorder(gen *GordonGenerator, rack *tilemapping.Rack, leftstrip, rightstrip int,
	t move.MoveType, score int) {

	alph := gen.letterDistribution.TileMapping()

	switch t {
	case move.MoveTypePlay:
		startRow := gen.curRowIdx
		tilesPlayed := gen.tilesPlayed

		startCol := leftstrip
		row := startRow
		col := startCol
		if gen.vertical {
			// We only generate vertical moves with the board transposed,
			// so the row and col are actually transposed.
			row, col = col, row
		}

		length := rightstrip - leftstrip + 1
		if length < 2 {
			return
		}
		word := make([]tilemapping.MachineLetter, length)
		copy(word, gen.strip[startCol:startCol+length])

		play := move.NewScoringMove(score, word, rack.TilesOn(), gen.vertical,
			tilesPlayed, alph, row, col)
		play.SetEquity(gen.sumEquity(play))
		gen.plays = append(gen.plays, play)

	case move.MoveTypeExchange:
		// ignore the empty exchange case
		if rightstrip == 0 {
			return
		}
		exchanged := make([]tilemapping.MachineLetter, rightstrip)
		copy(exchanged, gen.exchangestrip[:rightstrip])
		play := move.NewExchangeMove(exchanged, rack.TilesOn(), alph)
		play.SetEquity(gen.sumEquity(play))
		gen.plays = append(gen.plays, play)

	case move.MoveTypePass:
		play := move.NewPassMove(rack.TilesOn(), alph)
		play.SetEquity(gen.sumEquity(play))
		gen.plays = append(gen.plays, play)

	default:

	}
}

// TopPlayOnlyRecorder keeps only the single best play seen so far. It
// reuses one placeholder move to avoid allocating a move per candidate.
func TopPlayOnlyRecorder(gen *GordonGenerator, rack *tilemapping.Rack, leftstrip, rightstrip int,
	t move.MoveType, score int) {

	var eq float64
	var tilesLength int
	var leaveLength int

	switch t {
	case move.MoveTypePlay:
		startRow := gen.curRowIdx
		tilesPlayed := gen.tilesPlayed

		startCol := leftstrip
		row := startRow
		col := startCol
		if gen.vertical {
			row, col = col, row
		}
		tilesLength = rightstrip - leftstrip + 1
		if tilesLength < 2 {
			return
		}
		// still a window into gen.strip; Set copies it.
		word := gen.strip[startCol : startCol+tilesLength]
		leaveLength = rack.NoAllocTilesOn(gen.leavestrip)

		gen.placeholder.Set(word, gen.leavestrip[:leaveLength], score,
			row, col, tilesPlayed, gen.vertical, move.MoveTypePlay,
			gen.letterDistribution.TileMapping())
		if len(gen.equityCalculators) > 0 {
			eq = gen.sumEquity(gen.placeholder)
		} else {
			eq = float64(score)
		}

	case move.MoveTypeExchange:
		if rightstrip == 0 {
			return
		}
		tilesLength = rightstrip
		exchanged := gen.exchangestrip[:rightstrip]
		leaveLength = rack.NoAllocTilesOn(gen.leavestrip)

		gen.placeholder.Set(exchanged, gen.leavestrip[:leaveLength], 0,
			0, 0, tilesLength, false, move.MoveTypeExchange,
			gen.letterDistribution.TileMapping())
		eq = gen.sumEquity(gen.placeholder)

	case move.MoveTypePass:
		leaveLength = rack.NoAllocTilesOn(gen.leavestrip)
		gen.placeholder.Set(nil, gen.leavestrip[:leaveLength],
			0, 0, 0, 0, false, move.MoveTypePass,
			gen.letterDistribution.TileMapping())
		eq = gen.sumEquity(gen.placeholder)

	default:

	}
	gen.placeholder.SetEquity(eq)
	if gen.placeholder.Better(gen.winner) {
		gen.winner.CopyFrom(gen.placeholder)
		if len(gen.plays) == 0 {
			gen.plays = append(gen.plays, gen.winner)
		} else {
			gen.plays[0] = gen.winner
		}
	}
}

func (gen *GordonGenerator) sumEquity(play *move.Move) float64 {
	if len(gen.equityCalculators) == 0 {
		return float64(play.Score())
	}
	return lo.SumBy(gen.equityCalculators, func(c equity.EquityCalculator) float64 {
		return c.Equity(play, gen.board, gen.bag, gen.oppRack)
	})
}
