package equity

import (
	"github.com/olaugh/magpie-retro-sub001/board"
	"github.com/olaugh/magpie-retro-sub001/move"
	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

// NoLeaveCalculator does not take leave into account at all. It is the
// greedy strategy.
type NoLeaveCalculator struct{}

func NewNoLeaveCalculator() *NoLeaveCalculator {
	return &NoLeaveCalculator{}
}

func (nls *NoLeaveCalculator) Equity(play *move.Move, board *board.GameBoard,
	bag *tilemapping.Bag, oppRack *tilemapping.Rack) float64 {
	score := play.Score()
	otherAdjustments := 0.0

	if board.IsEmpty() {
		otherAdjustments += placementAdjustment(play, board, bag.LetterDistribution())
	}

	if bag.TilesRemaining() == 0 {
		otherAdjustments += endgameAdjustment(play, oppRack, bag.LetterDistribution())
	}
	return float64(score) + otherAdjustments
}

func (nls *NoLeaveCalculator) LeaveValue(leave tilemapping.MachineWord) float64 {
	return 0.0
}
