package equity

import (
	"github.com/rs/zerolog/log"

	"github.com/olaugh/magpie-retro-sub001/board"
	"github.com/olaugh/magpie-retro-sub001/cache"
	"github.com/olaugh/magpie-retro-sub001/config"
	"github.com/olaugh/magpie-retro-sub001/move"
	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

// CombinedStaticCalculator is a redundant struct that combines
// the function of several calculators. It is only here for speed purposes.
type CombinedStaticCalculator struct {
	leaveValues                Leaves
	preEndgameAdjustmentValues []float64
}

func NewCombinedStaticCalculator(lexiconName string,
	cfg *config.Config, leaveFilename, pegfile string) (
	*CombinedStaticCalculator, error) {

	calc := &CombinedStaticCalculator{}
	if leaveFilename == "" {
		leaveFilename = LeavesFilename
	}
	if pegfile == "" {
		pegfile = PEGAdjustmentFilename
	}
	leaves, err := cache.Load(cfg, "leavefile:"+lexiconName+":"+leaveFilename,
		LeaveCacheLoadFunc)
	if err != nil {
		log.Err(err).Msg("loading-leaves")
	}
	pegValues, err := cache.Load(cfg, "pegfile:"+lexiconName+":"+pegfile,
		PEGCacheLoadFunc)
	if err != nil {
		log.Err(err).Msg("loading-peg-values")
	}
	var ok bool
	calc.leaveValues, ok = leaves.(*KLV)
	if !ok {
		log.Info().Msg("no leaves found, will use greedy strategy")
		calc.leaveValues = &BlankLeaves{}
	}
	calc.preEndgameAdjustmentValues, ok = pegValues.([]float64)
	if !ok {
		log.Info().Msg("no peg values found, will use no pre-endgame strategy")
		calc.preEndgameAdjustmentValues = []float64{}
	}
	return calc, nil
}

// SetLeaves overrides the leave source. Tests use this with MakeKLV.
func (csc *CombinedStaticCalculator) SetLeaves(l Leaves) {
	csc.leaveValues = l
}

func (csc CombinedStaticCalculator) Equity(play *move.Move, board *board.GameBoard,
	bag *tilemapping.Bag, oppRack *tilemapping.Rack) float64 {

	leave := play.Leave()
	leaveAdjustment := 0.0
	if bag.TilesRemaining() > 0 {
		leaveAdjustment = csc.leaveValues.LeaveValue(leave)
	}

	score := play.Score()
	otherAdjustments := 0.0

	if board.IsEmpty() {
		otherAdjustments += placementAdjustment(play, board, bag.LetterDistribution())
	}

	if bag.TilesRemaining() > 0 {
		bagPlusSeven := bag.TilesRemaining() - play.TilesPlayed() + 7
		if bagPlusSeven < len(csc.preEndgameAdjustmentValues) {
			otherAdjustments += csc.preEndgameAdjustmentValues[bagPlusSeven]
		}
	} else {
		// The bag is empty.
		otherAdjustments += endgameAdjustment(play, oppRack, bag.LetterDistribution())
	}

	return float64(score) + leaveAdjustment + otherAdjustments
}

func (csc CombinedStaticCalculator) LeaveValue(leave tilemapping.MachineWord) float64 {
	return csc.leaveValues.LeaveValue(leave)
}
