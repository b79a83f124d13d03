package equity

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/olaugh/magpie-retro-sub001/board"
	"github.com/olaugh/magpie-retro-sub001/cache"
	"github.com/olaugh/magpie-retro-sub001/config"
	"github.com/olaugh/magpie-retro-sub001/move"
	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

// BlankLeaves values every leave at zero. It is the fallback when no
// leave file can be found.
type BlankLeaves struct{}

func (b *BlankLeaves) LeaveValue(leave tilemapping.MachineWord) float64 {
	return float64(0.0)
}

// ExhaustiveLeaveCalculator applies an equity calculation for all leaves
// exhaustively.
type ExhaustiveLeaveCalculator struct {
	leaveValues Leaves
}

func defaultForLexicon(lexiconName string) string {
	// If there doesn't exist a specific folder with the name of the
	// lexicon, we'll call this function.
	if strings.HasPrefix(lexiconName, "CSW") ||
		strings.HasPrefix(lexiconName, "TWL") ||
		strings.HasPrefix(lexiconName, "NWL") ||
		strings.HasPrefix(lexiconName, "ECWL") ||
		strings.HasPrefix(lexiconName, "CEL") ||
		strings.HasPrefix(lexiconName, "NSWL") {

		return "default_english"
	} else if strings.HasPrefix(lexiconName, "RD") {
		return "german"
	} else if strings.HasPrefix(lexiconName, "NSF") {
		return "norwegian"
	} else if strings.HasPrefix(lexiconName, "FRA") {
		return "french"
	}
	return ""
}

func NewExhaustiveLeaveCalculator(lexiconName string,
	cfg *config.Config, leaveFilename string) (
	*ExhaustiveLeaveCalculator, error) {

	calc := &ExhaustiveLeaveCalculator{}
	if leaveFilename == "" {
		leaveFilename = LeavesFilename
	}

	leaves, err := cache.Load(cfg, "leavefile:"+lexiconName+":"+leaveFilename,
		LeaveCacheLoadFunc)
	if err != nil {
		log.Err(err).Msg("loading-leaves")
	}

	var ok bool
	calc.leaveValues, ok = leaves.(*KLV)
	if !ok {
		log.Info().Msg("no leaves found, will use greedy strategy")
		calc.leaveValues = &BlankLeaves{}
	}

	return calc, nil
}

// SetLeaves overrides the leave source. Tests use this with MakeKLV.
func (els *ExhaustiveLeaveCalculator) SetLeaves(l Leaves) {
	els.leaveValues = l
}

func (els ExhaustiveLeaveCalculator) Equity(play *move.Move, board *board.GameBoard,
	bag *tilemapping.Bag, oppRack *tilemapping.Rack) float64 {

	if bag.TilesRemaining() > 0 {
		return float64(play.Score()) + els.LeaveValue(play.Leave())
	}
	return float64(play.Score())
}

func (els ExhaustiveLeaveCalculator) LeaveValue(leave tilemapping.MachineWord) float64 {
	return els.leaveValues.LeaveValue(leave)
}
