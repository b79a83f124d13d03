package equity

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

const (
	PEGAdjustmentFilename = "preendgame.json"
	LeavesFilename        = "leaves.klv2"
)

// stratFileForLexicon opens a strategy file, falling back to the default
// directory for the lexicon's family if there is no lexicon-specific one.
func stratFileForLexicon(strategyDir string, filename string, lexiconName string) (*os.File, error) {
	file, err := os.Open(filepath.Join(strategyDir, lexiconName, filename))
	if err != nil {
		defdir := defaultForLexicon(lexiconName)
		file, err = os.Open(filepath.Join(strategyDir, defdir, filename))
		if err != nil {
			return nil, err
		}
		log.Debug().Str("strat-file", filename).Str("dir", defdir).Msgf(
			"no lexicon-specific strategy")
	}
	return file, nil
}

func loadKLV(strategyPath, leavefile, lexiconName string) (*KLV, error) {
	file, err := stratFileForLexicon(strategyPath, leavefile, lexiconName)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	leaves, err := ReadKLV(file)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("lexiconName", lexiconName).
		Int("leaves-size", len(leaves.leaveValues)).
		Msg("loaded-klv")
	return leaves, nil
}

func loadPEGParams(strategyPath, filename, lexiconName string) ([]float64, error) {
	pegfile, err := stratFileForLexicon(strategyPath, filename, lexiconName)
	if err != nil {
		return nil, err
	}
	defer pegfile.Close()

	bts, err := io.ReadAll(pegfile)
	if err != nil {
		return nil, err
	}

	var adjustmentVals []float64

	err = json.Unmarshal(bts, &adjustmentVals)
	if err != nil {
		return nil, err
	}
	log.Debug().Msgf("size of pre-endgame adjustment array: %v", len(adjustmentVals))
	return adjustmentVals, nil
}
