package equity

import (
	"errors"

	"github.com/olaugh/magpie-retro-sub001/kwg"
	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

// MakeKLV builds a KLV in memory from a map of leave strings to values.
// It is meant for tests and small experiments; real leave files are
// loaded with ReadKLV. Because the underlying word-graph builder wants
// words of at least two letters, single-tile leaves are not supported
// here and simply look up as zero.
func MakeKLV(ld *tilemapping.LetterDistribution,
	leaves map[string]float64) (*KLV, error) {

	tm := ld.TileMapping()
	words := make([]string, 0, len(leaves))
	mws := make(map[string]tilemapping.MachineWord, len(leaves))
	for s := range leaves {
		mw, err := tilemapping.ToMachineWord(s, tm)
		if err != nil {
			return nil, err
		}
		// Leaves are stored sorted by machine letter.
		for i := 1; i < len(mw); i++ {
			for j := i; j > 0 && mw[j-1] > mw[j]; j-- {
				mw[j-1], mw[j] = mw[j], mw[j-1]
			}
		}
		sorted := mw.UserVisible(tm)
		words = append(words, sorted)
		mws[s] = mw
	}
	k, err := kwg.MakeKWG(ld, "LEAVES", words)
	if err != nil {
		return nil, err
	}
	counts := k.CountWords()
	root := k.GetDawgRootNodeIndex()
	values := make([]int16, counts[root])
	for s, mw := range mws {
		idx := k.GetWordIndexOf(root, counts, mw)
		if idx == kwg.UnfoundIndex {
			return nil, errors.New("leave not found after building: " + s)
		}
		values[idx] = int16(leaves[s] * 256)
	}
	return &KLV{kwg: k, counts: counts, leaveValues: values}, nil
}
