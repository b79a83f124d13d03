package kwg

import (
	"github.com/rs/zerolog/log"

	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

// FindWord finds a word in a KWG's forward dawg.
func FindWord(d *KWG, word string) bool {
	mw, err := tilemapping.ToMachineWord(word, d.GetAlphabet())
	if err != nil {
		log.Err(err).Msg("convert-to-mw")
		return false
	}
	return FindMachineWord(d, mw)
}

// FindMachineWord finds a word in a KWG's forward dawg.
func FindMachineWord(d *KWG, word tilemapping.MachineWord) bool {
	if len(word) == 0 {
		return false
	}
	nodeIdx := d.GetDawgRootNodeIndex()
	for _, ml := range word[:len(word)-1] {
		nodeIdx = d.NextNodeIdx(nodeIdx, ml.Unblank())
		if nodeIdx == 0 {
			return false
		}
	}
	return d.InLetterSet(word[len(word)-1], nodeIdx)
}
