package kwg

import (
	"errors"
	"fmt"

	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

// zero value works. not threadsafe.
type KWGAnagrammer struct {
	ans         tilemapping.MachineWord
	freq        []uint8
	blanks      uint8
	queryLength int
}

func (da *KWGAnagrammer) commonInit(kwg *KWG) {
	alph := kwg.GetAlphabet()
	numLetters := alph.NumLetters()
	if cap(da.freq) < int(numLetters)+1 {
		da.freq = make([]uint8, numLetters+1)
	} else {
		da.freq = da.freq[:numLetters+1]
		for i := range da.freq {
			da.freq[i] = 0
		}
	}
	da.blanks = 0
	da.ans = da.ans[:0]
}

func (da *KWGAnagrammer) InitForString(kwg *KWG, tiles string) error {
	da.commonInit(kwg)
	da.queryLength = 0
	alph := kwg.GetAlphabet()
	for _, r := range tiles {
		da.queryLength++ // count number of runes, not number of bytes
		if r == tilemapping.BlankToken {
			da.blanks++
		} else {
			val, err := alph.Val(r)
			if err != nil {
				return fmt.Errorf("invalid rune %v", r)
			}
			da.freq[val.Unblank()]++
		}
	}
	return nil
}

func (da *KWGAnagrammer) InitForMachineWord(kwg *KWG, machineTiles tilemapping.MachineWord) error {
	da.commonInit(kwg)
	da.queryLength = len(machineTiles)
	alph := kwg.GetAlphabet()
	numLetters := alph.NumLetters()
	for _, v := range machineTiles {
		if v == 0 {
			da.blanks++
		} else if uint8(v) <= numLetters {
			da.freq[v]++
		} else {
			return fmt.Errorf("invalid byte %v", v)
		}
	}
	return nil
}

// f must not modify the given slice. if f returns error, abort iteration.
func (da *KWGAnagrammer) iterate(kwg *KWG, nodeIdx uint32, minLen int, minExact int, f func(tilemapping.MachineWord) error) error {
	if nodeIdx == 0 {
		return nil
	}
	for i := nodeIdx; ; i++ {
		ml := tilemapping.MachineLetter(kwg.Tile(i))
		if int(ml) < len(da.freq) && ml != 0 {
			if da.freq[ml] > 0 {
				da.freq[ml]--
				da.ans = append(da.ans, ml)
				if kwg.accepts(i) && minLen <= 1 && minExact <= 1 {
					if err := f(da.ans); err != nil {
						return err
					}
				}
				if err := da.iterate(kwg, kwg.ArcIndex(i), minLen-1, minExact-1, f); err != nil {
					return err
				}
				da.ans = da.ans[:len(da.ans)-1]
				da.freq[ml]++
			} else if da.blanks > 0 {
				da.blanks--
				da.ans = append(da.ans, ml)
				if kwg.accepts(i) && minLen <= 1 && minExact <= 0 {
					if err := f(da.ans); err != nil {
						return err
					}
				}
				if err := da.iterate(kwg, kwg.ArcIndex(i), minLen-1, minExact, f); err != nil {
					return err
				}
				da.ans = da.ans[:len(da.ans)-1]
				da.blanks++
			}
		}
		if kwg.IsEnd(i) {
			break
		}
	}
	return nil
}

func (da *KWGAnagrammer) Anagram(dawg *KWG, f func(tilemapping.MachineWord) error) error {
	return da.iterate(dawg, dawg.GetDawgRootNodeIndex(), da.queryLength, 0, f)
}

func (da *KWGAnagrammer) Subanagram(dawg *KWG, f func(tilemapping.MachineWord) error) error {
	return da.iterate(dawg, dawg.GetDawgRootNodeIndex(), 1, 0, f)
}

func (da *KWGAnagrammer) Superanagram(dawg *KWG, f func(tilemapping.MachineWord) error) error {
	minExact := da.queryLength - int(da.blanks)
	blanks := da.blanks
	da.blanks = 255
	err := da.iterate(dawg, dawg.GetDawgRootNodeIndex(), da.queryLength, minExact, f)
	da.blanks = blanks
	return err
}

var errHasAnagram = errors.New("has anagram")
var errHasBlanks = errors.New("has blanks")

func foundAnagram(tilemapping.MachineWord) error {
	return errHasAnagram
}

// checks if a word with no blanks has any valid anagrams.
func (da *KWGAnagrammer) IsValidJumble(dawg *KWG, word tilemapping.MachineWord) (bool, error) {
	if err := da.InitForMachineWord(dawg, word); err != nil {
		return false, err
	} else if da.blanks > 0 {
		return false, errHasBlanks
	}
	err := da.Anagram(dawg, foundAnagram)
	if err == nil {
		return false, nil
	} else if err == errHasAnagram {
		return true, nil
	} else {
		return false, err
	}
}
