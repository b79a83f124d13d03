package kwg

import (
	"encoding/binary"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

// A KWG is a Kurnia Word Graph. More information is available here:
// https://github.com/andy-k/wolges/blob/main/details.txt
// Thanks to Andy Kurnia.
type KWG struct {
	// Nodes is just a slice of 32-bit elements, the node array.
	nodes       []uint32
	alphabet    *tilemapping.TileMapping
	lexiconName string
}

func ScanKWG(data io.Reader) (*KWG, error) {
	nodes := []uint32{}
	var node uint32
	for {
		err := binary.Read(data, binary.LittleEndian, &node)
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		nodes = append(nodes, node)
	}
	log.Debug().Int("num-nodes", len(nodes)).Msg("loaded-kwg")
	return &KWG{nodes: nodes}, nil
}

func (k *KWG) GetRootNodeIndex() uint32 {
	return k.ArcIndex(1)
}

// GetDawgRootNodeIndex returns the root of the plain forward dawg, used
// for word lookup and cross-set computation.
func (k *KWG) GetDawgRootNodeIndex() uint32 {
	return k.ArcIndex(0)
}

func (k *KWG) NumNodes() int {
	return len(k.nodes)
}

func (k *KWG) GetAlphabet() *tilemapping.TileMapping {
	return k.alphabet
}

func (k *KWG) LexiconName() string {
	return k.lexiconName
}

func (k *KWG) NextNodeIdx(nodeIdx uint32, letter tilemapping.MachineLetter) uint32 {
	for i := nodeIdx; ; i++ {
		if k.Tile(i) == uint8(letter) {
			return k.ArcIndex(i)
		}
		if k.IsEnd(i) {
			return 0
		}
	}
}

func (k *KWG) InLetterSet(letter tilemapping.MachineLetter, nodeIdx uint32) bool {
	letter = letter.Unblank()
	for i := nodeIdx; ; i++ {
		if k.Tile(i) == uint8(letter) {
			return k.accepts(i)
		}
		if k.IsEnd(i) {
			return false
		}
	}
}

func (k *KWG) GetLetterSet(nodeIdx uint32) tilemapping.LetterSet {
	var ls tilemapping.LetterSet
	for i := nodeIdx; ; i++ {
		t := k.Tile(i)
		if k.accepts(i) {
			ls |= (1 << t)
		}
		if k.IsEnd(i) {
			break
		}
	}
	return ls
}

// GetLetterSets returns both the set of letters that end a word at this
// node group and the set of every letter present in the group, whether
// or not it accepts.
func (k *KWG) GetLetterSets(nodeIdx uint32) (tilemapping.LetterSet, tilemapping.LetterSet) {
	var ls, ext tilemapping.LetterSet
	for i := nodeIdx; ; i++ {
		t := k.Tile(i)
		if t != 0 {
			ext |= (1 << t)
			if k.accepts(i) {
				ls |= (1 << t)
			}
		}
		if k.IsEnd(i) {
			break
		}
	}
	return ls, ext
}

func (k *KWG) IsEnd(nodeIdx uint32) bool {
	return k.nodes[nodeIdx]&0x400000 != 0
}

func (k *KWG) accepts(nodeIdx uint32) bool {
	return k.nodes[nodeIdx]&0x800000 != 0
}

// Accepts returns whether the node at nodeIdx ends a word.
func (k *KWG) Accepts(nodeIdx uint32) bool {
	return k.accepts(nodeIdx)
}

func (k *KWG) ArcIndex(nodeIdx uint32) uint32 {
	return k.nodes[nodeIdx] & 0x3fffff
}

func (k *KWG) Tile(nodeIdx uint32) uint8 {
	return uint8(k.nodes[nodeIdx] >> 24)
}

// IterateSiblings calls cb for every node in the sibling group starting
// at nodeIdx, including nodeIdx itself.
func (k *KWG) IterateSiblings(nodeIdx uint32, cb func(ml tilemapping.MachineLetter, nnidx uint32)) {
	if nodeIdx == 0 {
		return
	}
	for i := nodeIdx; ; i++ {
		cb(tilemapping.MachineLetter(k.Tile(i)), k.ArcIndex(i))
		if k.IsEnd(i) {
			break
		}
	}
}
