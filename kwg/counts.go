package kwg

import (
	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

// UnfoundIndex is returned by GetWordIndexOf when the traversed word is
// not in the graph.
const UnfoundIndex = ^uint32(0)

// CountWords computes, for every node, the number of accepted words in
// the subgraph consisting of that node, its siblings to the right, and
// all of their children. The counts are what allow O(1) word indexing
// with GetWordIndexOf.
//
// A dawg can point arcs at higher node indices because of node sharing,
// so a single reverse pass is not enough. We iterate to a fixed point;
// the number of passes is bounded by the longest word.
func (k *KWG) CountWords() []uint32 {
	counts := make([]uint32, len(k.nodes))
	for changed := true; changed; {
		changed = false
		for i := len(k.nodes) - 1; i >= 0; i-- {
			idx := uint32(i)
			var count uint32
			if k.accepts(idx) {
				count = 1
			}
			if arc := k.ArcIndex(idx); arc != 0 && int(arc) < len(k.nodes) {
				count += counts[arc]
			}
			if !k.IsEnd(idx) && i+1 < len(k.nodes) {
				count += counts[i+1]
			}
			if counts[i] != count {
				counts[i] = count
				changed = true
			}
		}
	}
	return counts
}

// GetWordIndexOf returns the index of the given word among all accepted
// words reachable from nodeIdx, in traversal order. counts must come
// from CountWords. It returns UnfoundIndex if the word is not present.
func (k *KWG) GetWordIndexOf(nodeIdx uint32, counts []uint32, word tilemapping.MachineWord) uint32 {
	if len(word) == 0 {
		return UnfoundIndex
	}
	var idx uint32
	for li, ml := range word {
		// Walk the sibling group, skipping the subtree count of every
		// earlier sibling.
		for {
			if nodeIdx == 0 {
				return UnfoundIndex
			}
			if k.Tile(nodeIdx) == uint8(ml) {
				break
			}
			if k.IsEnd(nodeIdx) {
				return UnfoundIndex
			}
			idx += counts[nodeIdx] - counts[nodeIdx+1]
			nodeIdx++
		}
		if li == len(word)-1 {
			if !k.accepts(nodeIdx) {
				return UnfoundIndex
			}
			return idx
		}
		if k.accepts(nodeIdx) {
			idx++
		}
		nodeIdx = k.ArcIndex(nodeIdx)
	}
	return UnfoundIndex
}
