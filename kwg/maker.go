package kwg

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

// The maker builds a KWG in memory from a word list. The node array it
// emits uses the same layout as the files we load: element 0 points at
// the dawg root's children, element 1 at the gaddag root's children.
// Subtrees are merged bottom-up so shared suffixes share nodes.

type mkNode struct {
	accepts  bool
	arcs     []mkArc // sorted by tile
	children map[tilemapping.MachineLetter]*mkNode
}

type mkArc struct {
	tile tilemapping.MachineLetter
	node *mkNode
}

func newMkNode() *mkNode {
	return &mkNode{children: map[tilemapping.MachineLetter]*mkNode{}}
}

func (n *mkNode) insert(word tilemapping.MachineWord) {
	cur := n
	for _, ml := range word {
		child := cur.children[ml]
		if child == nil {
			child = newMkNode()
			cur.children[ml] = child
		}
		cur = child
	}
	cur.accepts = true
}

type mkBuilder struct {
	memo map[string]*mkNode
	ids  map[*mkNode]int
}

// freeze sorts arcs and merges identical subtrees, keyed by a canonical
// signature built from child ids. Returns the canonical node for n.
func (b *mkBuilder) freeze(n *mkNode) *mkNode {
	tiles := make([]int, 0, len(n.children))
	for ml := range n.children {
		tiles = append(tiles, int(ml))
	}
	sort.Ints(tiles)

	var sig strings.Builder
	if n.accepts {
		sig.WriteByte('*')
	}
	n.arcs = n.arcs[:0]
	for _, t := range tiles {
		child := b.freeze(n.children[tilemapping.MachineLetter(t)])
		n.arcs = append(n.arcs, mkArc{tile: tilemapping.MachineLetter(t), node: child})
		sig.WriteString(strconv.Itoa(t))
		sig.WriteByte(':')
		sig.WriteString(strconv.Itoa(b.ids[child]))
		sig.WriteByte(';')
	}
	key := sig.String()
	if canon, ok := b.memo[key]; ok {
		return canon
	}
	b.ids[n] = len(b.ids)
	b.memo[key] = n
	return n
}

// MakeKWG builds a KWG from a word list. Words must be convertible with
// the given letter distribution's tile mapping. Intended for tests and
// for converting plain text lexica; real lexica normally ship as .kwg
// files built elsewhere.
func MakeKWG(ld *tilemapping.LetterDistribution, lexiconName string, words []string) (*KWG, error) {
	tm := ld.TileMapping()
	mws := make([]tilemapping.MachineWord, 0, len(words))
	for _, w := range words {
		mw, err := tilemapping.ToMachineWord(strings.ToUpper(strings.TrimSpace(w)), tm)
		if err != nil {
			return nil, err
		}
		if len(mw) < 2 {
			return nil, errors.New("words must have at least two letters: " + w)
		}
		mws = append(mws, mw)
	}

	dawgRoot := newMkNode()
	gaddagRoot := newMkNode()
	gw := make(tilemapping.MachineWord, 0, 32)
	for _, mw := range mws {
		dawgRoot.insert(mw)
		// For a word w of length n, the gaddag holds rev(w) plus
		// rev(w[:i]) + separator + w[i:] for every i in [1, n).
		for i := 1; i <= len(mw); i++ {
			gw = gw[:0]
			for j := i - 1; j >= 0; j-- {
				gw = append(gw, mw[j])
			}
			if i < len(mw) {
				gw = append(gw, 0)
				gw = append(gw, mw[i:]...)
			}
			gaddagRoot.insert(gw)
		}
	}

	b := &mkBuilder{memo: map[string]*mkNode{}, ids: map[*mkNode]int{}}
	dawgRoot = b.freeze(dawgRoot)
	gaddagRoot = b.freeze(gaddagRoot)

	// Lay out sibling groups. Elements 0 and 1 are the root pointers.
	groupStart := map[*mkNode]uint32{}
	order := []*mkNode{}
	next := uint32(2)
	queue := []*mkNode{dawgRoot, gaddagRoot}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if len(n.arcs) == 0 {
			continue
		}
		if _, placed := groupStart[n]; placed {
			continue
		}
		groupStart[n] = next
		order = append(order, n)
		next += uint32(len(n.arcs))
		for _, arc := range n.arcs {
			queue = append(queue, arc.node)
		}
	}
	if next > 0x3fffff {
		return nil, errors.New("lexicon too large for kwg arc index")
	}

	nodes := make([]uint32, next)
	nodes[0] = groupStart[dawgRoot]
	nodes[1] = 0x400000 | groupStart[gaddagRoot]
	for _, n := range order {
		gs := groupStart[n]
		for i, arc := range n.arcs {
			val := uint32(arc.tile) << 24
			if arc.node.accepts {
				val |= 0x800000
			}
			if i == len(n.arcs)-1 {
				val |= 0x400000
			}
			if len(arc.node.arcs) > 0 {
				val |= groupStart[arc.node]
			}
			nodes[gs+uint32(i)] = val
		}
	}

	return &KWG{nodes: nodes, alphabet: tm, lexiconName: lexiconName}, nil
}
