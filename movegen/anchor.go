package movegen

// An Anchor is an empty square adjacent to at least one tile (or the
// center square on an empty board), together with the shadow pass's
// upper bound on the equity of any play through it. Anchors are
// processed best-bound-first so that generation can stop as soon as no
// remaining anchor can beat the best play found.
type Anchor struct {
	HighestPossibleEquity float64
	HighestPossibleScore  int16
	Row                   uint8
	Col                   uint8
	LastAnchorCol         int8
	Vertical              bool
}

func anchorAbove(a, b *Anchor) bool {
	if a.HighestPossibleEquity != b.HighestPossibleEquity {
		return a.HighestPossibleEquity > b.HighestPossibleEquity
	}
	// Tie-break on scan order so heap order is deterministic.
	if a.Vertical != b.Vertical {
		return !a.Vertical
	}
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}

// heapifyAnchors turns gen.anchors[:gen.anchorCount] into a max-heap
// keyed on the equity bound. In-place, no allocation.
func (gen *GordonGenerator) heapifyAnchors() {
	for i := gen.anchorCount/2 - 1; i >= 0; i-- {
		gen.siftDownAnchor(i)
	}
}

func (gen *GordonGenerator) siftDownAnchor(i int) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2
		if left < gen.anchorCount && anchorAbove(&gen.anchors[left], &gen.anchors[largest]) {
			largest = left
		}
		if right < gen.anchorCount && anchorAbove(&gen.anchors[right], &gen.anchors[largest]) {
			largest = right
		}
		if largest == i {
			return
		}
		gen.anchors[i], gen.anchors[largest] = gen.anchors[largest], gen.anchors[i]
		i = largest
	}
}

// popAnchor removes and returns the anchor with the highest equity bound.
func (gen *GordonGenerator) popAnchor() Anchor {
	top := gen.anchors[0]
	gen.anchorCount--
	if gen.anchorCount > 0 {
		gen.anchors[0] = gen.anchors[gen.anchorCount]
		gen.siftDownAnchor(0)
	}
	return top
}
