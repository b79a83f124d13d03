package movegen

import (
	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

// The leave map gives O(1) leave-value lookups during generation. Every
// tile instance on the starting rack gets one bit; the index of the
// current leave is the bitset of tiles still on the rack. Taking a tile
// clears its bit, returning it sets the bit back. The values for all
// 2^n subsets are filled in once per turn before generation starts.
//
// Duplicate letters get contiguous bit ranges, assigned in reverse so
// that taking tiles in any order lands on the same index for the same
// multiset of remaining tiles.

// initLeaveMap initializes the leave map for the given rack. If there
// is no leave calculator among the equity calculators, the map is
// disabled and every leave is worth zero.
func (gen *GordonGenerator) initLeaveMap(rack *tilemapping.Rack) {
	if gen.leaveCalc == nil {
		gen.leaveMapEnabled = false
		return
	}

	currentBase := 0
	for ml := 0; ml < len(rack.LetArr); ml++ {
		count := rack.LetArr[ml]
		if count == 0 {
			continue
		}
		gen.leaveMapBaseIndices[ml] = currentBase
		for j := 0; j < count; j++ {
			gen.leaveMapReversedBits[currentBase+j] = 1 << (currentBase + count - j - 1)
		}
		currentBase += count
	}
	if currentBase == 0 || currentBase > tilemapping.RackTileLimit {
		gen.leaveMapEnabled = false
		return
	}

	for i := 0; i < 1<<currentBase; i++ {
		gen.leaveMapValues[i] = 0
	}
	gen.leaveMapIndex = 0
	gen.leaveMapRackCopy.CopyFrom(rack)
	gen.enumerateLeavesForMap(&gen.leaveMapRackCopy, 0, 0)

	// Generation starts with the full rack.
	gen.leaveMapIndex = (1 << currentBase) - 1
	gen.leaveMapEnabled = true
}

// enumerateLeavesForMap recursively enumerates every subset of the rack
// that could be kept, and stores its leave value at the matching index.
func (gen *GordonGenerator) enumerateLeavesForMap(rack *tilemapping.Rack,
	startML tilemapping.MachineLetter, leaveLen int) {

	if leaveLen > 0 {
		gen.leaveMapValues[gen.leaveMapIndex] =
			gen.leaveCalc.LeaveValue(tilemapping.MachineWord(gen.leaveMapLeave[:leaveLen]))
	}
	for ml := startML; int(ml) < len(rack.LetArr); ml++ {
		count := rack.LetArr[ml]
		// Keep 1..count copies of this letter, recursing after each so
		// that leaves with duplicates are enumerated too.
		for i := 0; i < count; i++ {
			rack.LetArr[ml]--
			bitIdx := gen.leaveMapBaseIndices[ml] + rack.LetArr[ml]
			gen.leaveMapIndex |= gen.leaveMapReversedBits[bitIdx]

			gen.leaveMapLeave[leaveLen+i] = ml
			gen.enumerateLeavesForMap(rack, ml+1, leaveLen+i+1)
		}
		for i := 0; i < count; i++ {
			bitIdx := gen.leaveMapBaseIndices[ml] + rack.LetArr[ml]
			gen.leaveMapIndex &^= gen.leaveMapReversedBits[bitIdx]
			rack.LetArr[ml]++
		}
	}
}

// leaveMapTakeTile clears the bit for a tile just taken off the rack.
// Call with the letter count after the take.
func (gen *GordonGenerator) leaveMapTakeTile(ml tilemapping.MachineLetter, numOnRackAfter int) {
	if !gen.leaveMapEnabled {
		return
	}
	bitIdx := gen.leaveMapBaseIndices[ml] + numOnRackAfter
	gen.leaveMapIndex &^= 1 << bitIdx
}

// leaveMapReturnTile sets the bit back for a tile returned to the rack.
// Call with the letter count before the return.
func (gen *GordonGenerator) leaveMapReturnTile(ml tilemapping.MachineLetter, numOnRackBefore int) {
	if !gen.leaveMapEnabled {
		return
	}
	bitIdx := gen.leaveMapBaseIndices[ml] + numOnRackBefore
	gen.leaveMapIndex |= 1 << bitIdx
}

// leaveMapValue returns the leave value of the tiles currently left on
// the rack.
func (gen *GordonGenerator) leaveMapValue() float64 {
	if !gen.leaveMapEnabled {
		return 0
	}
	return gen.leaveMapValues[gen.leaveMapIndex]
}
