package tilemapping

import (
	"fmt"

	"lukechampine.com/frand"
)

// A Bag is the bag o'tiles. The tiles live in a flat slice; draws come
// off the end after a swap with a randomly chosen index, so draining the
// bag is allocation-free.
type Bag struct {
	tiles        []MachineLetter
	initialTiles []MachineLetter
	ld           *LetterDistribution
	tilemapping  *TileMapping
	fixedOrder   bool
}

// NewBag creates a full, unshuffled bag from the letter distribution.
func NewBag(ld *LetterDistribution, tm *TileMapping) *Bag {
	tiles := make([]MachineLetter, 0, ld.numLetters)
	for ml, ct := range ld.distribution {
		for i := uint8(0); i < ct; i++ {
			tiles = append(tiles, MachineLetter(ml))
		}
	}
	initial := make([]MachineLetter, len(tiles))
	copy(initial, tiles)
	return &Bag{
		tiles:        tiles,
		initialTiles: initial,
		ld:           ld,
		tilemapping:  tm,
	}
}

// Shuffle shuffles the bag in place.
func (b *Bag) Shuffle() {
	frand.Shuffle(len(b.tiles), func(i, j int) {
		b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
	})
}

// SetFixedOrder makes draws come strictly off the end of the tile slice,
// with no randomization. Used for reproducible tests.
func (b *Bag) SetFixedOrder(fixed bool) {
	b.fixedOrder = fixed
}

// Draw draws exactly n tiles into the first n slots of ml, or errors if
// the bag does not have them.
func (b *Bag) Draw(n int, ml []MachineLetter) error {
	if n > len(b.tiles) {
		return fmt.Errorf("tried to draw %v tiles, tile bag has %v", n, len(b.tiles))
	}
	l := len(b.tiles)
	for i := 0; i < n; i++ {
		if !b.fixedOrder {
			k := frand.Intn(l)
			b.tiles[k], b.tiles[l-1] = b.tiles[l-1], b.tiles[k]
		}
		ml[i] = b.tiles[l-1]
		l--
	}
	b.tiles = b.tiles[:l]
	return nil
}

// DrawAtMost draws up to n tiles and returns how many it actually drew.
func (b *Bag) DrawAtMost(n int, ml []MachineLetter) int {
	if n > len(b.tiles) {
		n = len(b.tiles)
	}
	b.Draw(n, ml)
	return n
}

// Exchange swaps the given tiles for new ones. The new tiles are drawn
// before the old ones go back in.
func (b *Bag) Exchange(letters []MachineLetter, ml []MachineLetter) error {
	err := b.Draw(len(letters), ml)
	if err != nil {
		return err
	}
	b.PutBack(letters)
	return nil
}

// PutBack returns the tiles to the bag and reshuffles their positions.
func (b *Bag) PutBack(letters []MachineLetter) {
	if len(letters) == 0 {
		return
	}
	b.tiles = append(b.tiles, letters...)
	if !b.fixedOrder {
		// Mix the returned tiles in, otherwise the next draws would
		// find them clustered at the end.
		l := len(b.tiles)
		for i := l - len(letters); i < l; i++ {
			k := frand.Intn(i + 1)
			b.tiles[i], b.tiles[k] = b.tiles[k], b.tiles[i]
		}
	}
}

// RemoveTiles removes the given tiles from the bag, returning an error if
// any of them are not present.
func (b *Bag) RemoveTiles(tiles []MachineLetter) error {
	for _, t := range tiles {
		if t.IsBlanked() {
			t = 0
		}
		found := false
		for i, bt := range b.tiles {
			if bt == t {
				b.tiles[i] = b.tiles[len(b.tiles)-1]
				b.tiles = b.tiles[:len(b.tiles)-1]
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("tile %v not found in bag", t)
		}
	}
	return nil
}

// Refill restores the bag to its full initial contents and reshuffles.
func (b *Bag) Refill() {
	b.tiles = append(b.tiles[:0], b.initialTiles...)
	b.Shuffle()
}

func (b *Bag) TilesRemaining() int {
	return len(b.tiles)
}

// Peek returns a copy of the tiles still in the bag.
func (b *Bag) Peek() []MachineLetter {
	ret := make([]MachineLetter, len(b.tiles))
	copy(ret, b.tiles)
	return ret
}

func (b *Bag) LetterDistribution() *LetterDistribution {
	return b.ld
}

// Copy returns a deep copy of this bag.
func (b *Bag) Copy() *Bag {
	tiles := make([]MachineLetter, len(b.tiles))
	copy(tiles, b.tiles)
	return &Bag{
		tiles:        tiles,
		initialTiles: b.initialTiles,
		ld:           b.ld,
		tilemapping:  b.tilemapping,
		fixedOrder:   b.fixedOrder,
	}
}

// CopyFrom restores this bag's tiles from another bag created by Copy.
func (b *Bag) CopyFrom(other *Bag) {
	b.tiles = append(b.tiles[:0], other.tiles...)
	b.fixedOrder = other.fixedOrder
}
