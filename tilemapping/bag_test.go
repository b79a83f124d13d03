package tilemapping

import (
	"sort"
	"testing"

	"github.com/matryer/is"
)

func TestBag(t *testing.T) {
	is := is.New(t)
	ld := englishLD(t)

	bag := ld.MakeBag()
	is.Equal(bag.TilesRemaining(), ld.NumTotalTiles())

	// Draining the bag one tile at a time yields exactly the
	// distribution.
	counts := make([]uint8, ld.numUniqueLetters)
	ml := make([]MachineLetter, 7)
	for i := 0; i < ld.NumTotalTiles(); i++ {
		err := bag.Draw(1, ml)
		is.NoErr(err)
		counts[ml[0]]++
	}
	is.Equal(counts, ld.Distribution())

	err := bag.Draw(1, ml)
	is.True(err != nil)
}

func TestDraw(t *testing.T) {
	is := is.New(t)
	ld := englishLD(t)

	bag := ld.MakeBag()
	ml := make([]MachineLetter, 7)
	is.NoErr(bag.Draw(7, ml))
	is.Equal(bag.TilesRemaining(), 93)
}

func TestDrawAtMost(t *testing.T) {
	is := is.New(t)
	ld := englishLD(t)

	bag := ld.MakeBag()
	ml := make([]MachineLetter, 7)
	for i := 0; i < 14; i++ {
		is.NoErr(bag.Draw(7, ml))
	}
	is.Equal(bag.TilesRemaining(), 2)
	is.Equal(bag.DrawAtMost(7, ml), 2)
	is.Equal(bag.TilesRemaining(), 0)
	// Drawing from an empty bag is not an error here.
	is.Equal(bag.DrawAtMost(7, ml), 0)
	is.Equal(bag.TilesRemaining(), 0)
}

func TestBagExchange(t *testing.T) {
	is := is.New(t)
	ld := englishLD(t)

	bag := ld.MakeBag()
	ml := make([]MachineLetter, 7)
	is.NoErr(bag.Draw(7, ml))
	newML := make([]MachineLetter, 7)
	is.NoErr(bag.Exchange(ml[:5], newML))
	is.Equal(bag.TilesRemaining(), 93)
}

func TestRemoveTiles(t *testing.T) {
	is := is.New(t)
	ld := englishLD(t)

	bag := ld.MakeBag()
	is.Equal(bag.TilesRemaining(), 100)
	toRemove := []MachineLetter{
		10, 15, 25, 5, 4, 21, 5, 12, 22, 7, 23, 15, 9, 1, 9, 16, 7, 6, 5,
		20, 1, 25, 9, 18, 18, 19, 3, 12, 9, 15, 2, 9, 1, 21, 8, 1, 9, 11,
		1, 12, 14, 26, 12, 15, 6, 9, 20, 5, 13, 9, 19, 5, 4, 20, 15, 20,
		2, 1, 14, 5, 20, 15, 5, 18, 21, 7, 22, 0x85, 4, 8, 1, 4, 15, 23,
		5, 9, 14, 17, 21, 5, 19, 20, 5, 24, 5, 3, 18, 13, 15, 1, 14,
	}
	is.Equal(len(toRemove), 91)
	is.NoErr(bag.RemoveTiles(toRemove))
	is.Equal(bag.TilesRemaining(), 9)

	// There is only one Q, and it was removed above.
	err := bag.RemoveTiles([]MachineLetter{17})
	is.True(err != nil)
}

func TestPutBack(t *testing.T) {
	is := is.New(t)
	ld := englishLD(t)

	bag := ld.MakeBag()
	ml := make([]MachineLetter, 7)
	is.NoErr(bag.Draw(7, ml))
	bag.PutBack(ml)
	is.Equal(bag.TilesRemaining(), 100)
}

func TestRefill(t *testing.T) {
	is := is.New(t)
	ld := englishLD(t)

	bag := ld.MakeBag()
	ml := make([]MachineLetter, 7)
	is.NoErr(bag.Draw(7, ml))
	bag.Refill()
	is.Equal(bag.TilesRemaining(), 100)
}

func TestBagCopy(t *testing.T) {
	is := is.New(t)
	ld := englishLD(t)

	bag := ld.MakeBag()
	ml := make([]MachineLetter, 7)
	is.NoErr(bag.Draw(7, ml))

	c := bag.Copy()
	is.Equal(c.TilesRemaining(), 93)
	is.NoErr(c.Draw(7, ml))
	is.Equal(c.TilesRemaining(), 86)
	is.Equal(bag.TilesRemaining(), 93)

	bag.CopyFrom(c)
	is.Equal(bag.TilesRemaining(), 86)
}

func TestFixedOrder(t *testing.T) {
	is := is.New(t)
	ld := englishLD(t)

	bag := NewBag(ld, ld.tilemapping)
	sort.Slice(bag.tiles, func(i, j int) bool { return bag.tiles[i] > bag.tiles[j] })

	bag.SetFixedOrder(true)
	is.Equal(bag.TilesRemaining(), 100)
	ml := make([]MachineLetter, 17)
	is.NoErr(bag.Draw(17, ml))

	// Fixed order draws off the end: the two blanks, then the As, etc.
	is.Equal(ml, []MachineLetter{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2, 2, 3, 3, 4, 4})
}
