package tilemapping

import (
	"fmt"
	"sort"
	"unicode"
)

// A tile is represented internally by a single byte. The zero value does
// triple duty: an empty board square, an undesignated blank on a rack, and
// a played-through marker inside a play description. Letters count up from
// 1 (A is 1, B is 2, and so on for English). A blank that has been
// designated as some letter carries the high bit (0x80 | letter).
const (
	// MaxAlphabetSize must stay below 64 so a LetterSet fits in a uint64.
	MaxAlphabetSize = 62
	// ASCIIPlayedThrough marks a tile that was already on the board in
	// user-visible play strings.
	ASCIIPlayedThrough = '.'
	// BlankToken is the user-visible representation of an undesignated blank.
	BlankToken = '?'
)

const (
	BlankMask   = 0x80
	UnblankMask = 0x80 - 1
)

// LetterSet is a bit mask of acceptable letters, indexed by MachineLetter.
type LetterSet uint64

// MachineLetter is the machine-only representation of a single tile.
type MachineLetter byte

// MachineWord is a slice of machine letters, used for plays, racks, and
// lexicon walks.
type MachineWord []MachineLetter

// LetterSlice exists to hang a deterministic sort on a set of runes.
type LetterSlice []rune

func (a LetterSlice) Len() int           { return len(a) }
func (a LetterSlice) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a LetterSlice) Less(i, j int) bool { return a[i] < a[j] }

// A TileMapping maps user-visible runes (like 'A') to machine letters and
// back. Index 0 is reserved for the blank.
type TileMapping struct {
	vals    map[rune]MachineLetter
	letters map[MachineLetter]rune

	letterSlice LetterSlice
}

// Init initializes the mapping structures.
func (rm *TileMapping) Init() {
	rm.vals = make(map[rune]MachineLetter)
	rm.letters = make(map[MachineLetter]rune)
}

// Letter returns the rune this machine letter corresponds to. Designated
// blanks come back lowercased.
func (rm *TileMapping) Letter(ml MachineLetter) rune {
	if ml == 0 {
		return BlankToken
	}
	if ml.IsBlanked() {
		return unicode.ToLower(rm.letters[ml.Unblank()])
	}
	return rm.letters[ml]
}

// Val returns the machine letter for the given rune. Lowercase runes map
// to designated blanks.
func (rm *TileMapping) Val(r rune) (MachineLetter, error) {
	if r == BlankToken {
		return 0, nil
	}
	val, ok := rm.vals[r]
	if ok {
		return val, nil
	}
	if r == unicode.ToLower(r) {
		val, ok = rm.vals[unicode.ToUpper(r)]
		if ok {
			return val.Blank(), nil
		}
	}
	if r == ASCIIPlayedThrough {
		return 0, nil
	}
	return 0, fmt.Errorf("letter `%c` not found in alphabet", r)
}

// NumLetters returns the number of letters in this mapping, not counting
// the blank.
func (rm *TileMapping) NumLetters() uint8 {
	return uint8(len(rm.letters))
}

// Reconcile sorts the given glyphs and assigns machine letters 1..n in
// sorted order. The glyph at index 0 of the incoming slice is taken to be
// the blank and keeps machine letter 0.
func (rm *TileMapping) Reconcile(letters []string) {
	rm.Init()
	rm.letterSlice = rm.letterSlice[:0]
	for i, l := range letters {
		if i == 0 {
			// the blank
			continue
		}
		rm.letterSlice = append(rm.letterSlice, []rune(l)[0])
	}
	sort.Sort(rm.letterSlice)
	for idx, rn := range rm.letterSlice {
		rm.vals[rn] = MachineLetter(idx + 1)
		rm.letters[MachineLetter(idx+1)] = rn
	}
}

// FromSlice creates a TileMapping from an ordered array of runes. The
// blank is implicit at position 0.
func FromSlice(arr []uint32) *TileMapping {
	rm := &TileMapping{}
	rm.Init()
	numRunes := uint8(len(arr))

	for i := uint8(1); i < numRunes+1; i++ {
		rm.vals[rune(arr[i-1])] = MachineLetter(i)
		rm.letters[MachineLetter(i)] = rune(arr[i-1])
	}
	return rm
}

// EnglishAlphabet returns the tile mapping for English. Tests use this;
// production code derives the mapping from the letter distribution.
func EnglishAlphabet() *TileMapping {
	return FromSlice([]uint32{
		'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M',
		'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z',
	})
}

// Blank turns the machine letter into its designated-blank version.
func (ml MachineLetter) Blank() MachineLetter {
	return ml | BlankMask
}

// Unblank strips the blank designation, if any.
func (ml MachineLetter) Unblank() MachineLetter {
	return ml & UnblankMask
}

// IsBlanked returns true if this letter is a designated blank.
func (ml MachineLetter) IsBlanked() bool {
	return ml&BlankMask > 0
}

// IsPlayedTile returns true if this represents a tile that actually came
// off a rack, as opposed to a played-through marker.
func (ml MachineLetter) IsPlayedTile() bool {
	return ml != 0
}

// IsVowel checks the letter against the distribution's vowel list.
func (ml MachineLetter) IsVowel(ld *LetterDistribution) bool {
	ml = ml.Unblank()
	for _, v := range ld.Vowels {
		if ml == v {
			return true
		}
	}
	return false
}

// UserVisible turns the machine letter into a user-visible rune.
func (ml MachineLetter) UserVisible(rm *TileMapping, zeroForPlayedThrough bool) rune {
	if ml == 0 {
		if zeroForPlayedThrough {
			return ASCIIPlayedThrough
		}
		return BlankToken
	}
	return rm.Letter(ml)
}

// UserVisible turns the machine word into a user-visible string.
func (mw MachineWord) UserVisible(rm *TileMapping) string {
	runes := make([]rune, len(mw))
	for i, l := range mw {
		runes[i] = l.UserVisible(rm, false)
	}
	return string(runes)
}

// UserVisiblePlayedTiles turns the machine word into a user-visible
// string, rendering zeroes as played-through markers.
func (mw MachineWord) UserVisiblePlayedTiles(rm *TileMapping) string {
	runes := make([]rune, len(mw))
	for i, l := range mw {
		runes[i] = l.UserVisible(rm, true)
	}
	return string(runes)
}

// Score returns the score of this word given the letter distribution.
// Played-through markers score zero; designated blanks score the blank's
// value.
func (mw MachineWord) Score(ld *LetterDistribution) int {
	score := 0
	for _, c := range mw {
		if c == 0 {
			continue
		}
		score += ld.Score(c)
	}
	return score
}

// ToMachineWord converts a string into a machine word.
func ToMachineWord(word string, rm *TileMapping) (MachineWord, error) {
	mls, err := ToMachineLetters(word, rm)
	if err != nil {
		return nil, err
	}
	return MachineWord(mls), nil
}

// ToMachineLetters creates an array of machine letters from the given string.
func ToMachineLetters(word string, rm *TileMapping) ([]MachineLetter, error) {
	letters := make([]MachineLetter, len([]rune(word)))
	runeIdx := 0
	for _, ch := range word {
		ml, err := rm.Val(ch)
		if err != nil {
			return nil, err
		}
		letters[runeIdx] = ml
		runeIdx++
	}
	return letters, nil
}
