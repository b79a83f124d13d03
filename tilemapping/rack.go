package tilemapping

import (
	"github.com/rs/zerolog/log"
)

// RackTileLimit is the maximum number of tiles a rack holds.
const RackTileLimit = 7

// Rack is a machine-friendly representation of a rack: a count per
// machine letter, with the blank at index 0.
type Rack struct {
	LetArr             []int
	numLetters         uint8
	alphabet           *TileMapping
	numPossibleLetters uint8
}

// NewRack creates a brand new rack structure with an alphabet.
func NewRack(alph *TileMapping) *Rack {
	// One extra slot for the blank at index 0.
	return &Rack{
		alphabet:           alph,
		LetArr:             make([]int, alph.NumLetters()+1),
		numPossibleLetters: alph.NumLetters() + 1,
	}
}

// RackFromString creates a Rack from a string and an alphabet.
func RackFromString(rack string, a *TileMapping) *Rack {
	r := &Rack{}
	r.alphabet = a
	r.setFromStr(rack)
	return r
}

func (r *Rack) setFromStr(rack string) {
	r.numPossibleLetters = r.alphabet.NumLetters() + 1
	if r.LetArr == nil {
		r.LetArr = make([]int, r.numPossibleLetters)
	} else {
		r.Clear()
	}
	mls, err := ToMachineLetters(rack, r.alphabet)
	if err != nil {
		log.Error().AnErr("err", err).Msg("unable to convert rack")
		return
	}
	for _, ml := range mls {
		r.LetArr[ml]++
	}
	r.numLetters = uint8(len(mls))
}

// String returns a user-visible version of this rack.
func (r *Rack) String() string {
	return r.TilesOn().UserVisible(r.alphabet)
}

// Copy returns a deep copy of this rack.
func (r *Rack) Copy() *Rack {
	n := &Rack{
		numLetters:         r.numLetters,
		alphabet:           r.alphabet,
		numPossibleLetters: r.numPossibleLetters,
	}
	n.LetArr = make([]int, len(r.LetArr))
	copy(n.LetArr, r.LetArr)
	return n
}

func (r *Rack) CopyFrom(other *Rack) {
	r.numLetters = other.numLetters
	r.alphabet = other.alphabet
	r.numPossibleLetters = other.numPossibleLetters
	if r.LetArr == nil {
		r.LetArr = make([]int, len(other.LetArr))
	}
	copy(r.LetArr, other.LetArr)
}

// Set sets the rack from a list of machine letters.
func (r *Rack) Set(mls []MachineLetter) {
	r.Clear()
	for _, ml := range mls {
		r.LetArr[ml]++
	}
	r.numLetters = uint8(len(mls))
}

func (r *Rack) Clear() {
	for i := range r.LetArr {
		r.LetArr[i] = 0
	}
	r.numLetters = 0
}

// Take removes a letter from the rack. The letter must be on the rack;
// this is not checked.
func (r *Rack) Take(letter MachineLetter) {
	r.LetArr[letter]--
	r.numLetters--
}

func (r *Rack) Add(letter MachineLetter) {
	r.LetArr[letter]++
	r.numLetters++
}

func (r *Rack) Has(letter MachineLetter) bool {
	return r.LetArr[letter] > 0
}

func (r *Rack) CountOf(letter MachineLetter) int {
	return r.LetArr[letter]
}

// TilesOn returns the rack's current tiles, alphabetized.
func (r *Rack) TilesOn() MachineWord {
	if r.numLetters == 0 {
		return MachineWord([]MachineLetter{})
	}
	letters := make([]MachineLetter, r.numLetters)
	r.NoAllocTilesOn(letters)
	return MachineWord(letters)
}

// NoAllocTilesOn places the rack tiles into the passed-in slice and
// returns how many there were.
func (r *Rack) NoAllocTilesOn(letters []MachineLetter) int {
	ct := 0
	var i MachineLetter
	for i = 0; i < MachineLetter(r.numPossibleLetters); i++ {
		for j := 0; j < r.LetArr[i]; j++ {
			letters[ct] = i
			ct++
		}
	}
	return ct
}

// ScoreOn returns the total score of the tiles on this rack.
func (r *Rack) ScoreOn(ld *LetterDistribution) int {
	score := 0
	var i MachineLetter
	for i = 0; i < MachineLetter(r.numPossibleLetters); i++ {
		if r.LetArr[i] > 0 {
			score += ld.Score(i) * r.LetArr[i]
		}
	}
	return score
}

// NumTiles returns the current number of tiles on this rack.
func (r *Rack) NumTiles() uint8 {
	return r.numLetters
}

func (r *Rack) Empty() bool {
	return r.numLetters == 0
}

func (r *Rack) Alphabet() *TileMapping {
	return r.alphabet
}
