package tilemapping

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/olaugh/magpie-retro-sub001/config"
)

// LetterDistribution encodes the tile inventory for the relevant game:
// how many of each tile exist and what each is worth.
type LetterDistribution struct {
	tilemapping      *TileMapping
	Vowels           []MachineLetter
	distribution     []uint8
	scores           []int
	numUniqueLetters uint
	numLetters       uint
	Name             string
}

// ScanLetterDistribution reads a CSV of letter,quantity,value,vowel rows.
// The first row must be the blank.
func ScanLetterDistribution(data io.Reader) (*LetterDistribution, error) {
	r := csv.NewReader(data)
	dist := []uint8{}
	ptValues := []int{}
	vowels := []MachineLetter{}
	letters := []string{}
	idx := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, err
		}
		p, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, err
		}
		v, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, err
		}
		if v == 1 {
			vowels = append(vowels, MachineLetter(idx))
		}
		dist = append(dist, uint8(n))
		ptValues = append(ptValues, p)
		letters = append(letters, record[0])
		idx++
	}
	alph := &TileMapping{}
	alph.Reconcile(letters)
	return newLetterDistribution(alph, dist, ptValues, vowels), nil
}

func newLetterDistribution(alph *TileMapping, dist []uint8,
	ptValues []int, vowels []MachineLetter) *LetterDistribution {

	numTotalLetters := uint(0)
	numUniqueLetters := uint(len(dist))
	for _, v := range dist {
		numTotalLetters += uint(v)
	}
	// Both counts include the blank.
	return &LetterDistribution{
		tilemapping:      alph,
		distribution:     dist,
		scores:           ptValues,
		Vowels:           vowels,
		numUniqueLetters: numUniqueLetters,
		numLetters:       numTotalLetters,
	}
}

// GetDistribution loads a named letter distribution from the data path.
func GetDistribution(cfg *config.Config, name string) (*LetterDistribution, error) {
	filename := filepath.Join(cfg.DataPath, "letterdistributions", name+".csv")
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	ld, err := ScanLetterDistribution(file)
	if err != nil {
		return nil, err
	}
	ld.Name = name
	log.Debug().Str("name", name).Uint("letters", ld.numLetters).
		Msg("loaded-letter-distribution")
	return ld, nil
}

// EnglishLetterDistribution returns the English letter distribution.
func EnglishLetterDistribution(cfg *config.Config) (*LetterDistribution, error) {
	return GetDistribution(cfg, "english")
}

// Score gives the score of the given machine letter. Designated blanks
// score as the blank.
func (ld *LetterDistribution) Score(ml MachineLetter) int {
	if ml.IsBlanked() {
		return ld.scores[0]
	}
	return ld.scores[ml]
}

// WordScore returns the sum of the scores of these tiles.
func (ld *LetterDistribution) WordScore(mw MachineWord) int {
	score := 0
	for _, c := range mw {
		score += ld.Score(c)
	}
	return score
}

func (ld *LetterDistribution) TileMapping() *TileMapping {
	return ld.tilemapping
}

func (ld *LetterDistribution) Distribution() []uint8 {
	return ld.distribution
}

// NumTotalTiles is the size of a full bag.
func (ld *LetterDistribution) NumTotalTiles() int {
	return int(ld.numLetters)
}

// MakeBag returns a shuffled bag of this distribution's tiles.
func (ld *LetterDistribution) MakeBag() *Bag {
	b := NewBag(ld, ld.tilemapping)
	b.Shuffle()
	return b
}
