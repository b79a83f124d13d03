package kwg

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/olaugh/magpie-retro-sub001/cache"
	"github.com/olaugh/magpie-retro-sub001/config"
	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

const (
	CacheKeyPrefix = "kwg:"
)

// CacheLoadFunc is the function that loads an object into the global cache.
func CacheLoadFunc(cfg *config.Config, key string) (interface{}, error) {
	lexiconName := strings.TrimPrefix(key, CacheKeyPrefix)
	return LoadKWG(cfg, cfg.LexiconPath(lexiconName))
}

func LoadKWG(cfg *config.Config, filename string) (*KWG, error) {
	log.Debug().Msgf("Loading %v ...", filename)
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	// KWG is a simple array of nodes. There is no alphabet information in it,
	// so we must derive it from the filename, for now.
	lexfile := filepath.Base(filename)
	lexname, found := strings.CutSuffix(lexfile, ".kwg")
	if !found {
		return nil, errors.New("filename not in correct format")
	}

	kwg, err := ScanKWG(file)
	if err != nil {
		return nil, err
	}
	kwg.lexiconName = lexname
	ldName, err := LetterDistributionName(lexname)
	if err != nil {
		return nil, err
	}

	ld, err := tilemapping.GetDistribution(cfg, ldName)
	if err != nil {
		return nil, err
	}
	// we don't care about the distribution right now, just the tilemapping.
	kwg.alphabet = ld.TileMapping()

	return kwg, nil
}

// LetterDistributionName guesses the letter distribution for a lexicon
// from its name.
func LetterDistributionName(lexname string) (string, error) {
	lexname = strings.ToLower(lexname)
	switch {
	case strings.HasPrefix(lexname, "nwl") ||
		strings.HasPrefix(lexname, "nswl") ||
		strings.HasPrefix(lexname, "twl") ||
		strings.HasPrefix(lexname, "owl") ||
		strings.HasPrefix(lexname, "csw") ||
		strings.HasPrefix(lexname, "america") ||
		strings.HasPrefix(lexname, "cel") ||
		strings.HasPrefix(lexname, "ecwl"):

		return "english", nil
	case strings.HasPrefix(lexname, "osps"):
		return "polish", nil
	case strings.HasPrefix(lexname, "nsf"):
		return "norwegian", nil
	case strings.HasPrefix(lexname, "fra"):
		return "french", nil
	case strings.HasPrefix(lexname, "rd"):
		return "german", nil
	}
	return "", errors.New("cannot determine letter distribution from lexicon name " + lexname)
}

// Get loads a named KWG from the cache or from a file
func Get(cfg *config.Config, name string) (*KWG, error) {

	key := CacheKeyPrefix + name
	obj, err := cache.Load(cfg, key, CacheLoadFunc)
	if err != nil {
		return nil, err
	}
	ret, ok := obj.(*KWG)
	if !ok {
		return nil, errors.New("could not read kwg from file")
	}
	return ret, nil
}
