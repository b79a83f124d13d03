// Package config holds the engine configuration. Values are resolved by
// viper in the usual order: defaults, then an optional config file, then
// environment variables prefixed with MAGPIE_.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	v *viper.Viper

	DataPath                  string
	DefaultLexicon            string
	DefaultLetterDistribution string
	// ShadowPruning toggles the upper-bound pruning pass. Turning it off
	// never changes generated moves, only generation time.
	ShadowPruning bool
	// TopPlays is the K used by ranked-list generation in the shell.
	TopPlays int
	Debug    bool
}

const (
	defaultLexicon            = "NWL23"
	defaultLetterDistribution = "english"
	defaultTopPlays           = 15
)

// Load resolves the configuration. args are "key=value" overrides applied
// last, mostly for tests and the shell.
func (c *Config) Load(args []string) error {
	v := viper.New()
	v.SetDefault("data-path", findDataPath())
	v.SetDefault("default-lexicon", defaultLexicon)
	v.SetDefault("default-letter-distribution", defaultLetterDistribution)
	v.SetDefault("shadow-pruning", true)
	v.SetDefault("top-plays", defaultTopPlays)
	v.SetDefault("debug", false)

	v.SetEnvPrefix("magpie")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("magpie")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	for _, arg := range args {
		k, val, found := strings.Cut(arg, "=")
		if found {
			v.Set(k, val)
		}
	}

	c.v = v
	c.DataPath = v.GetString("data-path")
	c.DefaultLexicon = v.GetString("default-lexicon")
	c.DefaultLetterDistribution = v.GetString("default-letter-distribution")
	c.ShadowPruning = v.GetBool("shadow-pruning")
	c.TopPlays = v.GetInt("top-plays")
	c.Debug = v.GetBool("debug")
	return nil
}

// DefaultConfig returns a config suitable for tests and tools run from
// anywhere inside the repository.
func DefaultConfig() *Config {
	c := &Config{}
	err := c.Load(nil)
	if err != nil {
		log.Err(err).Msg("loading-default-config")
	}
	return c
}

// findDataPath walks up from the working directory looking for a data
// directory, so tests can run from any package directory.
func findDataPath() string {
	if env := os.Getenv("MAGPIE_DATA_PATH"); env != "" {
		return env
	}
	dir, err := os.Getwd()
	if err != nil {
		return "./data"
	}
	for i := 0; i < 6; i++ {
		candidate := filepath.Join(dir, "data")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "./data"
}

// LexiconPath returns the path of a named lexicon file.
func (c *Config) LexiconPath(lexicon string) string {
	return filepath.Join(c.DataPath, "lexica", lexicon+".kwg")
}

// StrategyParamsPath is the directory holding leave files and other
// strategy data.
func (c *Config) StrategyParamsPath() string {
	return filepath.Join(c.DataPath, "strategy")
}
