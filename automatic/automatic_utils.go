package automatic

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/olaugh/magpie-retro-sub001/config"
	"github.com/olaugh/magpie-retro-sub001/equity"
	"github.com/olaugh/magpie-retro-sub001/game"
)

// CompVCompStats aggregates the results of a batch of self-play games.
type CompVCompStats struct {
	Games         int
	MeanScore     float64
	StdevScore    float64
	BingosPerGame float64
	MeanTurns     float64
	// Fingerprints, one per game in game-index order. Two runs with the
	// same configuration and seed should produce the same list.
	Fingerprints []uint64
}

// StartCompVCompGames plays numGames computer-vs-computer games across
// the given number of worker goroutines and blocks until they are all
// done. Each worker owns its own runner; games are independent. If
// logFilename is nonempty a CSV line is appended for every turn played.
func StartCompVCompGames(ctx context.Context, cfg *config.Config,
	numGames int, workers int, logFilename string) (*CompVCompStats, error) {

	rules, err := game.NewBasicGameRules(cfg, cfg.DefaultLexicon,
		cfg.DefaultLetterDistribution)
	if err != nil {
		return nil, err
	}
	calc, err := equity.NewCombinedStaticCalculator(rules.LexiconName(),
		cfg, "", "")
	if err != nil {
		return nil, err
	}
	calcs := []equity.EquityCalculator{calc}

	var logchan chan string
	logDone := make(chan struct{})
	if logFilename != "" {
		logfile, err := os.Create(logFilename)
		if err != nil {
			return nil, err
		}
		logchan = make(chan string, 100)
		go func() {
			logfile.WriteString("playerID,turn,rack,play,score,totalscore,tilesplayed,leave,equity,tilesremaining\n")
			for msg := range logchan {
				logfile.WriteString(msg)
			}
			logfile.Close()
			close(logDone)
		}()
	} else {
		close(logDone)
	}

	log.Info().Int("games", numGames).Int("workers", workers).
		Msg("starting-self-play")

	jobs := make(chan int)
	results := make([]*GameResult, numGames)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			runner, err := NewGameRunner(rules, calcs, logchan)
			if err != nil {
				return err
			}
			for i := range jobs {
				res, err := runner.PlayFullGame()
				if err != nil {
					return err
				}
				results[i] = res
			}
			return nil
		})
	}

	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < numGames; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	err = g.Wait()
	if logchan != nil {
		close(logchan)
	}
	<-logDone
	if err != nil {
		return nil, err
	}

	stats := summarize(results)
	log.Info().Int("games", stats.Games).
		Float64("mean-score", stats.MeanScore).
		Float64("stdev-score", stats.StdevScore).
		Float64("bingos-per-game", stats.BingosPerGame).
		Float64("mean-turns", stats.MeanTurns).
		Msg("self-play-done")
	return stats, nil
}

func summarize(results []*GameResult) *CompVCompStats {
	scores := make([]float64, 0, len(results)*2)
	turns := make([]float64, 0, len(results))
	fingerprints := make([]uint64, 0, len(results))
	bingos := 0
	for _, res := range results {
		if res == nil {
			continue
		}
		scores = append(scores, float64(res.Scores[0]), float64(res.Scores[1]))
		turns = append(turns, float64(res.Turns))
		fingerprints = append(fingerprints, res.Fingerprint)
		bingos += res.Bingos
	}
	games := len(turns)
	st := &CompVCompStats{
		Games:        games,
		Fingerprints: fingerprints,
	}
	if games == 0 {
		return st
	}
	st.MeanScore = stat.Mean(scores, nil)
	st.StdevScore = stat.StdDev(scores, nil)
	st.BingosPerGame = float64(bingos) / float64(games)
	st.MeanTurns = stat.Mean(turns, nil)
	return st
}
