package automatic

import (
	"testing"

	"github.com/matryer/is"

	"github.com/olaugh/magpie-retro-sub001/config"
	"github.com/olaugh/magpie-retro-sub001/equity"
	"github.com/olaugh/magpie-retro-sub001/game"
	"github.com/olaugh/magpie-retro-sub001/kwg"
	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

var DefaultConfig = config.DefaultConfig()

var testWords = []string{
	"AB", "BA", "ABA", "CABS", "CAB", "BACS", "ABACUS", "SCUBA",
	"CUB", "CUBS", "BUS", "SUB", "AA", "AAS",
}

func testRules(t testing.TB) *game.GameRules {
	is := is.New(t)
	ld, err := tilemapping.EnglishLetterDistribution(DefaultConfig)
	is.NoErr(err)
	k, err := kwg.MakeKWG(ld, "TESTLEX", testWords)
	is.NoErr(err)
	return game.NewGameRules(DefaultConfig, k, ld, "english")
}

func TestPlayFullGame(t *testing.T) {
	is := is.New(t)
	rules := testRules(t)
	calcs := []equity.EquityCalculator{equity.NewNoLeaveCalculator()}

	logchan := make(chan string)
	loglines := 0
	logDone := make(chan struct{})
	go func() {
		for range logchan {
			loglines++
		}
		close(logDone)
	}()

	runner, err := NewGameRunner(rules, calcs, logchan)
	is.NoErr(err)

	res, err := runner.PlayFullGame()
	is.NoErr(err)
	close(logchan)
	<-logDone

	is.Equal(runner.Game().Playing(), game.StateGameOver)
	is.True(res.Turns > 0)
	is.Equal(res.Scores[0], runner.Game().PointsFor(0))
	is.Equal(res.Scores[1], runner.Game().PointsFor(1))
	is.True(res.Fingerprint != 0)
	// One log line per turn.
	is.Equal(loglines, res.Turns)
}

func TestSummarize(t *testing.T) {
	is := is.New(t)
	results := []*GameResult{
		{Scores: [2]int{300, 350}, Bingos: 2, Turns: 22, Fingerprint: 7},
		{Scores: [2]int{400, 250}, Bingos: 1, Turns: 26, Fingerprint: 8},
	}
	st := summarize(results)
	is.Equal(st.Games, 2)
	is.Equal(st.MeanScore, 325.0)
	is.Equal(st.BingosPerGame, 1.5)
	is.Equal(st.MeanTurns, 24.0)
	is.Equal(st.Fingerprints, []uint64{7, 8})
}

func TestSummarizeEmpty(t *testing.T) {
	is := is.New(t)
	st := summarize(nil)
	is.Equal(st.Games, 0)
	is.Equal(st.MeanScore, 0.0)
}
