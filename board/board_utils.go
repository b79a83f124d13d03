package board

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

// TilesInPlay lists the tiles on the board and on the players' racks,
// for reconciling a tile bag against a set position.
type TilesInPlay struct {
	OnBoard []tilemapping.MachineLetter
	Rack1   []tilemapping.MachineLetter
	Rack2   []tilemapping.MachineLetter
}

var boardPlaintextRegex = regexp.MustCompile(`\|(.+)\|`)
var userRackRegex = regexp.MustCompile(`(?U).+\s+([A-Z\?]*)\s+-?[0-9]+`)

func (g *GameBoard) sqDisplayStr(row, col int, alph *tilemapping.TileMapping) string {
	ml := g.GetLetter(row, col)
	if ml != 0 {
		return string(alph.Letter(ml))
	}
	bonus := g.GetBonus(row, col)
	if bonus == 0 {
		return " "
	}
	return string(bonus)
}

func (g *GameBoard) ToDisplayText(alph *tilemapping.TileMapping) string {
	var str string
	n := g.Dim()
	row := "   "
	for i := 0; i < n; i++ {
		row = row + fmt.Sprintf("%c", 'A'+i) + " "
	}
	str = str + row + "\n"
	str = str + "   " + strings.Repeat("-", n*2) + "\n"
	for i := 0; i < n; i++ {
		row := fmt.Sprintf("%2d|", i+1)
		for j := 0; j < n; j++ {
			row = row + g.sqDisplayStr(i, j, alph) + " "
		}
		row = row + "|"
		str = str + row + "\n"
	}
	str = str + "   " + strings.Repeat("-", n*2) + "\n"
	return "\n" + str
}

// setFromPlaintext sets the board from the given plaintext board. It
// returns a list of all played machine letters (tiles) so that the
// caller can reconcile the tile bag appropriately.
func (g *GameBoard) setFromPlaintext(qText string,
	alph *tilemapping.TileMapping) *TilesInPlay {

	g.Clear()
	tilesInPlay := &TilesInPlay{}
	// Take a Quackle Plaintext Board and turn it into an internal structure.
	playedTiles := []tilemapping.MachineLetter(nil)
	result := boardPlaintextRegex.FindAllStringSubmatch(qText, -1)
	if len(result) != 15 {
		panic("wrongly implemented")
	}
	g.tilesPlayed = 0
	var err error
	var letter tilemapping.MachineLetter
	for i := range result {
		// result[i][1] has the string
		j := -1
		for _, ch := range result[i][1] {
			j++
			if j%2 != 0 {
				continue
			}
			letter, err = alph.Val(ch)
			if err != nil || ch == ' ' || letter == 0 {
				// Ignore the error; we are passing in a space or another
				// board marker.
				g.SetLetter(i, j/2, 0)
			} else {
				g.SetLetter(i, j/2, letter)
				g.tilesPlayed++
				playedTiles = append(playedTiles, letter)
			}
		}
	}
	userRacks := userRackRegex.FindAllStringSubmatch(qText, -1)
	for i := range userRacks {
		if i > 1 { // only the first two lines that match
			break
		}
		rack := userRacks[i][1]
		rackTiles := []tilemapping.MachineLetter{}
		for _, ch := range rack {
			letter, err = alph.Val(ch)
			if err != nil {
				panic(err)
			}
			rackTiles = append(rackTiles, letter)
		}

		if i == 0 {
			tilesInPlay.Rack1 = rackTiles
		} else if i == 1 {
			tilesInPlay.Rack2 = rackTiles
		}
	}
	tilesInPlay.OnBoard = playedTiles
	return tilesInPlay
}

// SetRow sets the letters in a single row from a string, for tests. A
// space is an empty square.
func (g *GameBoard) SetRow(rowNum int, letters string, alph *tilemapping.TileMapping) []tilemapping.MachineLetter {
	for idx := 0; idx < g.Dim(); idx++ {
		if g.HasLetter(rowNum, idx) {
			g.tilesPlayed--
		}
		g.SetLetter(rowNum, idx, 0)
	}
	lettersPlayed := []tilemapping.MachineLetter{}
	for idx, r := range letters {
		if r != ' ' {
			letter, err := alph.Val(r)
			if err != nil {
				log.Fatal().Msgf("%v", err)
			}
			g.SetLetter(rowNum, idx, letter)
			g.tilesPlayed++
			lettersPlayed = append(lettersPlayed, letter)
		}
	}
	return lettersPlayed
}

// Equals checks the boards for equality. Two boards are equal if all
// the squares are equal. This includes anchors, letters, cross-sets and
// extension sets.
func (g *GameBoard) Equals(g2 *GameBoard) bool {
	if g.Dim() != g2.Dim() {
		log.Info().Msgf("dims don't match: %v %v", g.Dim(), g2.Dim())
		return false
	}
	if g.tilesPlayed != g2.tilesPlayed {
		log.Info().Msgf("tiles played don't match: %v %v", g.tilesPlayed, g2.tilesPlayed)
		return false
	}
	for v := 0; v < 2; v++ {
		for i := range g.letters[v] {
			if g.letters[v][i] != g2.letters[v][i] ||
				g.bonuses[v][i] != g2.bonuses[v][i] ||
				g.crossSets[v][i] != g2.crossSets[v][i] ||
				g.crossScores[v][i] != g2.crossScores[v][i] ||
				g.leftxSets[v][i] != g2.leftxSets[v][i] ||
				g.rightxSets[v][i] != g2.rightxSets[v][i] ||
				g.anchors[v][i] != g2.anchors[v][i] {
				log.Info().Msgf("> not equal, view %v idx %v", v, i)
				return false
			}
		}
	}
	return true
}
