package move

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

// MoveType is a type of move; a play, an exchange, pass, etc.
type MoveType uint8

const (
	MoveTypeUnset MoveType = iota
	MoveTypePlay
	MoveTypeExchange
	MoveTypePass

	MoveTypeEndgameTiles
	MoveTypeLostTileScore
)

// Move is a move. It can have a score, position, equity, etc. It doesn't
// have to be a scoring move.
type Move struct {
	action      MoveType
	score       int
	equity      float64
	tiles       tilemapping.MachineWord
	leave       tilemapping.MachineWord
	rowStart    int
	colStart    int
	vertical    bool
	tilesPlayed int
	alph        *tilemapping.TileMapping
}

var reVertical, reHorizontal *regexp.Regexp

func init() {
	reVertical = regexp.MustCompile(`^(?P<col>[A-Z])(?P<row>[0-9]+)$`)
	reHorizontal = regexp.MustCompile(`^(?P<row>[0-9]+)(?P<col>[A-Z])$`)
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	switch m.action {
	case MoveTypePlay:
		return fmt.Sprintf(
			"<action: play word: %v %v score: %v tp: %v leave: %v equity: %.3f>",
			m.BoardCoords(), m.TilesString(), m.score,
			m.tilesPlayed, m.LeaveString(), m.equity)
	case MoveTypePass:
		return fmt.Sprintf("<action: pass leave: %v equity: %.3f>",
			m.LeaveString(), m.equity)
	case MoveTypeExchange:
		return fmt.Sprintf(
			"<action: exchange %v tp: %v leave: %v equity: %.3f>",
			m.TilesString(), m.tilesPlayed, m.LeaveString(), m.equity)
	}
	return fmt.Sprint("<Unhandled move>")
}

func (m *Move) TilesString() string {
	return m.tiles.UserVisible(m.alph)
}

func (m *Move) LeaveString() string {
	return m.leave.UserVisible(m.alph)
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (m *Move) ShortDescription() string {
	switch m.action {
	case MoveTypePlay:
		return fmt.Sprintf("%v %v", m.BoardCoords(), m.TilesString())
	case MoveTypePass:
		return "(Pass)"
	case MoveTypeExchange:
		return fmt.Sprintf("(exch %v)", m.TilesString())
	}
	return fmt.Sprint("UNHANDLED")
}

// FullRack returns the entire rack that the move was made from. This
// can be calculated from the tiles it uses and the leave.
func (m *Move) FullRack() string {
	rack := []rune(m.LeaveString())
	for _, ml := range m.tiles {
		switch {
		case ml.IsBlanked():
			rack = append(rack, tilemapping.BlankToken)
		case ml == 0 && m.action == MoveTypeExchange:
			// Only if you exchange the blank
			rack = append(rack, tilemapping.BlankToken)
		case ml == 0:
			// a play-through marker inside a play
		default:
			rack = append(rack, m.alph.Letter(ml))
		}
	}
	sort.Slice(rack, func(i, j int) bool {
		return rack[i] < rack[j]
	})
	return string(rack)
}

func (m *Move) Action() MoveType {
	return m.action
}

// IsEmpty returns whether this move has been set to anything at all.
func (m *Move) IsEmpty() bool {
	return m.action == MoveTypeUnset
}

// TilesPlayed returns the number of tiles played by this move.
func (m *Move) TilesPlayed() int {
	return m.tilesPlayed
}

// BingoPlayed returns whether this play used a full rack of seven tiles.
func (m *Move) BingoPlayed() bool {
	return m.action == MoveTypePlay && m.tilesPlayed == 7
}

// NewScoringMove creates a scoring *Move and returns it.
func NewScoringMove(score int, tiles tilemapping.MachineWord,
	leave tilemapping.MachineWord, vertical bool, tilesPlayed int,
	alph *tilemapping.TileMapping, rowStart int, colStart int) *Move {

	move := &Move{
		action: MoveTypePlay, score: score, tiles: tiles, leave: leave, vertical: vertical,
		tilesPlayed: tilesPlayed, alph: alph,
		rowStart: rowStart, colStart: colStart,
	}
	return move
}

// NewScoringMoveSimple takes in user-visible strings. It is a little
// slower than NewScoringMove, so it is mostly for tests.
func NewScoringMoveSimple(score int, coords string, word string, leave string,
	alph *tilemapping.TileMapping) *Move {

	row, col, vertical := FromBoardGameCoords(coords)

	tiles, err := tilemapping.ToMachineWord(word, alph)
	if err != nil {
		log.Error().Err(err).Msg("")
		return nil
	}
	leaveMW, err := tilemapping.ToMachineWord(leave, alph)
	if err != nil {
		log.Error().Err(err).Msg("")
		return nil
	}
	tilesPlayed := 0
	for _, t := range tiles {
		if t != 0 {
			tilesPlayed++
		}
	}

	move := &Move{
		action:      MoveTypePlay,
		score:       score,
		tiles:       tiles,
		leave:       leaveMW,
		vertical:    vertical,
		tilesPlayed: tilesPlayed,
		alph:        alph,
		rowStart:    row,
		colStart:    col,
	}
	return move
}

// NewExchangeMove creates an exchange.
func NewExchangeMove(tiles tilemapping.MachineWord, leave tilemapping.MachineWord,
	alph *tilemapping.TileMapping) *Move {
	move := &Move{
		action:      MoveTypeExchange,
		score:       0,
		tiles:       tiles,
		leave:       leave,
		tilesPlayed: len(tiles), // tiles exchanged, really..
		alph:        alph,
	}
	return move
}

// NewPassMove creates a pass with the given leave.
func NewPassMove(leave tilemapping.MachineWord, alph *tilemapping.TileMapping) *Move {
	return &Move{
		action: MoveTypePass,
		leave:  leave,
		alph:   alph,
	}
}

func NewLostScoreMove(t MoveType, rack tilemapping.MachineWord, score int) *Move {
	return &Move{
		action: t,
		tiles:  rack,
		score:  -score,
	}
}

func NewBonusScoreMove(t MoveType, tiles tilemapping.MachineWord, score int) *Move {
	return &Move{
		action: t,
		tiles:  tiles,
		score:  score,
	}
}

// Set sets the fields of this move, copying the tile slices. It is used
// when we want to reuse a move allocation.
func (m *Move) Set(tiles tilemapping.MachineWord, leave tilemapping.MachineWord,
	score int, rowStart, colStart, tilesPlayed int, vertical bool,
	action MoveType, alph *tilemapping.TileMapping) {

	m.action = action
	m.score = score
	m.tiles = append(m.tiles[:0], tiles...)
	m.leave = append(m.leave[:0], leave...)
	m.rowStart = rowStart
	m.colStart = colStart
	m.tilesPlayed = tilesPlayed
	m.vertical = vertical
	m.alph = alph
	m.equity = 0
}

// CopyFrom copies the other move into this one, deeply.
func (m *Move) CopyFrom(other *Move) {
	m.action = other.action
	m.score = other.score
	m.equity = other.equity
	m.tiles = append(m.tiles[:0], other.tiles...)
	m.leave = append(m.leave[:0], other.leave...)
	m.rowStart = other.rowStart
	m.colStart = other.colStart
	m.vertical = other.vertical
	m.tilesPlayed = other.tilesPlayed
	m.alph = other.alph
}

// Copy returns a deep copy of this move.
func (m *Move) Copy() *Move {
	n := &Move{}
	n.CopyFrom(m)
	return n
}

// Alphabet is the tile mapping used by this move.
func (m *Move) Alphabet() *tilemapping.TileMapping {
	return m.alph
}

// Equity is the equity of this move.
func (m *Move) Equity() float64 {
	return m.equity
}

// SetEquity sets the equity of this move. It is calculated outside this package.
func (m *Move) SetEquity(e float64) {
	m.equity = e
}

func (m *Move) Score() int {
	return m.score
}

func (m *Move) Leave() tilemapping.MachineWord {
	return m.leave
}

func (m *Move) Tiles() tilemapping.MachineWord {
	return m.tiles
}

func (m *Move) CoordsAndVertical() (int, int, bool) {
	return m.rowStart, m.colStart, m.vertical
}

func (m *Move) BoardCoords() string {
	return ToBoardGameCoords(m.rowStart, m.colStart, m.vertical)
}

// Better returns true if this move should be preferred over the other
// one. Equity decides almost always; the rest of the chain only exists
// so that two generators looking at the same position always agree on
// a single best play. Lower rows and columns win, horizontal beats
// vertical, then fewer tiles played, shorter words, and finally the
// lexicographically smaller tile string.
func (m *Move) Better(other *Move) bool {
	if other == nil || other.action == MoveTypeUnset {
		return true
	}
	if m.equity != other.equity {
		return m.equity > other.equity
	}
	if m.score != other.score {
		return m.score > other.score
	}
	if m.rowStart != other.rowStart {
		return m.rowStart < other.rowStart
	}
	if m.colStart != other.colStart {
		return m.colStart < other.colStart
	}
	if m.vertical != other.vertical {
		return other.vertical
	}
	if m.tilesPlayed != other.tilesPlayed {
		return m.tilesPlayed < other.tilesPlayed
	}
	if len(m.tiles) != len(other.tiles) {
		return len(m.tiles) < len(other.tiles)
	}
	for i := range m.tiles {
		if m.tiles[i] != other.tiles[i] {
			return m.tiles[i] < other.tiles[i]
		}
	}
	return false
}

// ToBoardGameCoords converts the row, col, and orientation of the play to
// a coordinate like 5F or G4.
func ToBoardGameCoords(row int, col int, vertical bool) string {
	colCoords := string(rune('A' + col))
	rowCoords := strconv.Itoa(row + 1)
	var coords string
	if vertical {
		coords = colCoords + rowCoords
	} else {
		coords = rowCoords + colCoords
	}
	return coords
}

// FromBoardGameCoords does the inverse operation of ToBoardGameCoords above.
func FromBoardGameCoords(c string) (int, int, bool) {
	vMatches := reVertical.FindStringSubmatch(c)
	var row, col int
	var vertical bool
	if len(vMatches) == 3 {
		// It's vertical
		row, _ = strconv.Atoi(vMatches[2])
		col = int(vMatches[1][0] - 'A')
		vertical = true
		return row - 1, col, vertical
	}
	hMatches := reHorizontal.FindStringSubmatch(c)
	if len(hMatches) == 3 {
		row, _ = strconv.Atoi(hMatches[1])
		col = int(hMatches[2][0] - 'A')
		vertical = false
		return row - 1, col, vertical
	}

	return 0, 0, false
}
