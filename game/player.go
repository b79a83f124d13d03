package game

import (
	"fmt"

	"github.com/olaugh/magpie-retro-sub001/tilemapping"
)

type playerState struct {
	nickname string

	rack   *tilemapping.Rack
	points int
	bingos int
	turns  int

	// to minimize allocs when redrawing:
	placeholderRack []tilemapping.MachineLetter
}

func newPlayerState(nickname string) *playerState {
	return &playerState{
		nickname:        nickname,
		placeholderRack: make([]tilemapping.MachineLetter, RackTileLimit),
	}
}

func (p *playerState) resetScore() {
	p.points = 0
	p.bingos = 0
	p.turns = 0
}

func (p *playerState) throwRackIn(bag *tilemapping.Bag) {
	bag.PutBack(p.rack.TilesOn())
	p.rack.Set([]tilemapping.MachineLetter{})
}

func (p *playerState) rackLetters() string {
	return p.rack.String()
}

func (p *playerState) stateString(myturn bool) string {
	onturn := ""
	if myturn {
		onturn = "-> "
	}
	rackLetters := p.rackLetters()
	if !myturn {
		// Don't show the opponent's tiles.
		rackLetters = ""
	}
	return fmt.Sprintf("%4v%12v%9v %4v", onturn, p.nickname, rackLetters, p.points)
}

type playerStates []*playerState

func (p playerStates) resetRacks() {
	for idx := range p {
		p[idx].rack.Clear()
	}
}

func (p playerStates) resetScore() {
	for idx := range p {
		p[idx].resetScore()
	}
}
