package game

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

func splitSubN(s string, n int) []string {
	sub := ""
	subs := []string{}

	runes := bytes.Runes([]byte(s))
	l := len(runes)
	for i, r := range runes {
		sub = sub + string(r)
		if (i+1)%n == 0 {
			subs = append(subs, sub)
			sub = ""
		} else if (i + 1) == l {
			subs = append(subs, sub)
		}
	}

	return subs
}

func addText(lines []string, row int, hpad int, text string) {
	maxTextSize := 42
	sp := splitSubN(text, maxTextSize)

	for _, chunk := range sp {
		str := lines[row] + strings.Repeat(" ", hpad) + chunk
		lines[row] = str
		row++
	}
}

// ToDisplayText turns the current state of the game into a displayable
// string: the board, both players' score lines, and the unseen tiles.
func (g *Game) ToDisplayText() string {
	bt := g.board.ToDisplayText(g.alph)
	bts := strings.Split(bt, "\n")
	hpadding := 3
	vpadding := 1
	bagColCount := 20

	for pi := 0; pi < 2; pi++ {
		addText(bts, vpadding+pi, hpadding,
			g.players[pi].stateString(g.playing == StatePlaying && g.onturn == pi))
	}

	// Peek into the bag, and append the opponent's tiles; from the
	// player on turn's point of view these are indistinguishable.
	inbag := g.bag.Peek()
	opprack := g.players[otherPlayer(g.onturn)].rack.TilesOn()
	bagAndUnseen := append(inbag, opprack...)

	addText(bts, vpadding+3, hpadding, fmt.Sprintf("Bag + unseen: (%d)", len(bagAndUnseen)))

	vpadding = 6
	sort.Slice(bagAndUnseen, func(i, j int) bool {
		return bagAndUnseen[i] < bagAndUnseen[j]
	})

	bagDisp := []string{}
	cCtr := 0
	bagStr := ""
	for i := 0; i < len(bagAndUnseen); i++ {
		bagStr += string(bagAndUnseen[i].UserVisible(g.alph, false)) + " "
		cCtr++
		if cCtr == bagColCount {
			bagDisp = append(bagDisp, bagStr)
			bagStr = ""
			cCtr = 0
		}
	}
	if bagStr != "" {
		bagDisp = append(bagDisp, bagStr)
	}

	for p := vpadding; p < vpadding+len(bagDisp); p++ {
		addText(bts, p, hpadding, bagDisp[p-vpadding])
	}

	addText(bts, 12, hpadding, fmt.Sprintf("Turn %d:", g.turnnum))

	if g.playing == StateGameOver {
		addText(bts, 13, hpadding, "Game is over.")
	}

	return strings.Join(bts, "\n")
}
