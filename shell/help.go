package shell

import (
	"io"

	"github.com/chzyer/readline"
)

var completer = readline.NewPrefixCompleter(
	readline.PcItem("load"),
	readline.PcItem("show"),
	readline.PcItem("rack"),
	readline.PcItem("gen"),
	readline.PcItem("play",
		readline.PcItem("pass"),
	),
	readline.PcItem("unplay"),
	readline.PcItem("autoplay"),
	readline.PcItem("help"),
	readline.PcItem("exit"),
)

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "load <lexicon> - start a new game with the given lexicon (e.g. load NWL23)\n")
	io.WriteString(w, "show - display the current board and scores\n")
	io.WriteString(w, "rack <letters> - set the rack of the player on turn, e.g. rack AEINRST\n")
	io.WriteString(w, "gen [n] - generate plays and sort by equity; n defaults to the top-plays setting\n")
	io.WriteString(w, "play #<n> - play the nth play from the last gen\n")
	io.WriteString(w, "play <coords> <word> - play a placement, e.g. play 8D CABS\n")
	io.WriteString(w, "play pass - pass the turn\n")
	io.WriteString(w, "unplay - take back the last play\n")
	io.WriteString(w, "autoplay [games] [workers] - play computer-vs-computer games\n")
	io.WriteString(w, "exit - leave the shell\n")
}
