package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/golang/glog"
	"github.com/timpalpant/go-cfr"
	"github.com/timpalpant/go-cfr/tree"

	"github.com/chrissprague/montyhall/normalform"
)

func main() {
	gameName := flag.String("game", "prisoners_dilemma",
		fmt.Sprintf("Game to expand (one of: %s)", strings.Join(normalform.GameNames(), ", ")))
	flag.Parse()

	builder, ok := normalform.Games[*gameName]
	if !ok {
		glog.Exitf("Unknown game %q; available games: %s",
			*gameName, strings.Join(normalform.GameNames(), ", "))
	}

	game, _ := builder()
	root := normalform.NewGameTree(game)

	playerNodes := 0
	terminalNodes := 0
	tree.Visit(root, func(node cfr.GameTreeNode) {
		switch node.Type() {
		case cfr.TerminalNodeType:
			terminalNodes++
			gn := node.(*normalform.GameNode)
			fmt.Printf("%v: utilities (%g, %g)\n", gn.Profile(),
				gn.Utility(int(normalform.Player1)), gn.Utility(int(normalform.Player2)))
		case cfr.PlayerNodeType:
			playerNodes++
		}
	})

	fmt.Printf("%d player nodes, %d terminal nodes.\n", playerNodes, terminalNodes)
}
