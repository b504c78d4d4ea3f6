package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/golang/glog"

	"github.com/chrissprague/montyhall/normalform"
)

func main() {
	gameName := flag.String("game", "prisoners_dilemma",
		fmt.Sprintf("Game to solve (one of: %s)", strings.Join(normalform.GameNames(), ", ")))
	verbose := flag.Bool("v", false, "Print the payoff matrix and equilibrium payoffs")
	flag.Parse()

	builder, ok := normalform.Games[*gameName]
	if !ok {
		glog.Exitf("Unknown game %q; available games: %s",
			*gameName, strings.Join(normalform.GameNames(), ", "))
	}

	game, actions := builder()
	equilibria, err := game.NashEquilibria()
	if err != nil {
		glog.Exit(err)
	}

	fmt.Printf("Game: %s (%s vs %s)\n", *gameName,
		game.Player(normalform.Player1).Name, game.Player(normalform.Player2).Name)

	if *verbose {
		fmt.Println("\nPayoff matrix:")
		for _, a1 := range game.Player(normalform.Player1).Actions {
			for _, a2 := range game.Player(normalform.Player2).Actions {
				payoffs, err := game.Payoff(normalform.Profile{P1: a1.Name, P2: a2.Name})
				if err != nil {
					glog.Exit(err)
				}

				fmt.Printf("  %s/%s: (%g, %g)\n", a1.Name, a2.Name, payoffs.P1, payoffs.P2)
			}
		}
	}

	fmt.Println("\nNash equilibria:")
	if len(equilibria) == 0 {
		fmt.Println("  No pure Nash equilibria found")
	}

	for _, eq := range equilibria {
		fmt.Printf("  %s/%s\n", eq.P1, eq.P2)
		if *verbose {
			payoffs, err := game.Payoff(eq)
			if err != nil {
				glog.Exit(err)
			}

			fmt.Printf("    Payoffs: (%g, %g)\n", payoffs.P1, payoffs.P2)
		}
	}

	defect, ok := actions["defect"]
	if ok && len(equilibria) == 1 && equilibria[0] == (normalform.Profile{P1: defect.Name, P2: defect.Name}) {
		fmt.Println("\nThis is the standard Prisoner's Dilemma outcome:")
		fmt.Println("Both players defect, demonstrating the conflict between individual and collective rationality")
	}
}
