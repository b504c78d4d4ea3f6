// Package normalform models finite two-player normal-form games and
// enumerates their pure-strategy Nash equilibria.
package normalform

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// PlayerID identifies one of the two players in a game.
type PlayerID uint8

const (
	Player1 PlayerID = iota
	Player2
)

var playerStr = [...]string{
	"Player1",
	"Player2",
}

func (p PlayerID) String() string {
	return playerStr[p]
}

// Action is one move available to a player. Name must be unique within
// the player's action set. Payoff is bookkeeping only; the equilibrium
// search reads payoffs from the Game's matrix, not from here.
type Action struct {
	Name   string
	Payoff float64
}

// Player is a named participant with an ordered set of available Actions.
// The ordering determines enumeration order and therefore output order.
type Player struct {
	Name    string
	Actions []Action
}

// Profile is an ordered pair of action names, one per player.
type Profile struct {
	P1 string
	P2 string
}

// String implements fmt.Stringer.
func (p Profile) String() string {
	return fmt.Sprintf("(%s, %s)", p.P1, p.P2)
}

// Payoffs holds the payoff each player receives for one joint action.
type Payoffs struct {
	P1 float64
	P2 float64
}

// For returns the payoff belonging to the given player.
func (p Payoffs) For(player PlayerID) float64 {
	if player == Player1 {
		return p.P1
	}
	return p.P2
}

// PayoffMatrix maps every joint action to the players' payoffs.
// It must be total over the Cartesian product of the two action sets;
// a missing entry is a malformed game, not a recoverable condition.
type PayoffMatrix map[Profile]Payoffs

// Game is a two-player normal-form game. The equilibria list is a cache
// of the last NashEquilibria computation and may be recomputed at any
// time without affecting the rest of the game.
type Game struct {
	players    [2]Player
	payoffs    PayoffMatrix
	equilibria []Profile
}

// NewGame builds a Game from two players and a payoff matrix, validating
// that every reachable joint action has a payoff entry.
func NewGame(p1, p2 Player, payoffs PayoffMatrix) (*Game, error) {
	for id, p := range []Player{p1, p2} {
		if p.Name == "" {
			return nil, errors.Errorf("%v must have a name", PlayerID(id))
		}

		if len(p.Actions) == 0 {
			return nil, errors.Errorf("player %s has no actions", p.Name)
		}

		seen := make(map[string]struct{}, len(p.Actions))
		for _, a := range p.Actions {
			if a.Name == "" {
				return nil, errors.Errorf("player %s has an unnamed action", p.Name)
			}

			if _, ok := seen[a.Name]; ok {
				return nil, errors.Errorf("player %s has duplicate action %q", p.Name, a.Name)
			}
			seen[a.Name] = struct{}{}
		}
	}

	for _, a1 := range p1.Actions {
		for _, a2 := range p2.Actions {
			if _, ok := payoffs[Profile{a1.Name, a2.Name}]; !ok {
				return nil, errors.Errorf(
					"malformed game: no payoff entry for %v", Profile{a1.Name, a2.Name})
			}
		}
	}

	return &Game{players: [2]Player{p1, p2}, payoffs: payoffs}, nil
}

// Player returns the given player's definition.
func (g *Game) Player(id PlayerID) Player {
	return g.players[id]
}

// Payoff looks up the payoffs for one joint action. A lookup outside the
// matrix domain means the game definition is malformed.
func (g *Game) Payoff(p Profile) (Payoffs, error) {
	payoffs, ok := g.payoffs[p]
	if !ok {
		return Payoffs{}, errors.Errorf("malformed game: no payoff entry for %v", p)
	}

	return payoffs, nil
}

// BestResponse returns the names of every action that maximizes player's
// payoff against the opponent's fixed action. Ties are preserved: all
// actions achieving the maximum are returned, in the player's action
// order. Payoff comparison is exact.
func (g *Game) BestResponse(player PlayerID, opponentAction string) ([]string, error) {
	var best []string
	var bestPayoff float64
	for _, a := range g.players[player].Actions {
		joint := Profile{a.Name, opponentAction}
		if player == Player2 {
			joint = Profile{opponentAction, a.Name}
		}

		payoffs, err := g.Payoff(joint)
		if err != nil {
			return nil, errors.Wrapf(err, "finding best response for %v", player)
		}

		payoff := payoffs.For(player)
		if len(best) == 0 || payoff > bestPayoff {
			best = append(best[:0], a.Name)
			bestPayoff = payoff
		} else if payoff == bestPayoff {
			best = append(best, a.Name)
		}
	}

	return best, nil
}

// NashEquilibria enumerates the full joint action space and returns every
// profile in which both actions are mutual best responses. Profiles are
// visited in player 1-major order over each player's action sequence, so
// the output order is deterministic and the result contains no duplicates.
// The result is cached on the Game; recomputation yields identical output.
func (g *Game) NashEquilibria() ([]Profile, error) {
	var equilibria []Profile
	for _, a1 := range g.players[Player1].Actions {
		for _, a2 := range g.players[Player2].Actions {
			p1Best, err := g.BestResponse(Player1, a2.Name)
			if err != nil {
				return nil, err
			}

			p2Best, err := g.BestResponse(Player2, a1.Name)
			if err != nil {
				return nil, err
			}

			if contains(p1Best, a1.Name) && contains(p2Best, a2.Name) {
				glog.V(1).Infof("Found pure equilibrium %v", Profile{a1.Name, a2.Name})
				equilibria = append(equilibria, Profile{a1.Name, a2.Name})
			}
		}
	}

	g.equilibria = equilibria
	return equilibria, nil
}

// Equilibria returns the cached result of the last NashEquilibria call,
// or nil if equilibria have not been computed yet.
func (g *Game) Equilibria() []Profile {
	return g.equilibria
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}

	return false
}
