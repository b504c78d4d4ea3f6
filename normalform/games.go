package normalform

import (
	"fmt"
	"sort"
)

// Builder constructs one of the canonical games, returning the populated
// Game and a lookup table from action name to Action.
type Builder func() (*Game, map[string]Action)

// Games maps registry names to canonical game builders.
var Games = map[string]Builder{
	"prisoners_dilemma":   PrisonersDilemma,
	"battle_of_the_sexes": BattleOfTheSexes,
	"chicken":             Chicken,
	"stag_hunt":           StagHunt,
	"matching_pennies":    MatchingPennies,
	"ultimatum":           UltimatumGame,
}

// GameNames returns the registry names in sorted order.
func GameNames() []string {
	names := make([]string, 0, len(Games))
	for name := range Games {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

func mustGame(p1, p2 Player, payoffs PayoffMatrix) *Game {
	game, err := NewGame(p1, p2, payoffs)
	if err != nil {
		panic(fmt.Errorf("bad canonical game definition: %v", err))
	}

	return game
}

func actionTable(actions ...Action) map[string]Action {
	table := make(map[string]Action, len(actions))
	for _, a := range actions {
		table[a.Name] = a
	}

	return table
}

// PrisonersDilemma builds the standard Prisoner's Dilemma. Defection
// strictly dominates, so (defect, defect) is the unique pure equilibrium
// even though mutual cooperation pays both players more.
func PrisonersDilemma() (*Game, map[string]Action) {
	cooperate := Action{Name: "cooperate"}
	defect := Action{Name: "defect"}

	game := mustGame(
		Player{Name: "Prisoner 1", Actions: []Action{cooperate, defect}},
		Player{Name: "Prisoner 2", Actions: []Action{cooperate, defect}},
		PayoffMatrix{
			{"cooperate", "cooperate"}: {3, 3},
			{"cooperate", "defect"}:    {0, 5},
			{"defect", "cooperate"}:    {5, 0},
			{"defect", "defect"}:       {1, 1},
		})

	return game, actionTable(cooperate, defect)
}

// BattleOfTheSexes builds the coordination game with conflicting
// preferences: both players prefer being together over being apart, but
// each prefers a different venue.
func BattleOfTheSexes() (*Game, map[string]Action) {
	opera := Action{Name: "opera"}
	football := Action{Name: "football"}

	game := mustGame(
		Player{Name: "Player 1", Actions: []Action{opera, football}},
		Player{Name: "Player 2", Actions: []Action{opera, football}},
		PayoffMatrix{
			{"opera", "opera"}:       {3, 2},
			{"opera", "football"}:    {0, 0},
			{"football", "opera"}:    {0, 0},
			{"football", "football"}: {2, 3},
		})

	return game, actionTable(opera, football)
}

// Chicken builds the anti-coordination game: mutual aggression is the
// worst outcome for both, so each equilibrium has exactly one player
// yielding.
func Chicken() (*Game, map[string]Action) {
	swerve := Action{Name: "swerve"}
	straight := Action{Name: "straight"}

	game := mustGame(
		Player{Name: "Driver 1", Actions: []Action{swerve, straight}},
		Player{Name: "Driver 2", Actions: []Action{swerve, straight}},
		PayoffMatrix{
			{"swerve", "swerve"}:     {3, 3},
			{"swerve", "straight"}:   {1, 4},
			{"straight", "swerve"}:   {4, 1},
			{"straight", "straight"}: {0, 0},
		})

	return game, actionTable(swerve, straight)
}

// StagHunt builds the trust dilemma: hunting stag together beats
// everything, but hunting hare is safe regardless of the other player.
func StagHunt() (*Game, map[string]Action) {
	stag := Action{Name: "stag"}
	hare := Action{Name: "hare"}

	game := mustGame(
		Player{Name: "Hunter 1", Actions: []Action{stag, hare}},
		Player{Name: "Hunter 2", Actions: []Action{stag, hare}},
		PayoffMatrix{
			{"stag", "stag"}: {4, 4},
			{"stag", "hare"}: {0, 3},
			{"hare", "stag"}: {3, 0},
			{"hare", "hare"}: {3, 3},
		})

	return game, actionTable(stag, hare)
}

// MatchingPennies builds the zero-sum guessing game. It has no pure
// equilibrium: one player always profits from a unilateral switch.
func MatchingPennies() (*Game, map[string]Action) {
	heads := Action{Name: "heads"}
	tails := Action{Name: "tails"}

	game := mustGame(
		Player{Name: "Matcher", Actions: []Action{heads, tails}},
		Player{Name: "Mismatcher", Actions: []Action{heads, tails}},
		PayoffMatrix{
			{"heads", "heads"}: {1, -1},
			{"heads", "tails"}: {-1, 1},
			{"tails", "heads"}: {-1, 1},
			{"tails", "tails"}: {1, -1},
		})

	return game, actionTable(heads, tails)
}

// UltimatumGame builds the reduced 2x2 normal form of the ultimatum game:
// the proposer offers a fair or greedy split; the responder either accepts
// whatever is offered or rejects it, leaving both with nothing. Rejection
// pays the proposer the same against either offer, so the proposer's best
// responses against "reject" are tied.
func UltimatumGame() (*Game, map[string]Action) {
	fair := Action{Name: "fair"}
	greedy := Action{Name: "greedy"}
	accept := Action{Name: "accept"}
	reject := Action{Name: "reject"}

	game := mustGame(
		Player{Name: "Proposer", Actions: []Action{fair, greedy}},
		Player{Name: "Responder", Actions: []Action{accept, reject}},
		PayoffMatrix{
			{"fair", "accept"}:   {5, 5},
			{"fair", "reject"}:   {0, 0},
			{"greedy", "accept"}: {8, 2},
			{"greedy", "reject"}: {0, 0},
		})

	return game, actionTable(fair, greedy, accept, reject)
}
