package normalform

import (
	"encoding/gob"
	"fmt"

	"github.com/timpalpant/go-cfr"
)

// GameNode implements cfr.GameTreeNode for a two-player normal-form game.
// The simultaneous move is sequentialized: the root is player 1's decision,
// depth one is player 2's decision, and depth two holds the terminal
// payoffs. Player 2's nodes all share a single information set, since in a
// normal-form game neither player observes the other's choice before acting.
type GameNode struct {
	game *Game
	// Indices into each player's action sequence. -1 means not yet chosen.
	p1Action int
	p2Action int

	parent   *GameNode
	children []GameNode
}

// Verify that we implement the interface.
var _ cfr.GameTreeNode = &GameNode{}

// NewGameTree returns the root node of the extensive-form view of game.
func NewGameTree(game *Game) *GameNode {
	return &GameNode{
		game:     game,
		p1Action: -1,
		p2Action: -1,
	}
}

// Type implements cfr.GameTreeNode. There are no chance nodes: every
// non-terminal node is a player decision.
func (gn *GameNode) Type() cfr.NodeType {
	if gn.p2Action != -1 {
		return cfr.TerminalNodeType
	}

	return cfr.PlayerNodeType
}

// Player implements cfr.GameTreeNode.
func (gn *GameNode) Player() int {
	if gn.p1Action == -1 {
		return int(Player1)
	}

	return int(Player2)
}

// InfoSet implements cfr.GameTreeNode. Each player has exactly one
// information set: moves are simultaneous, so nothing is observed before
// choosing an action.
func (gn *GameNode) InfoSet(player int) cfr.InfoSet {
	return &matrixInfoSet{Player: uint8(player)}
}

// InfoSetKey implements cfr.GameTreeNode.
func (gn *GameNode) InfoSetKey(player int) []byte {
	return gn.InfoSet(player).Key()
}

// Utility implements cfr.GameTreeNode.
func (gn *GameNode) Utility(player int) float64 {
	if gn.Type() != cfr.TerminalNodeType {
		panic("cannot get the utility of a non-terminal node")
	}

	payoffs, err := gn.game.Payoff(gn.Profile())
	if err != nil {
		// NewGame verified totality, so this cannot happen for a
		// well-formed Game.
		panic(err)
	}

	return payoffs.For(PlayerID(player))
}

// Profile returns the joint action names chosen along the path to this
// terminal node.
func (gn *GameNode) Profile() Profile {
	return Profile{
		P1: gn.game.players[Player1].Actions[gn.p1Action].Name,
		P2: gn.game.players[Player2].Actions[gn.p2Action].Name,
	}
}

// String implements fmt.Stringer.
func (gn *GameNode) String() string {
	if gn.Type() == cfr.TerminalNodeType {
		return fmt.Sprintf("terminal %v", gn.Profile())
	}

	return fmt.Sprintf("%v to move", PlayerID(gn.Player()))
}

func (gn *GameNode) buildChildren() {
	if gn.children != nil {
		return
	}

	mover := PlayerID(gn.Player())
	gn.children = make([]GameNode, len(gn.game.players[mover].Actions))
	for i := range gn.children {
		child := *gn
		child.children = nil
		child.parent = gn
		if mover == Player1 {
			child.p1Action = i
		} else {
			child.p2Action = i
		}
		gn.children[i] = child
	}
}

// NumChildren implements cfr.GameTreeNode.
func (gn *GameNode) NumChildren() int {
	if gn.Type() == cfr.TerminalNodeType {
		return 0
	}

	return len(gn.game.players[gn.Player()].Actions)
}

// GetChild implements cfr.GameTreeNode.
func (gn *GameNode) GetChild(i int) cfr.GameTreeNode {
	gn.buildChildren()
	return &gn.children[i]
}

// Parent implements cfr.GameTreeNode.
func (gn *GameNode) Parent() cfr.GameTreeNode {
	return gn.parent
}

// GetChildProbability implements cfr.GameTreeNode.
func (gn *GameNode) GetChildProbability(i int) float64 {
	panic("normal-form games have no chance nodes")
}

// SampleChild implements cfr.GameTreeNode.
func (gn *GameNode) SampleChild() (cfr.GameTreeNode, float64) {
	panic("normal-form games have no chance nodes")
}

// Close implements cfr.GameTreeNode.
func (gn *GameNode) Close() {
	gn.children = nil
}

// matrixInfoSet is the (trivial) information state of a player who has
// observed nothing: only the player's own identity distinguishes it.
type matrixInfoSet struct {
	Player uint8
}

// Key implements cfr.InfoSet.
func (is *matrixInfoSet) Key() []byte {
	return []byte{is.Player}
}

func (is *matrixInfoSet) MarshalBinary() ([]byte, error) {
	return []byte{is.Player}, nil
}

func (is *matrixInfoSet) UnmarshalBinary(buf []byte) error {
	if len(buf) != 1 {
		return fmt.Errorf("expected 1 byte, got %d", len(buf))
	}

	is.Player = buf[0]
	return nil
}

func init() {
	gob.Register(&matrixInfoSet{})
}
