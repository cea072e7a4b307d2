// Package dafsa builds a deterministic acyclic finite state automaton from a
// list of literal words, minimizes it, and converts it back to a regex via
// state elimination — spec.md §4.3-§4.5.
//
// The graph is an arena: nodes live in a single []node slice inside Graph
// and are addressed by NodeID, the same "arena with integer indices"
// strategy the sibling coregex engine uses for nfa.State/nfa.StateID (see
// nfa.Builder). This sidesteps the cyclic-ownership problem spec.md §9
// calls out for a DAG whose edges point both down (children) and up
// (parents): there are no pointers to manage, only indices into one slice.
package dafsa

import (
	"github.com/coregx/litregex/element"
	"github.com/coregx/litregex/internal/conv"
)

// NodeID addresses a node within a Graph's arena.
type NodeID uint32

// Edge is a labeled connection to another node, from the perspective of
// whichever node holds it: in a children list, Other is the destination; in
// a parents list, Other is the source. This matches spec.md §3's
// "Edge is (label: RegexElement, other_node)".
type Edge struct {
	Label *element.Element
	Other NodeID
}

type node struct {
	parents  []Edge
	children []Edge
}

// Graph is a mutable DAFSA: a set of nodes connected by RegexElement-labeled
// edges, with a distinguished Root (no parents) and Leaf (no children).
//
// A Graph is single-use: once ToRegex has run, its structure is degenerate
// (Root has one edge, to Leaf) and must not be mutated or eliminated again.
// ToRegex enforces this by panicking on a second call (spec.md §7).
type Graph struct {
	nodes []node
	Root  NodeID
	Leaf  NodeID
	spent bool
}

// newGraph allocates a Graph containing just Root and Leaf, with no edges
// between them yet.
func newGraph() *Graph {
	g := &Graph{}
	g.Root = g.newNode()
	g.Leaf = g.newNode()
	return g
}

func (g *Graph) newNode() NodeID {
	id := NodeID(conv.IntToUint32(len(g.nodes)))
	g.nodes = append(g.nodes, node{})
	return id
}

// addEdge connects from -> to, labeled label, registering the edge on both
// endpoints (children on from, parents on to).
func (g *Graph) addEdge(from, to NodeID, label *element.Element) {
	g.nodes[from].children = append(g.nodes[from].children, Edge{Label: label, Other: to})
	g.nodes[to].parents = append(g.nodes[to].parents, Edge{Label: label, Other: from})
}

// Children returns n's outgoing edges. The returned slice must not be
// mutated by callers outside this package.
func (g *Graph) Children(n NodeID) []Edge { return g.nodes[n].children }

// Parents returns n's incoming edges. The returned slice must not be
// mutated by callers outside this package.
func (g *Graph) Parents(n NodeID) []Edge { return g.nodes[n].parents }

// NodeCount returns the number of nodes allocated in the arena, including
// any left unreachable by minimization's node-merging.
func (g *Graph) NodeCount() int { return len(g.nodes) }

func (g *Graph) removeChildEdgesTo(n, target NodeID) {
	children := g.nodes[n].children
	kept := children[:0]
	for _, e := range children {
		if e.Other != target {
			kept = append(kept, e)
		}
	}
	g.nodes[n].children = kept
}

func (g *Graph) removeParentEdgesFrom(n, source NodeID) {
	parents := g.nodes[n].parents
	kept := parents[:0]
	for _, e := range parents {
		if e.Other != source {
			kept = append(kept, e)
		}
	}
	g.nodes[n].parents = kept
}

// distinctOthers returns the distinct Other node IDs among edges, preserving
// first-seen order.
func distinctOthers(edges []Edge) []NodeID {
	seen := make(map[NodeID]bool, len(edges))
	out := make([]NodeID, 0, len(edges))
	for _, e := range edges {
		if !seen[e.Other] {
			seen[e.Other] = true
			out = append(out, e.Other)
		}
	}
	return out
}
