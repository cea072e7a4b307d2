package dafsa

import (
	"sort"

	"github.com/coregx/litregex/element"
)

// ToRegex runs state elimination (spec.md §4.5) and returns the resulting
// regex, fully optimized. It consumes the Graph: after it returns, g must
// not be read, mutated, minimized, or eliminated again.
//
// Elimination repeatedly picks Root's lexicographically-least child edge
// that does not lead directly to Leaf and eliminates that node, bypassing
// it with Sequence edges from each of its parents to each of its children.
// Because Root's children set grows to include each eliminated node's own
// children (one level promoted up at a time), always choosing from Root's
// current child list is what gives the breadth-first, root-adjacent-first
// order spec.md requires without needing an explicit queue.
func (g *Graph) ToRegex() string {
	if g.spent {
		panic("dafsa: ToRegex called twice on the same Graph")
	}
	g.spent = true

	if len(g.nodes[g.Root].children) == 0 {
		// No words at all (spec.md §4.3's empty-input case): Root and Leaf
		// were never connected, so there is nothing to eliminate.
		return ""
	}

	for {
		v, ok := g.nextEliminationTarget()
		if !ok {
			break
		}
		g.eliminate(v)
	}

	rootEdges := g.nodes[g.Root].children
	if len(rootEdges) != 1 || rootEdges[0].Other != g.Leaf {
		panic("dafsa: state elimination did not converge to a single root->leaf edge")
	}
	return element.Optimize(rootEdges[0].Label).ToRegex()
}

// nextEliminationTarget returns Root's lexicographically-least child whose
// destination is not Leaf.
func (g *Graph) nextEliminationTarget() (NodeID, bool) {
	children := g.nodes[g.Root].children
	best := -1
	for i, e := range children {
		if e.Other == g.Leaf {
			continue
		}
		if best == -1 || children[i].Label.ToRegex() < children[best].Label.ToRegex() {
			best = i
		}
	}
	if best == -1 {
		return 0, false
	}
	return children[best].Other, true
}

// eliminate removes v from the graph, bypassing it with a Sequence edge
// from every parent of v to every child of v, then severs v and merges any
// resulting parallel edges.
func (g *Graph) eliminate(v NodeID) {
	parentEdges := append([]Edge(nil), g.nodes[v].parents...)
	childEdges := append([]Edge(nil), g.nodes[v].children...)
	sort.Slice(parentEdges, func(i, j int) bool { return parentEdges[i].Label.ToRegex() < parentEdges[j].Label.ToRegex() })
	sort.Slice(childEdges, func(i, j int) bool { return childEdges[i].Label.ToRegex() < childEdges[j].Label.ToRegex() })

	type pair struct{ from, to NodeID }
	touched := make(map[pair]bool)
	var touchedOrder []pair

	for _, pe := range parentEdges {
		for _, ce := range childEdges {
			bypass := element.NewSeq(pe.Label, ce.Label)
			g.addEdge(pe.Other, ce.Other, bypass)
			p := pair{pe.Other, ce.Other}
			if !touched[p] {
				touched[p] = true
				touchedOrder = append(touchedOrder, p)
			}
		}
	}

	for _, p := range distinctOthers(parentEdges) {
		g.removeChildEdgesTo(p, v)
	}
	for _, c := range distinctOthers(childEdges) {
		g.removeParentEdgesFrom(c, v)
	}
	g.nodes[v].parents = nil
	g.nodes[v].children = nil

	for _, p := range touchedOrder {
		g.mergeParallelEdges(p.from, p.to)
	}
}

// mergeParallelEdges replaces every edge from -> to with a single edge
// labeled the optimized Or of their labels, per spec.md §4.5's parallel-edge
// rule. A no-op if there is at most one such edge.
func (g *Graph) mergeParallelEdges(from, to NodeID) {
	var labels []*element.Element
	for _, e := range g.nodes[from].children {
		if e.Other == to {
			labels = append(labels, e.Label)
		}
	}
	if len(labels) <= 1 {
		return
	}
	g.removeChildEdgesTo(from, to)
	g.removeParentEdgesFrom(to, from)
	merged := element.Optimize(element.NewOr(labels...))
	g.addEdge(from, to, merged)
}
