package dafsa

import (
	"sort"
	"strconv"

	"github.com/coregx/litregex/internal/conv"
	"github.com/coregx/litregex/internal/nodeset"
)

// Minimize merges nodes with identical outgoing-edge sets, per spec.md §4.4:
// a recursive bottom-up walk starting at Leaf. At each node, group its
// distinct parents by their outgoing-edge-set signature; any group of two or
// more parents collapses onto one survivor, with every edge that pointed at
// or away from the others redirected onto it. The walk then recurses into
// the (possibly just-rewritten) parent set.
//
// Must be called before ToRegex, and must not be called twice.
func (g *Graph) Minimize() {
	visited := nodeset.New(conv.IntToUint32(len(g.nodes)))
	g.minimizeFrom(g.Leaf, visited)
}

func (g *Graph) minimizeFrom(n NodeID, visited *nodeset.Set) {
	if !visited.Insert(uint32(n)) {
		return
	}

	parents := distinctOthers(g.nodes[n].parents)
	groups := make(map[string][]NodeID)
	var order []string
	for _, p := range parents {
		sig := edgeSetSignature(g, p)
		if _, ok := groups[sig]; !ok {
			order = append(order, sig)
		}
		groups[sig] = append(groups[sig], p)
	}

	for _, sig := range order {
		members := groups[sig]
		if len(members) < 2 {
			continue
		}
		survivor := members[0]
		for _, redundant := range members[1:] {
			g.mergeEquivalent(survivor, redundant)
		}
	}

	for _, p := range distinctOthers(g.nodes[n].parents) {
		g.minimizeFrom(p, visited)
	}
}

// edgeSetSignature canonicalizes a node's outgoing-edge set (label regex,
// destination node) into a single comparable string. Edges are sorted before
// joining since Or's — and so a node's outgoing-edge set's — equality is
// order-independent (spec.md §3: Or holds "an unordered set of RegexElement").
func edgeSetSignature(g *Graph, n NodeID) string {
	children := g.nodes[n].children
	parts := make([]string, len(children))
	for i, e := range children {
		parts[i] = e.Label.ToRegex() + "\x00" + strconv.FormatUint(uint64(e.Other), 10)
	}
	sort.Strings(parts)
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += "\x01"
		}
		out += p
	}
	return out
}

// mergeEquivalent folds redundant into survivor, per spec.md §4.4.
// redundant and survivor were grouped by an identical outgoing-edge-set
// signature, so their children are already the same (label, destination)
// pairs — the only cleanup needed on that side is dropping the stale
// parent-side reference each destination holds back to redundant. The
// parents side is genuinely different per node (different grandparents of
// n reach survivor and redundant separately), so those edges are redirected
// onto survivor rather than merely dropped. redundant's own edge lists are
// left as-is — nothing still points at or from it afterward, so it becomes
// unreachable arena garbage rather than something that needs active
// deletion.
func (g *Graph) mergeEquivalent(survivor, redundant NodeID) {
	for _, e := range g.nodes[redundant].children {
		g.removeParentEdgesFrom(e.Other, redundant)
	}
	for _, e := range g.nodes[redundant].parents {
		g.removeChildEdgesTo(e.Other, redundant)
		g.addEdge(e.Other, survivor, e.Label)
	}
}
