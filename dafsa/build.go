package dafsa

import (
	"sort"
	"unicode/utf16"

	"github.com/coregx/litregex/element"
)

// ToCodeUnits decodes s into its UTF-16 code units, per spec.md §3: a word
// is a sequence of UTF-16 code units, and a rune outside the Basic
// Multilingual Plane becomes two code units (a surrogate pair) rather than
// one Element.
func ToCodeUnits(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// FromWords builds the pseudo-prefix-tree for words (spec.md §4.3) and
// returns the resulting Graph. words may be empty; it may contain the empty
// string; duplicate words are legal and have no effect beyond the first.
func FromWords(words []string) *Graph {
	units := make([][]uint16, len(words))
	for i, w := range words {
		units[i] = ToCodeUnits(w)
	}
	return FromCodeUnitWords(units)
}

// FromCodeUnitWords is FromWords for callers that already hold code-unit
// sequences (e.g. the root compiler, which validates total code-unit count
// before building the graph).
func FromCodeUnitWords(words [][]uint16) *Graph {
	g := newGraph()
	sorted := dedupeUnits(words)
	sort.Slice(sorted, func(i, j int) bool { return lessUnits(sorted[i], sorted[j]) })
	buildTrie(g, g.Root, sorted)
	return g
}

func dedupeUnits(words [][]uint16) [][]uint16 {
	seen := make(map[string]bool, len(words))
	out := make([][]uint16, 0, len(words))
	for _, w := range words {
		k := string(unitsKey(w))
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, w)
	}
	return out
}

// unitsKey packs code units into bytes usable as a dedupe map key. It is not
// a text decode and must never be used for anything else: lone surrogates,
// which are legal code-unit sequences here, would misdecode.
func unitsKey(units []uint16) []byte {
	b := make([]byte, len(units)*2)
	for i, u := range units {
		b[2*i] = byte(u >> 8)
		b[2*i+1] = byte(u)
	}
	return b
}

func lessUnits(a, b []uint16) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// buildTrie recursively partitions words (already sorted ascending) by their
// first remaining code unit, creating one child node per distinct unit and
// one Nothing edge straight to leaf for any word that has been fully
// consumed — spec.md §4.3's "pseudo-prefix-tree": pseudo because sibling
// subtrees aren't merged yet (that's Minimize's job).
func buildTrie(g *Graph, at NodeID, words [][]uint16) {
	i := 0
	for i < len(words) && len(words[i]) == 0 {
		g.addEdge(at, g.Leaf, element.NewNothing())
		i++
	}
	for i < len(words) {
		first := words[i]
		unit := first[0]
		j := i
		var tails [][]uint16
		for j < len(words) && len(words[j]) > 0 && words[j][0] == unit {
			tails = append(tails, words[j][1:])
			j++
		}
		child := g.newNode()
		g.addEdge(at, child, element.NewChar(unit))
		buildTrie(g, child, tails)
		i = j
	}
}

// IsMatch reports whether s is accepted by g, per spec.md §4.4: walk a
// SingleCharacter edge for each code unit of s in turn, then check whether
// the node reached has a Nothing edge into leaf. Valid at any point before
// or after Minimize, but not after ToRegex has run (the graph is spent).
func (g *Graph) IsMatch(s string) bool {
	if g.spent {
		panic("dafsa: IsMatch called on a Graph already consumed by ToRegex")
	}
	at := g.Root
	for _, unit := range ToCodeUnits(s) {
		next, ok := g.charChild(at, unit)
		if !ok {
			return false
		}
		at = next
	}
	for _, e := range g.nodes[at].children {
		if e.Label.Kind() == element.Nothing && e.Other == g.Leaf {
			return true
		}
	}
	return false
}

func (g *Graph) charChild(at NodeID, unit uint16) (NodeID, bool) {
	for _, e := range g.nodes[at].children {
		if e.Label.Kind() == element.Char && e.Label.Char() == unit {
			return e.Other, true
		}
	}
	return 0, false
}
