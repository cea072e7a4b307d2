package element

import "github.com/cespare/xxhash/v2"

// Hash returns a memoized structural hash of e, consistent with the spec's
// equality rule: two Elements are structurally equal iff their rendered
// regex strings are equal, so Hash is simply the xxhash of ToRegex(). Using
// xxhash rather than Go's built-in string hashing gives canon (below) a
// cheap 64-bit pre-check before falling back to an exact string compare on
// collision.
func (e *Element) Hash() uint64 {
	if e.hasHash {
		return e.hash
	}
	e.hash = xxhash.Sum64String(e.ToRegex())
	e.hasHash = true
	return e.hash
}

// internTable canonicalizes structurally-equal Elements to a single shared
// pointer within the scope of one top-level Optimize call (see optimize.go).
//
// This is the "structural sharing / memoization" design note from spec.md
// §9: large alternations (the expected caller is a compiler folding
// thousands of literal words, e.g. emoji sequences) produce many
// independently-built subtrees that turn out identical once optimized — a
// fused CharacterSet or a common Maybe(x) appears over and over across
// sibling branches of the Or optimizer. Interning them means later
// ToRegex/Hash calls on those subtrees hit the same memoized cache instead
// of re-rendering and re-hashing duplicate structures.
//
// A table is scoped to one Optimize call (never a package-level global) so
// that concurrent, independent compilations stay independent per spec.md
// §5 — nothing here is shared mutable state across calls.
type internTable struct {
	byHash map[uint64][]*Element
}

func newInternTable() *internTable {
	return &internTable{byHash: make(map[uint64][]*Element)}
}

// canon returns e, or an earlier Element from this table with an identical
// rendered regex, so that repeated identical subtrees collapse to one
// instance.
func (t *internTable) canon(e *Element) *Element {
	h := e.Hash()
	for _, candidate := range t.byHash[h] {
		if candidate.ToRegex() == e.ToRegex() {
			return candidate
		}
	}
	t.byHash[h] = append(t.byHash[h], e)
	return e
}
