// Package element implements RegexElement: an immutable algebraic
// representation of partial regex trees, with canonical construction,
// rendering to concrete regex syntax, and a rewrite-based optimizer.
//
// An Element is one of six variants (Nothing, Char, Set, Seq, MaybeKind,
// Or). The variant is a tagged sum rather than an interface hierarchy,
// mirroring how this codebase represents NFA states: one struct, a Kind
// enum, and exhaustive switches over Kind in every operation — see
// nfa.State/nfa.StateKind in the sibling coregex engine for the pattern
// this is drawn from.
//
// Construction via New* never optimizes; call Optimize to obtain the
// canonical, rewritten form described in optimize.go. Rendering
// (ToRegex) works on both optimized and unoptimized trees.
package element

import "sort"

// Element is a node in a RegexElement tree. Exactly one group of fields is
// meaningful for a given Kind:
//
//   - Nothing:    no payload.
//   - Char:       char.
//   - Set:        set (sorted, deduplicated ascending).
//   - Seq:        children, in concatenation order.
//   - MaybeKind:  child.
//   - Or:         children, an unordered set of options.
//
// Element values are treated as immutable after construction; the
// rendered-regex and hash fields are per-instance memoization caches that
// never change the value the Element represents (spec invariant: "Structural
// equality is defined as equality of the rendered regex string").
type Element struct {
	kind Kind

	char     uint16
	set      []uint16
	children []*Element
	child    *Element

	regex    string
	hasRegex bool

	hash    uint64
	hasHash bool
}

// nothingSingleton is shared across the package: Nothing carries no payload,
// so every Nothing value is interchangeable.
var nothingSingleton = &Element{kind: Nothing}

// NewNothing returns the Element matching only the empty string.
func NewNothing() *Element {
	return nothingSingleton
}

// NewChar returns the Element matching exactly the code unit c.
func NewChar(c uint16) *Element {
	return &Element{kind: Char, char: c}
}

// NewCharSet returns the Element matching any one of units. Duplicate units
// are collapsed and the set is stored in ascending order so that rendering
// and equality checks never have to re-sort.
func NewCharSet(units ...uint16) *Element {
	return &Element{kind: Set, set: sortedUnique(units)}
}

// NewSeq returns the ordered concatenation of children. An empty children
// list is a legal (if unusual, pre-optimize) Sequence; Optimize collapses it
// to Nothing.
func NewSeq(children ...*Element) *Element {
	cp := make([]*Element, len(children))
	copy(cp, children)
	return &Element{kind: Seq, children: cp}
}

// NewMaybe returns zero-or-one repetition of child.
func NewMaybe(child *Element) *Element {
	return &Element{kind: MaybeKind, child: child}
}

// NewOr returns the alternation over opts. Like NewSeq, an empty or
// single-element opts list is legal pre-optimize input; Optimize normalizes
// it per spec.md §4.2.
func NewOr(opts ...*Element) *Element {
	cp := make([]*Element, len(opts))
	copy(cp, opts)
	return &Element{kind: Or, children: cp}
}

// Kind reports which variant e is.
func (e *Element) Kind() Kind { return e.kind }

// Char returns the code unit for a Char element. Meaningless for other kinds.
func (e *Element) Char() uint16 { return e.char }

// CharSet returns the code units for a Set element, sorted ascending with no
// duplicates. The returned slice must not be mutated. Meaningless for other
// kinds.
func (e *Element) CharSet() []uint16 { return e.set }

// Children returns the ordered children of a Seq, or the unordered options
// of an Or. Meaningless for other kinds. The returned slice must not be
// mutated.
func (e *Element) Children() []*Element { return e.children }

// Child returns the repeated element of a MaybeKind. Meaningless for other
// kinds.
func (e *Element) Child() *Element { return e.child }

// IsAtom reports whether e is one of the three variants that never need
// non-capturing-group wrapping when embedded in a Sequence or repeated by
// Maybe: Nothing, Char, Set.
func (e *Element) IsAtom() bool {
	switch e.kind {
	case Nothing, Char, Set:
		return true
	default:
		return false
	}
}

// asSequence returns a Sequence view of e: e's own children if e is already
// a Seq, otherwise the singleton [e]. This lets the Or optimizer reason
// uniformly about prefixes and suffixes regardless of each option's shape.
func (e *Element) asSequence() []*Element {
	if e.kind == Seq {
		return e.children
	}
	return []*Element{e}
}

func sortedUnique(units []uint16) []uint16 {
	if len(units) == 0 {
		return nil
	}
	u := make([]uint16, len(units))
	copy(u, units)
	sort.Slice(u, func(i, j int) bool { return u[i] < u[j] })
	out := u[:1]
	for _, x := range u[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}
