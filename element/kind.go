package element

import "fmt"

// Kind identifies which of the six RegexElement variants an Element holds.
// Exactly one of Element's variant-specific fields is meaningful for a
// given Kind; see Element's field comments.
type Kind uint8

const (
	// Nothing matches the empty string. It is the identity of Sequence and
	// the absorbing element of Or under optionality rewriting.
	Nothing Kind = iota

	// Char matches exactly one UTF-16 code unit.
	Char

	// Set matches any single code unit from an unordered set of size >= 0.
	Set

	// Seq is the ordered concatenation of its children.
	Seq

	// MaybeKind is zero-or-one repetition of a single child.
	MaybeKind

	// Or is alternation over an unordered set of options.
	Or
)

// String returns a human-readable name for k, mirroring the debug-friendly
// Stringer convention used for DFA/NFA state kinds throughout this codebase.
func (k Kind) String() string {
	switch k {
	case Nothing:
		return "Nothing"
	case Char:
		return "Char"
	case Set:
		return "Set"
	case Seq:
		return "Seq"
	case MaybeKind:
		return "Maybe"
	case Or:
		return "Or"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}
