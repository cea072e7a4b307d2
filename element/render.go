package element

import (
	"fmt"
	"sort"
	"strings"
)

// ToRegex renders e as a concrete regex string, per spec.md §4.1. The result
// is memoized: repeated calls (including the many calls the Or optimizer
// makes while hashing and ordering options) are O(1) after the first.
func (e *Element) ToRegex() string {
	if e.hasRegex {
		return e.regex
	}
	var sb strings.Builder
	e.render(&sb)
	e.regex = sb.String()
	e.hasRegex = true
	return e.regex
}

func (e *Element) render(sb *strings.Builder) {
	switch e.kind {
	case Nothing:
		// matches the empty string: nothing to emit
	case Char:
		sb.WriteString(renderChar(e.char, false))
	case Set:
		renderCharSet(sb, e.set)
	case Seq:
		for _, c := range e.children {
			if c.kind == Or {
				sb.WriteString("(?:")
				c.render(sb)
				sb.WriteString(")")
			} else {
				c.render(sb)
			}
		}
	case MaybeKind:
		if e.child.IsAtom() {
			e.child.render(sb)
			sb.WriteByte('?')
		} else {
			sb.WriteString("(?:")
			e.child.render(sb)
			sb.WriteString(")?")
		}
	case Or:
		opts := make([]*Element, len(e.children))
		copy(opts, e.children)
		sort.SliceStable(opts, func(i, j int) bool {
			return orRenderLess(opts[i], opts[j])
		})
		for i, o := range opts {
			if i > 0 {
				sb.WriteByte('|')
			}
			o.render(sb)
		}
	}
}

// orRenderLess implements the longest-match-first ordering from spec.md
// §4.1: options are ordered by the pair (-max_possible_length, to_regex) —
// descending max length first, lexicographic regex string as the tiebreak.
func orRenderLess(a, b *Element) bool {
	la, lb := MaxPossibleLength(a), MaxPossibleLength(b)
	if la != lb {
		return la > lb
	}
	return a.ToRegex() < b.ToRegex()
}

// regexSpecials are the ASCII metacharacters that must be backslash-escaped
// when they appear as a literal atom outside a character class.
const regexSpecials = `.^$*+?()[]{}|\`

// classSpecials are the characters that must be backslash-escaped inside a
// character class: the class terminator, a leading negation marker, the
// range separator, and the escape character itself. Escaping them
// unconditionally (rather than only when their position would otherwise be
// ambiguous) keeps the contract in spec.md §6 simple and always safe.
const classSpecials = `]^-\`

// renderChar renders a single code unit per spec.md §4.1/§6: ASCII (<128)
// is regex-escaped if it is a metacharacter, everything else is emitted as
// \uXXXX with exactly four upper-case hex digits — including each half of a
// surrogate pair, which is how astral code points survive as two Elements.
func renderChar(c uint16, inClass bool) string {
	if c >= 128 {
		return fmt.Sprintf("\\u%04X", c)
	}
	r := rune(c)
	specials := regexSpecials
	if inClass {
		specials = classSpecials
	}
	if strings.ContainsRune(specials, r) {
		return "\\" + string(r)
	}
	return string(r)
}

// renderCharSet renders a Set's code units as "[...]", coalescing maximal
// runs of consecutive code units into ranges per spec.md §4.1: a run of
// length 1 emits one rendered char, length 2 emits two adjacent chars (no
// hyphen — a 2-run is not shorter to render as a range), length >= 3 emits
// "from-to".
func renderCharSet(sb *strings.Builder, units []uint16) {
	sb.WriteByte('[')
	i := 0
	for i < len(units) {
		j := i
		for j+1 < len(units) && units[j+1] == units[j]+1 {
			j++
		}
		runLen := j - i + 1
		switch {
		case runLen == 1:
			sb.WriteString(renderChar(units[i], true))
		case runLen == 2:
			sb.WriteString(renderChar(units[i], true))
			sb.WriteString(renderChar(units[i+1], true))
		default:
			sb.WriteString(renderChar(units[i], true))
			sb.WriteByte('-')
			sb.WriteString(renderChar(units[j], true))
		}
		i = j + 1
	}
	sb.WriteByte(']')
}

// MaxPossibleLength returns the longest string e can match, per spec.md §3:
// Nothing=0, Char/Set=1, Seq=sum of children, MaybeKind=child's length,
// Or=max over options.
func MaxPossibleLength(e *Element) int {
	switch e.kind {
	case Nothing:
		return 0
	case Char, Set:
		return 1
	case Seq:
		total := 0
		for _, c := range e.children {
			total += MaxPossibleLength(c)
		}
		return total
	case MaybeKind:
		return MaxPossibleLength(e.child)
	case Or:
		max := 0
		for i, c := range e.children {
			l := MaxPossibleLength(c)
			if i == 0 || l > max {
				max = l
			}
		}
		return max
	default:
		return 0
	}
}
