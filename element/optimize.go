package element

import "sort"

// Optimize returns a semantically equivalent canonical form of e, per
// spec.md §4.2. Re-optimizing an already-optimized Element is idempotent
// (spec.md §8 property 3) because every rewrite rule below is itself a
// fixpoint for its own output shape.
func Optimize(e *Element) *Element {
	return optimize(e, newInternTable())
}

func optimize(e *Element, t *internTable) *Element {
	var out *Element
	switch e.kind {
	case Nothing, Char:
		out = e
	case Set:
		out = optimizeSet(e)
	case Seq:
		out = optimizeSeq(e, t)
	case MaybeKind:
		out = optimizeMaybe(e, t)
	case Or:
		out = optimizeOr(e.children, t)
	default:
		out = e
	}
	return t.canon(out)
}

func optimizeSet(e *Element) *Element {
	switch len(e.set) {
	case 0:
		return NewNothing()
	case 1:
		return NewChar(e.set[0])
	default:
		return e
	}
}

// optimizeSeq implements spec.md §4.2's Sequence rule: repeat until
// fixpoint — flatten nested Sequence children into the parent list, optimize
// each child, drop Nothing children. Then collapse: 0 children -> Nothing,
// 1 -> that child, else -> Sequence of the result.
func optimizeSeq(e *Element, t *internTable) *Element {
	children := e.children
	for {
		flattened := false
		next := make([]*Element, 0, len(children))
		for _, c := range children {
			oc := optimize(c, t)
			if oc.kind == Seq {
				next = append(next, oc.children...)
				flattened = true
				continue
			}
			if oc.kind == Nothing {
				flattened = true // dropping also counts as a shape change worth re-scanning
				continue
			}
			next = append(next, oc)
		}
		children = next
		if !flattened {
			break
		}
	}
	switch len(children) {
	case 0:
		return NewNothing()
	case 1:
		return children[0]
	default:
		return &Element{kind: Seq, children: children}
	}
}

// optimizeMaybe implements spec.md §4.2's Maybe rule, including the
// documented idempotence: Maybe(Maybe(a)) optimizes to Maybe(a) unchanged
// (the inner "?" is preserved, not double-wrapped), so
// Maybe(Maybe(a)).ToRegex() == "(?:a?)?" but
// Optimize(Maybe(Maybe(a))).ToRegex() == "a?".
func optimizeMaybe(e *Element, t *internTable) *Element {
	ox := optimize(e.child, t)
	if ox.kind == Nothing {
		return NewNothing()
	}
	if ox.kind == MaybeKind {
		return ox
	}
	return &Element{kind: MaybeKind, child: ox}
}

// optimizeOr implements the central algorithm of spec.md §4.2: Steps 1-5 of
// the Or optimizer (strip optionality, flatten, prefix/suffix factoring,
// character-set fusion, finalize).
func optimizeOr(opts []*Element, t *internTable) *Element {
	isOptional := false

	// Step 1: strip outer optionality.
	list := make([]*Element, 0, len(opts))
	for _, o := range opts {
		oo := optimize(o, t)
		if oo.kind == MaybeKind {
			isOptional = true
			list = append(list, oo.child)
		} else {
			list = append(list, oo)
		}
	}

	// Step 2: flatten nested Or and CharacterSet options until fixpoint,
	// then dedupe exact structural duplicates (Or's payload is an
	// unordered SET of RegexElement per spec.md §3) — the dedupe pattern
	// (iterate once, keep the first instance of each distinct rendering)
	// mirrors literal.Seq.Minimize's sort-then-scan shape in the sibling
	// coregex engine, adapted from "redundant prefix" to "exact duplicate".
	for {
		expanded := false
		next := make([]*Element, 0, len(list))
		for _, o := range list {
			switch o.kind {
			case Or:
				next = append(next, o.children...)
				expanded = true
			case Set:
				for _, c := range o.set {
					next = append(next, optimize(NewChar(c), t))
				}
				expanded = true
			default:
				next = append(next, o)
			}
		}
		list = next
		if !expanded {
			break
		}
	}
	list = dedupeByRegex(list)

	// Step 3: prefix/suffix factoring.
	list = factorPrefixesAndSuffixes(list, t)

	// Step 4: character-set fusion.
	list = fuseCharacterSets(list, t)

	// Step 5: finalize.
	final := make([]*Element, 0, len(list))
	for _, o := range list {
		if o.kind == Nothing {
			isOptional = true
			continue
		}
		final = append(final, o)
	}
	switch len(final) {
	case 0:
		return NewNothing()
	case 1:
		if isOptional {
			return optimizeMaybeOf(final[0], t)
		}
		return final[0]
	default:
		sort.Slice(final, func(i, j int) bool { return final[i].ToRegex() < final[j].ToRegex() })
		orElem := &Element{kind: Or, children: final}
		if isOptional {
			return optimizeMaybeOf(orElem, t)
		}
		return orElem
	}
}

func optimizeMaybeOf(x *Element, t *internTable) *Element {
	return optimize(&Element{kind: MaybeKind, child: x}, t)
}

func dedupeByRegex(list []*Element) []*Element {
	seen := make(map[string]bool, len(list))
	out := make([]*Element, 0, len(list))
	for _, o := range list {
		r := o.ToRegex()
		if seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, o)
	}
	return out
}

// seqLen is the number of elements in o's as_sequence view. This is the
// "option length" spec.md §4.2 Step 3 advances xfix_len against — distinct
// from MaxPossibleLength, which measures matched-string length rather than
// element count.
func seqLen(o *Element) int {
	return len(o.asSequence())
}

func maxSeqLen(list []*Element) int {
	max := 0
	for i, o := range list {
		l := seqLen(o)
		if i == 0 || l > max {
			max = l
		}
	}
	return max
}

type passKind int

const (
	prefixPass passKind = iota
	suffixPass
)

// factorPrefixesAndSuffixes implements spec.md §4.2 Step 3: starting at
// xfix_len=1, alternately run one prefix pass and one suffix pass; advance
// xfix_len only once a full prefix+suffix round made no change; stop once
// xfix_len >= the current longest option.
//
// The longest-option length is recomputed after every pass rather than
// fixed once up front: Step 3's rewrites only ever shrink the option list
// (factoring merges groups), so re-measuring keeps the loop from running
// extra no-op rounds once the true maximum has dropped. This does not
// change any documented output (spec.md §8's scenarios all terminate with a
// size-1 option list well before the difference could matter) — it only
// bounds the loop tighter.
func factorPrefixesAndSuffixes(list []*Element, t *internTable) []*Element {
	xfixLen := 1
	maxLen := maxSeqLen(list)
	for xfixLen < maxLen {
		var changedPrefix, changedSuffix bool
		list, changedPrefix = applyPass(list, xfixLen, prefixPass, t)
		maxLen = maxSeqLen(list)
		list, changedSuffix = applyPass(list, xfixLen, suffixPass, t)
		maxLen = maxSeqLen(list)
		if !changedPrefix && !changedSuffix {
			xfixLen++
		}
	}
	return list
}

// applyPass runs one prefix or suffix pass over list at the given xfixLen,
// per spec.md §4.2 Step 3's "prefix pass"/"suffix pass" definitions. It
// returns the (possibly smaller) rewritten option list and whether any
// group was actually factored.
//
// Options whose as_sequence is shorter than xfixLen have no well-defined
// key of that length; spec.md calls this the "Nothing prefix key" case and
// requires keeping each such option as-is regardless of how many of them
// there are. This is modeled with a separate shortOpts bucket rather
// than literally using the Nothing element as a map key, which sidesteps
// any ambiguity between "really is Nothing" and "too short to have a key"
// while producing identical grouping behavior.
func applyPass(list []*Element, xfixLen int, mode passKind, t *internTable) ([]*Element, bool) {
	type group struct {
		fixElem *Element
		members []*Element
	}

	var order []string
	groups := make(map[string]*group)
	var shortOpts []*Element

	for _, o := range list {
		seq := o.asSequence()
		if len(seq) < xfixLen {
			shortOpts = append(shortOpts, o)
			continue
		}
		var fixSlice []*Element
		if mode == prefixPass {
			fixSlice = seq[:xfixLen]
		} else {
			fixSlice = seq[len(seq)-xfixLen:]
		}
		fixElem := optimize(NewSeq(fixSlice...), t)
		key := fixElem.ToRegex()
		g, ok := groups[key]
		if !ok {
			g = &group{fixElem: fixElem}
			groups[key] = g
			order = append(order, key)
		}
		g.members = append(g.members, o)
	}

	changed := false
	result := make([]*Element, 0, len(list))
	result = append(result, shortOpts...)
	for _, key := range order {
		g := groups[key]
		if len(g.members) == 1 {
			result = append(result, g.members[0])
			continue
		}
		changed = true
		remainders := make([]*Element, 0, len(g.members))
		for _, m := range g.members {
			seq := m.asSequence()
			var remSlice []*Element
			if mode == prefixPass {
				remSlice = seq[xfixLen:]
			} else {
				remSlice = seq[:len(seq)-xfixLen]
			}
			remainders = append(remainders, optimize(NewSeq(remSlice...), t))
		}
		orRem := optimize(NewOr(remainders...), t)
		var combined *Element
		if mode == prefixPass {
			combined = optimize(NewSeq(g.fixElem, orRem), t)
		} else {
			combined = optimize(NewSeq(orRem, g.fixElem), t)
		}
		result = append(result, combined)
	}
	return result, changed
}

// fuseCharacterSets implements spec.md §4.2 Step 4: collect all remaining
// Char/Set options into one unified code-unit set, optimize it (which may
// collapse it to a Char or Nothing), and replace those options with the
// single fused element — dropped entirely if it optimizes to Nothing (which
// only happens if there were no such options to begin with).
func fuseCharacterSets(list []*Element, t *internTable) []*Element {
	var units []uint16
	rest := make([]*Element, 0, len(list))
	for _, o := range list {
		switch o.kind {
		case Char:
			units = append(units, o.char)
		case Set:
			units = append(units, o.set...)
		default:
			rest = append(rest, o)
		}
	}
	if len(units) == 0 {
		return rest
	}
	fused := optimize(NewCharSet(units...), t)
	if fused.kind == Nothing {
		return rest
	}
	return append(rest, fused)
}
