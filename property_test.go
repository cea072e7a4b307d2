package litregex

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/coregx/ahocorasick"
)

// refMatcher wraps an independent Aho-Corasick automaton over the same word
// list Compile was given, used below as a second opinion against the
// compiled regex — spec.md §8's
// language-preservation property, checked two different ways rather than
// trusting either implementation alone.
type refMatcher struct {
	auto *ahocorasick.Automaton
}

func newRefMatcher(t *testing.T, words []string) *refMatcher {
	t.Helper()
	builder := ahocorasick.NewBuilder()
	for _, w := range words {
		builder.AddPattern([]byte(w))
	}
	auto, err := builder.Build()
	if err != nil {
		t.Fatalf("ahocorasick.Builder.Build failed: %v", err)
	}
	return &refMatcher{auto: auto}
}

// containsAnyWord reports whether s contains, as a substring, any word the
// matcher was built from. Every input word trivially contains itself, so
// this is only a useful cross-check for strings constructed to share no
// substring with any input word.
func (r *refMatcher) containsAnyWord(s string) bool {
	return r.auto.IsMatch([]byte(s))
}

func fullyMatches(re *regexp.Regexp, s string) bool {
	loc := re.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] == len(s)
}

func TestPropertyAllInputWordsAccepted(t *testing.T) {
	wordSets := [][]string{
		{"apple", "app", "apply", "application"},
		{"cat", "car", "card", "care", "careful"},
		{"1a", "1b", "2a", "2b"},
		{"a", "b", "c", "d", "e", "f"},
	}
	for _, words := range wordSets {
		pattern, err := Compile(words)
		if err != nil {
			t.Fatalf("Compile(%v) failed: %v", words, err)
		}
		re := regexp.MustCompile(pattern)
		ref := newRefMatcher(t, words)
		for _, w := range words {
			if !fullyMatches(re, w) {
				t.Errorf("pattern %q does not fully match input word %q", pattern, w)
			}
			if !ref.containsAnyWord(w) {
				t.Errorf("reference matcher unexpectedly rejects its own input word %q", w)
			}
		}
	}
}

// disjointAlphabetStrings generates strings built entirely from runes that
// appear in none of words, so a correct matcher must reject every one of
// them and the reference automaton must report no substring containment.
func disjointAlphabetStrings(words []string, n int) []string {
	used := make(map[rune]bool)
	for _, w := range words {
		for _, r := range w {
			used[r] = true
		}
	}
	alphabet := make([]rune, 0, 26)
	for r := 'A'; r <= 'Z'; r++ {
		if !used[r] {
			alphabet = append(alphabet, r)
		}
	}
	rng := rand.New(rand.NewSource(42))
	out := make([]string, n)
	for i := range out {
		length := 1 + rng.Intn(4)
		rs := make([]rune, length)
		for j := range rs {
			rs[j] = alphabet[rng.Intn(len(alphabet))]
		}
		out[i] = string(rs)
	}
	return out
}

func TestPropertyDisjointStringsRejectedEverywhere(t *testing.T) {
	words := []string{"cat", "car", "card", "careful", "dog", "dogma"}
	pattern, err := Compile(words)
	if err != nil {
		t.Fatalf("Compile(%v) failed: %v", words, err)
	}
	re := regexp.MustCompile(pattern)
	ref := newRefMatcher(t, words)
	for _, s := range disjointAlphabetStrings(words, 50) {
		if fullyMatches(re, s) {
			t.Errorf("pattern %q unexpectedly fully matches disjoint string %q", pattern, s)
		}
		if ref.containsAnyWord(s) {
			t.Errorf("reference matcher unexpectedly reports containment for disjoint string %q", s)
		}
	}
}

func TestPropertyCompileIsDeterministic(t *testing.T) {
	words := []string{"ab1", "ab2", "ac3", "ac4", "ad5"}
	first, err := Compile(words)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		got, err := Compile(words)
		if err != nil {
			t.Fatalf("Compile failed: %v", err)
		}
		if got != first {
			t.Fatalf("Compile not deterministic: %q vs %q", first, got)
		}
	}
}

// TestPropertyLongestMatchFirstOnConcatenatedHaystack checks spec.md §8
// property 2 end-to-end: for w1 and w1w2 both in the input word set,
// scanning s = w1w2 left-to-right must find w1w2, not just its w1 prefix.
// Go's regexp package is leftmost-first over alternation branches (the first
// branch that matches at the leftmost start position wins, it does not
// search for the longest one), so this only holds because the compiler
// orders Or branches longest-possible-match first.
func TestPropertyLongestMatchFirstOnConcatenatedHaystack(t *testing.T) {
	cases := []struct {
		words []string
		s     string
	}{
		{[]string{"app", "apple"}, "apple"},
		{[]string{"car", "careful"}, "careful"},
		{[]string{"1", "12", "123"}, "123"},
	}
	for _, c := range cases {
		pattern, err := Compile(c.words)
		if err != nil {
			t.Fatalf("Compile(%v) failed: %v", c.words, err)
		}
		re := regexp.MustCompile(pattern)
		got := re.FindString(c.s)
		if got != c.s {
			t.Errorf("pattern %q (from %v): FindString(%q) = %q, want %q (longest match, not a shorter prefix)",
				pattern, c.words, c.s, got, c.s)
		}
	}
}

func TestPropertyWordOrderIndependence(t *testing.T) {
	a := []string{"walk", "walked", "walking", "talk", "talked", "talking"}
	b := []string{"talking", "talk", "walking", "walked", "walk", "talked"}
	gotA, err := Compile(a)
	if err != nil {
		t.Fatalf("Compile(a) failed: %v", err)
	}
	gotB, err := Compile(b)
	if err != nil {
		t.Fatalf("Compile(b) failed: %v", err)
	}
	if gotA != gotB {
		t.Fatalf("Compile depends on input order: %q vs %q", gotA, gotB)
	}
}
