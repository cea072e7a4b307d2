// Package cache provides a memoizing façade over litregex.Compile, for
// callers that repeatedly compile the same (or overlapping) word lists —
// e.g. a server re-deriving the same blocklist pattern on every request.
package cache

import (
	"sort"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/coregx/litregex"
)

// Compiler memoizes litregex.Compile results keyed by word-list content,
// independent of input order or duplicate words. It is safe for concurrent
// use: the underlying LRU is internally synchronized, the one piece of
// shared mutable state this codebase's otherwise-pure compilation pipeline
// needs.
type Compiler struct {
	cfg   litregex.Config
	cache *lru.Cache[string, string]
}

// New returns a Compiler backed by an LRU of the given size, using
// litregex.DefaultConfig for every Compile it performs.
func New(size int) (*Compiler, error) {
	return NewWithConfig(size, litregex.DefaultConfig())
}

// NewWithConfig is New with caller-supplied compilation limits.
func NewWithConfig(size int, cfg litregex.Config) (*Compiler, error) {
	c, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &Compiler{cfg: cfg, cache: c}, nil
}

// Get returns the compiled regex for words, compiling and caching it on a
// miss. Two calls whose word lists are equal as sets (same words, any
// order, duplicates ignored) share one cache entry.
func (c *Compiler) Get(words []string) (string, error) {
	key := signature(words)
	if v, ok := c.cache.Get(key); ok {
		return v, nil
	}
	pattern, err := litregex.CompileWithConfig(words, c.cfg)
	if err != nil {
		return "", err
	}
	c.cache.Add(key, pattern)
	return pattern, nil
}

// Len reports the number of distinct word-list signatures currently cached.
func (c *Compiler) Len() int { return c.cache.Len() }

// Purge empties the cache.
func (c *Compiler) Purge() { c.cache.Purge() }

// signature builds a canonical "code-unit signature" for words: sorted,
// deduplicated, then length-prefixed and concatenated (netstring-style:
// "<byte length>:<word>" per entry) so the boundary between words is never
// ambiguous. spec.md's data model places no restriction on which code units
// a word may contain — a bare separator rune, however rare, could appear
// literally inside a word and make two distinct word lists collide on the
// same signature string. Length-prefixing has no such rune to collide on.
func signature(words []string) string {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Strings(sorted)
	deduped := sorted[:0]
	for i, w := range sorted {
		if i == 0 || w != deduped[len(deduped)-1] {
			deduped = append(deduped, w)
		}
	}
	var b strings.Builder
	for _, w := range deduped {
		b.WriteString(strconv.Itoa(len(w)))
		b.WriteByte(':')
		b.WriteString(w)
	}
	return b.String()
}
