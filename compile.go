package litregex

import (
	"github.com/coregx/litregex/dafsa"
)

// Compile builds the shortest-practical regex matching exactly the strings
// in words (and no others), using DefaultConfig's limits.
//
// An empty words list is legal; Compile returns "" (spec.md's documented
// behavior for the zero-word case).
func Compile(words []string) (string, error) {
	return CompileWithConfig(words, DefaultConfig())
}

// CompileWithConfig is Compile with caller-supplied limits. cfg is
// validated before any compilation work begins.
func CompileWithConfig(words []string, cfg Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	if len(words) > cfg.MaxWords {
		return "", &CompileError{WordCount: len(words), Err: ErrTooManyWords}
	}

	units := make([][]uint16, len(words))
	total := 0
	for i, w := range words {
		cu := dafsa.ToCodeUnits(w)
		units[i] = cu
		total += len(cu)
		if total > cfg.MaxTotalCodeUnits {
			return "", &CompileError{WordCount: len(words), Err: ErrInputTooLarge}
		}
	}

	g := dafsa.FromCodeUnitWords(units)
	g.Minimize()
	return g.ToRegex(), nil
}

// MustCompile is like Compile but panics if compilation fails. It is
// intended for package-level regex construction from a literal word list
// known to be valid at compile time, the same role coregex.MustCompile
// plays for a literal pattern string.
func MustCompile(words []string) string {
	re, err := Compile(words)
	if err != nil {
		panic("litregex: Compile: " + err.Error())
	}
	return re
}
