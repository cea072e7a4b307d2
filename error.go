package litregex

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped in *CompileError) by Compile.
var (
	// ErrTooManyWords indicates the input word list exceeds Config.MaxWords.
	ErrTooManyWords = errors.New("too many words")

	// ErrInputTooLarge indicates the input words' total UTF-16 code unit
	// count exceeds Config.MaxTotalCodeUnits.
	ErrInputTooLarge = errors.New("input too large")
)

// CompileError wraps a Compile failure with the word-list size that
// triggered it, the same shape as the sibling coregex engine's
// nfa.CompileError wraps a failing pattern.
type CompileError struct {
	WordCount int
	Err       error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("litregex: compile failed for %d words: %v", e.WordCount, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// ConfigError reports an out-of-range Config field, the same shape as the
// sibling coregex engine's meta.ConfigError.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("litregex: invalid config field %s: %s", e.Field, e.Message)
}
