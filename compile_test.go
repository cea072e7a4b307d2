package litregex

import (
	"errors"
	"regexp"
	"testing"
)

func TestCompileBasicScenarios(t *testing.T) {
	cases := []struct {
		words []string
		want  string
	}{
		{nil, ""},
		{[]string{""}, ""},
		{[]string{"a", "b", "c"}, "[a-c]"},
		{[]string{"ab", "bc", "b", "abc"}, "a?bc?"},
		{[]string{"ad", "abd", "abcd"}, "a(?:bc?)?d"},
	}
	for _, c := range cases {
		got, err := Compile(c.words)
		if err != nil {
			t.Errorf("Compile(%v) returned error: %v", c.words, err)
			continue
		}
		if got != c.want {
			t.Errorf("Compile(%v) = %q, want %q", c.words, got, c.want)
		}
	}
}

func TestCompileAcceptsExactlyInputWords(t *testing.T) {
	words := []string{"goroutine", "channel", "select", "mutex", "defer"}
	pattern, err := Compile(words)
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	re := regexp.MustCompile(pattern)
	for _, w := range words {
		loc := re.FindStringIndex(w)
		if loc == nil || loc[0] != 0 || loc[1] != len(w) {
			t.Errorf("pattern %q does not fully match %q", pattern, w)
		}
	}
}

func TestCompileTooManyWords(t *testing.T) {
	words := make([]string, 3)
	for i := range words {
		words[i] = string(rune('a' + i))
	}
	_, err := CompileWithConfig(words, Config{MaxWords: 2, MaxTotalCodeUnits: 100})
	if !errors.Is(err, ErrTooManyWords) {
		t.Fatalf("CompileWithConfig error = %v, want wrapping ErrTooManyWords", err)
	}
	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %v, want *CompileError", err)
	}
}

func TestCompileInputTooLarge(t *testing.T) {
	_, err := CompileWithConfig([]string{"abcdef"}, Config{MaxWords: 10, MaxTotalCodeUnits: 3})
	if !errors.Is(err, ErrInputTooLarge) {
		t.Fatalf("CompileWithConfig error = %v, want wrapping ErrInputTooLarge", err)
	}
}

func TestCompileInvalidConfig(t *testing.T) {
	_, err := CompileWithConfig([]string{"a"}, Config{MaxWords: 0, MaxTotalCodeUnits: 10})
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %v, want *ConfigError", err)
	}
}

func TestMustCompilePanicsOnTooManyWords(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	// MustCompile always uses DefaultConfig, which is valid, so the panic
	// path is reached through a word list exceeding its MaxWords.
	words := make([]string, DefaultConfig().MaxWords+1)
	MustCompile(words)
}

func TestMustCompileSucceeds(t *testing.T) {
	if got := MustCompile([]string{"a", "b"}); got != "[ab]" {
		t.Fatalf("MustCompile([a,b]) = %q, want %q", got, "[ab]")
	}
}
