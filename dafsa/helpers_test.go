package dafsa

import (
	"regexp"
	"testing"
)

func mustCompileGo(t *testing.T, pattern string) *regexp.Regexp {
	t.Helper()
	re, err := regexp.Compile(pattern)
	if err != nil {
		t.Fatalf("regexp.Compile(%q) failed: %v", pattern, err)
	}
	return re
}
