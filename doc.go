// Package litregex compiles a finite list of literal words into a single
// regular expression that matches exactly those words and nothing else.
//
// The pipeline is: build a pseudo-prefix-trie of the input words (package
// dafsa), minimize it by merging nodes with identical outgoing transitions,
// eliminate states to collapse the graph down to one labeled edge, and
// render that label's RegexElement tree (package element) through its
// rewrite-based optimizer to produce the shortest-practical regex string.
//
// Compile validates its input against Config before doing any of that work,
// the same shape as this codebase's other compilation entry points: collect
// limits up front, fail fast with a typed error, and keep the actual
// compilation pipeline free of bounds-checking noise.
package litregex
