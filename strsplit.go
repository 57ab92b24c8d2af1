// Package strsplit provides lazy string splitting. Unlike strings.Split it
// never allocates a slice for all tokens upfront: tokens are substrings of
// the input, produced one at a time, either by pulling from a Splitter or by
// ranging over the sequence returned by Split.
package strsplit

import (
	"iter"
	"slices"
	"unicode/utf8"
)

// Splitter yields the tokens of a string one Next call at a time. It holds
// the unconsumed remainder of the input and nothing else; tokens share the
// input's backing memory. A Splitter is single-use and not safe for
// concurrent use.
type Splitter struct {
	rest    string
	delim   Delimiter
	done    bool
	leading bool
}

// New returns a Splitter over s. The delimiter is fixed for the lifetime of
// the Splitter.
func New(s string, d Delimiter) *Splitter {
	return &Splitter{rest: s, delim: d, leading: true}
}

// Next returns the next token and true, or ("", false) once the input is
// exhausted. Every input produces at least one token: splitting the empty
// string yields one empty token. After exhaustion Next keeps returning
// ("", false).
//
// Joining the yielded tokens with the delimiter reproduces the input
// exactly: a delimiter at the start or end of the input, or two adjacent
// delimiters, yield empty tokens.
func (sp *Splitter) Next() (string, bool) {
	if sp.done {
		return "", false
	}

	s := sp.rest
	start, end, ok := sp.delim.Find(s)
	if !ok {
		sp.done = true
		return s, true
	}

	if start == end {
		// Zero-width match, i.e. an empty separator. Emit one empty
		// token at the start, then one token per rune, then a final
		// empty token.
		if sp.leading {
			sp.leading = false
			return "", true
		}
		if s == "" {
			sp.done = true
			return "", true
		}
		_, n := utf8.DecodeRuneInString(s)
		sp.rest = s[n:]
		return s[:n], true
	}

	sp.rest = s[end:]
	return s[:start], true
}

// Split returns an iterator over the tokens of s. It is equivalent to
// draining New(s, d) with Next and supports early termination.
func Split(s string, d Delimiter) iter.Seq[string] {
	return func(yield func(string) bool) {
		sp := New(s, d)
		for tok, ok := sp.Next(); ok; tok, ok = sp.Next() {
			if !yield(tok) {
				return
			}
		}
	}
}

// Collect splits s eagerly and returns all tokens.
func Collect(s string, d Delimiter) []string {
	return slices.Collect(Split(s, d))
}

// Until returns the part of s before the first delimiter match, or all of s
// when the delimiter does not occur.
func Until(s string, d Delimiter) string {
	tok, _ := New(s, d).Next()
	return tok
}
