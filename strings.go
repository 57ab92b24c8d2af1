package strsplit

import (
	"iter"
	"strings"
)

// Lines takes a string and returns an iterator, where each string is a line
// from the input. Line endings ("\n" or "\r\n") are stripped and a trailing
// newline does not produce a final empty line.
func Lines(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		var prev string
		have := false
		for line := range Split(s, ByRune('\n')) {
			if have && !yield(strings.TrimSuffix(prev, "\r")) {
				return
			}
			prev, have = line, true
		}
		if have && prev != "" {
			yield(strings.TrimSuffix(prev, "\r"))
		}
	}
}
