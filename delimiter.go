package strsplit

import (
	"strings"
	"unicode/utf8"
)

// Delimiter locates the earliest match of a separator in a string. Find
// returns the byte offsets of the match; the matched bytes are dropped from
// the output, so start == end means a zero-width match. Implementations must
// only report zero-width matches at offset 0.
type Delimiter interface {
	Find(s string) (start, end int, ok bool)
}

type stringDelimiter string

// ByString matches a literal substring. The empty separator matches
// zero-width before every rune; see Splitter.Next for the resulting token
// sequence.
func ByString(sep string) Delimiter { return stringDelimiter(sep) }

func (d stringDelimiter) Find(s string) (int, int, bool) {
	if d == "" {
		return 0, 0, true
	}
	i := strings.Index(s, string(d))
	if i < 0 {
		return 0, 0, false
	}
	return i, i + len(d), true
}

type runeDelimiter rune

// ByRune matches a single rune.
func ByRune(r rune) Delimiter { return runeDelimiter(r) }

func (d runeDelimiter) Find(s string) (int, int, bool) {
	i := strings.IndexRune(s, rune(d))
	if i < 0 {
		return 0, 0, false
	}
	return i, i + utf8.RuneLen(rune(d)), true
}

type anyDelimiter string

// AnyOf matches the earliest occurrence of any rune in chars. An empty
// chars never matches.
func AnyOf(chars string) Delimiter { return anyDelimiter(chars) }

func (d anyDelimiter) Find(s string) (int, int, bool) {
	i := strings.IndexAny(s, string(d))
	if i < 0 {
		return 0, 0, false
	}
	_, n := utf8.DecodeRuneInString(s[i:])
	return i, i + n, true
}

// MatchFunc adapts a rune predicate into a Delimiter. The earliest rune
// satisfying the predicate is the match.
type MatchFunc func(rune) bool

func (f MatchFunc) Find(s string) (int, int, bool) {
	i := strings.IndexFunc(s, f)
	if i < 0 {
		return 0, 0, false
	}
	_, n := utf8.DecodeRuneInString(s[i:])
	return i, i + n, true
}
