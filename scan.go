package strsplit

import (
	"bufio"
	"bytes"
)

// ScanOn returns a bufio.SplitFunc that tokenizes on the literal separator
// sep, for splitting streams that are too large to hold in one string.
//
// Scanner semantics differ from Splitter semantics: a trailing separator
// does not produce a final empty token and empty input produces no tokens,
// so scanned tokens do not always reconstruct the input. An empty sep scans
// one rune at a time.
func ScanOn(sep string) bufio.SplitFunc {
	if sep == "" {
		return bufio.ScanRunes
	}
	bsep := []byte(sep)
	return func(data []byte, atEOF bool) (advance int, token []byte, err error) {
		if atEOF && len(data) == 0 {
			return 0, nil, nil
		}
		if i := bytes.Index(data, bsep); i >= 0 {
			return i + len(bsep), data[:i], nil
		}
		if atEOF {
			return len(data), data, nil
		}
		// Request more data.
		return 0, nil, nil
	}
}
