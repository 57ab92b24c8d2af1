package main

import (
	"strings"

	"github.com/fatih/color"

	"github.com/tmichel/strsplit"
)

var sepColor = color.New(color.FgYellow, color.Bold, color.Underline)

// highlight renders s with every separator match colorized. A zero-width
// match has nothing to render, so it ends the walk.
func highlight(s string, d strsplit.Delimiter) string {
	var b strings.Builder
	for {
		start, end, ok := d.Find(s)
		if !ok || start == end {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:start])
		b.WriteString(sepColor.Sprint(s[start:end]))
		s = s[end:]
	}
}
