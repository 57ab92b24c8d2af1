package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmichel/strsplit"
)

func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := New()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestSplitCmd(t *testing.T) {
	tests := []struct {
		name     string
		stdin    string
		args     []string
		expected string
	}{
		{
			name:     "Split argument on default separator",
			args:     []string{"split", "a,b,c"},
			expected: "a\nb\nc\n",
		},
		{
			name:     "Custom separator",
			args:     []string{"split", "-s", "::", "lion::tiger"},
			expected: "lion\ntiger\n",
		},
		{
			name:     "Rune set separator",
			args:     []string{"split", "-s", "-:", "--any", "2020-11:03"},
			expected: "2020\n11\n03\n",
		},
		{
			name:     "Empty tokens are printed",
			args:     []string{"split", ",a,"},
			expected: "\na\n\n",
		},
		{
			name:     "NUL terminated output",
			args:     []string{"split", "-0", "a,b"},
			expected: "a\x00b\x00",
		},
		{
			name:     "Reads stdin without arguments",
			stdin:    "x,y\n",
			args:     []string{"split"},
			expected: "x\ny\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCmd(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestLinesCmd(t *testing.T) {
	out, err := runCmd(t, "Line 1\r\nLine 2\n", "lines")
	require.NoError(t, err)
	assert.Equal(t, "Line 1\nLine 2\n", out)
}

func TestWordsCmd(t *testing.T) {
	out, err := runCmd(t, `build --race "bin/app dir" main.go`+"\n", "words")
	require.NoError(t, err)
	assert.Equal(t, "build\n--race\nbin/app dir\nmain.go\n", out)
}

func TestWordsCmdUnterminatedQuote(t *testing.T) {
	_, err := runCmd(t, "", "words", `"unterminated`)
	require.Error(t, err)
}

func TestHighlight(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	// With colors disabled highlight must reproduce the input verbatim.
	assert.Equal(t, "a,b,c", highlight("a,b,c", strsplit.ByString(",")))
	assert.Equal(t, "plain", highlight("plain", strsplit.ByString(",")))
	assert.Equal(t, "ab", highlight("ab", strsplit.ByString("")))
}
