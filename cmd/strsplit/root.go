package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func New() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "strsplit",
		Short:         "strsplit splits text on substrings, rune sets or shell words",
		SilenceErrors: true,
	}
	vp := newViper()

	rootCmd.AddCommand(
		newSplitCmd(vp),
		newLinesCmd(),
		newWordsCmd(),
	)
	return rootCmd
}

func newViper() *viper.Viper {
	vp := viper.New()
	vp.SetEnvPrefix("strsplit")
	vp.AutomaticEnv()
	return vp
}

// inputText returns the text to operate on: the joined command line
// arguments, or everything read from r when no arguments were given. A
// single trailing newline from piped input is dropped so `echo a,b |
// strsplit split` does not report a trailing empty token.
func inputText(args []string, r io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}
