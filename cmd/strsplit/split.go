package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tmichel/strsplit"
)

const (
	keySep       = "sep"
	keyAny       = "any"
	keyNull      = "null"
	keyHighlight = "highlight"
)

func newSplitCmd(vp *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split [text...]",
		Short: "split text on a separator",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			sep := vp.GetString(keySep)
			var delim strsplit.Delimiter = strsplit.ByString(sep)
			if vp.GetBool(keyAny) {
				delim = strsplit.AnyOf(sep)
			}

			out := cmd.OutOrStdout()
			if vp.GetBool(keyHighlight) {
				fmt.Fprintln(out, highlight(text, delim))
				return nil
			}

			term := "\n"
			if vp.GetBool(keyNull) {
				term = "\x00"
			}
			for tok := range strsplit.Split(text, delim) {
				fmt.Fprint(out, tok, term)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringP(keySep, "s", ",", "separator to split on")
	flags.Bool(keyAny, false, "treat the separator as a set of runes")
	flags.BoolP(keyNull, "0", false, "terminate tokens with NUL instead of newline")
	flags.Bool(keyHighlight, false, "print the input once with separator matches highlighted")
	vp.BindPFlags(flags)

	return cmd
}
