package main

import (
	"fmt"

	"github.com/google/shlex"
	"github.com/spf13/cobra"
)

func newWordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "words [text...]",
		Short: "split text into shell words",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			words, err := shlex.Split(text)
			if err != nil {
				return fmt.Errorf("word split error: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, w := range words {
				fmt.Fprintln(out, w)
			}
			return nil
		},
	}
}
