package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tmichel/strsplit"
)

func newLinesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lines",
		Short: "split stdin into lines, normalizing line endings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for line := range strsplit.Lines(string(data)) {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}
