package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nshimiyeemmy/sparsemat/codec"
)

var showCmd = &cobra.Command{
	Use:   "show <path>",
	Short: "Load a matrix file and print it in canonical form",
	Long: `show parses the given matrix file and reprints it with entries in
ascending (row, col) order, useful to normalize hand-edited files and to
verify that a file parses at all.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := codec.LoadMatrix(args[0], loadOptions()...)
		if err != nil {
			return err
		}

		// Canonical form: deterministic entry order regardless of how the
		// source file was laid out.
		fmt.Fprintln(cmd.OutOrStdout(), codec.Serialize(m))

		return nil
	},
}
