package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nshimiyeemmy/sparsemat/codec"
	"github.com/nshimiyeemmy/sparsemat/sparse"
)

// Flags local to the compute commands. One command runs per invocation, so
// sharing the output flag variable across the three is safe.
var (
	flagOutput  string
	flagWorkers int
)

var addCmd = &cobra.Command{
	Use:   "add <a> <b>",
	Short: "Add two matrices of equal shape",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompute(args[0], args[1], sparse.Add)
	},
}

var subCmd = &cobra.Command{
	Use:   "sub <a> <b>",
	Short: "Subtract matrix b from matrix a (equal shapes required)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompute(args[0], args[1], sparse.Sub)
	},
}

var mulCmd = &cobra.Command{
	Use:   "mul <a> <b>",
	Short: "Multiply matrix a by matrix b (a.cols must equal b.rows)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompute(args[0], args[1], func(a, b *sparse.Matrix) (*sparse.Matrix, error) {
			if flagWorkers > 1 {
				return sparse.Mul(a, b, sparse.WithWorkers(flagWorkers))
			}

			return sparse.Mul(a, b)
		})
	},
}

func init() {
	for _, cmd := range []*cobra.Command{addCmd, subCmd, mulCmd} {
		cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "path for the result matrix (required)")
		_ = cmd.MarkFlagRequired("output")
	}
	mulCmd.Flags().IntVar(&flagWorkers, "workers", 1, "goroutines for the multiply kernel")
}

// runCompute is the shared load → compute → save pipeline behind the three
// operation commands. Errors bubble up untouched so main can map them to
// exit codes via errors.Is.
func runCompute(aPath, bPath string, op func(a, b *sparse.Matrix) (*sparse.Matrix, error)) error {
	log := logger()

	a, err := codec.LoadMatrix(aPath, loadOptions()...)
	if err != nil {
		return err
	}
	log.Debug().Str("path", aPath).Int("rows", a.Rows()).Int("cols", a.Cols()).Int("nnz", a.NNZ()).
		Msg("loaded left operand")

	b, err := codec.LoadMatrix(bPath, loadOptions()...)
	if err != nil {
		return err
	}
	log.Debug().Str("path", bPath).Int("rows", b.Rows()).Int("cols", b.Cols()).Int("nnz", b.NNZ()).
		Msg("loaded right operand")

	res, err := op(a, b)
	if err != nil {
		return err
	}

	if err = codec.SaveMatrix(res, flagOutput); err != nil {
		return err
	}
	color.Green("wrote %s (%dx%d, nnz=%d)", flagOutput, res.Rows(), res.Cols(), res.NNZ())

	return nil
}
