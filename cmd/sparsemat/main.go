// Command sparsemat is the command-line harness over the sparse and codec
// packages: it loads matrices from text files, runs one arithmetic
// operation, and writes the result back in the same format.
package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nshimiyeemmy/sparsemat/codec"
	"github.com/nshimiyeemmy/sparsemat/sparse"
)

// Exit codes distinguish the error taxonomy for scripting callers.
const (
	exitGeneric  = 1 // any failure not covered below
	exitNotFound = 2 // input file missing or unreadable
	exitFormat   = 3 // malformed matrix text
	exitMismatch = 4 // incompatible operand shapes
	exitWrite    = 5 // result file could not be written
)

// Persistent flags shared by every subcommand.
var (
	flagStrict  bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sparsemat",
	Short: "Sparse integer matrix arithmetic over text files",
	Long: `sparsemat reads matrices in a plain text format (a rows=/cols= header
followed by one "(row, col, value)" line per stored element), computes
additions, subtractions and products, and writes results in the same
format.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(subCmd)
	rootCmd.AddCommand(mulCmd)
	rootCmd.AddCommand(showCmd)

	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false,
		"reject element lines beyond the declared header dimensions")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		log := logger()
		log.Error().Msg(err.Error())
		os.Exit(exitCode(err))
	}
}

// logger builds the process logger; --verbose lowers the level to debug.
// Diagnostics go to stderr so stdout stays clean for `show` output.
func logger() zerolog.Logger {
	level := zerolog.InfoLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().
		Logger()
}

// exitCode maps the sentinel taxonomy onto process exit codes.
func exitCode(err error) int {
	switch {
	case errors.Is(err, codec.ErrNotFound):
		return exitNotFound
	case errors.Is(err, codec.ErrFormat):
		return exitFormat
	case errors.Is(err, sparse.ErrDimensionMismatch):
		return exitMismatch
	case errors.Is(err, codec.ErrWrite):
		return exitWrite
	default:
		return exitGeneric
	}
}

// loadOptions translates the persistent flags into construction options
// forwarded to the codec on every load.
func loadOptions() []sparse.Option {
	if flagStrict {
		return []sparse.Option{sparse.WithStrictBounds()}
	}

	return nil
}
