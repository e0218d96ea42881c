// Package main - activespace command line.
//
// Relabels fermionic or Pauli operators after freezing the lowest spatial
// orbitals. Terms are given as positional arguments in the same text form
// the ops package prints:
//
//	activespace relabel --start 1 "0.5 [4^ 3]" "[3^ 2^ 0]"
//	activespace relabel --kind qubit --start 1 X4 "Z1 Z3 Z4"
//
// The relabeled operator is written to stdout; diagnostics go to stderr via
// log/slog (--verbose enables debug level).
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "activespace",
		Short:         "Index bookkeeping for active-space reduced operators",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newRelabelCmd())

	return root
}
