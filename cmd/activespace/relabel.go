package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/activespace/ops"
	"github.com/katalvlaran/activespace/relabel"
)

const (
	kindFermion = "fermion"
	kindQubit   = "qubit"
)

// relabelFlags holds the flag values of one relabel invocation.
type relabelFlags struct {
	kind            string
	start           int
	modesPerOrbital int
	verbose         bool
}

func newRelabelCmd() *cobra.Command {
	f := &relabelFlags{}
	cmd := &cobra.Command{
		Use:   "relabel TERM...",
		Short: "Drop terms on frozen orbitals and shift the remaining indices",
		Long: `Each TERM is "coeff [label]" or a bare label; all TERMs are summed.
Fermion labels look like "3^ 2^ 0" (^ = creation), qubit labels like "X0 Z3".
Terms touching a mode below modes-per-orbital*start are dropped; the others
have every index reduced by that cutoff.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelabel(cmd.OutOrStdout(), newLogger(cmd.ErrOrStderr(), f.verbose), f, args)
		},
	}
	cmd.Flags().StringVar(&f.kind, "kind", kindFermion, "operator kind: fermion or qubit")
	cmd.Flags().IntVar(&f.start, "start", 0, "first active spatial orbital")
	cmd.Flags().IntVar(&f.modesPerOrbital, "modes-per-orbital", relabel.DefaultModesPerOrbital, "modes per spatial orbital")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "log debug diagnostics to stderr")

	return cmd
}

// newLogger returns a text slog.Logger on w at Info, or Debug when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runRelabel(w io.Writer, log *slog.Logger, f *relabelFlags, args []string) error {
	if f.modesPerOrbital < 1 {
		return fmt.Errorf("--modes-per-orbital must be ≥ 1, got %d", f.modesPerOrbital)
	}
	opt := relabel.WithModesPerOrbital(f.modesPerOrbital)

	switch strings.ToLower(f.kind) {
	case kindFermion:
		return relabelTerms(w, log, args, ops.ParseFermionOperator, f.start, opt)
	case kindQubit:
		return relabelTerms(w, log, args, ops.ParseQubitOperator, f.start, opt)
	default:
		return fmt.Errorf("--kind must be %q or %q, got %q", kindFermion, kindQubit, f.kind)
	}
}

// relabelTerms parses every argument, sums them, relabels the sum and prints it.
func relabelTerms[T ops.Tag](
	w io.Writer,
	log *slog.Logger,
	args []string,
	parse func(string) (*ops.Operator[T], error),
	start int,
	opts ...relabel.Option,
) error {
	parts := make([]*ops.Operator[T], 0, len(args))
	for _, arg := range args {
		op, err := parse(arg)
		if err != nil {
			return fmt.Errorf("parse %q: %w", arg, err)
		}
		parts = append(parts, op)
	}
	in := ops.Sum(parts...)
	log.Debug("parsed operator",
		slog.String("variant", in.Variant().String()),
		slog.Int("terms", in.Len()),
		slog.Int("qubits", in.CountQubits()))

	out, err := relabel.Operator(in, start, opts...)
	if err != nil {
		log.Error("relabel failed", slog.Int("start", start), slog.Any("err", err))
		return err
	}
	log.Debug("relabeled operator",
		slog.Int("start", start),
		slog.Int("kept", out.Len()),
		slog.Int("dropped", in.Len()-out.Len()),
		slog.Int("qubits", out.CountQubits()))

	_, err = fmt.Fprintln(w, out.String())

	return err
}
