// Package activespace is index bookkeeping for symbolic quantum operators
// after an active-space reduction.
//
// What it does:
//
//	Freeze the lowest spatial orbitals of a fermionic or Pauli operator:
//		• terms touching a frozen mode/qubit are removed
//		• every other index is shifted down by 2·activeSpaceStart
//		• the identity term and factor order are preserved
//
// Layout:
//
//	ops/             — FermionOperator / QubitOperator values, parsing, printing
//	relabel/         — single-term rule, generic operator relabeler, dispatch
//	cmd/activespace/ — command line front end (cobra, slog)
//	examples/        — runnable walkthrough
//
// Quick example:
//
//	op, _ := ops.ParseFermionOperator("0.5 [4^ 3] + [3^ 2^ 0]")
//	out, _ := relabel.Fermion(op, 1) // 0.5 [2^ 1]
//
//	go get github.com/katalvlaran/activespace
package activespace
