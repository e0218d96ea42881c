// SPDX-License-Identifier: MIT
// Package ops: sentinel error set.
// Every message is prefixed with "ops: ". Constructors and parsers wrap these
// with the offending token via fmt.Errorf("...: %w", ErrX); callers match
// with errors.Is.

package ops

import "errors"

var (
	// ErrNegativeIndex is returned when a factor references a negative mode or qubit.
	ErrNegativeIndex = errors.New("ops: negative factor index")

	// ErrIndexOutOfRange is returned when a factor index is math.MaxInt, which
	// would make the mode count (highest index + 1) overflow int.
	ErrIndexOutOfRange = errors.New("ops: factor index out of range")

	// ErrInvalidTag is returned when a factor tag lies outside its alphabet
	// (Annihilate/Create for fermions, X/Y/Z for qubits).
	ErrInvalidTag = errors.New("ops: invalid factor tag")

	// ErrDuplicateIndex is returned when a Pauli term names the same qubit twice.
	ErrDuplicateIndex = errors.New("ops: qubit index repeated in Pauli term")

	// ErrBadLabel is returned when a textual term label cannot be parsed.
	ErrBadLabel = errors.New("ops: malformed term label")

	// ErrBadCoefficient is returned when a textual coefficient cannot be parsed.
	ErrBadCoefficient = errors.New("ops: malformed coefficient")
)
