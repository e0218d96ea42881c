// SPDX-License-Identifier: MIT
// Package relabel: sentinel error set.
//
// Two classes mirror the usual type/value split:
//
//	ErrType  ← ErrBoundaryType, ErrUnsupportedOperator, ErrNilOperator
//	ErrValue ← ErrBoundaryOutOfRange, ErrNegativeBoundary, ErrMultipleTerms
//
// Every specific sentinel wraps its class, so callers may match either
// errors.Is(err, ErrValue) or errors.Is(err, ErrBoundaryOutOfRange).
// Nothing is retried or recovered here; errors surface unchanged.

package relabel

import (
	"errors"
	"fmt"
)

var (
	// ErrType is the class of argument-kind errors.
	ErrType = errors.New("relabel: type error")

	// ErrValue is the class of argument-value errors.
	ErrValue = errors.New("relabel: value error")
)

var (
	// ErrBoundaryType indicates the active-space start is not an integer or a
	// finite whole-valued float.
	ErrBoundaryType = fmt.Errorf("%w: active space start must be an integer or whole-valued float", ErrType)

	// ErrUnsupportedOperator indicates the operator is neither a
	// *ops.FermionOperator nor a *ops.QubitOperator, or is the wrong one of the two.
	ErrUnsupportedOperator = fmt.Errorf("%w: operator must be a fermion or qubit operator", ErrType)

	// ErrNilOperator indicates a nil operator pointer.
	ErrNilOperator = fmt.Errorf("%w: operator is nil", ErrType)

	// ErrBoundaryOutOfRange indicates the frozen cutoff exceeds the number of
	// modes/qubits the operator spans.
	ErrBoundaryOutOfRange = fmt.Errorf("%w: starting active space larger than initial qubits", ErrValue)

	// ErrNegativeBoundary indicates a negative active-space start.
	ErrNegativeBoundary = fmt.Errorf("%w: active space start is negative", ErrValue)

	// ErrMultipleTerms indicates a single-term helper received more than one term.
	ErrMultipleTerms = fmt.Errorf("%w: operator has more than one term", ErrValue)
)
