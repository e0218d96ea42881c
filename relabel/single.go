// SPDX-License-Identifier: MIT

package relabel

import (
	"fmt"

	"github.com/katalvlaran/activespace/ops"
)

// relabelSingleFermion relabels an operator holding at most one term.
// initialCount is the mode count of the operator the term was taken from.
func relabelSingleFermion(op any, activeSpaceStart, initialCount int) (*ops.FermionOperator, error) {
	fop, ok := op.(*ops.FermionOperator)
	if !ok || fop == nil {
		return nil, fmt.Errorf("relabel: want *ops.FermionOperator, got %T: %w", op, ErrUnsupportedOperator)
	}

	return relabelSingle(fop, activeSpaceStart, initialCount)
}

// relabelSinglePauli is relabelSingleFermion for Pauli strings.
func relabelSinglePauli(op any, activeSpaceStart, initialCount int) (*ops.QubitOperator, error) {
	qop, ok := op.(*ops.QubitOperator)
	if !ok || qop == nil {
		return nil, fmt.Errorf("relabel: want *ops.QubitOperator, got %T: %w", op, ErrUnsupportedOperator)
	}

	return relabelSingle(qop, activeSpaceStart, initialCount)
}

// relabelSingle: identity and empty operators come back unchanged before the
// range check; a frozen term yields a fresh empty operator.
func relabelSingle[T ops.Tag](op *ops.Operator[T], activeSpaceStart, initialCount int) (*ops.Operator[T], error) {
	if op.Len() > 1 {
		return nil, fmt.Errorf("relabel: %d terms: %w", op.Len(), ErrMultipleTerms)
	}
	terms := op.Terms()
	if len(terms) == 0 || terms[0].Term.IsIdentity() {
		return op, nil
	}
	if activeSpaceStart < 0 {
		return nil, fmt.Errorf("relabel: start %d: %w", activeSpaceStart, ErrNegativeBoundary)
	}
	cutoff, err := checkedCutoff(DefaultModesPerOrbital, activeSpaceStart, initialCount)
	if err != nil {
		return nil, err
	}

	shifted, ok := Term(terms[0].Term, cutoff)
	if !ok {
		return ops.New[T](), nil
	}

	return ops.NewTerm(shifted, terms[0].Coeff)
}
