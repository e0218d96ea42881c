// SPDX-License-Identifier: MIT
// Package relabel remaps the mode/qubit indices of symbolic operators after
// an active-space reduction.
//
// Given an active-space start s (a spatial-orbital index) the frozen cutoff is
// c = k·s with k = 2 spin-orbitals per orbital by default. Then, term by term:
//
//	identity term          → kept unchanged
//	any factor index < c   → whole term dropped (it touches a frozen orbital)
//	otherwise              → every index i becomes i − c; order, tags, coefficient kept
//
// Example (s = 1, c = 2):
//
//	0.5 [4^ 3]   →  0.5 [2^ 1]
//	1.0 [3^ 2 0] →  (dropped: 0 < 2)
//	X4           →  X2
//	Z1 Z3 Z4     →  (dropped: 1 < 2)
//
// The core is written once against ops.Operator[T] and never interprets the
// tag T; Fermion and Qubit are thin adapters and Relabel dispatches on the
// dynamic operator type.
//
// Complexity:
//
//   - Time:   O(F + n log n) for n terms holding F factors in total.
//   - Memory: O(F) for the new operator. The input is never modified.
//
// Errors:
//
//   - ErrNilOperator          if op is nil.
//   - ErrNegativeBoundary     if activeSpaceStart < 0.
//   - ErrBoundaryOutOfRange   if the cutoff exceeds op.CountQubits().
//   - ErrBoundaryType         (Relabel only) boundary not integer-convertible.
//   - ErrUnsupportedOperator  (Relabel only) op is not a supported operator.
package relabel

import (
	"fmt"

	"github.com/katalvlaran/activespace/ops"
)

// Term applies the single-term rule with the given cutoff (in modes).
// It returns the shifted term and true, or nil and false when the term
// touches an index below cutoff. The identity term is returned as is.
func Term[T ops.Tag](term ops.Term[T], cutoff int) (ops.Term[T], bool) {
	if term.IsIdentity() {
		return term, true
	}
	out := make(ops.Term[T], len(term))
	for i, f := range term {
		if f.Index < cutoff {
			return nil, false
		}
		out[i] = ops.Factor[T]{Index: f.Index - cutoff, Tag: f.Tag}
	}

	return out, true
}

// Operator relabels every term of op and returns the sum of the survivors as
// a new operator of the same variant.
//
// Steps:
//  1. Validate op and activeSpaceStart.
//  2. initial := op.CountQubits(); reject cutoff > initial unless the
//     operator spans no modes at all (empty or identity-only).
//  3. Fold: ops.Sum over one singleton per surviving term, in the canonical
//     Terms() order, starting from the additive identity.
func Operator[T ops.Tag](op *ops.Operator[T], activeSpaceStart int, opts ...Option) (*ops.Operator[T], error) {
	if op == nil {
		return nil, ErrNilOperator
	}
	if activeSpaceStart < 0 {
		return nil, fmt.Errorf("relabel: start %d: %w", activeSpaceStart, ErrNegativeBoundary)
	}
	o := gatherOptions(opts...)

	// operators spanning no modes hold only the identity term
	cutoff := 0
	if initial := op.CountQubits(); initial > 0 {
		c, err := checkedCutoff(o.modesPerOrbital, activeSpaceStart, initial)
		if err != nil {
			return nil, err
		}
		cutoff = c
	}

	entries := op.Terms()
	parts := make([]*ops.Operator[T], 0, len(entries))
	for _, e := range entries {
		shifted, ok := Term(e.Term, cutoff)
		if !ok {
			continue
		}
		single, err := ops.NewTerm(shifted, e.Coeff)
		if err != nil {
			// shifting keeps indices ≥ 0 and tags intact; an error here means
			// op itself held an invalid term.
			return nil, fmt.Errorf("relabel: term [%s]: %w", e.Term, err)
		}
		parts = append(parts, single)
	}

	return ops.Sum(parts...), nil
}

// checkedCutoff returns k·start when it does not exceed initial, else
// ErrBoundaryOutOfRange. The bound is tested as start > initial/k so the
// product is only formed once it is known to fit in int.
// Requires k ≥ 1, start ≥ 0, initial ≥ 0.
func checkedCutoff(k, start, initial int) (int, error) {
	if start > initial/k {
		return 0, fmt.Errorf("relabel: start %d × %d modes > %d qubits: %w", start, k, initial, ErrBoundaryOutOfRange)
	}

	return k * start, nil
}

// Fermion relabels a FermionOperator. See Operator.
func Fermion(op *ops.FermionOperator, activeSpaceStart int, opts ...Option) (*ops.FermionOperator, error) {
	return Operator(op, activeSpaceStart, opts...)
}

// Qubit relabels a QubitOperator. See Operator.
func Qubit(op *ops.QubitOperator, activeSpaceStart int, opts ...Option) (*ops.QubitOperator, error) {
	return Operator(op, activeSpaceStart, opts...)
}
