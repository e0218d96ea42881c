// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"
	"strconv"
	"strings"
)

// Operator is an immutable mapping from Term to complex coefficient.
// The zero value and a nil *Operator both behave as the additive identity.
type Operator[T Tag] struct {
	terms map[string]Entry[T] // term key → (canonical term, coefficient)
}

// Entry is one (term, coefficient) pair as yielded by Terms.
type Entry[T Tag] struct {
	Term  Term[T]
	Coeff complex128
}

// FermionOperator is a sum of products of fermionic ladder operators.
type FermionOperator = Operator[Action]

// QubitOperator is a sum of Pauli strings.
type QubitOperator = Operator[Pauli]

// New returns the additive identity (an operator with no terms).
// Complexity: O(1).
func New[T Tag]() *Operator[T] {
	return &Operator[T]{terms: make(map[string]Entry[T])}
}

// NewTerm builds a single-term operator from a factor sequence and coefficient.
//
// Validation:
//   - every Index must be ≥ 0 (ErrNegativeIndex) and < math.MaxInt (ErrIndexOutOfRange)
//   - every Tag must belong to its alphabet (ErrInvalidTag)
//   - Pauli terms are sorted by qubit and must not repeat a qubit (ErrDuplicateIndex)
//
// Fermionic factor order is kept as given. The input slice is copied.
// Complexity: O(k log k) for a term of k factors.
func NewTerm[T Tag](term Term[T], coeff complex128) (*Operator[T], error) {
	canon, err := canonicalTerm(term)
	if err != nil {
		return nil, err
	}
	op := New[T]()
	op.terms[canon.key()] = Entry[T]{Term: canon, Coeff: coeff}

	return op, nil
}

// canonicalTerm validates term and returns the stored form.
func canonicalTerm[T Tag](term Term[T]) (Term[T], error) {
	out := term.Clone()
	for _, f := range out {
		if f.Index < 0 {
			return nil, fmt.Errorf("factor %s: %w", f, ErrNegativeIndex)
		}
		if f.Index == math.MaxInt {
			return nil, fmt.Errorf("factor %s: %w", f, ErrIndexOutOfRange)
		}
		if !validTag(f.Tag) {
			return nil, fmt.Errorf("factor index %d tag %d: %w", f.Index, uint64(f.Tag), ErrInvalidTag)
		}
	}
	if variantOf[T]() != VariantQubit {
		return out, nil
	}

	slices.SortStableFunc(out, func(a, b Factor[T]) int { return a.Index - b.Index })
	for i := 1; i < len(out); i++ {
		if out[i].Index == out[i-1].Index {
			return nil, fmt.Errorf("qubit %d: %w", out[i].Index, ErrDuplicateIndex)
		}
	}

	return out, nil
}

// Add returns o + other as a new operator; neither operand is modified.
// A term whose accumulated coefficient cancels to exactly zero is removed.
// Complexity: O(|o| + |other|).
func (o *Operator[T]) Add(other *Operator[T]) *Operator[T] {
	out := New[T]()
	out.accumulate(o)
	out.accumulate(other)

	return out
}

// Sum adds all operands left to right, starting from the additive identity.
// Coefficients accumulate exactly as a chain of Add calls would, but in a
// single fresh operator. Complexity: O(total terms).
func Sum[T Tag](operands ...*Operator[T]) *Operator[T] {
	acc := New[T]()
	for _, op := range operands {
		acc.accumulate(op)
	}

	return acc
}

// accumulate adds other into o in place. Only used on operators that have
// not yet been handed out.
func (o *Operator[T]) accumulate(other *Operator[T]) {
	if other == nil {
		return
	}
	for k, e := range other.terms {
		prev, ok := o.terms[k]
		if !ok {
			o.terms[k] = e
			continue
		}
		sum := prev.Coeff + e.Coeff
		if sum == 0 {
			delete(o.terms, k)
			continue
		}
		o.terms[k] = Entry[T]{Term: prev.Term, Coeff: sum}
	}
}

// Len returns the number of stored terms.
func (o *Operator[T]) Len() int {
	if o == nil {
		return 0
	}

	return len(o.terms)
}

// Terms returns copies of all (term, coefficient) pairs in canonical order.
// Complexity: O(n log n).
func (o *Operator[T]) Terms() []Entry[T] {
	if o == nil {
		return nil
	}
	out := make([]Entry[T], 0, len(o.terms))
	for _, e := range o.terms {
		out = append(out, Entry[T]{Term: e.Term.Clone(), Coeff: e.Coeff})
	}
	slices.SortFunc(out, func(a, b Entry[T]) int { return compareTerms(a.Term, b.Term) })

	return out
}

// Coefficient looks up the coefficient of term. Pauli factors may be given in
// any order. ok is false when the term is absent or malformed.
func (o *Operator[T]) Coefficient(term Term[T]) (coeff complex128, ok bool) {
	if o == nil {
		return 0, false
	}
	canon, err := canonicalTerm(term)
	if err != nil {
		return 0, false
	}
	e, ok := o.terms[canon.key()]

	return e.Coeff, ok
}

// CountQubits returns the number of modes/qubits the operator spans, i.e. the
// highest referenced index + 1. Operators without factors span 0. NewTerm
// rejects math.MaxInt, so the result never overflows.
// Complexity: O(total factors).
func (o *Operator[T]) CountQubits() int {
	if o == nil {
		return 0
	}
	hi := -1
	for _, e := range o.terms {
		if m := e.Term.MaxIndex(); m > hi {
			hi = m
		}
	}

	return hi + 1
}

// Variant reports the operator family encoded by the tag type.
func (o *Operator[T]) Variant() Variant { return variantOf[T]() }

// Equal reports exact structural equality: same terms, identical coefficients.
func (o *Operator[T]) Equal(other *Operator[T]) bool {
	if o.Len() != other.Len() {
		return false
	}
	for k, e := range o.entries() {
		oe, ok := other.entries()[k]
		if !ok || oe.Coeff != e.Coeff {
			return false
		}
	}

	return true
}

// IsClose reports whether every term coefficient differs by at most tol;
// a term missing on one side counts as coefficient 0.
func (o *Operator[T]) IsClose(other *Operator[T], tol float64) bool {
	a, b := o.entries(), other.entries()
	for k, e := range a {
		if cmplx.Abs(e.Coeff-b[k].Coeff) > tol {
			return false
		}
	}
	for k, e := range b {
		if _, ok := a[k]; !ok && cmplx.Abs(e.Coeff) > tol {
			return false
		}
	}

	return true
}

// entries exposes the backing map, tolerating a nil receiver.
func (o *Operator[T]) entries() map[string]Entry[T] {
	if o == nil {
		return nil
	}

	return o.terms
}

// String renders the operator as "coeff [label]" items joined by " +\n";
// the additive identity renders as "0". ParseFermionOperator and
// ParseQubitOperator accept this form.
func (o *Operator[T]) String() string {
	terms := o.Terms()
	if len(terms) == 0 {
		return "0"
	}
	parts := make([]string, len(terms))
	for i, e := range terms {
		parts[i] = formatCoeff(e.Coeff) + " [" + e.Term.String() + "]"
	}

	return strings.Join(parts, " +\n")
}

// formatCoeff prints real coefficients as plain floats and others as "(a+bi)".
func formatCoeff(c complex128) string {
	if imag(c) == 0 {
		return strconv.FormatFloat(real(c), 'g', -1, 64)
	}

	return strconv.FormatComplex(c, 'g', -1, 128)
}
