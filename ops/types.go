// SPDX-License-Identifier: MIT

package ops

import (
	"strconv"
	"strings"
)

// DefaultTolerance is the coefficient tolerance conventionally passed to IsClose.
const DefaultTolerance = 1e-8

// Action is the ladder-operator flag of a fermionic factor.
type Action uint8

const (
	// Annihilate lowers the occupation of a mode (printed without suffix).
	Annihilate Action = iota
	// Create raises the occupation of a mode (printed with a "^" suffix).
	Create
)

// String returns the label suffix: "^" for Create, "" for Annihilate.
func (a Action) String() string {
	if a == Create {
		return "^"
	}

	return ""
}

// Pauli is the single-qubit Pauli label of a qubit factor.
type Pauli byte

// Pauli alphabet.
const (
	X Pauli = 'X'
	Y Pauli = 'Y'
	Z Pauli = 'Z'
)

// String returns the single-letter label.
func (p Pauli) String() string { return string(rune(p)) }

// Tag is the constraint satisfied by both factor alphabets.
type Tag interface {
	Action | Pauli
	String() string
}

// Variant identifies which operator family a value belongs to.
type Variant uint8

const (
	// VariantUnknown is never returned for a well-formed operator.
	VariantUnknown Variant = iota
	// VariantFermion marks ladder-operator products.
	VariantFermion
	// VariantQubit marks Pauli strings.
	VariantQubit
)

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v {
	case VariantFermion:
		return "fermion"
	case VariantQubit:
		return "qubit"
	default:
		return "unknown"
	}
}

// Factor is one (index, tag) pair inside a term.
type Factor[T Tag] struct {
	// Index is the mode (fermion) or qubit (Pauli) the factor acts on.
	Index int

	// Tag is the ladder action or Pauli label. It is opaque to index bookkeeping.
	Tag T
}

// String renders the factor as "3^", "3" or "X3".
func (f Factor[T]) String() string {
	idx := strconv.Itoa(f.Index)
	switch tag := any(f.Tag).(type) {
	case Action:
		return idx + tag.String()
	case Pauli:
		return tag.String() + idx
	}

	return idx
}

// Term is an ordered factor sequence. The empty term is the identity.
type Term[T Tag] []Factor[T]

// IsIdentity reports whether the term has no factors.
func (t Term[T]) IsIdentity() bool { return len(t) == 0 }

// Clone returns an independent copy of the term.
func (t Term[T]) Clone() Term[T] {
	if t == nil {
		return Term[T]{}
	}
	out := make(Term[T], len(t))
	copy(out, t)

	return out
}

// MaxIndex returns the largest factor index, or -1 for the identity term.
func (t Term[T]) MaxIndex() int {
	hi := -1
	for _, f := range t {
		if f.Index > hi {
			hi = f.Index
		}
	}

	return hi
}

// String renders the factors separated by single spaces ("3^ 2^ 0", "X0 Z3").
func (t Term[T]) String() string {
	parts := make([]string, len(t))
	for i, f := range t {
		parts[i] = f.String()
	}

	return strings.Join(parts, " ")
}

// key encodes the term as a map key. Index and raw tag byte are enough to
// distinguish terms of one variant.
func (t Term[T]) key() string {
	buf := make([]byte, 0, len(t)*4)
	for _, f := range t {
		buf = strconv.AppendInt(buf, int64(f.Index), 10)
		buf = append(buf, ':')
		buf = strconv.AppendUint(buf, uint64(f.Tag), 10)
		buf = append(buf, ';')
	}

	return string(buf)
}

// compareTerms orders terms by length, then factor-wise by index and tag.
func compareTerms[T Tag](a, b Term[T]) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		if a[i].Index != b[i].Index {
			if a[i].Index < b[i].Index {
				return -1
			}
			return 1
		}
		if a[i].Tag != b[i].Tag {
			if a[i].Tag < b[i].Tag {
				return -1
			}
			return 1
		}
	}

	return 0
}

// variantOf maps the tag type to its operator family.
func variantOf[T Tag]() Variant {
	var zero T
	switch any(zero).(type) {
	case Action:
		return VariantFermion
	case Pauli:
		return VariantQubit
	}

	return VariantUnknown
}

// validTag reports whether tag belongs to its alphabet.
func validTag[T Tag](tag T) bool {
	switch v := any(tag).(type) {
	case Action:
		return v == Annihilate || v == Create
	case Pauli:
		return v == X || v == Y || v == Z
	}

	return false
}
