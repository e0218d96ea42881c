// SPDX-License-Identifier: MIT

// Package ops defines the symbolic operator values consumed and produced by
// the relabel package: fermionic ladder-operator products and Pauli strings,
// each stored as a mapping from an ordered term to a complex coefficient.
//
// The package deliberately offers only the handful of algebra operations an
// index-bookkeeping pass needs:
//
//   - New[T]()              additive identity (no terms)
//   - NewTerm(term, coeff)  single-term operator, validated and canonicalised
//   - Add / Sum             term-wise coefficient accumulation
//   - CountQubits           highest referenced index + 1
//   - Equal / IsClose       structural comparison
//   - Parse*/String         text round-trip in the familiar "3^ 2" / "X0 Z3" notation
//
// Term layout:
//
//	Fermion:  [(3, Create) (2, Create) (0, Annihilate)]  ⇔ "3^ 2^ 0"
//	Qubit:    [(0, X) (3, Z)]                            ⇔ "X0 Z3"
//
// Fermionic factor order is significant (anticommutation sign) and is never
// rearranged. Pauli factors on distinct qubits commute, so Pauli terms are
// stored in ascending qubit order and a qubit may appear at most once.
//
// Operator values are immutable after construction: Add returns a fresh
// operator and Terms returns copies, so values may be shared across goroutines
// without locking.
//
// Determinism:
//
//	Terms() yields a canonical order (shorter terms first, then factor-wise by
//	index and tag). Any fold over Terms() accumulates coefficients in the same
//	order on every run.
package ops
