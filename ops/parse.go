// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseFermionLabel parses a fermionic label such as "3^ 2^ 0".
// A trailing "^" marks Create; a bare index marks Annihilate.
// The empty (or blank) label is the identity term.
func ParseFermionLabel(label string) (Term[Action], error) {
	fields := strings.Fields(label)
	term := make(Term[Action], 0, len(fields))
	for _, tok := range fields {
		action := Annihilate
		digits := tok
		if strings.HasSuffix(tok, "^") {
			action = Create
			digits = strings.TrimSuffix(tok, "^")
		}
		idx, err := parseIndex(digits)
		if err != nil {
			return nil, fmt.Errorf("fermion token %q: %w", tok, err)
		}
		term = append(term, Factor[Action]{Index: idx, Tag: action})
	}

	return term, nil
}

// ParseQubitLabel parses a Pauli-string label such as "X0 Y2 Z3".
// The factors are returned in the order written; NewTerm sorts them.
func ParseQubitLabel(label string) (Term[Pauli], error) {
	fields := strings.Fields(label)
	term := make(Term[Pauli], 0, len(fields))
	for _, tok := range fields {
		if len(tok) < 2 {
			return nil, fmt.Errorf("pauli token %q: %w", tok, ErrBadLabel)
		}
		p := Pauli(tok[0])
		if !validTag(p) {
			return nil, fmt.Errorf("pauli token %q: %w", tok, ErrBadLabel)
		}
		idx, err := parseIndex(tok[1:])
		if err != nil {
			return nil, fmt.Errorf("pauli token %q: %w", tok, err)
		}
		term = append(term, Factor[Pauli]{Index: idx, Tag: p})
	}

	return term, nil
}

// parseIndex accepts only plain non-negative decimal digits.
func parseIndex(s string) (int, error) {
	if s == "" || strings.ContainsAny(s, "+-") {
		return 0, ErrBadLabel
	}
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrBadLabel
	}

	return idx, nil
}

// NewFermionTerm parses label and builds a single-term FermionOperator.
func NewFermionTerm(label string, coeff complex128) (*FermionOperator, error) {
	term, err := ParseFermionLabel(label)
	if err != nil {
		return nil, err
	}

	return NewTerm(term, coeff)
}

// NewQubitTerm parses label and builds a single-term QubitOperator.
func NewQubitTerm(label string, coeff complex128) (*QubitOperator, error) {
	term, err := ParseQubitLabel(label)
	if err != nil {
		return nil, err
	}

	return NewTerm(term, coeff)
}

// ParseFermionOperator parses the String() form of a FermionOperator.
// See parseOperator for the accepted grammar.
func ParseFermionOperator(s string) (*FermionOperator, error) {
	return parseOperator(s, ParseFermionLabel)
}

// ParseQubitOperator parses the String() form of a QubitOperator.
// See parseOperator for the accepted grammar.
func ParseQubitOperator(s string) (*QubitOperator, error) {
	return parseOperator(s, ParseQubitLabel)
}

// parseOperator accepts a "+"-separated sequence of "coeff [label]" items.
//
// Grammar:
//   - coeff is optional (defaults to 1) and is read by strconv.ParseComplex,
//     so "0.5", "-2", "1e-3" and "(1+2i)" are all valid;
//   - whitespace inside coeff is ignored ("- 0.5" == "-0.5");
//   - an input without any "[" is a single bare label with coefficient 1;
//   - "" and "0" denote the additive identity.
//
// Repeated terms accumulate through Add.
func parseOperator[T Tag](s string, parseLabel func(string) (Term[T], error)) (*Operator[T], error) {
	rest := strings.TrimSpace(s)
	if rest == "" || rest == "0" {
		return New[T](), nil
	}
	if !strings.Contains(rest, "[") {
		term, err := parseLabel(rest)
		if err != nil {
			return nil, err
		}
		return NewTerm(term, 1)
	}

	acc := New[T]()
	for first := true; rest != ""; first = false {
		open := strings.IndexByte(rest, '[')
		if open < 0 {
			return nil, fmt.Errorf("trailing text %q: %w", rest, ErrBadLabel)
		}
		closing := strings.IndexByte(rest[open:], ']')
		if closing < 0 {
			return nil, fmt.Errorf("unterminated label in %q: %w", rest, ErrBadLabel)
		}
		closing += open

		coeffText := strings.Join(strings.Fields(rest[:open]), "")
		if !first {
			if !strings.HasPrefix(coeffText, "+") {
				return nil, fmt.Errorf("missing '+' before %q: %w", rest, ErrBadLabel)
			}
			coeffText = coeffText[1:]
		}
		coeff, err := parseCoeff(coeffText)
		if err != nil {
			return nil, err
		}
		term, err := parseLabel(rest[open+1 : closing])
		if err != nil {
			return nil, err
		}
		single, err := NewTerm(term, coeff)
		if err != nil {
			return nil, err
		}
		acc = acc.Add(single)
		rest = strings.TrimSpace(rest[closing+1:])
	}

	return acc, nil
}

// parseCoeff reads a complex coefficient; the empty string means 1.
func parseCoeff(s string) (complex128, error) {
	switch s {
	case "":
		return 1, nil
	case "-":
		return -1, nil
	}
	c, err := strconv.ParseComplex(s, 128)
	if err != nil {
		return 0, fmt.Errorf("coefficient %q: %w", s, ErrBadCoefficient)
	}

	return c, nil
}
