package relabel_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/activespace/ops"
	"github.com/katalvlaran/activespace/relabel"
)

// ExampleFermion freezes the lowest spatial orbital (modes 0 and 1).
func ExampleFermion() {
	op, err := ops.ParseFermionOperator("0.5 [4^ 3] + [3^ 2^ 0] + -1 [6 7^]")
	if err != nil {
		fmt.Println(err)
		return
	}

	out, err := relabel.Fermion(op, 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)

	// Output:
	// 0.5 [2^ 1] +
	// -1 [4 5^]
}

// ExampleQubit shows that a Pauli string touching a frozen qubit vanishes.
func ExampleQubit() {
	op, _ := ops.ParseQubitOperator("[X4] + [Z1 Z3 Z4]")
	out, _ := relabel.Qubit(op, 1)
	fmt.Println(out)

	// Output:
	// 1 [X2]
}

// ExampleRelabel dispatches on the operator type and reports boundary errors.
func ExampleRelabel() {
	op, _ := ops.NewQubitTerm("Y3", 2)

	res, err := relabel.Relabel(op, 1.0)
	fmt.Println(res, err)

	_, err = relabel.Relabel(op, 3)
	fmt.Println(errors.Is(err, relabel.ErrBoundaryOutOfRange))

	_, err = relabel.Relabel(op, 0.5)
	fmt.Println(errors.Is(err, relabel.ErrType))

	// Output:
	// 2 [Y1] <nil>
	// true
	// true
}
