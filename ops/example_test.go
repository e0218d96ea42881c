package ops_test

import (
	"fmt"

	"github.com/katalvlaran/activespace/ops"
)

// ExampleSum shows accumulation and the canonical print order.
func ExampleSum() {
	a, _ := ops.NewFermionTerm("3^ 1", 0.5)
	b, _ := ops.NewFermionTerm("3^ 1", 0.25)
	c, _ := ops.NewFermionTerm("", -1)

	sum := ops.Sum(a, b, c)
	fmt.Println(sum)
	fmt.Println("qubits:", sum.CountQubits())

	// Output:
	// -1 [] +
	// 0.75 [3^ 1]
	// qubits: 4
}

// ExampleNewQubitTerm shows that Pauli factors are stored by qubit.
func ExampleNewQubitTerm() {
	op, err := ops.NewQubitTerm("Z4 X0 Y2", 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(op)

	_, err = ops.NewQubitTerm("X1 Y1", 1)
	fmt.Println(err)

	// Output:
	// 1 [X0 Y2 Z4]
	// qubit 1: ops: qubit index repeated in Pauli term
}
