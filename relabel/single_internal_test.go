package relabel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/activespace/ops"
)

func mustFermionTerm(t *testing.T, label string, coeff complex128) *ops.FermionOperator {
	t.Helper()
	op, err := ops.NewFermionTerm(label, coeff)
	require.NoError(t, err)

	return op
}

func mustQubitTerm(t *testing.T, label string, coeff complex128) *ops.QubitOperator {
	t.Helper()
	op, err := ops.NewQubitTerm(label, coeff)
	require.NoError(t, err)

	return op
}

func TestRelabelSingleFermion(t *testing.T) {
	op := mustFermionTerm(t, "4^", 0.5)
	got, err := relabelSingleFermion(op, 1, op.CountQubits())
	require.NoError(t, err)
	assert.True(t, mustFermionTerm(t, "2^", 0.5).Equal(got))

	frozen := mustFermionTerm(t, "2^", 1)
	got, err = relabelSingleFermion(frozen, 1, frozen.CountQubits())
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
	assert.NotSame(t, frozen, got, "dropped term yields a fresh empty operator")
}

func TestRelabelSinglePauli(t *testing.T) {
	op := mustQubitTerm(t, "X4", 1)
	got, err := relabelSinglePauli(op, 1, op.CountQubits())
	require.NoError(t, err)
	assert.True(t, mustQubitTerm(t, "X2", 1).Equal(got))

	op = mustQubitTerm(t, "Z1 Z3 Z4", 1)
	got, err = relabelSinglePauli(op, 1, op.CountQubits())
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestRelabelSingle_IdentityBeforeRangeCheck(t *testing.T) {
	id := mustFermionTerm(t, "", 3)
	got, err := relabelSingleFermion(id, 5, id.CountQubits())
	require.NoError(t, err)
	assert.Same(t, id, got)

	empty := ops.New[ops.Pauli]()
	gotQ, err := relabelSinglePauli(empty, 5, 0)
	require.NoError(t, err)
	assert.Same(t, empty, gotQ)
}

func TestRelabelSingle_WrongVariant(t *testing.T) {
	_, err := relabelSingleFermion(mustQubitTerm(t, "X0", 1), 0, 1)
	assert.ErrorIs(t, err, ErrUnsupportedOperator)

	_, err = relabelSinglePauli(mustFermionTerm(t, "0^", 1), 0, 1)
	assert.ErrorIs(t, err, ErrUnsupportedOperator)

	var nilF *ops.FermionOperator
	_, err = relabelSingleFermion(nilF, 0, 1)
	assert.ErrorIs(t, err, ErrType)
}

func TestRelabelSingle_MultipleTerms(t *testing.T) {
	two := mustFermionTerm(t, "4^", 1).Add(mustFermionTerm(t, "5", 1))
	_, err := relabelSingleFermion(two, 1, two.CountQubits())
	assert.ErrorIs(t, err, ErrMultipleTerms)
	assert.ErrorIs(t, err, ErrValue)
}

func TestRelabelSingle_Range(t *testing.T) {
	op := mustQubitTerm(t, "Y3", 1)
	_, err := relabelSinglePauli(op, 3, op.CountQubits())
	assert.ErrorIs(t, err, ErrBoundaryOutOfRange)

	_, err = relabelSinglePauli(op, -1, op.CountQubits())
	assert.ErrorIs(t, err, ErrNegativeBoundary)

	_, err = relabelSinglePauli(op, math.MaxInt/2+1, op.CountQubits())
	assert.ErrorIs(t, err, ErrBoundaryOutOfRange)
}

func TestCheckedCutoff(t *testing.T) {
	c, err := checkedCutoff(2, 3, 6)
	require.NoError(t, err)
	assert.Equal(t, 6, c)

	_, err = checkedCutoff(2, 4, 7)
	assert.ErrorIs(t, err, ErrBoundaryOutOfRange)

	_, err = checkedCutoff(2, math.MaxInt/2+1, math.MaxInt)
	assert.ErrorIs(t, err, ErrBoundaryOutOfRange, "product would overflow int")

	c, err = checkedCutoff(2, math.MaxInt/2, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt-1, c)
}

func TestGatherOptions(t *testing.T) {
	assert.Equal(t, DefaultModesPerOrbital, gatherOptions().modesPerOrbital)
	assert.Equal(t, 3, gatherOptions(nil, WithModesPerOrbital(3)).modesPerOrbital)
	assert.Equal(t, 1, gatherOptions(WithModesPerOrbital(3), WithModesPerOrbital(1)).modesPerOrbital)
}
