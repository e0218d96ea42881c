// SPDX-License-Identifier: MIT

package relabel

import (
	"fmt"
	"math"

	"github.com/katalvlaran/activespace/ops"
)

// Relabel is the variant-dispatching entry point. op must be a non-nil
// *ops.FermionOperator or *ops.QubitOperator; the result has the same
// concrete type. activeSpaceStart is converted with ActiveSpaceStart.
//
// Boundary conversion runs first, then the operator type check, then the
// range check inside Operator.
func Relabel(op any, activeSpaceStart any, opts ...Option) (any, error) {
	start, err := ActiveSpaceStart(activeSpaceStart)
	if err != nil {
		return nil, err
	}

	var (
		out  any
		rerr error
	)
	switch v := op.(type) {
	case *ops.FermionOperator:
		if v == nil {
			return nil, ErrNilOperator
		}
		out, rerr = Fermion(v, start, opts...)
	case *ops.QubitOperator:
		if v == nil {
			return nil, ErrNilOperator
		}
		out, rerr = Qubit(v, start, opts...)
	default:
		return nil, fmt.Errorf("relabel: got %T: %w", op, ErrUnsupportedOperator)
	}
	if rerr != nil {
		// keep the result a plain nil interface on failure
		return nil, rerr
	}

	return out, nil
}

// ActiveSpaceStart converts v to an int boundary. Accepted: every Go integer
// type, and float32/float64 values that are finite and whole. Anything else
// (including bool, strings and fractional floats) yields ErrBoundaryType.
// Unsigned values beyond math.MaxInt also yield ErrBoundaryType.
//
// Fractional floats are rejected rather than truncated toward zero, so 1.5
// is an error here even though int(1.5) would give 1. Magnitude is not
// checked here; an oversized start fails later with ErrBoundaryOutOfRange.
func ActiveSpaceStart(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case uint:
		return fromUnsigned(uint64(n))
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return fromUnsigned(uint64(n))
	case uint64:
		return fromUnsigned(n)
	case float32:
		return fromFloat(float64(n))
	case float64:
		return fromFloat(n)
	default:
		return 0, fmt.Errorf("relabel: got %T: %w", v, ErrBoundaryType)
	}
}

func fromUnsigned(u uint64) (int, error) {
	if u > math.MaxInt {
		return 0, fmt.Errorf("relabel: %d overflows int: %w", u, ErrBoundaryType)
	}

	return int(u), nil
}

func fromFloat(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) ||
		f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("relabel: got %v: %w", f, ErrBoundaryType)
	}

	return int(f), nil
}
