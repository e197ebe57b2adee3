package linop

import (
	"fmt"

	"github.com/skyer30232909/pylops-distributed/internal/darray"
)

// Dot is the generic composition entry point backing multiplication syntax.
// It dispatches on the operand kind, in order:
//
//   - another operator  -> Product composite (apply x first, then op)
//   - a scalar          -> Scaled composite
//   - a vector, or a single-column 2-d array -> forward application
//   - a multi-column 2-d array -> batched forward application
//
// The result is either an Operator (first two cases) or a *darray.Array.
func Dot(op Operator, x any) (any, error) {
	if err := mustOperator(op); err != nil {
		return nil, err
	}
	switch v := x.(type) {
	case Operator:
		return Mul(op, v)
	case complex128:
		return Scale(v, op)
	case complex64:
		return Scale(complex128(v), op)
	case float64:
		return Scale(complex(v, 0), op)
	case float32:
		return Scale(complex(float64(v), 0), op)
	case int:
		return Scale(complex(float64(v), 0), op)
	case *darray.Array:
		if v.Rank() == 1 || (v.Rank() == 2 && v.Shape()[1] == 1) {
			return op.Apply(v)
		}
		return op.ApplyBatch(v)
	default:
		return nil, fmt.Errorf("%w: got %T", ErrRank, x)
	}
}

// MatMul is matrix-multiply syntax: like Dot, but a scalar operand is
// rejected outright so composition is never silently read as scaling.
func MatMul(op Operator, x any) (any, error) {
	if isScalar(x) {
		return nil, ErrScalarOperand
	}
	return Dot(op, x)
}

func isScalar(x any) bool {
	switch x.(type) {
	case complex128, complex64, float64, float32, int:
		return true
	}
	return false
}
