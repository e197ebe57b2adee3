package linop

import (
	"fmt"

	"github.com/skyer30232909/pylops-distributed/internal/darray"
)

// Operator is the capability every member of the algebra presents. Any
// value implementing it, not only the variants defined in this package, can
// participate in composition; construction validates operands against this
// interface rather than concrete types.
//
// Operators are immutable value-like objects, safe for concurrent use and
// for sharing children across expressions. The single exception is SetEval,
// which exists so Pow can disable a child's eager evaluation at
// construction time; nothing mutates an operator after that.
type Operator interface {
	// Shape returns (output dimension, input dimension) of the forward map.
	Shape() Shape
	// DType returns the element type tag, used for construction defaults.
	DType() darray.DataType
	// Explicit reports whether the operator is backed by an explicit
	// matrix. Propagated unchanged through composition.
	Explicit() bool
	// Eval returns the eager-evaluation flag pair.
	Eval() Flags
	// Convert returns the input-conversion flag pair.
	Convert() Flags
	// SetEval overrides the eager-evaluation flags. Construction-time use
	// only (see Pow).
	SetEval(Flags)

	// Apply computes the forward action y = A x.
	Apply(x *darray.Array) (*darray.Array, error)
	// ApplyAdjoint computes the adjoint action y = A^H x.
	ApplyAdjoint(x *darray.Array) (*darray.Array, error)
	// ApplyBatch applies the forward map independently to each column of a
	// 2-d input.
	ApplyBatch(x *darray.Array) (*darray.Array, error)

	// Adjoint returns the Hermitian adjoint operator.
	Adjoint() Operator
	// Conj returns the complex-conjugate operator.
	Conj() Operator
}

// applier is the variant-specific action behind the shared envelope.
// Implementations receive the (possibly converted) input and return a lazy
// result; the envelope owns reshaping and evaluation policy.
type applier interface {
	forward(x *darray.Array) (*darray.Array, error)
	adjoint(x *darray.Array) (*darray.Array, error)
	batch(x *darray.Array) (*darray.Array, error)
}

// base carries the shape/dtype/flag bookkeeping shared by every variant and
// implements the convert -> action -> reshape -> evaluate envelope exactly
// once, so leaves and composites have identical application semantics.
type base struct {
	self     Operator
	impl     applier
	shape    Shape
	dtype    darray.DataType
	explicit bool
	eval     Flags
	convert  Flags
}

func (b *base) init(self Operator, impl applier, shape Shape, dtype darray.DataType, explicit bool, eval, convert Flags) {
	b.self = self
	b.impl = impl
	b.shape = shape
	b.dtype = dtype
	b.explicit = explicit
	b.eval = eval
	b.convert = convert
}

// Shape returns the operator shape.
func (b *base) Shape() Shape { return b.shape }

// DType returns the element type tag.
func (b *base) DType() darray.DataType { return b.dtype }

// Explicit reports whether the operator is matrix-backed.
func (b *base) Explicit() bool { return b.explicit }

// Eval returns the eager-evaluation flags.
func (b *base) Eval() Flags { return b.eval }

// Convert returns the input-conversion flags.
func (b *base) Convert() Flags { return b.convert }

// SetEval overrides the eager-evaluation flags.
func (b *base) SetEval(f Flags) { b.eval = f }

// Apply computes the forward action through the shared envelope.
func (b *base) Apply(x *darray.Array) (*darray.Array, error) {
	if b.convert.Forward {
		x = darray.FromArray(x)
	}
	y, err := b.impl.forward(x)
	if err != nil {
		return nil, err
	}
	y, err = y.Reshape(darray.Shape{b.shape.Rows()})
	if err != nil {
		return nil, fmt.Errorf("forward result of %v operator: %w", b.shape, err)
	}
	if b.eval.Forward {
		y = y.Compute()
	}
	return y, nil
}

// ApplyAdjoint computes the adjoint action through the shared envelope.
func (b *base) ApplyAdjoint(x *darray.Array) (*darray.Array, error) {
	if b.convert.Adjoint {
		x = darray.FromArray(x)
	}
	y, err := b.impl.adjoint(x)
	if err != nil {
		return nil, err
	}
	y, err = y.Reshape(darray.Shape{b.shape.Cols()})
	if err != nil {
		return nil, fmt.Errorf("adjoint result of %v operator: %w", b.shape, err)
	}
	if b.eval.Adjoint {
		y = y.Compute()
	}
	return y, nil
}

// ApplyBatch applies the forward map to each column of a 2-d input. The
// forward-side convert and eval policies apply, as in Apply.
func (b *base) ApplyBatch(x *darray.Array) (*darray.Array, error) {
	if x.Rank() != 2 {
		return nil, fmt.Errorf("%w: got rank %d", ErrRank, x.Rank())
	}
	k := x.Shape()[1]
	if b.convert.Forward {
		x = darray.FromArray(x)
	}
	y, err := b.impl.batch(x)
	if err != nil {
		return nil, err
	}
	y, err = y.Reshape(darray.Shape{b.shape.Rows(), k})
	if err != nil {
		return nil, fmt.Errorf("batch result of %v operator: %w", b.shape, err)
	}
	if b.eval.Forward {
		y = y.Compute()
	}
	return y, nil
}

// Adjoint returns the default Hermitian adjoint: a custom operator with the
// shape reversed and the forward and adjoint actions swapped, so no
// recomputation is involved.
func (b *base) Adjoint() Operator {
	self := b.self
	return newCustom(b.shape.Swap(), self.ApplyAdjoint, self.Apply, nil,
		b.dtype, false, Flags{}, Flags{})
}

// Conj returns the complex-conjugate operator.
func (b *base) Conj() Operator {
	return newConj(b.self)
}

// columnwise is the generic batch fallback: apply fn to every column of x
// and reassemble the results.
func (b *base) columnwise(x *darray.Array, fn func(*darray.Array) (*darray.Array, error)) (*darray.Array, error) {
	k := x.Shape()[1]
	cols := make([]*darray.Array, k)
	for j := 0; j < k; j++ {
		col, err := x.Column(j)
		if err != nil {
			return nil, err
		}
		y, err := fn(col)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", j, err)
		}
		y, err = y.Reshape(darray.Shape{b.shape.Rows()})
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", j, err)
		}
		cols[j] = y
	}
	return darray.FromColumns(cols)
}

// mustOperator rejects nil operands with the capability error.
func mustOperator(ops ...Operator) error {
	for _, op := range ops {
		if op == nil {
			return ErrNotOperator
		}
	}
	return nil
}
