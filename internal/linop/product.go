package linop

import (
	"fmt"

	"github.com/skyer30232909/pylops-distributed/internal/darray"
)

// product is the composite A * B (apply B first, then A).
type product struct {
	base
	a, b Operator
}

var _ Operator = (*product)(nil)

// Mul builds the operator composition A * B. Inner dimensions must be
// conformable. Forward application runs B first, so the forward-side
// convert and eval flags come from B; the adjoint runs A first, so the
// adjoint-side flags come from A.
func Mul(a, b Operator) (Operator, error) {
	if err := mustOperator(a, b); err != nil {
		return nil, err
	}
	if a.Shape().Cols() != b.Shape().Rows() {
		return nil, fmt.Errorf("cannot multiply %v and %v: %w", a.Shape(), b.Shape(), ErrShapeMismatch)
	}
	p := &product{a: a, b: b}
	shape := Shape{a.Shape().Rows(), b.Shape().Cols()}
	eval := Flags{Forward: b.Eval().Forward, Adjoint: a.Eval().Adjoint}
	convert := Flags{Forward: b.Convert().Forward, Adjoint: a.Convert().Adjoint}
	p.init(p, p, shape, a.DType(), a.Explicit(), eval, convert)
	return p, nil
}

func (p *product) forward(x *darray.Array) (*darray.Array, error) {
	y, err := p.b.Apply(x)
	if err != nil {
		return nil, err
	}
	return p.a.Apply(y)
}

// adjoint reverses the operand order: (A B)^H x = B^H (A^H x).
func (p *product) adjoint(x *darray.Array) (*darray.Array, error) {
	y, err := p.a.ApplyAdjoint(x)
	if err != nil {
		return nil, err
	}
	return p.b.ApplyAdjoint(y)
}

func (p *product) batch(x *darray.Array) (*darray.Array, error) {
	y, err := p.b.ApplyBatch(x)
	if err != nil {
		return nil, err
	}
	return p.a.ApplyBatch(y)
}

// Adjoint reverses the operands: (A B)^H = B^H A^H.
func (p *product) Adjoint() Operator {
	adj, err := Mul(p.b.Adjoint(), p.a.Adjoint())
	if err != nil {
		panic(fmt.Errorf("adjoint of product: %w", err))
	}
	return adj
}
