package linop

import (
	"fmt"

	"github.com/skyer30232909/pylops-distributed/internal/darray"
)

// sum is the composite A + B.
type sum struct {
	base
	a, b Operator
}

var _ Operator = (*sum)(nil)

// Add builds the operator A + B. Both operands must have the same shape and
// agree on their eval flags: the combined result can only honor one
// evaluation policy.
func Add(a, b Operator) (Operator, error) {
	if err := mustOperator(a, b); err != nil {
		return nil, err
	}
	if !a.Shape().Equal(b.Shape()) {
		return nil, fmt.Errorf("cannot add %v and %v: %w", a.Shape(), b.Shape(), ErrShapeMismatch)
	}
	if a.Eval() != b.Eval() {
		return nil, ErrEvalMismatch
	}
	s := &sum{a: a, b: b}
	s.init(s, s, a.Shape(), a.DType(), a.Explicit(), a.Eval(), a.Convert())
	return s, nil
}

func (s *sum) forward(x *darray.Array) (*darray.Array, error) {
	ya, err := s.a.Apply(x)
	if err != nil {
		return nil, err
	}
	yb, err := s.b.Apply(x)
	if err != nil {
		return nil, err
	}
	return ya.Add(yb)
}

func (s *sum) adjoint(x *darray.Array) (*darray.Array, error) {
	ya, err := s.a.ApplyAdjoint(x)
	if err != nil {
		return nil, err
	}
	yb, err := s.b.ApplyAdjoint(x)
	if err != nil {
		return nil, err
	}
	return ya.Add(yb)
}

func (s *sum) batch(x *darray.Array) (*darray.Array, error) {
	ya, err := s.a.ApplyBatch(x)
	if err != nil {
		return nil, err
	}
	yb, err := s.b.ApplyBatch(x)
	if err != nil {
		return nil, err
	}
	return ya.Add(yb)
}

// Adjoint applies linearity: (A + B)^H = A^H + B^H.
func (s *sum) Adjoint() Operator {
	adj, err := Add(s.a.Adjoint(), s.b.Adjoint())
	if err != nil {
		panic(fmt.Errorf("adjoint of sum: %w", err))
	}
	return adj
}
