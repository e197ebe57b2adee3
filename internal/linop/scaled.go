package linop

import (
	"math/cmplx"

	"github.com/skyer30232909/pylops-distributed/internal/darray"
)

// scaled is the composite alpha * A.
type scaled struct {
	base
	a     Operator
	alpha complex128
}

var _ Operator = (*scaled)(nil)

// Scale builds the operator alpha * A. A complex alpha promotes the dtype
// tag; shape and flags carry over from A.
func Scale(alpha complex128, a Operator) (Operator, error) {
	if err := mustOperator(a); err != nil {
		return nil, err
	}
	dtype := a.DType()
	if imag(alpha) != 0 {
		dtype = dtype.Complex()
	}
	s := &scaled{a: a, alpha: alpha}
	s.init(s, s, a.Shape(), dtype, a.Explicit(), a.Eval(), a.Convert())
	return s, nil
}

func (s *scaled) forward(x *darray.Array) (*darray.Array, error) {
	y, err := s.a.Apply(x)
	if err != nil {
		return nil, err
	}
	return y.Scale(s.alpha), nil
}

// adjoint conjugates the scalar: (alpha A)^H x = conj(alpha) A^H x.
func (s *scaled) adjoint(x *darray.Array) (*darray.Array, error) {
	y, err := s.a.ApplyAdjoint(x)
	if err != nil {
		return nil, err
	}
	return y.Scale(cmplx.Conj(s.alpha)), nil
}

func (s *scaled) batch(x *darray.Array) (*darray.Array, error) {
	y, err := s.a.ApplyBatch(x)
	if err != nil {
		return nil, err
	}
	return y.Scale(s.alpha), nil
}

// Adjoint returns conj(alpha) * A^H.
func (s *scaled) Adjoint() Operator {
	adj, err := Scale(cmplx.Conj(s.alpha), s.a.Adjoint())
	if err != nil {
		panic(err)
	}
	return adj
}
