package linop

import (
	"github.com/skyer30232909/pylops-distributed/internal/darray"
)

// conjugate is the composite conj(A), defined through the identity
// conj(A) x = conj(A conj(x)).
type conjugate struct {
	base
	a Operator
}

var _ Operator = (*conjugate)(nil)

func newConj(a Operator) Operator {
	c := &conjugate{a: a}
	c.init(c, c, a.Shape(), a.DType(), a.Explicit(), a.Eval(), a.Convert())
	return c
}

func (c *conjugate) forward(x *darray.Array) (*darray.Array, error) {
	y, err := c.a.Apply(x.Conj())
	if err != nil {
		return nil, err
	}
	return y.Conj(), nil
}

func (c *conjugate) adjoint(x *darray.Array) (*darray.Array, error) {
	y, err := c.a.ApplyAdjoint(x.Conj())
	if err != nil {
		return nil, err
	}
	return y.Conj(), nil
}

func (c *conjugate) batch(x *darray.Array) (*darray.Array, error) {
	return c.columnwise(x, c.forward)
}

// Adjoint commutes conjugation with the adjoint: conj(A)^H = conj(A^H).
func (c *conjugate) Adjoint() Operator {
	return newConj(c.a.Adjoint())
}
