package linop

import (
	"fmt"

	"github.com/skyer30232909/pylops-distributed/internal/darray"
)

// power is the composite A ** p.
type power struct {
	base
	a Operator
	p int
}

var _ Operator = (*power)(nil)

// Pow builds the operator A ** p for a square A and non-negative integer p.
// Pow(A, 0) is the identity map.
//
// Construction disables A's own eval flags so the intermediate applications
// stay lazy and only the final result is (optionally) computed. This
// mutation is shared: any other composite referencing the same A inherits
// lazy evaluation from that point on. It is the one construction-time side
// effect in the algebra.
func Pow(a Operator, p int) (Operator, error) {
	if err := mustOperator(a); err != nil {
		return nil, err
	}
	if !a.Shape().IsSquare() {
		return nil, fmt.Errorf("square operator expected, got %v: %w", a.Shape(), ErrShapeMismatch)
	}
	if p < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadExponent, p)
	}
	pw := &power{a: a, p: p}
	pw.init(pw, pw, a.Shape(), a.DType(), a.Explicit(), a.Eval(), a.Convert())
	a.SetEval(Flags{})
	return pw, nil
}

// iterate applies fn to a copy of x p times, then honors the power
// operator's own eval policy. p = 0 leaves the input unchanged.
func (pw *power) iterate(fn func(*darray.Array) (*darray.Array, error), x *darray.Array, eval bool) (*darray.Array, error) {
	res := x.Copy()
	for i := 0; i < pw.p; i++ {
		var err error
		res, err = fn(res)
		if err != nil {
			return nil, fmt.Errorf("power iteration %d: %w", i, err)
		}
	}
	if eval {
		res = res.Compute()
	}
	return res, nil
}

func (pw *power) forward(x *darray.Array) (*darray.Array, error) {
	return pw.iterate(pw.a.Apply, x, pw.eval.Forward)
}

func (pw *power) adjoint(x *darray.Array) (*darray.Array, error) {
	return pw.iterate(pw.a.ApplyAdjoint, x, pw.eval.Adjoint)
}

func (pw *power) batch(x *darray.Array) (*darray.Array, error) {
	return pw.iterate(pw.a.ApplyBatch, x, pw.eval.Forward)
}

// Adjoint returns A^H ** p.
func (pw *power) Adjoint() Operator {
	adj, err := Pow(pw.a.Adjoint(), pw.p)
	if err != nil {
		panic(fmt.Errorf("adjoint of power: %w", err))
	}
	return adj
}
