package linop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"

	"github.com/skyer30232909/pylops-distributed/internal/darray"
)

// denseOp builds a Custom operator backed by an explicit gonum matrix, the
// dense reference the algebra is checked against.
func denseOp(t *testing.T, rows, cols int, data []complex128, opts ...Option) *Custom {
	t.Helper()
	m := mat.NewCDense(rows, cols, data)

	forward := func(x *darray.Array) (*darray.Array, error) {
		xv := cblas128.Vector{N: cols, Data: append([]complex128(nil), x.Compute().Data()...), Inc: 1}
		out := make([]complex128, rows)
		cblas128.Gemv(blas.NoTrans, 1, m.RawCMatrix(), xv, 0,
			cblas128.Vector{N: rows, Data: out, Inc: 1})
		return darray.FromSlice(out, darray.Shape{rows})
	}
	adjoint := func(x *darray.Array) (*darray.Array, error) {
		xv := cblas128.Vector{N: rows, Data: append([]complex128(nil), x.Compute().Data()...), Inc: 1}
		out := make([]complex128, cols)
		cblas128.Gemv(blas.ConjTrans, 1, m.RawCMatrix(), xv, 0,
			cblas128.Vector{N: cols, Data: out, Inc: 1})
		return darray.FromSlice(out, darray.Shape{cols})
	}

	op, err := New(Shape{rows, cols}, forward,
		append([]Option{WithAdjoint(adjoint), WithExplicit()}, opts...)...)
	require.NoError(t, err)
	return op
}

// scaleOp builds a square lazy operator y = alpha * x, whose results stay
// unevaluated graph handles unless the envelope computes them.
func scaleOp(t *testing.T, n int, alpha complex128, opts ...Option) *Custom {
	t.Helper()
	op, err := New(Shape{n, n},
		func(x *darray.Array) (*darray.Array, error) { return x.Scale(alpha), nil },
		append([]Option{WithAdjoint(func(x *darray.Array) (*darray.Array, error) {
			return x.Scale(complex(real(alpha), -imag(alpha))), nil
		})}, opts...)...)
	require.NoError(t, err)
	return op
}

func vec(t *testing.T, data ...complex128) *darray.Array {
	t.Helper()
	v, err := darray.FromSlice(data, darray.Shape{len(data)})
	require.NoError(t, err)
	return v
}

func matrix(t *testing.T, rows, cols int, data ...complex128) *darray.Array {
	t.Helper()
	m, err := darray.FromSlice(data, darray.Shape{rows, cols})
	require.NoError(t, err)
	return m
}

func assertArrayEqual(t *testing.T, expected []complex128, got *darray.Array) {
	t.Helper()
	data := got.Compute().Data()
	require.Len(t, data, len(expected))
	for i := range expected {
		assert.InDelta(t, real(expected[i]), real(data[i]), 1e-12, "element %d (real)", i)
		assert.InDelta(t, imag(expected[i]), imag(data[i]), 1e-12, "element %d (imag)", i)
	}
}

// applyVec applies op and materializes the result.
func applyVec(t *testing.T, op Operator, x *darray.Array) []complex128 {
	t.Helper()
	y, err := op.Apply(x)
	require.NoError(t, err)
	return y.Compute().Data()
}

func applyAdjVec(t *testing.T, op Operator, x *darray.Array) []complex128 {
	t.Helper()
	y, err := op.ApplyAdjoint(x)
	require.NoError(t, err)
	return y.Compute().Data()
}

func TestApply_Dense(t *testing.T) {
	// [[1, 2],
	//  [3, 4],
	//  [5, 6]]
	op := denseOp(t, 3, 2, []complex128{1, 2, 3, 4, 5, 6})

	assertArrayEqual(t, []complex128{5, 11, 17}, mustApply(t, op, vec(t, 1, 2)))
	assertArrayEqual(t, []complex128{22, 28}, mustApplyAdj(t, op, vec(t, 1, 2, 3)))
}

func mustApply(t *testing.T, op Operator, x *darray.Array) *darray.Array {
	t.Helper()
	y, err := op.Apply(x)
	require.NoError(t, err)
	return y
}

func mustApplyAdj(t *testing.T, op Operator, x *darray.Array) *darray.Array {
	t.Helper()
	y, err := op.ApplyAdjoint(x)
	require.NoError(t, err)
	return y
}

func TestApply_LazyByDefault(t *testing.T) {
	op := scaleOp(t, 3, 2)

	y := mustApply(t, op, vec(t, 1, 2, 3))
	assert.False(t, y.IsMaterialized())
	assertArrayEqual(t, []complex128{2, 4, 6}, y)
}

func TestApply_EvalFlagTriggersCompute(t *testing.T) {
	op := scaleOp(t, 3, 2, WithEval(Flags{Forward: true}))

	y := mustApply(t, op, vec(t, 1, 2, 3))
	assert.True(t, y.IsMaterialized())

	// Adjoint side keeps its own policy.
	ya := mustApplyAdj(t, op, vec(t, 1, 2, 3))
	assert.False(t, ya.IsMaterialized())
}

func TestApply_ConvertFlag(t *testing.T) {
	var sawDistributed bool
	op, err := New(Shape{2, 2}, func(x *darray.Array) (*darray.Array, error) {
		sawDistributed = x.IsDistributed()
		return x.Copy(), nil
	}, WithConvert(Flags{Forward: true}))
	require.NoError(t, err)

	_ = mustApply(t, op, vec(t, 1, 2))
	assert.True(t, sawDistributed)

	sawDistributed = false
	opNoConvert, err := New(Shape{2, 2}, func(x *darray.Array) (*darray.Array, error) {
		sawDistributed = x.IsDistributed()
		return x.Copy(), nil
	})
	require.NoError(t, err)
	_ = mustApply(t, opNoConvert, vec(t, 1, 2))
	assert.False(t, sawDistributed)
}

func TestApply_ReshapeContractViolation(t *testing.T) {
	op, err := New(Shape{3, 3}, func(x *darray.Array) (*darray.Array, error) {
		wrong, err := darray.FromSlice([]complex128{1, 2}, darray.Shape{2})
		if err != nil {
			return nil, err
		}
		return wrong, nil
	})
	require.NoError(t, err)

	_, err = op.Apply(vec(t, 1, 2, 3))
	require.ErrorIs(t, err, darray.ErrBadReshape)
}

func TestApply_SingleColumnMatrixInput(t *testing.T) {
	op := scaleOp(t, 3, 2)

	y := mustApply(t, op, matrix(t, 3, 1, 1, 2, 3))
	assert.True(t, y.Shape().Equal(darray.Shape{3}))
	assertArrayEqual(t, []complex128{2, 4, 6}, y)
}

func TestDefaultAdjoint_SwapsActions(t *testing.T) {
	op := denseOp(t, 3, 2, []complex128{1, 2, 3, 4, 5, 6})
	adj := op.base.Adjoint() // default swap, bypassing the Custom override

	assert.True(t, adj.Shape().Equal(Shape{2, 3}))
	assertArrayEqual(t, applyAdjVec(t, op, vec(t, 1, 2, 3)), mustApply(t, adj, vec(t, 1, 2, 3)))
	assertArrayEqual(t, applyVec(t, op, vec(t, 1, 2)), mustApplyAdj(t, adj, vec(t, 1, 2)))
}

// foreignOp implements Operator directly without embedding the package
// base, standing in for an operator from another library.
type foreignOp struct {
	scale complex128
	n     int
	eval  Flags
}

func (f *foreignOp) Shape() Shape             { return Shape{f.n, f.n} }
func (f *foreignOp) DType() darray.DataType   { return darray.Complex128 }
func (f *foreignOp) Explicit() bool           { return false }
func (f *foreignOp) Eval() Flags              { return f.eval }
func (f *foreignOp) Convert() Flags           { return Flags{} }
func (f *foreignOp) SetEval(fl Flags)         { f.eval = fl }
func (f *foreignOp) Adjoint() Operator        { return f }
func (f *foreignOp) Conj() Operator           { return f }

func (f *foreignOp) Apply(x *darray.Array) (*darray.Array, error) {
	return x.Scale(f.scale), nil
}

func (f *foreignOp) ApplyAdjoint(x *darray.Array) (*darray.Array, error) {
	return x.Scale(f.scale), nil
}

func (f *foreignOp) ApplyBatch(x *darray.Array) (*darray.Array, error) {
	return x.Scale(f.scale), nil
}

func TestComposition_AcceptsForeignOperators(t *testing.T) {
	local := scaleOp(t, 2, 3)
	foreign := &foreignOp{scale: 10, n: 2}

	s, err := Add(local, foreign)
	require.NoError(t, err)
	assertArrayEqual(t, []complex128{13, 26}, mustApply(t, s, vec(t, 1, 2)))

	p, err := Mul(local, foreign)
	require.NoError(t, err)
	assertArrayEqual(t, []complex128{30, 60}, mustApply(t, p, vec(t, 1, 2)))
}
