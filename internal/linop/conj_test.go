package linop

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConj_ForwardIsConjugatedMap(t *testing.T) {
	data := []complex128{complex(1, 2), complex(0, -1), 3, complex(-2, 5)}
	a := denseOp(t, 2, 2, data)
	c := a.Conj()

	// conj(A) x = conj(A conj(x))
	x := vec(t, complex(1, 1), complex(-2, 3))
	inner := mustApply(t, a, vec(t, cmplx.Conj(complex(1, 1)), cmplx.Conj(complex(-2, 3))))
	innerData := inner.Compute().Data()
	expected := []complex128{cmplx.Conj(innerData[0]), cmplx.Conj(innerData[1])}
	assertArrayEqual(t, expected, mustApply(t, c, x))
}

func TestConj_InvolutionReal(t *testing.T) {
	a := denseOp(t, 2, 2, []complex128{1, 2, 3, 4})
	cc := a.Conj().Conj()

	x := vec(t, 5, -7)
	assertArrayEqual(t, applyVec(t, a, x), mustApply(t, cc, x))
}

func TestConj_InvolutionComplex(t *testing.T) {
	a := denseOp(t, 2, 2, []complex128{complex(1, 2), 0, complex(0, -3), complex(4, 4)})
	cc := a.Conj().Conj()

	x := vec(t, complex(1, -1), complex(2, 5))
	assertArrayEqual(t, applyVec(t, a, x), mustApply(t, cc, x))
	assertArrayEqual(t, applyAdjVec(t, a, x), mustApplyAdj(t, cc, x))
}

func TestConj_AdjointCommutes(t *testing.T) {
	data := []complex128{complex(1, 2), complex(3, -1), 0, complex(0, 4)}
	a := denseOp(t, 2, 2, data)

	// conj(A)^H behaves as conj(A^H).
	left := a.Conj().Adjoint()
	right := a.Adjoint().Conj()

	y := vec(t, complex(2, -3), 1)
	assertArrayEqual(t, applyVec(t, right, y), mustApply(t, left, y))
}

func TestConj_Batch(t *testing.T) {
	a := scaleOp(t, 2, complex(0, 2))
	c := a.Conj()

	// conj(alpha x) over each column: conj(2i * conj(x)) = -2i * x.
	y, err := c.ApplyBatch(matrix(t, 2, 2, complex(1, 1), 2, complex(0, -1), 4))
	require.NoError(t, err)
	expected := []complex128{
		complex(0, -2) * complex(1, 1),
		complex(0, -2) * 2,
		complex(0, -2) * complex(0, -1),
		complex(0, -2) * 4,
	}
	assertArrayEqual(t, expected, y)
}

func TestConj_InheritsMetadata(t *testing.T) {
	a := scaleOp(t, 2, 2,
		WithEval(Flags{Forward: true}),
		WithConvert(Flags{Adjoint: true}))
	c := a.Conj()

	assert.True(t, c.Shape().Equal(a.Shape()))
	assert.Equal(t, a.Eval(), c.Eval())
	assert.Equal(t, a.Convert(), c.Convert())
	assert.Equal(t, a.DType(), c.DType())
}
