package linop

import "errors"

// Construction errors, raised when a composite is built.
var (
	ErrShapeMismatch = errors.New("operand shapes are not conformable")
	ErrEvalMismatch  = errors.New("eval flags must be the same for both operands")
	ErrBadExponent   = errors.New("non-negative integer expected as exponent")
	ErrNotOperator   = errors.New("operand does not implement the operator capability")
)

// Application errors, raised when an operator is applied.
var (
	ErrForwardUndefined = errors.New("forward is not defined")
	ErrAdjointUndefined = errors.New("adjoint is not defined")
	ErrRank             = errors.New("expected 1-d or 2-d array or operator operand")
	ErrScalarOperand    = errors.New("scalar operands are not allowed in MatMul, use Scale instead")
)
