package linop

import (
	"github.com/skyer30232909/pylops-distributed/internal/darray"
)

// ApplyFunc is the calling convention for user-supplied operator actions:
// it receives a (possibly lazy) array and returns a lazy result of the
// complementary dimension.
type ApplyFunc func(*darray.Array) (*darray.Array, error)

// Custom is a leaf operator defined in terms of user-specified actions. It
// is the extension point of the algebra: primitive operators (derivatives,
// convolutions, explicit matrices) plug in here and become composable.
type Custom struct {
	base
	forwardFn ApplyFunc
	adjointFn ApplyFunc
	batchFn   ApplyFunc
}

var _ Operator = (*Custom)(nil)

// Option configures a Custom operator at construction.
type Option func(*Custom)

// WithAdjoint supplies the adjoint action. Without it, ApplyAdjoint fails
// at call time.
func WithAdjoint(fn ApplyFunc) Option {
	return func(c *Custom) { c.adjointFn = fn }
}

// WithBatch supplies a dedicated batched-forward action. Without it,
// ApplyBatch falls back to applying the forward action per column.
func WithBatch(fn ApplyFunc) Option {
	return func(c *Custom) { c.batchFn = fn }
}

// WithDType sets the element type tag (default Complex128).
func WithDType(dt darray.DataType) Option {
	return func(c *Custom) { c.dtype = dt }
}

// WithExplicit marks the operator as backed by an explicit matrix.
func WithExplicit() Option {
	return func(c *Custom) { c.explicit = true }
}

// WithEval sets the eager-evaluation flag pair.
func WithEval(f Flags) Option {
	return func(c *Custom) { c.eval = f }
}

// WithConvert sets the input-conversion flag pair.
func WithConvert(f Flags) Option {
	return func(c *Custom) { c.convert = f }
}

// New creates a Custom operator from a forward action and options. The
// forward action is mandatory; adjoint and batch are optional.
func New(shape Shape, forward ApplyFunc, opts ...Option) (*Custom, error) {
	if forward == nil {
		return nil, ErrForwardUndefined
	}
	c := newCustom(shape, forward, nil, nil, darray.Complex128, false, Flags{}, Flags{})
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func newCustom(shape Shape, forward, adjoint, batch ApplyFunc, dtype darray.DataType, explicit bool, eval, convert Flags) *Custom {
	c := &Custom{
		forwardFn: forward,
		adjointFn: adjoint,
		batchFn:   batch,
	}
	c.init(c, c, shape, dtype, explicit, eval, convert)
	return c
}

func (c *Custom) forward(x *darray.Array) (*darray.Array, error) {
	if c.forwardFn == nil {
		return nil, ErrForwardUndefined
	}
	return c.forwardFn(x)
}

func (c *Custom) adjoint(x *darray.Array) (*darray.Array, error) {
	if c.adjointFn == nil {
		return nil, ErrAdjointUndefined
	}
	return c.adjointFn(x)
}

func (c *Custom) batch(x *darray.Array) (*darray.Array, error) {
	if c.batchFn != nil {
		return c.batchFn(x)
	}
	return c.columnwise(x, c.forward)
}

// Adjoint returns a Custom with the shape transposed, the forward and
// adjoint actions swapped, and the convert flags swapped in order, since
// the two directions trade roles. Dtype and eval flags carry over. Without
// an adjoint handle the generic envelope swap applies instead, so the
// missing direction keeps failing at call time.
func (c *Custom) Adjoint() Operator {
	if c.adjointFn == nil {
		return c.base.Adjoint()
	}
	return newCustom(c.shape.Swap(), c.adjointFn, c.forwardFn, nil,
		c.dtype, c.explicit, c.eval, c.convert.Swap())
}
