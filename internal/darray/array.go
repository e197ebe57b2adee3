package darray

import "fmt"

// DefaultChunkSize is the evaluation chunk granularity applied by FromArray
// when no explicit chunk size is given.
const DefaultChunkSize = 4096

// Array is an immutable handle over a deferred task graph. Building
// arithmetic on an Array only extends the graph; Compute materializes it.
// Handles may be shared and used concurrently: the graph node behind them
// is evaluated at most once.
type Array struct {
	shape Shape
	dtype DataType
	chunk int // elements per evaluation chunk; 0 marks a raw, undistributed array
	node  *node
}

// Option configures array construction.
type Option func(*Array)

// WithChunkSize sets the evaluation chunk granularity.
func WithChunkSize(n int) Option {
	return func(a *Array) {
		if n > 0 {
			a.chunk = n
		}
	}
}

// WithDType overrides the inferred data type tag.
func WithDType(dt DataType) Option {
	return func(a *Array) {
		a.dtype = dt
	}
}

// FromSlice creates a raw (undistributed) materialized array from data. The
// slice is copied. The data type defaults to Complex128 and is metadata
// only; no casting happens at runtime.
func FromSlice(data []complex128, shape Shape, opts ...Option) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, got %d",
			ErrElementCount, shape, shape.NumElements(), len(data))
	}

	buf := make([]complex128, len(data))
	copy(buf, data)

	a := &Array{
		shape: shape.Clone(),
		dtype: Complex128,
		node:  newLeaf(buf),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// FromArray converts an array into the distributed representation, the
// equivalent of re-chunking a raw array. Already-distributed arrays are
// returned unchanged; the graph node is always shared, never copied.
func FromArray(a *Array, opts ...Option) *Array {
	if a.chunk > 0 {
		return a
	}
	out := &Array{
		shape: a.shape,
		dtype: a.dtype,
		chunk: DefaultChunkSize,
		node:  a.node,
	}
	for _, opt := range opts {
		opt(out)
	}
	return out
}

// Shape returns the array's shape.
func (a *Array) Shape() Shape {
	return a.shape
}

// DType returns the array's data type tag.
func (a *Array) DType() DataType {
	return a.dtype
}

// Rank returns the number of dimensions.
func (a *Array) Rank() int {
	return a.shape.Rank()
}

// NumElements returns the total number of elements.
func (a *Array) NumElements() int {
	return a.shape.NumElements()
}

// ChunkSize returns the evaluation chunk granularity (0 for raw arrays).
func (a *Array) ChunkSize() int {
	return a.chunk
}

// IsDistributed reports whether the array carries chunked-evaluation
// metadata (set by FromArray).
func (a *Array) IsDistributed() bool {
	return a.chunk > 0
}

// IsMaterialized reports whether the array's graph node already holds a
// concrete result.
func (a *Array) IsMaterialized() bool {
	return a.node.isDone()
}

// Data returns the materialized payload.
// Panics if the array has not been computed yet.
func (a *Array) Data() []complex128 {
	if !a.node.isDone() {
		panic(ErrNotMaterial)
	}
	return a.node.data
}

// derive builds a lazy successor array over the given node.
func (a *Array) derive(shape Shape, dtype DataType, n *node) *Array {
	return &Array{shape: shape, dtype: dtype, chunk: a.chunk, node: n}
}

// Add returns the lazy elementwise sum a + other.
func (a *Array) Add(other *Array) (*Array, error) {
	if !a.shape.Equal(other.shape) {
		return nil, fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, a.shape, other.shape)
	}
	out := a.derive(a.shape, promote(a.dtype, other.dtype), &node{kind: opAdd, deps: []*node{a.node, other.node}})
	if out.chunk < other.chunk {
		out.chunk = other.chunk
	}
	return out, nil
}

// Sub returns the lazy elementwise difference a - other.
func (a *Array) Sub(other *Array) (*Array, error) {
	if !a.shape.Equal(other.shape) {
		return nil, fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, a.shape, other.shape)
	}
	out := a.derive(a.shape, promote(a.dtype, other.dtype), &node{kind: opSub, deps: []*node{a.node, other.node}})
	if out.chunk < other.chunk {
		out.chunk = other.chunk
	}
	return out, nil
}

// Scale returns the lazy scalar product alpha * a.
func (a *Array) Scale(alpha complex128) *Array {
	dtype := a.dtype
	if imag(alpha) != 0 {
		dtype = dtype.Complex()
	}
	return a.derive(a.shape, dtype, &node{kind: opScale, alpha: alpha, deps: []*node{a.node}})
}

// Conj returns the lazy elementwise complex conjugate.
func (a *Array) Conj() *Array {
	return a.derive(a.shape, a.dtype, &node{kind: opConj, deps: []*node{a.node}})
}

// Copy returns a lazy copy with a fresh graph node, detaching the result
// from later memoization of a's node.
func (a *Array) Copy() *Array {
	return a.derive(a.shape, a.dtype, &node{kind: opCopy, deps: []*node{a.node}})
}

// Reshape returns a view of the same graph node under a new shape. The
// element count must be preserved.
func (a *Array) Reshape(shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != a.NumElements() {
		return nil, fmt.Errorf("%w: %v (%d elements) to %v (%d elements)",
			ErrBadReshape, a.shape, a.NumElements(), shape, shape.NumElements())
	}
	return a.derive(shape.Clone(), a.dtype, a.node), nil
}

// Column extracts column j of a 2-d array as a lazy vector.
func (a *Array) Column(j int) (*Array, error) {
	if a.Rank() != 2 {
		return nil, fmt.Errorf("%w: rank %d", ErrRank, a.Rank())
	}
	if j < 0 || j >= a.shape[1] {
		return nil, fmt.Errorf("%w: %d of %d", ErrColumnRange, j, a.shape[1])
	}
	n := &node{kind: opColumn, col: j, ncols: a.shape[1], deps: []*node{a.node}}
	return a.derive(Shape{a.shape[0]}, a.dtype, n), nil
}

// FromColumns assembles rank-1 arrays of equal length into a lazy 2-d array
// with one column per input.
func FromColumns(cols []*Array) (*Array, error) {
	if len(cols) == 0 {
		return nil, ErrEmptyColumnSet
	}
	rows := cols[0].NumElements()
	deps := make([]*node, len(cols))
	dtype := cols[0].dtype
	chunk := cols[0].chunk
	for i, c := range cols {
		if c.Rank() != 1 {
			return nil, fmt.Errorf("%w: column %d has rank %d", ErrRank, i, c.Rank())
		}
		if c.NumElements() != rows {
			return nil, fmt.Errorf("%w: column %d has %d elements, want %d",
				ErrShapeMismatch, i, c.NumElements(), rows)
		}
		deps[i] = c.node
		dtype = promote(dtype, c.dtype)
		if c.chunk > chunk {
			chunk = c.chunk
		}
	}
	return &Array{
		shape: Shape{rows, len(cols)},
		dtype: dtype,
		chunk: chunk,
		node:  &node{kind: opPack, deps: deps},
	}, nil
}

// promote combines the data types of two operands.
func promote(a, b DataType) DataType {
	out := a
	if b.Size() > a.Size() && !(a.IsComplex() && !b.IsComplex()) {
		out = b
	}
	if a.IsComplex() || b.IsComplex() {
		out = out.Complex()
	}
	return out
}
