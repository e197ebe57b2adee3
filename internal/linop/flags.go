// Package linop implements a composable algebra of linear operators over
// lazily evaluated distributed arrays. Operators are immutable after
// construction; composing them (Add, Mul, Scale, Pow, Conj, Adjoint) builds
// expression trees without materializing matrices, and per-operator flags
// decide whether applying an operator converts its input to the distributed
// representation and whether it triggers computation of the lazy result.
package linop

import "fmt"

// Flags is a per-direction pair of booleans attached to an operator. Used
// for two independent policies: eager evaluation (trigger Compute on the
// result) and input conversion (re-chunk the input into the distributed
// representation before applying).
type Flags struct {
	Forward bool
	Adjoint bool
}

// Swap exchanges the forward and adjoint entries. Used when an adjoint
// operator is built from a forward one and the two directions trade roles.
func (f Flags) Swap() Flags {
	return Flags{Forward: f.Adjoint, Adjoint: f.Forward}
}

// Shape is an operator shape: output dimension first, input dimension
// second, matching the forward-map convention y = A x with len(y) =
// shape[0] and len(x) = shape[1].
type Shape [2]int

// Rows returns the output dimension of the forward map.
func (s Shape) Rows() int { return s[0] }

// Cols returns the input dimension of the forward map.
func (s Shape) Cols() int { return s[1] }

// Swap returns the transposed shape.
func (s Shape) Swap() Shape { return Shape{s[1], s[0]} }

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool { return s == other }

// IsSquare reports whether input and output dimensions match.
func (s Shape) IsSquare() bool { return s[0] == s[1] }

// String returns the shape in (rows, cols) form.
func (s Shape) String() string { return fmt.Sprintf("(%d, %d)", s[0], s[1]) }
