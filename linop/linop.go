// Copyright 2026 The PyLops-distributed Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linop provides the public API for the distributed linear-operator
// algebra.
//
// Operators are built from user-supplied actions with New and composed with
// Add, Mul, Scale, Pow and the Conj/Adjoint transforms, without ever
// materializing a dense matrix. Per-operator flags decide whether applying
// an operator converts its input to the distributed representation
// (WithConvert) and whether the lazy result is computed eagerly (WithEval).
//
// Example:
//
//	A, _ := linop.New(linop.Shape{n, n}, forward, linop.WithAdjoint(adjoint))
//	B, _ := linop.Scale(2, A)
//	C, _ := linop.Add(A, B)        // C = A + 2A
//	y, _ := C.Adjoint().Apply(x)   // lazy unless eval flags say otherwise
package linop

import (
	"github.com/skyer30232909/pylops-distributed/internal/linop"
)

// Operator is the capability every member of the algebra presents.
type Operator = linop.Operator

// Custom is a leaf operator defined by user-supplied actions.
type Custom = linop.Custom

// Flags is a per-direction (forward, adjoint) pair of policy booleans.
type Flags = linop.Flags

// Shape is an operator shape: output dimension first.
type Shape = linop.Shape

// ApplyFunc is the calling convention for user-supplied actions.
type ApplyFunc = linop.ApplyFunc

// Option configures a Custom operator at construction.
type Option = linop.Option

// Construction errors.
var (
	ErrShapeMismatch = linop.ErrShapeMismatch
	ErrEvalMismatch  = linop.ErrEvalMismatch
	ErrBadExponent   = linop.ErrBadExponent
	ErrNotOperator   = linop.ErrNotOperator
)

// Application errors.
var (
	ErrForwardUndefined = linop.ErrForwardUndefined
	ErrAdjointUndefined = linop.ErrAdjointUndefined
	ErrRank             = linop.ErrRank
	ErrScalarOperand    = linop.ErrScalarOperand
)

// New creates a Custom operator from a mandatory forward action and options.
func New(shape Shape, forward ApplyFunc, opts ...Option) (*Custom, error) {
	return linop.New(shape, forward, opts...)
}

// Add builds the operator A + B.
func Add(a, b Operator) (Operator, error) {
	return linop.Add(a, b)
}

// Mul builds the operator composition A * B (apply B first, then A).
func Mul(a, b Operator) (Operator, error) {
	return linop.Mul(a, b)
}

// Scale builds the operator alpha * A.
func Scale(alpha complex128, a Operator) (Operator, error) {
	return linop.Scale(alpha, a)
}

// Pow builds the operator A ** p for square A and non-negative p.
// Construction disables A's own eval flags; see the internal Pow
// documentation for the aliasing consequences.
func Pow(a Operator, p int) (Operator, error) {
	return linop.Pow(a, p)
}

// Dot dispatches multiplication syntax on the operand kind: operator,
// scalar, vector or matrix.
func Dot(op Operator, x any) (any, error) {
	return linop.Dot(op, x)
}

// MatMul is matrix-multiply syntax; scalar operands are rejected with
// ErrScalarOperand.
func MatMul(op Operator, x any) (any, error) {
	return linop.MatMul(op, x)
}

// Option constructors, re-exported from the internal package.
var (
	WithAdjoint  = linop.WithAdjoint
	WithBatch    = linop.WithBatch
	WithDType    = linop.WithDType
	WithExplicit = linop.WithExplicit
	WithEval     = linop.WithEval
	WithConvert  = linop.WithConvert
)
