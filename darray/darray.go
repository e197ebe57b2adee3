// Copyright 2026 The PyLops-distributed Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package darray provides the public API for chunked, lazily evaluated
// arrays backing distributed linear operators.
//
// An Array is an immutable handle over a deferred task graph: arithmetic on
// arrays only assembles the graph, and Compute materializes it, evaluating
// elementwise kernels chunk-parallel. Shared graph nodes are evaluated at
// most once.
//
// Example:
//
//	x, _ := darray.FromSlice(data, darray.Shape{n})
//	x = darray.FromArray(x)        // distributed representation
//	y := x.Scale(2).Conj()         // lazy graph, nothing computed
//	y = y.Compute()                // blocking materialization
//	_ = y.Data()
package darray

import (
	"github.com/skyer30232909/pylops-distributed/internal/darray"
)

// Array is a handle over a deferred task graph.
type Array = darray.Array

// Shape represents the dimensions of an array (rank 1 or 2).
type Shape = darray.Shape

// DataType represents the element type tag of an array or operator.
type DataType = darray.DataType

// Data type constants.
const (
	Float32    DataType = darray.Float32
	Float64    DataType = darray.Float64
	Complex64  DataType = darray.Complex64
	Complex128 DataType = darray.Complex128
)

// Option configures array construction.
type Option = darray.Option

// DefaultChunkSize is the chunk granularity applied by FromArray when no
// explicit chunk size is given.
const DefaultChunkSize = darray.DefaultChunkSize

// Errors returned by array construction and graph building.
var (
	ErrShapeMismatch = darray.ErrShapeMismatch
	ErrBadReshape    = darray.ErrBadReshape
	ErrRank          = darray.ErrRank
	ErrNotMaterial   = darray.ErrNotMaterial
	ErrColumnRange   = darray.ErrColumnRange
	ErrElementCount  = darray.ErrElementCount
	ErrEmptyColumns  = darray.ErrEmptyColumnSet
)

// FromSlice creates a raw materialized array from a copy of data.
func FromSlice(data []complex128, shape Shape, opts ...Option) (*Array, error) {
	return darray.FromSlice(data, shape, opts...)
}

// FromArray converts an array into the distributed (chunked) representation.
func FromArray(a *Array, opts ...Option) *Array {
	return darray.FromArray(a, opts...)
}

// FromColumns assembles rank-1 arrays into a lazy 2-d array, one column per
// input.
func FromColumns(cols []*Array) (*Array, error) {
	return darray.FromColumns(cols)
}

// Compute materializes an array's task graph, blocking until every
// dependent node has been evaluated.
func Compute(a *Array) *Array {
	return darray.Compute(a)
}

// WithChunkSize sets the evaluation chunk granularity.
func WithChunkSize(n int) Option {
	return darray.WithChunkSize(n)
}

// WithDType overrides the inferred data type tag.
func WithDType(dt DataType) Option {
	return darray.WithDType(dt)
}
