package darray

import "errors"

// Errors returned by array construction and graph building.
var (
	ErrShapeMismatch  = errors.New("arrays have mismatched shapes")
	ErrBadReshape     = errors.New("reshape changes the element count")
	ErrRank           = errors.New("expected 1-d or 2-d array")
	ErrNotMaterial    = errors.New("array is not materialized; call Compute first")
	ErrColumnRange    = errors.New("column index out of range")
	ErrElementCount   = errors.New("data length does not match shape")
	ErrEmptyColumnSet = errors.New("no columns given")
)
