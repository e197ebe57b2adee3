// Package darray provides chunked, lazily evaluated arrays for distributed
// linear operators. An Array is a handle over a deferred task graph; no
// arithmetic runs until Compute materializes the result.
package darray

// DataType represents runtime element-type information for arrays and
// operators. It is construction metadata: payloads are held uniformly as
// complex128 and are never cast at runtime.
type DataType int

// Supported data types.
const (
	Float32 DataType = iota
	Float64
	Complex64
	Complex128
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Float64, Complex64:
		return 8
	case Complex128:
		return 16
	default:
		panic("unknown data type")
	}
}

// IsComplex reports whether the data type has an imaginary part.
func (dt DataType) IsComplex() bool {
	return dt == Complex64 || dt == Complex128
}

// Complex returns the complex data type of matching precision. Used when
// composition introduces a complex scalar over a real-typed operator.
func (dt DataType) Complex() DataType {
	switch dt {
	case Float32, Complex64:
		return Complex64
	case Float64, Complex128:
		return Complex128
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}
