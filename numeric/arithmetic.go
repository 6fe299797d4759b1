// Package numeric abstracts the scalar arithmetic used by the tensor kernel
// over the family of floating-point element types it supports.
package numeric

// Arithmetic defines the scalar operations the execution kernel needs in
// order to stay agnostic to the concrete floating-point type it is
// operating on. Every kernel body/update/finalize callback is built on top
// of one of these methods.
type Arithmetic[T any] interface {
	// Basic binary operations
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Div(a, b T) T

	// Activation functions used by the façade (no autodiff, so no
	// gradient variants are needed here).
	Tanh(x T) T
	Sigmoid(x T) T
	ReLU(x T) T

	// Conversion from standard types
	FromFloat32(f float32) T
	FromFloat64(f float64) T
	One() T
	Zero() T

	// IsZero checks if a value is zero.
	IsZero(v T) bool

	// Abs returns the absolute value of x.
	Abs(x T) T
	// Neg returns -x.
	Neg(x T) T
	// Sum returns the sum of all elements in the slice.
	Sum(s []T) T
	// Exp returns e**x.
	Exp(x T) T
	// Log returns the natural logarithm of x.
	Log(x T) T
	// Pow returns base**exponent.
	Pow(base, exponent T) T

	// Sqrt returns the square root of x.
	Sqrt(x T) T

	// Sin returns the sine of x (radians).
	Sin(x T) T
	// Cos returns the cosine of x (radians).
	Cos(x T) T

	// GreaterThan returns true if a is greater than b.
	GreaterThan(a, b T) bool

	// Min and Max back the reduction walker's min/max reducers.
	Min(a, b T) T
	Max(a, b T) T
}
