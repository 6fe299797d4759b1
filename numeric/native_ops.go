package numeric

import "math"

// Float32Ops provides the implementation of the Arithmetic interface for the float32 type.
type Float32Ops struct{}

// Add performs element-wise addition.
func (ops Float32Ops) Add(a, b float32) float32 { return a + b }

// Sub performs element-wise subtraction.
func (ops Float32Ops) Sub(a, b float32) float32 { return a - b }

// Mul performs element-wise multiplication.
func (ops Float32Ops) Mul(a, b float32) float32 { return a * b }

// Div performs element-wise division. Division by zero propagates the
// IEEE-754 result (±Inf or NaN) rather than raising.
func (ops Float32Ops) Div(a, b float32) float32 { return a / b }

// Tanh computes the hyperbolic tangent of x.
func (ops Float32Ops) Tanh(x float32) float32 {
	return float32(math.Tanh(float64(x)))
}

// Sigmoid computes the sigmoid function of x.
func (ops Float32Ops) Sigmoid(x float32) float32 {
	return 1.0 / (1.0 + float32(math.Exp(float64(-x))))
}

// ReLU computes the Rectified Linear Unit function.
func (ops Float32Ops) ReLU(x float32) float32 {
	if x > 0 {
		return x
	}

	return 0
}

// FromFloat32 converts a float32 to a float32.
func (ops Float32Ops) FromFloat32(f float32) float32 { return f }

// FromFloat64 converts a float64 to a float32.
func (ops Float32Ops) FromFloat64(f float64) float32 { return float32(f) }

// One returns a float32 with value 1.
func (ops Float32Ops) One() float32 { return 1.0 }

// Zero returns a float32 with value 0.
func (ops Float32Ops) Zero() float32 { return 0.0 }

// IsZero checks if the given float32 value is zero.
func (ops Float32Ops) IsZero(v float32) bool { return v == 0 }

// Exp computes the exponential of x.
func (ops Float32Ops) Exp(x float32) float32 { return float32(math.Exp(float64(x))) }

// Log computes the natural logarithm of x.
func (ops Float32Ops) Log(x float32) float32 { return float32(math.Log(float64(x))) }

// Pow computes base raised to the power of exponent.
func (ops Float32Ops) Pow(base, exponent float32) float32 {
	return float32(math.Pow(float64(base), float64(exponent)))
}

// Sqrt computes the square root of x.
func (ops Float32Ops) Sqrt(x float32) float32 { return float32(math.Sqrt(float64(x))) }

// Sin computes the sine of x.
func (ops Float32Ops) Sin(x float32) float32 { return float32(math.Sin(float64(x))) }

// Cos computes the cosine of x.
func (ops Float32Ops) Cos(x float32) float32 { return float32(math.Cos(float64(x))) }

// Abs computes the absolute value of x.
func (ops Float32Ops) Abs(x float32) float32 {
	if x < 0 {
		return -x
	}

	return x
}

// Neg computes -x.
func (ops Float32Ops) Neg(x float32) float32 { return -x }

// Sum computes the sum of elements in a slice.
func (ops Float32Ops) Sum(s []float32) float32 {
	var sum float32
	for _, v := range s {
		sum += v
	}

	return sum
}

// GreaterThan checks if a is greater than b.
func (ops Float32Ops) GreaterThan(a, b float32) bool { return a > b }

// Min returns the smaller of a and b.
func (ops Float32Ops) Min(a, b float32) float32 {
	if a < b {
		return a
	}

	return b
}

// Max returns the larger of a and b.
func (ops Float32Ops) Max(a, b float32) float32 {
	if a > b {
		return a
	}

	return b
}

// Float64Ops provides the implementation of the Arithmetic interface for the float64 type.
type Float64Ops struct{}

// Add performs element-wise addition.
func (ops Float64Ops) Add(a, b float64) float64 { return a + b }

// Sub performs element-wise subtraction.
func (ops Float64Ops) Sub(a, b float64) float64 { return a - b }

// Mul performs element-wise multiplication.
func (ops Float64Ops) Mul(a, b float64) float64 { return a * b }

// Div performs element-wise division. Division by zero propagates the
// IEEE-754 result (±Inf or NaN) rather than raising.
func (ops Float64Ops) Div(a, b float64) float64 { return a / b }

// Tanh computes the hyperbolic tangent of x.
func (ops Float64Ops) Tanh(x float64) float64 { return math.Tanh(x) }

// Sigmoid computes the sigmoid function of x.
func (ops Float64Ops) Sigmoid(x float64) float64 { return 1.0 / (1.0 + math.Exp(-x)) }

// ReLU computes the Rectified Linear Unit function.
func (ops Float64Ops) ReLU(x float64) float64 {
	if x > 0 {
		return x
	}

	return 0
}

// FromFloat32 converts a float32 to a float64.
func (ops Float64Ops) FromFloat32(f float32) float64 { return float64(f) }

// FromFloat64 converts a float64 to a float64.
func (ops Float64Ops) FromFloat64(f float64) float64 { return f }

// One returns a float64 with value 1.
func (ops Float64Ops) One() float64 { return 1.0 }

// Zero returns a float64 with value 0.
func (ops Float64Ops) Zero() float64 { return 0.0 }

// IsZero checks if the given float64 value is zero.
func (ops Float64Ops) IsZero(v float64) bool { return v == 0 }

// Exp computes the exponential of x.
func (ops Float64Ops) Exp(x float64) float64 { return math.Exp(x) }

// Log computes the natural logarithm of x.
func (ops Float64Ops) Log(x float64) float64 { return math.Log(x) }

// Pow computes base raised to the power of exponent.
func (ops Float64Ops) Pow(base, exponent float64) float64 { return math.Pow(base, exponent) }

// Sqrt computes the square root of x.
func (ops Float64Ops) Sqrt(x float64) float64 { return math.Sqrt(x) }

// Sin computes the sine of x.
func (ops Float64Ops) Sin(x float64) float64 { return math.Sin(x) }

// Cos computes the cosine of x.
func (ops Float64Ops) Cos(x float64) float64 { return math.Cos(x) }

// Abs computes the absolute value of x.
func (ops Float64Ops) Abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}

// Neg computes -x.
func (ops Float64Ops) Neg(x float64) float64 { return -x }

// Sum computes the sum of elements in a slice.
func (ops Float64Ops) Sum(s []float64) float64 {
	var sum float64
	for _, v := range s {
		sum += v
	}

	return sum
}

// GreaterThan checks if a is greater than b.
func (ops Float64Ops) GreaterThan(a, b float64) bool { return a > b }

// Min returns the smaller of a and b.
func (ops Float64Ops) Min(a, b float64) float64 {
	if a < b {
		return a
	}

	return b
}

// Max returns the larger of a and b.
func (ops Float64Ops) Max(a, b float64) float64 {
	if a > b {
		return a
	}

	return b
}
