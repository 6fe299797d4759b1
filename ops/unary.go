package ops

import (
	"fmt"

	"github.com/vectorlane/tensorkernel/kernel"
	"github.com/vectorlane/tensorkernel/numeric"
	"github.com/vectorlane/tensorkernel/tensor"
)

func transform[T tensor.Numeric](a *tensor.Tensor[T], body func(T) T, dst ...*tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if a == nil {
		return nil, fmt.Errorf("ops: operand must not be nil")
	}

	out, err := destOrNew(a.Shape(), dst...)
	if err != nil {
		return nil, err
	}

	err = kernel.Exec(kernel.Op[T]{
		Family:    kernel.Transform,
		A:         a,
		Dst:       out,
		UnaryBody: body,
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Sin computes sin(x) elementwise.
func Sin[T tensor.Numeric](arith numeric.Arithmetic[T], a *tensor.Tensor[T], dst ...*tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return transform(a, arith.Sin, dst...)
}

// Cos computes cos(x) elementwise.
func Cos[T tensor.Numeric](arith numeric.Arithmetic[T], a *tensor.Tensor[T], dst ...*tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return transform(a, arith.Cos, dst...)
}

// Exp computes e**x elementwise.
func Exp[T tensor.Numeric](arith numeric.Arithmetic[T], a *tensor.Tensor[T], dst ...*tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return transform(a, arith.Exp, dst...)
}

// Log computes the natural logarithm elementwise.
func Log[T tensor.Numeric](arith numeric.Arithmetic[T], a *tensor.Tensor[T], dst ...*tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return transform(a, arith.Log, dst...)
}

// Sqrt computes the square root elementwise.
func Sqrt[T tensor.Numeric](arith numeric.Arithmetic[T], a *tensor.Tensor[T], dst ...*tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return transform(a, arith.Sqrt, dst...)
}

// Abs computes the absolute value elementwise.
func Abs[T tensor.Numeric](arith numeric.Arithmetic[T], a *tensor.Tensor[T], dst ...*tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return transform(a, arith.Abs, dst...)
}

// Neg computes -x elementwise.
func Neg[T tensor.Numeric](arith numeric.Arithmetic[T], a *tensor.Tensor[T], dst ...*tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return transform(a, arith.Neg, dst...)
}

// ReLU computes max(0, x) elementwise.
func ReLU[T tensor.Numeric](arith numeric.Arithmetic[T], a *tensor.Tensor[T], dst ...*tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return transform(a, arith.ReLU, dst...)
}

// Sigmoid computes 1/(1+e**-x) elementwise.
func Sigmoid[T tensor.Numeric](arith numeric.Arithmetic[T], a *tensor.Tensor[T], dst ...*tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return transform(a, arith.Sigmoid, dst...)
}

// Tanh computes the hyperbolic tangent elementwise.
func Tanh[T tensor.Numeric](arith numeric.Arithmetic[T], a *tensor.Tensor[T], dst ...*tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return transform(a, arith.Tanh, dst...)
}

// Set fills dst's every element with value. dst must already be allocated
// (Set has no input tensor to infer a shape from).
func Set[T tensor.Numeric](dst *tensor.Tensor[T], value T) error {
	if dst == nil {
		return fmt.Errorf("ops: set requires a destination tensor")
	}

	return kernel.Exec(kernel.Op[T]{
		Family:      kernel.Transform,
		Dst:         dst,
		IsSet:       true,
		ScalarConst: value,
	})
}
