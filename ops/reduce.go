package ops

import (
	"fmt"

	"github.com/vectorlane/tensorkernel/kernel"
	"github.com/vectorlane/tensorkernel/numeric"
	"github.com/vectorlane/tensorkernel/tensor"
)

func reduce[T tensor.Numeric](
	a *tensor.Tensor[T],
	axes []int,
	keepDims bool,
	update func(acc, val T) T,
	post func(acc T, n int) T,
	dst ...*tensor.Tensor[T],
) (*tensor.Tensor[T], error) {
	if a == nil {
		return nil, fmt.Errorf("ops: reduce operand must not be nil")
	}

	shape := a.Shape()

	reduced, err := tensor.GetReducedDims(shape, axes)
	if err != nil {
		return nil, err
	}

	outShape := tensor.ReduceShape(shape, reduced, keepDims)

	out, err := destOrNew(outShape, dst...)
	if err != nil {
		return nil, err
	}

	op := kernel.Op[T]{
		Family:      kernel.Reduction,
		A:           a,
		Dst:         out,
		ReducedDims: reduced,
		Update:      update,
	}

	if post != nil {
		op.ShouldPostProcess = true
		op.PostProcess = post
	}

	if err := kernel.Exec(op); err != nil {
		return nil, err
	}

	return out, nil
}

// ReduceSum sums a along axes (all axes if axes is empty).
func ReduceSum[T tensor.Numeric](arith numeric.Arithmetic[T], a *tensor.Tensor[T], axes []int, keepDims bool, dst ...*tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return reduce(a, axes, keepDims, arith.Add, nil, dst...)
}

// ReduceMean computes the arithmetic mean of a along axes.
func ReduceMean[T tensor.Numeric](arith numeric.Arithmetic[T], a *tensor.Tensor[T], axes []int, keepDims bool, dst ...*tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	post := func(acc T, n int) T {
		return arith.Div(acc, arith.FromFloat64(float64(n)))
	}

	return reduce(a, axes, keepDims, arith.Add, post, dst...)
}

// ReduceMin computes the minimum of a along axes.
func ReduceMin[T tensor.Numeric](arith numeric.Arithmetic[T], a *tensor.Tensor[T], axes []int, keepDims bool, dst ...*tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return reduce(a, axes, keepDims, arith.Min, nil, dst...)
}

// ReduceMax computes the maximum of a along axes.
func ReduceMax[T tensor.Numeric](arith numeric.Arithmetic[T], a *tensor.Tensor[T], axes []int, keepDims bool, dst ...*tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return reduce(a, axes, keepDims, arith.Max, nil, dst...)
}

// ReduceProd computes the product of a along axes.
func ReduceProd[T tensor.Numeric](arith numeric.Arithmetic[T], a *tensor.Tensor[T], axes []int, keepDims bool, dst ...*tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return reduce(a, axes, keepDims, arith.Mul, nil, dst...)
}
