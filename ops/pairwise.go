// Package ops is the public façade: named operations that infer result
// shape, optionally reuse a caller-supplied destination, build the
// appropriate kernel.Op, and submit it to the dispatcher. Callers never
// construct a kernel.Op by hand.
package ops

import (
	"fmt"

	"github.com/vectorlane/tensorkernel/kernel"
	"github.com/vectorlane/tensorkernel/numeric"
	"github.com/vectorlane/tensorkernel/tensor"
)

// destOrNew returns dst[0] if provided (after validating its shape matches
// shape), or allocates a fresh tensor of shape otherwise. Every façade
// function threads a trailing variadic dst through this so callers can
// reuse buffers instead of allocating on every call.
func destOrNew[T tensor.Numeric](shape []int, dst ...*tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if len(dst) == 0 || dst[0] == nil {
		return tensor.New[T](shape, nil)
	}

	if !tensor.SameShape(dst[0].Shape(), shape) {
		return nil, fmt.Errorf("ops: destination shape %v does not match expected shape %v", dst[0].Shape(), shape)
	}

	return dst[0], nil
}

func pairwise[T tensor.Numeric](a, b *tensor.Tensor[T], body func(x, y T) T, dst ...*tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("ops: operands must not be nil")
	}

	outShape, _, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		return nil, err
	}

	out, err := destOrNew(outShape, dst...)
	if err != nil {
		return nil, err
	}

	err = kernel.Exec(kernel.Op[T]{
		Family:     kernel.Pairwise,
		A:          a,
		B:          b,
		Dst:        out,
		BinaryBody: body,
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Add computes a+b elementwise, broadcasting as needed.
func Add[T tensor.Numeric](ops numeric.Arithmetic[T], a, b *tensor.Tensor[T], dst ...*tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return pairwise(a, b, ops.Add, dst...)
}

// Sub computes a-b elementwise, broadcasting as needed.
func Sub[T tensor.Numeric](ops numeric.Arithmetic[T], a, b *tensor.Tensor[T], dst ...*tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return pairwise(a, b, ops.Sub, dst...)
}

// Mul computes a*b elementwise, broadcasting as needed.
func Mul[T tensor.Numeric](ops numeric.Arithmetic[T], a, b *tensor.Tensor[T], dst ...*tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return pairwise(a, b, ops.Mul, dst...)
}

// Div computes a/b elementwise, broadcasting as needed.
func Div[T tensor.Numeric](ops numeric.Arithmetic[T], a, b *tensor.Tensor[T], dst ...*tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return pairwise(a, b, ops.Div, dst...)
}

// AddN sums an arbitrary non-empty list of same-shaped tensors elementwise.
// The first operand seeds the destination; the rest accumulate into it via
// repeated pairwise Add. All operands must share tensors[0]'s shape — no
// broadcasting across the list.
func AddN[T tensor.Numeric](arith numeric.Arithmetic[T], tensors []*tensor.Tensor[T], dst ...*tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if len(tensors) == 0 {
		return nil, fmt.Errorf("ops: addN requires at least one tensor")
	}

	if tensors[0] == nil {
		return nil, fmt.Errorf("ops: addN operand %d is nil", 0)
	}

	shape := tensors[0].Shape()

	for i, t := range tensors {
		if t == nil {
			return nil, fmt.Errorf("ops: addN operand %d is nil", i)
		}

		if !tensor.SameShape(t.Shape(), shape) {
			return nil, fmt.Errorf("ops: addN operand %d has shape %v, expected %v", i, t.Shape(), shape)
		}
	}

	out, err := destOrNew(shape, dst...)
	if err != nil {
		return nil, err
	}

	copy(out.Data(), tensors[0].Data())

	for _, t := range tensors[1:] {
		if _, err := Add(arith, out, t, out); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Tile repeats t reps[i] times along each axis i. reps must have the same
// length as t's rank.
func Tile[T tensor.Numeric](t *tensor.Tensor[T], reps []int) (*tensor.Tensor[T], error) {
	shape := t.Shape()
	if len(reps) != len(shape) {
		return nil, fmt.Errorf("ops: tile requires %d repetition counts, got %d", len(shape), len(reps))
	}

	cur := t

	for axis, r := range reps {
		if r <= 0 {
			return nil, fmt.Errorf("ops: tile repetition count for axis %d must be positive, got %d", axis, r)
		}

		if r == 1 {
			continue
		}

		next, err := repeatAxis(cur, axis, r)
		if err != nil {
			return nil, err
		}

		cur = next
	}

	return cur, nil
}

// repeatAxis concatenates r copies of t along axis by copying strided
// slices into a freshly allocated contiguous destination.
func repeatAxis[T tensor.Numeric](t *tensor.Tensor[T], axis, r int) (*tensor.Tensor[T], error) {
	shape := t.Shape()
	outShape := make([]int, len(shape))
	copy(outShape, shape)
	outShape[axis] *= r

	out, err := tensor.New[T](outShape, nil)
	if err != nil {
		return nil, err
	}

	srcStride := t.Strides()
	dstStride := out.Strides()
	srcData := t.Data()
	dstData := out.Data()

	axisSize := shape[axis]
	rank := len(shape)
	counters := make([]int, rank)
	sPtr, dPtr := 0, 0
	total := tensor.Product(shape)

	for n := 0; n < total; n++ {
		for rep := 0; rep < r; rep++ {
			dOff := dPtr + rep*axisSize*dstStride[axis]
			dstData[dOff] = srcData[sPtr]
		}

		for ax := rank - 1; ax >= 0; ax-- {
			counters[ax]++
			sPtr += srcStride[ax]
			dPtr += dstStride[ax]

			if counters[ax] < shape[ax] {
				break
			}

			counters[ax] = 0
			sPtr -= srcStride[ax] * shape[ax]
			dPtr -= dstStride[ax] * shape[ax]
		}
	}

	return out, nil
}
