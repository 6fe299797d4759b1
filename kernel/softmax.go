package kernel

import (
	"errors"
	"fmt"

	"github.com/vectorlane/tensorkernel/tensor"
)

// execSoftmax is the softmax special op: along SoftmaxAxis it subtracts the
// per-row maximum (for numerical stability), exponentiates, sums, and
// divides — all without decomposing into separate exp/reduce/div kernel
// calls, since softmax-along-dim is itself a special op per the kernel's
// family taxonomy.
func execSoftmax[T tensor.Numeric](op Op[T]) error {
	if op.A == nil || op.Dst == nil {
		return errors.New("kernel: softmax op requires A and Dst")
	}

	if op.Ops == nil {
		return errors.New("kernel: softmax op requires Ops")
	}

	shape := op.A.Shape()
	axis := op.SoftmaxAxis

	if axis < 0 {
		axis += len(shape)
	}

	if axis < 0 || axis >= len(shape) {
		return fmt.Errorf("kernel: axis %d out of bounds for rank %d", axis, len(shape))
	}

	if !tensor.SameShape(op.Dst.Shape(), shape) {
		return fmt.Errorf("kernel: softmax destination shape %v does not match input shape %v", op.Dst.Shape(), shape)
	}

	ops := op.Ops
	aStride := op.A.Strides()
	dstStride := rowMajorStrides(shape)

	axisSize := shape[axis]
	axisStrideA := aStride[axis]
	axisStrideD := dstStride[axis]

	outerShape := make([]int, len(shape))
	copy(outerShape, shape)
	outerShape[axis] = 1

	aData, dData := op.A.Data(), op.Dst.Data()
	rank := len(shape)
	counters := make([]int, rank)
	aPtr, dPtr := 0, 0
	total := product(outerShape)

	for n := 0; n < total; n++ {
		maxVal := aData[aPtr]

		for i, p := 1, aPtr+axisStrideA; i < axisSize; i, p = i+1, p+axisStrideA {
			if ops.GreaterThan(aData[p], maxVal) {
				maxVal = aData[p]
			}
		}

		sum := ops.Zero()

		for i, p, dp := 0, aPtr, dPtr; i < axisSize; i, p, dp = i+1, p+axisStrideA, dp+axisStrideD {
			e := ops.Exp(ops.Sub(aData[p], maxVal))
			dData[dp] = e
			sum = ops.Add(sum, e)
		}

		for i, dp := 0, dPtr; i < axisSize; i, dp = i+1, dp+axisStrideD {
			dData[dp] = ops.Div(dData[dp], sum)
		}

		for ax := rank - 1; ax >= 0; ax-- {
			counters[ax]++
			aPtr += aStride[ax]
			dPtr += dstStride[ax]

			if counters[ax] < outerShape[ax] {
				break
			}

			counters[ax] = 0
			aPtr -= aStride[ax] * outerShape[ax]
			dPtr -= dstStride[ax] * outerShape[ax]
		}
	}

	return nil
}
