package kernel

import (
	"errors"
	"fmt"

	"github.com/vectorlane/tensorkernel/tensor"
)

// execPairwise runs a two-operand elementwise op, broadcasting both operands
// to op.Dst's shape. Dst must already be allocated with the broadcast
// shape; the façade owns shape inference.
func execPairwise[T tensor.Numeric](op Op[T]) error {
	if op.A == nil || op.B == nil || op.Dst == nil {
		return errors.New("kernel: pairwise op requires A, B, and Dst")
	}

	if op.BinaryBody == nil {
		return errors.New("kernel: pairwise op requires BinaryBody")
	}

	if err := validateBroadcastDest(op.A, op.B, op.Dst); err != nil {
		return err
	}

	outShape := op.Dst.Shape()
	rank := len(outShape)

	aShapeP, aStridesP := padShapeStrides(op.A.Shape(), op.A.Strides(), rank)
	bShapeP, bStridesP := padShapeStrides(op.B.Shape(), op.B.Strides(), rank)

	aStride := broadcastStrides(aShapeP, aStridesP, outShape)
	bStride := broadcastStrides(bShapeP, bStridesP, outShape)
	dstStride := rowMajorStrides(outShape)

	aData, bData, dData := op.A.Data(), op.B.Data(), op.Dst.Data()
	body := op.BinaryBody

	switch rank {
	case 0:
		dData[0] = body(aData[0], bData[0])
	case 1:
		for i, aP, bP, dP := 0, 0, 0, 0; i < outShape[0]; i, aP, bP, dP = i+1, aP+aStride[0], bP+bStride[0], dP+dstStride[0] {
			dData[dP] = body(aData[aP], bData[bP])
		}
	case 2:
		aRow, bRow, dRow := 0, 0, 0
		for i := 0; i < outShape[0]; i++ {
			aP, bP, dP := aRow, bRow, dRow
			for j := 0; j < outShape[1]; j++ {
				dData[dP] = body(aData[aP], bData[bP])
				aP += aStride[1]
				bP += bStride[1]
				dP += dstStride[1]
			}

			aRow += aStride[0]
			bRow += bStride[0]
			dRow += dstStride[0]
		}
	default:
		walkPairwiseN(outShape, aStride, bStride, dstStride, aData, bData, dData, body)
	}

	return nil
}

// walkPairwiseN is the general rank-N telescoping walker: it visits every
// index of outShape exactly once in row-major order while maintaining three
// linear pointers updated by per-axis deltas, with no per-element division.
func walkPairwiseN[T any](outShape, aStride, bStride, dstStride []int, aData, bData, dData []T, body func(a, b T) T) {
	rank := len(outShape)
	counters := make([]int, rank)

	aPtr, bPtr, dPtr := 0, 0, 0
	total := product(outShape)

	for n := 0; n < total; n++ {
		dData[dPtr] = body(aData[aPtr], bData[bPtr])

		for axis := rank - 1; axis >= 0; axis-- {
			counters[axis]++
			aPtr += aStride[axis]
			bPtr += bStride[axis]
			dPtr += dstStride[axis]

			if counters[axis] < outShape[axis] {
				break
			}

			counters[axis] = 0
			aPtr -= aStride[axis] * outShape[axis]
			bPtr -= bStride[axis] * outShape[axis]
			dPtr -= dstStride[axis] * outShape[axis]
		}
	}
}

func validateBroadcastDest[T tensor.Numeric](a, b, dst *tensor.Tensor[T]) error {
	outShape, _, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		return err
	}

	if !tensor.SameShape(dst.Shape(), outShape) {
		return fmt.Errorf("kernel: destination shape %v does not match broadcast shape %v", dst.Shape(), outShape)
	}

	return nil
}
