package kernel

import (
	"errors"
	"fmt"

	"github.com/vectorlane/tensorkernel/tensor"
)

// execTransform runs a single-operand elementwise op. Input and output share
// the same shape; no broadcasting is involved, so operand strides are used
// verbatim. A Set op (IsSet) has no input and writes ScalarConst to every
// destination cell.
func execTransform[T tensor.Numeric](op Op[T]) error {
	if op.Dst == nil {
		return errors.New("kernel: transform op requires Dst")
	}

	if op.IsSet {
		dData := op.Dst.Data()
		for i := range dData {
			dData[i] = op.ScalarConst
		}

		return nil
	}

	if op.A == nil {
		return errors.New("kernel: transform op requires A")
	}

	if op.UnaryBody == nil {
		return errors.New("kernel: transform op requires UnaryBody")
	}

	if !tensor.SameShape(op.A.Shape(), op.Dst.Shape()) {
		return fmt.Errorf("kernel: transform destination shape %v does not match input shape %v", op.Dst.Shape(), op.A.Shape())
	}

	shape := op.A.Shape()
	aStride := op.A.Strides()
	dstStride := rowMajorStrides(shape)

	aData, dData := op.A.Data(), op.Dst.Data()
	body := op.UnaryBody

	switch len(shape) {
	case 0:
		dData[0] = body(aData[0])
	case 1:
		for i, aP, dP := 0, 0, 0; i < shape[0]; i, aP, dP = i+1, aP+aStride[0], dP+dstStride[0] {
			dData[dP] = body(aData[aP])
		}
	case 2:
		aRow, dRow := 0, 0
		for i := 0; i < shape[0]; i++ {
			aP, dP := aRow, dRow
			for j := 0; j < shape[1]; j++ {
				dData[dP] = body(aData[aP])
				aP += aStride[1]
				dP += dstStride[1]
			}

			aRow += aStride[0]
			dRow += dstStride[0]
		}
	default:
		walkTransformN(shape, aStride, dstStride, aData, dData, body)
	}

	return nil
}

// walkTransformN is the rank-N telescoping walker for a single operand.
func walkTransformN[T any](shape, aStride, dstStride []int, aData, dData []T, body func(T) T) {
	rank := len(shape)
	counters := make([]int, rank)

	aPtr, dPtr := 0, 0
	total := product(shape)

	for n := 0; n < total; n++ {
		dData[dPtr] = body(aData[aPtr])

		for axis := rank - 1; axis >= 0; axis-- {
			counters[axis]++
			aPtr += aStride[axis]
			dPtr += dstStride[axis]

			if counters[axis] < shape[axis] {
				break
			}

			counters[axis] = 0
			aPtr -= aStride[axis] * shape[axis]
			dPtr -= dstStride[axis] * shape[axis]
		}
	}
}
