package kernel

import (
	"errors"
	"fmt"

	"github.com/vectorlane/tensorkernel/tensor"
)

// execIndexReduce implements execAtDim for an index-reduction op (argmax and
// friends): it enumerates every multi-index of op.A except axis dim, and for
// each one scans along dim threading (accum, accumIndex) through
// op.IndexUpdate. The final accumIndex is written into op.IntDst at the
// multi-index formed by the remaining (non-dim) coordinates: IntDst has A's
// shape with axis dim removed.
func execIndexReduce[T tensor.Numeric](op Op[T], dim int) error {
	if op.A == nil || op.IntDst == nil {
		return errors.New("kernel: index-reduce op requires A and IntDst")
	}

	if op.IndexUpdate == nil {
		return errors.New("kernel: index-reduce op requires IndexUpdate")
	}

	shape := op.A.Shape()
	if dim < 0 {
		dim += len(shape)
	}

	if dim < 0 || dim >= len(shape) {
		return fmt.Errorf("kernel: axis %d out of bounds for rank %d", dim, len(shape))
	}

	aStride := op.A.Strides()
	dstStrides := op.IntDst.Strides()

	// Destination strides indexed by input axis: dim itself never advances
	// the destination pointer (its coordinate is fixed at 0).
	dstAxisStride := make([]int, len(shape))
	di := 0

	for i := range shape {
		if i == dim {
			dstAxisStride[i] = 0
		} else {
			dstAxisStride[i] = dstStrides[di]
			di++
		}
	}

	aData := op.A.Data()
	dData := op.IntDst.Data()
	axisStride := aStride[dim]
	axisSize := shape[dim]

	outerShape := make([]int, len(shape))
	copy(outerShape, shape)
	outerShape[dim] = 1 // the inner scan below visits dim directly

	rank := len(shape)
	counters := make([]int, rank)
	aPtr, dPtr := 0, 0
	total := product(outerShape)

	for n := 0; n < total; n++ {
		var accum T

		accumIndex := 0
		p := aPtr

		for i := 0; i < axisSize; i++ {
			accum, accumIndex = op.IndexUpdate(accum, aData[p], accumIndex, i)
			p += axisStride
		}

		dData[dPtr] = accumIndex

		for axis := rank - 1; axis >= 0; axis-- {
			counters[axis]++
			aPtr += aStride[axis]
			dPtr += dstAxisStride[axis]

			if counters[axis] < outerShape[axis] {
				break
			}

			counters[axis] = 0
			aPtr -= aStride[axis] * outerShape[axis]
			dPtr -= dstAxisStride[axis] * outerShape[axis]
		}
	}

	return nil
}

// execIndexSet implements execAtDim for the index-set (scatter) op: for each
// position i along dim in op.Src, it writes op.Src's value at i into op.Dst
// at the position whose coordinate along dim is op.Indices[i] and whose
// remaining coordinates equal i's non-dim coordinates. Generalized to
// arbitrary rank (not hard-coded to rank 2, axis 0).
func execIndexSet[T tensor.Numeric](op Op[T], dim int) error {
	if op.Src == nil || op.Indices == nil || op.Dst == nil {
		return errors.New("kernel: index-set op requires Src, Indices, and Dst")
	}

	srcShape := op.Src.Shape()
	if dim < 0 {
		dim += len(srcShape)
	}

	if dim < 0 || dim >= len(srcShape) {
		return fmt.Errorf("kernel: axis %d out of bounds for rank %d", dim, len(srcShape))
	}

	if !tensor.SameShape(op.Indices.Shape(), srcShape) {
		return fmt.Errorf("kernel: indices shape %v must match src shape %v", op.Indices.Shape(), srcShape)
	}

	if op.Dst.Rank() != len(srcShape) {
		return fmt.Errorf("kernel: index-set requires dst rank %d to match src rank %d", op.Dst.Rank(), len(srcShape))
	}

	srcStride := op.Src.Strides()
	dstStrides := op.Dst.Strides()

	dstAxisStride := make([]int, len(srcShape))
	for i := range srcShape {
		if i == dim {
			dstAxisStride[i] = dstStrides[dim]
		} else {
			dstAxisStride[i] = dstStrides[i]
		}
	}

	srcData := op.Src.Data()
	idxData := op.Indices.Data()
	dstData := op.Dst.Data()

	rank := len(srcShape)
	counters := make([]int, rank)
	sPtr, basePtr := 0, 0

	// basePtr tracks the destination offset as if every axis coordinate,
	// including dim, were 0; the target write adds indices[i]*dstAxisStride[dim].
	total := product(srcShape)

	for n := 0; n < total; n++ {
		target := basePtr + idxData[sPtr]*dstAxisStride[dim]
		dstData[target] = srcData[sPtr]

		for axis := rank - 1; axis >= 0; axis-- {
			counters[axis]++
			sPtr += srcStride[axis]

			if axis != dim {
				basePtr += dstAxisStride[axis]
			}

			if counters[axis] < srcShape[axis] {
				break
			}

			counters[axis] = 0
			sPtr -= srcStride[axis] * srcShape[axis]

			if axis != dim {
				basePtr -= dstAxisStride[axis] * srcShape[axis]
			}
		}
	}

	return nil
}
