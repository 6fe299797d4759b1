package kernel

import (
	"errors"

	"github.com/vectorlane/tensorkernel/tensor"
)

// execReduction runs a reduction over op.A, masked by op.ReducedDims, into
// op.Dst (already allocated with either the keepDims=true shape, reduced
// axes sized 1, or the keepDims=false shape, reduced axes dropped). It traverses the
// full input shape once; for each element it computes the destination index
// by substituting stride 0 for every reduced axis, so all input elements
// sharing the same non-reduced coordinates accumulate into the same cell.
func execReduction[T tensor.Numeric](op Op[T]) error {
	if op.A == nil || op.Dst == nil {
		return errors.New("kernel: reduction op requires A and Dst")
	}

	if op.Update == nil {
		return errors.New("kernel: reduction op requires Update")
	}

	shape := op.A.Shape()
	if len(op.ReducedDims) != len(shape) {
		return errors.New("kernel: reduction op requires ReducedDims of the same rank as A")
	}

	dData := op.Dst.Data()
	touched := make([]bool, len(dData))

	aStride := op.A.Strides()

	// Destination strides, indexed by input axis: reduced axes carry stride
	// 0 so every value along that axis maps to the same destination cell.
	dstAxisStride := make([]int, len(shape))
	dstStrides := op.Dst.Strides()

	if len(dstStrides) == len(shape) {
		// Dst keeps the input's full rank (keepDims=true, reduced axes sized
		// 1): index each axis directly, zeroing reduced ones regardless of
		// what Strides() reports for a size-1 axis.
		for i := range shape {
			if op.ReducedDims[i] {
				dstAxisStride[i] = 0
			} else {
				dstAxisStride[i] = dstStrides[i]
			}
		}
	} else {
		// Dst carries only the surviving axes (keepDims=false): walk them in
		// order as each non-reduced input axis is encountered.
		di := 0

		for i := range shape {
			if op.ReducedDims[i] {
				dstAxisStride[i] = 0
			} else {
				dstAxisStride[i] = dstStrides[di]
				di++
			}
		}
	}

	aData := op.A.Data()
	body := op.ReduceBody
	update := op.Update

	rank := len(shape)
	counters := make([]int, rank)
	aPtr, dPtr := 0, 0
	total := product(shape)

	for n := 0; n < total; n++ {
		val := aData[aPtr]
		if body != nil {
			val = body(val)
		}

		// The first value that lands in a destination cell seeds it directly
		// rather than folding against a scalar identity: reduced axes may sit
		// anywhere in the shape, so a single Initial value broadcast to every
		// cell would contaminate partial reductions (min/max have no identity
		// safe for an arbitrary value range).
		if touched[dPtr] {
			dData[dPtr] = update(dData[dPtr], val)
		} else {
			dData[dPtr] = val
			touched[dPtr] = true
		}

		for axis := rank - 1; axis >= 0; axis-- {
			counters[axis]++
			aPtr += aStride[axis]
			dPtr += dstAxisStride[axis]

			if counters[axis] < shape[axis] {
				break
			}

			counters[axis] = 0
			aPtr -= aStride[axis] * shape[axis]
			dPtr -= dstAxisStride[axis] * shape[axis]
		}
	}

	if op.ShouldPostProcess {
		if op.PostProcess == nil {
			return errors.New("kernel: reduction op with ShouldPostProcess requires PostProcess")
		}

		n := tensor.ReducedCount(shape, op.ReducedDims)
		for i := range dData {
			dData[i] = op.PostProcess(dData[i], n)
		}
	}

	return nil
}
