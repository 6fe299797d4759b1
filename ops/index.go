package ops

import (
	"fmt"

	"github.com/vectorlane/tensorkernel/kernel"
	"github.com/vectorlane/tensorkernel/numeric"
	"github.com/vectorlane/tensorkernel/tensor"
)

// ArgMax returns, for every position along the non-dim axes of a, the
// index along dim holding the largest value. Ties keep the earliest index.
func ArgMax[T tensor.Numeric](arith numeric.Arithmetic[T], a *tensor.Tensor[T], dim int) (*tensor.IntTensor, error) {
	if a == nil {
		return nil, fmt.Errorf("ops: argMax operand must not be nil")
	}

	shape := a.Shape()
	axis := dim
	if axis < 0 {
		axis += len(shape)
	}

	if axis < 0 || axis >= len(shape) {
		return nil, fmt.Errorf("ops: argMax axis %d out of bounds for rank %d", dim, len(shape))
	}

	outShape := make([]int, 0, len(shape)-1)

	for i, d := range shape {
		if i != axis {
			outShape = append(outShape, d)
		}
	}

	if len(outShape) == 0 {
		outShape = []int{1}
	}

	out, err := tensor.NewInt(outShape, nil)
	if err != nil {
		return nil, err
	}

	update := func(accVal, value T, accIdx, i int) (T, int) {
		if i == 0 || arith.GreaterThan(value, accVal) {
			return value, i
		}

		return accVal, accIdx
	}

	op := kernel.Op[T]{
		Family:      kernel.Index,
		IndexKind:   kernel.IndexReduceKind,
		A:           a,
		IntDst:      out,
		IndexUpdate: update,
	}

	if err := kernel.ExecAtDim(op, axis); err != nil {
		return nil, err
	}

	return out, nil
}

// ArgSet writes src's values into dst at the positions named by indices
// along dim: dst's coordinate along dim is indices[i] for every i in src,
// with the remaining coordinates equal to i's non-dim coordinates. Works
// for arbitrary rank, not just rank 2.
func ArgSet[T tensor.Numeric](dst *tensor.Tensor[T], indices *tensor.IntTensor, src *tensor.Tensor[T], dim int) error {
	if dst == nil || indices == nil || src == nil {
		return fmt.Errorf("ops: argSet requires dst, indices, and src")
	}

	op := kernel.Op[T]{
		Family:    kernel.Index,
		IndexKind: kernel.IndexSetKind,
		Dst:       dst,
		Indices:   indices,
		Src:       src,
	}

	return kernel.ExecAtDim(op, dim)
}
