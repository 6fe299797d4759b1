package tensor

import "fmt"

// IntTensor is a flat, contiguous integer array sharing Tensor's shape and
// stride model. It exists to carry index data — argmax results, scatter
// targets, gather indices — which sit outside the floating-point Numeric
// constraint but still need the same shape/offset bookkeeping.
type IntTensor struct {
	shape   []int
	strides []int
	data    []int
}

// NewInt creates a new IntTensor with the given shape. If data is nil, a
// zero-filled buffer is allocated.
func NewInt(shape []int, data []int) (*IntTensor, error) {
	size := Product(shape)

	if data == nil {
		data = make([]int, size)
	}

	if len(data) != size {
		return nil, fmt.Errorf("data length (%d) does not match tensor size (%d)", len(data), size)
	}

	for _, dim := range shape {
		if dim < 1 {
			return nil, fmt.Errorf("invalid shape dimension: %d; every dimension must be >= 1", dim)
		}
	}

	return &IntTensor{shape: shape, strides: rowMajorStrides(shape), data: data}, nil
}

func (t *IntTensor) Shape() []int {
	out := make([]int, len(t.shape))
	copy(out, t.shape)

	return out
}

func (t *IntTensor) Strides() []int {
	out := make([]int, len(t.strides))
	copy(out, t.strides)

	return out
}

func (t *IntTensor) Rank() int { return len(t.shape) }

func (t *IntTensor) Size() int { return len(t.data) }

func (t *IntTensor) Data() []int { return t.data }

func (t *IntTensor) At(indices ...int) (int, error) {
	offset, err := ComputeOffset(indices, t.shape, t.strides)
	if err != nil {
		return 0, err
	}

	return t.data[offset], nil
}

func (t *IntTensor) Set(value int, indices ...int) error {
	offset, err := ComputeOffset(indices, t.shape, t.strides)
	if err != nil {
		return err
	}

	t.data[offset] = value

	return nil
}

// Reshape returns an IntTensor with a new shape over the same element
// count, reusing the same backing buffer. IntTensor carries no strided-view
// concept, so this is a pure reinterpretation: it is only valid when the
// source is already contiguous in row-major order (true of any IntTensor
// built by NewInt or returned by Reshape/Transpose below).
func (t *IntTensor) Reshape(newShape []int) (*IntTensor, error) {
	if Product(newShape) != len(t.data) {
		return nil, fmt.Errorf("cannot reshape int tensor of size %d into shape %v", len(t.data), newShape)
	}

	return NewInt(newShape, t.data)
}

// Transpose returns a new IntTensor with axes permuted according to perm:
// the returned tensor's dimension i is t's dimension perm[i]. Unlike
// Tensor.Transpose this materializes the permuted data immediately rather
// than sharing a strided view, since IntTensor has no view machinery.
func (t *IntTensor) Transpose(perm []int) (*IntTensor, error) {
	if len(perm) != t.Rank() {
		return nil, fmt.Errorf("permutation length %d must match tensor rank %d", len(perm), t.Rank())
	}

	seen := make([]bool, len(perm))
	newShape := make([]int, len(perm))

	for i, axis := range perm {
		if axis < 0 || axis >= t.Rank() {
			return nil, fmt.Errorf("axis %d out of bounds for rank %d permutation", axis, t.Rank())
		}

		if seen[axis] {
			return nil, fmt.Errorf("axis %d repeated in permutation %v", axis, perm)
		}

		seen[axis] = true
		newShape[i] = t.shape[axis]
	}

	out, err := NewInt(newShape, nil)
	if err != nil {
		return nil, err
	}

	srcIdx := make([]int, t.Rank())
	dstIdx := make([]int, len(perm))

	for n := 0; n < len(t.data); n++ {
		for i, axis := range perm {
			dstIdx[i] = srcIdx[axis]
		}

		srcOffset, _ := ComputeOffset(srcIdx, t.shape, t.strides)
		dstOffset, _ := ComputeOffset(dstIdx, out.shape, out.strides)
		out.data[dstOffset] = t.data[srcOffset]

		for axis := t.Rank() - 1; axis >= 0; axis-- {
			srcIdx[axis]++
			if srcIdx[axis] < t.shape[axis] {
				break
			}

			srcIdx[axis] = 0
		}
	}

	return out, nil
}
