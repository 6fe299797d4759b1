package tensor

import (
	"errors"
	"fmt"
)

// Reshape returns a new Tensor with a different shape that shares the same
// underlying buffer. The new shape must have the same total number of
// elements as the original tensor (one dimension may be -1 to be inferred).
// This is a view: it does not copy data.
func (t *Tensor[T]) Reshape(newShape []int) (*Tensor[T], error) {
	shapeCopy := make([]int, len(newShape))
	copy(shapeCopy, newShape)

	newSize := 1
	inferredDim := -1

	for i, dim := range shapeCopy {
		switch {
		case dim > 0:
			newSize *= dim
		case dim == -1:
			if inferredDim != -1 {
				return nil, errors.New("only one dimension can be inferred")
			}

			inferredDim = i
		default:
			return nil, fmt.Errorf("invalid shape dimension: %d; must be positive or -1", dim)
		}
	}

	if inferredDim != -1 {
		if newSize == 0 || t.Size()%newSize != 0 {
			return nil, fmt.Errorf("cannot infer dimension for size %d and new size %d", t.Size(), newSize)
		}

		shapeCopy[inferredDim] = t.Size() / newSize
		newSize = t.Size()
	}

	if newSize != t.Size() {
		return nil, fmt.Errorf("cannot reshape tensor of size %d into shape %v with size %d", t.Size(), shapeCopy, newSize)
	}

	return &Tensor[T]{
		shape:   shapeCopy,
		strides: rowMajorStrides(shapeCopy),
		data:    t.data,
		isView:  true,
	}, nil
}

// Transpose returns a view of t with axes permuted according to perm: the
// returned tensor's dimension i is t's dimension perm[i]. Shape and strides
// are permuted in lockstep; the buffer is not moved.
func (t *Tensor[T]) Transpose(perm []int) (*Tensor[T], error) {
	if len(perm) != t.Rank() {
		return nil, fmt.Errorf("permutation length %d must match tensor rank %d", len(perm), t.Rank())
	}

	seen := make([]bool, len(perm))
	newShape := make([]int, len(perm))
	newStrides := make([]int, len(perm))

	for i, axis := range perm {
		if axis < 0 || axis >= t.Rank() {
			return nil, fmt.Errorf("axis %d out of bounds for rank %d permutation", axis, t.Rank())
		}

		if seen[axis] {
			return nil, fmt.Errorf("axis %d repeated in permutation %v", axis, perm)
		}

		seen[axis] = true
		newShape[i] = t.shape[axis]
		newStrides[i] = t.strides[axis]
	}

	return &Tensor[T]{
		shape:   newShape,
		strides: newStrides,
		data:    t.data,
		isView:  true,
	}, nil
}
