package tensor

import (
	"errors"
	"fmt"
)

// At retrieves the value at the specified multi-index.
func (t *Tensor[T]) At(indices ...int) (T, error) {
	var zero T

	if t.Rank() == 0 {
		if len(indices) != 0 {
			return zero, errors.New("0-dimensional tensor cannot be accessed with indices")
		}

		return t.data[0], nil
	}

	if len(indices) != t.Rank() {
		return zero, fmt.Errorf("number of indices (%d) does not match tensor rank (%d)", len(indices), t.Rank())
	}

	offset, err := ComputeOffset(indices, t.shape, t.strides)
	if err != nil {
		return zero, err
	}

	return t.data[offset], nil
}

// Set updates the value at the specified multi-index. In-place mutation
// through a view is permitted; Set does not allocate.
func (t *Tensor[T]) Set(value T, indices ...int) error {
	if t.Rank() == 0 {
		if len(indices) != 0 {
			return errors.New("0-dimensional tensor cannot be accessed with indices")
		}

		t.data[0] = value

		return nil
	}

	if len(indices) != t.Rank() {
		return fmt.Errorf("number of indices (%d) does not match tensor rank (%d)", len(indices), t.Rank())
	}

	offset, err := ComputeOffset(indices, t.shape, t.strides)
	if err != nil {
		return err
	}

	t.data[offset] = value

	return nil
}
