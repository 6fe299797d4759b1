// Package tensor implements the multi-dimensional array value type the
// execution kernel operates on: a flat contiguous buffer plus a shape and
// stride sequence.
package tensor

import (
	"errors"
	"fmt"

	"github.com/zerfoo/float16"
	"github.com/zerfoo/float8"
)

// Numeric constrains the scalar element types a Tensor can hold to a single
// floating-point type per tensor; float16 and float8 are carried because the
// kernel's arithmetic layer (numeric.Arithmetic) already abstracts over them,
// using the float16/float8 libraries' own functions where they exist and a
// float32 round-trip otherwise.
type Numeric interface {
	~float32 | ~float64 | float16.Float16 | float8.Float8
}

// Tensor is an n-dimensional array of a generic floating-point type T: a
// flat contiguous buffer (data) together with a shape and a stride
// sequence of equal length. Reshape and Transpose produce views that share
// the buffer rather than copying it.
type Tensor[T Numeric] struct {
	shape   []int
	strides []int
	data    []T
	isView  bool
}

// New creates a new Tensor with the given shape. If data is nil, a
// zero-filled buffer is allocated. A nil or empty shape produces a rank-0
// scalar tensor with a single element.
func New[T Numeric](shape []int, data []T) (*Tensor[T], error) {
	if len(shape) == 0 {
		switch {
		case len(data) > 1:
			return nil, errors.New("cannot create 0-dimensional tensor with more than one data element")
		case len(data) == 0:
			data = make([]T, 1)
		}

		return &Tensor[T]{shape: []int{}, strides: []int{}, data: data}, nil
	}

	size := 1
	for _, dim := range shape {
		if dim < 1 {
			return nil, fmt.Errorf("invalid shape dimension: %d; every dimension must be >= 1", dim)
		}

		size *= dim
	}

	if data == nil {
		data = make([]T, size)
	}

	if len(data) != size {
		return nil, fmt.Errorf("data length (%d) does not match tensor size (%d)", len(data), size)
	}

	return &Tensor[T]{shape: shape, strides: rowMajorStrides(shape), data: data}, nil
}

// Scalar allocates a rank-0 tensor holding a single value.
func Scalar[T Numeric](v T) *Tensor[T] {
	t, _ := New[T](nil, []T{v})

	return t
}

// rowMajorStrides computes the row-major stride sequence for shape: the
// stride of dimension i is the product of shape[i+1:].
func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	stride := 1

	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= shape[i]
	}

	return strides
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor[T]) Shape() []int {
	out := make([]int, len(t.shape))
	copy(out, t.shape)

	return out
}

// Strides returns a copy of the tensor's strides, in element units.
func (t *Tensor[T]) Strides() []int {
	out := make([]int, len(t.strides))
	copy(out, t.strides)

	return out
}

// Rank returns the number of dimensions of the tensor.
func (t *Tensor[T]) Rank() int { return len(t.shape) }

// Dims is an alias for Rank.
func (t *Tensor[T]) Dims() int { return len(t.shape) }

// Length returns the total number of elements in the tensor.
func (t *Tensor[T]) Length() int {
	if len(t.shape) == 0 {
		return 1
	}

	n := 1
	for _, d := range t.shape {
		n *= d
	}

	return n
}

// Size is an alias for Length.
func (t *Tensor[T]) Size() int { return t.Length() }

// Data returns the tensor's underlying contiguous buffer. For views
// produced by Reshape the buffer is shared with the source tensor; callers
// must not assume exclusive ownership of a view's buffer.
func (t *Tensor[T]) Data() []T { return t.data }

// IsView reports whether this tensor shares its buffer with another tensor.
func (t *Tensor[T]) IsView() bool { return t.isView }

// SetData replaces the tensor's underlying buffer without checking its
// length against the shape.
func (t *Tensor[T]) SetData(data []T) { t.data = data }

// SetShape replaces the tensor's shape without recomputing strides; callers
// must also call SetStrides to keep the two in sync.
func (t *Tensor[T]) SetShape(shape []int) { t.shape = shape }

// SetStrides replaces the tensor's strides.
func (t *Tensor[T]) SetStrides(strides []int) { t.strides = strides }

// Fill sets every element of the tensor's buffer to value.
func (t *Tensor[T]) Fill(value T) {
	for i := range t.data {
		t.data[i] = value
	}
}

// ShapeEquals reports whether two tensors have identical shapes.
func (t *Tensor[T]) ShapeEquals(other *Tensor[T]) bool {
	return SameShape(t.shape, other.shape)
}

// Each applies fn to every element of the tensor's buffer, in buffer order.
func (t *Tensor[T]) Each(fn func(T)) {
	for _, v := range t.data {
		fn(v)
	}
}

// Copy returns a deep copy of the tensor: a freshly allocated buffer (not a
// view) with the same shape, strides, and values.
func (t *Tensor[T]) Copy() *Tensor[T] {
	data := make([]T, len(t.data))
	copy(data, t.data)

	return &Tensor[T]{
		shape:   t.Shape(),
		strides: t.Strides(),
		data:    data,
	}
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor(shape=%v, data=%v)", t.shape, t.data)
}
