package tensor

import "fmt"

// BroadcastShapes computes the resulting shape of a broadcast operation
// between two shapes, following NumPy-style right-aligned broadcasting.
func BroadcastShapes(a, b []int) (shape []int, broadcastA, broadcastB bool, err error) {
	lenA := len(a)
	lenB := len(b)
	maxLen := lenA

	if lenB > maxLen {
		maxLen = lenB
	}

	result := make([]int, maxLen)

	for i := 1; i <= maxLen; i++ {
		dimA := 1
		if i <= lenA {
			dimA = a[lenA-i]
		}

		dimB := 1
		if i <= lenB {
			dimB = b[lenB-i]
		}

		if dimA != dimB && dimA != 1 && dimB != 1 {
			return nil, false, false, fmt.Errorf("shapes %v and %v are not broadcast compatible (dimension %d: %d vs %d)", a, b, i, dimA, dimB)
		}

		if dimA > dimB {
			result[maxLen-i] = dimA
		} else {
			result[maxLen-i] = dimB
		}
	}

	return result, !SameShape(a, result), !SameShape(b, result), nil
}

// GetBroadcastedShape left-pads src with 1s so its rank equals the rank of
// target.
func GetBroadcastedShape(src, target []int) []int {
	if len(src) >= len(target) {
		out := make([]int, len(src))
		copy(out, src)

		return out
	}

	out := make([]int, len(target))
	pad := len(target) - len(src)

	for i := range out {
		if i < pad {
			out[i] = 1
		} else {
			out[i] = src[i-pad]
		}
	}

	return out
}

// BroadcastIndex computes the linear index into a shape-shape tensor
// corresponding to a linear index into a tensor of outputShape, given
// whether that operand participates in broadcasting at all.
func BroadcastIndex(index int, shape, outputShape []int, broadcast bool) int {
	if !broadcast {
		return index
	}

	outputStrides := rowMajorStrides(outputShape)
	originalStrides := rowMajorStrides(shape)
	originalIndex := 0

	for i := 0; i < len(outputShape); i++ {
		coord := (index / outputStrides[i]) % outputShape[i]
		shapeI := len(shape) - 1 - (len(outputShape) - 1 - i)

		if shapeI >= 0 && shape[shapeI] != 1 {
			originalIndex += coord * originalStrides[shapeI]
		}
	}

	return originalIndex
}

// SameShape checks if two shapes are identical.
func SameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// ComputeOffset computes the linear buffer offset for a multi-index given a
// shape and stride sequence: offset = Σ indices[i] × strides[i].
func ComputeOffset(indices, shape, strides []int) (int, error) {
	offset := 0

	for i, idx := range indices {
		if idx < 0 || idx >= shape[i] {
			return 0, fmt.Errorf("index %d is out of bounds for dimension %d with size %d", idx, i, shape[i])
		}

		offset += idx * strides[i]
	}

	return offset, nil
}
