package ops

import (
	"fmt"

	"github.com/vectorlane/tensorkernel/kernel"
	"github.com/vectorlane/tensorkernel/numeric"
	"github.com/vectorlane/tensorkernel/tensor"
)

// MatMul computes the matrix product of two rank-2 tensors, with optional
// transpose of either operand applied before multiplying.
func MatMul[T tensor.Numeric](a, b *tensor.Tensor[T], transposeA, transposeB bool, dst ...*tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("ops: matmul operands must not be nil")
	}

	aShape, bShape := a.Shape(), b.Shape()
	if len(aShape) != 2 || len(bShape) != 2 {
		return nil, fmt.Errorf("ops: matmul requires rank-2 operands, got %v and %v", aShape, bShape)
	}

	m, k := aShape[0], aShape[1]
	if transposeA {
		m, k = aShape[1], aShape[0]
	}

	k2, n := bShape[0], bShape[1]
	if transposeB {
		k2, n = bShape[1], bShape[0]
	}

	if k != k2 {
		return nil, fmt.Errorf("ops: matmul inner dimensions do not match: %d != %d", k, k2)
	}

	out, err := destOrNew([]int{m, n}, dst...)
	if err != nil {
		return nil, err
	}

	err = kernel.Exec(kernel.Op[T]{
		Family:     kernel.Special,
		Special:    kernel.MatMulKind,
		A:          a,
		B:          b,
		Dst:        out,
		TransposeA: transposeA,
		TransposeB: transposeB,
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Conv2D computes a stride-(strideH,strideW), no-padding NCHW convolution
// of image with weight ([OutC,InC,kh,kw]), implemented as im2col + matmul.
func Conv2D[T tensor.Numeric](image, weight *tensor.Tensor[T], strideH, strideW int) (*tensor.Tensor[T], error) {
	return kernel.Conv2D(image, weight, strideH, strideW)
}

// MaxPool2D applies a no-padding max pool over an NCHW image and returns
// both the pooled tensor and the within-window winner indices needed to
// route gradients back in MaxPoolGrad2D.
func MaxPool2D[T tensor.Numeric](arith numeric.Arithmetic[T], image *tensor.Tensor[T], kh, kw, strideH, strideW int) (*tensor.Tensor[T], *tensor.IntTensor, error) {
	return kernel.MaxPool2D(image, kh, kw, strideH, strideW, arith)
}

// MaxPoolGrad2D scatters pooled-output gradients back to the positions that
// won each pooling window, per winners (as returned by MaxPool2D).
func MaxPoolGrad2D[T tensor.Numeric](arith numeric.Arithmetic[T], dOut *tensor.Tensor[T], winners *tensor.IntTensor, imageShape []int, kh, kw, strideH, strideW int) (*tensor.Tensor[T], error) {
	return kernel.MaxPoolGrad2D(dOut, winners, imageShape, kh, kw, strideH, strideW, arith)
}
