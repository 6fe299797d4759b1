package kernel

import (
	"fmt"

	"github.com/vectorlane/tensorkernel/numeric"
	"github.com/vectorlane/tensorkernel/tensor"
)

// OutSize computes the no-padding output extent along one spatial axis:
// out = (in - kernel) / stride + 1.
func OutSize(in, kernel, stride int) int {
	return (in-kernel)/stride + 1
}

// Im2Col unfolds a 4-D NCHW image into a 2-D matrix whose columns are
// flattened kernel-sized patches, so that a convolution becomes a matrix
// multiplication: the result has shape [C*kh*kw, N*outH*outW].
func Im2Col[T tensor.Numeric](image *tensor.Tensor[T], kh, kw, strideH, strideW int) (*tensor.Tensor[T], error) {
	shape := image.Shape()
	if len(shape) != 4 {
		return nil, fmt.Errorf("kernel: im2col requires a 4-D NCHW image, got rank %d", len(shape))
	}

	n, c, h, w := shape[0], shape[1], shape[2], shape[3]

	outH := OutSize(h, kh, strideH)
	outW := OutSize(w, kw, strideW)

	if outH <= 0 || outW <= 0 {
		return nil, fmt.Errorf("kernel: im2col kernel %dx%d with stride %dx%d does not fit image %dx%d", kh, kw, strideH, strideW, h, w)
	}

	patchLen := c * kh * kw
	numPatches := n * outH * outW

	cols, err := tensor.New[T]([]int{patchLen, numPatches}, nil)
	if err != nil {
		return nil, err
	}

	xStride := image.Strides()
	xStrideN, xStrideC, xStrideH, xStrideW := xStride[0], xStride[1], xStride[2], xStride[3]
	xData := image.Data()
	colData := cols.Data()

	for ni := 0; ni < n; ni++ {
		for oh := 0; oh < outH; oh++ {
			for ow := 0; ow < outW; ow++ {
				col := (ni*outH+oh)*outW + ow
				row := 0

				for ci := 0; ci < c; ci++ {
					for khi := 0; khi < kh; khi++ {
						ih := oh*strideH + khi

						for kwi := 0; kwi < kw; kwi++ {
							iw := ow*strideW + kwi
							xIdx := ni*xStrideN + ci*xStrideC + ih*xStrideH + iw*xStrideW
							colData[row*numPatches+col] = xData[xIdx]
							row++
						}
					}
				}
			}
		}
	}

	return cols, nil
}

// Col2Im is Im2Col's adjoint: it accumulates column values back into their
// source positions, summing at each overlap. imageShape is the original
// 4-D NCHW shape the columns were unfolded from.
func Col2Im[T tensor.Numeric](cols *tensor.Tensor[T], imageShape []int, kh, kw, strideH, strideW int, ops numeric.Arithmetic[T]) (*tensor.Tensor[T], error) {
	if len(imageShape) != 4 {
		return nil, fmt.Errorf("kernel: col2im requires a 4-D NCHW image shape, got rank %d", len(imageShape))
	}

	n, c, h, w := imageShape[0], imageShape[1], imageShape[2], imageShape[3]
	outH := OutSize(h, kh, strideH)
	outW := OutSize(w, kw, strideW)

	patchLen := c * kh * kw
	numPatches := n * outH * outW

	colShape := cols.Shape()
	if len(colShape) != 2 || colShape[0] != patchLen || colShape[1] != numPatches {
		return nil, fmt.Errorf("kernel: col2im expected columns of shape [%d %d], got %v", patchLen, numPatches, colShape)
	}

	image, err := tensor.New[T](imageShape, nil)
	if err != nil {
		return nil, err
	}

	xStride := image.Strides()
	xStrideN, xStrideC, xStrideH, xStrideW := xStride[0], xStride[1], xStride[2], xStride[3]
	xData := image.Data()
	colData := cols.Data()

	for ni := 0; ni < n; ni++ {
		for oh := 0; oh < outH; oh++ {
			for ow := 0; ow < outW; ow++ {
				col := (ni*outH+oh)*outW + ow
				row := 0

				for ci := 0; ci < c; ci++ {
					for khi := 0; khi < kh; khi++ {
						ih := oh*strideH + khi

						for kwi := 0; kwi < kw; kwi++ {
							iw := ow*strideW + kwi
							xIdx := ni*xStrideN + ci*xStrideC + ih*xStrideH + iw*xStrideW
							xData[xIdx] = ops.Add(xData[xIdx], colData[row*numPatches+col])
							row++
						}
					}
				}
			}
		}
	}

	return image, nil
}

// Conv2D computes a stride-S, no-padding NCHW convolution of image
// ([N,InC,H,W]) with weight ([OutC,InC,kh,kw]) by unfolding image with
// Im2Col and reducing the convolution to a single GEMM: each Im2Col column
// holds exactly the inputs one sliding-window position sees, which is what
// makes this equivalent to the direct sliding-window form, at the cost of
// materializing the unfolded columns.
func Conv2D[T tensor.Numeric](image, weight *tensor.Tensor[T], strideH, strideW int) (*tensor.Tensor[T], error) {
	imgShape := image.Shape()
	wShape := weight.Shape()

	if len(imgShape) != 4 {
		return nil, fmt.Errorf("kernel: conv2d image must be rank 4 (NCHW), got rank %d", len(imgShape))
	}

	if len(wShape) != 4 {
		return nil, fmt.Errorf("kernel: conv2d weight must be rank 4 (OutC,InC,kh,kw), got rank %d", len(wShape))
	}

	n, inC, h, w := imgShape[0], imgShape[1], imgShape[2], imgShape[3]
	outC, wInC, kh, kw := wShape[0], wShape[1], wShape[2], wShape[3]

	if inC != wInC {
		return nil, fmt.Errorf("kernel: conv2d image channels %d do not match weight input channels %d", inC, wInC)
	}

	outH := OutSize(h, kh, strideH)
	outW := OutSize(w, kw, strideW)

	cols, err := Im2Col(image, kh, kw, strideH, strideW)
	if err != nil {
		return nil, err
	}

	wFlat, err := weight.Reshape([]int{outC, inC * kh * kw})
	if err != nil {
		return nil, err
	}

	numPatches := n * outH * outW

	flatOut, err := tensor.New[T]([]int{outC, numPatches}, nil)
	if err != nil {
		return nil, err
	}

	if err := Exec(Op[T]{
		Family: Special,
		Special: MatMulKind,
		A:       wFlat,
		B:       cols,
		Dst:     flatOut,
	}); err != nil {
		return nil, err
	}

	// flatOut is [OutC, N*outH*outW]; the desired layout is
	// [N, OutC, outH, outW], so reshape to [OutC,N,outH,outW] and transpose
	// the leading two axes.
	byChannel, err := flatOut.Reshape([]int{outC, n, outH, outW})
	if err != nil {
		return nil, err
	}

	result, err := byChannel.Transpose([]int{1, 0, 2, 3})
	if err != nil {
		return nil, err
	}

	return result.Copy(), nil
}

// MaxPool2D applies a stride-S, no-padding max pool over NCHW image. It is
// built on the same decomposition as Conv2D: Im2Col unfolds each output
// cell's window into a column of patchLen = C*kh*kw, which splits cleanly into
// [C, kh*kw] (channel-major, window-minor) since Im2Col fills patchLen in
// exactly that nesting order. Reducing axis kh*kw with the reduction and
// index-reduction walkers gives the max and its within-window winner index
// per channel per patch in one pass each, with no pooling-specific loop of
// its own. MaxPoolGrad2D undoes the same decomposition to route gradients
// back through Col2Im, which already accumulates at overlapping windows.
func MaxPool2D[T tensor.Numeric](image *tensor.Tensor[T], kh, kw, strideH, strideW int, ops numeric.Arithmetic[T]) (*tensor.Tensor[T], *tensor.IntTensor, error) {
	shape := image.Shape()
	if len(shape) != 4 {
		return nil, nil, fmt.Errorf("kernel: maxpool2d requires a 4-D NCHW image, got rank %d", len(shape))
	}

	n, c, h, w := shape[0], shape[1], shape[2], shape[3]
	outH := OutSize(h, kh, strideH)
	outW := OutSize(w, kw, strideW)

	if outH <= 0 || outW <= 0 {
		return nil, nil, fmt.Errorf("kernel: maxpool2d window %dx%d with stride %dx%d does not fit image %dx%d", kh, kw, strideH, strideW, h, w)
	}

	cols, err := Im2Col(image, kh, kw, strideH, strideW)
	if err != nil {
		return nil, nil, err
	}

	numPatches := n * outH * outW

	windows, err := cols.Reshape([]int{c, kh * kw, numPatches})
	if err != nil {
		return nil, nil, err
	}

	maxVal, err := tensor.New[T]([]int{c, numPatches}, nil)
	if err != nil {
		return nil, nil, err
	}

	if err := Exec(Op[T]{
		Family:      Reduction,
		A:           windows,
		Dst:         maxVal,
		ReducedDims: []bool{false, true, false},
		Update:      ops.Max,
	}); err != nil {
		return nil, nil, err
	}

	winnerFlat, err := tensor.NewInt([]int{c, numPatches}, nil)
	if err != nil {
		return nil, nil, err
	}

	winnerUpdate := func(accVal, value T, accIdx, i int) (T, int) {
		if i == 0 || ops.GreaterThan(value, accVal) {
			return value, i
		}

		return accVal, accIdx
	}

	if err := ExecAtDim(Op[T]{
		Family:      Index,
		IndexKind:   IndexReduceKind,
		A:           windows,
		IntDst:      winnerFlat,
		IndexUpdate: winnerUpdate,
	}, 1); err != nil {
		return nil, nil, err
	}

	outByChannel, err := maxVal.Reshape([]int{c, n, outH, outW})
	if err != nil {
		return nil, nil, err
	}

	out, err := outByChannel.Transpose([]int{1, 0, 2, 3})
	if err != nil {
		return nil, nil, err
	}

	winnerByChannel, err := winnerFlat.Reshape([]int{c, n, outH, outW})
	if err != nil {
		return nil, nil, err
	}

	winner, err := winnerByChannel.Transpose([]int{1, 0, 2, 3})
	if err != nil {
		return nil, nil, err
	}

	return out.Copy(), winner, nil
}

// MaxPoolGrad2D scatters dOut back into a zero-initialized imageShape-sized
// gradient, routing each output cell's gradient to the within-window index
// recorded by MaxPool2D. It undoes MaxPool2D's channel/window decomposition:
// the gradient for each (channel, patch) is scattered via the index-set
// walker into a one-hot column at the recorded winner position, then
// Col2Im folds the columns back into image space, summing wherever windows
// overlap.
func MaxPoolGrad2D[T tensor.Numeric](dOut *tensor.Tensor[T], winners *tensor.IntTensor, imageShape []int, kh, kw, strideH, strideW int, ops numeric.Arithmetic[T]) (*tensor.Tensor[T], error) {
	if len(imageShape) != 4 {
		return nil, fmt.Errorf("kernel: maxpoolgrad2d requires a 4-D NCHW image shape, got rank %d", len(imageShape))
	}

	outShape := dOut.Shape()
	if len(outShape) != 4 {
		return nil, fmt.Errorf("kernel: maxpoolgrad2d requires a 4-D NCHW dOut, got rank %d", len(outShape))
	}

	if !tensor.SameShape(outShape, winners.Shape()) {
		return nil, fmt.Errorf("kernel: maxpoolgrad2d dOut shape %v does not match winners shape %v", outShape, winners.Shape())
	}

	n, c, outH, outW := outShape[0], outShape[1], outShape[2], outShape[3]
	numPatches := n * outH * outW

	dOutByChannel, err := dOut.Transpose([]int{1, 0, 2, 3})
	if err != nil {
		return nil, err
	}

	// Copy keeps the transposed strides, so materialize the [C,N,outH,outW]
	// order into a row-major buffer before reshaping.
	dOutContig, err := tensor.New[T](dOutByChannel.Shape(), nil)
	if err != nil {
		return nil, err
	}

	if err := Exec(Op[T]{
		Family:    Transform,
		A:         dOutByChannel,
		Dst:       dOutContig,
		UnaryBody: func(v T) T { return v },
	}); err != nil {
		return nil, err
	}

	dOutFlat, err := dOutContig.Reshape([]int{c, numPatches})
	if err != nil {
		return nil, err
	}

	winnerByChannel, err := winners.Transpose([]int{1, 0, 2, 3})
	if err != nil {
		return nil, err
	}

	winnerFlat, err := winnerByChannel.Reshape([]int{c, numPatches})
	if err != nil {
		return nil, err
	}

	src, err := dOutFlat.Reshape([]int{c, 1, numPatches})
	if err != nil {
		return nil, err
	}

	indices, err := winnerFlat.Reshape([]int{c, 1, numPatches})
	if err != nil {
		return nil, err
	}

	distCols, err := tensor.New[T]([]int{c, kh * kw, numPatches}, nil)
	if err != nil {
		return nil, err
	}

	if err := ExecAtDim(Op[T]{
		Family:    Index,
		IndexKind: IndexSetKind,
		Dst:       distCols,
		Indices:   indices,
		Src:       src,
	}, 1); err != nil {
		return nil, err
	}

	cols, err := distCols.Reshape([]int{c * kh * kw, numPatches})
	if err != nil {
		return nil, err
	}

	return Col2Im(cols, imageShape, kh, kw, strideH, strideW, ops)
}
