package ops

import (
	"fmt"

	"github.com/vectorlane/tensorkernel/kernel"
	"github.com/vectorlane/tensorkernel/numeric"
	"github.com/vectorlane/tensorkernel/tensor"
)

// Softmax applies softmax along axis: exp(x - max)/sum(exp(x - max)),
// computed in one pass by the softmax special op rather than three
// separate kernel calls.
func Softmax[T tensor.Numeric](arith numeric.Arithmetic[T], a *tensor.Tensor[T], axis int, dst ...*tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if a == nil {
		return nil, fmt.Errorf("ops: softmax operand must not be nil")
	}

	out, err := destOrNew(a.Shape(), dst...)
	if err != nil {
		return nil, err
	}

	err = kernel.Exec(kernel.Op[T]{
		Family:      kernel.Special,
		Special:     kernel.SoftmaxKind,
		A:           a,
		Dst:         out,
		SoftmaxAxis: axis,
		Ops:         arith,
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// SoftmaxCrossEntropyGrad computes the gradient of softmax cross-entropy
// loss with respect to logits: (softmax(logits) - oneHot(labels)) / batchSize,
// where batchSize is logits.Shape()[0]. labels holds one integer class index
// per row.
func SoftmaxCrossEntropyGrad[T tensor.Numeric](arith numeric.Arithmetic[T], logits *tensor.Tensor[T], labels *tensor.IntTensor) (*tensor.Tensor[T], error) {
	if logits == nil || labels == nil {
		return nil, fmt.Errorf("ops: softmaxCrossEntropyGrad requires logits and labels")
	}

	shape := logits.Shape()
	if len(shape) != 2 {
		return nil, fmt.Errorf("ops: softmaxCrossEntropyGrad requires rank-2 logits [batch, classes], got rank %d", len(shape))
	}

	batch, classes := shape[0], shape[1]
	if !tensor.SameShape(labels.Shape(), []int{batch}) {
		return nil, fmt.Errorf("ops: softmaxCrossEntropyGrad labels shape %v must be [%d]", labels.Shape(), batch)
	}

	grad, err := Softmax(arith, logits, len(shape)-1)
	if err != nil {
		return nil, err
	}

	gData := grad.Data()
	labelData := labels.Data()
	scale := arith.FromFloat64(1.0 / float64(batch))

	for b := 0; b < batch; b++ {
		class := labelData[b]
		if class < 0 || class >= classes {
			return nil, fmt.Errorf("ops: softmaxCrossEntropyGrad label %d out of bounds for %d classes", class, classes)
		}

		idx := b*classes + class
		gData[idx] = arith.Sub(gData[idx], arith.One())
	}

	for i := range gData {
		gData[i] = arith.Mul(gData[i], scale)
	}

	return grad, nil
}
