package kernel

import (
	"errors"
	"fmt"

	"github.com/zerfoo/float16"
	"github.com/zerfoo/float8"

	"github.com/vectorlane/tensorkernel/internal/blasmm"
	"github.com/vectorlane/tensorkernel/tensor"
)

// execSpecial dispatches a Special-family op to its bespoke executor.
func execSpecial[T tensor.Numeric](op Op[T]) error {
	switch op.Special {
	case MatMulKind:
		return execMatMul(op)
	case SoftmaxKind:
		return execSoftmax(op)
	default:
		return fmt.Errorf("kernel: unknown special kind %d", op.Special)
	}
}

// execMatMul is the matmul special op: both operands must be rank 2 (else a
// shape error), the destination shape is [a_rows, b_cols] with transpose
// flags swapping the meaningful dimensions. It is not reducible to the
// generic walkers, so it is handled as its own executor rather than a
// configured Op family, backed by BLAS GEMM.
func execMatMul[T tensor.Numeric](op Op[T]) error {
	if op.A == nil || op.B == nil || op.Dst == nil {
		return errors.New("kernel: matmul op requires A, B, and Dst")
	}

	aData, m, k, err := contiguousMatrix(op.A, op.TransposeA)
	if err != nil {
		return err
	}

	bData, k2, n, err := contiguousMatrix(op.B, op.TransposeB)
	if err != nil {
		return err
	}

	if k != k2 {
		return fmt.Errorf("kernel: matmul inner dimensions do not match: %d != %d", k, k2)
	}

	if !tensor.SameShape(op.Dst.Shape(), []int{m, n}) {
		return fmt.Errorf("kernel: matmul destination shape %v does not match result shape [%d %d]", op.Dst.Shape(), m, n)
	}

	dst := op.Dst.Data()

	switch a := any(aData).(type) {
	case []float32:
		b := any(bData).([]float32)
		c := any(dst).([]float32)
		blasmm.GemmF32(m, n, k, a, b, c)
	case []float64:
		b := any(bData).([]float64)
		c := any(dst).([]float64)
		blasmm.GemmF64(m, n, k, a, b, c)
	case []float16.Float16:
		b := any(bData).([]float16.Float16)
		c := any(dst).([]float16.Float16)
		blasmm.GemmF16(m, n, k, a, b, c)
	case []float8.Float8:
		b := any(bData).([]float8.Float8)
		c := any(dst).([]float8.Float8)
		blasmm.GemmF8(m, n, k, a, b, c)
	default:
		return fmt.Errorf("kernel: matmul has no BLAS backend for %T", aData)
	}

	return nil
}

// contiguousMatrix materializes a rank-2 tensor's logical [rows, cols] view
// (transposed if requested) as a freshly allocated row-major contiguous
// slice, since BLAS GEMM requires contiguous operands.
func contiguousMatrix[T tensor.Numeric](t *tensor.Tensor[T], transpose bool) ([]T, int, int, error) {
	shape := t.Shape()
	if len(shape) != 2 {
		return nil, 0, 0, fmt.Errorf("kernel: matmul operand must be rank 2, got rank %d", len(shape))
	}

	rows, cols := shape[0], shape[1]
	if transpose {
		rows, cols = cols, rows
	}

	out := make([]T, rows*cols)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			var (
				v   T
				err error
			)

			if transpose {
				v, err = t.At(j, i)
			} else {
				v, err = t.At(i, j)
			}

			if err != nil {
				return nil, 0, 0, err
			}

			out[i*cols+j] = v
		}
	}

	return out, rows, cols, nil
}
