package kernel

import (
	"reflect"
	"testing"

	"github.com/vectorlane/tensorkernel/numeric"
	"github.com/vectorlane/tensorkernel/tensor"
)

func argMaxUpdate(ops numeric.Arithmetic[float32]) func(float32, float32, int, int) (float32, int) {
	return func(accVal, value float32, accIdx, i int) (float32, int) {
		if i == 0 || ops.GreaterThan(value, accVal) {
			return value, i
		}

		return accVal, accIdx
	}
}

func TestExecIndexReduce_ArgMaxAxis1(t *testing.T) {
	ops := numeric.Float32Ops{}

	a, _ := tensor.New([]int{2, 3}, []float32{1, 5, 3, 9, 2, 4})
	dst, _ := tensor.NewInt([]int{2}, nil)

	err := ExecAtDim(Op[float32]{
		Family:      Index,
		IndexKind:   IndexReduceKind,
		A:           a,
		IntDst:      dst,
		IndexUpdate: argMaxUpdate(ops),
	}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []int{1, 0}
	if !reflect.DeepEqual(dst.Data(), want) {
		t.Errorf("got %v, want %v", dst.Data(), want)
	}
}

func TestExecIndexReduce_TieBreakKeepsEarliest(t *testing.T) {
	ops := numeric.Float32Ops{}

	a, _ := tensor.New([]int{1, 4}, []float32{3, 3, 1, 3})
	dst, _ := tensor.NewInt([]int{1}, nil)

	err := ExecAtDim(Op[float32]{
		Family:      Index,
		IndexKind:   IndexReduceKind,
		A:           a,
		IntDst:      dst,
		IndexUpdate: argMaxUpdate(ops),
	}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if dst.Data()[0] != 0 {
		t.Errorf("expected earliest tied index 0, got %d", dst.Data()[0])
	}
}

func TestExecIndexSet_Scatter(t *testing.T) {
	// dst is 3 rows of 3 columns; src/indices hold one value per row (the
	// reduced axis collapsed to size 1), scattered back into the column
	// named by indices — the shape argMax's reduction produces and argSet
	// consumes.
	dst, _ := tensor.New[float32]([]int{3, 3}, nil)
	src, _ := tensor.New([]int{3, 1}, []float32{10, 20, 30})
	indices, _ := tensor.NewInt([]int{3, 1}, []int{2, 0, 1})

	err := ExecAtDim(Op[float32]{
		Family:    Index,
		IndexKind: IndexSetKind,
		Dst:       dst,
		Src:       src,
		Indices:   indices,
	}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float32{0, 0, 10, 20, 0, 0, 0, 30, 0}
	if !reflect.DeepEqual(dst.Data(), want) {
		t.Errorf("got %v, want %v", dst.Data(), want)
	}
}
