package kernel

import (
	"reflect"
	"testing"

	"github.com/vectorlane/tensorkernel/numeric"
	"github.com/vectorlane/tensorkernel/tensor"
)

func sumReduce(t *testing.T, axes []int, shape []int, data []float32, keepDims bool) *tensor.Tensor[float32] {
	t.Helper()

	ops := numeric.Float32Ops{}
	a, err := tensor.New(shape, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reduced, err := tensor.GetReducedDims(shape, axes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	outShape := tensor.ReduceShape(shape, reduced, keepDims)

	dst, err := tensor.New[float32](outShape, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := Exec(Op[float32]{
		Family:      Reduction,
		A:           a,
		Dst:         dst,
		ReducedDims: reduced,
		Update:      ops.Add,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return dst
}

func TestExecReduction_SumAxis0(t *testing.T) {
	dst := sumReduce(t, []int{0}, []int{2, 3}, []float32{1, 2, 3, 4, 5, 6}, false)

	want := []float32{5, 7, 9}
	if !reflect.DeepEqual(dst.Data(), want) {
		t.Errorf("got %v, want %v", dst.Data(), want)
	}
}

func TestExecReduction_SumAxis1KeepDims(t *testing.T) {
	dst := sumReduce(t, []int{1}, []int{2, 3}, []float32{1, 2, 3, 4, 5, 6}, true)

	want := []float32{6, 15}
	if !reflect.DeepEqual(dst.Data(), want) {
		t.Errorf("got %v, want %v", dst.Data(), want)
	}

	if !reflect.DeepEqual(dst.Shape(), []int{2, 1}) {
		t.Errorf("expected shape [2 1], got %v", dst.Shape())
	}
}

func TestExecReduction_SumAll(t *testing.T) {
	dst := sumReduce(t, nil, []int{2, 2}, []float32{1, 2, 3, 4}, false)

	if dst.Data()[0] != 10 {
		t.Errorf("expected total sum 10, got %v", dst.Data())
	}
}

func TestExecReduction_Mean(t *testing.T) {
	ops := numeric.Float64Ops{}

	a, _ := tensor.New([]int{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	reduced, _ := tensor.GetReducedDims([]int{2, 3}, []int{1})
	dst, _ := tensor.New[float64](tensor.ReduceShape([]int{2, 3}, reduced, false), nil)

	err := Exec(Op[float64]{
		Family:            Reduction,
		A:                 a,
		Dst:               dst,
		ReducedDims:       reduced,
		Update:            ops.Add,
		ShouldPostProcess: true,
		PostProcess: func(acc float64, n int) float64 {
			return acc / float64(n)
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float64{2, 5}
	if !reflect.DeepEqual(dst.Data(), want) {
		t.Errorf("got %v, want %v", dst.Data(), want)
	}
}

func TestExecReduction_MinMaxPartial(t *testing.T) {
	ops := numeric.Float32Ops{}

	// Column 0 holds [9, -3, 7] (min -3, max 9); column 1 holds [2, 4, -8].
	a, _ := tensor.New([]int{3, 2}, []float32{9, 2, -3, 4, 7, -8})

	reduced, _ := tensor.GetReducedDims([]int{3, 2}, []int{0})
	outShape := tensor.ReduceShape([]int{3, 2}, reduced, false)

	minDst, _ := tensor.New[float32](outShape, nil)
	if err := Exec(Op[float32]{Family: Reduction, A: a, Dst: minDst, ReducedDims: reduced, Update: ops.Min}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantMin := []float32{-3, -8}
	if !reflect.DeepEqual(minDst.Data(), wantMin) {
		t.Errorf("min: got %v, want %v", minDst.Data(), wantMin)
	}

	maxDst, _ := tensor.New[float32](outShape, nil)
	if err := Exec(Op[float32]{Family: Reduction, A: a, Dst: maxDst, ReducedDims: reduced, Update: ops.Max}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantMax := []float32{9, 4}
	if !reflect.DeepEqual(maxDst.Data(), wantMax) {
		t.Errorf("max: got %v, want %v", maxDst.Data(), wantMax)
	}
}
