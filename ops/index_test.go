package ops

import (
	"reflect"
	"testing"

	"github.com/vectorlane/tensorkernel/numeric"
	"github.com/vectorlane/tensorkernel/tensor"
)

func TestArgMax(t *testing.T) {
	ops := numeric.Float32Ops{}

	a, _ := tensor.New([]int{2, 3}, []float32{1, 5, 3, 9, 2, 4})

	idx, err := ArgMax(ops, a, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []int{1, 0}
	if !reflect.DeepEqual(idx.Data(), want) {
		t.Errorf("got %v, want %v", idx.Data(), want)
	}
}

func TestArgMax_NegativeAxis(t *testing.T) {
	ops := numeric.Float32Ops{}

	a, _ := tensor.New([]int{2, 3}, []float32{1, 5, 3, 9, 2, 4})

	idx, err := ArgMax(ops, a, -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []int{1, 0}
	if !reflect.DeepEqual(idx.Data(), want) {
		t.Errorf("got %v, want %v", idx.Data(), want)
	}
}

func TestArgSet_RoundTripsArgMax(t *testing.T) {
	ops := numeric.Float32Ops{}

	a, _ := tensor.New([]int{2, 3}, []float32{1, 5, 3, 9, 2, 4})

	idx, err := ArgMax(ops, a, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	idx2D, err := tensor.NewInt([]int{2, 1}, idx.Data())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	src, _ := tensor.New([]int{2, 1}, []float32{1, 1})
	dst, _ := tensor.New[float32]([]int{2, 3}, nil)

	if err := ArgSet(dst, idx2D, src, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float32{0, 1, 0, 1, 0, 0}
	if !reflect.DeepEqual(dst.Data(), want) {
		t.Errorf("got %v, want %v", dst.Data(), want)
	}
}
