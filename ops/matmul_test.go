package ops

import (
	"reflect"
	"testing"

	"github.com/vectorlane/tensorkernel/numeric"
	"github.com/vectorlane/tensorkernel/tensor"
)

func TestMatMul(t *testing.T) {
	a, _ := tensor.New([]int{2, 3}, []float32{1, 2, 3, 4, 5, 6})
	b, _ := tensor.New([]int{3, 2}, []float32{7, 8, 9, 10, 11, 12})

	out, err := MatMul(a, b, false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float32{58, 64, 139, 154}
	if !reflect.DeepEqual(out.Data(), want) {
		t.Errorf("got %v, want %v", out.Data(), want)
	}
}

func TestMatMul_RankError(t *testing.T) {
	a, _ := tensor.New([]int{2}, []float32{1, 2})
	b, _ := tensor.New([]int{2, 2}, []float32{1, 2, 3, 4})

	if _, err := MatMul(a, b, false, false); err == nil {
		t.Error("expected rank error, got nil")
	}
}

func TestConv2D(t *testing.T) {
	img, _ := tensor.New([]int{1, 1, 3, 3}, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9})
	weight, _ := tensor.New([]int{1, 1, 2, 2}, []float32{1, 1, 1, 1})

	out, err := Conv2D(img, weight, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float32{12, 16, 24, 28}
	if !reflect.DeepEqual(out.Data(), want) {
		t.Errorf("got %v, want %v", out.Data(), want)
	}
}

func TestMaxPool2DRoundTrip(t *testing.T) {
	ops := numeric.Float32Ops{}

	img, _ := tensor.New([]int{1, 1, 2, 2}, []float32{1, 4, 3, 2})

	out, winners, err := MaxPool2D(ops, img, 2, 2, 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Data()[0] != 4 {
		t.Errorf("expected max 4, got %v", out.Data())
	}

	dOut, _ := tensor.New([]int{1, 1, 1, 1}, []float32{5})

	grad, err := MaxPoolGrad2D(ops, dOut, winners, []int{1, 1, 2, 2}, 2, 2, 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float32{0, 5, 0, 0}
	if !reflect.DeepEqual(grad.Data(), want) {
		t.Errorf("got %v, want %v", grad.Data(), want)
	}
}
