package kernel

import (
	"reflect"
	"testing"

	"github.com/vectorlane/tensorkernel/numeric"
	"github.com/vectorlane/tensorkernel/tensor"
)

func TestOutSize(t *testing.T) {
	if got := OutSize(5, 3, 1); got != 3 {
		t.Errorf("OutSize(5,3,1) = %d, want 3", got)
	}

	if got := OutSize(6, 2, 2); got != 3 {
		t.Errorf("OutSize(6,2,2) = %d, want 3", got)
	}
}

func TestIm2Col_Shape(t *testing.T) {
	img, _ := tensor.New[float32]([]int{1, 2, 4, 4}, nil)
	for i := range img.Data() {
		img.Data()[i] = float32(i)
	}

	cols, err := Im2Col(img, 2, 2, 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantShape := []int{2 * 2 * 2, 1 * 2 * 2}
	if !reflect.DeepEqual(cols.Shape(), wantShape) {
		t.Errorf("got shape %v, want %v", cols.Shape(), wantShape)
	}
}

func TestIm2ColCol2Im_Adjoint(t *testing.T) {
	ops := numeric.Float32Ops{}

	shape := []int{1, 1, 4, 4}
	img, _ := tensor.New[float32](shape, nil)
	for i := range img.Data() {
		img.Data()[i] = float32(i + 1)
	}

	cols, err := Im2Col(img, 2, 2, 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// With a non-overlapping stride (stride == kernel size), every input
	// element lands in exactly one column, so col2im exactly reconstructs
	// the original image (no accumulation across overlapping windows).
	back, err := Col2Im(cols, shape, 2, 2, 2, 2, ops)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(back.Data(), img.Data()) {
		t.Errorf("col2im(im2col(x)) = %v, want %v (non-overlapping stride)", back.Data(), img.Data())
	}
}

func TestConv2D_IdentityKernel(t *testing.T) {
	// A 1x1 identity-weighted kernel over a single channel should reproduce
	// the input exactly.
	img, _ := tensor.New([]int{1, 1, 3, 3}, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9})
	weight, _ := tensor.New([]int{1, 1, 1, 1}, []float32{1})

	out, err := Conv2D(img, weight, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(out.Shape(), []int{1, 1, 3, 3}) {
		t.Fatalf("unexpected output shape %v", out.Shape())
	}

	if !reflect.DeepEqual(out.Data(), img.Data()) {
		t.Errorf("got %v, want %v", out.Data(), img.Data())
	}
}

func TestConv2D_SumKernel(t *testing.T) {
	// A 2x2 all-ones kernel over a 3x3 image with stride 1 sums each window.
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

func TestMaxPool2D_ForwardAndGrad(t *testing.T) {
	ops := numeric.Float32Ops{}

	img, _ := tensor.New([]int{1, 1, 4, 4}, []float32{
		1, 2, 5, 6,
		3, 4, 7, 8,
		9, 10, 13, 14,
		11, 12, 15, 16,
	})

	out, winners, err := MaxPool2D(img, 2, 2, 2, 2, ops)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float32{4, 8, 12, 16}
	if !reflect.DeepEqual(out.Data(), want) {
		t.Errorf("got %v, want %v", out.Data(), want)
	}

	dOut, _ := tensor.New([]int{1, 1, 2, 2}, []float32{1, 1, 1, 1})

	grad, err := MaxPoolGrad2D(dOut, winners, []int{1, 1, 4, 4}, 2, 2, 2, 2, ops)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var total float32
	for _, v := range grad.Data() {
		total += v
	}

	if total != 4 {
		t.Errorf("expected gradient mass to be conserved (total 4), got %v", total)
	}

	// The winning cell in the top-left window is position (1,1) = value 4.
	if grad.Data()[1*4+1] != 1 {
		t.Errorf("expected gradient routed to the argmax cell, got %v", grad.Data())
	}
}
