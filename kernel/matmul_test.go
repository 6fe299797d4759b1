package kernel

import (
	"reflect"
	"testing"

	"github.com/vectorlane/tensorkernel/tensor"
)

func TestExecMatMul_Basic(t *testing.T) {
	a, _ := tensor.New([]int{2, 3}, []float32{1, 2, 3, 4, 5, 6})
	b, _ := tensor.New([]int{3, 2}, []float32{7, 8, 9, 10, 11, 12})
	dst, _ := tensor.New[float32]([]int{2, 2}, nil)

	err := Exec(Op[float32]{Family: Special, Special: MatMulKind, A: a, B: b, Dst: dst})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float32{58, 64, 139, 154}
	if !reflect.DeepEqual(dst.Data(), want) {
		t.Errorf("got %v, want %v", dst.Data(), want)
	}
}

func TestExecMatMul_Identity(t *testing.T) {
	a, _ := tensor.New([]int{2, 2}, []float64{1, 2, 3, 4})
	id, _ := tensor.New([]int{2, 2}, []float64{1, 0, 0, 1})
	dst, _ := tensor.New[float64]([]int{2, 2}, nil)

	if err := Exec(Op[float64]{Family: Special, Special: MatMulKind, A: a, B: id, Dst: dst}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(dst.Data(), a.Data()) {
		t.Errorf("A*I should equal A: got %v, want %v", dst.Data(), a.Data())
	}
}

func TestExecMatMul_Transposed(t *testing.T) {
	// a is 3x2; using TransposeA treats it as 2x3 so it multiplies with b (3x2).
	a, _ := tensor.New([]int{3, 2}, []float32{1, 4, 2, 5, 3, 6})
	b, _ := tensor.New([]int{3, 2}, []float32{7, 8, 9, 10, 11, 12})
	dst, _ := tensor.New[float32]([]int{2, 2}, nil)

	err := Exec(Op[float32]{Family: Special, Special: MatMulKind, A: a, B: b, Dst: dst, TransposeA: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float32{58, 64, 139, 154}
	if !reflect.DeepEqual(dst.Data(), want) {
		t.Errorf("got %v, want %v", dst.Data(), want)
	}
}

func TestExecMatMul_InnerDimMismatch(t *testing.T) {
	a, _ := tensor.New([]int{2, 3}, []float32{1, 2, 3, 4, 5, 6})
	b, _ := tensor.New([]int{4, 2}, nil)
	dst, _ := tensor.New[float32]([]int{2, 2}, nil)

	if err := Exec(Op[float32]{Family: Special, Special: MatMulKind, A: a, B: b, Dst: dst}); err == nil {
		t.Error("expected inner dimension mismatch error, got nil")
	}
}
