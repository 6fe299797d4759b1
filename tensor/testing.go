package tensor

import (
	"math"
	"testing"

	"github.com/zerfoo/float16"
	"github.com/zerfoo/float8"
)

// toFloat64 widens any Numeric value to a float64 for approximate comparison.
func toFloat64[T Numeric](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	case float16.Float16:
		return float64(x.ToFloat32())
	case float8.Float8:
		return float64(x.ToFloat32())
	default:
		return 0
	}
}

// CompareTensorsApprox checks if two tensors are approximately equal element-wise.
func CompareTensorsApprox[T Numeric](t *testing.T, actual, expected *Tensor[T], epsilon T) bool {
	t.Helper()
	if !actual.ShapeEquals(expected) {
		t.Errorf("tensor shapes do not match: actual %v, expected %v", actual.Shape(), expected.Shape())
		return false
	}

	actualData := actual.Data()
	expectedData := expected.Data()

	if len(actualData) != len(expectedData) {
		t.Errorf("tensor data lengths do not match: actual %d, expected %d", len(actualData), len(expectedData))
		return false
	}

	eps := toFloat64(epsilon)

	for i := range actualData {
		if math.Abs(toFloat64(actualData[i])-toFloat64(expectedData[i])) > eps {
			t.Errorf("tensor elements at index %d are not approximately equal: actual %v, expected %v, epsilon %v", i, actualData[i], expectedData[i], epsilon)
			return false
		}
	}
	return true
}