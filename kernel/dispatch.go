package kernel

import (
	"fmt"

	"github.com/vectorlane/tensorkernel/tensor"
)

// Exec dispatches op by family and executes it to completion. It is used by
// every family except index-reduction and index-set, which require a target
// axis and go through ExecAtDim instead.
func Exec[T tensor.Numeric](op Op[T]) error {
	Dispatcher()

	switch op.Family {
	case Pairwise:
		return execPairwise(op)
	case Transform:
		return execTransform(op)
	case Reduction:
		return execReduction(op)
	case Special:
		return execSpecial(op)
	case Index:
		return fmt.Errorf("kernel: family Index requires ExecAtDim, not Exec")
	default:
		return fmt.Errorf("kernel: unknown op family %d", op.Family)
	}
}

// ExecAtDim dispatches an Index-family op against a target axis. It is the
// only entry point for index reductions (argmax) and index-set (scatter).
func ExecAtDim[T tensor.Numeric](op Op[T], dim int) error {
	Dispatcher()

	if op.Family != Index {
		return fmt.Errorf("kernel: ExecAtDim is only valid for family Index, got %d", op.Family)
	}

	switch op.IndexKind {
	case IndexReduceKind:
		return execIndexReduce(op, dim)
	case IndexSetKind:
		return execIndexSet(op, dim)
	default:
		return fmt.Errorf("kernel: unknown index kind %d", op.IndexKind)
	}
}
