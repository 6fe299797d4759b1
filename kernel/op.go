// Package kernel is the execution kernel: the rank-agnostic machinery that
// walks strided tensors, applies a per-element scalar body, and writes a
// result buffer honoring broadcasting, reduction masking, and stride
// patterns. Every named operation in ops/ reduces to configuring an Op and
// handing it to Exec or ExecAtDim.
package kernel

import (
	"github.com/vectorlane/tensorkernel/numeric"
	"github.com/vectorlane/tensorkernel/tensor"
)

// Family names the kernel's dispatch classes. It is a tagged variant: every
// Op carries exactly one Family, and the fields that matter depend on which
// one.
type Family int

const (
	// Pairwise consumes two operands and writes a destination of their
	// broadcast shape.
	Pairwise Family = iota
	// Transform is a single-operand elementwise walker; input and output
	// share the same shape.
	Transform
	// Reduction collapses a boolean mask of input dimensions via a
	// commutative-associative update.
	Reduction
	// Index covers the two execAtDim-only walkers: index-reduction
	// (argmax-style) and index-set (scatter-style).
	Index
	// Special ops are not reducible to the generic walkers (matmul,
	// softmax-along-dim) and carry a bespoke executor.
	Special
)

// SpecialKind distinguishes the bespoke executors under Family Special.
type SpecialKind int

const (
	MatMulKind SpecialKind = iota
	SoftmaxKind
)

// IndexKind distinguishes the two execAtDim-only walkers under Family Index.
type IndexKind int

const (
	IndexReduceKind IndexKind = iota
	IndexSetKind
)

// Op is the op descriptor: a tagged record naming a kernel family, carrying
// operand references, a scalar body, and family-specific metadata. Only the
// fields relevant to Family (and, for Index/Special, the sub-kind) are
// read by the dispatcher; the rest are left zero.
type Op[T tensor.Numeric] struct {
	Family Family

	A, B, Dst *tensor.Tensor[T]

	// Transform: dst[i] = UnaryBody(a[i]).
	UnaryBody func(T) T

	// Pairwise: dst[i] = BinaryBody(a[i], b[i]).
	BinaryBody func(a, b T) T

	// Set (a Transform-family op with no input): dst[i] = ScalarConst.
	ScalarConst T
	IsSet       bool

	// Reduction.
	ReducedDims       []bool
	ReduceBody        func(T) T
	Update            func(acc, val T) T
	ShouldPostProcess bool
	PostProcess       func(acc T, n int) T

	// Index (Family Index). IntDst carries the index-reduce result
	// (argmax-style); Indices/Src/Dst carry the index-set (scatter)
	// operands — Src values are written into Dst at positions derived
	// from Indices.
	IndexKind   IndexKind
	IndexUpdate func(accVal T, value T, accIdx, i int) (T, int)
	IntDst      *tensor.IntTensor
	Indices     *tensor.IntTensor
	Src         *tensor.Tensor[T]

	// Special.
	Special     SpecialKind
	TransposeA  bool
	TransposeB  bool
	SoftmaxAxis int
	Ops         numeric.Arithmetic[T]
}
