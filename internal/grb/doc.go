// Package grb implements the sparse linear algebra execution core:
// typed sparse Vector/Matrix containers, the masked/accumulated
// operation executor, and the per-position mask/accumulator resolver.
//
// Containers are created with a fixed shape and element type and are
// mutated in place by the output parameter of every operation. Sparsity
// is structural: an index without a stored entry is absent, which is
// distinct from a stored zero. All operations validate shapes and
// indices before mutating anything; on error the output is left exactly
// as it was.
//
// Operations follow the GraphBLAS calling convention: the receiver is
// the output container, followed by an optional mask, an optional
// accumulator, the operator or semiring, the input operand(s), and an
// optional Descriptor carrying the mask complement, value-mask and
// replace flags.
//
// Multiply kernels may run row- or column-parallel. The additive monoid
// is required to be associative and commutative, so results are
// deterministic up to floating-point reduction order: float reductions
// are not guaranteed bit-reproducible across differing parallel
// decompositions.
package grb
