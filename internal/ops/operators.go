package ops

// UnaryOp transforms a single value. Operators must be pure: no side
// effects, no retained state.
type UnaryOp[T Value] func(T) T

// BinaryOp combines two values into one. Operators must be pure and
// total over their declared domain.
type BinaryOp[T Value] func(T, T) T

// Monoid is an associative, commutative BinaryOp together with its
// identity element. Monoids drive the additive half of a semiring and
// all reductions.
type Monoid[T Value] struct {
	Identity T
	Op       BinaryOp[T]
}

// Semiring pairs an additive monoid with a multiplicative BinaryOp,
// generalizing matrix multiplication over arbitrary algebras
// (e.g. min-plus for shortest paths, lor-land for reachability).
type Semiring[T Value] struct {
	Add Monoid[T]
	Mul BinaryOp[T]
}

// Identity returns its argument unchanged.
func Identity[T Value]() UnaryOp[T] {
	return func(x T) T { return x }
}

// Bind1st converts a BinaryOp into a UnaryOp by fixing the left operand.
func Bind1st[T Value](op BinaryOp[T], left T) UnaryOp[T] {
	return func(x T) T { return op(left, x) }
}

// Bind2nd converts a BinaryOp into a UnaryOp by fixing the right operand.
func Bind2nd[T Value](op BinaryOp[T], right T) UnaryOp[T] {
	return func(x T) T { return op(x, right) }
}
