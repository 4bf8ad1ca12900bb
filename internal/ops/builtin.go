package ops

import "math"

// Number is the subset of Value supporting arithmetic operators.
type Number interface {
	~int32 | ~int64 | ~uint8 | ~float32 | ~float64
}

// MaxOf returns the largest representable value of T (+Inf for floats).
// It serves as the identity of the Min monoid.
func MaxOf[T Number]() T {
	var z T
	switch p := any(&z).(type) {
	case *int32:
		*p = math.MaxInt32
	case *int64:
		*p = math.MaxInt64
	case *uint8:
		*p = math.MaxUint8
	case *float32:
		*p = float32(math.Inf(1))
	case *float64:
		*p = math.Inf(1)
	default:
		panic("unsupported type")
	}
	return z
}

// MinOf returns the smallest representable value of T (-Inf for floats).
// It serves as the identity of the Max monoid.
func MinOf[T Number]() T {
	var z T
	switch p := any(&z).(type) {
	case *int32:
		*p = math.MinInt32
	case *int64:
		*p = math.MinInt64
	case *uint8:
		*p = 0
	case *float32:
		*p = float32(math.Inf(-1))
	case *float64:
		*p = math.Inf(-1)
	default:
		panic("unsupported type")
	}
	return z
}

// Binary operators.

// Plus returns the addition operator.
func Plus[T Number]() BinaryOp[T] {
	return func(a, b T) T { return a + b }
}

// Times returns the multiplication operator.
func Times[T Number]() BinaryOp[T] {
	return func(a, b T) T { return a * b }
}

// Min returns the minimum operator.
//
// Comparison uses Go's < operator, so NaN operands are order-dependent:
// min(x, NaN) keeps x while min(NaN, x) keeps NaN. The engine stores NaN
// like any other value and never treats it as absent.
func Min[T Number]() BinaryOp[T] {
	return func(a, b T) T {
		if b < a {
			return b
		}
		return a
	}
}

// Max returns the maximum operator. See Min for the NaN caveat.
func Max[T Number]() BinaryOp[T] {
	return func(a, b T) T {
		if b > a {
			return b
		}
		return a
	}
}

// First returns its left operand, discarding the right.
func First[T Value]() BinaryOp[T] {
	return func(a, _ T) T { return a }
}

// Second returns its right operand, discarding the left.
func Second[T Value]() BinaryOp[T] {
	return func(_, b T) T { return b }
}

// LOr returns logical OR over boolean-like values.
func LOr[T ~bool]() BinaryOp[T] {
	return func(a, b T) T { return a || b }
}

// LAnd returns logical AND over boolean-like values.
func LAnd[T ~bool]() BinaryOp[T] {
	return func(a, b T) T { return a && b }
}

// Eq returns equality comparison within the same domain.
func Eq[T Number]() BinaryOp[T] {
	return func(a, b T) T {
		if a == b {
			var one T = 1
			return one
		}
		var zero T
		return zero
	}
}

// Unary operators.

// AInv returns the additive inverse operator.
func AInv[T Number]() UnaryOp[T] {
	return func(x T) T { return -x }
}

// Abs returns the absolute value operator.
func Abs[T Number]() UnaryOp[T] {
	return func(x T) T {
		var zero T
		if x < zero {
			return -x
		}
		return x
	}
}

// Monoids.

// PlusMonoid reduces with addition; identity 0.
func PlusMonoid[T Number]() Monoid[T] {
	var zero T
	return Monoid[T]{Identity: zero, Op: Plus[T]()}
}

// TimesMonoid reduces with multiplication; identity 1.
func TimesMonoid[T Number]() Monoid[T] {
	var one T = 1
	return Monoid[T]{Identity: one, Op: Times[T]()}
}

// MinMonoid reduces with minimum; identity is the domain maximum
// (+Inf for floats), so reducing never overflows the natural range.
func MinMonoid[T Number]() Monoid[T] {
	return Monoid[T]{Identity: MaxOf[T](), Op: Min[T]()}
}

// MaxMonoid reduces with maximum; identity is the domain minimum.
func MaxMonoid[T Number]() Monoid[T] {
	return Monoid[T]{Identity: MinOf[T](), Op: Max[T]()}
}

// LOrMonoid reduces with logical OR; identity false.
func LOrMonoid[T ~bool]() Monoid[T] {
	return Monoid[T]{Identity: false, Op: LOr[T]()}
}

// LAndMonoid reduces with logical AND; identity true.
func LAndMonoid[T ~bool]() Monoid[T] {
	return Monoid[T]{Identity: true, Op: LAnd[T]()}
}

// Semirings.

// PlusTimes is the conventional arithmetic semiring.
func PlusTimes[T Number]() Semiring[T] {
	return Semiring[T]{Add: PlusMonoid[T](), Mul: Times[T]()}
}

// MinPlus is the tropical semiring used for shortest-path relaxation:
// add = min (identity +Inf / domain max), multiply = plus.
func MinPlus[T Number]() Semiring[T] {
	return Semiring[T]{Add: MinMonoid[T](), Mul: Plus[T]()}
}

// MaxPlus is the dual tropical semiring (longest path / scheduling).
func MaxPlus[T Number]() Semiring[T] {
	return Semiring[T]{Add: MaxMonoid[T](), Mul: Plus[T]()}
}

// MinFirst combines min reduction with a left-operand-only multiply.
// Used for parent-tracking traversals where the multiplicand carries
// vertex identifiers rather than weights.
func MinFirst[T Number]() Semiring[T] {
	return Semiring[T]{Add: MinMonoid[T](), Mul: First[T]()}
}

// LOrLAnd is the boolean reachability semiring.
func LOrLAnd[T ~bool]() Semiring[T] {
	return Semiring[T]{Add: LOrMonoid[T](), Mul: LAnd[T]()}
}
