// Copyright 2026 The grb Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package grb

import "github.com/grb-ml/grb/internal/ops"

// UnaryOp maps one value to another within a single domain.
type UnaryOp[T Value] = ops.UnaryOp[T]

// BinaryOp combines two values within a single domain.
type BinaryOp[T Value] = ops.BinaryOp[T]

// Monoid pairs an associative BinaryOp with its identity element.
type Monoid[T Value] = ops.Monoid[T]

// Semiring pairs an additive Monoid with a multiplicative BinaryOp.
type Semiring[T Value] = ops.Semiring[T]

// Builtin binary operators.

// Plus returns the addition operator.
func Plus[T Number]() BinaryOp[T] { return ops.Plus[T]() }

// Times returns the multiplication operator.
func Times[T Number]() BinaryOp[T] { return ops.Times[T]() }

// Min returns the minimum operator. NaN operands are kept or dropped by
// operand order; see the builtin operator docs.
func Min[T Number]() BinaryOp[T] { return ops.Min[T]() }

// Max returns the maximum operator.
func Max[T Number]() BinaryOp[T] { return ops.Max[T]() }

// First returns the operator selecting its first operand.
func First[T Value]() BinaryOp[T] { return ops.First[T]() }

// Second returns the operator selecting its second operand.
func Second[T Value]() BinaryOp[T] { return ops.Second[T]() }

// LOr returns logical or for bool domains.
func LOr() BinaryOp[bool] { return ops.LOr[bool]() }

// LAnd returns logical and for bool domains.
func LAnd() BinaryOp[bool] { return ops.LAnd[bool]() }

// Eq returns equality comparison, yielding 1 or 0 in the domain.
func Eq[T Number]() BinaryOp[T] { return ops.Eq[T]() }

// Builtin unary operators.

// Identity returns the identity unary operator.
func Identity[T Value]() UnaryOp[T] { return ops.Identity[T]() }

// AInv returns additive inverse (negation).
func AInv[T Number]() UnaryOp[T] { return ops.AInv[T]() }

// Abs returns absolute value.
func Abs[T Number]() UnaryOp[T] { return ops.Abs[T]() }

// Bind1st fixes the first operand of op to x.
func Bind1st[T Value](op BinaryOp[T], x T) UnaryOp[T] { return ops.Bind1st(op, x) }

// Bind2nd fixes the second operand of op to y.
func Bind2nd[T Value](op BinaryOp[T], y T) UnaryOp[T] { return ops.Bind2nd(op, y) }

// Builtin monoids.

// PlusMonoid returns the (+, 0) monoid.
func PlusMonoid[T Number]() Monoid[T] { return ops.PlusMonoid[T]() }

// TimesMonoid returns the (*, 1) monoid.
func TimesMonoid[T Number]() Monoid[T] { return ops.TimesMonoid[T]() }

// MinMonoid returns the (min, +inf) monoid.
func MinMonoid[T Number]() Monoid[T] { return ops.MinMonoid[T]() }

// MaxMonoid returns the (max, -inf) monoid.
func MaxMonoid[T Number]() Monoid[T] { return ops.MaxMonoid[T]() }

// LOrMonoid returns the (or, false) monoid.
func LOrMonoid() Monoid[bool] { return ops.LOrMonoid[bool]() }

// LAndMonoid returns the (and, true) monoid.
func LAndMonoid() Monoid[bool] { return ops.LAndMonoid[bool]() }

// Builtin semirings.

// PlusTimes returns the conventional arithmetic semiring.
func PlusTimes[T Number]() Semiring[T] { return ops.PlusTimes[T]() }

// MinPlus returns the tropical semiring used for shortest paths.
func MinPlus[T Number]() Semiring[T] { return ops.MinPlus[T]() }

// MaxPlus returns the (max, +) semiring.
func MaxPlus[T Number]() Semiring[T] { return ops.MaxPlus[T]() }

// MinFirst returns the (min, first) semiring used for parent selection
// in graph traversals.
func MinFirst[T Number]() Semiring[T] { return ops.MinFirst[T]() }

// LOrLAnd returns the boolean reachability semiring.
func LOrLAnd() Semiring[bool] { return ops.LOrLAnd[bool]() }

// Operator registry.

// RegisterUnaryOp registers a named unary operator for the given
// domain. Registration fails with ErrOperatorExists on a name clash and
// with ErrSemiringType when the declared domain does not match T.
func RegisterUnaryOp[T Value](name string, op UnaryOp[T], domain DataType) error {
	return ops.RegisterUnaryOp(name, op, domain)
}

// RegisterBinaryOp registers a named binary operator.
func RegisterBinaryOp[T Value](name string, op BinaryOp[T], domain DataType) error {
	return ops.RegisterBinaryOp(name, op, domain)
}

// RegisterMonoid registers a named monoid.
func RegisterMonoid[T Value](name string, m Monoid[T], domain DataType) error {
	return ops.RegisterMonoid(name, m, domain)
}

// RegisterSemiring registers a named semiring.
func RegisterSemiring[T Value](name string, s Semiring[T], domain DataType) error {
	return ops.RegisterSemiring(name, s, domain)
}

// LookupUnaryOp retrieves a registered unary operator by name. Lookup
// fails with ErrUninitializedOperator for unknown names and with
// ErrSemiringType when T does not match the registered domain.
func LookupUnaryOp[T Value](name string) (UnaryOp[T], error) {
	return ops.LookupUnaryOp[T](name)
}

// LookupBinaryOp retrieves a registered binary operator by name.
func LookupBinaryOp[T Value](name string) (BinaryOp[T], error) {
	return ops.LookupBinaryOp[T](name)
}

// LookupMonoid retrieves a registered monoid by name.
func LookupMonoid[T Value](name string) (Monoid[T], error) {
	return ops.LookupMonoid[T](name)
}

// LookupSemiring retrieves a registered semiring by name.
func LookupSemiring[T Value](name string) (Semiring[T], error) {
	return ops.LookupSemiring[T](name)
}
