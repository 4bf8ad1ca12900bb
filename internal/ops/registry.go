package ops

import (
	"fmt"
	"sync"
)

// registry stores named operators of all four kinds. Registration
// validates the declared type signature eagerly so that a mismatch
// surfaces when the operator is defined, not when it is first used.
//
// The table is append-only: entries are never replaced or removed, and
// reads are safe for concurrent use once registration completed.
type registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

type entry struct {
	kind string // "unary", "binary", "monoid", "semiring"
	sig  DataType
	val  any
}

var global = &registry{entries: make(map[string]entry)}

func (r *registry) add(name, kind string, sig DataType, val any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[name]; ok {
		return fmt.Errorf("%w: %q", ErrOperatorExists, name)
	}
	r.entries[name] = entry{kind: kind, sig: sig, val: val}
	return nil
}

func (r *registry) get(name, kind string) (entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	if !ok || e.kind != kind {
		return entry{}, fmt.Errorf("%w: %s %q", ErrUninitializedOperator, kind, name)
	}
	return e, nil
}

// RegisterUnaryOp registers fn under name with the declared signature.
// Returns ErrSemiringType if sig does not match the instantiated domain
// of fn, ErrOperatorExists if the name is taken.
func RegisterUnaryOp[T Value](name string, fn UnaryOp[T], sig DataType) error {
	if err := checkSig[T](name, sig); err != nil {
		return err
	}
	return global.add(name, "unary", sig, fn)
}

// RegisterBinaryOp registers fn under name with the declared signature.
func RegisterBinaryOp[T Value](name string, fn BinaryOp[T], sig DataType) error {
	if err := checkSig[T](name, sig); err != nil {
		return err
	}
	return global.add(name, "binary", sig, fn)
}

// RegisterMonoid registers m under name with the declared signature.
func RegisterMonoid[T Value](name string, m Monoid[T], sig DataType) error {
	if err := checkSig[T](name, sig); err != nil {
		return err
	}
	return global.add(name, "monoid", sig, m)
}

// RegisterSemiring registers s under name with the declared signature.
func RegisterSemiring[T Value](name string, s Semiring[T], sig DataType) error {
	if err := checkSig[T](name, sig); err != nil {
		return err
	}
	return global.add(name, "semiring", sig, s)
}

// LookupUnaryOp resolves a registered unary operator for domain T.
func LookupUnaryOp[T Value](name string) (UnaryOp[T], error) {
	e, err := global.get(name, "unary")
	if err != nil {
		return nil, err
	}
	fn, ok := e.val.(UnaryOp[T])
	if !ok {
		return nil, domainError[T](name, e.sig)
	}
	return fn, nil
}

// LookupBinaryOp resolves a registered binary operator for domain T.
func LookupBinaryOp[T Value](name string) (BinaryOp[T], error) {
	e, err := global.get(name, "binary")
	if err != nil {
		return nil, err
	}
	fn, ok := e.val.(BinaryOp[T])
	if !ok {
		return nil, domainError[T](name, e.sig)
	}
	return fn, nil
}

// LookupMonoid resolves a registered monoid for domain T.
func LookupMonoid[T Value](name string) (Monoid[T], error) {
	e, err := global.get(name, "monoid")
	if err != nil {
		return Monoid[T]{}, err
	}
	m, ok := e.val.(Monoid[T])
	if !ok {
		return Monoid[T]{}, domainError[T](name, e.sig)
	}
	return m, nil
}

// LookupSemiring resolves a registered semiring for domain T.
func LookupSemiring[T Value](name string) (Semiring[T], error) {
	e, err := global.get(name, "semiring")
	if err != nil {
		return Semiring[T]{}, err
	}
	s, ok := e.val.(Semiring[T])
	if !ok {
		return Semiring[T]{}, domainError[T](name, e.sig)
	}
	return s, nil
}

func checkSig[T Value](name string, sig DataType) error {
	if got := TypeOf[T](); got != sig {
		return fmt.Errorf("%w: %q declared %s, function domain %s",
			ErrSemiringType, name, sig, got)
	}
	return nil
}

func domainError[T Value](name string, sig DataType) error {
	return fmt.Errorf("%w: %q registered for %s, requested %s",
		ErrSemiringType, name, sig, TypeOf[T]())
}
