package ops

import (
	"errors"
	"testing"
)

// The registry is process-global and append-only, so every test
// registers under a unique name.

func TestRegisterLookupRoundtrip(t *testing.T) {
	if err := RegisterBinaryOp("test.rt.plus", Plus[int64](), Int64); err != nil {
		t.Fatalf("register: %v", err)
	}
	op, err := LookupBinaryOp[int64]("test.rt.plus")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got := op(2, 3); got != 5 {
		t.Errorf("looked-up op(2,3) = %d, want 5", got)
	}
}

func TestRegisterDomainMismatch(t *testing.T) {
	err := RegisterBinaryOp("test.mismatch.plus", Plus[int64](), Float64)
	if !errors.Is(err, ErrSemiringType) {
		t.Errorf("register with wrong sig: err = %v, want ErrSemiringType", err)
	}
	// The failed registration must not claim the name.
	if _, err := LookupBinaryOp[int64]("test.mismatch.plus"); !errors.Is(err, ErrUninitializedOperator) {
		t.Errorf("lookup after failed register: err = %v, want ErrUninitializedOperator", err)
	}
}

func TestRegisterDuplicateName(t *testing.T) {
	if err := RegisterUnaryOp("test.dup.abs", Abs[int64](), Int64); err != nil {
		t.Fatalf("first register: %v", err)
	}
	err := RegisterUnaryOp("test.dup.abs", Abs[int64](), Int64)
	if !errors.Is(err, ErrOperatorExists) {
		t.Errorf("second register: err = %v, want ErrOperatorExists", err)
	}
}

func TestLookupUnknownName(t *testing.T) {
	if _, err := LookupSemiring[int64]("test.never.registered"); !errors.Is(err, ErrUninitializedOperator) {
		t.Errorf("err = %v, want ErrUninitializedOperator", err)
	}
}

func TestLookupWrongDomain(t *testing.T) {
	if err := RegisterSemiring("test.wd.minplus", MinPlus[int64](), Int64); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := LookupSemiring[float64]("test.wd.minplus"); !errors.Is(err, ErrSemiringType) {
		t.Errorf("cross-domain lookup: err = %v, want ErrSemiringType", err)
	}
	if _, err := LookupSemiring[int64]("test.wd.minplus"); err != nil {
		t.Errorf("same-domain lookup: %v", err)
	}
}

func TestLookupWrongKind(t *testing.T) {
	if err := RegisterMonoid("test.wk.min", MinMonoid[int64](), Int64); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := LookupBinaryOp[int64]("test.wk.min"); !errors.Is(err, ErrUninitializedOperator) {
		t.Errorf("kind-crossed lookup: err = %v, want ErrUninitializedOperator", err)
	}
}

func TestRegisteredMonoidUsable(t *testing.T) {
	if err := RegisterMonoid("test.use.max", MaxMonoid[int64](), Int64); err != nil {
		t.Fatalf("register: %v", err)
	}
	m, err := LookupMonoid[int64]("test.use.max")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got := m.Op(m.Identity, 42); got != 42 {
		t.Errorf("op(identity, 42) = %d", got)
	}
}
