package element

import "testing"

func TestRegistryAllocateAndGet(t *testing.T) {
	reg := NewRegistry()
	lit := NewIntegerLiteral(42, false)
	reg.Allocate(lit)

	if got := reg.Get(lit.ID()); got != Element(lit) {
		t.Fatalf("Get(%s) = %v, want %v", lit.ID(), got, lit)
	}
	ids := reg.FindByTag(TagIntegerLiteral)
	if len(ids) != 1 || ids[0] != lit.ID() {
		t.Fatalf("FindByTag(TagIntegerLiteral) = %v, want [%s]", ids, lit.ID())
	}
}

func TestRegistryRemoveDeferredUntilFlush(t *testing.T) {
	reg := NewRegistry()
	lit := NewIntegerLiteral(1, false)
	reg.Allocate(lit)

	reg.Remove(lit.ID())
	if reg.Get(lit.ID()) != nil {
		t.Fatalf("Get should return nil immediately after Remove")
	}
	if ids := reg.FindByTag(TagIntegerLiteral); len(ids) != 0 {
		t.Fatalf("FindByTag should exclude a removed id before flush, got %v", ids)
	}

	reg.FlushRemovals()
	if reg.Len() != 0 {
		t.Fatalf("Len() after flush = %d, want 0", reg.Len())
	}
}

func TestRegistryCascadeRemove(t *testing.T) {
	reg := NewRegistry()
	left := NewIntegerLiteral(1, false)
	right := NewIntegerLiteral(2, false)
	bin := NewBinaryOperator(BinaryAdd, left, right)
	reg.Allocate(left)
	reg.Allocate(right)
	reg.Allocate(bin)

	reg.Remove(bin.ID())
	reg.FlushRemovals()

	if reg.Len() != 0 {
		t.Fatalf("Len() after cascading flush = %d, want 0 (left/right should cascade away)", reg.Len())
	}
}

func TestRegistryCascadeSkipsNonOwning(t *testing.T) {
	reg := NewRegistry()
	shared := NewIntegerLiteral(7, false)
	shared.MakeNonOwning()
	bin := NewBinaryOperator(BinaryAdd, shared, NewIntegerLiteral(8, false))
	reg.Allocate(shared)
	reg.Allocate(bin.Right)
	reg.Allocate(bin)

	reg.Remove(bin.ID())
	reg.FlushRemovals()

	if reg.Get(shared.ID()) == nil {
		t.Fatalf("a non-owning child must survive its parent's cascade removal")
	}
}

func TestRegistryCheckInvariant1(t *testing.T) {
	reg := NewRegistry()
	left := NewIntegerLiteral(1, false)
	right := NewIntegerLiteral(2, false)
	bin := NewBinaryOperator(BinaryAdd, left, right)
	reg.Allocate(left)
	reg.Allocate(right)
	reg.Allocate(bin)

	if err := reg.CheckInvariant1(); err != nil {
		t.Fatalf("CheckInvariant1() = %v, want nil", err)
	}
}

func TestRegistryCoreTypeLookup(t *testing.T) {
	reg := NewRegistry()
	u8 := NewNumericType(NewSymbol("u8", nil), 1, false, NumberClassInteger)
	reg.RegisterCoreType("u8", u8)

	if got := reg.CoreTypeNamed("u8"); got != Type(u8) {
		t.Fatalf("CoreTypeNamed(u8) = %v, want %v", got, u8)
	}
	if got := reg.CoreTypeNamed("missing"); got != nil {
		t.Fatalf("CoreTypeNamed(missing) = %v, want nil", got)
	}
}
