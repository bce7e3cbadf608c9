package builder

import (
	"testing"

	"surge/internal/element"
	"surge/internal/scope"
)

func newTestBuilder() *Builder {
	return New(element.NewRegistry(), scope.NewManager())
}

func TestMakeTypeReferenceResolvesAgainstDeclaredType(t *testing.T) {
	b := newTestBuilder()
	b.MakeBlock()

	u8 := element.NewNumericType(element.NewSymbol("u8", nil), 1, false, element.NumberClassInteger)
	if err := b.Scope.AddTypeToScope(b.Scope.CurrentBlock(), u8); err != nil {
		t.Fatalf("AddTypeToScope() = %v", err)
	}

	ref := b.MakeTypeReference(element.NewSymbol("u8", nil))
	if !ref.IsResolved() {
		t.Fatalf("MakeTypeReference() for a declared type should resolve immediately")
	}
	if ref.Resolved() != element.Type(u8) {
		t.Fatalf("MakeTypeReference() resolved to %v, want %v", ref.Resolved(), u8)
	}
}

func TestMakeTypeReferenceLeavesUnknownUnresolved(t *testing.T) {
	b := newTestBuilder()
	b.MakeBlock()

	ref := b.MakeTypeReference(element.NewSymbol("does_not_exist", nil))
	if ref.IsResolved() {
		t.Fatalf("MakeTypeReference() for an undeclared type should stay unresolved")
	}
}

func TestMakeBlockPushesAndPopsScope(t *testing.T) {
	b := newTestBuilder()
	blk := b.MakeBlock()
	if b.Scope.CurrentBlock() != blk {
		t.Fatalf("MakeBlock() did not push the new block as current")
	}
	if popped := b.PopBlock(); popped != blk {
		t.Fatalf("PopBlock() = %v, want %v", popped, blk)
	}
}

func TestMakeIdentifierAddsToCurrentBlock(t *testing.T) {
	b := newTestBuilder()
	blk := b.MakeBlock()

	sym := element.NewSymbol("x", nil)
	id := b.MakeIdentifier(sym, nil, nil)

	found := b.Scope.FindIdentifier(sym, blk)
	if len(found) != 1 || found[0] != id {
		t.Fatalf("MakeIdentifier() did not register %v in the current block, found %v", id, found)
	}
}

func TestMakeIdentifierReferenceEnqueuesUnresolved(t *testing.T) {
	b := newTestBuilder()
	b.MakeBlock()

	ref := b.MakeIdentifierReference(element.NewSymbol("later", nil))
	pending := b.Scope.UnresolvedIdentifierReferences()
	if len(pending) != 1 || pending[0] != ref {
		t.Fatalf("MakeIdentifierReference() did not enqueue onto the unresolved worklist, got %v", pending)
	}
}

func TestMakeUnknownTypeIdentifierEnqueues(t *testing.T) {
	b := newTestBuilder()
	b.MakeBlock()

	id := b.MakeUnknownTypeIdentifier(element.NewSymbol("inferred", nil), element.NewIntegerLiteral(1, false))
	if !id.TypeWasInferred {
		t.Fatalf("MakeUnknownTypeIdentifier() should mark TypeWasInferred")
	}
	pending := b.Scope.IdentifiersWithUnknownTypes()
	if len(pending) != 1 || pending[0] != id {
		t.Fatalf("MakeUnknownTypeIdentifier() did not enqueue onto the unknown-types worklist, got %v", pending)
	}
}

func TestMakeLabelReferenceIsUnresolvedByConstruction(t *testing.T) {
	b := newTestBuilder()
	ref := b.MakeLabelReference("outer")
	if ref == nil {
		t.Fatalf("MakeLabelReference() returned nil")
	}
	if ref.IsResolved() {
		t.Fatalf("MakeLabelReference() should return an unresolved reference")
	}
}
