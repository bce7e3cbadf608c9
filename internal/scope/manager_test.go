package scope

import (
	"testing"

	"surge/internal/element"
)

func TestAddTypeToScopeDuplicateDetection(t *testing.T) {
	m := NewManager()
	blk := m.PushNewBlock()

	u8 := element.NewNumericType(element.NewSymbol("u8", nil), 1, false, element.NumberClassInteger)
	if err := m.AddTypeToScope(blk, u8); err != nil {
		t.Fatalf("first AddTypeToScope() = %v, want nil", err)
	}

	dup := element.NewNumericType(element.NewSymbol("u8", nil), 1, false, element.NumberClassInteger)
	if err := m.AddTypeToScope(blk, dup); err == nil {
		t.Fatalf("AddTypeToScope() with duplicate symbol should error")
	}
}

func TestFindTypeWalksScopeChain(t *testing.T) {
	m := NewManager()
	outer := m.PushNewBlock()
	u8 := element.NewNumericType(element.NewSymbol("u8", nil), 1, false, element.NumberClassInteger)
	if err := m.AddTypeToScope(outer, u8); err != nil {
		t.Fatalf("AddTypeToScope() = %v", err)
	}

	inner := m.PushNewBlock()
	found, ok := m.FindType(element.NewSymbol("u8", nil), inner)
	if !ok || found != element.Type(u8) {
		t.Fatalf("FindType from inner scope = (%v, %v), want (%v, true)", found, ok, u8)
	}
}

func TestFindIdentifierStopsAtInnermostMatch(t *testing.T) {
	m := NewManager()
	outer := m.PushNewBlock()
	outerID := element.NewIdentifier(element.NewSymbol("x", nil), nil, nil)
	outer.AddIdentifier(outerID)

	inner := m.PushNewBlock()
	innerID := element.NewIdentifier(element.NewSymbol("x", nil), nil, nil)
	inner.AddIdentifier(innerID)

	found := m.FindIdentifier(element.NewSymbol("x", nil), inner)
	if len(found) != 1 || found[0] != innerID {
		t.Fatalf("FindIdentifier = %v, want [innerID] (shadowing should stop at innermost scope)", found)
	}
}

func TestUnknownTypeIdentifierWorklist(t *testing.T) {
	m := NewManager()
	id := element.NewIdentifier(element.NewSymbol("x", nil), nil, nil)

	m.EnqueueUnknownTypeIdentifier(id)
	got := m.IdentifiersWithUnknownTypes()
	if len(got) != 1 || got[0] != id {
		t.Fatalf("IdentifiersWithUnknownTypes() = %v, want [id]", got)
	}

	m.SetUnknownTypeIdentifiers(nil)
	if got := m.IdentifiersWithUnknownTypes(); len(got) != 0 {
		t.Fatalf("IdentifiersWithUnknownTypes() after clear = %v, want empty", got)
	}
}

func TestUnresolvedIdentifierReferenceWorklist(t *testing.T) {
	m := NewManager()
	ref := element.NewIdentifierReference(element.NewSymbol("y", nil))

	m.EnqueueUnresolvedIdentifierReference(ref)
	got := m.UnresolvedIdentifierReferences()
	if len(got) != 1 || got[0] != ref {
		t.Fatalf("UnresolvedIdentifierReferences() = %v, want [ref]", got)
	}
}

func TestBlockPushPopRestoresParent(t *testing.T) {
	m := NewManager()
	outer := m.PushNewBlock()
	inner := m.PushNewBlock()
	if m.CurrentBlock() != inner {
		t.Fatalf("CurrentBlock() = %v, want inner", m.CurrentBlock())
	}

	popped := m.PopBlock()
	if popped != inner {
		t.Fatalf("PopBlock() = %v, want inner", popped)
	}
	if m.CurrentBlock() != outer {
		t.Fatalf("CurrentBlock() after pop = %v, want outer", m.CurrentBlock())
	}
}
