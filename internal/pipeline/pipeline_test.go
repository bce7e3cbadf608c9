package pipeline

import (
	"testing"

	"surge/internal/builder"
	"surge/internal/diag"
	"surge/internal/element"
	"surge/internal/observ"
	"surge/internal/scope"
)

func newTestPipeline() *Pipeline {
	reg := element.NewRegistry()
	sc := scope.NewManager()
	b := builder.New(reg, sc)
	bag := diag.NewBag(32)
	return New(reg, sc, b, bag, observ.NewTimer())
}

func TestRegisterCoreTypesPopulatesRegistryAndScope(t *testing.T) {
	p := newTestPipeline()
	if err := p.registerCoreTypes(); err != nil {
		t.Fatalf("registerCoreTypes() = %v", err)
	}

	for _, name := range []string{"u8", "u64", "f32", "bool", "rune", "string", "void"} {
		if got := p.Registry.CoreTypeNamed(name); got == nil {
			t.Fatalf("CoreTypeNamed(%q) = nil, want a registered core type", name)
		}
		if _, ok := p.Scope.FindType(element.NewSymbol(name, nil), nil); !ok {
			t.Fatalf("Scope.FindType(%q) found nothing, want the core type in the scope manager's type table", name)
		}
	}
}

func TestRegisterBuiltinProceduresFixesReturnTypes(t *testing.T) {
	p := newTestPipeline()
	if err := p.registerCoreTypes(); err != nil {
		t.Fatalf("registerCoreTypes() = %v", err)
	}
	if err := p.registerBuiltinProcedures(); err != nil {
		t.Fatalf("registerBuiltinProcedures() = %v", err)
	}

	u64 := p.Registry.CoreTypeNamed("u64")
	for _, name := range []string{"size_of", "align_of", "length_of", "address_of"} {
		if got := p.Registry.CoreTypeNamed("builtin:" + name); got != u64 {
			t.Fatalf("CoreTypeNamed(builtin:%s) = %v, want u64 (%v)", name, got, u64)
		}
	}
}

func TestFoldConstantsResolvesSizeOfIntrinsic(t *testing.T) {
	p := newTestPipeline()
	if err := p.registerCoreTypes(); err != nil {
		t.Fatalf("registerCoreTypes() = %v", err)
	}

	u64Ref := element.NewTypeReference(nil)
	u64Ref.Resolve(p.Registry.CoreTypeNamed("u64"))
	typeLit := element.NewTypeLiteral(u64Ref)
	p.Registry.Allocate(typeLit)

	sizeOf := element.NewIntrinsic(element.IntrinsicSizeOf, typeLit)
	p.Registry.Allocate(sizeOf)
	sizeOfID := sizeOf.ID()

	stmt := element.NewStatement(sizeOf)
	p.Registry.Allocate(stmt)
	sizeOf.SetParentElement(stmt)

	if err := p.foldConstants(); err != nil {
		t.Fatalf("foldConstants() = %v", err)
	}

	folded, ok := stmt.Expr.(*element.IntegerLiteral)
	if !ok {
		t.Fatalf("after folding, statement expression = %T, want *IntegerLiteral", stmt.Expr)
	}
	if folded.Value != 8 {
		t.Fatalf("size_of(u64) folded to %d, want 8", folded.Value)
	}

	if got := p.Registry.Get(sizeOfID); got != nil {
		t.Fatalf("size_of intrinsic still resolvable from the registry after folding: %v", got)
	}

	inferred, ok, err := folded.InferType(p.Registry)
	if err != nil || !ok {
		t.Fatalf("folded.InferType() = (%v, %v, %v)", inferred, ok, err)
	}
	if inferred != p.Registry.CoreTypeNamed("u32") {
		t.Fatalf("folded literal's type = %v, want u32 (%v)", inferred, p.Registry.CoreTypeNamed("u32"))
	}

	attr, ok := folded.FindAttribute("intrinsic_substitution")
	if !ok {
		t.Fatalf("folded literal missing intrinsic_substitution attribute")
	}
	name, ok := attr.Value.AsString()
	if !ok || name != "size_of" {
		t.Fatalf("intrinsic_substitution value = (%q, %v), want (\"size_of\", true)", name, ok)
	}
}

func TestCheckDeclarationsFlagsTypeMismatch(t *testing.T) {
	p := newTestPipeline()
	if err := p.registerCoreTypes(); err != nil {
		t.Fatalf("registerCoreTypes() = %v", err)
	}

	u8Ref := element.NewTypeReference(nil)
	u8Ref.Resolve(p.Registry.CoreTypeNamed("u8"))

	init := element.NewInitializer(element.NewIntegerLiteral(300, false))
	p.Registry.Allocate(init)

	id := element.NewIdentifier(element.NewSymbol("x", nil), u8Ref, init)
	p.Registry.Allocate(id)

	if err := p.checkDeclarations(); err != nil {
		t.Fatalf("checkDeclarations() = %v", err)
	}

	if !p.Bag.HasErrors() {
		t.Fatalf("checkDeclarations() should have flagged a type mismatch for u8 = 300-valued initializer")
	}
}

func TestResolveUnresolvedIdentifiersBindsSingleCandidate(t *testing.T) {
	p := newTestPipeline()
	blk := p.Builder.MakeBlock()
	defer p.Builder.PopBlock()

	sym := element.NewSymbol("counter", nil)
	target := p.Builder.MakeIdentifier(sym, nil, nil)
	ref := p.Builder.MakeIdentifierReference(element.NewSymbol("counter", nil))

	if err := p.resolveUnresolvedIdentifiers(); err != nil {
		t.Fatalf("resolveUnresolvedIdentifiers() = %v", err)
	}

	if !ref.IsResolved() || ref.Identifier() != target {
		t.Fatalf("ref resolved to %v, want %v", ref.Identifier(), target)
	}
	if len(blk.AllIdentifiers()) != 1 {
		t.Fatalf("expected exactly one identifier registered in the block")
	}
}

func TestResolveUnresolvedIdentifiersErrorsOnUnknown(t *testing.T) {
	p := newTestPipeline()
	p.Builder.MakeBlock()
	defer p.Builder.PopBlock()

	p.Builder.MakeIdentifierReference(element.NewSymbol("nowhere", nil))

	if err := p.resolveUnresolvedIdentifiers(); err != nil {
		t.Fatalf("resolveUnresolvedIdentifiers() = %v", err)
	}
	if !p.Bag.HasErrors() {
		t.Fatalf("expected an unresolved-identifier diagnostic")
	}
}

func TestResolveUnknownTypesInfersFromInitializer(t *testing.T) {
	p := newTestPipeline()
	if err := p.registerCoreTypes(); err != nil {
		t.Fatalf("registerCoreTypes() = %v", err)
	}
	p.Builder.MakeBlock()
	defer p.Builder.PopBlock()

	id := p.Builder.MakeUnknownTypeIdentifier(element.NewSymbol("inferred", nil), element.NewIntegerLiteral(1, false))

	if err := p.resolveUnknownTypes(false); err != nil {
		t.Fatalf("resolveUnknownTypes(false) = %v", err)
	}

	if id.TypeRf.IsUnknownType() {
		t.Fatalf("identifier type should have resolved from its initializer")
	}
	if remaining := p.Scope.IdentifiersWithUnknownTypes(); len(remaining) != 0 {
		t.Fatalf("worklist should be drained once every identifier resolves, got %v", remaining)
	}
}
