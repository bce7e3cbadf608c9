package evaluator

import (
	"testing"

	"surge/internal/builder"
	"surge/internal/diag"
	"surge/internal/element"
	"surge/internal/scope"
	"surge/internal/source"
)

func newTestEvaluator() (*Evaluator, *element.Registry, *scope.Manager) {
	reg := element.NewRegistry()
	sc := scope.NewManager()
	b := builder.New(reg, sc)
	return New(b, diag.NewBag(32)), reg, sc
}

func intNode(value string) *Node {
	return &Node{Kind: NodeIntegerLiteral, Lexeme: value}
}

func TestEvaluateModuleBuildsDeclarationWithExplicitType(t *testing.T) {
	ev, _, sc := newTestEvaluator()

	decl := &Node{
		Kind: NodeDeclaration,
		Children: []*Node{
			{
				Kind:   NodeIdentifier,
				Lexeme: "answer",
				Attrs:  map[string]string{"mutability": "const"},
				Children: []*Node{
					{Kind: NodeIdentifier, Lexeme: "u32"},
					intNode("42"),
				},
			},
		},
	}
	root := &Node{Kind: NodeModule, Children: []*Node{decl}}

	mod, err := ev.EvaluateModule("main.sg", source.FileID(1), root)
	if err != nil {
		t.Fatalf("EvaluateModule() error = %v", err)
	}
	if mod == nil {
		t.Fatalf("EvaluateModule() returned nil module")
	}

	if got := len(sc.IdentifiersWithUnknownTypes()); got != 0 {
		t.Fatalf("explicitly-typed declaration should not enqueue onto the unknown-types worklist, got %d pending", got)
	}
}

func TestEvaluateModuleEnqueuesUnknownTypeIdentifier(t *testing.T) {
	ev, _, sc := newTestEvaluator()

	decl := &Node{
		Kind: NodeDeclaration,
		Children: []*Node{
			{
				Kind:   NodeIdentifier,
				Lexeme: "inferred",
				Children: []*Node{
					nil,
					intNode("7"),
				},
			},
		},
	}
	root := &Node{Kind: NodeModule, Children: []*Node{decl}}

	if _, err := ev.EvaluateModule("main.sg", source.FileID(1), root); err != nil {
		t.Fatalf("EvaluateModule() error = %v", err)
	}

	pending := sc.IdentifiersWithUnknownTypes()
	if len(pending) != 1 || pending[0].Sym.Qualified() != "inferred" {
		t.Fatalf("expected exactly one unknown-type identifier named inferred, got %v", pending)
	}
}

func TestEvaluateIdentifierReferenceEnqueuesUnresolved(t *testing.T) {
	ev, _, sc := newTestEvaluator()
	ev.Builder.MakeModule("main.sg", source.FileID(1))
	defer func() {
		ev.Builder.PopBlock()
		ev.Builder.PopModule()
	}()

	n := &Node{Kind: NodeIdentifierReference, Lexeme: "counter"}
	v, err := ev.Evaluate(n)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	ref, ok := v.Element.(*element.IdentifierReference)
	if !ok {
		t.Fatalf("Evaluate(identifier reference) = %T, want *IdentifierReference", v.Element)
	}

	pending := sc.UnresolvedIdentifierReferences()
	if len(pending) != 1 || pending[0] != ref {
		t.Fatalf("expected the reference to be enqueued on the unresolved worklist, got %v", pending)
	}
}

func TestEvaluateQualifiedLexemeSplitsNamespaces(t *testing.T) {
	ev, _, _ := newTestEvaluator()
	sym := ev.symbolFromLexeme("outer::inner::name")
	if sym.Name != "name" {
		t.Fatalf("symbolFromLexeme() name = %q, want %q", sym.Name, "name")
	}
	if len(sym.Namespaces) != 2 || sym.Namespaces[0] != "outer" || sym.Namespaces[1] != "inner" {
		t.Fatalf("symbolFromLexeme() namespaces = %v, want [outer inner]", sym.Namespaces)
	}
}
