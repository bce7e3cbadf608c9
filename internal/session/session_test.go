package session

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"surge/internal/config"
	"surge/internal/evaluator"
	"surge/internal/source"
	"surge/internal/trace"
)

// mapLoader is a fixed in-memory Loader keyed by module path, standing
// in for the out-of-scope parser collaborator.
type mapLoader struct {
	modules map[string]*evaluator.Node
}

func (l *mapLoader) Load(path string) (*evaluator.Node, source.FileID, []byte, error) {
	n, ok := l.modules[path]
	if !ok {
		return nil, 0, nil, fmt.Errorf("no such module %q", path)
	}
	return n, source.FileID(1), []byte(path), nil
}

func declNode(name string, typeName string, value string) *evaluator.Node {
	typeChild := &evaluator.Node{Kind: evaluator.NodeIdentifier, Lexeme: typeName}
	return &evaluator.Node{
		Kind: evaluator.NodeDeclaration,
		Children: []*evaluator.Node{
			{
				Kind:   evaluator.NodeIdentifier,
				Lexeme: name,
				Attrs:  map[string]string{"mutability": "const"},
				Children: []*evaluator.Node{
					typeChild,
					{Kind: evaluator.NodeIntegerLiteral, Lexeme: value},
				},
			},
		},
	}
}

func importNode(target string) *evaluator.Node {
	return &evaluator.Node{Kind: evaluator.NodeImport, Lexeme: target}
}

func TestCompileEntrySingleModule(t *testing.T) {
	loader := &mapLoader{modules: map[string]*evaluator.Node{
		"main": {Kind: evaluator.NodeModule, Children: []*evaluator.Node{
			declNode("answer", "u32", "42"),
		}},
	}}

	s := New(config.Defaults(), loader, nil)
	blocks, err := s.CompileEntry(context.Background(), "main")
	if err != nil {
		t.Fatalf("CompileEntry() error = %v", err)
	}
	if blocks == nil {
		t.Fatalf("CompileEntry() returned nil blocks")
	}
	if s.Bag.HasErrors() {
		t.Fatalf("CompileEntry() produced diagnostics: %v", s.Bag)
	}
}

func TestCompileEntryResolvesImports(t *testing.T) {
	loader := &mapLoader{modules: map[string]*evaluator.Node{
		"main": {Kind: evaluator.NodeModule, Children: []*evaluator.Node{
			importNode("util"),
			declNode("answer", "u32", "1"),
		}},
		"util": {Kind: evaluator.NodeModule, Children: []*evaluator.Node{
			declNode("helper", "u32", "2"),
		}},
	}}

	s := New(config.Defaults(), loader, nil)
	if _, err := s.CompileEntry(context.Background(), "main"); err != nil {
		t.Fatalf("CompileEntry() error = %v", err)
	}
	if _, ok := s.modules["util"]; !ok {
		t.Fatalf("expected the imported module \"util\" to be loaded into the session")
	}
}

func TestCompileEntryDetectsImportCycle(t *testing.T) {
	loader := &mapLoader{modules: map[string]*evaluator.Node{
		"a": {Kind: evaluator.NodeModule, Children: []*evaluator.Node{importNode("b")}},
		"b": {Kind: evaluator.NodeModule, Children: []*evaluator.Node{importNode("a")}},
	}}

	// The re-entry of a through b's import is caught by the session's
	// modules map: b's import resolves to the already-loaded module a.
	s := New(config.Defaults(), loader, nil)
	if _, err := s.CompileEntry(context.Background(), "a"); err != nil {
		t.Fatalf("CompileEntry() error = %v, want the cycle a -> b -> a to resolve to the loaded module", err)
	}
	if s.Bag.HasErrors() {
		t.Fatalf("an import cycle a -> b -> a should leave no error in the bag")
	}
	if b := s.modules["b"]; b == nil || len(b.Imports) != 1 || b.Imports[0].Ref.Resolved() != s.modules["a"] {
		t.Fatalf("expected b's import of a to resolve to the existing module a")
	}

	fs := source.NewFileSet()
	fs.AddVirtual("test", nil)
	rendered := s.FormatDiagnostics(fs)
	if strings.Contains(rendered, "import cycle") {
		t.Fatalf("FormatDiagnostics() = %q, want no import-cycle diagnostic", rendered)
	}
}

func TestResolveAssemblySymbolReturnsConstantValue(t *testing.T) {
	loader := &mapLoader{modules: map[string]*evaluator.Node{
		"main": {Kind: evaluator.NodeModule, Children: []*evaluator.Node{
			declNode("answer", "u32", "42"),
		}},
	}}

	s := New(config.Defaults(), loader, nil)
	if _, err := s.CompileEntry(context.Background(), "main"); err != nil {
		t.Fatalf("CompileEntry() error = %v", err)
	}

	mod := s.modules["main"]
	result, ok := s.ResolveAssemblySymbol(AssemblySymbolIdentifier, mod.Block(), "answer")
	if !ok {
		t.Fatalf("ResolveAssemblySymbol() did not find \"answer\"")
	}
	if !result.IsValue {
		t.Fatalf("ResolveAssemblySymbol() for a folded constant should return IsValue=true, got %+v", result)
	}
}

func TestCompileEntryWithTracingRecordsDriverSpan(t *testing.T) {
	loader := &mapLoader{modules: map[string]*evaluator.Node{
		"main": {Kind: evaluator.NodeModule, Children: []*evaluator.Node{
			declNode("answer", "u32", "42"),
		}},
	}}

	opts := config.Defaults()
	opts.TraceLevel = "phase"
	opts.HeartbeatIntervalMS = 50

	s := New(opts, loader, nil)
	if _, err := s.CompileEntry(context.Background(), "main"); err != nil {
		t.Fatalf("CompileEntry() error = %v", err)
	}

	events, ok := s.TraceSnapshot()
	if !ok {
		t.Fatalf("TraceSnapshot() ok = false, want a ring-buffered tracer")
	}
	if len(events) == 0 {
		t.Fatalf("expected at least one recorded trace event")
	}

	var buf bytes.Buffer
	if err := s.DumpTrace(&buf, trace.FormatText); err != nil {
		t.Fatalf("DumpTrace() error = %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("DumpTrace() wrote no bytes")
	}
	if !strings.Contains(buf.String(), "compile:main") {
		t.Fatalf("dumped trace missing the driver span, got: %s", buf.String())
	}
}

func TestCompileEntryTracingOffReturnsNoSnapshot(t *testing.T) {
	loader := &mapLoader{modules: map[string]*evaluator.Node{
		"main": {Kind: evaluator.NodeModule, Children: []*evaluator.Node{
			declNode("answer", "u32", "42"),
		}},
	}}

	s := New(config.Defaults(), loader, nil)
	if _, err := s.CompileEntry(context.Background(), "main"); err != nil {
		t.Fatalf("CompileEntry() error = %v", err)
	}

	if _, ok := s.TraceSnapshot(); ok {
		t.Fatalf("TraceSnapshot() ok = true, want false when trace_level defaults to off")
	}
}
