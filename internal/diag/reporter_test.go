package diag

import (
	"testing"

	"surge/internal/source"
)

func TestReportErrorEmitsThroughBagReporter(t *testing.T) {
	bag := NewBag(8)
	reporter := BagReporter{Bag: bag}

	ReportError(reporter, CModuleNotFound, source.Span{}, "module not found").
		WithNote(source.Span{}, "checked the import path").
		Emit()

	if !bag.HasErrors() {
		t.Fatalf("expected a diagnostic in the bag")
	}
	items := bag.Items()
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if items[0].Code != CModuleNotFound {
		t.Fatalf("code = %v, want %v", items[0].Code, CModuleNotFound)
	}
	if len(items[0].Notes) != 1 {
		t.Fatalf("notes = %d, want 1", len(items[0].Notes))
	}
}

func TestReportBuilderEmitsOnlyOnce(t *testing.T) {
	bag := NewBag(8)
	b := ReportError(BagReporter{Bag: bag}, CModuleCycle, source.Span{}, "cycle")
	b.Emit()
	b.Emit()

	if n := len(bag.Items()); n != 1 {
		t.Fatalf("items = %d, want 1 (Emit must be idempotent)", n)
	}
}

func TestDedupReporterSuppressesRepeatedDiagnostic(t *testing.T) {
	bag := NewBag(8)
	reporter := NewDedupReporter(BagReporter{Bag: bag})

	span := source.Span{File: 1, Start: 0, End: 3}
	reporter.Report(CModuleCycle, SevError, span, "import cycle at \"a\"", nil, nil)
	reporter.Report(CModuleCycle, SevError, span, "import cycle at \"a\"", nil, nil)
	reporter.Report(CModuleCycle, SevError, span, "import cycle at \"b\"", nil, nil)

	if n := len(bag.Items()); n != 2 {
		t.Fatalf("items = %d, want 2 (one suppressed duplicate, one distinct message)", n)
	}
}
