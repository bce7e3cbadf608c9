package trace

import "testing"

func TestNopTracerDiscardsEverything(t *testing.T) {
	if Nop.Enabled() {
		t.Fatalf("Nop tracer must report disabled")
	}
	// Must not panic even though it satisfies Tracer with a *Event param.
	Nop.Emit(&Event{Kind: KindPoint, Scope: ScopeModule})
}

func TestSpanBeginEndRecordsOnRingTracer(t *testing.T) {
	ring := NewRingTracer(16, LevelPhase)

	span := Begin(ring, ScopePass, "core types registration", 0)
	span.End("ok")

	events := ring.Snapshot()
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2 (begin+end)", len(events))
	}
	if events[0].Kind != KindSpanBegin || events[0].Name != "core types registration" {
		t.Fatalf("unexpected begin event: %+v", events[0])
	}
	if events[1].Kind != KindSpanEnd || events[1].Detail != "ok" {
		t.Fatalf("unexpected end event: %+v", events[1])
	}
	if events[0].SpanID != events[1].SpanID {
		t.Fatalf("begin/end span IDs differ: %d vs %d", events[0].SpanID, events[1].SpanID)
	}
}

func TestSpanBeginSkipsFinerScopeThanLevel(t *testing.T) {
	ring := NewRingTracer(16, LevelPhase)

	span := Begin(ring, ScopeModule, "load util", 0)
	span.End("ok")

	if len(ring.Snapshot()) != 0 {
		t.Fatalf("expected module-scope span to be filtered out at LevelPhase")
	}
}

func TestMultiTracerFansOutToEveryTracer(t *testing.T) {
	a := NewRingTracer(16, LevelDebug)
	b := NewRingTracer(16, LevelDebug)
	multi := NewMultiTracer(LevelDebug, a, b)

	span := Begin(multi, ScopeDriver, "compile:main", 0)
	span.End("done")

	if len(a.Snapshot()) != 2 || len(b.Snapshot()) != 2 {
		t.Fatalf("expected both tracers to receive begin+end events")
	}
}
