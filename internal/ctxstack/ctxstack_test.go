package ctxstack

import (
	"testing"

	"surge/internal/diag"
	"surge/internal/source"
)

type fakeLogger struct{ lines []string }

func (f *fakeLogger) Logf(format string, args ...any) { f.lines = append(f.lines, format) }

func TestPushPopOrder(t *testing.T) {
	s := New()
	bag := diag.NewBag(10)
	l1, l2 := &fakeLogger{}, &fakeLogger{}

	if err := s.Push(Frame{Logger: l1}, bag, source.Span{}); err != nil {
		t.Fatalf("push 1: %v", err)
	}
	if err := s.Push(Frame{Logger: l2}, bag, source.Span{}); err != nil {
		t.Fatalf("push 2: %v", err)
	}
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}

	top, ok := s.Current()
	if !ok || top.Logger != l2 {
		t.Fatalf("expected l2 on top")
	}

	f, err := s.Pop(bag, source.Span{})
	if err != nil || f.Logger != l2 {
		t.Fatalf("pop 1: got %v err %v", f, err)
	}
	f, err = s.Pop(bag, source.Span{})
	if err != nil || f.Logger != l1 {
		t.Fatalf("pop 2: got %v err %v", f, err)
	}
}

func TestPopUnderflow(t *testing.T) {
	s := New()
	bag := diag.NewBag(10)
	if _, err := s.Pop(bag, source.Span{}); err == nil {
		t.Fatalf("expected underflow error")
	}
	if !bag.HasErrors() {
		t.Fatalf("expected a diagnostic recorded")
	}
}

func TestPushOverflow(t *testing.T) {
	s := New()
	bag := diag.NewBag(Capacity + 10)
	for i := 0; i < Capacity; i++ {
		if err := s.Push(Frame{}, bag, source.Span{}); err != nil {
			t.Fatalf("unexpected overflow at %d: %v", i, err)
		}
	}
	if err := s.Push(Frame{}, bag, source.Span{}); err == nil {
		t.Fatalf("expected overflow error at capacity")
	}
	if !bag.HasErrors() {
		t.Fatalf("expected overflow diagnostic recorded")
	}
}

func TestRegistryPerHandle(t *testing.T) {
	r := NewRegistry()
	bag := diag.NewBag(10)

	a := r.StackFor(1)
	b := r.StackFor(2)
	if a == b {
		t.Fatalf("expected distinct stacks per handle")
	}

	if err := a.Push(Frame{}, bag, source.Span{}); err != nil {
		t.Fatalf("push: %v", err)
	}
	if b.Depth() != 0 {
		t.Fatalf("handle 2 should be unaffected by handle 1's push")
	}

	r.Release(1)
	fresh := r.StackFor(1)
	if fresh.Depth() != 0 {
		t.Fatalf("expected a fresh stack after release")
	}
}
