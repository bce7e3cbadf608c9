package emit

import (
	"testing"

	"surge/internal/diag"
	"surge/internal/element"
)

func newTestEmitter() *Emitter {
	return New(element.NewRegistry(), diag.NewBag(64))
}

func countOps(b *Block, op Opcode) int {
	n := 0
	for _, inst := range b.Instructions {
		if inst.Op == op {
			n++
		}
	}
	return n
}

func TestEmitIfWithoutElse(t *testing.T) {
	e := newTestEmitter()
	b := e.PushBlock("test")

	then := element.NewBlock()
	then.AddStatement(element.NewStatement(element.NewReturnElement(nil)))

	ifEl := element.NewIfElement(element.NewBooleanLiteral(true), then, nil)
	if err := e.emitElement(ifEl); err != nil {
		t.Fatalf("emitElement(if) error = %v", err)
	}
	e.PopBlock()

	if countOps(b, OpJeq) != 1 {
		t.Fatalf("expected exactly one conditional jump, got block %+v", b.Instructions)
	}
	if countOps(b, OpLabel) != 1 {
		t.Fatalf("expected exactly one label (if_end) without an else branch, got %+v", b.Instructions)
	}
}

func TestEmitIfWithElseHasTwoLabels(t *testing.T) {
	e := newTestEmitter()
	b := e.PushBlock("test")

	then := element.NewBlock()
	then.AddStatement(element.NewStatement(element.NewReturnElement(nil)))
	els := element.NewBlock()
	els.AddStatement(element.NewStatement(element.NewReturnElement(nil)))

	ifEl := element.NewIfElement(element.NewBooleanLiteral(false), then, els)
	if err := e.emitElement(ifEl); err != nil {
		t.Fatalf("emitElement(if) error = %v", err)
	}
	e.PopBlock()

	if got := countOps(b, OpLabel); got != 2 {
		t.Fatalf("expected 2 labels (if_else, if_end) with an else branch, got %d in %+v", got, b.Instructions)
	}
	if got := countOps(b, OpJmp); got != 1 {
		t.Fatalf("expected 1 unconditional jump past the else branch, got %d", got)
	}
}

func TestEmitWhileLoopStructure(t *testing.T) {
	e := newTestEmitter()
	b := e.PushBlock("test")

	body := element.NewBlock()
	loop := element.NewWhileElement(element.NewBooleanLiteral(true), body)
	if err := e.emitElement(loop); err != nil {
		t.Fatalf("emitElement(while) error = %v", err)
	}
	e.PopBlock()

	if got := countOps(b, OpLabel); got != 2 {
		t.Fatalf("expected entry+exit labels, got %d in %+v", got, b.Instructions)
	}
	if got := countOps(b, OpJmp); got != 1 {
		t.Fatalf("expected one back-edge jump to entry, got %d", got)
	}
	if got := countOps(b, OpJeq); got != 1 {
		t.Fatalf("expected one conditional exit jump, got %d", got)
	}
}

func TestEmitBreakTargetsInnermostLoop(t *testing.T) {
	e := newTestEmitter()
	b := e.PushBlock("test")

	body := element.NewBlock()
	body.AddStatement(element.NewStatement(element.NewBreakElement(nil)))
	loop := element.NewWhileElement(element.NewBooleanLiteral(true), body)

	if err := e.emitElement(loop); err != nil {
		t.Fatalf("emitElement(while-with-break) error = %v", err)
	}
	e.PopBlock()

	// Two unconditional jumps now: the break's jmp-to-exit and the
	// loop's own back-edge jmp-to-entry.
	if got := countOps(b, OpJmp); got != 2 {
		t.Fatalf("expected 2 unconditional jumps (break + back-edge), got %d in %+v", got, b.Instructions)
	}
}

func TestEmitBreakOutsideLoopErrors(t *testing.T) {
	e := newTestEmitter()
	e.PushBlock("test")
	defer e.PopBlock()

	if err := e.emitElement(element.NewBreakElement(nil)); err == nil {
		t.Fatalf("expected an error emitting break outside any loop/switch")
	}
}

func TestEmitLabelledBreakFindsOuterFrame(t *testing.T) {
	e := newTestEmitter()
	b := e.PushBlock("test")

	outerLabel := element.NewLabel("outer")
	innerBody := element.NewBlock()
	innerBody.AddStatement(element.NewStatement(element.NewBreakElement(outerLabel)))
	inner := element.NewWhileElement(element.NewBooleanLiteral(true), innerBody)

	outerBody := element.NewBlock()
	outerBody.AddStatement(element.NewStatement(inner))
	outer := element.NewWhileElement(element.NewBooleanLiteral(true), outerBody)
	outer.Label = outerLabel

	if err := e.emitElement(outer); err != nil {
		t.Fatalf("emitElement(labelled outer while) error = %v", err)
	}
	e.PopBlock()

	// Both loops' exit labels plus both entry labels: 4 total.
	if got := countOps(b, OpLabel); got != 4 {
		t.Fatalf("expected 4 labels across both loops, got %d in %+v", got, b.Instructions)
	}
}

func TestEmitDeferRunsInReverseOrderAtEpilogue(t *testing.T) {
	e := newTestEmitter()

	pt := &element.ProcedureType{}
	pt.Body = element.NewBlock()

	first := element.NewReturnElement(element.NewIntegerLiteral(1, false))
	second := element.NewReturnElement(element.NewIntegerLiteral(2, false))
	pt.Body.AddStatement(element.NewStatement(element.NewDeferElement(first)))
	pt.Body.AddStatement(element.NewStatement(element.NewDeferElement(second)))

	if err := e.emitProcedure(pt); err != nil {
		t.Fatalf("emitProcedure() error = %v", err)
	}

	if len(e.Finished) != 1 {
		t.Fatalf("expected exactly one finished block, got %d", len(e.Finished))
	}
	block := e.Finished[0]

	var pushedValues []uint64
	for _, inst := range block.Instructions {
		if inst.Op == OpPush && inst.Src1.Kind == OperandImmediate {
			pushedValues = append(pushedValues, inst.Src1.Immediate)
		}
	}
	if len(pushedValues) != 2 || pushedValues[0] != 2 || pushedValues[1] != 1 {
		t.Fatalf("expected deferred returns in reverse order [2, 1], got %v", pushedValues)
	}
}
