package emit

import (
	"errors"
	"strconv"

	"surge/internal/diag"
	"surge/internal/element"
	"surge/internal/source"
)

var errRegisterExhausted = errors.New("emit: temp register allocator exhausted")

// flowFrame carries the labels a break/continue/fallthrough/return
// resolves against for one enclosing loop or switch (§4.6 "Control
// flow frames"); an if pushes no frame of its own.
type flowFrame struct {
	Entry       string
	Exit        string
	Step        string
	Selector    Operand
	HasSelector bool

	// Label names the source-level label attached to this loop/switch
	// (empty for an unlabelled construct), so a labelled break/continue
	// can find an outer frame instead of the innermost one (§4.6).
	Label string
}

// Emitter owns the basic-block stack and flow-control stack plus the
// per-procedure temp counter, the interned-string table, and the set
// of types actually referenced (§4.6). One Emitter lowers exactly one
// compilation (it is not reused across sessions).
type Emitter struct {
	Registry *element.Registry
	Bag      *diag.Bag

	blocks []*Block
	flow   []*flowFrame

	temp uint8

	internOrder []string
	internIndex map[string]int

	usedTypes   map[element.ID]element.Type
	usedOrder   []element.Type

	// defers accumulates the statements of every DeferElement seen in
	// the procedure currently being emitted, so the epilogue can run
	// them in reverse declaration order (§4.6 "Epilogue").
	defers []element.Element

	labelSeq int

	// Finished is every instruction block produced, in emission order
	// (§4.6 steps 1-7): bootstrap, procedures, start, implicit.
	Finished []*Block
}

func New(reg *element.Registry, bag *diag.Bag) *Emitter {
	return &Emitter{
		Registry:    reg,
		Bag:         bag,
		internIndex: make(map[string]int),
		usedTypes:   make(map[element.ID]element.Type),
	}
}

// PushBlock starts a new instruction block and makes it the current
// basic block; the caller pops it once the block is complete.
func (e *Emitter) PushBlock(label string) *Block {
	b := NewBlock(label)
	e.blocks = append(e.blocks, b)
	return b
}

// CurrentBlock returns the innermost open block, or nil if none is open.
func (e *Emitter) CurrentBlock() *Block {
	if len(e.blocks) == 0 {
		return nil
	}
	return e.blocks[len(e.blocks)-1]
}

// PopBlock closes the current block, appends it to Finished, and
// returns it.
func (e *Emitter) PopBlock() *Block {
	if len(e.blocks) == 0 {
		return nil
	}
	b := e.blocks[len(e.blocks)-1]
	e.blocks = e.blocks[:len(e.blocks)-1]
	e.Finished = append(e.Finished, b)
	return b
}

// PushFlowFrame/PopFlowFrame/CurrentFlowFrame maintain the flow-control
// stack consulted by break/continue/fallthrough/return lowering.
func (e *Emitter) PushFlowFrame(f *flowFrame) { e.flow = append(e.flow, f) }

func (e *Emitter) PopFlowFrame() *flowFrame {
	if len(e.flow) == 0 {
		return nil
	}
	f := e.flow[len(e.flow)-1]
	e.flow = e.flow[:len(e.flow)-1]
	return f
}

func (e *Emitter) CurrentFlowFrame() *flowFrame {
	if len(e.flow) == 0 {
		return nil
	}
	return e.flow[len(e.flow)-1]
}

// AllocateTemp increments and returns the single-byte temp counter
// (§4.6 "1-based"). It is fatal (X-family, register-allocator
// exhausted) once every byte value is in use.
func (e *Emitter) AllocateTemp(loc source.Span) (uint8, error) {
	if e.temp == 255 {
		d := diag.NewError(diag.XRegisterExhausted, loc, "temp register allocator exhausted")
		e.Bag.Add(&d)
		return 0, errRegisterExhausted
	}
	e.temp++
	return e.temp, nil
}

// FreeTemp decrements the counter, saturating at 0.
func (e *Emitter) FreeTemp() {
	if e.temp > 0 {
		e.temp--
	}
}

// ResetTemp zeros the counter; called on procedure entry.
func (e *Emitter) ResetTemp() { e.temp = 0 }

// TempLocalName names a temp deterministically as
// "{number_class}_temp_{n}" so the same AST always produces the same
// local label (§4.6).
func TempLocalName(nc element.NumberClass, n uint8) string {
	return nc.String() + "_temp_" + strconv.Itoa(int(n))
}

// NewLabel synthesises a fresh, deterministic label name.
func (e *Emitter) NewLabel(prefix string) string {
	e.labelSeq++
	return prefix + "_" + strconv.Itoa(e.labelSeq)
}

// EmitLabel declares name at the current offset of the open block
// (§6 "declare a label at the current offset"); the assembler
// collaborator resolves it to a concrete address later.
func (e *Emitter) EmitLabel(name string) {
	if b := e.CurrentBlock(); b != nil {
		b.Emit(Instruction{Op: OpLabel, Dest: Lbl(name)})
	}
}

// InternString records s in the interned-string table if not already
// present and returns its index (§4.6 step 2).
func (e *Emitter) InternString(s string) int {
	if idx, ok := e.internIndex[s]; ok {
		return idx
	}
	idx := len(e.internOrder)
	e.internOrder = append(e.internOrder, s)
	e.internIndex[s] = idx
	return idx
}

// MarkTypeUsed records that t was wired to a concrete type-reference,
// so the type-info table (§4.6 step 3) only emits types actually used.
func (e *Emitter) MarkTypeUsed(t element.Type) {
	if t == nil {
		return
	}
	if _, ok := e.usedTypes[t.ID()]; ok {
		return
	}
	e.usedTypes[t.ID()] = t
	e.usedOrder = append(e.usedOrder, t)
}
