package emit

import "surge/internal/element"

// emitProcedure emits one procedure's prologue, body, and epilogue in
// that order (§4.6 step 5). The prologue allocates a stack frame slot
// per parameter and resets the temp counter; the body dispatches every
// statement through emitElement; the epilogue runs any deferred
// statements in reverse declaration order before returning.
func (e *Emitter) emitProcedure(pt *element.ProcedureType) error {
	name := ""
	if pt.Symbol() != nil {
		name = pt.Symbol().Qualified()
	}
	e.ResetTemp()
	e.defers = nil
	b := e.PushBlock(name)

	e.emitPrologue(b, pt)
	if err := e.emitStatements(pt.Body); err != nil {
		e.PopBlock()
		return err
	}
	if err := e.emitEpilogue(b, pt); err != nil {
		e.PopBlock()
		return err
	}

	e.PopBlock()
	return nil
}

func (e *Emitter) emitPrologue(b *Block, pt *element.ProcedureType) {
	if pt.Params == nil {
		return
	}
	for _, param := range pt.Params.Parameters {
		if param.Sym == nil {
			continue
		}
		b.Emit(Instruction{Op: OpPop, Dest: Lbl(param.Sym.Qualified())})
	}
}

// emitEpilogue runs every DeferElement recorded during body emission in
// reverse declaration order (§4.6 "Epilogue: run finalisers for locals
// in reverse declaration order (for RAII-like teardown)") and then
// returns from the procedure.
func (e *Emitter) emitEpilogue(b *Block, pt *element.ProcedureType) error {
	for i := len(e.defers) - 1; i >= 0; i-- {
		if err := e.emitElement(e.defers[i]); err != nil {
			return err
		}
	}
	e.defers = nil
	b.Emit(Instruction{Op: OpRet})
	return nil
}
