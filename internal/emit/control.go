package emit

import (
	"errors"

	"surge/internal/element"
)

// emitStatements lowers every statement of b in order, resetting the
// temp counter between statements the way emitBody's original loop did
// (§4.6 "each statement emits via emit_element").
func (e *Emitter) emitStatements(b *element.Block) error {
	if b == nil {
		return nil
	}
	for _, stmt := range b.Statements {
		if err := e.emitStatement(stmt); err != nil {
			return err
		}
		e.ResetTemp()
	}
	return nil
}

// emitStatement declares stmt's labels at the current offset, then
// dispatches its expression through emitElement.
func (e *Emitter) emitStatement(stmt *element.Statement) error {
	if stmt == nil || stmt.Expr == nil {
		return nil
	}
	for _, lbl := range stmt.Labels {
		e.EmitLabel(lbl.Name)
	}
	return e.emitElement(stmt.Expr)
}

// emitElement lowers one statement-level element. Plain expressions
// fall through to lower(); the control-flow and declaration variants
// below produce no operand of their own.
func (e *Emitter) emitElement(el element.Element) error {
	switch v := el.(type) {
	case *element.Declaration:
		return e.emitDeclaration(v)
	case *element.IfElement:
		return e.emitIf(v)
	case *element.WhileElement:
		return e.emitWhile(v)
	case *element.ForElement:
		return e.emitFor(v)
	case *element.SwitchElement:
		return e.emitSwitch(v)
	case *element.BreakElement:
		return e.emitBreak(v)
	case *element.ContinueElement:
		return e.emitContinue(v)
	case *element.FallthroughElement:
		return e.emitFallthroughStmt(v)
	case *element.ReturnElement:
		return e.emitReturn(v)
	case *element.DeferElement:
		return e.emitDefer(v)
	case *element.WithElement:
		return e.emitWith(v)
	case *element.Block:
		return e.emitStatements(v)
	default:
		_, err := e.lower(el)
		return err
	}
}

func (e *Emitter) emitDeclaration(d *element.Declaration) error {
	for _, id := range d.Identifiers {
		if err := e.storeIdentifier(id); err != nil {
			return err
		}
	}
	return nil
}

func (e *Emitter) storeIdentifier(id *element.Identifier) error {
	if id == nil || id.Initializer == nil {
		return nil
	}
	val, err := e.lower(id.Initializer)
	if err != nil {
		return err
	}
	if b := e.CurrentBlock(); b != nil && id.Sym != nil {
		b.Emit(Instruction{Op: OpStore, Dest: Lbl(id.Sym.Qualified()), Src1: val})
	}
	return nil
}

// emitIf lowers a conditional: the condition is tested against zero and
// jumps over the then-branch to an else-label (or the end label when
// there is no else), grounded on §4.6's "Control flow" operator rules.
func (e *Emitter) emitIf(i *element.IfElement) error {
	cond, err := e.lower(i.Condition)
	if err != nil {
		return err
	}
	end := e.NewLabel("if_end")
	target := end
	if i.Else != nil {
		target = e.NewLabel("if_else")
	}
	if b := e.CurrentBlock(); b != nil {
		b.Emit(Instruction{Op: OpJeq, Src1: cond, Src2: Imm(0), Dest: Lbl(target)})
	}
	if err := e.emitElement(i.Then); err != nil {
		return err
	}
	if i.Else != nil {
		if b := e.CurrentBlock(); b != nil {
			b.Emit(Instruction{Op: OpJmp, Dest: Lbl(end)})
		}
		e.EmitLabel(target)
		if err := e.emitElement(i.Else); err != nil {
			return err
		}
	}
	e.EmitLabel(end)
	return nil
}

// emitWhile lowers a pre-test loop: entry re-tests the condition every
// iteration, so Step and Entry are the same label (§4.6 "Control flow
// frames ... an optional step label").
func (e *Emitter) emitWhile(w *element.WhileElement) error {
	entry := e.NewLabel("while_entry")
	exit := e.NewLabel("while_exit")
	label := ""
	if w.Label != nil {
		label = w.Label.Name
	}

	e.EmitLabel(entry)
	cond, err := e.lower(w.Condition)
	if err != nil {
		return err
	}
	if b := e.CurrentBlock(); b != nil {
		b.Emit(Instruction{Op: OpJeq, Src1: cond, Src2: Imm(0), Dest: Lbl(exit)})
	}

	e.PushFlowFrame(&flowFrame{Entry: entry, Exit: exit, Step: entry, Label: label})
	bodyErr := e.emitStatements(w.Body)
	e.PopFlowFrame()
	if bodyErr != nil {
		return bodyErr
	}

	if b := e.CurrentBlock(); b != nil {
		b.Emit(Instruction{Op: OpJmp, Dest: Lbl(entry)})
	}
	e.EmitLabel(exit)
	return nil
}

// emitFor lowers a C-style counted loop: init runs once, entry re-tests
// the condition, step runs after the body and before jumping back to
// entry (§4.6).
func (e *Emitter) emitFor(f *element.ForElement) error {
	if f.Init != nil {
		if _, err := e.lower(f.Init); err != nil {
			return err
		}
	}

	entry := e.NewLabel("for_entry")
	step := e.NewLabel("for_step")
	exit := e.NewLabel("for_exit")
	label := ""
	if f.Label != nil {
		label = f.Label.Name
	}

	e.EmitLabel(entry)
	if f.Condition != nil {
		cond, err := e.lower(f.Condition)
		if err != nil {
			return err
		}
		if b := e.CurrentBlock(); b != nil {
			b.Emit(Instruction{Op: OpJeq, Src1: cond, Src2: Imm(0), Dest: Lbl(exit)})
		}
	}

	e.PushFlowFrame(&flowFrame{Entry: entry, Exit: exit, Step: step, Label: label})
	bodyErr := e.emitStatements(f.Body)
	e.PopFlowFrame()
	if bodyErr != nil {
		return bodyErr
	}

	e.EmitLabel(step)
	if f.Step != nil {
		if _, err := e.lower(f.Step); err != nil {
			return err
		}
	}
	if b := e.CurrentBlock(); b != nil {
		b.Emit(Instruction{Op: OpJmp, Dest: Lbl(entry)})
	}
	e.EmitLabel(exit)
	return nil
}

// emitSwitch lowers a SwitchElement: the scrutinee is compared against
// every case's match values in turn, falling through to the default
// case (or past the switch) when nothing matches. Each case body runs
// under its own flow frame so break resolves to the shared exit label
// and an explicit fallthrough resolves to the next case's label (§4.6,
// §3 "fallthrough").
func (e *Emitter) emitSwitch(s *element.SwitchElement) error {
	scrut, err := e.lower(s.Scrutinee)
	if err != nil {
		return err
	}

	exit := e.NewLabel("switch_exit")
	caseLabels := make([]string, len(s.Cases))
	defaultLabel := ""
	for idx, c := range s.Cases {
		caseLabels[idx] = e.NewLabel("switch_case")
		if c.IsDefault {
			defaultLabel = caseLabels[idx]
		}
	}

	b := e.CurrentBlock()
	for idx, c := range s.Cases {
		for _, v := range c.Values {
			val, err := e.lower(v)
			if err != nil {
				return err
			}
			if b != nil {
				b.Emit(Instruction{Op: OpJeq, Src1: scrut, Src2: val, Dest: Lbl(caseLabels[idx])})
			}
		}
	}
	fallTo := exit
	if defaultLabel != "" {
		fallTo = defaultLabel
	}
	if b != nil {
		b.Emit(Instruction{Op: OpJmp, Dest: Lbl(fallTo)})
	}

	for idx, c := range s.Cases {
		e.EmitLabel(caseLabels[idx])
		next := exit
		if idx < len(s.Cases)-1 {
			next = caseLabels[idx+1]
		}
		e.PushFlowFrame(&flowFrame{Exit: exit, Step: next})
		err := e.emitStatements(c.Body)
		e.PopFlowFrame()
		if err != nil {
			return err
		}
		if b := e.CurrentBlock(); b != nil {
			b.Emit(Instruction{Op: OpJmp, Dest: Lbl(exit)})
		}
	}
	e.EmitLabel(exit)
	return nil
}

func (e *Emitter) emitBreak(br *element.BreakElement) error {
	frame, err := e.flowFrameFor(br.TargetLabel)
	if err != nil {
		return err
	}
	if b := e.CurrentBlock(); b != nil {
		b.Emit(Instruction{Op: OpJmp, Dest: Lbl(frame.Exit)})
	}
	return nil
}

func (e *Emitter) emitContinue(c *element.ContinueElement) error {
	frame, err := e.flowFrameFor(c.TargetLabel)
	if err != nil {
		return err
	}
	if b := e.CurrentBlock(); b != nil {
		b.Emit(Instruction{Op: OpJmp, Dest: Lbl(frame.Step)})
	}
	return nil
}

func (e *Emitter) emitFallthroughStmt(*element.FallthroughElement) error {
	frame := e.CurrentFlowFrame()
	if frame == nil {
		return errors.New("emit: fallthrough outside a switch case")
	}
	if b := e.CurrentBlock(); b != nil {
		b.Emit(Instruction{Op: OpJmp, Dest: Lbl(frame.Step)})
	}
	return nil
}

// flowFrameFor resolves the frame a break/continue targets: the
// innermost frame when unlabelled, or the nearest enclosing frame whose
// construct carries a matching source label otherwise.
func (e *Emitter) flowFrameFor(target *element.Label) (*flowFrame, error) {
	if target == nil {
		f := e.CurrentFlowFrame()
		if f == nil {
			return nil, errors.New("emit: break/continue outside a loop or switch")
		}
		return f, nil
	}
	for i := len(e.flow) - 1; i >= 0; i-- {
		if e.flow[i].Label == target.Name {
			return e.flow[i], nil
		}
	}
	return nil, errors.New("emit: no enclosing loop labelled " + target.Name)
}

func (e *Emitter) emitReturn(r *element.ReturnElement) error {
	if r.Value != nil {
		val, err := e.lower(r.Value)
		if err != nil {
			return err
		}
		if b := e.CurrentBlock(); b != nil {
			b.Emit(Instruction{Op: OpPush, Src1: val})
		}
	}
	if b := e.CurrentBlock(); b != nil {
		b.Emit(Instruction{Op: OpRet})
	}
	return nil
}

// emitDefer records stmt for the enclosing procedure's epilogue instead
// of emitting it in place (§4.6 "Epilogue: run finalisers for locals in
// reverse declaration order").
func (e *Emitter) emitDefer(d *element.DeferElement) error {
	if d.Stmt != nil {
		e.defers = append(e.defers, d.Stmt)
	}
	return nil
}

// emitWith binds w's resource identifier, emits its body, and relies on
// the epilogue's reverse-order finaliser pass for teardown the same way
// an equivalent defer would (§3 "WithElement").
func (e *Emitter) emitWith(w *element.WithElement) error {
	if err := e.storeIdentifier(w.Binding); err != nil {
		return err
	}
	return e.emitStatements(w.Body)
}
