package emit

import "surge/internal/element"

// EmitProgram drives the emission order of §4.6: bootstrap block,
// interned string table, type-info table, section-grouped module
// identifiers, one prologue/body/epilogue per procedure, the start
// block, then implicit initializer/finaliser blocks.
func (e *Emitter) EmitProgram(prog *element.Program) error {
	if prog == nil || prog.Entry == nil {
		return nil
	}

	e.emitBootstrapBlock()

	e.internStringLiterals()
	e.emitInternedStringTable()

	e.emitTypeInfoTable()

	groups := e.groupModuleIdentifiers(prog.Entry)
	e.emitSectionTables(groups)

	for _, id := range e.Registry.FindByTag(element.TagProcedureType) {
		pt, ok := e.Registry.Get(id).(*element.ProcedureType)
		if !ok || pt.IsIntrinsic || pt.Body == nil {
			continue
		}
		if err := e.emitProcedure(pt); err != nil {
			return err
		}
	}

	e.emitStartBlock(prog.Entry)
	e.emitImplicitBlocks(groups)
	return nil
}

// emitBootstrapBlock emits the program-entry block (§4.6 step 1). The
// VM collaborator owns trap implementations (§6 "trap_putc,
// trap_getc"); this block holds a single trap with id 0 and does not
// dispatch into module-level initialisers.
func (e *Emitter) emitBootstrapBlock() {
	b := e.PushBlock("bootstrap")
	b.Emit(Instruction{Op: OpTrap, Dest: Imm(0)})
	e.PopBlock()
}

// emitStartBlock calls the entry module's root procedure (if any) and
// exits (§4.6 step 6).
func (e *Emitter) emitStartBlock(entry *element.Module) {
	b := e.PushBlock("start")
	b.Emit(Instruction{Op: OpCall, Dest: Lbl("module_" + entry.Path + "_init")})
	b.Emit(Instruction{Op: OpTrap, Dest: Imm(1)})
	e.PopBlock()
}

// emitImplicitBlocks emits a single implicit_init block with one store
// per initialised data-section identifier of the entry module (§4.6
// step 7). Read-only identifiers and other modules get no implicit
// block, and no finaliser block is emitted.
func (e *Emitter) emitImplicitBlocks(groups *sectionGroups) {
	if groups == nil || len(groups.Data) == 0 {
		return
	}
	b := e.PushBlock("implicit_init")
	for _, id := range groups.Data {
		if id.Initializer == nil {
			continue
		}
		b.Emit(Instruction{Op: OpStore, Dest: Lbl(id.Sym.Qualified())})
	}
	e.PopBlock()
}
