package emit

import "surge/internal/element"

// sectionGroups partitions a module's top-level identifiers across the
// three placement categories §4.6 step 4 names: ReadOnly for constants
// with an initializer, Data for mutable identifiers with an
// initializer, and Bss for identifiers with no initializer at all.
type sectionGroups struct {
	ReadOnly []*element.Identifier
	Data     []*element.Identifier
	Bss      []*element.Identifier
}

// groupModuleIdentifiers classifies every identifier declared directly
// in the module's root block.
func (e *Emitter) groupModuleIdentifiers(mod *element.Module) *sectionGroups {
	g := &sectionGroups{}
	if mod == nil || mod.RootBlk == nil {
		return g
	}
	for _, id := range mod.RootBlk.AllIdentifiers() {
		switch {
		case id.Initializer == nil:
			g.Bss = append(g.Bss, id)
		case id.IsConstant_ && !id.IsMutable:
			g.ReadOnly = append(g.ReadOnly, id)
		default:
			g.Data = append(g.Data, id)
		}
	}
	return g
}

// emitSectionTables emits one block per non-empty section, one store
// instruction per identifier it holds.
func (e *Emitter) emitSectionTables(g *sectionGroups) {
	if g == nil {
		return
	}
	e.emitSection("section_rodata", g.ReadOnly)
	e.emitSection("section_data", g.Data)
	e.emitSection("section_bss", g.Bss)
}

func (e *Emitter) emitSection(label string, ids []*element.Identifier) {
	if len(ids) == 0 {
		return
	}
	b := e.PushBlock(label)
	for _, id := range ids {
		b.Emit(Instruction{Op: OpStore, Dest: Lbl(id.Sym.Qualified())})
	}
	e.PopBlock()
}
