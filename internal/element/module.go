package element

import "surge/internal/source"

// Module is a compilation unit: one block, one source file, and a flag
// marking the entry module (§3).
type Module struct {
	base

	Path     string
	File     source.FileID
	RootBlk  *Block
	IsRoot   bool
	Imports  []*Import
}

func NewModule(path string, file source.FileID) *Module {
	m := &Module{base: newBase(TagModule), Path: path, File: file}
	m.SetModule(m)
	return m
}

// Block returns the module's root scope.
func (m *Module) Block() *Block { return m.RootBlk }

// SetBlock assigns the module's root scope, wiring the back-pointer.
func (m *Module) SetBlock(b *Block) {
	m.RootBlk = b
	if b != nil {
		b.SetParentElement(m)
		b.SetModule(m)
	}
}

func (m *Module) AddImport(imp *Import) {
	if imp == nil {
		return
	}
	m.Imports = append(m.Imports, imp)
	imp.SetParentElement(m)
}

func (m *Module) OwnedElements() []Element {
	out := make([]Element, 0, len(m.Imports)+1)
	for _, imp := range m.Imports {
		out = append(out, imp)
	}
	if m.RootBlk != nil {
		out = append(out, m.RootBlk)
	}
	return out
}

func (m *Module) LabelName() string { return "module_" + m.Path }

// Program is the root element owning the top-level module; exactly one
// program element exists per compilation (§3).
type Program struct {
	base
	Entry *Module
}

func NewProgram() *Program {
	return &Program{base: newBase(TagProgram)}
}

func (p *Program) SetEntry(m *Module) {
	p.Entry = m
	if m != nil {
		m.SetParentElement(p)
	}
}

func (p *Program) OwnedElements() []Element {
	if p.Entry == nil {
		return nil
	}
	return []Element{p.Entry}
}
