package builder

import (
	"surge/internal/element"
	"surge/internal/source"
)

// MakeModule allocates the module element, creates its root block,
// pushes it as the current module and scope, matching §4.4's module
// evaluation steps (i)-(iii) in one call; the evaluator is responsible
// for step (iv) (evaluating children) and calling PopModule/PopBlock
// for step (v).
func (b *Builder) MakeModule(path string, file source.FileID) *element.Module {
	m := element.NewModule(path, file)
	b.register(m)
	b.Scope.PushModule(m)
	root := b.MakeBlock()
	m.SetBlock(root)
	return m
}

// PopModule pops the current module, the MakeModule counterpart.
func (b *Builder) PopModule() *element.Module {
	return b.Scope.PopModule()
}

// MakeProgram constructs and registers the single root Program element.
func (b *Builder) MakeProgram() *element.Program {
	p := element.NewProgram()
	b.register(p)
	return p
}

// MakeImport constructs and registers an Import.
func (b *Builder) MakeImport(ref *element.ModuleReference) *element.Import {
	i := element.NewImport(ref)
	b.register(i)
	return i
}

// MakeModuleReference constructs and registers an unresolved
// ModuleReference.
func (b *Builder) MakeModuleReference(path string) *element.ModuleReference {
	r := element.NewModuleReference(path)
	b.register(r)
	return r
}

// MakeNamespaceElement constructs, registers, and pushes the scope
// block of a NamespaceElement.
func (b *Builder) MakeNamespaceElement(sym *element.Symbol) *element.NamespaceElement {
	blk := b.MakeBlock()
	n := element.NewNamespaceElement(sym, blk)
	b.register(n)
	return n
}
