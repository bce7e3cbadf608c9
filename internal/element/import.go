package element

// Import binds a module reference into the importing module's scope.
type Import struct {
	base
	Ref *ModuleReference
}

func NewImport(ref *ModuleReference) *Import {
	return &Import{base: newBase(TagImport), Ref: ref}
}

func (i *Import) OwnedElements() []Element {
	if i.Ref == nil {
		return nil
	}
	return []Element{i.Ref}
}

// ModuleReference names a module by qualified path and, once resolved,
// points at the loaded Module element (§8 scenario 6: module cycle guard).
type ModuleReference struct {
	base
	Path     string
	resolved *Module
}

func NewModuleReference(path string) *ModuleReference {
	return &ModuleReference{base: newBase(TagModuleReference), Path: path}
}

func (r *ModuleReference) Resolved() *Module { return r.resolved }
func (r *ModuleReference) Resolve(m *Module) { r.resolved = m }

// NamespaceElement declares a named namespace owning a scope block; it
// is the declaration-site counterpart of NamespaceType (§3 Type variants
// list "namespace").
type NamespaceElement struct {
	base
	Sym *Symbol
	Blk *Block
}

func NewNamespaceElement(sym *Symbol, blk *Block) *NamespaceElement {
	n := &NamespaceElement{base: newBase(TagNamespaceElement), Sym: sym, Blk: blk}
	if blk != nil {
		blk.SetParentElement(n)
	}
	return n
}

func (n *NamespaceElement) OwnedElements() []Element {
	out := make([]Element, 0, 2)
	if n.Sym != nil {
		out = append(out, n.Sym)
	}
	if n.Blk != nil {
		out = append(out, n.Blk)
	}
	return out
}

func (n *NamespaceElement) LabelName() string {
	if n.Sym != nil {
		return n.Sym.Qualified()
	}
	return "namespace"
}
