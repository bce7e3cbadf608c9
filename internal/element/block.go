package element

import "sort"

// Block is a lexical scope (§3). It owns ordered statements, nested
// blocks, parameter identifiers, and an identifier map. Exactly one
// block is the root of each module.
type Block struct {
	base

	Statements []*Statement
	Blocks     []*Block
	Parameters []*Identifier

	// identifiers maps a leaf name to its overload set, preserving
	// insertion order within the set (§4.2 "ties within one scope
	// preserve insertion order").
	identifiers map[string][]*Identifier
	// types is the type table for this scope. The scope manager's
	// FindType consults the table of every block on the scope chain,
	// innermost first, before its own top-level table.
	types map[string]Type
}

// NewBlock constructs an empty block.
func NewBlock() *Block {
	return &Block{
		base:        newBase(TagBlock),
		identifiers: make(map[string][]*Identifier),
		types:       make(map[string]Type),
	}
}

// AddStatement appends a statement in source order.
func (b *Block) AddStatement(s *Statement) {
	if s == nil {
		return
	}
	b.Statements = append(b.Statements, s)
	s.SetParentElement(b)
	s.SetParentScope(b)
}

// AddBlock appends a nested block.
func (b *Block) AddBlock(child *Block) {
	if child == nil {
		return
	}
	b.Blocks = append(b.Blocks, child)
	child.SetParentElement(b)
}

// AddParameter registers a procedure parameter identifier in this block.
func (b *Block) AddParameter(id *Identifier) {
	if id == nil {
		return
	}
	b.Parameters = append(b.Parameters, id)
	b.AddIdentifier(id)
}

// AddIdentifier inserts id into this block's overload set for its leaf
// name, preserving insertion order.
func (b *Block) AddIdentifier(id *Identifier) {
	if id == nil || id.Sym == nil {
		return
	}
	name := id.Sym.Name
	b.identifiers[name] = append(b.identifiers[name], id)
	id.SetParentScope(b)
}

// IdentifiersNamed returns this block's own overload set for name,
// without walking enclosing scopes.
func (b *Block) IdentifiersNamed(name string) []*Identifier {
	return b.identifiers[name]
}

// AllIdentifiers returns every identifier declared directly in this
// block, ordered by element id (construction order) across all names,
// so the result is stable for hashing and emission.
func (b *Block) AllIdentifiers() []*Identifier {
	out := make([]*Identifier, 0, len(b.identifiers))
	for _, set := range b.identifiers {
		out = append(out, set...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// AddTypeToScope inserts t into this block's type table keyed by its
// symbol's leaf name. Duplicate-detection across the whole program
// happens in the scope manager's top-level table (§4.2); this method is
// the low-level single-scope insert it calls.
func (b *Block) AddTypeToScope(t Type) {
	if t == nil || t.Symbol() == nil {
		return
	}
	b.types[t.Symbol().Name] = t
}

// TypeNamed looks up a type declared directly in this block.
func (b *Block) TypeNamed(name string) (Type, bool) {
	t, ok := b.types[name]
	return t, ok
}

func (b *Block) OwnedElements() []Element {
	out := make([]Element, 0, len(b.Statements)+len(b.Blocks)+len(b.Parameters))
	for _, s := range b.Statements {
		out = append(out, s)
	}
	for _, child := range b.Blocks {
		out = append(out, child)
	}
	for _, p := range b.Parameters {
		out = append(out, p)
	}
	return out
}

// Statement is a leaf wrapping one expression plus the labels that
// target it for break/continue/fallthrough (§3).
type Statement struct {
	base
	Labels []*Label
	Expr   Element
}

func NewStatement(expr Element) *Statement {
	return &Statement{base: newBase(TagStatement), Expr: expr}
}

func (s *Statement) AddLabel(l *Label) {
	if l != nil {
		s.Labels = append(s.Labels, l)
		l.SetParentElement(s)
	}
}

func (s *Statement) OwnedElements() []Element {
	out := make([]Element, 0, len(s.Labels)+1)
	for _, l := range s.Labels {
		out = append(out, l)
	}
	if s.Expr != nil {
		out = append(out, s.Expr)
	}
	return out
}

func (s *Statement) Fold(reg *Registry) (Element, bool, error) {
	if s.Expr == nil {
		return nil, false, nil
	}
	folded, ok, err := s.Expr.Fold(reg)
	if err != nil || !ok {
		return nil, ok, err
	}
	s.ApplyFoldResult(s.Expr, folded)
	return nil, true, nil
}

func (s *Statement) ApplyFoldResult(original, replacement Element) bool {
	if s.Expr == original {
		s.Expr = replacement
		if replacement != nil {
			replacement.SetParentElement(s)
		}
		return true
	}
	return false
}

// Label is a named position referenced by break/continue/fallthrough
// (§3). It is distinct from the emitter's assembler-level labels, which
// are synthesised fresh per instruction block.
type Label struct {
	base
	Name string
}

func NewLabel(name string) *Label {
	return &Label{base: newBase(TagLabel), Name: name}
}

func (l *Label) LabelName() string { return l.Name }

// LabelReference is a reference to a Label by name, resolved during
// identifier resolution the same way an IdentifierReference is.
type LabelReference struct {
	base
	Name     string
	resolved *Label
}

func NewLabelReference(name string) *LabelReference {
	return &LabelReference{base: newBase(TagLabelReference), Name: name}
}

func (r *LabelReference) Resolved() *Label     { return r.resolved }
func (r *LabelReference) Resolve(l *Label)     { r.resolved = l }
func (r *LabelReference) IsResolved() bool     { return r.resolved != nil }
