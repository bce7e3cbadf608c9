package element

// Identifier binds a symbol to a type-reference plus an optional
// initializer element (§3). Several identifiers with the same leaf name
// may co-exist in a scope (overload set) to support procedure overloading.
type Identifier struct {
	base

	Sym         *Symbol
	TypeRf      *TypeReference
	Initializer Element // nil if uninitialized

	// TypeWasInferred is false when the source carried an explicit
	// type annotation and true when the evaluator had to synthesise an
	// UnknownType placeholder for later inference (§4.4).
	TypeWasInferred bool

	IsParameter bool
	IsMutable   bool
	IsConstant_ bool
}

func NewIdentifier(sym *Symbol, typeRf *TypeReference, init Element) *Identifier {
	id := &Identifier{base: newBase(TagIdentifier), Sym: sym, TypeRf: typeRf, Initializer: init}
	if init != nil {
		init.SetParentElement(id)
	}
	return id
}

func (id *Identifier) OwnedElements() []Element {
	out := make([]Element, 0, 3)
	if id.Sym != nil {
		out = append(out, id.Sym)
	}
	if id.TypeRf != nil {
		out = append(out, id.TypeRf)
	}
	if id.Initializer != nil {
		out = append(out, id.Initializer)
	}
	return out
}

func (id *Identifier) LabelName() string {
	if id.Sym != nil {
		return id.Sym.Qualified()
	}
	return "identifier"
}

func (id *Identifier) IsConstant() bool { return id.IsConstant_ }

func (id *Identifier) InferType(reg *Registry) (Type, bool, error) {
	if id.TypeRf != nil && id.TypeRf.IsResolved() && !id.TypeRf.IsUnknownType() {
		return id.TypeRf.Resolved(), true, nil
	}
	if id.Initializer == nil {
		return nil, false, nil
	}
	return id.Initializer.InferType(reg)
}

// Declaration wraps one or more identifiers declared together by a
// single `let`/`const`-style statement (e.g. `a, b := 1, 2`), so the
// evaluator only needs one statement-level element per source line.
type Declaration struct {
	base
	Identifiers []*Identifier
}

func NewDeclaration(ids ...*Identifier) *Declaration {
	d := &Declaration{base: newBase(TagDeclaration)}
	for _, id := range ids {
		d.Identifiers = append(d.Identifiers, id)
		id.SetParentElement(d)
	}
	return d
}

func (d *Declaration) OwnedElements() []Element {
	out := make([]Element, 0, len(d.Identifiers))
	for _, id := range d.Identifiers {
		out = append(out, id)
	}
	return out
}

// IdentifierReference is a use-site reference to a declared identifier,
// materialised eagerly by the evaluator and left unresolved
// (Identifier() == nil) until the scope manager's worklist drains it
// (§4.4, §4.5 phase 5).
type IdentifierReference struct {
	base

	Sym      *Symbol
	resolved *Identifier

	// Overloads holds additional candidates spliced in by overload
	// resolution (§4.5 phase 5: "multiple matches bind the first and
	// splice the remainder into the enclosing procedure-call's
	// reference list").
	Overloads []*Identifier
}

func NewIdentifierReference(sym *Symbol) *IdentifierReference {
	return &IdentifierReference{base: newBase(TagIdentifierReference), Sym: sym}
}

func (r *IdentifierReference) Identifier() *Identifier { return r.resolved }
func (r *IdentifierReference) Resolve(id *Identifier)  { r.resolved = id }
func (r *IdentifierReference) IsResolved() bool        { return r.resolved != nil }

func (r *IdentifierReference) OwnedElements() []Element {
	if r.Sym == nil {
		return nil
	}
	return []Element{r.Sym}
}

func (r *IdentifierReference) InferType(reg *Registry) (Type, bool, error) {
	if r.resolved == nil {
		return nil, false, nil
	}
	return r.resolved.InferType(reg)
}

func (r *IdentifierReference) Fold(reg *Registry) (Element, bool, error) {
	if r.resolved == nil || r.resolved.Initializer == nil {
		return nil, false, nil
	}
	if !r.resolved.IsConstant() {
		return nil, false, nil
	}
	// A constant identifier folds to (a copy of) its initializer's
	// folded value, grounded on the original's identifier_reference
	// fold forwarding to the bound identifier's initializer.
	if folded, ok, err := r.resolved.Initializer.Fold(reg); ok || err != nil {
		return folded, ok, err
	}
	return r.resolved.Initializer, true, nil
}

// Initializer wraps an arbitrary expression used to seed an identifier,
// kept as its own element so directives and folds can replace it
// uniformly (§3).
type Initializer struct {
	base
	Expr Element
}

func NewInitializer(expr Element) *Initializer {
	i := &Initializer{base: newBase(TagInitializer), Expr: expr}
	if expr != nil {
		expr.SetParentElement(i)
	}
	return i
}

func (i *Initializer) OwnedElements() []Element {
	if i.Expr == nil {
		return nil
	}
	return []Element{i.Expr}
}

func (i *Initializer) InferType(reg *Registry) (Type, bool, error) {
	if i.Expr == nil {
		return nil, false, nil
	}
	return i.Expr.InferType(reg)
}

// ArgumentPair names one keyword argument in a call (§3).
type ArgumentPair struct {
	base
	Name string
	Expr Element
}

func NewArgumentPair(name string, expr Element) *ArgumentPair {
	return &ArgumentPair{base: newBase(TagArgumentPair), Name: name, Expr: expr}
}

func (p *ArgumentPair) OwnedElements() []Element {
	if p.Expr == nil {
		return nil
	}
	return []Element{p.Expr}
}

// ArgumentList holds the ordered argument expressions of a call site.
type ArgumentList struct {
	base
	Elements []Element
}

func NewArgumentList(elems ...Element) *ArgumentList {
	return &ArgumentList{base: newBase(TagArgumentList), Elements: elems}
}

func (l *ArgumentList) OwnedElements() []Element { return l.Elements }

func (l *ArgumentList) ApplyFoldResult(original, replacement Element) bool {
	for i, e := range l.Elements {
		if e == original {
			l.Elements[i] = replacement
			if replacement != nil {
				replacement.SetParentElement(l)
			}
			return true
		}
	}
	return false
}
