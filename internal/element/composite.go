package element

// CompositeKind distinguishes struct/union/enum layout and lookup rules.
type CompositeKind uint8

const (
	CompositeStruct CompositeKind = iota
	CompositeUnion
	CompositeEnum
)

func (k CompositeKind) String() string {
	switch k {
	case CompositeStruct:
		return "struct"
	case CompositeUnion:
		return "union"
	case CompositeEnum:
		return "enum"
	default:
		return "composite"
	}
}

// Field declares one member of a composite type.
type Field struct {
	base
	Sym    *Symbol
	TypeRf *TypeReference
	Offset int
}

func NewField(sym *Symbol, typeRef *TypeReference) *Field {
	return &Field{base: newBase(TagField), Sym: sym, TypeRf: typeRef}
}

func (f *Field) OwnedElements() []Element {
	out := make([]Element, 0, 2)
	if f.Sym != nil {
		out = append(out, f.Sym)
	}
	if f.TypeRf != nil {
		out = append(out, f.TypeRf)
	}
	return out
}

// CompositeType is a struct, union, or enum: it owns a scope block and a
// field map (§3). TypeCheck is identity-only — "structural equality is
// not provided" (§4.3).
type CompositeType struct {
	typeBase
	Kind   CompositeKind
	Scope  *Block
	Fields []*Field
	byName map[string]*Field
}

func NewCompositeType(sym *Symbol, kind CompositeKind, scope *Block) *CompositeType {
	c := &CompositeType{
		typeBase: newTypeBase(TagCompositeType, sym, 0, 0, NumberClassNone),
		Kind:     kind,
		Scope:    scope,
		byName:   make(map[string]*Field),
	}
	if scope != nil {
		scope.SetParentElement(c)
	}
	return c
}

// AddField appends a field, computing its offset by summing the sizes
// of prior fields (struct layout) — a union's fields all sit at offset 0.
func (c *CompositeType) AddField(f *Field) {
	if f == nil || f.Sym == nil {
		return
	}
	switch c.Kind {
	case CompositeUnion, CompositeEnum:
		f.Offset = 0
	default:
		f.Offset = c.size
	}
	if f.TypeRf != nil && f.TypeRf.Resolved() != nil {
		fieldSize := f.TypeRf.Resolved().SizeInBytes()
		if c.Kind == CompositeStruct {
			c.size += fieldSize
		} else if fieldSize > c.size {
			c.size = fieldSize
		}
		if align := f.TypeRf.Resolved().Alignment(); align > c.alignment {
			c.alignment = align
		}
	}
	c.Fields = append(c.Fields, f)
	c.byName[f.Sym.Name] = f
	f.SetParentElement(c)
}

// FieldNamed resolves the field offset used by the emitter's member
// access lowering (§4.6 "Member access — ... field offset (resolved
// from the composite type)").
func (c *CompositeType) FieldNamed(name string) (*Field, bool) {
	f, ok := c.byName[name]
	return f, ok
}

func (c *CompositeType) OwnedElements() []Element {
	out := make([]Element, 0, len(c.Fields)+1)
	for _, f := range c.Fields {
		out = append(out, f)
	}
	if c.Scope != nil {
		out = append(out, c.Scope)
	}
	return out
}

// TypeCheck is identity only (§4.3 "composite: identity only").
func (c *CompositeType) TypeCheck(other Type) bool {
	return other != nil && other.ID() == c.ID()
}

// ProcedureType owns a parameter block, return type, and body block
// (§3). Per the Non-goal excluding generics monomorphisation beyond
// source, a ProcedureType has exactly one body — there is no separate
// procedure_instance per instantiation.
type ProcedureType struct {
	typeBase
	Params    *Block
	ReturnRef *TypeReference
	Body      *Block
	Variadic  bool
	// IsIntrinsic marks one of the eight reserved built-in procedures
	// (§4.5 phase 2); such procedures have no Body to lower.
	IsIntrinsic bool
}

func NewProcedureType(sym *Symbol, params *Block, returnRef *TypeReference, body *Block) *ProcedureType {
	p := &ProcedureType{
		typeBase:  newTypeBase(TagProcedureType, sym, pointerSize, pointerSize, NumberClassNone),
		Params:    params,
		ReturnRef: returnRef,
		Body:      body,
	}
	if params != nil {
		params.SetParentElement(p)
	}
	if body != nil {
		body.SetParentElement(p)
	}
	return p
}

func (p *ProcedureType) OwnedElements() []Element {
	out := make([]Element, 0, 3)
	if p.Params != nil {
		out = append(out, p.Params)
	}
	if p.ReturnRef != nil {
		out = append(out, p.ReturnRef)
	}
	if p.Body != nil {
		out = append(out, p.Body)
	}
	return out
}

// TypeCheck for procedures is identity — overload resolution (§4.5.8.b)
// is a separate concern handled by the pipeline, not by type_check.
func (p *ProcedureType) TypeCheck(other Type) bool {
	return other != nil && other.ID() == p.ID()
}
