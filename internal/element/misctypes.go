package element

// NamespaceType is the Type-table entry for a declared namespace; the
// namespace's actual scope lives on the paired NamespaceElement.
type NamespaceType struct {
	typeBase
	Namespace *NamespaceElement
}

func NewNamespaceType(sym *Symbol, ns *NamespaceElement) *NamespaceType {
	return &NamespaceType{typeBase: newTypeBase(TagNamespaceType, sym, 0, 0, NumberClassNone), Namespace: ns}
}

func (t *NamespaceType) TypeCheck(other Type) bool { return other != nil && other.ID() == t.ID() }

// ModuleType is the Type-table entry representing a module as a value
// (used when a module identifier is referenced, e.g. qualifying a call).
type ModuleType struct {
	typeBase
	Mod *Module
}

func NewModuleType(sym *Symbol, mod *Module) *ModuleType {
	return &ModuleType{typeBase: newTypeBase(TagModuleType, sym, 0, 0, NumberClassNone), Mod: mod}
}

func (t *ModuleType) TypeCheck(other Type) bool { return other != nil && other.ID() == t.ID() }

// GenericType is a type parameter placeholder. Per the Non-goal "no
// generics monomorphisation beyond what the source already specifies",
// a GenericType resolves to whatever concrete TypeReference the source
// itself supplies at the use site — it never spawns new instantiations.
type GenericType struct {
	typeBase
	Bound *TypeReference // optional constraint, nil if unconstrained
}

func NewGenericType(sym *Symbol, bound *TypeReference) *GenericType {
	return &GenericType{typeBase: newTypeBase(TagGenericType, sym, 0, 0, NumberClassNone), Bound: bound}
}

func (t *GenericType) OwnedElements() []Element {
	if t.Bound == nil {
		return nil
	}
	return []Element{t.Bound}
}

func (t *GenericType) TypeCheck(other Type) bool {
	if t.Bound == nil || t.Bound.Resolved() == nil {
		return true
	}
	return t.Bound.Resolved().TypeCheck(other)
}

// UnknownType is a placeholder type inserted when the evaluator lacks
// information (§3 GLOSSARY); it is drained by the semantic pipeline.
// It carries the initializer expression used to infer the real type.
type UnknownType struct {
	typeBase
	Expr Element // nil if the identifier carried no initializer at all
}

func NewUnknownType(expr Element) *UnknownType {
	return &UnknownType{typeBase: newTypeBase(TagUnknownType, nil, 0, 0, NumberClassNone), Expr: expr}
}

func (t *UnknownType) OwnedElements() []Element {
	if t.Expr == nil {
		return nil
	}
	return []Element{t.Expr}
}

func (t *UnknownType) TypeCheck(Type) bool { return false }

// TypeLiteral wraps a type used as a first-class value, e.g. the
// argument to `size_of(u64)`.
type TypeLiteral struct {
	base
	Ref *TypeReference
}

func NewTypeLiteral(ref *TypeReference) *TypeLiteral {
	return &TypeLiteral{base: newBase(TagTypeLiteral), Ref: ref}
}

func (t *TypeLiteral) OwnedElements() []Element {
	if t.Ref == nil {
		return nil
	}
	return []Element{t.Ref}
}

func (t *TypeLiteral) InferType(*Registry) (Type, bool, error) {
	if t.Ref == nil || t.Ref.Resolved() == nil {
		return nil, false, nil
	}
	return t.Ref.Resolved(), true, nil
}
