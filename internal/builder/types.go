package builder

import "surge/internal/element"

// registerType funnels every MakeXType through the registry and then
// into the scope manager's type table, satisfying §4.1 point (4): "for
// types, registers the type in the scope manager's type table." scope
// is nil for types with no natural declaring block (e.g. the core
// primitives registered once at pipeline phase 1).
func (b *Builder) registerType(t element.Type, scope *element.Block) element.Type {
	b.Registry.Allocate(t)
	if err := b.Scope.AddTypeToScope(scope, t); err != nil {
		panic(err) // duplicate symbol: the pipeline should have checked first
	}
	return t
}

// MakeNumericType constructs, registers, and scopes a NumericType.
func (b *Builder) MakeNumericType(scope *element.Block, sym *element.Symbol, size int, signed bool, nc element.NumberClass) *element.NumericType {
	t := element.NewNumericType(sym, size, signed, nc)
	b.registerType(t, scope)
	return t
}

// MakeBoolType constructs, registers, and scopes a BoolType.
func (b *Builder) MakeBoolType(scope *element.Block, sym *element.Symbol) *element.BoolType {
	t := element.NewBoolType(sym)
	b.registerType(t, scope)
	return t
}

// MakeRuneType constructs, registers, and scopes a RuneType.
func (b *Builder) MakeRuneType(scope *element.Block, sym *element.Symbol) *element.RuneType {
	t := element.NewRuneType(sym)
	b.registerType(t, scope)
	return t
}

// MakePointerType constructs, registers, and scopes a PointerType.
func (b *Builder) MakePointerType(scope *element.Block, sym *element.Symbol, base *element.TypeReference) *element.PointerType {
	t := element.NewPointerType(sym, base)
	b.registerType(t, scope)
	return t
}

// MakeArrayType constructs, registers, and scopes an ArrayType.
func (b *Builder) MakeArrayType(scope *element.Block, sym *element.Symbol, base *element.TypeReference, subscripts []element.Element, elemSize int) *element.ArrayType {
	t := element.NewArrayType(sym, base, subscripts, elemSize)
	b.registerType(t, scope)
	return t
}

// MakeTupleType constructs, registers, and scopes a TupleType.
func (b *Builder) MakeTupleType(scope *element.Block, sym *element.Symbol, members []*element.TypeReference) *element.TupleType {
	t := element.NewTupleType(sym, members)
	b.registerType(t, scope)
	return t
}

// MakeCompositeType constructs, registers, and scopes a CompositeType,
// pushing its own scope block as the current scope so subsequent
// MakeField calls (via the evaluator) can be wired in the usual way.
func (b *Builder) MakeCompositeType(outer *element.Block, sym *element.Symbol, kind element.CompositeKind) *element.CompositeType {
	inner := b.MakeBlock()
	t := element.NewCompositeType(sym, kind, inner)
	b.registerType(t, outer)
	return t
}

// MakeProcedureType constructs, registers, and scopes a ProcedureType.
// The caller is expected to have already pushed/popped params and body
// via MakeBlock/PopBlock around evaluating the procedure's AST node.
func (b *Builder) MakeProcedureType(scope *element.Block, sym *element.Symbol, params *element.Block, returnRef *element.TypeReference, body *element.Block) *element.ProcedureType {
	t := element.NewProcedureType(sym, params, returnRef, body)
	b.registerType(t, scope)
	return t
}

// MakeNamespaceType constructs, registers, and scopes a NamespaceType.
func (b *Builder) MakeNamespaceType(scope *element.Block, sym *element.Symbol, ns *element.NamespaceElement) *element.NamespaceType {
	t := element.NewNamespaceType(sym, ns)
	b.registerType(t, scope)
	return t
}

// MakeModuleType constructs, registers, and scopes a ModuleType.
func (b *Builder) MakeModuleType(scope *element.Block, sym *element.Symbol, mod *element.Module) *element.ModuleType {
	t := element.NewModuleType(sym, mod)
	b.registerType(t, scope)
	return t
}

// MakeGenericType constructs, registers, and scopes a GenericType.
func (b *Builder) MakeGenericType(scope *element.Block, sym *element.Symbol, bound *element.TypeReference) *element.GenericType {
	t := element.NewGenericType(sym, bound)
	b.registerType(t, scope)
	return t
}

// MakeUnknownType constructs and registers an UnknownType. It is
// deliberately never passed to registerType: an unknown type is a
// placeholder, not a declared name, so it has no business in the type
// table (§4.5 phase 4 replaces it rather than looking it up).
func (b *Builder) MakeUnknownType(expr element.Element) *element.UnknownType {
	t := element.NewUnknownType(expr)
	b.Registry.Allocate(t)
	return t
}

// MakeTypeLiteral constructs and registers a TypeLiteral.
func (b *Builder) MakeTypeLiteral(ref *element.TypeReference) *element.TypeLiteral {
	t := element.NewTypeLiteral(ref)
	b.register(t)
	return t
}
