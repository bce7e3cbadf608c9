package session

import "surge/internal/element"

// AssemblySymbolKind distinguishes the three things the assembler can
// ask a session to resolve: a value-or-label identifier lookup, a
// procedure label lookup, or a type label lookup (§6 "Symbol resolution
// callback").
type AssemblySymbolKind uint8

const (
	AssemblySymbolIdentifier AssemblySymbolKind = iota
	AssemblySymbolProcedure
	AssemblySymbolType
)

// AssemblySymbolResult is either a constant literal value (IsValue true)
// or a label name the assembler should emit a reference to.
type AssemblySymbolResult struct {
	Value   element.Element
	Label   string
	IsValue bool
}

// ResolveAssemblySymbol is the callback the assembler collaborator calls
// for every bare name it encounters while lowering instructions: given
// (symbol_type, scope, name), the compiler returns either a literal
// value for a constant identifier whose type and value are known, or a
// label name (§6, SPEC_FULL §C.5, grounded on the original session's
// resolve_assembly_symbol callback).
func (s *Session) ResolveAssemblySymbol(kind AssemblySymbolKind, scope *element.Block, name string) (AssemblySymbolResult, bool) {
	sym := element.NewSymbol(name, nil)

	switch kind {
	case AssemblySymbolProcedure, AssemblySymbolType:
		if t, ok := s.Scope.FindType(sym, scope); ok {
			return AssemblySymbolResult{Label: t.LabelName()}, true
		}
		return AssemblySymbolResult{}, false

	default:
		ids := s.Scope.FindIdentifier(sym, scope)
		if len(ids) == 0 {
			return AssemblySymbolResult{}, false
		}
		id := ids[0]
		if id.IsConstant_ && id.Initializer != nil {
			if v, ok := s.constantValue(id.Initializer); ok {
				return AssemblySymbolResult{Value: v, IsValue: true}, true
			}
		}
		return AssemblySymbolResult{Label: id.LabelName()}, true
	}
}

// constantValue unwraps an Initializer (or any directly-constant
// element) down to the literal element the assembler can read a value
// out of, folding it first if it has not already been reduced.
func (s *Session) constantValue(e element.Element) (element.Element, bool) {
	expr := e
	if init, ok := e.(*element.Initializer); ok {
		expr = init.Expr
	}
	if expr == nil {
		return nil, false
	}
	if !expr.IsConstant() {
		return nil, false
	}
	if folded, ok, err := expr.Fold(s.Registry); err == nil && ok && folded != nil {
		return folded, true
	}
	return expr, true
}
