package pipeline

import (
	"surge/internal/diag"
	"surge/internal/element"
)

// resolveUnresolvedIdentifiers implements §4.5 phase 5: a single pass
// over the unresolved-reference worklist. A reference whose symbol
// resolves to exactly one candidate binds it directly; one that
// resolves to several binds the first by scope-chain order and splices
// the rest into Overloads for the type-check phase's overload
// resolution (§4.5 phase 8.b) to pick from using argument types. A
// reference with zero candidates is a hard error — there is no later
// phase that revisits this worklist.
func (p *Pipeline) resolveUnresolvedIdentifiers() error {
	refs := p.Scope.UnresolvedIdentifierReferences()
	for _, ref := range refs {
		if ref.IsResolved() {
			continue
		}
		candidates := p.Scope.FindIdentifier(ref.Sym, ref.ParentScope())
		if len(candidates) == 0 {
			d := diag.NewError(diag.CUnresolvedIdentifier, ref.Location(),
				"unresolved identifier \""+symName(ref.Sym)+"\"")
			p.Bag.Add(&d)
			continue
		}
		ref.Resolve(candidates[0])
		if len(candidates) > 1 {
			ref.Overloads = candidates[1:]
		}
	}
	p.Scope.SetUnresolvedIdentifierReferences(nil)
	return nil
}

func symName(s *element.Symbol) string {
	if s == nil {
		return "<anonymous>"
	}
	return s.Qualified()
}
