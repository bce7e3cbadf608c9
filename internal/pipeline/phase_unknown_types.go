package pipeline

import (
	"surge/internal/diag"
	"surge/internal/element"
)

// resolveUnknownTypes drains the unknown-types worklist (§4.5 phases 4
// and 6), replacing each identifier's UnknownType placeholder with the
// type inferred from its initializer. An identifier whose initializer
// still cannot be inferred (e.g. it depends on another not-yet-resolved
// identifier) stays on the worklist for the next pass. final promotes
// any leftover entry to a hard CUnknownType diagnostic instead of
// carrying it forward (§4.5 phase 8.c).
func (p *Pipeline) resolveUnknownTypes(final bool) error {
	pending := p.Scope.IdentifiersWithUnknownTypes()
	remaining := make([]*element.Identifier, 0, len(pending))

	for _, id := range pending {
		if id.TypeRf == nil || !id.TypeRf.IsUnknownType() {
			continue
		}
		t, ok, err := id.InferType(p.Registry)
		if err != nil {
			return err
		}
		if ok && t != nil {
			id.TypeRf.Resolve(t)
			continue
		}
		if final {
			d := diag.NewError(diag.CUnknownType, id.Location(),
				"cannot infer type for \""+idName(id)+"\"")
			p.Bag.Add(&d)
			continue
		}
		remaining = append(remaining, id)
	}

	p.Scope.SetUnknownTypeIdentifiers(remaining)
	return nil
}

func idName(id *element.Identifier) string {
	if id.Sym == nil {
		return "<anonymous>"
	}
	return id.Sym.Qualified()
}
