package builder

import "surge/internal/element"

// MakeDirective constructs and registers a Directive of the given
// kind. Callers fill in the kind-specific fields (Condition, Body,
// Expr, TypeRf, NewTypeSym, Symbol) after construction, since the ten
// directive kinds share one struct but populate different subsets of
// it (§4.4).
func (b *Builder) MakeDirective(kind element.DirectiveKind) *element.Directive {
	d := element.NewDirective(kind)
	b.register(d)
	return d
}

// MakeIntrinsic constructs and registers an Intrinsic call of the
// given kind with the given arguments.
func (b *Builder) MakeIntrinsic(kind element.IntrinsicKind, args ...element.Element) *element.Intrinsic {
	in := element.NewIntrinsic(kind, args...)
	b.register(in)
	return in
}
