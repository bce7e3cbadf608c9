package element

// TypeReference is an indirection: an unresolved qualified symbol plus,
// once resolved, a pointer to a concrete type (§3 "Type-reference").
// Every consumer of a type goes through a TypeReference so resolution
// only ever has to patch one place.
type TypeReference struct {
	base

	Qualified *Symbol
	resolved  Type
}

// NewTypeReference constructs an unresolved reference to qualified.
func NewTypeReference(qualified *Symbol) *TypeReference {
	return &TypeReference{base: newBase(TagTypeReference), Qualified: qualified}
}

// IsResolved reports whether Resolve has been called with a non-nil type.
func (r *TypeReference) IsResolved() bool { return r.resolved != nil }

// IsUnknownType reports whether the reference still points at an
// UnknownType placeholder or has not been resolved at all (§8 invariant 2).
func (r *TypeReference) IsUnknownType() bool {
	if r.resolved == nil {
		return true
	}
	_, ok := r.resolved.(*UnknownType)
	return ok
}

// Resolved returns the resolved type, or nil if unresolved.
func (r *TypeReference) Resolved() Type { return r.resolved }

// Resolve patches the single indirection point with the concrete type.
func (r *TypeReference) Resolve(t Type) { r.resolved = t }

func (r *TypeReference) OwnedElements() []Element {
	if r.Qualified == nil {
		return nil
	}
	return []Element{r.Qualified}
}

func (r *TypeReference) LabelName() string {
	if r.resolved != nil {
		return r.resolved.LabelName()
	}
	if r.Qualified != nil {
		return r.Qualified.Qualified()
	}
	return "unresolved_type_reference"
}
