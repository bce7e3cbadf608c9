package element

import "strings"

// Symbol is a qualified name: a leaf name plus an ordered list of
// namespace parts, with a cached fully-qualified form (§3 "Symbol").
// Symbols participate in the graph as elements so they can be folded
// and compared like any other node (label-reference equality).
type Symbol struct {
	base

	Name       string
	Namespaces []string

	qualified      string
	qualifiedValid bool
}

// NewSymbol constructs an unregistered Symbol element; callers go
// through builder.MakeSymbol to register it.
func NewSymbol(name string, namespaces []string) *Symbol {
	return &Symbol{base: newBase(TagSymbol), Name: name, Namespaces: namespaces}
}

// Qualified returns the fully-qualified dotted name, caching the result.
func (s *Symbol) Qualified() string {
	if s.qualifiedValid {
		return s.qualified
	}
	if len(s.Namespaces) == 0 {
		s.qualified = s.Name
	} else {
		s.qualified = strings.Join(s.Namespaces, "::") + "::" + s.Name
	}
	s.qualifiedValid = true
	return s.qualified
}

// IsQualified reports whether the symbol carries any namespace parts.
func (s *Symbol) IsQualified() bool { return len(s.Namespaces) > 0 }

// Equals reports symbol equality: two symbols are equal iff their
// fully-qualified names match (§3).
func (s *Symbol) Equals(other *Symbol) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Qualified() == other.Qualified()
}

func (s *Symbol) AsString() (string, bool) { return s.Qualified(), true }
func (s *Symbol) LabelName() string        { return s.Qualified() }
