package element

// NumberClass tags whether a numeric type is integral or floating (§3).
type NumberClass uint8

const (
	NumberClassNone NumberClass = iota
	NumberClassInteger
	NumberClassFloating
)

func (n NumberClass) String() string {
	switch n {
	case NumberClassInteger:
		return "integer"
	case NumberClassFloating:
		return "floating"
	default:
		return "none"
	}
}

// Type is a specialisation of Element (§3 "Type"). Every Type carries a
// symbol, alignment, size and number class, and exposes TypeCheck whose
// semantics are variant-specific (§4.3).
type Type interface {
	Element

	Symbol() *Symbol
	Alignment() int
	SizeInBytes() int
	NumberClass() NumberClass

	// TypeCheck reports whether a value of type `other` may be used
	// where `self` (the receiver) is expected. Semantics per §4.3.
	TypeCheck(other Type) bool
}

// typeBase implements the common Type fields; every concrete type
// variant embeds it in addition to base.
type typeBase struct {
	base
	sym        *Symbol
	alignment  int
	size       int
	numClass   NumberClass
}

func newTypeBase(tag Tag, sym *Symbol, alignment, size int, nc NumberClass) typeBase {
	return typeBase{base: newBase(tag), sym: sym, alignment: alignment, size: size, numClass: nc}
}

func (t *typeBase) Symbol() *Symbol        { return t.sym }
func (t *typeBase) Alignment() int         { return t.alignment }
func (t *typeBase) SizeInBytes() int       { return t.size }
func (t *typeBase) NumberClass() NumberClass { return t.numClass }
func (t *typeBase) IsConstant() bool       { return true }

func (t *typeBase) LabelName() string {
	if t.sym != nil {
		return t.sym.Qualified()
	}
	return t.tag.String()
}

// TypeCheck defaults to identity: only a type checks against itself.
// Composite types (§4.3 "composite: identity only") rely on exactly
// this default; every other variant overrides it.
func (t *typeBase) TypeCheck(other Type) bool {
	return other != nil && other.ID() == t.ID()
}
