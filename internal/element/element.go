package element

import (
	"surge/internal/source"
)

// Element is the universal node of the semantic graph (§3). Every
// concrete variant embeds base, which supplies the common fields and
// sane defaults for every visitor-style operation; variants override
// only the operations whose behaviour actually differs (§9 "model as a
// tagged variant with a dispatch layer").
type Element interface {
	ID() ID
	Tag() Tag

	ParentScope() *Block
	SetParentScope(*Block)

	ParentElement() Element
	SetParentElement(Element)

	Module() *Module
	SetModule(*Module)

	Location() source.Span
	SetLocation(source.Span)

	Attributes() map[string]*Attribute
	AddAttribute(*Attribute)
	FindAttribute(name string) (*Attribute, bool)

	Comments() []*Comment
	AddComment(*Comment)

	NonOwning() bool
	MakeNonOwning()

	// OwnedElements lists the elements directly owned by this one (§3
	// invariant iii). The default is empty; composite elements
	// (Block, CompositeType, ProcedureType, ...) override it.
	OwnedElements() []Element

	// LabelName produces the deterministic label the emitter uses for
	// this element, grounded on the original's element::label_name().
	LabelName() string

	IsConstant() bool
	IsType() bool
	IsDirective() bool

	// Fold attempts constant folding (§4.5 phase 7). ok is false when
	// this element's tag does not participate in folding; err is
	// non-nil only for X-family internal errors. Newly synthesised
	// replacement elements are registered through reg.
	Fold(reg *Registry) (result Element, ok bool, err error)

	// InferType attempts to infer this element's type without
	// requiring a declared annotation (§4.5 phase 4).
	InferType(reg *Registry) (Type, bool, error)

	// ApplyFoldResult splices a folded replacement into this element
	// in place of one of its children, returning false if the element
	// does not own that child.
	ApplyFoldResult(original, replacement Element) bool

	AsBool() (bool, bool)
	AsInteger() (uint64, bool)
	AsFloat() (float64, bool)
	AsString() (string, bool)
	AsRune() (rune, bool)

	// Compare reports how this element orders against other: -1, 0, or
	// 1, with ok false when the two are not comparable. It defaults to
	// "incomparable" and is overridden by literal and numeric-type
	// elements (§9 design note, grounded on the original's on_equals /
	// on_less_than virtual hooks), used by the constant folder's
	// relational label-reference fold step.
	Compare(other Element) (int, bool)
}

// base implements Element with the defaults every variant inherits.
// It is embedded by value in every concrete element struct.
type base struct {
	id            ID
	tag           Tag
	parentScope   *Block
	parentElement Element
	module        *Module
	loc           source.Span
	attrs         map[string]*Attribute
	comments      []*Comment
	nonOwning     bool
}

func newBase(tag Tag) base {
	return base{id: nextID(), tag: tag}
}

func (b *base) ID() ID   { return b.id }
func (b *base) Tag() Tag { return b.tag }

func (b *base) ParentScope() *Block        { return b.parentScope }
func (b *base) SetParentScope(s *Block)    { b.parentScope = s }
func (b *base) ParentElement() Element     { return b.parentElement }
func (b *base) SetParentElement(e Element) { b.parentElement = e }
func (b *base) Module() *Module            { return b.module }
func (b *base) SetModule(m *Module)        { b.module = m }
func (b *base) Location() source.Span      { return b.loc }
func (b *base) SetLocation(s source.Span)  { b.loc = s }

func (b *base) Attributes() map[string]*Attribute {
	if b.attrs == nil {
		return map[string]*Attribute{}
	}
	return b.attrs
}

func (b *base) AddAttribute(a *Attribute) {
	if a == nil {
		return
	}
	if b.attrs == nil {
		b.attrs = make(map[string]*Attribute)
	}
	b.attrs[a.Name] = a
}

func (b *base) FindAttribute(name string) (*Attribute, bool) {
	a, ok := b.attrs[name]
	return a, ok
}

func (b *base) Comments() []*Comment { return b.comments }
func (b *base) AddComment(c *Comment) {
	if c != nil {
		b.comments = append(b.comments, c)
	}
}

func (b *base) NonOwning() bool   { return b.nonOwning }
func (b *base) MakeNonOwning()    { b.nonOwning = true }
func (b *base) OwnedElements() []Element { return nil }
func (b *base) LabelName() string        { return b.tag.String() + "_" + b.id.String()[1:] }

func (b *base) IsConstant() bool  { return false }
func (b *base) IsType() bool      { return b.tag.IsType() }
func (b *base) IsDirective() bool { return b.tag.IsDirective() }

// Fold defaults to "does not participate in folding" for every element
// that doesn't override it (blocks, declarations, types, ...).
func (b *base) Fold(*Registry) (Element, bool, error) { return nil, false, nil }

// InferType defaults to "cannot be inferred"; expression variants
// override this.
func (b *base) InferType(*Registry) (Type, bool, error) { return nil, false, nil }

func (b *base) ApplyFoldResult(Element, Element) bool { return false }

func (b *base) AsBool() (bool, bool)       { return false, false }
func (b *base) AsInteger() (uint64, bool)  { return 0, false }
func (b *base) AsFloat() (float64, bool)   { return 0, false }
func (b *base) AsString() (string, bool)   { return "", false }
func (b *base) AsRune() (rune, bool)       { return 0, false }

// Compare defaults to "incomparable"; numeric literal elements override
// it via compareNumeric below.
func (b *base) Compare(Element) (int, bool) { return 0, false }

// compareNumeric implements the shared ordering used by every numeric
// literal kind's Compare override: prefer integer comparison when both
// sides expose AsInteger, else fall back to float comparison.
func compareNumeric(self, other Element) (int, bool) {
	if other == nil {
		return 0, false
	}
	if lv, lok := signedInteger(self); lok {
		if rv, rok := signedInteger(other); rok {
			switch {
			case lv < rv:
				return -1, true
			case lv > rv:
				return 1, true
			default:
				return 0, true
			}
		}
	}
	if lv, lok := self.AsFloat(); lok {
		if rv, rok := other.AsFloat(); rok {
			switch {
			case lv < rv:
				return -1, true
			case lv > rv:
				return 1, true
			default:
				return 0, true
			}
		}
	}
	return 0, false
}

// signedInteger reads an element's integer value as a signed quantity,
// honoring IntegerLiteral.Negative so relational folds order -1 before
// 1 instead of treating both as the same unsigned magnitude.
func signedInteger(e Element) (int64, bool) {
	if il, ok := e.(*IntegerLiteral); ok {
		v := int64(il.Value)
		if il.Negative {
			v = -v
		}
		return v, true
	}
	v, ok := e.AsInteger()
	if !ok {
		return 0, false
	}
	return int64(v), true
}
