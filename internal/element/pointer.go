package element

// pointerSize is the target machine's pointer width in bytes. The
// register VM (§6) is a 64-bit design.
const pointerSize = 8

// PointerType wraps a type-reference to its base type (§3).
type PointerType struct {
	typeBase
	Base *TypeReference
}

func NewPointerType(sym *Symbol, base *TypeReference) *PointerType {
	p := &PointerType{
		typeBase: newTypeBase(TagPointerType, sym, pointerSize, pointerSize, NumberClassNone),
		Base:     base,
	}
	return p
}

func (t *PointerType) OwnedElements() []Element {
	if t.Base == nil {
		return nil
	}
	return []Element{t.Base}
}

// TypeCheck implements §4.3 "pointer vs pointer": true if the other's
// base is void, else recurse on base types. "pointer vs anything-else"
// delegates to base.type_check(other).
func (t *PointerType) TypeCheck(other Type) bool {
	if other == nil {
		return false
	}
	if op, ok := other.(*PointerType); ok {
		if op.Base == nil || op.Base.Resolved() == nil {
			return false
		}
		if isVoidType(op.Base.Resolved()) {
			return true
		}
		if t.Base == nil || t.Base.Resolved() == nil {
			return false
		}
		return t.Base.Resolved().TypeCheck(op.Base.Resolved())
	}
	if t.Base == nil || t.Base.Resolved() == nil {
		return false
	}
	return t.Base.Resolved().TypeCheck(other)
}

func isVoidType(t Type) bool {
	return t != nil && t.Symbol() != nil && t.Symbol().Name == "void"
}

// ArrayType carries a base element type-reference and the subscript
// elements describing its dimensions (§3). Subscript lengths are not
// part of type identity at this layer (§4.3).
type ArrayType struct {
	typeBase
	Base       *TypeReference
	Subscripts []Element
}

func NewArrayType(sym *Symbol, base *TypeReference, subscripts []Element, elemSize int) *ArrayType {
	count := 1
	for range subscripts {
		count++
	}
	return &ArrayType{
		typeBase:   newTypeBase(TagArrayType, sym, pointerSize, elemSize*count, NumberClassNone),
		Base:       base,
		Subscripts: subscripts,
	}
}

func (t *ArrayType) OwnedElements() []Element {
	out := make([]Element, 0, len(t.Subscripts)+1)
	if t.Base != nil {
		out = append(out, t.Base)
	}
	out = append(out, t.Subscripts...)
	return out
}

// TypeCheck implements §4.3 "array vs array": recurse on element type.
func (t *ArrayType) TypeCheck(other Type) bool {
	o, ok := other.(*ArrayType)
	if !ok {
		return false
	}
	if t.Base == nil || o.Base == nil || t.Base.Resolved() == nil || o.Base.Resolved() == nil {
		return false
	}
	return t.Base.Resolved().TypeCheck(o.Base.Resolved())
}

// TupleType is an ordered, fixed-arity product type.
type TupleType struct {
	typeBase
	Members []*TypeReference
}

func NewTupleType(sym *Symbol, members []*TypeReference) *TupleType {
	size := 0
	for _, m := range members {
		if m != nil && m.Resolved() != nil {
			size += m.Resolved().SizeInBytes()
		}
	}
	return &TupleType{
		typeBase: newTypeBase(TagTupleType, sym, pointerSize, size, NumberClassNone),
		Members:  members,
	}
}

func (t *TupleType) OwnedElements() []Element {
	out := make([]Element, 0, len(t.Members))
	for _, m := range t.Members {
		out = append(out, m)
	}
	return out
}

// TypeCheck for tuples is structural member-wise, since the original
// treats tuples as an unboxed product rather than a nominal composite.
func (t *TupleType) TypeCheck(other Type) bool {
	o, ok := other.(*TupleType)
	if !ok || len(o.Members) != len(t.Members) {
		return false
	}
	for i, m := range t.Members {
		om := o.Members[i]
		if m == nil || om == nil || m.Resolved() == nil || om.Resolved() == nil {
			return false
		}
		if !m.Resolved().TypeCheck(om.Resolved()) {
			return false
		}
	}
	return true
}
