package element

// IntrinsicKind enumerates the eight reserved built-in procedures
// registered during §4.5 phase 2 ("built-in procedures registration").
type IntrinsicKind uint8

const (
	IntrinsicSizeOf IntrinsicKind = iota
	IntrinsicAlignOf
	IntrinsicLengthOf
	IntrinsicAddressOf
	IntrinsicTypeOf
	IntrinsicAlloc
	IntrinsicFree
	IntrinsicRange
)

func (k IntrinsicKind) tag() Tag {
	switch k {
	case IntrinsicSizeOf:
		return TagSizeOfIntrinsic
	case IntrinsicAlignOf:
		return TagAlignOfIntrinsic
	case IntrinsicLengthOf:
		return TagLengthOfIntrinsic
	case IntrinsicAddressOf:
		return TagAddressOfIntrinsic
	case IntrinsicTypeOf:
		return TagTypeOfIntrinsic
	case IntrinsicAlloc:
		return TagAllocIntrinsic
	case IntrinsicFree:
		return TagFreeIntrinsic
	case IntrinsicRange:
		return TagRangeIntrinsic
	default:
		return TagInvalid
	}
}

func (k IntrinsicKind) Name() string {
	switch k {
	case IntrinsicSizeOf:
		return "size_of"
	case IntrinsicAlignOf:
		return "align_of"
	case IntrinsicLengthOf:
		return "length_of"
	case IntrinsicAddressOf:
		return "address_of"
	case IntrinsicTypeOf:
		return "type_of"
	case IntrinsicAlloc:
		return "alloc"
	case IntrinsicFree:
		return "free"
	case IntrinsicRange:
		return "range"
	default:
		return "unknown_intrinsic"
	}
}

// Intrinsic is a call to one of the eight built-in procedures. Unlike
// ProcedureCall, the callee here is fixed at construction (there is no
// IdentifierReference to resolve) since intrinsics are a closed set
// registered once, up front, by the pipeline's own core-setup phase.
type Intrinsic struct {
	base
	Kind IntrinsicKind
	Args []Element
}

func NewIntrinsic(kind IntrinsicKind, args ...Element) *Intrinsic {
	in := &Intrinsic{base: newBase(kind.tag()), Kind: kind, Args: args}
	for _, a := range args {
		if a != nil {
			a.SetParentElement(in)
		}
	}
	return in
}

func (in *Intrinsic) OwnedElements() []Element { return in.Args }

func (in *Intrinsic) ApplyFoldResult(original, replacement Element) bool {
	for i, a := range in.Args {
		if a == original {
			in.Args[i] = replacement
			if replacement != nil {
				replacement.SetParentElement(in)
			}
			return true
		}
	}
	return false
}

// Fold implements §4.5 phase 7's "intrinsics fold first" step for the
// two intrinsics whose result is knowable purely from a resolved type
// (size_of, align_of); length_of folds when its argument is a
// fixed-size ArrayType; the others (address_of, type_of, alloc, free,
// range) never fold — they require either runtime storage or remain a
// call for the emitter to lower directly.
func (in *Intrinsic) Fold(reg *Registry) (Element, bool, error) {
	switch in.Kind {
	case IntrinsicSizeOf:
		t, ok := in.resolveTypeArg(reg)
		if !ok {
			return nil, false, nil
		}
		lit := NewIntegerLiteral(uint64(t.SizeInBytes()), false)
		lit.PinType("u32")
		return lit, true, nil
	case IntrinsicAlignOf:
		t, ok := in.resolveTypeArg(reg)
		if !ok {
			return nil, false, nil
		}
		return NewIntegerLiteral(uint64(t.Alignment()), false), true, nil
	case IntrinsicLengthOf:
		t, ok := in.resolveTypeArg(reg)
		if !ok {
			return nil, false, nil
		}
		at, ok := t.(*ArrayType)
		if !ok || len(at.Subscripts) == 0 {
			return nil, false, nil
		}
		if v, ok := at.Subscripts[0].AsInteger(); ok {
			return NewIntegerLiteral(v, false), true, nil
		}
		return nil, false, nil
	default:
		return nil, false, nil
	}
}

func (in *Intrinsic) resolveTypeArg(reg *Registry) (Type, bool) {
	if len(in.Args) == 0 {
		return nil, false
	}
	if lit, ok := in.Args[0].(*TypeLiteral); ok {
		if lit.Ref == nil || lit.Ref.Resolved() == nil {
			return nil, false
		}
		return lit.Ref.Resolved(), true
	}
	t, ok, err := in.Args[0].InferType(reg)
	if err != nil || !ok {
		return nil, false
	}
	return t, true
}

func (in *Intrinsic) InferType(reg *Registry) (Type, bool, error) {
	switch in.Kind {
	case IntrinsicSizeOf, IntrinsicAlignOf, IntrinsicLengthOf:
		return reg.CoreTypeNamed("u64"), reg.CoreTypeNamed("u64") != nil, nil
	case IntrinsicAddressOf:
		return reg.CoreTypeNamed("u64"), reg.CoreTypeNamed("u64") != nil, nil
	case IntrinsicTypeOf:
		return nil, false, nil
	case IntrinsicAlloc:
		if len(in.Args) == 0 {
			return nil, false, nil
		}
		t, ok := in.resolveTypeArg(reg)
		if !ok {
			return nil, false, nil
		}
		baseRef := NewTypeReference(nil)
		baseRef.Resolve(t)
		return NewPointerType(nil, baseRef), true, nil
	default:
		return nil, false, nil
	}
}
