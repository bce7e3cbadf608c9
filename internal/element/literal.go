package element

import "fortio.org/safecast"

// IntegerLiteral carries a 64-bit value plus the narrowest NumericType
// tag the evaluator could infer from its textual form (§4.3, §8
// scenario 1: "x := 200 infers u8; y := 300 infers u16; z := -1 infers
// s8"). CoreType is filled in later by the pipeline's core-types phase
// once the registry's core-type table exists — the evaluator only
// records the bit width and signedness it observed.
type IntegerLiteral struct {
	base

	Value    uint64
	Negative bool
	coreType *NumericType

	// pinnedTypeName, when non-empty, overrides the value-narrowing rule
	// below: a fold that knows its result's type by construction (e.g.
	// size_of, which always folds to a u32 literal regardless of the
	// measured size's own magnitude, §4.5.7 scenario 5) pins it here instead of
	// letting InferType re-derive a possibly narrower type from Value.
	pinnedTypeName string
}

func NewIntegerLiteral(value uint64, negative bool) *IntegerLiteral {
	return &IntegerLiteral{base: newBase(TagIntegerLiteral), Value: value, Negative: negative}
}

func (l *IntegerLiteral) IsConstant() bool { return true }

func (l *IntegerLiteral) AsInteger() (uint64, bool) { return l.Value, true }

// Compare orders by value, used by the constant folder's relational
// binary-operator fold and by label-reference equality checks (§9
// design note, SPEC_FULL §C.1).
func (l *IntegerLiteral) Compare(other Element) (int, bool) { return compareNumeric(l, other) }

func (l *IntegerLiteral) SetCoreType(t *NumericType) { l.coreType = t }

// PinType fixes name as InferType's result, bypassing narrowestIntegerTypeName.
func (l *IntegerLiteral) PinType(name string) { l.pinnedTypeName = name }

// InferType implements the literal-narrowing rule of §4.3: select the
// smallest signed/unsigned core type whose range covers Value, widening
// through u8 < u16 < u32 < u64 (or s8 < s16 < s32 < s64 when Negative).
// A pinned type name (set via PinType) takes precedence over narrowing.
func (l *IntegerLiteral) InferType(reg *Registry) (Type, bool, error) {
	name := l.pinnedTypeName
	if name == "" {
		name = narrowestIntegerTypeName(l.Value, l.Negative)
	}
	t := reg.CoreTypeNamed(name)
	if t == nil {
		return nil, false, nil
	}
	nt, ok := t.(*NumericType)
	if ok {
		l.coreType = nt
	}
	return t, true, nil
}

func narrowestIntegerTypeName(value uint64, negative bool) string {
	if negative {
		// safecast.Conv would reject values that don't fit in int64 at
		// all; magnitude comparisons below operate on the unsigned
		// bit pattern directly since Value already holds |v|.
		switch {
		case value <= 1<<7:
			return "s8"
		case value <= 1<<15:
			return "s16"
		case value <= 1<<31:
			return "s32"
		default:
			return "s64"
		}
	}
	switch {
	case value <= 1<<8-1:
		return "u8"
	case value <= 1<<16-1:
		return "u16"
	case value <= 1<<32-1:
		return "u32"
	default:
		return "u64"
	}
}

// FloatLiteral carries a 64-bit float value; §4.3 narrows it the same
// way it narrows integers, just on magnitude alone (no sign widening):
// f32 when Value fits f32's range, else f64.
type FloatLiteral struct {
	base
	Value float64
}

func NewFloatLiteral(value float64) *FloatLiteral {
	return &FloatLiteral{base: newBase(TagFloatLiteral), Value: value}
}

func (l *FloatLiteral) IsConstant() bool           { return true }
func (l *FloatLiteral) AsFloat() (float64, bool)   { return l.Value, true }
func (l *FloatLiteral) Compare(other Element) (int, bool) { return compareNumeric(l, other) }

func (l *FloatLiteral) InferType(reg *Registry) (Type, bool, error) {
	t := reg.CoreTypeNamed(NarrowestFloatTypeName(l.Value))
	if t == nil {
		return nil, false, nil
	}
	return t, true, nil
}

// BooleanLiteral is `true`/`false`.
type BooleanLiteral struct {
	base
	Value bool
}

func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{base: newBase(TagBooleanLiteral), Value: value}
}

func (l *BooleanLiteral) IsConstant() bool     { return true }
func (l *BooleanLiteral) AsBool() (bool, bool) { return l.Value, true }

func (l *BooleanLiteral) InferType(reg *Registry) (Type, bool, error) {
	t := reg.CoreTypeNamed("bool")
	if t == nil {
		return nil, false, nil
	}
	return t, true, nil
}

// StringLiteral holds an already-unescaped string value; the emitter
// interns it into the byte-code's string table (§4.6).
type StringLiteral struct {
	base
	Value string
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{base: newBase(TagStringLiteral), Value: value}
}

func (l *StringLiteral) IsConstant() bool         { return true }
func (l *StringLiteral) AsString() (string, bool) { return l.Value, true }

func (l *StringLiteral) InferType(reg *Registry) (Type, bool, error) {
	t := reg.CoreTypeNamed("string")
	if t == nil {
		return nil, false, nil
	}
	return t, true, nil
}

// CharacterLiteral is a single rune literal, distinct from RuneType's
// *kind* the way IntegerLiteral is distinct from NumericType's kind.
type CharacterLiteral struct {
	base
	Value rune
}

func NewCharacterLiteral(value rune) *CharacterLiteral {
	return &CharacterLiteral{base: newBase(TagCharacterLiteral), Value: value}
}

func (l *CharacterLiteral) IsConstant() bool   { return true }
func (l *CharacterLiteral) AsRune() (rune, bool) { return l.Value, true }

func (l *CharacterLiteral) AsInteger() (uint64, bool) {
	v, err := safecast.Conv[uint64](l.Value)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (l *CharacterLiteral) Compare(other Element) (int, bool) { return compareNumeric(l, other) }

func (l *CharacterLiteral) InferType(reg *Registry) (Type, bool, error) {
	t := reg.CoreTypeNamed("rune")
	if t == nil {
		return nil, false, nil
	}
	return t, true, nil
}

// NilLiteral is the untyped nil pointer constant; its type is only
// known once it flows into a pointer-typed context, so InferType
// deliberately returns false here — the pipeline's type-check phase
// special-cases NilLiteral against whatever PointerType it meets.
type NilLiteral struct{ base }

func NewNilLiteral() *NilLiteral {
	return &NilLiteral{base: newBase(TagNilLiteral)}
}

func (l *NilLiteral) IsConstant() bool { return true }

// UninitializedLiteral is the explicit `---` / uninitialized-value
// marker (§3); it carries no value and never folds.
type UninitializedLiteral struct{ base }

func NewUninitializedLiteral() *UninitializedLiteral {
	return &UninitializedLiteral{base: newBase(TagUninitializedLiteral)}
}

func (l *UninitializedLiteral) IsConstant() bool { return true }
