package element

// NumericType models every built-in integer/float primitive (u8..u64,
// s8..s64, f32, f64). Signedness is carried explicitly since §4.3's
// type_check and §4.3's literal-narrowing rules both branch on it.
type NumericType struct {
	typeBase
	Signed bool
}

func NewNumericType(sym *Symbol, size int, signed bool, nc NumberClass) *NumericType {
	return &NumericType{
		typeBase: newTypeBase(TagNumericType, sym, size, size, nc),
		Signed:   signed,
	}
}

// TypeCheck implements §4.3 "numeric vs numeric":
//   - same id -> true
//   - both floating -> true
//   - both signed -> other.size < self.size (widening into same
//     signedness is allowed; narrowing is forbidden — so a *smaller*
//     source may flow into a larger destination, which is why the
//     comparison is reversed from what "widening" suggests at a glance)
//   - otherwise -> other.size <= self.size
//
// Pointer and array types delegate numeric comparisons into their base
// type the same way; composite types never reach here since they use
// identity only.
func (t *NumericType) TypeCheck(other Type) bool {
	if other == nil {
		return false
	}
	if other.ID() == t.ID() {
		return true
	}
	o, ok := other.(*NumericType)
	if !ok {
		return false
	}
	if t.NumberClass() == NumberClassFloating && o.NumberClass() == NumberClassFloating {
		return true
	}
	if t.Signed && o.Signed {
		return o.SizeInBytes() < t.SizeInBytes()
	}
	return o.SizeInBytes() <= t.SizeInBytes()
}

// Compare orders two numeric types by size, the type-level counterpart
// of the literal Compare overrides (SPEC_FULL §C.1).
func (t *NumericType) Compare(other Element) (int, bool) {
	o, ok := other.(*NumericType)
	if !ok {
		return 0, false
	}
	switch {
	case t.SizeInBytes() < o.SizeInBytes():
		return -1, true
	case t.SizeInBytes() > o.SizeInBytes():
		return 1, true
	default:
		return 0, true
	}
}

// BoolType is the sole boolean primitive.
type BoolType struct{ typeBase }

func NewBoolType(sym *Symbol) *BoolType {
	return &BoolType{typeBase: newTypeBase(TagBoolType, sym, 1, 1, NumberClassNone)}
}

func (t *BoolType) TypeCheck(other Type) bool {
	_, ok := other.(*BoolType)
	return ok
}

// RuneType is the sole character/rune primitive (UTF-32 code point).
type RuneType struct{ typeBase }

func NewRuneType(sym *Symbol) *RuneType {
	return &RuneType{typeBase: newTypeBase(TagRuneType, sym, 4, 4, NumberClassInteger)}
}

func (t *RuneType) TypeCheck(other Type) bool {
	_, ok := other.(*RuneType)
	return ok
}
