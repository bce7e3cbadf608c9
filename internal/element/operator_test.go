package element

import "testing"

func TestBinaryOperatorFoldIntegerArithmetic(t *testing.T) {
	reg := NewRegistry()
	b := NewBinaryOperator(BinaryAdd, NewIntegerLiteral(2, false), NewIntegerLiteral(3, false))

	result, ok, err := b.Fold(reg)
	if err != nil {
		t.Fatalf("Fold() error = %v", err)
	}
	if !ok {
		t.Fatalf("Fold() ok = false, want true")
	}
	lit, isInt := result.(*IntegerLiteral)
	if !isInt {
		t.Fatalf("Fold() result type = %T, want *IntegerLiteral", result)
	}
	if lit.Value != 5 {
		t.Fatalf("Fold() value = %d, want 5", lit.Value)
	}
}

func TestBinaryOperatorFoldRelationalUsesCompare(t *testing.T) {
	tests := []struct {
		name string
		op   BinaryOp
		l, r uint64
		want bool
	}{
		{"less true", BinaryLess, 1, 2, true},
		{"less false", BinaryLess, 2, 1, false},
		{"eq true", BinaryEq, 5, 5, true},
		{"eq false", BinaryEq, 5, 6, false},
		{"greater-eq true", BinaryGreaterEq, 5, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			b := NewBinaryOperator(tt.op, NewIntegerLiteral(tt.l, false), NewIntegerLiteral(tt.r, false))

			result, ok, err := b.Fold(reg)
			if err != nil {
				t.Fatalf("Fold() error = %v", err)
			}
			if !ok {
				t.Fatalf("Fold() ok = false, want true")
			}
			lit, isBool := result.(*BooleanLiteral)
			if !isBool {
				t.Fatalf("Fold() result type = %T, want *BooleanLiteral", result)
			}
			if lit.Value != tt.want {
				t.Fatalf("Fold() value = %v, want %v", lit.Value, tt.want)
			}
		})
	}
}

func TestIntegerLiteralCompare(t *testing.T) {
	small := NewIntegerLiteral(3, false)
	big := NewIntegerLiteral(9, false)

	if cmp, ok := small.Compare(big); !ok || cmp >= 0 {
		t.Fatalf("small.Compare(big) = (%d, %v), want (<0, true)", cmp, ok)
	}
	if cmp, ok := big.Compare(small); !ok || cmp <= 0 {
		t.Fatalf("big.Compare(small) = (%d, %v), want (>0, true)", cmp, ok)
	}
	if cmp, ok := small.Compare(small); !ok || cmp != 0 {
		t.Fatalf("small.Compare(small) = (%d, %v), want (0, true)", cmp, ok)
	}
}

func TestCompareDefaultsToIncomparable(t *testing.T) {
	a := NewNilLiteral()
	b := NewNilLiteral()
	if _, ok := a.Compare(b); ok {
		t.Fatalf("NilLiteral.Compare should default to incomparable")
	}
}

func TestNumericTypeCompareOrdersBySize(t *testing.T) {
	u8 := NewNumericType(NewSymbol("u8", nil), 1, false, NumberClassInteger)
	u32 := NewNumericType(NewSymbol("u32", nil), 4, false, NumberClassInteger)

	cmp, ok := u8.Compare(u32)
	if !ok || cmp >= 0 {
		t.Fatalf("u8.Compare(u32) = (%d, %v), want (<0, true)", cmp, ok)
	}
}
