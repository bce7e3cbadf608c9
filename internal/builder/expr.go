package builder

import "surge/internal/element"

// MakeIntegerLiteral constructs and registers an IntegerLiteral.
func (b *Builder) MakeIntegerLiteral(value uint64, negative bool) *element.IntegerLiteral {
	l := element.NewIntegerLiteral(value, negative)
	b.register(l)
	return l
}

// MakeFloatLiteral constructs and registers a FloatLiteral.
func (b *Builder) MakeFloatLiteral(value float64) *element.FloatLiteral {
	l := element.NewFloatLiteral(value)
	b.register(l)
	return l
}

// MakeBooleanLiteral constructs and registers a BooleanLiteral.
func (b *Builder) MakeBooleanLiteral(value bool) *element.BooleanLiteral {
	l := element.NewBooleanLiteral(value)
	b.register(l)
	return l
}

// MakeStringLiteral constructs and registers a StringLiteral.
func (b *Builder) MakeStringLiteral(value string) *element.StringLiteral {
	l := element.NewStringLiteral(value)
	b.register(l)
	return l
}

// MakeCharacterLiteral constructs and registers a CharacterLiteral.
func (b *Builder) MakeCharacterLiteral(value rune) *element.CharacterLiteral {
	l := element.NewCharacterLiteral(value)
	b.register(l)
	return l
}

// MakeNilLiteral constructs and registers a NilLiteral.
func (b *Builder) MakeNilLiteral() *element.NilLiteral {
	l := element.NewNilLiteral()
	b.register(l)
	return l
}

// MakeUninitializedLiteral constructs and registers an
// UninitializedLiteral.
func (b *Builder) MakeUninitializedLiteral() *element.UninitializedLiteral {
	l := element.NewUninitializedLiteral()
	b.register(l)
	return l
}

// MakeUnaryOperator constructs and registers a UnaryOperator.
func (b *Builder) MakeUnaryOperator(op element.UnaryOp, operand element.Element) *element.UnaryOperator {
	u := element.NewUnaryOperator(op, operand)
	b.register(u)
	return u
}

// MakeBinaryOperator constructs and registers a BinaryOperator.
func (b *Builder) MakeBinaryOperator(op element.BinaryOp, left, right element.Element) *element.BinaryOperator {
	o := element.NewBinaryOperator(op, left, right)
	b.register(o)
	return o
}

// MakeCast constructs and registers a Cast.
func (b *Builder) MakeCast(expr element.Element, typeRf *element.TypeReference) *element.Cast {
	c := element.NewCast(expr, typeRf)
	b.register(c)
	return c
}

// MakeTransmute constructs and registers a Transmute.
func (b *Builder) MakeTransmute(expr element.Element, typeRf *element.TypeReference) *element.Transmute {
	t := element.NewTransmute(expr, typeRf)
	b.register(t)
	return t
}

// MakeSpreadOperator constructs and registers a SpreadOperator.
func (b *Builder) MakeSpreadOperator(expr element.Element) *element.SpreadOperator {
	s := element.NewSpreadOperator(expr)
	b.register(s)
	return s
}

// MakeProcedureCall constructs and registers a ProcedureCall. The
// callee reference must already have been produced by
// MakeIdentifierReference so it is enqueued on the unresolved worklist.
func (b *Builder) MakeProcedureCall(callee *element.IdentifierReference, args *element.ArgumentList, keywords ...*element.ArgumentPair) *element.ProcedureCall {
	c := element.NewProcedureCall(callee, args, keywords...)
	b.register(c)
	return c
}
