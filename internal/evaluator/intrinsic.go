package evaluator

import "surge/internal/element"

var intrinsicKindByLexeme = map[string]element.IntrinsicKind{
	"size_of":    element.IntrinsicSizeOf,
	"align_of":   element.IntrinsicAlignOf,
	"length_of":  element.IntrinsicLengthOf,
	"address_of": element.IntrinsicAddressOf,
	"type_of":    element.IntrinsicTypeOf,
	"alloc":      element.IntrinsicAlloc,
	"free":       element.IntrinsicFree,
	"range":      element.IntrinsicRange,
}

// evalIntrinsicCall evaluates a call to one of the eight reserved
// built-in procedure names. A type-valued argument (e.g. `size_of(u64)`)
// arrives as a bare type-name lexeme rather than an expression node,
// so it is wrapped in a TypeLiteral rather than recursed into
// Evaluate, which has no type-name node kind of its own.
func (ev *Evaluator) evalIntrinsicCall(n *Node) (Visit, error) {
	kind, ok := intrinsicKindByLexeme[n.Lexeme]
	if !ok {
		kind = element.IntrinsicTypeOf
	}
	var args []element.Element
	for _, c := range n.Children {
		if c.attr("is_type_name") == "true" {
			ref := ev.Builder.MakeTypeReference(ev.symbolFromLexeme(c.Lexeme))
			args = append(args, ev.Builder.MakeTypeLiteral(ref))
			continue
		}
		v, err := ev.Evaluate(c)
		if err != nil {
			return Visit{}, err
		}
		args = append(args, v.Element)
	}
	in := ev.Builder.MakeIntrinsic(kind, args...)
	in.SetLocation(n.Location)
	return elementVisit(in), nil
}
