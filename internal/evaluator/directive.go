package evaluator

import "surge/internal/element"

var directiveKindByLexeme = map[string]element.DirectiveKind{
	"if":        element.DirectiveIf,
	"elif":      element.DirectiveElif,
	"else":      element.DirectiveElse,
	"run":       element.DirectiveRun,
	"type":      element.DirectiveType,
	"core_type": element.DirectiveCoreType,
	"assert":    element.DirectiveAssert,
	"assembly":  element.DirectiveAssembly,
	"foreign":   element.DirectiveForeign,
	"intrinsic": element.DirectiveIntrinsic,
}

// evalDirective evaluates one of the ten `#`-prefixed directives
// (§4.4). Each kind populates a different subset of the Directive
// struct's fields. An #if/#elif/#else keeps its condition and body in
// the graph: no phase removes the branch that is not taken.
func (ev *Evaluator) evalDirective(n *Node) (Visit, error) {
	kind, ok := directiveKindByLexeme[n.Lexeme]
	if !ok {
		kind = element.DirectiveRun
	}
	d := ev.Builder.MakeDirective(kind)
	d.SetLocation(n.Location)

	switch kind {
	case element.DirectiveIf, element.DirectiveElif:
		condVisit, err := ev.Evaluate(n.child(0))
		if err != nil {
			return Visit{}, err
		}
		d.Condition = condVisit.Element
		body, err := ev.evalBlockChild(n.child(1))
		if err != nil {
			return Visit{}, err
		}
		d.Body = body
	case element.DirectiveElse:
		body, err := ev.evalBlockChild(n.child(0))
		if err != nil {
			return Visit{}, err
		}
		d.Body = body
	case element.DirectiveRun:
		exprVisit, err := ev.Evaluate(n.child(0))
		if err != nil {
			return Visit{}, err
		}
		d.Expr = exprVisit.Element
	case element.DirectiveType, element.DirectiveCoreType:
		d.NewTypeSym = ev.symbolFromLexeme(n.attr("name"))
		if tn := n.child(0); tn != nil {
			d.TypeRf = ev.Builder.MakeTypeReference(ev.symbolFromLexeme(tn.Lexeme))
		}
	case element.DirectiveAssert:
		condVisit, err := ev.Evaluate(n.child(0))
		if err != nil {
			return Visit{}, err
		}
		d.Condition = condVisit.Element
	case element.DirectiveAssembly, element.DirectiveForeign, element.DirectiveIntrinsic:
		d.Symbol = ev.symbolFromLexeme(n.attr("name"))
	}
	return elementVisit(d), nil
}
