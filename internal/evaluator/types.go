package evaluator

import "surge/internal/element"

// evalCompositeType evaluates a struct/union/enum declaration. Fields
// are the node's children, each shaped like a declaration identifier
// (name plus a required type-reference child).
func (ev *Evaluator) evalCompositeType(n *Node) (Visit, error) {
	kind := compositeKindFromAttr(n.attr("kind"))
	sym := ev.symbolFromLexeme(n.Lexeme)
	ct := ev.Builder.MakeCompositeType(ev.Builder.Scope.CurrentBlock(), sym, kind)
	for _, c := range n.Children {
		fieldSym := ev.symbolFromLexeme(c.Lexeme)
		var typeRf *element.TypeReference
		if tn := c.child(0); tn != nil {
			typeRf = ev.Builder.MakeTypeReference(ev.symbolFromLexeme(tn.Lexeme))
		}
		field := ev.Builder.MakeField(fieldSym, typeRf)
		ct.AddField(field)
	}
	return Visit{Kind: VisitType, Type: ct, Element: ct}, nil
}

func compositeKindFromAttr(a string) element.CompositeKind {
	switch a {
	case "union":
		return element.CompositeUnion
	case "enum":
		return element.CompositeEnum
	default:
		return element.CompositeStruct
	}
}

// evalProcedureType evaluates a procedure declaration: child(0) is the
// parameter-list node (itself NodeDeclaration-shaped, one child per
// parameter), child(1) is the optional return-type node, child(2) is
// the optional body block.
func (ev *Evaluator) evalProcedureType(n *Node) (Visit, error) {
	sym := ev.symbolFromLexeme(n.Lexeme)

	// params stays the current scope while the body is evaluated, so
	// body-scope statements resolve parameter names through the normal
	// enclosing-scope walk (§4.2) rather than needing special-casing.
	params := ev.Builder.MakeBlock()
	if pn := n.child(0); pn != nil {
		for _, c := range pn.Children {
			id, err := ev.evalOneIdentifierDecl(c)
			if err != nil {
				return Visit{}, err
			}
			if id != nil {
				id.IsParameter = true
				params.AddParameter(id)
			}
		}
	}

	var returnRef *element.TypeReference
	if rn := n.child(1); rn != nil && rn.Lexeme != "" {
		returnRef = ev.Builder.MakeTypeReference(ev.symbolFromLexeme(rn.Lexeme))
	}

	var body *element.Block
	if bn := n.child(2); bn != nil {
		var err error
		body, err = ev.evalBlockChild(bn)
		if err != nil {
			return Visit{}, err
		}
	}

	ev.Builder.PopBlock() // pops params

	pt := ev.Builder.MakeProcedureType(ev.Builder.Scope.CurrentBlock(), sym, params, returnRef, body)
	pt.Variadic = n.attr("variadic") == "true"
	return Visit{Kind: VisitType, Type: pt, Element: pt}, nil
}
