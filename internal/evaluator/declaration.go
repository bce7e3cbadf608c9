package evaluator

import "surge/internal/element"

// evalDeclaration evaluates a `name[: Type] := expr` (or `name, name2
// := ...`) declaration node. Each child is one identifier node carrying
// its own optional type and initializer children, following the
// same shape the evaluator's make_identifier path takes in the
// original: a missing type annotation produces an unknown-type
// placeholder enqueued on the worklist (§4.4).
func (ev *Evaluator) evalDeclaration(n *Node) (Visit, error) {
	var ids []*element.Identifier
	for _, c := range n.Children {
		id, err := ev.evalOneIdentifierDecl(c)
		if err != nil {
			return Visit{}, err
		}
		if id != nil {
			ids = append(ids, id)
		}
	}
	decl := ev.Builder.MakeDeclaration(ids...)
	return elementVisit(decl), nil
}

// evalOneIdentifierDecl evaluates a single NodeIdentifier child of a
// declaration: child(0) is the optional type-reference node, child(1)
// is the optional initializer node. A node with neither is a bare
// parameter declaration (procedure signatures reuse this same shape).
func (ev *Evaluator) evalOneIdentifierDecl(n *Node) (*element.Identifier, error) {
	sym := ev.symbolFromLexeme(n.Lexeme)

	var typeRf *element.TypeReference
	if tn := n.child(0); tn != nil && tn.Lexeme != "" {
		typeRf = ev.Builder.MakeTypeReference(ev.symbolFromLexeme(tn.Lexeme))
	}

	var init element.Element
	if in := n.child(1); in != nil {
		v, err := ev.Evaluate(in)
		if err != nil {
			return nil, err
		}
		init = v.Element
	}

	isConst := n.attr("mutability") == "const"

	var id *element.Identifier
	if typeRf != nil {
		id = ev.Builder.MakeIdentifier(sym, typeRf, init)
	} else {
		id = ev.Builder.MakeUnknownTypeIdentifier(sym, init)
	}
	id.IsConstant_ = isConst
	id.IsMutable = !isConst
	id.SetLocation(n.Location)
	return id, nil
}

// evalIdentifierReference evaluates a use-site reference and enqueues
// it on the unresolved worklist (§4.4).
func (ev *Evaluator) evalIdentifierReference(n *Node) *element.IdentifierReference {
	sym := ev.symbolFromLexeme(n.Lexeme)
	r := ev.Builder.MakeIdentifierReference(sym)
	r.SetLocation(n.Location)
	return r
}
