package element

// ProcedureCall invokes a procedure by identifier-reference, passing a
// positional ArgumentList plus any keyword ArgumentPairs (§3). The
// callee starts out unresolved exactly like any other
// IdentifierReference and is drained by the same worklist (§4.5 phase 5).
type ProcedureCall struct {
	base

	Callee    *IdentifierReference
	Args      *ArgumentList
	Keywords  []*ArgumentPair
	IsDirect  bool // true once overload resolution has committed to one candidate
}

func NewProcedureCall(callee *IdentifierReference, args *ArgumentList, keywords ...*ArgumentPair) *ProcedureCall {
	c := &ProcedureCall{base: newBase(TagProcedureCall), Callee: callee, Args: args, Keywords: keywords}
	if callee != nil {
		callee.SetParentElement(c)
	}
	if args != nil {
		args.SetParentElement(c)
	}
	for _, kw := range keywords {
		kw.SetParentElement(c)
	}
	return c
}

func (c *ProcedureCall) OwnedElements() []Element {
	out := make([]Element, 0, 2+len(c.Keywords))
	if c.Callee != nil {
		out = append(out, c.Callee)
	}
	if c.Args != nil {
		out = append(out, c.Args)
	}
	for _, kw := range c.Keywords {
		out = append(out, kw)
	}
	return out
}

// InferType yields the callee procedure type's return type, per the
// original's call-site inference which never re-derives arity/overload
// information — that lives entirely in the pipeline's type-check phase
// (§4.5.8.b "overload resolution ... binds the call's Callee").
func (c *ProcedureCall) InferType(reg *Registry) (Type, bool, error) {
	if c.Callee == nil || c.Callee.Identifier() == nil {
		return nil, false, nil
	}
	calleeType, ok, err := c.Callee.Identifier().InferType(reg)
	if !ok || err != nil {
		return nil, ok, err
	}
	pt, ok := calleeType.(*ProcedureType)
	if !ok || pt.ReturnRef == nil {
		return nil, false, nil
	}
	return pt.ReturnRef.Resolved(), pt.ReturnRef.Resolved() != nil, nil
}
