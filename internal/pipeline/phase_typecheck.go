package pipeline

import (
	"strconv"

	"surge/internal/diag"
	"surge/internal/element"
)

// typeCheckAll implements §4.5 phase 8's five sub-phases in order:
// (a) intrinsic call-site arity, (b) procedure-call overload
// resolution, (c) the final hard-error unknown-types pass, (d)
// declaration type-checking, (e) binary-assignment type-checking.
func (p *Pipeline) typeCheckAll() error {
	if err := p.checkIntrinsicArity(); err != nil {
		return err
	}
	if err := p.resolveOverloads(); err != nil {
		return err
	}
	if err := p.resolveUnknownTypes(true); err != nil {
		return err
	}
	if err := p.checkDeclarations(); err != nil {
		return err
	}
	if err := p.checkAssignments(); err != nil {
		return err
	}
	return nil
}

var intrinsicTags = []element.Tag{
	element.TagSizeOfIntrinsic, element.TagAlignOfIntrinsic, element.TagLengthOfIntrinsic,
	element.TagAddressOfIntrinsic, element.TagTypeOfIntrinsic, element.TagAllocIntrinsic,
	element.TagFreeIntrinsic, element.TagRangeIntrinsic,
}

// checkIntrinsicArity implements §4.5.8.a.
func (p *Pipeline) checkIntrinsicArity() error {
	for _, tag := range intrinsicTags {
		for _, id := range p.Registry.FindByTag(tag) {
			e := p.Registry.Get(id)
			in, ok := e.(*element.Intrinsic)
			if !ok {
				continue
			}
			want, ok := builtinArity[in.Kind.Name()]
			if !ok {
				continue
			}
			if len(in.Args) != want {
				d := diag.NewError(diag.CIntrinsicArityMismatch, in.Location(),
					in.Kind.Name()+" expects "+strconv.Itoa(want)+" argument(s)")
				p.Bag.Add(&d)
			}
		}
	}
	return nil
}

// resolveOverloads implements §4.5.8.b: a procedure call whose callee
// carries spliced Overloads (§4.5 phase 5) picks the candidate whose
// parameter types accept the call's argument types. Exactly one match
// commits (Callee re-resolved, IsDirect set); zero matches or more than
// one is a diagnostic.
func (p *Pipeline) resolveOverloads() error {
	for _, id := range p.Registry.FindByTag(element.TagProcedureCall) {
		e := p.Registry.Get(id)
		call, ok := e.(*element.ProcedureCall)
		if !ok || call.Callee == nil {
			continue
		}
		if len(call.Callee.Overloads) == 0 {
			call.IsDirect = call.Callee.Identifier() != nil
			continue
		}
		candidates := append([]*element.Identifier{call.Callee.Identifier()}, call.Callee.Overloads...)
		matches := make([]*element.Identifier, 0, len(candidates))
		for _, cand := range candidates {
			if cand == nil {
				continue
			}
			if callMatchesCandidate(p.Registry, call, cand) {
				matches = append(matches, cand)
			}
		}
		switch len(matches) {
		case 0:
			d := diag.NewError(diag.COverloadNoMatch, call.Location(),
				"no overload of \""+symName(call.Callee.Sym)+"\" matches this call")
			p.Bag.Add(&d)
		case 1:
			call.Callee.Resolve(matches[0])
			call.Callee.Overloads = nil
			call.IsDirect = true
		default:
			d := diag.NewError(diag.COverloadAmbiguous, call.Location(),
				"call to \""+symName(call.Callee.Sym)+"\" is ambiguous between "+strconv.Itoa(len(matches))+" overloads")
			p.Bag.Add(&d)
		}
	}
	return nil
}

func callMatchesCandidate(reg *element.Registry, call *element.ProcedureCall, cand *element.Identifier) bool {
	pt, ok := identifierProcedureType(cand)
	if !ok {
		return false
	}
	params := pt.Params.Parameters
	args := []element.Element(nil)
	if call.Args != nil {
		args = call.Args.Elements
	}
	if !pt.Variadic && len(params) != len(args) {
		return false
	}
	if pt.Variadic && len(args) < len(params) {
		return false
	}
	for i, param := range params {
		if i >= len(args) {
			break
		}
		paramType, ok, err := param.InferType(reg)
		if !ok || err != nil || paramType == nil {
			continue
		}
		argType, ok, err := args[i].InferType(reg)
		if !ok || err != nil || argType == nil {
			continue
		}
		if !paramType.TypeCheck(argType) {
			return false
		}
	}
	return true
}

func identifierProcedureType(id *element.Identifier) (*element.ProcedureType, bool) {
	if id == nil || id.TypeRf == nil || id.TypeRf.Resolved() == nil {
		return nil, false
	}
	pt, ok := id.TypeRf.Resolved().(*element.ProcedureType)
	return pt, ok
}

// checkDeclarations implements §4.5.8.d: every identifier with both an
// explicit (non-inferred) type annotation and an initializer must
// type-check the initializer's inferred type against the annotation.
func (p *Pipeline) checkDeclarations() error {
	for _, id := range p.Registry.FindByTag(element.TagIdentifier) {
		e := p.Registry.Get(id)
		ident, ok := e.(*element.Identifier)
		if !ok || ident.TypeWasInferred || ident.Initializer == nil {
			continue
		}
		if ident.TypeRf == nil || ident.TypeRf.Resolved() == nil {
			continue
		}
		declared := ident.TypeRf.Resolved()
		initType, ok, err := ident.Initializer.InferType(p.Registry)
		if err != nil {
			return err
		}
		if !ok || initType == nil {
			continue
		}
		if !declared.TypeCheck(initType) {
			d := diag.NewError(diag.CTypeMismatch, ident.Location(),
				"cannot assign "+initType.LabelName()+" to "+declared.LabelName())
			p.Bag.Add(&d)
		}
	}
	return nil
}

// checkAssignments implements §4.5.8.e.
func (p *Pipeline) checkAssignments() error {
	for _, id := range p.Registry.FindByTag(element.TagBinaryOperator) {
		e := p.Registry.Get(id)
		bin, ok := e.(*element.BinaryOperator)
		if !ok || !bin.Op.IsAssignment() {
			continue
		}
		if bin.Left == nil || bin.Right == nil {
			continue
		}
		leftType, ok, err := bin.Left.InferType(p.Registry)
		if err != nil {
			return err
		}
		if !ok || leftType == nil {
			continue
		}
		rightType, ok, err := bin.Right.InferType(p.Registry)
		if err != nil {
			return err
		}
		if !ok || rightType == nil {
			continue
		}
		if !leftType.TypeCheck(rightType) {
			d := diag.NewError(diag.CTypeMismatch, bin.Location(),
				"cannot assign "+rightType.LabelName()+" to "+leftType.LabelName())
			p.Bag.Add(&d)
		}
	}
	return nil
}
