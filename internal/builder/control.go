package builder

import "surge/internal/element"

// MakeIfElement constructs and registers an IfElement.
func (b *Builder) MakeIfElement(cond element.Element, then *element.Block, els element.Element) *element.IfElement {
	i := element.NewIfElement(cond, then, els)
	b.register(i)
	return i
}

// MakeWhileElement constructs and registers a WhileElement.
func (b *Builder) MakeWhileElement(cond element.Element, body *element.Block) *element.WhileElement {
	w := element.NewWhileElement(cond, body)
	b.register(w)
	return w
}

// MakeForElement constructs and registers a ForElement.
func (b *Builder) MakeForElement(init, cond, step element.Element, body *element.Block) *element.ForElement {
	f := element.NewForElement(init, cond, step, body)
	b.register(f)
	return f
}

// MakeCaseElement constructs and registers a CaseElement.
func (b *Builder) MakeCaseElement(values []element.Element, body *element.Block, isDefault bool) *element.CaseElement {
	c := element.NewCaseElement(values, body, isDefault)
	b.register(c)
	return c
}

// MakeSwitchElement constructs and registers a SwitchElement.
func (b *Builder) MakeSwitchElement(scrutinee element.Element, cases []*element.CaseElement) *element.SwitchElement {
	s := element.NewSwitchElement(scrutinee, cases)
	b.register(s)
	return s
}

// MakeBreakElement constructs and registers a BreakElement.
func (b *Builder) MakeBreakElement(target *element.Label) *element.BreakElement {
	e := element.NewBreakElement(target)
	b.register(e)
	return e
}

// MakeContinueElement constructs and registers a ContinueElement.
func (b *Builder) MakeContinueElement(target *element.Label) *element.ContinueElement {
	e := element.NewContinueElement(target)
	b.register(e)
	return e
}

// MakeFallthroughElement constructs and registers a
// FallthroughElement.
func (b *Builder) MakeFallthroughElement() *element.FallthroughElement {
	e := element.NewFallthroughElement()
	b.register(e)
	return e
}

// MakeReturnElement constructs and registers a ReturnElement.
func (b *Builder) MakeReturnElement(value element.Element) *element.ReturnElement {
	e := element.NewReturnElement(value)
	b.register(e)
	return e
}

// MakeDeferElement constructs and registers a DeferElement.
func (b *Builder) MakeDeferElement(stmt element.Element) *element.DeferElement {
	e := element.NewDeferElement(stmt)
	b.register(e)
	return e
}

// MakeWithElement constructs and registers a WithElement.
func (b *Builder) MakeWithElement(binding *element.Identifier, body *element.Block) *element.WithElement {
	e := element.NewWithElement(binding, body)
	b.register(e)
	return e
}
