// Package builder is the sanctioned construction path for semantic
// elements (spec §4.1): every MakeX operation allocates through the
// registry, wires parent-element links, and — for types — registers
// the result in the scope manager's type table. Outside this package
// only the pipeline's constant folder allocates into a Registry
// directly, registering each folded literal it produces; callers that only need a detached, unregistered element (e.g. a
// TypeReference still awaiting resolution) use the element package's
// NewX constructors directly and register them later through here.
package builder

import (
	"surge/internal/element"
	"surge/internal/scope"
)

// Builder couples a Registry with the Manager it registers types and
// scopes into, satisfying the four builder guarantees in §4.1:
// (1) allocate via the registry, (2) initialise variant-specific
// fields, (3) set parent-element on owned children, (4) for types,
// register in the scope manager's type table.
type Builder struct {
	Registry *element.Registry
	Scope    *scope.Manager
}

func New(reg *element.Registry, sc *scope.Manager) *Builder {
	return &Builder{Registry: reg, Scope: sc}
}

// register allocates e into the registry and returns it, the single
// choke point every MakeX funnels through.
func (b *Builder) register(e element.Element) element.Element {
	b.Registry.Allocate(e)
	return e
}

// attachToCurrentScope stamps e's parent-scope to the builder's current
// block, mirroring what the evaluator does for every statement-level
// element it constructs.
func (b *Builder) attachToCurrentScope(e element.Element) {
	if cur := b.Scope.CurrentBlock(); cur != nil {
		e.SetParentScope(cur)
	}
}

// MakeSymbol constructs and registers a Symbol.
func (b *Builder) MakeSymbol(name string, namespaces []string) *element.Symbol {
	s := element.NewSymbol(name, namespaces)
	b.register(s)
	return s
}

// MakeTypeReference constructs and registers a TypeReference, resolving
// it immediately against the scope manager's type table if the named
// type is already declared (true for every core type, since phase 1
// registers them before any source file is evaluated, and for any
// composite/procedure type declared earlier in the same scope chain).
// A reference to a type that has not been declared yet is left
// unresolved — the language has no separate worklist for forward type
// references, only for unknown-type identifiers and identifier uses.
func (b *Builder) MakeTypeReference(qualified *element.Symbol) *element.TypeReference {
	r := element.NewTypeReference(qualified)
	b.register(r)
	if t, ok := b.Scope.FindType(qualified, b.Scope.CurrentBlock()); ok {
		r.Resolve(t)
	}
	return r
}

// MakeBlock constructs a new block, registers it, and pushes it as the
// current scope — mirroring the evaluator's module/procedure/control
// flow scope entry (§4.4 "creates the root block ... pushes it as the
// current scope").
func (b *Builder) MakeBlock() *element.Block {
	blk := b.Scope.PushNewBlock()
	b.register(blk)
	return blk
}

// PopBlock pops the current scope, the MakeBlock counterpart.
func (b *Builder) PopBlock() *element.Block {
	return b.Scope.PopBlock()
}

// MakeStatement constructs, registers, and attaches a Statement to the
// current block.
func (b *Builder) MakeStatement(expr element.Element) *element.Statement {
	s := element.NewStatement(expr)
	b.register(s)
	b.attachToCurrentScope(s)
	if cur := b.Scope.CurrentBlock(); cur != nil {
		cur.AddStatement(s)
	}
	return s
}

// MakeLabel constructs and registers a Label.
func (b *Builder) MakeLabel(name string) *element.Label {
	l := element.NewLabel(name)
	b.register(l)
	return l
}

// MakeLabelReference constructs and registers an unresolved
// LabelReference.
func (b *Builder) MakeLabelReference(name string) *element.LabelReference {
	r := element.NewLabelReference(name)
	b.register(r)
	return r
}

// MakeAttribute constructs and registers an Attribute.
func (b *Builder) MakeAttribute(name string, value element.Element) *element.Attribute {
	a := element.NewAttribute(name, value)
	b.register(a)
	return a
}

// MakeComment constructs and registers a Comment.
func (b *Builder) MakeComment(text string) *element.Comment {
	c := element.NewComment(text)
	b.register(c)
	return c
}

// MakeIdentifier constructs and registers an Identifier, adding it to
// the current block's overload set so later lookups can find it
// without a separate scope-manager call.
func (b *Builder) MakeIdentifier(sym *element.Symbol, typeRf *element.TypeReference, init element.Element) *element.Identifier {
	id := element.NewIdentifier(sym, typeRf, init)
	b.register(id)
	if cur := b.Scope.CurrentBlock(); cur != nil {
		cur.AddIdentifier(id)
	}
	return id
}

// MakeIdentifierReference constructs, registers, and enqueues an
// IdentifierReference onto the scope manager's unresolved worklist
// (§4.4 "materialised eagerly ... enqueued into the scope manager's
// unresolved worklist").
func (b *Builder) MakeIdentifierReference(sym *element.Symbol) *element.IdentifierReference {
	r := element.NewIdentifierReference(sym)
	b.register(r)
	// The reference's scope must be captured now, while its enclosing
	// block is still on the stack — by the time the pipeline drains the
	// unresolved worklist every block has been popped, so ParentScope is
	// the only way back to the right point in the scope chain.
	b.attachToCurrentScope(r)
	b.Scope.EnqueueUnresolvedIdentifierReference(r)
	return r
}

// MakeUnknownTypeIdentifier constructs an Identifier whose type
// annotation is missing: it wraps init in an UnknownType placeholder,
// registers both, and enqueues the identifier into the unknown-types
// worklist (§4.4).
func (b *Builder) MakeUnknownTypeIdentifier(sym *element.Symbol, init element.Element) *element.Identifier {
	unk := element.NewUnknownType(init)
	b.register(unk)
	ref := element.NewTypeReference(nil)
	b.register(ref)
	ref.Resolve(unk)
	id := element.NewIdentifier(sym, ref, init)
	id.TypeWasInferred = true
	b.register(id)
	if cur := b.Scope.CurrentBlock(); cur != nil {
		cur.AddIdentifier(id)
	}
	b.Scope.EnqueueUnknownTypeIdentifier(id)
	return id
}

// MakeDeclaration constructs and registers a Declaration.
func (b *Builder) MakeDeclaration(ids ...*element.Identifier) *element.Declaration {
	d := element.NewDeclaration(ids...)
	b.register(d)
	return d
}

// MakeField constructs and registers a Field.
func (b *Builder) MakeField(sym *element.Symbol, typeRf *element.TypeReference) *element.Field {
	f := element.NewField(sym, typeRf)
	b.register(f)
	return f
}

// MakeInitializer constructs and registers an Initializer.
func (b *Builder) MakeInitializer(expr element.Element) *element.Initializer {
	i := element.NewInitializer(expr)
	b.register(i)
	return i
}

// MakeArgumentList constructs and registers an ArgumentList.
func (b *Builder) MakeArgumentList(elems ...element.Element) *element.ArgumentList {
	l := element.NewArgumentList(elems...)
	b.register(l)
	return l
}

// MakeArgumentPair constructs and registers an ArgumentPair.
func (b *Builder) MakeArgumentPair(name string, expr element.Element) *element.ArgumentPair {
	p := element.NewArgumentPair(name, expr)
	b.register(p)
	return p
}
