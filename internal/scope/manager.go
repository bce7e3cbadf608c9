// Package scope implements the lexical-scope stack, the top-level type
// table, and the two pending-resolution worklists that the semantic
// pipeline drains (spec §4.2).
package scope

import (
	"fmt"

	"surge/internal/element"
)

// Manager holds the scope-manager state described in the element
// model: a block stack, a module stack, a top-level type table, and
// the two worklists mutated by the evaluator and drained by the
// pipeline.
type Manager struct {
	blocks  []*element.Block
	modules []*element.Module

	// topLevelTypes is the single fully-qualified-name type table
	// (§4.2 "a single top-level type table keyed by fully-qualified
	// name"); duplicate-detection happens here regardless of which
	// block a #type/#core_type directive declared the type in.
	topLevelTypes map[string]element.Type

	unknownTypeIdentifiers   []*element.Identifier
	unresolvedIdentifierRefs []*element.IdentifierReference
}

// NewManager constructs an empty scope manager.
func NewManager() *Manager {
	return &Manager{topLevelTypes: make(map[string]element.Type, 64)}
}

// PushNewBlock pushes a freshly created block as the current scope and
// returns it, wiring its parent-scope back-pointer to the block it
// displaces (if any).
func (m *Manager) PushNewBlock() *element.Block {
	b := element.NewBlock()
	if len(m.blocks) > 0 {
		b.SetParentScope(m.blocks[len(m.blocks)-1])
	}
	m.blocks = append(m.blocks, b)
	return b
}

// PushBlock pushes an already-constructed block (used by the evaluator
// for a module's root block, which the builder constructs directly).
func (m *Manager) PushBlock(b *element.Block) {
	if b == nil {
		return
	}
	if len(m.blocks) > 0 {
		b.SetParentScope(m.blocks[len(m.blocks)-1])
	}
	m.blocks = append(m.blocks, b)
}

// PopBlock pops the current scope, returning it.
func (m *Manager) PopBlock() *element.Block {
	if len(m.blocks) == 0 {
		return nil
	}
	b := m.blocks[len(m.blocks)-1]
	m.blocks = m.blocks[:len(m.blocks)-1]
	return b
}

// CurrentBlock returns the innermost scope, or nil if none is pushed.
func (m *Manager) CurrentBlock() *element.Block {
	if len(m.blocks) == 0 {
		return nil
	}
	return m.blocks[len(m.blocks)-1]
}

// PushModule/PopModule/CurrentModule mirror the block stack for the
// current-module side of the scope manager state.
func (m *Manager) PushModule(mod *element.Module) {
	m.modules = append(m.modules, mod)
}

func (m *Manager) PopModule() *element.Module {
	if len(m.modules) == 0 {
		return nil
	}
	mod := m.modules[len(m.modules)-1]
	m.modules = m.modules[:len(m.modules)-1]
	return mod
}

func (m *Manager) CurrentModule() *element.Module {
	if len(m.modules) == 0 {
		return nil
	}
	return m.modules[len(m.modules)-1]
}

// AddTypeToScope inserts t into both the owning block's local type
// table and the single top-level table, enforcing fully-qualified
// uniqueness (§8 invariant 5). Returns an error naming the duplicate
// symbol on collision; callers translate this into a C-family
// diagnostic.
func (m *Manager) AddTypeToScope(block *element.Block, t element.Type) error {
	if t == nil || t.Symbol() == nil {
		return nil
	}
	qn := t.Symbol().Qualified()
	if existing, ok := m.topLevelTypes[qn]; ok && existing.ID() != t.ID() {
		return fmt.Errorf("scope: duplicate symbol %q", qn)
	}
	m.topLevelTypes[qn] = t
	if block != nil {
		block.AddTypeToScope(t)
	}
	return nil
}

// FindType walks the scope chain upward from fromScope (or the current
// block if nil) looking for a matching symbol. An unqualified symbol is
// searched in every enclosing scope in turn, then in the top-level type
// table; a qualified symbol is looked up by its fully-qualified name in
// the top-level type table only, and no namespace block is searched.
func (m *Manager) FindType(sym *element.Symbol, fromScope *element.Block) (element.Type, bool) {
	if sym == nil {
		return nil, false
	}
	if sym.IsQualified() {
		t, ok := m.topLevelTypes[sym.Qualified()]
		return t, ok
	}
	for b := m.scopeChain(fromScope); b != nil; b = b.ParentScope() {
		if t, ok := b.TypeNamed(sym.Name); ok {
			return t, ok
		}
	}
	t, ok := m.topLevelTypes[sym.Name]
	return t, ok
}

// FindIdentifier walks the same scope chain as FindType but returns
// every matching identifier in the innermost scope where at least one
// match exists, to let callers perform overload resolution (§4.2).
func (m *Manager) FindIdentifier(sym *element.Symbol, fromScope *element.Block) []*element.Identifier {
	if sym == nil {
		return nil
	}
	for b := m.scopeChain(fromScope); b != nil; b = b.ParentScope() {
		if ids := b.IdentifiersNamed(sym.Name); len(ids) > 0 {
			return ids
		}
	}
	return nil
}

func (m *Manager) scopeChain(fromScope *element.Block) *element.Block {
	if fromScope != nil {
		return fromScope
	}
	return m.CurrentBlock()
}

// EnqueueUnknownTypeIdentifier adds id to the unknown-types worklist
// (§4.4 "the identifier is enqueued into the unknown-types worklist").
func (m *Manager) EnqueueUnknownTypeIdentifier(id *element.Identifier) {
	m.unknownTypeIdentifiers = append(m.unknownTypeIdentifiers, id)
}

// EnqueueUnresolvedIdentifierReference adds r to the unresolved-identifier
// worklist.
func (m *Manager) EnqueueUnresolvedIdentifierReference(r *element.IdentifierReference) {
	m.unresolvedIdentifierRefs = append(m.unresolvedIdentifierRefs, r)
}

// IdentifiersWithUnknownTypes returns the live unknown-types worklist.
func (m *Manager) IdentifiersWithUnknownTypes() []*element.Identifier {
	return m.unknownTypeIdentifiers
}

// UnresolvedIdentifierReferences returns the live unresolved-reference
// worklist.
func (m *Manager) UnresolvedIdentifierReferences() []*element.IdentifierReference {
	return m.unresolvedIdentifierRefs
}

// SetUnknownTypeIdentifiers replaces the unknown-types worklist,
// used by the pipeline after each resolution pass to install the
// surviving remainder.
func (m *Manager) SetUnknownTypeIdentifiers(ids []*element.Identifier) {
	m.unknownTypeIdentifiers = ids
}

// SetUnresolvedIdentifierReferences replaces the unresolved-reference
// worklist.
func (m *Manager) SetUnresolvedIdentifierReferences(refs []*element.IdentifierReference) {
	m.unresolvedIdentifierRefs = refs
}
