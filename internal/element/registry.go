package element

import "fmt"

// Registry is the process-wide owner of every element (§3 "Registry").
// All non-owning references (identifier -> declaration, type-reference ->
// type, parent-scope back-edges) are resolved by id through it.
type Registry struct {
	byID     map[ID]Element
	byTag    map[Tag][]ID // insertion-ordered id list per tag, for find_by_tag
	removed  map[ID]bool
	pendingRemoval []ID

	// coreTypes holds the built-in numeric/bool/rune/string primitives
	// registered once by the pipeline's core-types phase (§4.5 phase 1),
	// keyed by their unqualified name (e.g. "u8", "bool", "string").
	coreTypes map[string]Type
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:      make(map[ID]Element, 1024),
		byTag:     make(map[Tag][]ID, tagCount),
		removed:   make(map[ID]bool),
		coreTypes: make(map[string]Type, 16),
	}
}

// RegisterCoreType records one of the built-in primitive types under its
// unqualified name, for lookup by literal inference and the evaluator's
// explicit-annotation resolution.
func (r *Registry) RegisterCoreType(name string, t Type) {
	r.coreTypes[name] = t
}

// CoreTypeNamed looks up a previously registered core type by name, or
// returns nil if the core-types phase has not populated it yet.
func (r *Registry) CoreTypeNamed(name string) Type {
	return r.coreTypes[name]
}

// Allocate makes e discoverable by id and by tag (§4.1: "Allocation must
// assign a fresh id and make the element discoverable by tag before
// returning"). e must already carry the id assigned by its constructor;
// Allocate only performs bookkeeping, wiring of scope/parent happens in
// the builder.
func (r *Registry) Allocate(e Element) {
	if e == nil {
		panic("element: Allocate called with nil element")
	}
	r.byID[e.ID()] = e
	r.byTag[e.Tag()] = append(r.byTag[e.Tag()], e.ID())
}

// Register is an alias for Allocate used by fold and the evaluator when
// splicing newly synthesised elements into the graph (kept as a distinct
// name so call sites document intent: "this element already exists
// elsewhere in source order" vs "this is the product of a fold/builder
// step").
func (r *Registry) Register(e Element) { r.Allocate(e) }

// Get returns the element with the given id, or nil if it has never
// been allocated or has since been removed.
func (r *Registry) Get(id ID) Element {
	if r.removed[id] {
		return nil
	}
	return r.byID[id]
}

// Remove marks id for removal. Per §4.1 "removal is deferred to batch at
// phase boundaries", the byID/byTag bookkeeping (cascade to owned
// children, tag-index compaction) stays deferred until FlushRemovals
// runs, but id stops resolving via Get or FindByTag immediately so
// in-flight worklist scans don't revisit it.
func (r *Registry) Remove(id ID) {
	if r.removed[id] {
		return
	}
	r.removed[id] = true
	r.pendingRemoval = append(r.pendingRemoval, id)
}

// FlushRemovals performs the deferred batch removal, cascading to owned
// children that are not marked non-owning (§5 "Removal cascades").
func (r *Registry) FlushRemovals() {
	pending := r.pendingRemoval
	r.pendingRemoval = nil
	for _, id := range pending {
		e := r.byID[id]
		if e == nil {
			continue
		}
		r.cascadeRemove(e)
		delete(r.byID, id)
	}
	r.compactTagIndex()
}

func (r *Registry) cascadeRemove(e Element) {
	for _, child := range e.OwnedElements() {
		if child == nil || child.NonOwning() {
			continue
		}
		if r.removed[child.ID()] {
			continue
		}
		r.removed[child.ID()] = true
		r.cascadeRemove(child)
		delete(r.byID, child.ID())
	}
}

func (r *Registry) compactTagIndex() {
	for tag, ids := range r.byTag {
		out := ids[:0]
		for _, id := range ids {
			if !r.removed[id] {
				out = append(out, id)
			}
		}
		r.byTag[tag] = out
	}
}

// FindByTag returns every live element id with the given tag, in
// allocation order, excluding ids already scheduled for removal.
func (r *Registry) FindByTag(tag Tag) []ID {
	ids := r.byTag[tag]
	out := make([]ID, 0, len(ids))
	for _, id := range ids {
		if !r.removed[id] {
			out = append(out, id)
		}
	}
	return out
}

// FindElementsByTag is a convenience wrapper resolving FindByTag ids to
// their elements.
func (r *Registry) FindElementsByTag(tag Tag) []Element {
	ids := r.FindByTag(tag)
	out := make([]Element, 0, len(ids))
	for _, id := range ids {
		if e := r.Get(id); e != nil {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of live (non-removed) elements.
func (r *Registry) Len() int {
	n := 0
	for id := range r.byID {
		if !r.removed[id] {
			n++
		}
	}
	return n
}

// CheckInvariant1 validates §8 invariant 1 for every live element:
// registry.get(E.id) == E, and E is reachable from its parent's owned
// list unless non-owning. Returns the first violation found, if any.
func (r *Registry) CheckInvariant1() error {
	for id, e := range r.byID {
		if r.removed[id] {
			continue
		}
		if r.Get(id) != e {
			return fmt.Errorf("element: registry.Get(%s) does not round-trip", id)
		}
		parent := e.ParentElement()
		if parent == nil || e.NonOwning() {
			continue
		}
		found := false
		for _, child := range parent.OwnedElements() {
			if child != nil && child.ID() == id {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("element: %s (%s) not present in parent %s's owned elements", id, e.Tag(), parent.ID())
		}
	}
	return nil
}
