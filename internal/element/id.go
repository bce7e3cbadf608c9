// Package element implements the semantic element graph: the universal
// node type, its ~70 variants (types, expressions, declarations, blocks,
// directives, intrinsics), and the registry that owns every node by a
// stable, process-wide id.
package element

import (
	"fmt"
	"sync/atomic"
)

// ID is a stable, process-wide identifier for an element. IDs are
// allocated from a single monotonically increasing pool and are never
// reused within a session (§3 invariant i).
type ID uint32

// NoID marks the absence of an element.
const NoID ID = 0

// pool is the process-wide monotonically increasing id source. A single
// pool (rather than one per registry) matches the original "process-wide
// monotonically increasing pool" wording in §3 and lets ids stay unique
// even if a driver ever runs more than one Registry in the same process.
var pool uint32

// nextID allocates and returns a fresh, never-before-issued id.
func nextID() ID {
	return ID(atomic.AddUint32(&pool, 1))
}

func (id ID) String() string {
	return fmt.Sprintf("#%d", uint32(id))
}
