package pipeline

// builtinArity records the fixed argument count §4.5 phase 8.a checks
// every intrinsic call site against.
var builtinArity = map[string]int{
	"size_of":    1,
	"align_of":   1,
	"length_of":  1,
	"address_of": 1,
	"type_of":    1,
	"alloc":      1,
	"free":       1,
	"range":      2,
}

// registerBuiltinProcedures implements §4.5 phase 2. The eight reserved
// names never go through identifier/overload resolution — the
// evaluator recognises them by lexeme directly and materialises an
// Intrinsic element (internal/evaluator's intrinsicKindByLexeme) rather
// than a ProcedureCall. Phase 2's job is narrower than a normal
// declaration: it records each name's return type under the
// registry's core-type table, keyed by name, so size_of/align_of's
// fixed "returns u64" contract (and similar) is discoverable without
// re-deriving it at every call site.
func (p *Pipeline) registerBuiltinProcedures() error {
	u64 := p.Registry.CoreTypeNamed("u64")
	for _, name := range []string{"size_of", "align_of", "length_of", "address_of"} {
		p.Registry.RegisterCoreType("builtin:"+name, u64)
	}
	// type_of, alloc, free, range have no fixed scalar return type
	// (type_of yields a runtime type descriptor, alloc's pointer base
	// depends on its argument, free and range are evaluated structurally
	// by the emitter) so they are left out of the builtin-return table;
	// their InferType/Fold implementations on Intrinsic already encode
	// the per-kind logic directly.
	return nil
}
