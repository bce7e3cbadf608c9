package pipeline

import "surge/internal/element"

type coreNumeric struct {
	name   string
	size   int
	signed bool
	class  element.NumberClass
}

// coreNumericTypes lists every built-in numeric primitive (§4.3, §4.5
// phase 1). void is carried alongside them as a zero-size marker so
// PointerType's void-base compatibility check has a concrete symbol to
// match against.
var coreNumericTypes = []coreNumeric{
	{"u8", 1, false, element.NumberClassInteger},
	{"u16", 2, false, element.NumberClassInteger},
	{"u32", 4, false, element.NumberClassInteger},
	{"u64", 8, false, element.NumberClassInteger},
	{"s8", 1, true, element.NumberClassInteger},
	{"s16", 2, true, element.NumberClassInteger},
	{"s32", 4, true, element.NumberClassInteger},
	{"s64", 8, true, element.NumberClassInteger},
	{"f32", 4, true, element.NumberClassFloating},
	{"f64", 8, true, element.NumberClassFloating},
	{"void", 0, false, element.NumberClassNone},
}

// registerCoreTypes implements §4.5 phase 1: every core type is
// registered under its unqualified name both in the registry's
// core-type table (so literal inference and explicit annotations can
// look it up by name) and in the scope manager's top-level type table
// (so a source file can name it directly, e.g. `x: u32`).
func (p *Pipeline) registerCoreTypes() error {
	for _, n := range coreNumericTypes {
		sym := p.Builder.MakeSymbol(n.name, nil)
		t := p.Builder.MakeNumericType(nil, sym, n.size, n.signed, n.class)
		p.Registry.RegisterCoreType(n.name, t)
	}

	boolSym := p.Builder.MakeSymbol("bool", nil)
	boolType := p.Builder.MakeBoolType(nil, boolSym)
	p.Registry.RegisterCoreType("bool", boolType)

	runeSym := p.Builder.MakeSymbol("rune", nil)
	runeType := p.Builder.MakeRuneType(nil, runeSym)
	p.Registry.RegisterCoreType("rune", runeType)

	// string is modelled as a pointer to u8, grounded on the original's
	// treatment of string literals as interned byte buffers (§4.6
	// "interned string table").
	u8 := p.Registry.CoreTypeNamed("u8")
	u8Ref := p.Builder.MakeTypeReference(nil)
	u8Ref.Resolve(u8)
	stringSym := p.Builder.MakeSymbol("string", nil)
	stringType := p.Builder.MakePointerType(nil, stringSym, u8Ref)
	p.Registry.RegisterCoreType("string", stringType)

	// module, namespace, tuple, and generic are registered as bare
	// structural-kind placeholders (no concrete Mod/Namespace/Members
	// referent) purely so type_of/reflection call sites have a named
	// type to report when the value they inspect is itself one of these
	// kinds; every concrete declaration still builds its own instance
	// through MakeModuleType/MakeNamespaceType/etc.
	moduleSym := p.Builder.MakeSymbol("module", nil)
	moduleType := p.Builder.MakeModuleType(nil, moduleSym, nil)
	p.Registry.RegisterCoreType("module", moduleType)

	namespaceSym := p.Builder.MakeSymbol("namespace", nil)
	namespaceType := p.Builder.MakeNamespaceType(nil, namespaceSym, nil)
	p.Registry.RegisterCoreType("namespace", namespaceType)

	tupleSym := p.Builder.MakeSymbol("tuple", nil)
	tupleType := p.Builder.MakeTupleType(nil, tupleSym, nil)
	p.Registry.RegisterCoreType("tuple", tupleType)

	genericSym := p.Builder.MakeSymbol("generic", nil)
	genericType := p.Builder.MakeGenericType(nil, genericSym, nil)
	p.Registry.RegisterCoreType("generic", genericType)

	return nil
}
