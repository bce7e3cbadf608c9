package element

// DirectiveKind distinguishes the ten `#`-prefixed compile-time
// directives recognised by the evaluator (§4.4).
type DirectiveKind uint8

const (
	DirectiveIf DirectiveKind = iota
	DirectiveElif
	DirectiveElse
	DirectiveRun
	DirectiveType
	DirectiveCoreType
	DirectiveAssert
	DirectiveAssembly
	DirectiveForeign
	DirectiveIntrinsic
)

func (k DirectiveKind) tag() Tag {
	switch k {
	case DirectiveIf:
		return TagIfDirective
	case DirectiveElif:
		return TagElifDirective
	case DirectiveElse:
		return TagElseDirective
	case DirectiveRun:
		return TagRunDirective
	case DirectiveType:
		return TagTypeDirective
	case DirectiveCoreType:
		return TagCoreTypeDirective
	case DirectiveAssert:
		return TagAssertDirective
	case DirectiveAssembly:
		return TagAssemblyDirective
	case DirectiveForeign:
		return TagForeignDirective
	case DirectiveIntrinsic:
		return TagIntrinsicDirective
	default:
		return TagInvalid
	}
}

// Directive is the single element variant for every directive kind
// (§4.4 groups all ten under one construction path). Fields are used
// selectively depending on Kind: Condition for #if/#elif/#assert,
// Body for #if/#elif/#else, Expr for #run, TypeRf+NewTypeSym for
// #type/#core_type, Symbol for #assembly/#foreign/#intrinsic bindings.
type Directive struct {
	base

	Kind DirectiveKind

	Condition Element
	Body      *Block
	Expr      Element
	TypeRf    *TypeReference
	NewTypeSym *Symbol
	Symbol    *Symbol

	// Executed records whether ExecuteDirectives (the pipeline phase
	// supplementing §4.5 with the original's execute_directives step)
	// has already run this directive, so re-running the pipeline on a
	// cached module is idempotent.
	Executed bool
	// Result holds the #run directive's folded return value once
	// Executed is true.
	Result Element
}

func NewDirective(kind DirectiveKind) *Directive {
	return &Directive{base: newBase(kind.tag()), Kind: kind}
}

func (d *Directive) OwnedElements() []Element {
	out := make([]Element, 0, 5)
	if d.Condition != nil {
		out = append(out, d.Condition)
	}
	if d.Body != nil {
		out = append(out, d.Body)
	}
	if d.Expr != nil {
		out = append(out, d.Expr)
	}
	if d.TypeRf != nil {
		out = append(out, d.TypeRf)
	}
	if d.NewTypeSym != nil {
		out = append(out, d.NewTypeSym)
	}
	if d.Symbol != nil {
		out = append(out, d.Symbol)
	}
	return out
}

func (d *Directive) IsDirective() bool { return true }

func (d *Directive) ApplyFoldResult(original, replacement Element) bool {
	switch original {
	case d.Condition:
		d.Condition = replacement
	case d.Expr:
		d.Expr = replacement
	default:
		return false
	}
	if replacement != nil {
		replacement.SetParentElement(d)
	}
	return true
}

// Fold never folds a directive: #assert either holds or raises a
// diagnostic at execute time, and #run's value is produced by
// Pipeline.ExecuteDirectives, not Fold,
// since it requires invoking the emitter/interpreter boundary that
// intentionally sits outside this package (§1 "the VM/terp ... are out
// of scope").
func (d *Directive) Fold(reg *Registry) (Element, bool, error) {
	return nil, false, nil
}
