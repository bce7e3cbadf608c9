package pipeline

import (
	"surge/internal/diag"
	"surge/internal/element"
)

// directiveExecutionTags lists the directive kinds whose effect is only
// observable after assembly succeeds: #assert needs a condition that
// may depend on constants only resolved by folding, and #run's result
// is the thing a later compile_callback/VM boundary would consume.
// #if/#elif/#else/#type/#core_type/#assembly/#foreign/#intrinsic have
// no execute step, and an #if's untaken branch is not removed here.
var directiveExecutionTags = []element.Tag{
	element.TagAssertDirective,
	element.TagRunDirective,
}

// ExecuteDirectives runs the post-assembly directive-execution step
// supplementing §4.5 (SPEC_FULL §C.6, grounded on the original's
// execute_directives session phase, which runs only after the
// assembler has produced byte-code so that #run/#assert can observe
// fully-resolved constants). It is idempotent: directives already
// marked Executed are skipped, so re-running a cached module's
// pipeline does not re-raise diagnostics.
func (p *Pipeline) ExecuteDirectives() error {
	for _, tag := range directiveExecutionTags {
		for _, el := range p.Registry.FindElementsByTag(tag) {
			d, ok := el.(*element.Directive)
			if !ok || d.Executed {
				continue
			}
			if err := p.executeDirective(d); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Pipeline) executeDirective(d *element.Directive) error {
	defer func() { d.Executed = true }()

	switch d.Kind {
	case element.DirectiveAssert:
		return p.executeAssert(d)
	case element.DirectiveRun:
		return p.executeRun(d)
	default:
		return nil
	}
}

func (p *Pipeline) executeAssert(d *element.Directive) error {
	if d.Condition == nil {
		return nil
	}
	cond := d.Condition
	if folded, ok, err := cond.Fold(p.Registry); err != nil {
		return err
	} else if ok && folded != nil {
		cond = folded
	}
	v, ok := cond.AsBool()
	if !ok {
		diagnostic := diag.NewError(diag.CDirectiveFailed, d.Location(),
			"#assert condition is not a compile-time constant boolean")
		p.Bag.Add(&diagnostic)
		return nil
	}
	if !v {
		diagnostic := diag.NewError(diag.CDirectiveFailed, d.Location(), "#assert failed")
		p.Bag.Add(&diagnostic)
	}
	return nil
}

// executeRun folds #run's expression as far as constant folding can
// take it, recording whatever value results. A #run body that requires
// runtime execution rather than folding leaves Result nil: the VM/terp
// that would carry it the rest of the way is out of scope.
func (p *Pipeline) executeRun(d *element.Directive) error {
	if d.Expr == nil {
		return nil
	}
	folded, ok, err := d.Expr.Fold(p.Registry)
	if err != nil {
		return err
	}
	if ok && folded != nil {
		d.Result = folded
		return nil
	}
	if d.Expr.IsConstant() {
		d.Result = d.Expr
	}
	return nil
}
