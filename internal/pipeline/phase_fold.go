package pipeline

import "surge/internal/element"

// foldOrder lists the tag groups in the fixed order §4.5 phase 7 folds
// them: intrinsics first, then identifier-references, then unary
// operators, then binary operators, then label-references. A single
// pass per group is sufficient for the language's constant expressions
// (no grammar construct requires re-folding a tag group after a later
// group has run).
var foldOrder = [][]element.Tag{
	{
		element.TagSizeOfIntrinsic, element.TagAlignOfIntrinsic, element.TagLengthOfIntrinsic,
		element.TagAddressOfIntrinsic, element.TagTypeOfIntrinsic, element.TagAllocIntrinsic,
		element.TagFreeIntrinsic, element.TagRangeIntrinsic,
	},
	{element.TagIdentifierReference},
	{element.TagUnaryOperator},
	{element.TagBinaryOperator},
	{element.TagLabelReference},
}

// intrinsicFoldGroup is the index into foldOrder holding the intrinsic
// tags, the only group whose folds stamp an "intrinsic_substitution"
// attribute (§4.5.7) on the replacement element.
const intrinsicFoldGroup = 0

// foldConstants implements §4.5 phase 7.
func (p *Pipeline) foldConstants() error {
	for group, tags := range foldOrder {
		for _, tag := range tags {
			if err := p.foldTag(tag, group == intrinsicFoldGroup); err != nil {
				return err
			}
		}
	}
	p.Registry.FlushRemovals()
	return nil
}

func (p *Pipeline) foldTag(tag element.Tag, isIntrinsic bool) error {
	for _, id := range p.Registry.FindByTag(tag) {
		e := p.Registry.Get(id)
		if e == nil {
			continue
		}
		folded, ok, err := e.Fold(p.Registry)
		if err != nil {
			return err
		}
		if !ok || folded == nil {
			continue
		}
		p.Registry.Register(folded)
		parent := e.ParentElement()
		if parent == nil {
			continue
		}
		folded.SetParentElement(parent)
		parent.ApplyFoldResult(e, folded)
		if isIntrinsic {
			if in, ok := e.(*element.Intrinsic); ok {
				name := p.Builder.MakeStringLiteral(in.Kind.Name())
				folded.AddAttribute(p.Builder.MakeAttribute("intrinsic_substitution", name))
			}
		}
		p.Registry.Remove(e.ID())
	}
	return nil
}
