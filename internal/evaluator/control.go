package evaluator

import "surge/internal/element"

// evalIf evaluates `if (cond) then [else ...]`; an `elif` chain is
// represented by the parser nesting further NodeIf nodes as the
// else-child, which Evaluate's recursion flattens naturally (§4.4).
func (ev *Evaluator) evalIf(n *Node) (Visit, error) {
	condVisit, err := ev.Evaluate(n.child(0))
	if err != nil {
		return Visit{}, err
	}
	then, err := ev.evalBlockChild(n.child(1))
	if err != nil {
		return Visit{}, err
	}
	var els element.Element
	if en := n.child(2); en != nil {
		if en.Kind == NodeIf {
			v, err := ev.evalIf(en)
			if err != nil {
				return Visit{}, err
			}
			els = v.Element
		} else {
			blk, err := ev.evalBlockChild(en)
			if err != nil {
				return Visit{}, err
			}
			els = blk
		}
	}
	i := ev.Builder.MakeIfElement(condVisit.Element, then, els)
	i.SetLocation(n.Location)
	return elementVisit(i), nil
}

func (ev *Evaluator) evalWhile(n *Node) (Visit, error) {
	condVisit, err := ev.Evaluate(n.child(0))
	if err != nil {
		return Visit{}, err
	}
	body, err := ev.evalBlockChild(n.child(1))
	if err != nil {
		return Visit{}, err
	}
	w := ev.Builder.MakeWhileElement(condVisit.Element, body)
	w.SetLocation(n.Location)
	return elementVisit(w), nil
}

func (ev *Evaluator) evalFor(n *Node) (Visit, error) {
	initVisit, err := ev.Evaluate(n.child(0))
	if err != nil {
		return Visit{}, err
	}
	condVisit, err := ev.Evaluate(n.child(1))
	if err != nil {
		return Visit{}, err
	}
	stepVisit, err := ev.Evaluate(n.child(2))
	if err != nil {
		return Visit{}, err
	}
	body, err := ev.evalBlockChild(n.child(3))
	if err != nil {
		return Visit{}, err
	}
	f := ev.Builder.MakeForElement(initVisit.Element, condVisit.Element, stepVisit.Element, body)
	f.SetLocation(n.Location)
	return elementVisit(f), nil
}

func (ev *Evaluator) evalSwitch(n *Node) (Visit, error) {
	scrutineeVisit, err := ev.Evaluate(n.child(0))
	if err != nil {
		return Visit{}, err
	}
	var cases []*element.CaseElement
	for _, cn := range n.Children[1:] {
		var values []element.Element
		isDefault := cn.attr("default") == "true"
		for _, vn := range cn.Children[:len(cn.Children)-1] {
			v, err := ev.Evaluate(vn)
			if err != nil {
				return Visit{}, err
			}
			values = append(values, v.Element)
		}
		body, err := ev.evalBlockChild(cn.child(len(cn.Children) - 1))
		if err != nil {
			return Visit{}, err
		}
		cases = append(cases, ev.Builder.MakeCaseElement(values, body, isDefault))
	}
	s := ev.Builder.MakeSwitchElement(scrutineeVisit.Element, cases)
	s.SetLocation(n.Location)
	return elementVisit(s), nil
}

func (ev *Evaluator) evalWith(n *Node) (Visit, error) {
	bindingNode := n.child(0)
	binding, err := ev.evalOneIdentifierDecl(bindingNode)
	if err != nil {
		return Visit{}, err
	}
	body, err := ev.evalBlockChild(n.child(1))
	if err != nil {
		return Visit{}, err
	}
	w := ev.Builder.MakeWithElement(binding, body)
	w.SetLocation(n.Location)
	return elementVisit(w), nil
}
