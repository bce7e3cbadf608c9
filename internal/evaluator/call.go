package evaluator

import "surge/internal/element"

// evalProcedureCall evaluates a call node: child(0) is the callee
// identifier-reference node, the remainder are positional arguments
// (keyword arguments are distinguished by carrying a non-empty
// "keyword" attribute naming the parameter).
func (ev *Evaluator) evalProcedureCall(n *Node) (Visit, error) {
	calleeNode := n.child(0)
	calleeVisit, err := ev.Evaluate(calleeNode)
	if err != nil {
		return Visit{}, err
	}
	callee, _ := calleeVisit.Element.(*element.IdentifierReference)

	var positional []element.Element
	var keywords []*element.ArgumentPair
	for _, c := range n.Children[1:] {
		v, err := ev.Evaluate(c)
		if err != nil {
			return Visit{}, err
		}
		if kw := c.attr("keyword"); kw != "" {
			keywords = append(keywords, ev.Builder.MakeArgumentPair(kw, v.Element))
			continue
		}
		positional = append(positional, v.Element)
	}
	args := ev.Builder.MakeArgumentList(positional...)
	call := ev.Builder.MakeProcedureCall(callee, args, keywords...)
	call.SetLocation(n.Location)
	return elementVisit(call), nil
}
