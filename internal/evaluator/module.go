package evaluator

// evalImport constructs an Import wrapping a ModuleReference left
// unresolved — the session's module cache is what actually drives
// re-entrant compilation (§8 scenario 6); the evaluator only records
// the intent to import.
func (ev *Evaluator) evalImport(n *Node) (Visit, error) {
	ref := ev.Builder.MakeModuleReference(n.Lexeme)
	imp := ev.Builder.MakeImport(ref)
	if mod := ev.Builder.Scope.CurrentModule(); mod != nil {
		mod.AddImport(imp)
	}
	return elementVisit(imp), nil
}

// evalNamespace evaluates a `namespace foo { ... }` node, pushing its
// own scope block for the duration of its children.
func (ev *Evaluator) evalNamespace(n *Node) (Visit, error) {
	sym := ev.symbolFromLexeme(n.Lexeme)
	ns := ev.Builder.MakeNamespaceElement(sym)
	for _, c := range n.Children {
		if err := ev.evalAsStatement(c); err != nil {
			return Visit{}, err
		}
	}
	ev.Builder.PopBlock()
	return elementVisit(ns), nil
}
