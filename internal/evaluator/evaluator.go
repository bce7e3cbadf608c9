package evaluator

import (
	"fmt"
	"strconv"
	"strings"

	"surge/internal/builder"
	"surge/internal/diag"
	"surge/internal/element"
	"surge/internal/source"
)

// VisitKind tags the shape of a Visit result (§9 "any-typed visitor
// results ... model as a tagged result (type/module/identifier/
// identifier-list/none) rather than dynamic casting").
type VisitKind uint8

const (
	VisitNone VisitKind = iota
	VisitElement
	VisitType
	VisitModule
	VisitIdentifierList
)

// Visit is the tagged result of evaluating one Node.
type Visit struct {
	Kind        VisitKind
	Element     element.Element
	Type        element.Type
	Module      *element.Module
	Identifiers []*element.Identifier
}

func elementVisit(e element.Element) Visit { return Visit{Kind: VisitElement, Element: e} }

// Evaluator walks AST nodes and builds the corresponding element graph
// through a Builder, accumulating diagnostics for malformed nodes.
type Evaluator struct {
	Builder *builder.Builder
	Bag     *diag.Bag
}

func New(b *builder.Builder, bag *diag.Bag) *Evaluator {
	return &Evaluator{Builder: b, Bag: bag}
}

func (ev *Evaluator) errorf(loc source.Span, code diag.Code, format string, args ...any) {
	d := diag.NewError(code, loc, fmt.Sprintf(format, args...))
	ev.Bag.Add(&d)
}

// symbolFromLexeme splits a `::`-qualified lexeme into a Symbol,
// mirroring how the original's symbol_element parses a qualified name
// token from the parser.
func (ev *Evaluator) symbolFromLexeme(lexeme string) *element.Symbol {
	parts := strings.Split(lexeme, "::")
	name := parts[len(parts)-1]
	namespaces := parts[:len(parts)-1]
	return ev.Builder.MakeSymbol(name, namespaces)
}

// EvaluateModule implements §4.4's module evaluation: (i) allocate the
// module, (ii) create its root block, (iii) push it as current scope,
// (iv) evaluate every top-level child, (v) pop the scope.
func (ev *Evaluator) EvaluateModule(path string, file source.FileID, root *Node) (*element.Module, error) {
	mod := ev.Builder.MakeModule(path, file)
	mod.SetLocation(root.Location)
	for _, child := range root.Children {
		if _, err := ev.Evaluate(child); err != nil {
			return mod, err
		}
	}
	ev.Builder.PopBlock()
	ev.Builder.PopModule()
	return mod, nil
}

// Evaluate dispatches on n.Kind, constructing the corresponding
// element(s) via the Builder and returning a tagged Visit result.
func (ev *Evaluator) Evaluate(n *Node) (Visit, error) {
	if n == nil {
		return Visit{}, nil
	}
	switch n.Kind {
	case NodeImport:
		return ev.evalImport(n)
	case NodeNamespace:
		return ev.evalNamespace(n)
	case NodeDeclaration:
		return ev.evalDeclaration(n)
	case NodeIdentifierReference:
		return elementVisit(ev.evalIdentifierReference(n)), nil
	case NodeIntegerLiteral:
		return elementVisit(ev.evalIntegerLiteral(n)), nil
	case NodeFloatLiteral:
		v, _ := strconv.ParseFloat(n.Lexeme, 64)
		return elementVisit(ev.Builder.MakeFloatLiteral(v)), nil
	case NodeBooleanLiteral:
		return elementVisit(ev.Builder.MakeBooleanLiteral(n.Lexeme == "true")), nil
	case NodeStringLiteral:
		return elementVisit(ev.Builder.MakeStringLiteral(n.Lexeme)), nil
	case NodeCharacterLiteral:
		r := rune(0)
		for _, c := range n.Lexeme {
			r = c
			break
		}
		return elementVisit(ev.Builder.MakeCharacterLiteral(r)), nil
	case NodeNilLiteral:
		return elementVisit(ev.Builder.MakeNilLiteral()), nil
	case NodeUninitializedLiteral:
		return elementVisit(ev.Builder.MakeUninitializedLiteral()), nil
	case NodeUnaryOperator:
		return ev.evalUnaryOperator(n)
	case NodeBinaryOperator, NodeAssignment:
		return ev.evalBinaryOperator(n)
	case NodeCast:
		return ev.evalCast(n)
	case NodeTransmute:
		return ev.evalTransmute(n)
	case NodeSpread:
		return ev.evalSpread(n)
	case NodeProcedureCall:
		return ev.evalProcedureCall(n)
	case NodeCompositeType:
		return ev.evalCompositeType(n)
	case NodeProcedureType:
		return ev.evalProcedureType(n)
	case NodeIf:
		return ev.evalIf(n)
	case NodeWhile:
		return ev.evalWhile(n)
	case NodeFor:
		return ev.evalFor(n)
	case NodeSwitch:
		return ev.evalSwitch(n)
	case NodeBreak:
		return elementVisit(ev.Builder.MakeBreakElement(nil)), nil
	case NodeContinue:
		return elementVisit(ev.Builder.MakeContinueElement(nil)), nil
	case NodeFallthrough:
		return elementVisit(ev.Builder.MakeFallthroughElement()), nil
	case NodeReturn:
		var value element.Element
		if c := n.child(0); c != nil {
			v, err := ev.Evaluate(c)
			if err != nil {
				return Visit{}, err
			}
			value = v.Element
		}
		return elementVisit(ev.Builder.MakeReturnElement(value)), nil
	case NodeDefer:
		stmtVisit, err := ev.Evaluate(n.child(0))
		if err != nil {
			return Visit{}, err
		}
		return elementVisit(ev.Builder.MakeDeferElement(stmtVisit.Element)), nil
	case NodeWith:
		return ev.evalWith(n)
	case NodeDirective:
		return ev.evalDirective(n)
	case NodeIntrinsicCall:
		return ev.evalIntrinsicCall(n)
	case NodeBlock:
		return ev.evalBlockAsStatements(n)
	default:
		ev.errorf(n.Location, diag.XMissingFoldImpl, "evaluator: unhandled node kind %d", n.Kind)
		return Visit{}, nil
	}
}

// evalAsStatement evaluates n and, if it produced a bare element not
// already owned by a statement, wraps it in one attached to the
// current block — the common case for every loop body / if branch
// line.
func (ev *Evaluator) evalAsStatement(n *Node) error {
	v, err := ev.Evaluate(n)
	if err != nil {
		return err
	}
	if v.Kind == VisitElement && v.Element != nil {
		if _, ok := v.Element.(*element.Statement); !ok {
			ev.Builder.MakeStatement(v.Element)
		}
	}
	return nil
}

func (ev *Evaluator) evalBlockAsStatements(n *Node) (Visit, error) {
	blk := ev.Builder.MakeBlock()
	for _, c := range n.Children {
		if err := ev.evalAsStatement(c); err != nil {
			return Visit{}, err
		}
	}
	ev.Builder.PopBlock()
	return elementVisit(blk), nil
}

func (ev *Evaluator) evalBlockChild(n *Node) (*element.Block, error) {
	if n == nil {
		blk := ev.Builder.MakeBlock()
		ev.Builder.PopBlock()
		return blk, nil
	}
	v, err := ev.evalBlockAsStatements(n)
	if err != nil {
		return nil, err
	}
	blk, _ := v.Element.(*element.Block)
	return blk, nil
}
