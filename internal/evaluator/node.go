// Package evaluator transforms parser AST nodes into the semantic
// element graph (spec §4.4). It consumes a fixed external shape for
// AST nodes — tag, lexeme, children, location — and knows nothing
// about lexing or parsing; the parser collaborator that produces Node
// values is out of scope (§1).
package evaluator

import "surge/internal/source"

// NodeKind enumerates the AST tags the evaluator switches on. The tag
// set and shape are fixed by the parser collaborator (§6 "External
// interfaces ... Parser collaborator").
type NodeKind uint8

const (
	NodeInvalid NodeKind = iota
	NodeModule
	NodeImport
	NodeNamespace
	NodeBlock
	NodeDeclaration
	NodeIdentifier
	NodeIdentifierReference
	NodeInitializer
	NodeIntegerLiteral
	NodeFloatLiteral
	NodeBooleanLiteral
	NodeStringLiteral
	NodeCharacterLiteral
	NodeNilLiteral
	NodeUninitializedLiteral
	NodeUnaryOperator
	NodeBinaryOperator
	NodeAssignment
	NodeCast
	NodeTransmute
	NodeSpread
	NodeProcedureCall
	NodeArgumentList
	NodeArgumentPair
	NodeProcedureType
	NodeCompositeType
	NodeField
	NodePointerType
	NodeArrayType
	NodeTupleType
	NodeIf
	NodeWhile
	NodeFor
	NodeSwitch
	NodeCase
	NodeBreak
	NodeContinue
	NodeFallthrough
	NodeReturn
	NodeDefer
	NodeWith
	NodeDirective
	NodeIntrinsicCall
)

// Node is the fixed external AST shape the evaluator consumes (§6).
// Lexeme carries operator spellings, literal text, and identifier/type
// names; Attributes carries directive/kind-specific flags (e.g. which
// directive, which intrinsic, the binary operator) that the parser has
// already classified, since the evaluator does not re-lex text.
type Node struct {
	Kind     NodeKind
	Lexeme   string
	Children []*Node
	Location source.Span
	Attrs    map[string]string
}

func (n *Node) attr(key string) string {
	if n == nil || n.Attrs == nil {
		return ""
	}
	return n.Attrs[key]
}

func (n *Node) child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}
