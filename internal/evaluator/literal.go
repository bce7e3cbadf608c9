package evaluator

import (
	"strconv"
	"strings"

	"surge/internal/element"
)

// evalIntegerLiteral parses an integer literal's lexeme, recognising a
// leading '-' the same way the original's lexer distinguishes a
// negative literal from a unary-negation expression applied to a
// positive one — so that narrowing (§4.3, §8 scenario 1) sees the
// correct sign up front rather than through a later fold.
func (ev *Evaluator) evalIntegerLiteral(n *Node) *element.IntegerLiteral {
	lexeme := n.Lexeme
	negative := strings.HasPrefix(lexeme, "-")
	if negative {
		lexeme = lexeme[1:]
	}
	v, _ := strconv.ParseUint(lexeme, 0, 64)
	return ev.Builder.MakeIntegerLiteral(v, negative)
}
