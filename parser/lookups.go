package parser

import (
	"go.creack.net/astcalc/ast"
	"go.creack.net/astcalc/lexer"
)

type lookupTable[T any] map[lexer.TokenType]T

// Binary operators, one table per precedence tier.
// The grammar functions own the tiers, the tables only map tokens to operators.
var (
	additiveOps = lookupTable[ast.Operator]{
		lexer.TokPlus:  ast.OpAdd,
		lexer.TokMinus: ast.OpSub,
	}
	multiplicativeOps = lookupTable[ast.Operator]{
		lexer.TokStar:  ast.OpMul,
		lexer.TokSlash: ast.OpDiv,
	}
)

func (t lookupTable[T]) lookup(tok lexer.Token) (T, bool) {
	v, ok := t[tok.Type]
	return v, ok
}
