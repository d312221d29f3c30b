package parser

import (
	"go.creack.net/astcalc/ast"
	"go.creack.net/astcalc/lexer"
)

// expression := term (('+' | '-') term)*
func parseExpression(p *parser) ast.Expr {
	return parseBinaryExpr(p, additiveOps, parseTerm)
}

// term := factor (('*' | '/') factor)*
func parseTerm(p *parser) ast.Expr {
	return parseBinaryExpr(p, multiplicativeOps, parseFactor)
}

// parseBinaryExpr parses one precedence tier: operands from the next tier
// up, joined by the operators in ops. Repeated operators fold to the left,
// so "a - b - c" is Sub(Sub(a, b), c).
func parseBinaryExpr(p *parser, ops lookupTable[ast.Operator], operand func(*parser) ast.Expr) ast.Expr {
	left := operand(p)
	for {
		op, ok := ops.lookup(p.curToken)
		if !ok {
			return left
		}
		p.nextToken()
		right := operand(p)

		left = ast.BinaryExpr{
			Operator: op,
			Left:     left,
			Right:    right,
		}
	}
}

// factor := '-' factor | number | '(' expression ')'
func parseFactor(p *parser) ast.Expr {
	switch p.curToken.Type {
	case lexer.TokMinus:
		return parsePrefixExpr(p)
	case lexer.TokNumber:
		return parsePrimaryExpr(p)
	case lexer.TokParenLeft:
		return parseGroupingExpr(p)
	case lexer.TokEOF:
		p.errorf("unexpected end of input")
	default:
		p.errorf("unexpected token %s", describe(p.curToken))
	}
	return nil
}

func parsePrimaryExpr(p *parser) ast.Expr {
	number := p.curToken.Num
	p.nextToken()
	return ast.NumberExpr{
		Value: number,
	}
}

// Negation is sugar for 0 - x.
func parsePrefixExpr(p *parser) ast.Expr {
	p.nextToken()
	right := parseFactor(p)

	return ast.BinaryExpr{
		Operator: ast.OpSub,
		Left:     ast.NumberExpr{Value: 0},
		Right:    right,
	}
}

func parseGroupingExpr(p *parser) ast.Expr {
	p.nextToken()
	expr := parseExpression(p)
	p.expect("missing closing parenthesis", lexer.TokParenRight)
	p.nextToken()
	return expr
}
