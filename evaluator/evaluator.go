// Package evaluator computes the value of an expression tree.
package evaluator

import (
	"errors"
	"fmt"

	"go.creack.net/astcalc/ast"
)

// ErrDivisionByZero is returned when a Div node's divisor evaluates to zero.
var ErrDivisionByZero = errors.New("division by zero")

func evaluateBinaryExpr(expr ast.BinaryExpr) (float64, error) {
	left, err := Evaluate(expr.Left)
	if err != nil {
		return 0, err
	}
	right, err := Evaluate(expr.Right)
	if err != nil {
		return 0, err
	}

	switch expr.Operator {
	case ast.OpAdd:
		return left + right, nil
	case ast.OpSub:
		return left - right, nil
	case ast.OpMul:
		return left * right, nil
	case ast.OpDiv:
		if right == 0 {
			return 0, fmt.Errorf("evaluate %v %s %v: %w", left, expr.Operator.Symbol(), right, ErrDivisionByZero)
		}
		return left / right, nil
	default:
		return 0, fmt.Errorf("unsupported operator %s", expr.Operator)
	}
}

// Evaluate walks the tree bottom-up, left operand first, and returns its value.
// Float overflow and NaN follow IEEE 754; only division by zero fails.
func Evaluate(expr ast.Expr) (float64, error) {
	switch e := expr.(type) {
	case ast.NumberExpr:
		return e.Value, nil
	case ast.BinaryExpr:
		return evaluateBinaryExpr(e)
	default:
		return 0, fmt.Errorf("unsupported expression type %T", e)
	}
}
