// Package ast defines the expression tree built by the parser.
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Expr is a node of the expression tree.
// The set of nodes is closed: NumberExpr and BinaryExpr.
type Expr interface {
	Dump() string
	expr()
}

// Operator is the arithmetic operation of a BinaryExpr.
type Operator int

const (
	OpAdd Operator = iota + 1
	OpSub
	OpMul
	OpDiv
)

var operatorNames = map[Operator]string{
	OpAdd: "Add",
	OpSub: "Sub",
	OpMul: "Mul",
	OpDiv: "Div",
}

var operatorSymbols = map[Operator]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
}

// String returns the name used when rendering the tree.
func (op Operator) String() string {
	if s, ok := operatorNames[op]; ok {
		return s
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// Symbol returns the infix symbol of the operator.
func (op Operator) Symbol() string {
	return operatorSymbols[op]
}

// NumberExpr is a numeric literal.
type NumberExpr struct {
	Value float64
}

func (NumberExpr) expr() {}

func (n NumberExpr) Dump() string {
	s := strconv.FormatFloat(n.Value, 'f', -1, 64)
	if strings.ContainsAny(s, ".IN") { // Already has a fraction, or is Inf/NaN.
		return s
	}
	return s + ".0"
}

// BinaryExpr applies Operator to Left and Right.
type BinaryExpr struct {
	Operator Operator
	Left     Expr
	Right    Expr
}

func (BinaryExpr) expr() {}

func (b BinaryExpr) Dump() string {
	return fmt.Sprintf("%s(%s, %s)", b.Operator, dump(b.Left), dump(b.Right))
}

// Render returns the nested textual form of the tree, e.g. "Add(3.0, Mul(4.0, 2.0))".
func Render(e Expr) string {
	return dump(e)
}

func dump(e Expr) string {
	if e == nil {
		return "<nil>"
	}
	return e.Dump()
}
