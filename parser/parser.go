// Package parser builds an expression tree out of lexer tokens.
package parser

import (
	"fmt"

	"go.creack.net/astcalc/ast"
	"go.creack.net/astcalc/lexer"
)

type parser struct {
	tokens []lexer.Token
	idx    int

	prevToken lexer.Token
	curToken  lexer.Token
}

func newParser(tokens []lexer.Token) *parser {
	p := &parser{tokens: tokens}
	p.nextToken()
	return p
}

// Error is returned when the tokens don't match the grammar.
type Error struct {
	Pos int // Byte offset of the offending token.
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse error at position %d: %s", e.Pos, e.Msg)
}

// Parse builds the expression tree for the given tokens.
// The tokens are expected to be terminated by a TokEOF, as returned by lexer.Tokenize.
func Parse(tokens []lexer.Token) (expr ast.Expr, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(*Error)
			if !ok {
				panic(r)
			}
			expr, err = nil, e
		}
	}()

	p := newParser(tokens)
	expr = parseExpression(p)
	p.expect("unexpected trailing input", lexer.TokEOF)
	return expr, nil
}

// ParseString tokenizes and parses the input.
func ParseString(input string) (ast.Expr, error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// nextToken advances to the next token. Past the end of the slice,
// it yields TokEOF so a missing terminator reads as end of input.
func (p *parser) nextToken() lexer.Token {
	p.prevToken = p.curToken
	if p.idx < len(p.tokens) {
		p.curToken = p.tokens[p.idx]
		p.idx++
	} else {
		p.curToken = lexer.Token{Type: lexer.TokEOF, Pos: p.prevToken.Pos + len(p.prevToken.Value)}
	}
	if p.curToken.Type == lexer.TokError {
		p.errorf("%s", p.curToken.Value)
	}
	return p.curToken
}

// expect checks if the current token is one of the expected types and fails with msg otherwise.
func (p *parser) expect(msg string, kind ...lexer.TokenType) lexer.Token {
	if !p.curToken.Type.IsOneOf(kind...) {
		p.errorf("%s: got %s", msg, describe(p.curToken))
	}
	return p.curToken
}

func (p *parser) errorf(format string, args ...any) {
	panic(&Error{Pos: p.curToken.Pos, Msg: fmt.Sprintf(format, args...)})
}

func describe(tok lexer.Token) string {
	if tok.Type == lexer.TokEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", tok.Value)
}
