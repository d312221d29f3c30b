package lexer

import (
	"fmt"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Literals.
	TokNumber

	// Operators.
	TokPlus
	TokMinus
	TokStar
	TokSlash

	// Delimiters.
	TokParenLeft
	TokParenRight

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	if s, ok := tokenTypeStrings[tt]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokNumber: "NUMBER",

	TokPlus:  "PLUS",
	TokMinus: "MINUS",
	TokStar:  "STAR",
	TokSlash: "SLASH",

	TokParenLeft:  "PAREN_LEFT",
	TokParenRight: "PAREN_RIGHT",
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// Token represents a lexical token of an expression.
type Token struct {
	Type  TokenType
	Value string  // Raw text, or the message for TokError.
	Num   float64 // Parsed value, only for TokNumber.
	Pos   int     // Byte offset of the token in the input.
}

func (t Token) String() string {
	switch t.Type {
	case TokEOF:
		return "EOF"
	case TokError:
		return t.errorString()
	}
	return fmt.Sprintf("%s[%d]: %q", t.Type, t.Pos, t.Value)
}

func (t Token) errorString() string {
	return fmt.Sprintf("ERROR [%d]: %s", t.Pos, t.Value)
}
