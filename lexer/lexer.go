// Package lexer provides a simple lexical analyzer for arithmetic expressions.
package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	digits      = "0123456789"
	numberChars = digits + "."
	whitespaces = " \t\r\n"
)

// Lexer produces tokens from an input string, one NextToken call at a time.
type Lexer struct {
	input string

	curToken Token

	atEOF bool

	pos   int // Current position in input.
	start int // Position of the start of the current token.
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{
		input: input,
	}
}

// NextToken lexes and returns the next token.
// Once the input is exhausted, it keeps returning TokEOF.
// After a TokError, the remaining input is dropped.
func (l *Lexer) NextToken() Token {
	l.curToken = Token{Type: TokEOF, Pos: l.pos}
	state := lexText
	for {
		state = state(l)
		if state == nil {
			return l.curToken
		}
	}
}

// Tokenize lexes the whole input. The returned slice always ends with
// a TokEOF token. A malformed input yields an *Error and no tokens.
func Tokenize(input string) ([]Token, error) {
	l := New(input)

	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == TokError {
			return nil, &Error{Pos: tok.Pos, Msg: tok.Value}
		}
		tokens = append(tokens, tok)
		if tok.Type == TokEOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.atEOF = true
		return 0
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += n
	return r
}

func (l *Lexer) backup() {
	// If we reached eof, we can't back up.
	// If we are at the beginning of the input, we can't back up.
	if l.atEOF || l.pos == 0 {
		return
	}
	_, n := utf8.DecodeLastRuneInString(l.input[:l.pos])
	l.pos -= n
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for strings.ContainsRune(valid, l.next()) {
		accepted = true
	}
	l.backup()
	return accepted
}

func (l *Lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type:  tt,
		Value: l.input[l.start:l.pos],
		Pos:   l.start,
	}
	l.start = l.pos
	return t
}

func (l *Lexer) emitToken(t Token) stateFn {
	l.curToken = t
	return nil
}

func (l *Lexer) emit(tt TokenType) stateFn {
	return l.emitToken(l.thisToken(tt))
}

func (l *Lexer) ignore() {
	l.start = l.pos
}

func (l *Lexer) errorf(format string, args ...any) stateFn {
	l.curToken = Token{
		Type:  TokError,
		Value: fmt.Sprintf(format, args...),
		Pos:   l.start,
	}
	l.start = 0
	l.pos = 0
	l.input = l.input[:0]
	return nil
}

// Error is returned by Tokenize when the input can't be lexed.
type Error struct {
	Pos int // Byte offset in the input.
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("lex error at position %d: %s", e.Pos, e.Msg)
}
