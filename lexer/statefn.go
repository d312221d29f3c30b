package lexer

import (
	"errors"
	"strconv"
	"strings"
)

type stateFn func(*Lexer) stateFn

// List of runes that just advance one and emit a token.
var singles = map[rune]TokenType{
	'+': TokPlus,
	'-': TokMinus,
	'*': TokStar,
	'/': TokSlash,
	'(': TokParenLeft,
	')': TokParenRight,
}

func lexText(l *Lexer) stateFn {
	if l.acceptRun(whitespaces) {
		l.ignore()
	}
	if l.atEOF || l.pos >= len(l.input) {
		return l.emit(TokEOF)
	}

	switch r := l.peek(); {
	case strings.ContainsRune(numberChars, r):
		return lexNumber
	default:
		if tok, ok := singles[r]; ok {
			l.next()
			return l.emit(tok)
		}
		return l.errorf("unexpected character %q", r)
	}
}

func lexNumber(l *Lexer) stateFn {
	l.acceptRun(digits)
	if l.accept(".") {
		l.acceptRun(digits)
	}
	if l.peek() == '.' {
		l.acceptRun(numberChars)
		return l.errorf("malformed number %q", l.input[l.start:l.pos])
	}

	tok := l.thisToken(TokNumber)
	n, err := strconv.ParseFloat(tok.Value, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// Only a lone "." gets here. Out of range literals keep the ±Inf from ParseFloat.
		l.start = tok.Pos
		return l.errorf("malformed number %q", tok.Value)
	}
	tok.Num = n
	return l.emitToken(tok)
}
