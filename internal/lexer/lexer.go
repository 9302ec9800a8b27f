package lexer

import (
	"fmt"
	"iter"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/takoeight0821/monkey/internal/token"
)

// eof marks the end of input. utf8 decoding never yields a negative rune.
const eof rune = -1

// Lexer scans a source buffer one code point at a time.
// A Lexer is single-pass and must not be shared between goroutines.
type Lexer struct {
	source string

	position     int  // offset of ch
	readPosition int  // offset of the character after ch
	ch           rune // current character, or eof
	line         int

	err error // first fatal error; once set, the scan is over
}

// New returns a Lexer whose current character is the first character of source.
func New(source string) *Lexer {
	l := &Lexer{source: source, line: 1}
	l.readChar()

	return l
}

// Lex scans the whole source and returns its tokens followed by a single EOF token.
func Lex(source string) ([]token.Token, error) {
	l := New(source)
	tokens := []token.Token{}

	for {
		tok, err := l.NextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) readChar() {
	if l.ch == eof {
		return
	}
	if l.ch == '\n' {
		l.line++
	}
	if l.readPosition >= len(l.source) {
		l.position = len(l.source)
		l.readPosition = len(l.source)
		l.ch = eof

		return
	}

	r, width := utf8.DecodeRuneInString(l.source[l.readPosition:])
	l.position = l.readPosition
	l.readPosition += width
	l.ch = r
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.source) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.readPosition:])

	return r
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

type InvalidIntegerError struct {
	Offset int
	Line   int
	Lexeme string
	Err    error
}

func (e *InvalidIntegerError) Error() string {
	return fmt.Sprintf("invalid integer %q at line %d: %v", e.Lexeme, e.Line, e.Err)
}

func (e *InvalidIntegerError) Unwrap() error {
	return e.Err
}

var singleChar = map[rune]token.Kind{
	'+': token.PLUS,
	'-': token.MINUS,
	'*': token.ASTERISK,
	'/': token.SLASH,
	'<': token.LESS,
	'>': token.GREATER,
	',': token.COMMA,
	';': token.SEMICOLON,
	'(': token.LEFTPAREN,
	')': token.RIGHTPAREN,
	'{': token.LEFTBRACE,
	'}': token.RIGHTBRACE,
}

// NextToken returns the next token. Once the end of input is reached it keeps
// returning EOF. A non-nil error means an integer literal did not fit in an
// int64; the same error is returned by every later call.
func (l *Lexer) NextToken() (token.Token, error) {
	if l.err != nil {
		return token.Token{}, l.err
	}

	l.skipWhitespace()

	start := l.position
	line := l.line

	switch {
	case l.ch == eof:
		return token.Token{Kind: token.EOF, Lexeme: "", Offset: start, Line: line}, nil
	case l.ch == '=':
		if l.peekChar() == '=' {
			l.readChar()
			return l.emit(token.EQUAL, start, line), nil
		}
		return l.emit(token.ASSIGN, start, line), nil
	case l.ch == '!':
		if l.peekChar() == '=' {
			l.readChar()
			return l.emit(token.NOTEQUAL, start, line), nil
		}
		return l.emit(token.BANG, start, line), nil
	case isLetter(l.ch):
		return l.identifier(start, line), nil
	case isDigit(l.ch):
		return l.integer(start, line)
	}

	if k, ok := singleChar[l.ch]; ok {
		return l.emit(k, start, line), nil
	}

	return l.emit(token.ILLEGAL, start, line), nil
}

// emit consumes the current character and returns a token spanning source[start:].
func (l *Lexer) emit(kind token.Kind, start, line int) token.Token {
	l.readChar()

	return token.Token{Kind: kind, Lexeme: l.source[start:l.position], Offset: start, Line: line}
}

// isLetter also accepts '?' and '!' so that names like valid? and save! scan
// as one identifier. A leading '!' never gets here; NextToken handles it first.
func isLetter(c rune) bool {
	return isAlphabetic(c) || c == '_' || c == '?' || c == '!'
}

func isAlphabetic(c rune) bool {
	return unicode.IsLetter(c) || unicode.In(c, unicode.Nl, unicode.Other_Alphabetic)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func (l *Lexer) identifier(start, line int) token.Token {
	for isLetter(l.ch) {
		l.readChar()
	}

	value := l.source[start:l.position]

	return token.Token{Kind: token.LookupIdent(value), Lexeme: value, Offset: start, Line: line}
}

func (l *Lexer) integer(start, line int) (token.Token, error) {
	for isDigit(l.ch) {
		l.readChar()
	}

	value := l.source[start:l.position]
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		l.err = &InvalidIntegerError{Offset: start, Line: line, Lexeme: value, Err: err}

		return token.Token{}, l.err
	}

	return token.Token{Kind: token.INTEGER, Lexeme: value, Offset: start, Line: line, Literal: n}, nil
}

// Tokens returns the remaining tokens as a lazy sequence. The sequence ends
// before EOF, which is never yielded. A fatal error is yielded once with a zero
// Token and ends the sequence.
func (l *Lexer) Tokens() iter.Seq2[token.Token, error] {
	return func(yield func(token.Token, error) bool) {
		for {
			tok, err := l.NextToken()
			if err != nil {
				yield(tok, err)
				return
			}
			if tok.Kind == token.EOF {
				return
			}
			if !yield(tok, nil) {
				return
			}
		}
	}
}
