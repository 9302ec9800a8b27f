package token

import "fmt"

type Kind int

const (
	EOF Kind = iota
	ILLEGAL

	// Literals and identifiers.
	IDENT
	INTEGER

	// Operators.
	ASSIGN
	EQUAL
	NOTEQUAL
	PLUS
	MINUS
	BANG
	ASTERISK
	SLASH
	LESS
	GREATER

	// Delimiters.
	COMMA
	SEMICOLON
	LEFTPAREN
	RIGHTPAREN
	LEFTBRACE
	RIGHTBRACE

	// Keywords.
	FUNCTION
	LET
	TRUE
	FALSE
	IF
	ELSE
	RETURN
)

var kindNames = [...]string{
	EOF:        "EOF",
	ILLEGAL:    "ILLEGAL",
	IDENT:      "IDENT",
	INTEGER:    "INTEGER",
	ASSIGN:     "ASSIGN",
	EQUAL:      "EQUAL",
	NOTEQUAL:   "NOTEQUAL",
	PLUS:       "PLUS",
	MINUS:      "MINUS",
	BANG:       "BANG",
	ASTERISK:   "ASTERISK",
	SLASH:      "SLASH",
	LESS:       "LESS",
	GREATER:    "GREATER",
	COMMA:      "COMMA",
	SEMICOLON:  "SEMICOLON",
	LEFTPAREN:  "LEFTPAREN",
	RIGHTPAREN: "RIGHTPAREN",
	LEFTBRACE:  "LEFTBRACE",
	RIGHTBRACE: "RIGHTBRACE",
	FUNCTION:   "FUNCTION",
	LET:        "LET",
	TRUE:       "TRUE",
	FALSE:      "FALSE",
	IF:         "IF",
	ELSE:       "ELSE",
	RETURN:     "RETURN",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsKeyword reports whether k is produced by a reserved word.
func (k Kind) IsKeyword() bool {
	return FUNCTION <= k && k <= RETURN
}

// Token is one lexical unit.
// Lexeme is the exact source span; Offset is its byte offset in the source.
// Literal holds the int64 value of an INTEGER and is nil for every other kind.
type Token struct {
	Kind    Kind
	Lexeme  string
	Offset  int
	Line    int
	Literal any
}

// End returns the byte offset just past the token's span.
func (t Token) End() int {
	return t.Offset + len(t.Lexeme)
}

func (t Token) Pretty() string {
	switch t.Kind {
	case IDENT, ILLEGAL:
		return fmt.Sprintf("%v(%s)", t.Kind, t.Lexeme)
	case INTEGER:
		return fmt.Sprintf("%v(%v)", t.Kind, t.Literal)
	default:
		return t.Kind.String()
	}
}

func (t Token) String() string {
	return fmt.Sprintf("{%v, %q, %d, %v}", t.Kind, t.Lexeme, t.Line, t.Literal)
}
