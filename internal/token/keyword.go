package token

import "maps"

// keywords is never written after initialization.
var keywords = map[string]Kind{
	"fn":     FUNCTION,
	"let":    LET,
	"true":   TRUE,
	"false":  FALSE,
	"if":     IF,
	"else":   ELSE,
	"return": RETURN,
}

// LookupIdent returns the keyword kind for ident, or IDENT if ident is not reserved.
// Matching is exact and case-sensitive.
func LookupIdent(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}

	return IDENT
}

// Keywords returns a copy of the reserved word table.
func Keywords() map[string]Kind {
	return maps.Clone(keywords)
}
