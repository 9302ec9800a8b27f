package driver

import (
	"fmt"
	"io"

	"github.com/alecthomas/repr"
	"github.com/sirupsen/logrus"
	"github.com/takoeight0821/monkey/internal/lexer"
	"github.com/takoeight0821/monkey/internal/token"
)

// Trailer is printed after the tokens of every source.
const Trailer = "end of file"

type Format int

const (
	Pretty Format = iota
	Debug
	Go
)

func (f Format) String() string {
	switch f {
	case Pretty:
		return "pretty"
	case Debug:
		return "debug"
	case Go:
		return "go"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

func ParseFormat(s string) (Format, error) {
	for _, f := range []Format{Pretty, Debug, Go} {
		if f.String() == s {
			return f, nil
		}
	}

	return Pretty, fmt.Errorf("unknown format %q (want pretty, debug or go)", s)
}

// Runner scans sources and prints their tokens.
type Runner struct {
	format Format
	out    io.Writer
	log    logrus.FieldLogger
}

type Option func(*Runner)

func WithFormat(f Format) Option {
	return func(r *Runner) { r.format = f }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(r *Runner) { r.log = log }
}

func NewRunner(out io.Writer, opts ...Option) *Runner {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	r := &Runner{format: Pretty, out: out, log: discard}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// RunSource scans source and prints every token followed by Trailer.
// If scanning fails, the tokens printed so far are kept and the trailer is not printed.
func (r *Runner) RunSource(source string) error {
	var count, illegal int
	for tok, err := range lexer.New(source).Tokens() {
		if err != nil {
			r.log.WithError(err).WithField("tokens", count).Debug("scan aborted")
			return fmt.Errorf("lex: %w", err)
		}
		count++
		if tok.Kind == token.ILLEGAL {
			illegal++
			r.log.WithFields(logrus.Fields{"char": tok.Lexeme, "line": tok.Line, "offset": tok.Offset}).Debug("illegal character")
		}
		if _, err := fmt.Fprintln(r.out, r.render(tok)); err != nil {
			return err
		}
	}

	r.log.WithFields(logrus.Fields{"tokens": count, "illegal": illegal}).Debug("scanned source")
	_, err := fmt.Fprintln(r.out, Trailer)

	return err
}

func (r *Runner) render(tok token.Token) string {
	switch r.format {
	case Debug:
		return tok.String()
	case Go:
		return repr.String(tok)
	default:
		return tok.Pretty() + ","
	}
}
