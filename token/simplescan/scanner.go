/*
Package simplescan is a minimal earley.TokenStream implementation: a
text/scanner-backed whitespace/identifier/number/operator scanner, good
enough to drive the cmd/earley CLI. Anything
beyond that (custom rune categories, generated lexers) is a job for a
real tokenizer, not this package.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 the earley project authors
*/
package simplescan

import (
	"fmt"
	"io"
	"text/scanner"

	"github.com/go-earley/earley"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key "earley.simplescan".
func tracer() tracing.Trace {
	return tracing.Select("earley.simplescan")
}

// Token type names reported by Scanner.Next. These double as the
// terminal-symbol names a grammar predicate typically keys off of.
const (
	Ident   = "Ident"
	Int     = "Int"
	Float   = "Float"
	Char    = "Char"
	String  = "String"
	Comment = "Comment"
	Other   = "Other" // any single-rune token not covered above
)

// Scanner wraps text/scanner.Scanner as an earley.TokenStream.
type Scanner struct {
	s            scanner.Scanner
	skipComments bool
	errorHandler func(error)
	sourceID     string
}

var _ earley.TokenStream = (*Scanner)(nil)

// Option configures a Scanner built by New.
type Option func(*Scanner)

// SkipComments makes the scanner silently drop comment tokens instead of
// surfacing them to the caller.
func SkipComments(skip bool) Option {
	return func(s *Scanner) { s.skipComments = skip }
}

// New builds a Scanner reading from r. sourceID is used only in error
// messages (typically a filename or "<stdin>").
func New(sourceID string, r io.Reader, opts ...Option) *Scanner {
	sc := &Scanner{sourceID: sourceID, errorHandler: defaultErrorHandler}
	sc.s.Init(r)
	sc.s.Mode = scanner.GoTokens &^ scanner.SkipComments
	sc.s.Filename = sourceID
	sc.s.Error = func(_ *scanner.Scanner, msg string) {
		sc.errorHandler(fmt.Errorf("simplescan: %s: %s", sourceID, msg))
	}
	for _, opt := range opts {
		opt(sc)
	}
	return sc
}

func defaultErrorHandler(err error) {
	tracer().Errorf("%s", err.Error())
}

// SetErrorHandler installs h as the scanner's error callback, replacing
// the default (which just traces the error).
func (s *Scanner) SetErrorHandler(h func(error)) {
	if h == nil {
		h = defaultErrorHandler
	}
	s.errorHandler = h
}

// Next implements earley.TokenStream.
func (s *Scanner) Next() (earley.Token, bool) {
	for {
		r := s.s.Scan()
		if r == scanner.EOF {
			return nil, false
		}
		kind := kindOf(r)
		if kind == Comment && s.skipComments {
			continue
		}
		pos := s.s.Position
		end := s.s.Pos()
		tok := earley.SimpleToken{
			Type_:  kind,
			Text:   s.s.TokenText(),
			Extent: earley.Span{uint64(pos.Offset), uint64(end.Offset)},
		}
		tracer().Debugf("scanned %s %q at %s", kind, tok.Text, tok.Extent)
		return tok, true
	}
}

func kindOf(r rune) string {
	switch r {
	case scanner.Ident:
		return Ident
	case scanner.Int:
		return Int
	case scanner.Float:
		return Float
	case scanner.Char:
		return Char
	case scanner.String, scanner.RawString:
		return String
	case scanner.Comment:
		return Comment
	default:
		return Other
	}
}
