package earley

import "fmt"

// Span identifies a half-open range [From, To) of byte offsets in some
// input source. It is used for token extents; package chart has its own
// Span type and does not use this one.
type Span [2]uint64

// From returns the start offset of s.
func (s Span) From() uint64 { return s[0] }

// To returns the end offset of s.
func (s Span) To() uint64 { return s[1] }

// Len returns the length of s, i.e. To()-From().
func (s Span) Len() uint64 { return s[1] - s[0] }

// IsNull is true for a zero-length span.
func (s Span) IsNull() bool { return s[0] == s[1] }

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s[0], s[1])
}

// Token is produced by a TokenStream. TokType names the terminal symbol
// the token claims to satisfy; chart.Recognize then asks that terminal's
// Predicate to confirm the claim against the token's Lexeme. A TokType
// naming no terminal of the grammar matches nothing, and recognition
// stalls at that token.
type Token interface {
	TokType() string
	Lexeme() string
	Span() Span
}

// SimpleToken is a minimal Token implementation, used by package
// token/simplescan and by tests that build ad-hoc token streams.
type SimpleToken struct {
	Type_  string
	Text   string
	Extent Span
}

var _ Token = SimpleToken{}

func (t SimpleToken) TokType() string { return t.Type_ }
func (t SimpleToken) Lexeme() string  { return t.Text }
func (t SimpleToken) Span() Span      { return t.Extent }

// TokenStream is the external collaborator contract (§6): something that
// can be pulled, one token at a time, until exhausted. Implementations
// are not required to be restartable or concurrency-safe.
type TokenStream interface {
	// Next returns the next token. ok is false exactly when the stream is
	// exhausted; in that case the returned Token is the zero value and
	// must not be inspected.
	Next() (tok Token, ok bool)
}

// SliceTokenStream adapts a pre-built slice of tokens into a TokenStream,
// useful for tests and for feeding output from one pass back into a second.
type SliceTokenStream struct {
	toks []Token
	pos  int
}

// NewSliceTokenStream wraps toks as a TokenStream.
func NewSliceTokenStream(toks []Token) *SliceTokenStream {
	return &SliceTokenStream{toks: toks}
}

func (s *SliceTokenStream) Next() (Token, bool) {
	if s.pos >= len(s.toks) {
		return nil, false
	}
	t := s.toks[s.pos]
	s.pos++
	return t, true
}
