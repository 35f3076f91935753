package chart

// SourceKind distinguishes the two ways a Span can have been derived from
// a predecessor, plus the no-derivation base case of a freshly predicted
// item (dot at position 0, not yet advanced by anything).
type SourceKind int

const (
	// SourceNone marks a span with no recorded derivation yet: a span
	// freshly added by Predict, before anything has advanced its dot.
	SourceNone SourceKind = iota
	// SourceScan marks a span produced by advancing Source's dot over a
	// terminal matched by Lexeme.
	SourceScan
	// SourceCompletion marks a span produced by advancing Source's dot
	// over the non-terminal completed by Trigger.
	SourceCompletion
)

// SpanSource records one way a Span was derived. A single Span may carry
// more than one SpanSource when the grammar is ambiguous (e.g. two
// distinct completions both advance the same predecessor item over the
// same symbol to the same extent), which is exactly what the forest
// package's tree enumeration walks.
type SpanSource struct {
	Kind    SourceKind
	Source  *Span  // the predecessor span whose dot is being advanced
	Lexeme  string // valid when Kind == SourceScan
	Trigger *Span  // valid when Kind == SourceCompletion
}
