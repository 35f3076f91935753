package chart

import (
	"fmt"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/go-earley/earley/grammar"
)

// Span is one instantiation of an Item over an input extent [Origin,
// End). It is the chart's unit of storage: every distinct (Rule, Dot,
// Origin, End) tuple is represented by exactly one *Span, shared by every
// derivation that produces it. This sharing is what keeps the chart
// polynomial-sized even for grammars with exponentially many parse trees.
//
// Sources is an insertion-order-stable set of SpanSource, so that
// re-walking a Span's derivations in forest.Forest is deterministic.
type Span struct {
	Item    Item
	Origin  int
	End     int
	Sources *linkedhashset.Set
}

func newSpan(it Item, origin, end int) *Span {
	return &Span{Item: it, Origin: origin, End: end, Sources: linkedhashset.New()}
}

// AddSource records one more way this span can be derived.
func (s *Span) AddSource(src SpanSource) {
	s.Sources.Add(src)
}

// SourceList returns the span's recorded sources, in the order they were
// first added.
func (s *Span) SourceList() []SpanSource {
	values := s.Sources.Values()
	out := make([]SpanSource, len(values))
	for i, v := range values {
		out[i] = v.(SpanSource)
	}
	return out
}

func (s *Span) String() string {
	return fmt.Sprintf("%s @%d [%d,%d)", s.Item.Rule.String(), s.Item.Dot, s.Origin, s.End)
}

// itemKey identifies a span within a single column, where End is implicit
// (the owning column's index), so the key need only carry Rule, Dot and
// Origin.
type itemKey struct {
	rule   *grammar.Rule
	dot    int
	origin int
}
