package chart

import (
	"github.com/go-earley/earley/grammar"
	"github.com/go-earley/earley/internal/iterset"
)

// Column holds every Span ending at one input position. Its waitingFor
// index lets Complete find, in O(1) amortized, every span elsewhere in
// this same column whose dot sits just before a given non-terminal,
// i.e. the predecessor items a completed span advances.
type Column struct {
	index      int
	byKey      map[itemKey]*Span
	waitingFor map[string][]*Span
	work       *iterset.Set[*Span] // closure work-queue: every span added to this column, processed exactly once

	// zeroWidth indexes, by rule head, every complete span born in this
	// column with Origin == this column's own index (a zero-width
	// completion). Ordinary completions are caught by complete() walking
	// waitingFor when the completed span is dequeued; that alone misses a
	// waiter registered AFTER its zero-width completion was already
	// dequeued in the same closure pass (e.g. a rule body crossing several
	// nullable non-terminals, one of which a second rule predicted and
	// completed earlier in the pass). getOrCreate consults this index so
	// such a late waiter is still advanced immediately. Only zero-width
	// completions can be late triggers: a waiter ending at this column can
	// only ever be advanced, during this column's closure, by a completion
	// that both starts and ends here.
	zeroWidth map[string][]*Span
}

func newColumn(index int) *Column {
	return &Column{
		index:      index,
		byKey:      make(map[itemKey]*Span),
		waitingFor: make(map[string][]*Span),
		work:       iterset.New[*Span](),
		zeroWidth:  make(map[string][]*Span),
	}
}

// Spans returns every span currently in the column, in insertion order.
func (c *Column) Spans() []*Span { return c.work.Values() }

// getOrCreate returns the span for (rule, dot, origin) in this column,
// creating and registering it (including in the closure work-queue and
// the waitingFor index) if it did not already exist. The second return
// value is true when a new span was created.
func (c *Column) getOrCreate(it Item, origin int) (*Span, bool) {
	key := itemKey{rule: it.Rule, dot: it.Dot, origin: origin}
	if sp, ok := c.byKey[key]; ok {
		return sp, false
	}
	sp := newSpan(it, origin, c.index)
	c.byKey[key] = sp
	c.work.Add(sp)

	if sp.Item.IsComplete() && origin == c.index {
		head := it.Rule.Head.Name
		c.zeroWidth[head] = append(c.zeroWidth[head], sp)
	}

	if sym, ok := it.NextSymbol(); ok && !sym.Term {
		c.waitingFor[sym.Name] = append(c.waitingFor[sym.Name], sp)
		for _, completed := range c.zeroWidth[sym.Name] {
			adv, _ := c.getOrCreate(it.Advance(), origin)
			adv.AddSource(SpanSource{Kind: SourceCompletion, Source: sp, Trigger: completed})
		}
	}
	return sp, true
}

// WaitingFor returns every span in the column whose next required symbol
// is the non-terminal named name.
func (c *Column) WaitingFor(name string) []*Span { return c.waitingFor[name] }

// completedFor returns every complete span in the column whose rule head
// is sym, used by ParseTrees to find accepting roots.
func (c *Column) completedFor(sym grammar.Symbol, origin int) []*Span {
	var out []*Span
	for _, sp := range c.work.Values() {
		if sp.Item.IsComplete() && sp.Origin == origin && sp.Item.Rule.Head.Name == sym.Name {
			out = append(out, sp)
		}
	}
	return out
}
