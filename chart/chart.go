package chart

import (
	"github.com/go-earley/earley"
	"github.com/go-earley/earley/grammar"
)

// Chart is the finished result of Recognize: one Column per input
// position 0..n (n = number of tokens consumed), plus the token sequence
// itself. forest.Forest does not read Tokens: each Scan source carries
// its own lexeme.
//
// A *Chart is safe for concurrent read-only use once Recognize has
// returned.
type Chart struct {
	Grammar *grammar.Grammar
	Columns []*Column
	Tokens  []earley.Token
}

// Recognize runs the Earley chart-construction algorithm: predict, scan
// and complete, column by column, pulling tokens from the stream until it
// is exhausted. It returns the finished Chart, or an error if the input
// was rejected.
func Recognize(g *grammar.Grammar, tokens earley.TokenStream) (*Chart, error) {
	var toks []earley.Token
	col0 := newColumn(0)
	for _, r := range g.RulesFor(g.Start) {
		col0.getOrCreate(Item{Rule: r, Dot: 0}, 0)
	}
	columns := []*Column{col0}
	closeColumn(g, columns, col0)

	pos := 0
	for {
		tok, ok := tokens.Next()
		if !ok {
			break
		}
		toks = append(toks, tok)
		cur := columns[pos]
		next := newColumn(pos + 1)
		matched := false
		for _, sp := range cur.Spans() {
			sym, ok := sp.Item.NextSymbol()
			if !ok || !sym.Term {
				continue
			}
			// A token names the terminal it claims to satisfy; the
			// terminal's predicate then confirms the claim against the
			// lexeme. A token type naming no terminal matches nothing.
			if sym.Name != tok.TokType() || !sym.Satisfies(tok.Lexeme()) {
				continue
			}
			matched = true
			newSp, _ := next.getOrCreate(sp.Item.Advance(), sp.Origin)
			newSp.AddSource(SpanSource{Kind: SourceScan, Source: sp, Lexeme: tok.Lexeme()})
		}
		if !matched {
			tracer().Errorf("no terminal matched %q at position %d", tok.Lexeme(), pos)
			return nil, &UnexpectedTokenError{Position: pos, Lexeme: tok.Lexeme()}
		}
		columns = append(columns, next)
		closeColumn(g, columns, next)
		pos++
	}

	last := columns[len(columns)-1]
	if len(last.completedFor(g.Start, 0)) == 0 {
		return nil, &UnexpectedEndError{Position: pos}
	}
	return &Chart{Grammar: g, Columns: columns, Tokens: toks}, nil
}

// ParseTrees returns every complete span in the chart's final column that
// derives the grammar's start symbol over the whole input: the root(s)
// from which forest.Forest walks the parse forest. More than one root
// means the grammar is ambiguous at the top level.
func (c *Chart) ParseTrees(g *grammar.Grammar) []*Span {
	last := c.Columns[len(c.Columns)-1]
	return last.completedFor(g.Start, 0)
}

// closeColumn runs the Predict/Complete closure loop over col until no
// new spans are added, using col.work as the grow-while-iterating
// work-queue (package internal/iterset) so that spans added mid-pass,
// including ones produced by the Aycock–Horspool nullable fix, where a
// rule with an empty body is immediately complete the moment it is
// predicted, are still visited.
func closeColumn(g *grammar.Grammar, columns []*Column, col *Column) {
	col.work.IterateOnce()
	for col.work.Next() {
		sp := col.work.Item()
		if sp.Item.IsComplete() {
			complete(g, columns, col, sp)
			continue
		}
		sym, _ := sp.Item.NextSymbol()
		if sym.Term {
			continue
		}
		predict(g, col, sym)
	}
}

// predict ensures every rule for the non-terminal sym has a dot-0 span in
// col. A rule with an empty body produces a span that is already
// complete at Dot 0: the closure loop above dequeues it like any other
// span and runs Complete on it, which is what gives nullable
// non-terminals their "magical completion" without any special case here.
func predict(g *grammar.Grammar, col *Column, sym grammar.Symbol) {
	for _, r := range g.RulesFor(sym) {
		col.getOrCreate(Item{Rule: r, Dot: 0}, col.index)
	}
}

// complete advances every span in the completed span's origin column that
// was waiting for the completed rule's head symbol, recording the
// completion as a SpanSource on the (possibly newly created, possibly
// already-shared) advanced span in col.
func complete(g *grammar.Grammar, columns []*Column, col *Column, completed *Span) {
	origin := columns[completed.Origin]
	head := completed.Item.Rule.Head
	tracer().Debugf("complete %s, %d waiting span(s) in column %d", completed.String(), len(origin.WaitingFor(head.Name)), origin.index)
	for _, waiting := range origin.WaitingFor(head.Name) {
		newSp, _ := col.getOrCreate(waiting.Item.Advance(), waiting.Origin)
		newSp.AddSource(SpanSource{Kind: SourceCompletion, Source: waiting, Trigger: completed})
	}
}
