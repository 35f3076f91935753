/*
Package chart implements the Earley chart recognizer: the closure loop
over Predict/Scan/Complete, the Span/SpanSource back-pointer store, and
parse-tree-root extraction. Rather than reconstructing derivations
backwards from a finished chart, every Span records, at construction
time, the SpanSource(s) that produced it, so the finished chart is
already the shared parse forest, ready for package forest to walk.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 the earley project authors
*/
package chart

import "github.com/go-earley/earley/grammar"

// Item is a dotted rule: a rule together with a position ("the dot")
// within its body, marking how much of the rule has been recognized.
type Item struct {
	Rule *grammar.Rule
	Dot  int
}

// IsComplete reports whether the dot has reached the end of the rule's
// body, i.e. the rule has been fully recognized.
func (it Item) IsComplete() bool { return it.Dot >= len(it.Rule.Body) }

// NextSymbol returns the symbol immediately after the dot, if any.
func (it Item) NextSymbol() (grammar.Symbol, bool) {
	if it.IsComplete() {
		return grammar.Symbol{}, false
	}
	return it.Rule.Body[it.Dot], true
}

// Advance returns the item with the dot moved one position to the right.
// It panics if called on a complete item.
func (it Item) Advance() Item {
	if it.IsComplete() {
		panic("chart: Advance called on a complete item")
	}
	return Item{Rule: it.Rule, Dot: it.Dot + 1}
}
