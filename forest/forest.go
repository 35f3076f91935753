/*
Package forest evaluates the parse forest implicit in a chart.Chart: it
walks the back-pointer chains recorded on each chart.Span and folds them,
rule by rule, into caller-supplied values of type T.

All three evaluation modes (EvalRecursive, Eval, EvalAllRecursive)
share the same reduce-by-canonical-rule-string dispatch: a span's dot
chain is walked back to the rule's dot-0 span, each step contributing one
argument (a built leaf for a Scan step, a recursively reduced value for a
Completion step), and the accumulated arguments are handed to the action
registered for the span's rule once the chain bottoms out.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 the earley project authors
*/
package forest

import (
	"fmt"

	"github.com/go-earley/earley/chart"
)

// LeafBuilder constructs a T from a matched terminal's name and the
// lexeme that satisfied it.
type LeafBuilder[T any] func(terminal, lexeme string) T

// Forest holds the semantic actions used to reduce a chart.Chart's spans
// into values of type T. It carries no chart-specific state, so one
// Forest can be reused across many charts built from the same grammar.
type Forest[T any] struct {
	leaf    LeafBuilder[T]
	actions map[string]func([]T) T
}

// New returns a Forest whose terminal values are built by leaf.
func New[T any](leaf LeafBuilder[T]) *Forest[T] {
	return &Forest[T]{leaf: leaf, actions: make(map[string]func([]T) T)}
}

// Action registers fn as the reduction for rule, keyed by its canonical
// string form ("head -> s1 s2 … sn", or "head -> " for an empty body,
// see grammar.Rule.String). fn receives the reduced value of each body
// symbol, in order.
func (f *Forest[T]) Action(rule string, fn func([]T) T) {
	f.actions[rule] = fn
}

func (f *Forest[T]) action(rule string) (func([]T) T, error) {
	fn, ok := f.actions[rule]
	if !ok {
		return nil, &MissingActionError{Rule: rule}
	}
	return fn, nil
}

// EvalRecursive reduces roots[0] with a plain recursive tree walk,
// following only the first recorded SpanSource at every ambiguous point.
// It recurses as deep as the derivation is nested; for inputs that can
// produce very long derivation chains (long left-recursive sums, say),
// use Eval instead.
func (f *Forest[T]) EvalRecursive(roots []*chart.Span) (T, error) {
	var zero T
	if len(roots) == 0 {
		return zero, &NoRootsError{}
	}
	return f.walkRecursive(roots[0])
}

func (f *Forest[T]) walkRecursive(s *chart.Span) (T, error) {
	var zero T
	args, err := f.argsRecursive(s)
	if err != nil {
		return zero, err
	}
	fn, err := f.action(s.Item.Rule.String())
	if err != nil {
		return zero, err
	}
	return fn(args), nil
}

// argsRecursive walks s's dot chain back to dot 0, collecting one
// argument per step, recursing into Completion triggers along the way.
func (f *Forest[T]) argsRecursive(s *chart.Span) ([]T, error) {
	if s.Item.Dot == 0 {
		return nil, nil
	}
	srcs := s.SourceList()
	if len(srcs) == 0 {
		return nil, fmt.Errorf("forest: span %s has no recorded source", s)
	}
	src := srcs[0]
	prefix, err := f.argsRecursive(src.Source)
	if err != nil {
		return nil, err
	}
	var v T
	switch src.Kind {
	case chart.SourceScan:
		sym, _ := src.Source.Item.NextSymbol()
		v = f.leaf(sym.Name, src.Lexeme)
	case chart.SourceCompletion:
		v, err = f.walkRecursive(src.Trigger)
		if err != nil {
			return nil, err
		}
	}
	return append(prefix, v), nil
}

// EvalAllRecursive reduces every derivation of every root, recursively
// taking the Cartesian product of ambiguous alternatives at each step.
// The result can be exponentially large for a sufficiently ambiguous
// grammar; callers that only need one tree should use Eval or
// EvalRecursive instead.
func (f *Forest[T]) EvalAllRecursive(roots []*chart.Span) ([]T, error) {
	if len(roots) == 0 {
		return nil, &NoRootsError{}
	}
	var out []T
	for _, root := range roots {
		vs, err := f.walkAll(root)
		if err != nil {
			return nil, err
		}
		out = append(out, vs...)
	}
	return out, nil
}

func (f *Forest[T]) walkAll(s *chart.Span) ([]T, error) {
	argLists, err := f.argsAll(s)
	if err != nil {
		return nil, err
	}
	fn, err := f.action(s.Item.Rule.String())
	if err != nil {
		return nil, err
	}
	out := make([]T, len(argLists))
	for i, args := range argLists {
		out[i] = fn(args)
	}
	return out, nil
}

func (f *Forest[T]) argsAll(s *chart.Span) ([][]T, error) {
	if s.Item.Dot == 0 {
		return [][]T{nil}, nil
	}
	srcs := s.SourceList()
	if len(srcs) == 0 {
		return nil, fmt.Errorf("forest: span %s has no recorded source", s)
	}
	var results [][]T
	for _, src := range srcs {
		prefixes, err := f.argsAll(src.Source)
		if err != nil {
			return nil, err
		}
		var values []T
		switch src.Kind {
		case chart.SourceScan:
			sym, _ := src.Source.Item.NextSymbol()
			values = []T{f.leaf(sym.Name, src.Lexeme)}
		case chart.SourceCompletion:
			values, err = f.walkAll(src.Trigger)
			if err != nil {
				return nil, err
			}
		}
		for _, p := range prefixes {
			for _, v := range values {
				combo := make([]T, 0, len(p)+1)
				combo = append(combo, p...)
				combo = append(combo, v)
				results = append(results, combo)
			}
		}
	}
	return results, nil
}
