package forest

import (
	"fmt"

	"github.com/go-earley/earley/chart"
)

// Eval reduces roots[0] the same way EvalRecursive does, following only
// the first recorded SpanSource at every ambiguous point, but with an
// explicit work stack in place of Go call-stack recursion, so that a
// deeply left-recursive derivation (e.g. a long chain of Sum -> Sum + Product)
// cannot exhaust the goroutine stack.
func (f *Forest[T]) Eval(roots []*chart.Span) (T, error) {
	var zero T
	if len(roots) == 0 {
		return zero, &NoRootsError{}
	}

	stack := []evalTask[T]{{kind: taskExpand, span: roots[0]}}
	var values []T

	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch t.kind {
		case taskValue:
			values = append(values, t.value)

		case taskExpand:
			steps, err := f.chain(t.span)
			if err != nil {
				return zero, err
			}
			stack = append(stack, evalTask[T]{kind: taskApply, rule: t.span.Item.Rule.String(), arity: len(steps)})
			for i := len(steps) - 1; i >= 0; i-- {
				step := steps[i]
				if step.isScan {
					stack = append(stack, evalTask[T]{kind: taskValue, value: f.leaf(step.symbol, step.lexeme)})
				} else {
					stack = append(stack, evalTask[T]{kind: taskExpand, span: step.trigger})
				}
			}

		case taskApply:
			fn, err := f.action(t.rule)
			if err != nil {
				return zero, err
			}
			n := t.arity
			if n > len(values) {
				return zero, fmt.Errorf("forest: internal error reducing %q: stack underflow", t.rule)
			}
			args := append([]T(nil), values[len(values)-n:]...)
			values = values[:len(values)-n]
			values = append(values, fn(args))
		}
	}

	if len(values) != 1 {
		return zero, fmt.Errorf("forest: internal error: expected exactly 1 final value, got %d", len(values))
	}
	return values[0], nil
}

type evalTaskKind int

const (
	taskExpand evalTaskKind = iota
	taskApply
	taskValue
)

type evalTask[T any] struct {
	kind  evalTaskKind
	span  *chart.Span  // taskExpand
	rule  string       // taskApply
	arity int          // taskApply
	value T            // taskValue
}

type chainStep struct {
	isScan  bool
	symbol  string
	lexeme  string
	trigger *chart.Span
}

// chain walks s's dot chain back to dot 0 and returns the steps in
// forward order (the first body symbol's step first).
func (f *Forest[T]) chain(s *chart.Span) ([]chainStep, error) {
	var rev []chainStep
	cur := s
	for cur.Item.Dot > 0 {
		srcs := cur.SourceList()
		if len(srcs) == 0 {
			return nil, fmt.Errorf("forest: span %s has no recorded source", cur)
		}
		src := srcs[0]
		var st chainStep
		switch src.Kind {
		case chart.SourceScan:
			sym, _ := src.Source.Item.NextSymbol()
			st = chainStep{isScan: true, symbol: sym.Name, lexeme: src.Lexeme}
		case chart.SourceCompletion:
			st = chainStep{trigger: src.Trigger}
		}
		rev = append(rev, st)
		cur = src.Source
	}
	steps := make([]chainStep, len(rev))
	for i, s2 := range rev {
		steps[len(rev)-1-i] = s2
	}
	return steps, nil
}
