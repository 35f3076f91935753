package forest

import (
	"strconv"
	"testing"

	"github.com/go-earley/earley"
	"github.com/go-earley/earley/chart"
	"github.com/go-earley/earley/grammar"
)

func tk(name, lexeme string) earley.Token {
	return earley.SimpleToken{Type_: name, Text: lexeme}
}

func buildSumGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	b := grammar.NewBuilder()
	b.Terminal("num", func(l string) bool {
		_, err := strconv.Atoi(l)
		return err == nil
	})
	b.Terminal("+", func(l string) bool { return l == "+" })
	b.NonTerminal("Sum")
	b.Rule("Sum", "Sum", "+", "num")
	b.Rule("Sum", "num")
	g, err := b.Build("Sum")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return g
}

func recognizeTokens(t *testing.T, g *grammar.Grammar, toks ...earley.Token) *chart.Chart {
	t.Helper()
	c, err := chart.Recognize(g, earley.NewSliceTokenStream(toks))
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	return c
}

func sumTokens(lexemes ...string) []earley.Token {
	toks := make([]earley.Token, len(lexemes))
	for i, l := range lexemes {
		if l == "+" {
			toks[i] = tk("+", l)
		} else {
			toks[i] = tk("num", l)
		}
	}
	return toks
}

func sumForest() *Forest[int] {
	f := New(func(terminal, lexeme string) int {
		if terminal == "num" {
			n, _ := strconv.Atoi(lexeme)
			return n
		}
		return 0
	})
	f.Action("Sum -> Sum + num", func(args []int) int { return args[0] + args[2] })
	f.Action("Sum -> num", func(args []int) int { return args[0] })
	return f
}

func TestEvalRecursiveSum(t *testing.T) {
	g := buildSumGrammar(t)
	c := recognizeTokens(t, g, sumTokens("1", "+", "2", "+", "3")...)
	roots := c.ParseTrees(g)
	f := sumForest()
	got, err := f.EvalRecursive(roots)
	if err != nil {
		t.Fatalf("EvalRecursive: %v", err)
	}
	if got != 6 {
		t.Fatalf("got %d, want 6", got)
	}
}

func TestEvalIterativeMatchesRecursive(t *testing.T) {
	g := buildSumGrammar(t)
	c := recognizeTokens(t, g, sumTokens("1", "+", "2", "+", "3", "+", "4")...)
	roots := c.ParseTrees(g)
	f := sumForest()
	got, err := f.Eval(roots)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if got != 10 {
		t.Fatalf("got %d, want 10", got)
	}
	rec, err := f.EvalRecursive(roots)
	if err != nil {
		t.Fatalf("EvalRecursive: %v", err)
	}
	if got != rec {
		t.Fatalf("Eval = %d, EvalRecursive = %d; the two modes must agree", got, rec)
	}
}

// A long left-recursive chain: Eval must reduce it without growing the
// call stack with the input.
func TestEvalDeepLeftRecursion(t *testing.T) {
	g := buildSumGrammar(t)
	n := 2000
	lexemes := make([]string, 0, 2*n-1)
	for i := 0; i < n; i++ {
		if i > 0 {
			lexemes = append(lexemes, "+")
		}
		lexemes = append(lexemes, "1")
	}
	c := recognizeTokens(t, g, sumTokens(lexemes...)...)
	roots := c.ParseTrees(g)
	f := sumForest()
	got, err := f.Eval(roots)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if got != n {
		t.Fatalf("got %d, want %d", got, n)
	}
}

func TestMissingAction(t *testing.T) {
	g := buildSumGrammar(t)
	c := recognizeTokens(t, g, sumTokens("1")...)
	roots := c.ParseTrees(g)
	f := New(func(terminal, lexeme string) int { return 0 })
	_, err := f.Eval(roots)
	if err == nil {
		t.Fatal("expected MissingActionError")
	}
	if _, ok := err.(*MissingActionError); !ok {
		t.Fatalf("expected *MissingActionError, got %T: %v", err, err)
	}
}

func TestEvalAllRecursiveAmbiguous(t *testing.T) {
	b := grammar.NewBuilder()
	b.Terminal("num", func(l string) bool { return l == "1" })
	b.Terminal("+", func(l string) bool { return l == "+" })
	b.NonTerminal("Sum")
	b.Rule("Sum", "Sum", "+", "Sum")
	b.Rule("Sum", "num")
	g, err := b.Build("Sum")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	c := recognizeTokens(t, g, sumTokens("1", "+", "1", "+", "1")...)
	roots := c.ParseTrees(g)

	f := New(func(terminal, lexeme string) string {
		if terminal == "num" {
			return lexeme
		}
		return ""
	})
	f.Action("Sum -> Sum + Sum", func(args []string) string { return "(" + args[0] + "+" + args[2] + ")" })
	f.Action("Sum -> num", func(args []string) string { return args[0] })

	all, err := f.EvalAllRecursive(roots)
	if err != nil {
		t.Fatalf("EvalAllRecursive: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 distinct trees, got %d: %v", len(all), all)
	}
	if all[0] == all[1] {
		t.Fatalf("expected 2 distinct parenthesizations, got duplicates: %v", all)
	}
}

// With S -> A A and A -> x | ε, the empty input has exactly one tree and
// "x" has exactly two: x bound to the first A or to the second.
func TestEvalAllRecursiveNullable(t *testing.T) {
	b := grammar.NewBuilder()
	b.Terminal("x", func(l string) bool { return l == "x" })
	b.NonTerminal("S")
	b.NonTerminal("A")
	b.Rule("S", "A", "A")
	b.Rule("A", "x")
	b.Rule("A") // A -> ε
	g, err := b.Build("S")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	f := New(func(terminal, lexeme string) string { return lexeme })
	f.Action("S -> A A", func(args []string) string { return "[" + args[0] + "," + args[1] + "]" })
	f.Action("A -> x", func(args []string) string { return args[0] })
	f.Action("A -> ", func(args []string) string { return "ε" })

	c := recognizeTokens(t, g)
	all, err := f.EvalAllRecursive(c.ParseTrees(g))
	if err != nil {
		t.Fatalf("EvalAllRecursive of empty input: %v", err)
	}
	if len(all) != 1 || all[0] != "[ε,ε]" {
		t.Fatalf("empty input: got %v, want exactly [ε,ε]", all)
	}

	c = recognizeTokens(t, g, tk("x", "x"))
	all, err = f.EvalAllRecursive(c.ParseTrees(g))
	if err != nil {
		t.Fatalf("EvalAllRecursive of %q: %v", "x", err)
	}
	if len(all) != 2 {
		t.Fatalf("input %q: got %d tree(s) %v, want 2", "x", len(all), all)
	}
	seen := map[string]bool{all[0]: true, all[1]: true}
	if !seen["[ε,x]"] || !seen["[x,ε]"] {
		t.Fatalf("input %q: got %v, want one ε-then-x and one x-then-ε tree", "x", all)
	}
}
