package ebnf

import (
	"strings"
	"testing"

	"github.com/go-earley/earley"
	"github.com/go-earley/earley/forest"
)

func TestCompileMinimalGrammar(t *testing.T) {
	b, start, err := Compile("minimal.ebnf", strings.NewReader(`Number := "0" ;`))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if start != "Number" {
		t.Fatalf("start = %q, want %q", start, "Number")
	}
	g, err := b.Build(start)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	toks := []earley.Token{earley.SimpleToken{Type_: "0", Text: "0"}}
	_, err = chartRecognize(g, toks)
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
}

func TestCompileLeftRecursiveArithmetic(t *testing.T) {
	src := `expr := Number | expr "+" Number ;`
	b, start, err := Compile("arith.ebnf", strings.NewReader(src))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	b.Terminal("Number", func(l string) bool {
		if l == "" {
			return false
		}
		for _, r := range l {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	})
	g, err := b.Build(start)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	toks := []earley.Token{
		earley.SimpleToken{Type_: "Number", Text: "1"},
		earley.SimpleToken{Type_: "+", Text: "+"},
		earley.SimpleToken{Type_: "Number", Text: "2"},
	}
	if _, err := chartRecognize(g, toks); err != nil {
		t.Fatalf("Recognize: %v", err)
	}
}

// An ambiguous grammar written in EBNF, compiled and evaluated
// end-to-end: three "a"s under S := S S | "a" group in exactly two ways.
func TestCompileAmbiguousGrammarEvalAll(t *testing.T) {
	b, start, err := Compile("ambig.ebnf", strings.NewReader(`S := S S | "a" ;`))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	g, err := b.Build(start)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	toks := []earley.Token{
		earley.SimpleToken{Type_: "a", Text: "a"},
		earley.SimpleToken{Type_: "a", Text: "a"},
		earley.SimpleToken{Type_: "a", Text: "a"},
	}
	c, err := chartRecognize(g, toks)
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}

	f := forest.New(func(terminal, lexeme string) string { return lexeme })
	f.Action("S -> S S", func(args []string) string { return "(" + args[0] + " " + args[1] + ")" })
	f.Action("S -> a", func(args []string) string { return args[0] })
	all, err := f.EvalAllRecursive(c.ParseTrees(g))
	if err != nil {
		t.Fatalf("EvalAllRecursive: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected exactly 2 groupings of three a's, got %d: %v", len(all), all)
	}
	seen := map[string]bool{all[0]: true, all[1]: true}
	if !seen["(a (a a))"] || !seen["((a a) a)"] {
		t.Fatalf("got %v, want left- and right-associative groupings", all)
	}
}

func TestDesugarRepetitionIntroducesAuxNonTerminal(t *testing.T) {
	src := `arg := b { "," b } ;`
	b, start, err := Compile("rep.ebnf", strings.NewReader(src))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	b.Terminal("b", func(l string) bool { return l == "b" })
	g, err := b.Build(start)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// arg -> b <Uniq-1>, repeated ", b" zero or more times.
	toks := []earley.Token{
		earley.SimpleToken{Type_: "b", Text: "b"},
		earley.SimpleToken{Type_: ",", Text: ","},
		earley.SimpleToken{Type_: "b", Text: "b"},
	}
	if _, err := chartRecognize(g, toks); err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	toks = []earley.Token{earley.SimpleToken{Type_: "b", Text: "b"}}
	if _, err := chartRecognize(g, toks); err != nil {
		t.Fatalf("Recognize of bare 'b' (zero repetitions): %v", err)
	}
}

func TestDesugarOptionAcceptsEmpty(t *testing.T) {
	src := `complex := d [ "i" ] ;`
	b, start, err := Compile("opt.ebnf", strings.NewReader(src))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	b.Terminal("d", func(l string) bool { return l == "d" })
	g, err := b.Build(start)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, err := chartRecognize(g, []earley.Token{earley.SimpleToken{Type_: "d", Text: "d"}}); err != nil {
		t.Fatalf("Recognize without optional part: %v", err)
	}
	if _, err := chartRecognize(g, []earley.Token{
		earley.SimpleToken{Type_: "d", Text: "d"},
		earley.SimpleToken{Type_: "i", Text: "i"},
	}); err != nil {
		t.Fatalf("Recognize with optional part: %v", err)
	}
}

func TestLexRejectsLoneColon(t *testing.T) {
	_, err := lex(`A : "x" ;`)
	if err == nil {
		t.Fatal("expected a LexError")
	}
	if _, ok := err.(*LexError); !ok {
		t.Fatalf("expected *LexError, got %T: %v", err, err)
	}
}
