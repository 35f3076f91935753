package ebnf

import (
	"fmt"

	"github.com/go-earley/earley/grammar"
)

// desugar walks a parsed "prodlist" AST root and flattens it into a
// grammar.Builder: alternation becomes multiple grammar.Builder.Rule
// calls for the same head, and optional/repetition/group constructs each
// get a fresh "<Uniq-N>" auxiliary non-terminal, numbered in the order
// they are first encountered, scanning productions top to bottom and,
// within a production, its alternatives left to right, recursing into
// nested constructs before continuing the enclosing sequence.
//
// Desugaring policy for each construct:
//
//	[ Alt ]   ->  aux -> Alt-alternatives | ε
//	{ Alt }   ->  aux -> Alt-alternatives aux | ε   (right-recursive)
//	( Alt )   ->  aux -> Alt-alternatives
//
// desugar returns the name of the first production encountered, which
// callers typically use as the grammar's start symbol.
func desugar(root node) (*grammar.Builder, string, error) {
	b := grammar.NewBuilder()
	declaredTerminals := make(map[string]bool)
	declaredHeads := make(map[string]bool)
	counter := 0
	var first string

	for i, prod := range root.children {
		if i == 0 {
			first = prod.text
		}
		if !declaredHeads[prod.text] {
			b.NonTerminal(prod.text)
			declaredHeads[prod.text] = true
		}
		alt := prod.children[0]
		for _, seq := range alt.children {
			syms, err := resolveSeq(seq, b, declaredTerminals, &counter)
			if err != nil {
				return nil, "", err
			}
			b.Rule(prod.text, syms...)
		}
	}
	return b, first, nil
}

func nextAux(counter *int) string {
	*counter++
	return fmt.Sprintf("<Uniq-%d>", *counter)
}

func resolveSeq(seq node, b *grammar.Builder, declaredTerminals map[string]bool, counter *int) ([]string, error) {
	syms := make([]string, 0, len(seq.children))
	for _, term := range seq.children {
		name, err := resolveTerm(term, b, declaredTerminals, counter)
		if err != nil {
			return nil, err
		}
		syms = append(syms, name)
	}
	return syms, nil
}

func resolveTerm(t node, b *grammar.Builder, declaredTerminals map[string]bool, counter *int) (string, error) {
	switch t.kind {
	case "ident":
		// A reference to another production's non-terminal, resolved at
		// Build time; forward references are fine.
		return t.text, nil
	case "atident":
		// An externally-supplied terminal: the caller must declare it
		// with b.Terminal(name, predicate) before calling Build.
		return t.text, nil
	case "string":
		if !declaredTerminals[t.text] {
			literal := t.text
			b.Terminal(literal, func(l string) bool { return l == literal })
			declaredTerminals[t.text] = true
		}
		return t.text, nil
	case "opt":
		aux := nextAux(counter)
		b.NonTerminal(aux)
		for _, seq := range t.children[0].children {
			syms, err := resolveSeq(seq, b, declaredTerminals, counter)
			if err != nil {
				return "", err
			}
			b.Rule(aux, syms...)
		}
		b.Rule(aux)
		return aux, nil
	case "rep":
		aux := nextAux(counter)
		b.NonTerminal(aux)
		for _, seq := range t.children[0].children {
			syms, err := resolveSeq(seq, b, declaredTerminals, counter)
			if err != nil {
				return "", err
			}
			b.Rule(aux, append(syms, aux)...)
		}
		b.Rule(aux)
		return aux, nil
	case "group":
		aux := nextAux(counter)
		b.NonTerminal(aux)
		for _, seq := range t.children[0].children {
			syms, err := resolveSeq(seq, b, declaredTerminals, counter)
			if err != nil {
				return "", err
			}
			b.Rule(aux, syms...)
		}
		return aux, nil
	default:
		return "", fmt.Errorf("ebnf: internal error: unexpected AST node kind %q", t.kind)
	}
}
