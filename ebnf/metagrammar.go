package ebnf

import (
	"strings"

	"github.com/go-earley/earley/grammar"
)

func isIdentLexeme(l string) bool {
	runes := []rune(l)
	if len(runes) == 0 || !isIdentStart(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !isIdentCont(r) {
			return false
		}
	}
	return true
}

func isAtIdentLexeme(l string) bool {
	return strings.HasPrefix(l, "@") && isIdentLexeme(l[1:])
}

func isStringLexeme(l string) bool {
	if len(l) < 2 {
		return false
	}
	q := l[0]
	return (q == '"' || q == '\'') && l[len(l)-1] == q
}

func punct(text string) grammar.Predicate {
	return func(l string) bool { return l == text }
}

// metaGrammar builds the grammar describing EBNF syntax itself: the
// tokens produced by lex are recognized by running this module's own
// chart/forest engine over a grammar.Grammar, exactly as any other
// client grammar would be.
func metaGrammar() (*grammar.Grammar, error) {
	b := grammar.NewBuilder()
	b.Terminal(TokIdent, isIdentLexeme)
	b.Terminal(TokAtom, isAtIdentLexeme)
	b.Terminal(TokString, isStringLexeme)
	b.Terminal(TokAssign, punct(":="))
	b.Terminal(TokSemi, punct(";"))
	b.Terminal(TokPipe, punct("|"))
	b.Terminal(TokLBrack, punct("["))
	b.Terminal(TokRBrack, punct("]"))
	b.Terminal(TokLBrace, punct("{"))
	b.Terminal(TokRBrace, punct("}"))
	b.Terminal(TokLParen, punct("("))
	b.Terminal(TokRParen, punct(")"))

	b.NonTerminal("Grammar")
	b.NonTerminal("ProdList")
	b.NonTerminal("Production")
	b.NonTerminal("Alt")
	b.NonTerminal("Seq")
	b.NonTerminal("Term")

	b.Rule("Grammar", "ProdList")
	b.Rule("ProdList", "ProdList", "Production")
	b.Rule("ProdList", "Production")
	b.Rule("Production", TokIdent, TokAssign, "Alt", TokSemi)
	b.Rule("Alt", "Alt", TokPipe, "Seq")
	b.Rule("Alt", "Seq")
	b.Rule("Seq", "Seq", "Term")
	b.Rule("Seq", "Term")
	b.Rule("Term", TokIdent)
	b.Rule("Term", TokAtom)
	b.Rule("Term", TokString)
	b.Rule("Term", TokLBrack, "Alt", TokRBrack)
	b.Rule("Term", TokLBrace, "Alt", TokRBrace)
	b.Rule("Term", TokLParen, "Alt", TokRParen)

	return b.Build("Grammar")
}
