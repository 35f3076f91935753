package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/go-earley/earley"
	"github.com/go-earley/earley/chart"
	"github.com/go-earley/earley/ebnf"
	"github.com/go-earley/earley/grammar"
	"github.com/go-earley/earley/token/simplescan"
)

func newParseCmd() *cobra.Command {
	var start string
	cmd := &cobra.Command{
		Use:   "parse <grammar.ebnf> <input>",
		Short: "Compile a grammar, scan an input file with the demo scanner, and recognize it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			grammarPath, inputPath := args[0], args[1]

			gf, err := os.Open(grammarPath)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			defer gf.Close()

			b, inferredStart, err := ebnf.Compile(grammarPath, gf)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			declareScannerTerminals(b)

			if start == "" {
				start = inferredStart
			}
			g, err := b.Build(start)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			in, err := os.Open(inputPath)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			defer in.Close()

			sc := simplescan.New(inputPath, in, simplescan.SkipComments(true))
			c, err := chart.Recognize(g, retypeLiterals(g, sc))
			if err != nil {
				pterm.Error.Printfln("rejected: %v", err)
				return err
			}
			roots := c.ParseTrees(g)
			pterm.Success.Printfln("accepted: %d token(s), %d top-level derivation(s)", len(c.Tokens), len(roots))
			return nil
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "start symbol (defaults to the grammar's first production)")
	return cmd
}

// retypeLiterals adapts the demo scanner's category-typed tokens to a
// compiled EBNF grammar: a quoted literal in the grammar becomes a
// terminal named by its own text, so a token whose lexeme names such a
// terminal is retyped to the lexeme. Everything else keeps the scanner's
// category name (Ident, Int, ...), matching "@"-declared terminals.
func retypeLiterals(g *grammar.Grammar, ts earley.TokenStream) earley.TokenStream {
	return &literalRetyper{g: g, ts: ts}
}

type literalRetyper struct {
	g  *grammar.Grammar
	ts earley.TokenStream
}

func (r *literalRetyper) Next() (earley.Token, bool) {
	tok, ok := r.ts.Next()
	if !ok {
		return nil, false
	}
	if sym, found := r.g.Symbol(tok.Lexeme()); found && sym.IsTerminal() {
		return earley.SimpleToken{Type_: sym.Name, Text: tok.Lexeme(), Extent: tok.Span()}, true
	}
	return tok, true
}

// declareScannerTerminals declares a terminal, with a lexical heuristic
// predicate, for each token category of package token/simplescan other
// than Other that the compiled grammar has not already declared, whether
// or not the grammar references it via "@name".
func declareScannerTerminals(b *grammar.Builder) {
	for name, pred := range map[string]grammar.Predicate{
		simplescan.Ident:   looksLikeIdent,
		simplescan.Int:     looksLikeInt,
		simplescan.Float:   looksLikeFloat,
		simplescan.Char:    looksLikeChar,
		simplescan.String:  looksLikeQuotedString,
		simplescan.Comment: looksLikeComment,
	} {
		if !b.Declared(name) {
			b.Terminal(name, pred)
		}
	}
}

func looksLikeIdent(l string) bool {
	if l == "" {
		return false
	}
	for i, r := range l {
		isAlpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
		isDigit := r >= '0' && r <= '9'
		if i == 0 && !isAlpha {
			return false
		}
		if i > 0 && !isAlpha && !isDigit {
			return false
		}
	}
	return true
}

func looksLikeInt(l string) bool {
	_, err := strconv.ParseInt(l, 10, 64)
	return err == nil
}

func looksLikeFloat(l string) bool {
	_, err := strconv.ParseFloat(l, 64)
	return err == nil
}

func looksLikeChar(l string) bool {
	return len(l) >= 3 && l[0] == '\'' && l[len(l)-1] == '\''
}

func looksLikeQuotedString(l string) bool {
	return len(l) >= 2 && l[0] == '"' && l[len(l)-1] == '"'
}

func looksLikeComment(l string) bool {
	return len(l) >= 2 && (l[:2] == "//" || l[:2] == "/*")
}
