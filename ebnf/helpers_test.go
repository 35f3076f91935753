package ebnf

import (
	"github.com/go-earley/earley"
	"github.com/go-earley/earley/chart"
	"github.com/go-earley/earley/grammar"
)

func chartRecognize(g *grammar.Grammar, toks []earley.Token) (*chart.Chart, error) {
	return chart.Recognize(g, earley.NewSliceTokenStream(toks))
}
