package ebnf

import (
	"fmt"
	"io"

	"github.com/go-earley/earley/grammar"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key "earley.ebnf".
func tracer() tracing.Trace {
	return tracing.Select("earley.ebnf")
}

// Compile reads an EBNF grammar description from src and returns a
// grammar.Builder with every production desugared into flat BNF rules,
// plus the name of the first production encountered (a natural default
// start symbol). filename is used only for error messages.
//
// Terminals introduced by quoted string literals are fully declared,
// matched by lexeme equality. Terminals introduced by an "@name"
// identifier are left undeclared: the caller must call
// builder.Terminal(name, predicate) for each such name before calling
// Build, since EBNF text alone cannot express an arbitrary predicate
// (e.g. "is this lexeme a run of digits").
func Compile(filename string, src io.Reader) (*grammar.Builder, string, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", fmt.Errorf("ebnf: reading %s: %w", filename, err)
	}
	tracer().Debugf("compiling EBNF source %s (%d bytes)", filename, len(data))

	root, err := parse(string(data))
	if err != nil {
		return nil, "", fmt.Errorf("ebnf: parsing %s: %w", filename, err)
	}
	b, first, err := desugar(root)
	if err != nil {
		return nil, "", fmt.Errorf("ebnf: desugaring %s: %w", filename, err)
	}
	return b, first, nil
}
