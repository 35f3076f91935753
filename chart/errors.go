package chart

import "fmt"

// UnexpectedTokenError reports that, at a given input position, no
// terminal expected by the grammar matched the next token's lexeme.
type UnexpectedTokenError struct {
	Position int
	Lexeme   string
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("chart: unexpected token %q at position %d", e.Lexeme, e.Position)
}

// UnexpectedEndError reports that the token stream was exhausted without
// the grammar's start symbol having been fully recognized over the whole
// input.
type UnexpectedEndError struct {
	Position int
}

func (e *UnexpectedEndError) Error() string {
	return fmt.Sprintf("chart: unexpected end of input at position %d, no complete parse", e.Position)
}
