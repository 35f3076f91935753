package grammar

import "fmt"

// UnknownSymbolError reports a rule head or rule body referring to a
// name that was never declared via Builder.Terminal/NonTerminal. An
// undeclared start symbol is reported as BadStartError instead.
type UnknownSymbolError struct {
	Name string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("grammar: unknown symbol %q", e.Name)
}

// DuplicateSymbolError reports Terminal/NonTerminal being called twice for
// the same name. A name is a single declaration, not a family of
// compatible ones: predicates are closures and cannot be compared for
// equivalence, so redeclaring a name is always rejected.
type DuplicateSymbolError struct {
	Name string
}

func (e *DuplicateSymbolError) Error() string {
	return fmt.Sprintf("grammar: symbol %q already declared", e.Name)
}

// BadRuleHeadError reports a rule whose head names a terminal symbol.
// Only non-terminals may head a production.
type BadRuleHeadError struct {
	Name string
}

func (e *BadRuleHeadError) Error() string {
	return fmt.Sprintf("grammar: rule head %q is a terminal, not a non-terminal", e.Name)
}

// BadStartError reports Build being called with a start symbol name that
// is not a declared non-terminal.
type BadStartError struct {
	Name string
}

func (e *BadStartError) Error() string {
	return fmt.Sprintf("grammar: start symbol %q is not a declared non-terminal", e.Name)
}
