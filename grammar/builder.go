package grammar

// Builder assembles a Grammar one declaration at a time: terminals,
// non-terminals, then rules over those symbols, finished off by Build
// with a chosen start symbol. Errors are recorded and returned by Build,
// so call chains need not check after every declaration.
type Builder struct {
	symbols map[string]Symbol
	order   []string // declaration order, Build copies symbols in this order
	rules   []*ruleSpec
	err     error
}

type ruleSpec struct {
	head string
	body []string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{symbols: make(map[string]Symbol)}
}

// Terminal declares a terminal symbol named name, matched against
// candidate lexemes by match. It is an error to declare the same name
// twice.
func (b *Builder) Terminal(name string, match Predicate) *Builder {
	b.declare(Symbol{Name: name, Term: true, Match: match})
	return b
}

// NonTerminal declares a non-terminal symbol named name. It is an error
// to declare the same name twice.
func (b *Builder) NonTerminal(name string) *Builder {
	b.declare(Symbol{Name: name, Term: false})
	return b
}

func (b *Builder) declare(s Symbol) {
	if b.err != nil {
		return
	}
	if _, exists := b.symbols[s.Name]; exists {
		b.err = &DuplicateSymbolError{Name: s.Name}
		return
	}
	b.symbols[s.Name] = s
	b.order = append(b.order, s.Name)
}

// Declared reports whether name has already been declared via Terminal
// or NonTerminal, letting a caller conditionally declare a symbol without
// risking a DuplicateSymbolError.
func (b *Builder) Declared(name string) bool {
	_, ok := b.symbols[name]
	return ok
}

// Rule adds a production head -> body. body may be empty, declaring that
// head derives the empty string. Symbols are resolved against prior
// Terminal/NonTerminal declarations at Build time, so Rule may be called
// before or after the symbols it references are declared.
func (b *Builder) Rule(head string, body ...string) *Builder {
	if b.err != nil {
		return b
	}
	b.rules = append(b.rules, &ruleSpec{head: head, body: append([]string(nil), body...)})
	return b
}

// Build resolves every declared rule against the declared symbols and
// returns the finished Grammar rooted at the non-terminal named start.
// Build returns the first error recorded by any prior Terminal,
// NonTerminal or Rule call, if any; otherwise it validates that start and
// every symbol named in a rule body was declared.
func (b *Builder) Build(start string) (*Grammar, error) {
	if b.err != nil {
		return nil, b.err
	}
	startSym, ok := b.symbols[start]
	if !ok || startSym.Term {
		return nil, &BadStartError{Name: start}
	}

	rules := make([]*Rule, 0, len(b.rules))
	byHead := make(map[string][]*Rule)
	for i, spec := range b.rules {
		head, ok := b.symbols[spec.head]
		if !ok {
			return nil, &UnknownSymbolError{Name: spec.head}
		}
		if head.Term {
			return nil, &BadRuleHeadError{Name: spec.head}
		}
		body := make([]Symbol, len(spec.body))
		for j, name := range spec.body {
			sym, ok := b.symbols[name]
			if !ok {
				return nil, &UnknownSymbolError{Name: name}
			}
			body[j] = sym
		}
		r := &Rule{Head: head, Body: body, id: i}
		rules = append(rules, r)
		byHead[head.Name] = append(byHead[head.Name], r)
	}

	symbols := make(map[string]Symbol, len(b.order))
	for _, name := range b.order {
		symbols[name] = b.symbols[name]
	}

	g := &Grammar{
		Start:   startSym,
		symbols: symbols,
		rules:   rules,
		byHead:  byHead,
	}
	g.nullable = computeNullable(rules)
	return g, nil
}
