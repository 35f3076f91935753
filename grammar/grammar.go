package grammar

// Grammar is an immutable, interned context-free grammar: a fixed set of
// terminal and non-terminal symbols, a fixed list of rules, a start
// symbol, and a precomputed nullable set (the symbols that can derive the
// empty string, exposed through DerivesEpsilon). Package chart does not
// consult this set: it handles nullable symbols through zero-width
// completions during closure.
//
// A *Grammar is safe for concurrent read-only use once Builder.Build has
// returned; nothing mutates it afterwards.
type Grammar struct {
	Start    Symbol
	symbols  map[string]Symbol
	rules    []*Rule
	byHead   map[string][]*Rule
	nullable map[string]bool
}

// Symbol looks up a previously declared symbol by name.
func (g *Grammar) Symbol(name string) (Symbol, bool) {
	s, ok := g.symbols[name]
	return s, ok
}

// Rules returns every rule in the grammar, in declaration order.
func (g *Grammar) Rules() []*Rule { return g.rules }

// RulesFor returns the rules whose head is sym, in declaration order.
func (g *Grammar) RulesFor(sym Symbol) []*Rule { return g.byHead[sym.Name] }

// DerivesEpsilon reports whether sym can derive the empty string. This is
// the nullable set computed at Build time by a closure-over-rules fixed
// point (a terminal is never nullable; a non-terminal is nullable if some
// rule for it is empty, or every symbol of some rule for it is nullable).
func (g *Grammar) DerivesEpsilon(sym Symbol) bool {
	if sym.Term {
		return false
	}
	return g.nullable[sym.Name]
}

func computeNullable(rules []*Rule) map[string]bool {
	nullable := make(map[string]bool)
	for {
		changed := false
		for _, r := range rules {
			if nullable[r.Head.Name] {
				continue
			}
			if r.IsEmpty() {
				nullable[r.Head.Name] = true
				changed = true
				continue
			}
			all := true
			for _, s := range r.Body {
				if s.Term || !nullable[s.Name] {
					all = false
					break
				}
			}
			if all {
				nullable[r.Head.Name] = true
				changed = true
			}
		}
		if !changed {
			return nullable
		}
	}
}
