package grammar

import "strings"

// Rule is a single production head -> body. Rules are interned per
// Grammar: within one Grammar, a *Rule pointer is stable for the lifetime
// of the Grammar, which lets package chart use (*Rule, dot, origin, end)
// tuples directly as map keys without a hashing library.
type Rule struct {
	Head Symbol
	Body []Symbol
	id   int // index into Grammar.rules, assigned at Build time
}

// ID returns the rule's index within its owning Grammar. Two rules from
// different Grammars may share an ID; IDs are only meaningful relative to
// one Grammar.
func (r *Rule) ID() int { return r.id }

// IsEmpty reports whether r has an empty body (head -> ε).
func (r *Rule) IsEmpty() bool { return len(r.Body) == 0 }

// String renders the canonical rule string "head -> s1 s2 … sn", with
// "head -> " (trailing space, no symbols) for an empty body. This exact
// form is load-bearing: package forest keys semantic actions by it, and
// package ebnf's auxiliary non-terminals (<Uniq-N>) appear inside it.
func (r *Rule) String() string {
	var b strings.Builder
	b.WriteString(r.Head.Name)
	b.WriteString(" -> ")
	for i, s := range r.Body {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s.Name)
	}
	return b.String()
}
