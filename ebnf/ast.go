package ebnf

import (
	"github.com/go-earley/earley"
	"github.com/go-earley/earley/chart"
	"github.com/go-earley/earley/forest"
)

// node is the single AST type produced by walking the meta-grammar's
// parse forest. Using one sum-type struct (rather than an interface per
// construct) keeps forest.Forest's single type parameter simple.
type node struct {
	kind     string // "prodlist", "production", "alt", "seq", "ident", "atident", "string", "opt", "rep", "group"
	text     string // for "ident" / "atident" / "string"
	children []node
}

func leafNode(terminal, lexeme string) node {
	return node{kind: terminal, text: lexeme}
}

func astForest() *forest.Forest[node] {
	f := forest.New(leafNode)

	f.Action("Grammar -> ProdList", func(a []node) node { return a[0] })
	f.Action("ProdList -> ProdList Production", func(a []node) node {
		return node{kind: "prodlist", children: append(append([]node(nil), a[0].children...), a[1])}
	})
	f.Action("ProdList -> Production", func(a []node) node {
		return node{kind: "prodlist", children: []node{a[0]}}
	})
	f.Action("Production -> "+TokIdent+" "+TokAssign+" Alt "+TokSemi, func(a []node) node {
		return node{kind: "production", text: a[0].text, children: []node{a[2]}}
	})
	f.Action("Alt -> Alt "+TokPipe+" Seq", func(a []node) node {
		return node{kind: "alt", children: append(append([]node(nil), a[0].children...), a[2])}
	})
	f.Action("Alt -> Seq", func(a []node) node {
		return node{kind: "alt", children: []node{a[0]}}
	})
	f.Action("Seq -> Seq Term", func(a []node) node {
		return node{kind: "seq", children: append(append([]node(nil), a[0].children...), a[1])}
	})
	f.Action("Seq -> Term", func(a []node) node {
		return node{kind: "seq", children: []node{a[0]}}
	})
	f.Action("Term -> "+TokIdent, func(a []node) node { return node{kind: "ident", text: a[0].text} })
	f.Action("Term -> "+TokAtom, func(a []node) node { return node{kind: "atident", text: a[0].text[1:]} })
	f.Action("Term -> "+TokString, func(a []node) node {
		txt := a[0].text
		return node{kind: "string", text: txt[1 : len(txt)-1]}
	})
	f.Action("Term -> "+TokLBrack+" Alt "+TokRBrack, func(a []node) node {
		return node{kind: "opt", children: []node{a[1]}}
	})
	f.Action("Term -> "+TokLBrace+" Alt "+TokRBrace, func(a []node) node {
		return node{kind: "rep", children: []node{a[1]}}
	})
	f.Action("Term -> "+TokLParen+" Alt "+TokRParen, func(a []node) node {
		return node{kind: "group", children: []node{a[1]}}
	})
	return f
}

// parse lexes and recognizes src against the meta-grammar, then reduces
// the (unambiguous, for well-formed EBNF) parse forest down to a single
// AST root of kind "prodlist".
func parse(src string) (node, error) {
	var zero node
	toks, err := lex(src)
	if err != nil {
		return zero, err
	}
	g, err := metaGrammar()
	if err != nil {
		return zero, err
	}
	c, err := chart.Recognize(g, earley.NewSliceTokenStream(toks))
	if err != nil {
		return zero, err
	}
	roots := c.ParseTrees(g)
	f := astForest()
	return f.EvalRecursive(roots)
}
