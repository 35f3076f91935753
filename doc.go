/*
Package earley defines the external token-stream collaborator contract for
the Earley parsing engine implemented by the sibling packages grammar,
chart, forest and ebnf.

A Grammar (package grammar) is built once, a TokenStream is pulled to
completion by chart.Recognize, and the resulting Chart is walked by
forest.Forest to produce one or all parse trees.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 the earley project authors
*/
package earley
