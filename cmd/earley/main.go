/*
Command earley is a small CLI exercising the whole pipeline: compiling an
EBNF grammar file, scanning an input file with package token/simplescan,
recognizing it with package chart, and reporting the result.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 the earley project authors
*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// tracerKeys lists every tracer this module selects, for --trace.
var tracerKeys = []string{"earley.chart", "earley.ebnf", "earley.simplescan"}

func main() {
	var tlevel string
	root := &cobra.Command{
		Use:           "earley",
		Short:         "Compile and run Earley grammars",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := tracing.TraceLevelFromString(tlevel)
			for _, key := range tracerKeys {
				tracing.Select(key).SetTraceLevel(level)
			}
		},
	}
	root.PersistentFlags().StringVar(&tlevel, "trace", "Error", "trace level [Debug|Info|Error]")
	root.AddCommand(newCheckCmd())
	root.AddCommand(newParseCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
