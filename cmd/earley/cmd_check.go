package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/go-earley/earley/ebnf"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <grammar.ebnf>",
		Short: "Compile an EBNF grammar file and report any errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("check: %w", err)
			}
			defer f.Close()

			b, start, err := ebnf.Compile(path, f)
			if err != nil {
				return fmt.Errorf("check: %w", err)
			}
			if _, err := b.Build(start); err != nil {
				pterm.Warning.Printfln("grammar desugared but does not build standalone (likely references external terminals): %v", err)
				return nil
			}
			pterm.Success.Printfln("%s: OK, start symbol %q", path, start)
			return nil
		},
	}
}
