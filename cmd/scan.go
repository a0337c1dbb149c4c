package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arnavsurve/tiny/internal/compiler/token"
)

// scan: print the token stream
var ScanCmd = &cobra.Command{
	Use:   "scan [file.tny]",
	Short: "Print the tokens of a Tiny source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDriver(cmd)
		if err != nil {
			return err
		}
		// The listing trace already prints every token.
		traced := d.Options.TraceScan
		toks, err := d.ScanFile(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		bad := 0
		for _, tok := range toks {
			if !traced {
				fmt.Fprintf(out, "\t%d: %s\n", tok.Line, tok)
			}
			if tok.Kind == token.Error || tok.Kind == token.UnterminatedString {
				bad++
			}
		}
		if bad > 0 {
			return fmt.Errorf("%d lexical errors in %s", bad, args[0])
		}
		return nil
	},
}
