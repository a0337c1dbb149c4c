package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arnavsurve/tiny/internal/compiler/printer"
)

// parse: build and print the syntax tree
var ParseCmd = &cobra.Command{
	Use:   "parse [file.tny]",
	Short: "Parse a Tiny source file and print its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDriver(cmd)
		if err != nil {
			return err
		}
		d.Sink = newStyledSink(cmd.ErrOrStderr())

		res, err := d.ParseFile(args[0])
		if res == nil {
			return err
		}
		// With trace-parse on, the parser has already printed the tree.
		if !d.Options.TraceParse {
			if perr := printer.Print(cmd.OutOrStdout(), res.Program); perr != nil {
				return perr
			}
		}
		if err != nil {
			return fmt.Errorf("%s: %d syntax errors", args[0], len(res.Diagnostics))
		}
		return nil
	},
}
