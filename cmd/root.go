package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arnavsurve/tiny/internal/compiler"
	"github.com/arnavsurve/tiny/internal/config"
	"github.com/arnavsurve/tiny/internal/logging"
)

var (
	cfgFile    string
	echoSource bool
	traceScan  bool
	traceParse bool
	entry      string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "tiny",
	Short: "Tiny CLI: scanner and parser front end",
	Long: `Tiny scans and parses programs written in the TINY language.

Commands:
  scan   Print the token stream of a (.tny) source file
  parse  Parse a (.tny) source file and print its syntax tree
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "options file (.toml, .yaml or .yml)")
	flags.BoolVar(&echoSource, "echo-source", false, "echo source lines as they are read")
	flags.BoolVar(&traceScan, "trace-scan", false, "print each token as it is recognized")
	flags.BoolVar(&traceParse, "trace-parse", false, "print the syntax tree after parsing")
	flags.StringVar(&entry, "entry", config.EntryProgram, "parse entry point: program or statements")
	flags.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	rootCmd.AddCommand(ScanCmd, ParseCmd)
}

// loadOptions layers the options: defaults, environment, config file, then
// flags the user set explicitly.
func loadOptions(cmd *cobra.Command) (config.Options, error) {
	opts, err := config.Resolve(cfgFile)
	if err != nil {
		return opts, err
	}

	flags := cmd.Flags()
	if flags.Changed("echo-source") {
		opts.EchoSource = echoSource
	}
	if flags.Changed("trace-scan") {
		opts.TraceScan = traceScan
	}
	if flags.Changed("trace-parse") {
		opts.TraceParse = traceParse
	}
	if flags.Changed("entry") {
		opts.Entry = entry
	}
	if flags.Changed("log-level") {
		opts.LogLevel = logLevel
	}
	return opts, opts.Validate()
}

func newDriver(cmd *cobra.Command) (*compiler.Driver, error) {
	opts, err := loadOptions(cmd)
	if err != nil {
		return nil, err
	}
	return &compiler.Driver{
		Options: opts,
		Listing: cmd.OutOrStdout(),
		Logger: logging.New(logging.Config{
			Name:   "tiny",
			Level:  opts.LogLevel,
			Output: os.Stderr,
		}),
	}, nil
}
