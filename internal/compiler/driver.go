package compiler

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/arnavsurve/tiny/internal/compiler/ast"
	"github.com/arnavsurve/tiny/internal/compiler/diag"
	"github.com/arnavsurve/tiny/internal/compiler/lexer"
	"github.com/arnavsurve/tiny/internal/compiler/parser"
	"github.com/arnavsurve/tiny/internal/compiler/source"
	"github.com/arnavsurve/tiny/internal/compiler/token"
	"github.com/arnavsurve/tiny/internal/config"
	"github.com/arnavsurve/tiny/internal/logging"
)

// SourceExt is the extension required of source files.
const SourceExt = ".tny"

// Driver wires a source, the scanner and the parser together according to
// the configured options.
type Driver struct {
	Options config.Options
	Listing io.Writer    // trace output; nil discards it
	Sink    diag.Sink    // optional extra receiver of syntax errors
	Logger  *slog.Logger // nil discards logs
}

type Result struct {
	Program     *ast.Program
	Diagnostics []diag.Diagnostic
}

// HasErrors reports whether any syntax error was found.
func (r *Result) HasErrors() bool {
	return len(r.Diagnostics) > 0
}

// ParseFile parses the file at path. The returned error is an *diag.ErrSyntax
// when the file was read but had syntax errors; the Result is still returned
// so the partial tree can be inspected.
func (d *Driver) ParseFile(path string) (*Result, error) {
	f, err := openSource(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return d.Parse(path, f)
}

// Parse parses src, naming it name in logs.
func (d *Driver) Parse(name string, src io.Reader) (*Result, error) {
	logger := d.logger().With("source", name)
	rs := source.NewReaderSource(src)
	var list diag.List

	p := parser.New(d.newLexer(rs), diag.Tee(&list, d.Sink), d.parserOptions()...)

	logger.Debug("parse started", "entry", d.Options.Entry)
	var prog *ast.Program
	if d.Options.Entry == config.EntryStatements {
		prog = p.ParseStatements()
	} else {
		prog = p.Parse()
	}
	if err := rs.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	res := &Result{Program: prog, Diagnostics: list.Diagnostics()}
	logger.Info("parse finished",
		"declarations", len(prog.Declarations),
		"statements", len(prog.Statements),
		"errors", list.Len())
	return res, list.Err()
}

// ScanFile returns every token of the file at path, EOF included.
func (d *Driver) ScanFile(path string) ([]token.Token, error) {
	f, err := openSource(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return d.Scan(path, f)
}

func (d *Driver) Scan(name string, src io.Reader) ([]token.Token, error) {
	rs := source.NewReaderSource(src)
	toks := d.newLexer(rs).Tokens()
	if err := rs.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	d.logger().Debug("scan finished", "source", name, "tokens", len(toks))
	return toks, nil
}

func (d *Driver) newLexer(src source.LineSource) *lexer.Lexer {
	var opts []lexer.Option
	if d.Options.EchoSource {
		opts = append(opts, lexer.WithEchoSource(d.listing()))
	}
	if d.Options.TraceScan {
		opts = append(opts, lexer.WithTraceScan(d.listing()))
	}
	return lexer.New(src, opts...)
}

func (d *Driver) parserOptions() []parser.Option {
	if d.Options.TraceParse {
		return []parser.Option{parser.WithTraceParse(d.listing())}
	}
	return nil
}

func (d *Driver) listing() io.Writer {
	if d.Listing == nil {
		return io.Discard
	}
	return d.Listing
}

func (d *Driver) logger() *slog.Logger {
	if d.Logger == nil {
		return logging.Discard()
	}
	return d.Logger
}

func validateExtension(path string) error {
	if filepath.Ext(path) != SourceExt {
		return fmt.Errorf("source must have %s extension", SourceExt)
	}
	return nil
}

func openSource(path string) (*os.File, error) {
	if err := validateExtension(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	return f, nil
}
