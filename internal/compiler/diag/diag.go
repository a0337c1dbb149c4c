package diag

import (
	"fmt"
	"io"
	"strings"
)

// Sink receives syntax errors as they are found.
type Sink interface {
	Report(line int, msg string)
}

type Diagnostic struct {
	Line    int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("Syntax error at line %d: %s", d.Line, d.Message)
}

// List collects diagnostics for one parse session. A non-empty List is the
// error flag later phases check before trusting the tree.
type List struct {
	items []Diagnostic
}

func (l *List) Report(line int, msg string) {
	l.items = append(l.items, Diagnostic{Line: line, Message: msg})
}

func (l *List) HasErrors() bool {
	return len(l.items) > 0
}

func (l *List) Diagnostics() []Diagnostic {
	return l.items
}

func (l *List) Len() int {
	return len(l.items)
}

// Err returns an *ErrSyntax holding every diagnostic, or nil when none were
// reported.
func (l *List) Err() error {
	if !l.HasErrors() {
		return nil
	}
	return &ErrSyntax{Diagnostics: append([]Diagnostic(nil), l.items...)}
}

type ErrSyntax struct {
	Diagnostics []Diagnostic
}

func (e *ErrSyntax) Error() string {
	if len(e.Diagnostics) == 1 {
		return e.Diagnostics[0].String()
	}
	msgs := make([]string, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		msgs[i] = d.String()
	}
	return fmt.Sprintf("%d syntax errors:\n%s", len(e.Diagnostics), strings.Join(msgs, "\n"))
}

// Writer returns a sink that prints each diagnostic to w in listing form.
func Writer(w io.Writer) Sink {
	return writerSink{w: w}
}

type writerSink struct {
	w io.Writer
}

func (s writerSink) Report(line int, msg string) {
	fmt.Fprintf(s.w, "\n>>> %s\n", Diagnostic{Line: line, Message: msg})
}

// Tee fans a report out to every non-nil sink.
func Tee(sinks ...Sink) Sink {
	return teeSink(sinks)
}

type teeSink []Sink

func (t teeSink) Report(line int, msg string) {
	for _, s := range t {
		if s != nil {
			s.Report(line, msg)
		}
	}
}
