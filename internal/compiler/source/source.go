package source

import (
	"bufio"
	"io"
	"strings"
)

// LineSource supplies source text one line at a time. ok is false once the
// input is exhausted. A line may keep or drop its trailing newline; either
// way the end of a line ends any token in progress.
type LineSource interface {
	ReadLine() (line string, ok bool)
}

// ReaderSource reads lines from an io.Reader. Every line keeps its trailing
// newline except a final line that has none in the input.
type ReaderSource struct {
	r   *bufio.Reader
	err error
}

func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: bufio.NewReader(r)}
}

func (s *ReaderSource) ReadLine() (string, bool) {
	if s.err != nil {
		return "", false
	}
	line, err := s.r.ReadString('\n')
	if err != nil {
		s.err = err
		// A trailing line without newline is still delivered.
		return line, line != ""
	}
	return line, true
}

// Err returns the read error that ended the input, or nil on a clean EOF.
func (s *ReaderSource) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

func NewStringSource(src string) *ReaderSource {
	return NewReaderSource(strings.NewReader(src))
}
