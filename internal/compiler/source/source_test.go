package source

import (
	"errors"
	"testing"
	"testing/iotest"
)

func readAll(s LineSource) []string {
	var lines []string
	for {
		line, ok := s.ReadLine()
		if !ok {
			return lines
		}
		lines = append(lines, line)
	}
}

func TestReadLines(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"x", []string{"x"}},
		{"x\n", []string{"x\n"}},
		{"a\nb\n\nc", []string{"a\n", "b\n", "\n", "c"}},
	}
	for _, tt := range tests {
		got := readAll(NewStringSource(tt.input))
		if len(got) != len(tt.want) {
			t.Fatalf("%q: expected %d lines, got=%d %q", tt.input, len(tt.want), len(got), got)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%q: line %d expected=%q, got=%q", tt.input, i, tt.want[i], got[i])
			}
		}
	}
}

func TestReadErrorEndsInput(t *testing.T) {
	boom := errors.New("boom")
	s := NewReaderSource(iotest.ErrReader(boom))
	if _, ok := s.ReadLine(); ok {
		t.Fatalf("expected no line from a failing reader")
	}
	if !errors.Is(s.Err(), boom) {
		t.Errorf("Err() expected=%v, got=%v", boom, s.Err())
	}
	if _, ok := s.ReadLine(); ok {
		t.Errorf("source should stay exhausted")
	}
}

func TestCleanEOFHasNoError(t *testing.T) {
	s := NewStringSource("x\n")
	readAll(s)
	if s.Err() != nil {
		t.Errorf("Err() expected nil, got=%v", s.Err())
	}
}
