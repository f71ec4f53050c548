package token

import (
	"strings"
)

// Scanner walks a fully-read document line by line. The grammars this
// module parses are line oriented; field meaning never spans a line
// boundary except inside quoted marks, which the caller reassembles
// with Next.
type Scanner struct {
	d    []byte
	off  int
	line int
	last string
}

func NewScanner(d []byte) *Scanner {
	return &Scanner{d: d}
}

// Next returns the next raw line without its terminator. The second
// result is false at end of input.
func (s *Scanner) Next() (string, bool) {
	if s.off >= len(s.d) {
		return "", false
	}
	start := s.off
	end := start
	for end < len(s.d) && s.d[end] != '\n' {
		end++
	}
	s.off = end + 1
	s.line++
	ln := string(s.d[start:end])
	ln = strings.TrimSuffix(ln, "\r")
	s.last = ln
	return ln, true
}

// NextContent returns the next line that is not blank, with
// surrounding whitespace trimmed. Blank lines between blocks carry no
// meaning in either TextGrid form.
func (s *Scanner) NextContent() (string, bool) {
	for {
		ln, ok := s.Next()
		if !ok {
			return "", false
		}
		trimmed := strings.TrimSpace(ln)
		if trimmed == "" {
			continue
		}
		return trimmed, true
	}
}

// Line reports the 1-based line number of the line most recently
// returned, 0 before any read.
func (s *Scanner) Line() int {
	return s.line
}

// Pos returns the position of the line most recently returned.
func (s *Scanner) Pos() *Pos {
	return &Pos{Line: s.line, Text: s.last}
}

// AtEOF reports whether the scanner is exhausted.
func (s *Scanner) AtEOF() bool {
	return s.off >= len(s.d)
}
