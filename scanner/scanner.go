// Package scanner provides string-boundary-aware scanning of C++ source
// text for the line-oriented C++ to Python converter. It encapsulates the
// tracking of double-quoted string literals, single-quoted character
// literals, line comments, and escape sequences, so callers counting
// braces or semicolons don't re-implement this logic.
package scanner

import "strings"

// CodeScanner iterates byte-by-byte over source text, tracking string
// and character literal boundaries, escape sequences, and // comments.
// Callers check InLiteral() or InComment() instead of maintaining their
// own inString/escaped flags.
//
// InLiteral() returns true for the entire literal span including both
// opening and closing delimiters.
type CodeScanner struct {
	src       string
	pos       int
	line      int
	inStr     bool
	inChar    bool
	inComment bool
	escaped   bool
	closing   bool // set when a closing delimiter was just processed
}

// New creates a CodeScanner for the given source text.
// Call Next() to advance to the first byte.
func New(src string) *CodeScanner {
	return &CodeScanner{src: src, pos: -1, line: 1}
}

// Next advances to the next byte, updating literal/escape state.
// Returns the byte and true, or (0, false) at end of input.
func (s *CodeScanner) Next() (byte, bool) {
	s.closing = false
	s.pos++
	if s.pos >= len(s.src) {
		return 0, false
	}
	ch := s.src[s.pos]
	if ch == '\n' {
		s.line++
		s.inComment = false
		s.escaped = false
		return ch, true
	}

	if s.inComment {
		return ch, true
	}
	if s.escaped {
		s.escaped = false
		return ch, true
	}
	if ch == '\\' && (s.inStr || s.inChar) {
		s.escaped = true
		return ch, true
	}

	switch {
	case ch == '"' && !s.inChar:
		if s.inStr {
			s.closing = true
		}
		s.inStr = !s.inStr
	case ch == '\'' && !s.inStr:
		if s.inChar {
			s.closing = true
		}
		s.inChar = !s.inChar
	case ch == '/' && !s.inStr && !s.inChar:
		if s.pos+1 < len(s.src) && s.src[s.pos+1] == '/' {
			s.inComment = true
		}
	}
	return ch, true
}

// InLiteral reports whether the scanner is inside a string or character
// literal, including the delimiters themselves.
func (s *CodeScanner) InLiteral() bool {
	return s.inStr || s.inChar || s.closing
}

// InComment reports whether the scanner is inside a // line comment.
func (s *CodeScanner) InComment() bool {
	return s.inComment
}

// Line returns the current 1-based line number.
func (s *CodeScanner) Line() int {
	return s.line
}

// CountOutsideLiterals counts occurrences of ch in src that are not
// inside string/character literals or line comments.
func CountOutsideLiterals(src string, ch byte) int {
	n := 0
	s := New(src)
	for b, ok := s.Next(); ok; b, ok = s.Next() {
		if b == ch && !s.InLiteral() && !s.InComment() {
			n++
		}
	}
	return n
}

// SplitStatements breaks C++ source into one statement or block marker
// per line: a line break is inserted after each ';', '{', and '}' that
// sits outside literals and comments. Existing newlines are preserved.
// Blank results are dropped and each line is trimmed.
func SplitStatements(src string) []string {
	var sb strings.Builder
	s := New(src)
	for b, ok := s.Next(); ok; b, ok = s.Next() {
		sb.WriteByte(b)
		if (b == ';' || b == '{' || b == '}') && !s.InLiteral() && !s.InComment() {
			sb.WriteByte('\n')
		}
	}
	var out []string
	for _, line := range strings.Split(sb.String(), "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, strings.TrimSpace(line))
		}
	}
	return out
}
