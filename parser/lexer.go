package parser

import (
	"fmt"
	"strings"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNewline
	tokIndent
	tokDedent
	tokIdent
	tokKeyword
	tokNumber
	tokString
	tokOp
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokNewline:
		return "newline"
	case tokIndent:
		return "indent"
	case tokDedent:
		return "dedent"
	case tokIdent:
		return "identifier"
	case tokKeyword:
		return "keyword"
	case tokNumber:
		return "number"
	case tokString:
		return "string"
	case tokOp:
		return "operator"
	}
	return "token"
}

type token struct {
	kind tokenKind
	text string
	line int
	col  int
}

// Error is a positioned lexer/parser error.
type Error struct {
	File string
	Line int
	Col  int
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Col, e.Msg)
}

var keywords = map[string]bool{
	"def":    true,
	"return": true,
	"if":     true,
	"elif":   true,
	"else":   true,
	"import": true,
	"from":   true,
	"and":    true,
	"or":     true,
	"not":    true,
	"True":   true,
	"False":  true,
}

// twoCharOps are matched before single-character operators.
var twoCharOps = []string{"**", "//", "==", "!=", "<=", ">=", "->"}

const singleOps = "+-*/%<>=(),:."

type lexer struct {
	file    string
	src     string
	pos     int
	line    int
	col     int
	parens  int   // paren nesting depth; newlines are ignored inside
	indents []int // indentation stack, always starts with 0
	toks    []token
}

// lex tokenizes source into a flat token stream, synthesizing
// Indent/Dedent tokens from leading whitespace the way Python's
// tokenizer does. Blank and comment-only lines produce no tokens.
func lex(file, source string) ([]token, error) {
	l := &lexer{file: file, src: source, line: 1, col: 1, indents: []int{0}}
	if err := l.run(); err != nil {
		return nil, err
	}
	return l.toks, nil
}

func (l *lexer) errorf(format string, args ...interface{}) error {
	return &Error{File: l.file, Line: l.line, Col: l.col, Msg: fmt.Sprintf(format, args...)}
}

func (l *lexer) emit(kind tokenKind, text string, line, col int) {
	l.toks = append(l.toks, token{kind: kind, text: text, line: line, col: col})
}

func (l *lexer) run() error {
	atLineStart := true
	for l.pos < len(l.src) {
		if atLineStart && l.parens == 0 {
			if err := l.lexIndentation(); err != nil {
				return err
			}
			atLineStart = false
			continue
		}

		ch := l.src[l.pos]
		switch {
		case ch == '\n':
			if l.parens == 0 {
				// Collapse trailing whitespace-only content into one newline.
				if n := len(l.toks); n > 0 && l.toks[n-1].kind != tokNewline {
					l.emit(tokNewline, "\n", l.line, l.col)
				}
				atLineStart = true
			}
			l.advance()
		case ch == ' ' || ch == '\t' || ch == '\r':
			l.advance()
		case ch == '#':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.advance()
			}
		case ch == '"' || ch == '\'':
			if err := l.lexString(ch); err != nil {
				return err
			}
		case ch >= '0' && ch <= '9':
			l.lexNumber()
		case isIdentStart(ch):
			l.lexIdent()
		default:
			if err := l.lexOperator(); err != nil {
				return err
			}
		}
	}

	// Close any open line and unwind the indentation stack.
	if n := len(l.toks); n > 0 && l.toks[n-1].kind != tokNewline {
		l.emit(tokNewline, "\n", l.line, l.col)
	}
	for len(l.indents) > 1 {
		l.indents = l.indents[:len(l.indents)-1]
		l.emit(tokDedent, "", l.line, l.col)
	}
	l.emit(tokEOF, "", l.line, l.col)
	return nil
}

// lexIndentation measures leading whitespace at a line start and emits
// Indent/Dedent tokens against the indentation stack. Tabs count as 4
// columns. Blank and comment-only lines are skipped entirely.
func (l *lexer) lexIndentation() error {
	width := 0
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ':
			width++
		case '\t':
			width += 4
		default:
			goto measured
		}
		l.advance()
	}
measured:
	if l.pos >= len(l.src) {
		return nil
	}
	if l.src[l.pos] == '\n' || l.src[l.pos] == '#' || l.src[l.pos] == '\r' {
		// Blank or comment-only line: consume it without tokens.
		for l.pos < len(l.src) && l.src[l.pos] != '\n' {
			l.advance()
		}
		if l.pos < len(l.src) {
			l.advance() // the newline itself
		}
		return nil
	}

	top := l.indents[len(l.indents)-1]
	switch {
	case width > top:
		l.indents = append(l.indents, width)
		l.emit(tokIndent, "", l.line, l.col)
	case width < top:
		for len(l.indents) > 1 && l.indents[len(l.indents)-1] > width {
			l.indents = l.indents[:len(l.indents)-1]
			l.emit(tokDedent, "", l.line, l.col)
		}
		if l.indents[len(l.indents)-1] != width {
			return l.errorf("unindent does not match any outer indentation level")
		}
	}
	return nil
}

func (l *lexer) lexString(quote byte) error {
	line, col := l.line, l.col
	l.advance() // opening quote
	var sb strings.Builder
	for l.pos < len(l.src) {
		ch := l.src[l.pos]
		switch ch {
		case quote:
			l.advance()
			l.emit(tokString, sb.String(), line, col)
			return nil
		case '\n':
			return l.errorf("unterminated string literal")
		case '\\':
			l.advance()
			if l.pos >= len(l.src) {
				return l.errorf("unterminated string literal")
			}
			switch l.src[l.pos] {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case '\\', '\'', '"':
				sb.WriteByte(l.src[l.pos])
			default:
				sb.WriteByte('\\')
				sb.WriteByte(l.src[l.pos])
			}
			l.advance()
		default:
			sb.WriteByte(ch)
			l.advance()
		}
	}
	l.line, l.col = line, col
	return l.errorf("unterminated string literal")
}

func (l *lexer) lexNumber() {
	line, col := l.line, l.col
	start := l.pos
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.advance()
	}
	if l.pos+1 < len(l.src) && l.src[l.pos] == '.' && isDigit(l.src[l.pos+1]) {
		l.advance()
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.advance()
		}
	}
	l.emit(tokNumber, l.src[start:l.pos], line, col)
}

func (l *lexer) lexIdent() {
	line, col := l.line, l.col
	start := l.pos
	for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
		l.advance()
	}
	text := l.src[start:l.pos]
	kind := tokIdent
	if keywords[text] {
		kind = tokKeyword
	}
	l.emit(kind, text, line, col)
}

func (l *lexer) lexOperator() error {
	line, col := l.line, l.col
	for _, op := range twoCharOps {
		if strings.HasPrefix(l.src[l.pos:], op) {
			l.advance()
			l.advance()
			l.emit(tokOp, op, line, col)
			return nil
		}
	}
	ch := l.src[l.pos]
	if strings.IndexByte(singleOps, ch) < 0 {
		return l.errorf("unexpected character %q", string(ch))
	}
	switch ch {
	case '(':
		l.parens++
	case ')':
		if l.parens > 0 {
			l.parens--
		}
	}
	l.advance()
	l.emit(tokOp, string(ch), line, col)
	return nil
}

func (l *lexer) advance() {
	if l.src[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
