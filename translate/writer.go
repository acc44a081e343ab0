package translate

import (
	"fmt"
	"strings"
)

// cppWriter manages indented C++ source output for the Python to C++
// translator. It encapsulates the output buffer and indentation level.
type cppWriter struct {
	sb     strings.Builder
	indent int
}

// Line writes an indented line with a trailing newline. An empty string
// writes a blank line.
func (w *cppWriter) Line(line string) {
	if line == "" {
		w.sb.WriteByte('\n')
		return
	}
	w.sb.WriteString(strings.Repeat("    ", w.indent))
	w.sb.WriteString(line)
	w.sb.WriteByte('\n')
}

// Linef writes an indented, formatted line.
func (w *cppWriter) Linef(format string, args ...interface{}) {
	w.Line(fmt.Sprintf(format, args...))
}

// Blank writes an empty line.
func (w *cppWriter) Blank() {
	w.sb.WriteByte('\n')
}

// Indent increases the indentation level.
func (w *cppWriter) Indent() { w.indent++ }

// Dedent decreases the indentation level, clamping at zero.
func (w *cppWriter) Dedent() {
	if w.indent > 0 {
		w.indent--
	}
}

// String returns the accumulated output.
func (w *cppWriter) String() string { return w.sb.String() }
