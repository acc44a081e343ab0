// Package format reindents generated code for display. C++ indentation
// is recomputed from scratch with a brace-counting pass; Python text is
// only trimmed, since indentation is significant and trusted as
// generated.
package format

import "strings"

const indentUnit = "    "

// CPP recomputes the indentation of C++ source. A line starting with a
// block-close token dedents before it is emitted; a line ending with a
// block-open token indents the lines after it. The level never goes
// negative and blank lines pass through empty. The function is a fixed
// point: formatting already-formatted output changes nothing.
func CPP(code string) string {
	lines := strings.Split(code, "\n")
	formatted := make([]string, 0, len(lines))
	level := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			formatted = append(formatted, "")
			continue
		}
		if strings.HasPrefix(line, "}") && level > 0 {
			level--
		}
		formatted = append(formatted, strings.Repeat(indentUnit, level)+line)
		if strings.HasSuffix(line, "{") {
			level++
		}
	}
	return strings.Join(formatted, "\n")
}

// Python strips leading and trailing whitespace only.
func Python(code string) string {
	return strings.TrimSpace(code)
}
