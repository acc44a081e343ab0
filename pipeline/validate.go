package pipeline

import (
	"fmt"
	"strings"

	"github.com/convertifier/convertifier/parser"
	"github.com/convertifier/convertifier/scanner"
)

// Validate checks gross syntactic well-formedness of source for the
// declared language. Python source must parse completely; C++ gets a
// shallow structural smoke test. Pure function, never panics, and empty
// input is rejected for either language.
func (p *Pipeline) Validate(source string, lang Language) (bool, string) {
	if strings.TrimSpace(source) == "" {
		return false, "empty source: nothing to validate"
	}
	switch lang {
	case LangPython:
		return validatePython(source)
	case LangCPP:
		return validateCPP(source)
	}
	return false, fmt.Sprintf("unknown language %q", lang)
}

func validatePython(source string) (bool, string) {
	if _, err := (&parser.Parser{}).Parse("<input>", source); err != nil {
		return false, fmt.Sprintf("invalid Python code: %v", err)
	}
	return true, "valid Python code"
}

// validateCPP is a smoke test, not a parser: it requires at least one
// statement terminator, one block open, and one block close outside
// string literals, and deliberately accepts anything that has them.
func validateCPP(source string) (bool, string) {
	required := []struct {
		ch   byte
		name string
	}{
		{';', ";"},
		{'{', "{"},
		{'}', "}"},
	}
	for _, el := range required {
		if scanner.CountOutsideLiterals(source, el.ch) == 0 {
			return false, fmt.Sprintf("invalid C++ code: missing required element %q", el.name)
		}
	}
	return true, "valid C++ code"
}
