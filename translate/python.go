package translate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/convertifier/convertifier/scanner"
)

var (
	mainSigRe    = regexp.MustCompile(`\bint\s+main\s*\(`)
	mainReturnRe = regexp.MustCompile(`^return\s+\d+\s*;?$`)
)

// CPPToPython rewrites C++ source into Python text without building a
// parse tree. The source is first split into one statement or block
// marker per physical line (string-literal aware), then each line runs
// through the ordered rule table. The entry-point wrapper is removed
// entirely: Python has no equivalent of main, so its signature, its
// status return, and its braces are dropped while the body lines are
// converted in place.
func CPPToPython(source string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = fmt.Sprintf("Error converting C++ to Python: %v", r)
		}
	}()

	var converted []string
	inMain := false
	braceDepth := 0

	for _, line := range scanner.SplitStatements(source) {
		if strings.HasPrefix(line, "#include") {
			continue
		}

		if !inMain && mainSigRe.MatchString(line) {
			inMain = true
			braceDepth = braceBalance(line)
			continue
		}

		if inMain {
			braceDepth += braceBalance(line)
			if braceDepth <= 0 {
				// Closing brace of main: wrapper ends here.
				inMain = false
				continue
			}
			// Interior block markers carry no meaning in Python, and
			// the status return belongs to the wrapper.
			if isBraceOnly(line) || mainReturnRe.MatchString(line) {
				continue
			}
			if c := convertLine(line); c != "" {
				converted = append(converted, c)
			}
			continue
		}

		if c := convertLine(line); c != "" {
			converted = append(converted, c)
		}
	}

	return strings.Join(converted, "\n")
}

// braceBalance counts block-open minus block-close tokens outside
// string and character literals.
func braceBalance(line string) int {
	return scanner.CountOutsideLiterals(line, '{') - scanner.CountOutsideLiterals(line, '}')
}

// isBraceOnly reports whether a trimmed line consists solely of braces.
func isBraceOnly(line string) bool {
	if line == "" {
		return false
	}
	for i := 0; i < len(line); i++ {
		if line[i] != '{' && line[i] != '}' && line[i] != ' ' {
			return false
		}
	}
	return true
}
