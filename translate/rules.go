package translate

import (
	"regexp"
	"strings"
)

// rule is one rewrite applied to a single C++ line. The rules fire in
// slice order and the order is part of the contract: the type prefix
// must be stripped before keyword substitution, and the statement
// terminator is removed only after the stream rewrites have seen it.
type rule struct {
	name    string
	rewrite func(string) string
}

var (
	typedAssignRe = regexp.MustCompile(`(?:int|float|double|string|bool|auto)\s+(\w+)\s*=\s*`)
	coutOpenRe    = regexp.MustCompile(`std::cout\s*<<\s*`)
	endlRe        = regexp.MustCompile(`\s*<<\s*std::endl`)
	chainRe       = regexp.MustCompile(`\s*<<\s*`)
	cinRe         = regexp.MustCompile(`std::cin\s*>>\s*(\w+)`)
	funcSigRe     = regexp.MustCompile(`(?:int|float|double|string|bool|void)\s+(\w+)\s*\(([^)]*)\)`)
	stringCtorRe  = regexp.MustCompile(`std::string\s*\(\s*"([^"]*)"\s*\)`)
)

// conversionRules is the ordered C++-to-Python rewrite table. It is
// built once and shared read-only across conversions.
var conversionRules = []rule{
	{
		// int x = 5  ->  x = 5
		name: "strip typed declaration",
		rewrite: func(line string) string {
			return typedAssignRe.ReplaceAllString(line, "$1 = ")
		},
	},
	{
		// std::cout << a << b << std::endl  ->  print(a + b)
		name: "output stream to print",
		rewrite: func(line string) string {
			if !strings.Contains(line, "std::cout") {
				return line
			}
			line = coutOpenRe.ReplaceAllString(line, "print(")
			line = endlRe.ReplaceAllString(line, ")")
			line = chainRe.ReplaceAllString(line, " + ")
			return line
		},
	},
	{
		// std::cin >> x  ->  x = input()
		name: "input stream to input",
		rewrite: func(line string) string {
			if !strings.Contains(line, "std::cin") {
				return line
			}
			return cinRe.ReplaceAllString(line, "$1 = input()")
		},
	},
	{
		// int add(int a, int b)  ->  def add(int a, int b):
		// The parameter list text is retained as-is.
		name: "signature to def",
		rewrite: func(line string) string {
			return funcSigRe.ReplaceAllString(line, "def $1($2):")
		},
	},
	{
		name: "boolean literals",
		rewrite: func(line string) string {
			line = strings.ReplaceAll(line, "true", "True")
			return strings.ReplaceAll(line, "false", "False")
		},
	},
	{
		name: "logical operators",
		rewrite: func(line string) string {
			line = strings.ReplaceAll(line, "&&", "and")
			return strings.ReplaceAll(line, "||", "or")
		},
	},
	{
		// Carried over from the original converter: == and != already
		// share a spelling, so these rewrites are identities.
		name: "equality operators",
		rewrite: func(line string) string {
			line = strings.ReplaceAll(line, "==", "==")
			return strings.ReplaceAll(line, "!=", "!=")
		},
	},
	{
		// std::string("x")  ->  "x"
		name: "unwrap string constructor",
		rewrite: func(line string) string {
			return stringCtorRe.ReplaceAllString(line, `"$1"`)
		},
	},
	{
		name: "strip statement terminator",
		rewrite: func(line string) string {
			return strings.TrimRight(line, ";")
		},
	},
}

// convertLine runs one C++ line through the full rule table.
func convertLine(line string) string {
	for _, r := range conversionRules {
		line = r.rewrite(line)
	}
	return strings.TrimSpace(line)
}
