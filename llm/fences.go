package llm

import (
	"regexp"
	"strings"
)

// Models regularly wrap code in markdown fences despite being told not
// to. StripFences drops every fence line and trims the remainder.
var fenceLineRe = regexp.MustCompile("(?m)^[ \t]*```[^\n]*\n?")

// StripFences removes markdown code fences from a model response.
func StripFences(s string) string {
	return strings.TrimSpace(fenceLineRe.ReplaceAllString(s, ""))
}
