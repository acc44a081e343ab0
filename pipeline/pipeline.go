// Package pipeline composes validation, translation, and formatting
// into the single conversion surface exposed to callers. Nothing in it
// panics past the package boundary and nothing touches the network,
// filesystem, or environment.
package pipeline

import (
	"fmt"
	"strings"

	"github.com/convertifier/convertifier/format"
	"github.com/convertifier/convertifier/parser"
	"github.com/convertifier/convertifier/translate"
)

// Language identifies one of the two supported source languages.
type Language string

const (
	LangPython Language = "python"
	LangCPP    Language = "cpp"
)

// ParseLanguage normalizes a user-supplied language name.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "python", "py":
		return LangPython, nil
	case "cpp", "c++", "cxx", "cc":
		return LangCPP, nil
	}
	return "", fmt.Errorf("unknown language %q (want python or cpp)", s)
}

// Result is the outcome of a conversion. Err is set when validation or
// infrastructure failed and no translation was produced. Text may still
// carry a best-effort diagnostic line generated inside a translator;
// that counts as a successful run.
type Result struct {
	Text string
	Err  string
}

// Failed reports whether the run produced no output.
func (r Result) Failed() bool { return r.Err != "" }

// Pipeline is stateless: the zero value is ready to use and safe for
// concurrent callers.
type Pipeline struct{}

// New returns a ready Pipeline.
func New() *Pipeline { return &Pipeline{} }

// Convert validates source in the given language and translates it to
// the other one, formatting the output. It never panics.
func (p *Pipeline) Convert(source string, from Language) Result {
	ok, msg := p.Validate(source, from)
	if !ok {
		return Result{Err: msg}
	}
	switch from {
	case LangPython:
		mod, err := (&parser.Parser{}).Parse("<input>", source)
		if err != nil {
			return Result{Err: fmt.Sprintf("invalid Python code: %v", err)}
		}
		return Result{Text: p.Format(translate.PythonToCPP(mod), LangCPP)}
	case LangCPP:
		return Result{Text: p.Format(translate.CPPToPython(source), LangPython)}
	}
	return Result{Err: fmt.Sprintf("unknown source language %q", from)}
}

// Format reindents text for the target language. It accepts arbitrary
// text: this is the only pipeline entry point external collaborators
// (such as an AI-produced translation) are fed through.
func (p *Pipeline) Format(text string, target Language) string {
	if target == LangCPP {
		return format.CPP(text)
	}
	return format.Python(text)
}
