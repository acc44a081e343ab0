// Package translate implements both conversion directions: Python to
// C++ over a real parse tree, and C++ to Python as a line-oriented
// rewrite. Neither direction lets a fault escape: internal errors
// surface as a single "Error converting ..." diagnostic line.
package translate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/convertifier/convertifier/ast"
)

// includeFor maps known Python stdlib modules to C++ headers.
var includeFor = map[string]string{
	"math":   "<cmath>",
	"random": "<random>",
	"time":   "<ctime>",
}

// baseIncludes are emitted for every translation.
var baseIncludes = []string{"<iostream>", "<string>"}

// PythonToCPP renders a parsed Python module as C++ source. The output
// always ends with an entry point: when no rendered line mentions main,
// a trivial stub returning success is appended.
func PythonToCPP(mod *ast.Module) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = fmt.Sprintf("Error converting Python to C++: %v", r)
		}
	}()

	w := &cppWriter{}
	for _, inc := range collectIncludes(mod) {
		w.Linef("#include %s", inc)
	}
	w.Blank()

	for _, st := range mod.Statements {
		writeStmt(w, st, true)
	}

	code := w.String()
	if !strings.Contains(code, "main") {
		w.Blank()
		w.Line("int main() {")
		w.Indent()
		w.Line("// Your code will be executed here")
		w.Line("return 0;")
		w.Dedent()
		w.Line("}")
		code = w.String()
	}
	return code
}

// collectIncludes walks every import in the tree and returns the
// deduplicated header set in sorted order.
func collectIncludes(mod *ast.Module) []string {
	set := make(map[string]bool, len(baseIncludes))
	for _, inc := range baseIncludes {
		set[inc] = true
	}
	var walk func(stmts []ast.Stmt)
	walk = func(stmts []ast.Stmt) {
		for _, st := range stmts {
			switch s := st.(type) {
			case *ast.ImportStmt:
				for _, m := range s.Modules {
					if inc, ok := includeFor[m]; ok {
						set[inc] = true
					}
				}
			case *ast.ImportFromStmt:
				if inc, ok := includeFor[s.Module]; ok {
					set[inc] = true
				}
			case *ast.FuncDef:
				walk(s.Body)
			case *ast.IfStmt:
				walk(s.Body)
				walk(s.ElseBody)
			}
		}
	}
	walk(mod.Statements)

	incs := make([]string, 0, len(set))
	for inc := range set {
		incs = append(incs, inc)
	}
	sort.Strings(incs)
	return incs
}

// writeStmt emits one statement. At module level assignments declare
// their target with a generic inferred type; inside a function they are
// plain assignments.
func writeStmt(w *cppWriter, st ast.Stmt, topLevel bool) {
	switch s := st.(type) {
	case *ast.ImportStmt, *ast.ImportFromStmt:
		// Consumed by the include pass.
	case *ast.FuncDef:
		writeFunc(w, s)
	case *ast.AssignStmt:
		for _, target := range s.Targets {
			if topLevel {
				w.Linef("auto %s = %s;", exprString(target), exprString(s.Value))
			} else {
				w.Linef("%s = %s;", exprString(target), exprString(s.Value))
			}
		}
	case *ast.ReturnStmt:
		if s.Value != nil {
			w.Linef("return %s;", exprString(s.Value))
		} else {
			w.Line("return;")
		}
	case *ast.ExprStmt:
		w.Linef("%s;", exprString(s.Expression))
	case *ast.IfStmt:
		writeIf(w, s)
	default:
		w.Line(ast.Text(st))
	}
}

// writeFunc renders a function definition. The return type defaults to
// void since Python source carries no declaration; parameter types come
// from annotations when present, else auto.
func writeFunc(w *cppWriter, f *ast.FuncDef) {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		typ := "auto"
		if p.Annotation != "" {
			typ = p.Annotation
		}
		params[i] = typ + " " + p.Name
	}
	w.Linef("void %s(%s) {", f.Name, strings.Join(params, ", "))
	w.Indent()
	for _, st := range f.Body {
		writeStmt(w, st, false)
	}
	w.Dedent()
	w.Line("}")
	w.Blank()
}

// writeIf renders an if/else as nested brace blocks. Branch bodies are
// rendered one statement at a time without recursing into nested
// compound statements: a nested if inside a branch degrades to its raw
// textual form.
func writeIf(w *cppWriter, s *ast.IfStmt) {
	w.Linef("if (%s) {", exprString(s.Condition))
	w.Indent()
	for _, st := range s.Body {
		w.Line(branchStmtString(st))
	}
	w.Dedent()
	w.Line("}")
	if len(s.ElseBody) > 0 {
		w.Line("else {")
		w.Indent()
		for _, st := range s.ElseBody {
			w.Line(branchStmtString(st))
		}
		w.Dedent()
		w.Line("}")
	}
}

// branchStmtString renders a single statement inside an if/else branch.
func branchStmtString(st ast.Stmt) string {
	switch s := st.(type) {
	case *ast.ReturnStmt:
		if s.Value != nil {
			return fmt.Sprintf("return %s;", exprString(s.Value))
		}
		return "return;"
	case *ast.AssignStmt:
		targets := make([]string, len(s.Targets))
		for i, t := range s.Targets {
			targets[i] = exprString(t)
		}
		return fmt.Sprintf("%s = %s;", strings.Join(targets, " = "), exprString(s.Value))
	case *ast.ExprStmt:
		return exprString(s.Expression) + ";"
	default:
		return ast.Text(st)
	}
}
