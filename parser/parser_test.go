package parser

import (
	"strings"
	"testing"

	"github.com/convertifier/convertifier/ast"
)

func parse(t *testing.T, src string) *ast.Module {
	t.Helper()
	p := &Parser{}
	mod, err := p.Parse("test.py", src)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	return mod
}

func TestParseSimpleCall(t *testing.T) {
	mod := parse(t, "print(\"hello\")\n")
	if len(mod.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(mod.Statements))
	}
	es, ok := mod.Statements[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("expected ExprStmt, got %T", mod.Statements[0])
	}
	call, ok := es.Expression.(*ast.CallExpr)
	if !ok {
		t.Fatalf("expected CallExpr, got %T", es.Expression)
	}
	if name := call.Func.(*ast.Ident).Name; name != "print" {
		t.Errorf("callee = %q, want print", name)
	}
	if len(call.Args) != 1 {
		t.Fatalf("expected 1 arg, got %d", len(call.Args))
	}
	if s := call.Args[0].(*ast.StringLit).Value; s != "hello" {
		t.Errorf("arg = %q, want hello", s)
	}
}

func TestParseAssignment(t *testing.T) {
	mod := parse(t, "x = 42\n")
	as, ok := mod.Statements[0].(*ast.AssignStmt)
	if !ok {
		t.Fatalf("expected AssignStmt, got %T", mod.Statements[0])
	}
	if len(as.Targets) != 1 || as.Targets[0].(*ast.Ident).Name != "x" {
		t.Errorf("unexpected targets: %#v", as.Targets)
	}
	if as.Value.(*ast.NumberLit).Value != "42" {
		t.Errorf("value = %v, want 42", as.Value)
	}
}

func TestParseChainedAssignment(t *testing.T) {
	mod := parse(t, "a = b = 1\n")
	as := mod.Statements[0].(*ast.AssignStmt)
	if len(as.Targets) != 2 {
		t.Fatalf("expected 2 targets, got %d", len(as.Targets))
	}
}

func TestParseFunction(t *testing.T) {
	mod := parse(t, "def greet(name):\n    print(name)\n")
	fd, ok := mod.Statements[0].(*ast.FuncDef)
	if !ok {
		t.Fatalf("expected FuncDef, got %T", mod.Statements[0])
	}
	if fd.Name != "greet" {
		t.Errorf("name = %q, want greet", fd.Name)
	}
	if len(fd.Params) != 1 || fd.Params[0].Name != "name" {
		t.Errorf("unexpected params: %#v", fd.Params)
	}
	if len(fd.Body) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(fd.Body))
	}
}

func TestParseInlineFunction(t *testing.T) {
	mod := parse(t, "def add(a, b): return a + b\n")
	fd := mod.Statements[0].(*ast.FuncDef)
	if len(fd.Body) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(fd.Body))
	}
	ret, ok := fd.Body[0].(*ast.ReturnStmt)
	if !ok {
		t.Fatalf("expected ReturnStmt, got %T", fd.Body[0])
	}
	if _, ok := ret.Value.(*ast.BinaryExpr); !ok {
		t.Errorf("expected BinaryExpr return value, got %T", ret.Value)
	}
}

func TestParseAnnotatedParams(t *testing.T) {
	mod := parse(t, "def f(a: int, b: float): return a\n")
	fd := mod.Statements[0].(*ast.FuncDef)
	if fd.Params[0].Annotation != "int" || fd.Params[1].Annotation != "float" {
		t.Errorf("unexpected annotations: %#v", fd.Params)
	}
}

func TestParseIfElifElse(t *testing.T) {
	src := `if x == 1:
    print("one")
elif x == 2:
    print("two")
else:
    print("other")
`
	mod := parse(t, src)
	ifs, ok := mod.Statements[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("expected IfStmt, got %T", mod.Statements[0])
	}
	if len(ifs.Body) != 1 {
		t.Errorf("if body has %d statements, want 1", len(ifs.Body))
	}
	// elif desugars to a nested if in the else body.
	nested, ok := ifs.ElseBody[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("expected nested IfStmt for elif, got %T", ifs.ElseBody[0])
	}
	if len(nested.ElseBody) != 1 {
		t.Errorf("elif else body has %d statements, want 1", len(nested.ElseBody))
	}
}

func TestParseImports(t *testing.T) {
	mod := parse(t, "import math, random\nfrom time import sleep\n")
	imp := mod.Statements[0].(*ast.ImportStmt)
	if len(imp.Modules) != 2 || imp.Modules[0] != "math" || imp.Modules[1] != "random" {
		t.Errorf("unexpected modules: %#v", imp.Modules)
	}
	from := mod.Statements[1].(*ast.ImportFromStmt)
	if from.Module != "time" || from.Names[0] != "sleep" {
		t.Errorf("unexpected from-import: %#v", from)
	}
}

func TestParseExpressions(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string // rendered back through ast.Text
	}{
		{"precedence", "x = 1 + 2 * 3\n", "x = (1 + (2 * 3))"},
		{"parens", "x = (1 + 2) * 3\n", "x = ((1 + 2) * 3)"},
		{"compare", "x = a < b\n", "x = a < b"},
		{"chained compare", "x = 1 < y < 3\n", "x = 1 < y < 3"},
		{"bool ops", "x = a and b or c\n", "x = ((a and b) or c)"},
		{"not", "x = not a\n", "x = not a"},
		{"unary minus", "x = -y\n", "x = -y"},
		{"call args", "f(1, \"two\", g(3))\n", `f(1, "two", g(3))`},
		{"modulo", "x = a % 2\n", "x = (a % 2)"},
		{"floor div", "x = a // 2\n", "x = (a // 2)"},
		{"power", "x = a ** 2\n", "x = (a ** 2)"},
		{"booleans", "x = True or False\n", "x = (True or False)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mod := parse(t, tt.src)
			got := ast.Text(mod.Statements[0])
			if got != tt.want {
				t.Errorf("Text = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string // substring of the error
	}{
		{"unclosed paren", "print(1\n", "expected"},
		{"bad indent", "def f():\nreturn 1\n", "expected an indented block"},
		{"stray else", "else:\n    x = 1\n", "without a matching if"},
		{"unterminated string", "x = \"abc\n", "unterminated string"},
		{"assign to literal", "1 = x\n", "cannot assign"},
		{"unexpected char", "x = 1 $ 2\n", "unexpected character"},
		{"bad dedent", "def f():\n        x = 1\n    y = 2\n", "unindent"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Parser{}
			_, err := p.Parse("test.py", tt.src)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.src)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
			if !strings.HasPrefix(err.Error(), "test.py:") {
				t.Errorf("error %q is missing the file position prefix", err)
			}
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	p := &Parser{}
	_, err := p.Parse("test.py", "x = 1\ny = $\n")
	if err == nil {
		t.Fatal("expected error")
	}
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if perr.Line != 2 {
		t.Errorf("line = %d, want 2", perr.Line)
	}
}

func TestParseEmptySource(t *testing.T) {
	mod := parse(t, "")
	if len(mod.Statements) != 0 {
		t.Errorf("expected empty module, got %d statements", len(mod.Statements))
	}
}

func TestParseCommentsAndBlankLines(t *testing.T) {
	src := "# leading comment\n\nx = 1  # trailing\n\n# another\ny = 2\n"
	mod := parse(t, src)
	if len(mod.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(mod.Statements))
	}
}
