package translate

import (
	"fmt"
	"strings"

	"github.com/convertifier/convertifier/ast"
)

// Operator spellings that differ between the two languages. Arithmetic
// operators map 1:1; floor division degrades to plain division.
var binaryOps = map[string]string{
	"+":  "+",
	"-":  "-",
	"*":  "*",
	"/":  "/",
	"%":  "%",
	"//": "/",
}

var boolOps = map[string]string{
	"and": "&&",
	"or":  "||",
}

var unaryOps = map[string]string{
	"+":   "+",
	"-":   "-",
	"not": "!",
}

// exprString converts one Python expression node to C++ text. Every
// variant of ast.Expr is handled; a node the switch doesn't know (or an
// operator outside the mapped set) degrades to its raw textual form
// instead of failing the whole translation.
func exprString(e ast.Expr) string {
	switch ex := e.(type) {
	case *ast.NumberLit:
		return ex.Value
	case *ast.StringLit:
		return cppQuote(ex.Value)
	case *ast.BoolLit:
		if ex.Value {
			return "true"
		}
		return "false"
	case *ast.Ident:
		return ex.Name
	case *ast.BinaryExpr:
		op, ok := binaryOps[ex.Op]
		if !ok {
			op = ex.Op
		}
		return fmt.Sprintf("(%s %s %s)", exprString(ex.Left), op, exprString(ex.Right))
	case *ast.CompareExpr:
		// Comparison operators are spelled identically in both
		// languages. Chains render left-to-right: a < b < c becomes
		// ((a < b) < c), with no semantic re-association.
		out := exprString(ex.Left)
		for i, op := range ex.Ops {
			out = fmt.Sprintf("(%s %s %s)", out, op, exprString(ex.Comparators[i]))
		}
		return out
	case *ast.BoolExpr:
		parts := make([]string, len(ex.Values))
		for i, v := range ex.Values {
			parts[i] = exprString(v)
		}
		return "(" + strings.Join(parts, " "+boolOps[ex.Op]+" ") + ")"
	case *ast.UnaryExpr:
		op, ok := unaryOps[ex.Op]
		if !ok {
			op = ex.Op
		}
		return op + "(" + exprString(ex.Operand) + ")"
	case *ast.CallExpr:
		return callString(ex)
	default:
		return ast.Text(e)
	}
}

// callString renders a call expression. The canonical print and input
// builtins map to the iostream idioms; everything else renders as a
// plain call with translated arguments.
func callString(c *ast.CallExpr) string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = exprString(a)
	}
	if id, ok := c.Func.(*ast.Ident); ok {
		switch id.Name {
		case "print":
			if len(args) == 0 {
				return "std::cout << std::endl"
			}
			return "std::cout << " + strings.Join(args, " << ") + " << std::endl"
		case "input":
			target := "input_var"
			if len(args) > 0 {
				target = args[0]
			}
			return "std::cin >> " + target
		}
		return id.Name + "(" + strings.Join(args, ", ") + ")"
	}
	return exprString(c.Func) + "(" + strings.Join(args, ", ") + ")"
}

// cppQuote renders a string literal with C++ double-quote syntax.
func cppQuote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteByte(s[i])
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
