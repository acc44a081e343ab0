package ast

import (
	"fmt"
	"strings"
)

// Text renders a node back to compact Python-like source text. It is the
// raw fallback used when a translator has no mapping for a node: the
// output is readable, not guaranteed idiomatic for either language.
func Text(n Node) string {
	switch x := n.(type) {
	case *NumberLit:
		return x.Value
	case *StringLit:
		return fmt.Sprintf("%q", x.Value)
	case *BoolLit:
		if x.Value {
			return "True"
		}
		return "False"
	case *Ident:
		return x.Name
	case *BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", Text(x.Left), x.Op, Text(x.Right))
	case *CompareExpr:
		var sb strings.Builder
		sb.WriteString(Text(x.Left))
		for i, op := range x.Ops {
			sb.WriteString(" " + op + " ")
			if i < len(x.Comparators) {
				sb.WriteString(Text(x.Comparators[i]))
			}
		}
		return sb.String()
	case *BoolExpr:
		parts := make([]string, len(x.Values))
		for i, v := range x.Values {
			parts[i] = Text(v)
		}
		return "(" + strings.Join(parts, " "+x.Op+" ") + ")"
	case *UnaryExpr:
		if x.Op == "not" {
			return "not " + Text(x.Operand)
		}
		return x.Op + Text(x.Operand)
	case *CallExpr:
		args := make([]string, len(x.Args))
		for i, a := range x.Args {
			args[i] = Text(a)
		}
		return Text(x.Func) + "(" + strings.Join(args, ", ") + ")"
	case *AssignStmt:
		targets := make([]string, len(x.Targets))
		for i, t := range x.Targets {
			targets[i] = Text(t)
		}
		return strings.Join(targets, " = ") + " = " + Text(x.Value)
	case *ReturnStmt:
		if x.Value == nil {
			return "return"
		}
		return "return " + Text(x.Value)
	case *ExprStmt:
		return Text(x.Expression)
	case *ImportStmt:
		return "import " + strings.Join(x.Modules, ", ")
	case *ImportFromStmt:
		return "from " + x.Module + " import " + strings.Join(x.Names, ", ")
	case *IfStmt:
		return "if " + Text(x.Condition) + ": ..."
	case *FuncDef:
		names := make([]string, len(x.Params))
		for i, p := range x.Params {
			names[i] = p.Name
		}
		return "def " + x.Name + "(" + strings.Join(names, ", ") + "): ..."
	default:
		return fmt.Sprintf("<%T>", n)
	}
}
