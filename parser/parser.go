// Package parser turns Python source text into the typed AST consumed by
// the C++ translator. It covers the statement subset the converter
// understands: imports, function definitions, assignments, if/elif/else,
// return, and expression statements. Anything outside the subset is a
// parse error with a line:column position.
package parser

import (
	"fmt"

	"github.com/convertifier/convertifier/ast"
)

// Parser parses Python source into an ast.Module.
type Parser struct{}

// Parse parses source into a Module. The name parameter is used for
// error messages only.
func (p *Parser) Parse(name, source string) (*ast.Module, error) {
	toks, err := lex(name, source)
	if err != nil {
		return nil, err
	}
	ps := &parseState{file: name, toks: toks}
	mod := &ast.Module{SourceFile: name}
	for !ps.at(tokEOF) {
		st, err := ps.statement()
		if err != nil {
			return nil, err
		}
		mod.Statements = append(mod.Statements, st)
	}
	return mod, nil
}

type parseState struct {
	file string
	toks []token
	pos  int
}

func (ps *parseState) cur() token { return ps.toks[ps.pos] }

func (ps *parseState) at(kind tokenKind) bool { return ps.cur().kind == kind }

func (ps *parseState) atOp(text string) bool {
	t := ps.cur()
	return t.kind == tokOp && t.text == text
}

func (ps *parseState) atKeyword(text string) bool {
	t := ps.cur()
	return t.kind == tokKeyword && t.text == text
}

func (ps *parseState) advance() token {
	t := ps.cur()
	if t.kind != tokEOF {
		ps.pos++
	}
	return t
}

func (ps *parseState) acceptOp(text string) bool {
	if ps.atOp(text) {
		ps.advance()
		return true
	}
	return false
}

func (ps *parseState) acceptKeyword(text string) bool {
	if ps.atKeyword(text) {
		ps.advance()
		return true
	}
	return false
}

func (ps *parseState) errorf(t token, format string, args ...interface{}) error {
	return &Error{File: ps.file, Line: t.line, Col: t.col, Msg: fmt.Sprintf(format, args...)}
}

func (ps *parseState) expectOp(text string) error {
	if !ps.acceptOp(text) {
		return ps.errorf(ps.cur(), "expected %q, got %s", text, describe(ps.cur()))
	}
	return nil
}

func (ps *parseState) expectIdent() (token, error) {
	if !ps.at(tokIdent) {
		return token{}, ps.errorf(ps.cur(), "expected identifier, got %s", describe(ps.cur()))
	}
	return ps.advance(), nil
}

// expectNewline ends a simple statement. End of input counts.
func (ps *parseState) expectNewline() error {
	if ps.at(tokNewline) {
		ps.advance()
		return nil
	}
	if ps.at(tokEOF) || ps.at(tokDedent) {
		return nil
	}
	return ps.errorf(ps.cur(), "expected end of statement, got %s", describe(ps.cur()))
}

func describe(t token) string {
	switch t.kind {
	case tokIdent, tokKeyword, tokOp, tokNumber:
		return fmt.Sprintf("%q", t.text)
	case tokString:
		return "string literal"
	default:
		return t.kind.String()
	}
}

func (ps *parseState) statement() (ast.Stmt, error) {
	t := ps.cur()
	if t.kind == tokKeyword {
		switch t.text {
		case "import":
			return ps.importStmt()
		case "from":
			return ps.fromImportStmt()
		case "def":
			return ps.funcDef()
		case "if":
			return ps.ifStmt()
		case "return":
			return ps.returnStmt()
		case "elif", "else":
			return nil, ps.errorf(t, "%q without a matching if", t.text)
		}
	}
	return ps.simpleStmt()
}

// simpleStmt parses an assignment or expression statement.
func (ps *parseState) simpleStmt() (ast.Stmt, error) {
	line := ps.cur().line
	first, err := ps.expression()
	if err != nil {
		return nil, err
	}
	if !ps.atOp("=") {
		if err := ps.expectNewline(); err != nil {
			return nil, err
		}
		return &ast.ExprStmt{BaseStmt: ast.BaseStmt{SourceLine: line}, Expression: first}, nil
	}

	exprs := []ast.Expr{first}
	for ps.acceptOp("=") {
		e, err := ps.expression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	targets := exprs[:len(exprs)-1]
	for _, tgt := range targets {
		if _, ok := tgt.(*ast.Ident); !ok {
			return nil, ps.errorf(ps.cur(), "cannot assign to %s", ast.Text(tgt))
		}
	}
	if err := ps.expectNewline(); err != nil {
		return nil, err
	}
	return &ast.AssignStmt{
		BaseStmt: ast.BaseStmt{SourceLine: line},
		Targets:  targets,
		Value:    exprs[len(exprs)-1],
	}, nil
}

func (ps *parseState) importStmt() (ast.Stmt, error) {
	line := ps.advance().line // import
	var mods []string
	for {
		name, err := ps.dottedName()
		if err != nil {
			return nil, err
		}
		mods = append(mods, name)
		if !ps.acceptOp(",") {
			break
		}
	}
	if err := ps.expectNewline(); err != nil {
		return nil, err
	}
	return &ast.ImportStmt{BaseStmt: ast.BaseStmt{SourceLine: line}, Modules: mods}, nil
}

func (ps *parseState) fromImportStmt() (ast.Stmt, error) {
	line := ps.advance().line // from
	mod, err := ps.dottedName()
	if err != nil {
		return nil, err
	}
	if !ps.acceptKeyword("import") {
		return nil, ps.errorf(ps.cur(), "expected \"import\", got %s", describe(ps.cur()))
	}
	var names []string
	if ps.acceptOp("*") {
		names = append(names, "*")
	} else {
		for {
			t, err := ps.expectIdent()
			if err != nil {
				return nil, err
			}
			names = append(names, t.text)
			if !ps.acceptOp(",") {
				break
			}
		}
	}
	if err := ps.expectNewline(); err != nil {
		return nil, err
	}
	return &ast.ImportFromStmt{BaseStmt: ast.BaseStmt{SourceLine: line}, Module: mod, Names: names}, nil
}

func (ps *parseState) dottedName() (string, error) {
	t, err := ps.expectIdent()
	if err != nil {
		return "", err
	}
	name := t.text
	for ps.acceptOp(".") {
		t, err := ps.expectIdent()
		if err != nil {
			return "", err
		}
		name += "." + t.text
	}
	return name, nil
}

func (ps *parseState) funcDef() (ast.Stmt, error) {
	line := ps.advance().line // def
	nameTok, err := ps.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := ps.expectOp("("); err != nil {
		return nil, err
	}
	var params []ast.Param
	if !ps.atOp(")") {
		for {
			t, err := ps.expectIdent()
			if err != nil {
				return nil, err
			}
			param := ast.Param{Name: t.text}
			if ps.acceptOp(":") {
				at, err := ps.expectIdent()
				if err != nil {
					return nil, err
				}
				param.Annotation = at.text
			}
			params = append(params, param)
			if !ps.acceptOp(",") {
				break
			}
		}
	}
	if err := ps.expectOp(")"); err != nil {
		return nil, err
	}
	// Return annotations are accepted and discarded.
	if ps.acceptOp("->") {
		if _, err := ps.expectIdent(); err != nil {
			return nil, err
		}
	}
	body, err := ps.suite()
	if err != nil {
		return nil, err
	}
	return &ast.FuncDef{
		BaseStmt: ast.BaseStmt{SourceLine: line},
		Name:     nameTok.text,
		Params:   params,
		Body:     body,
	}, nil
}

func (ps *parseState) ifStmt() (ast.Stmt, error) {
	line := ps.advance().line // if or elif
	cond, err := ps.expression()
	if err != nil {
		return nil, err
	}
	body, err := ps.suite()
	if err != nil {
		return nil, err
	}
	st := &ast.IfStmt{
		BaseStmt:  ast.BaseStmt{SourceLine: line},
		Condition: cond,
		Body:      body,
	}
	if ps.atKeyword("elif") {
		// elif desugars to a nested if in the else body.
		nested, err := ps.ifStmt()
		if err != nil {
			return nil, err
		}
		st.ElseBody = []ast.Stmt{nested}
		return st, nil
	}
	if ps.acceptKeyword("else") {
		st.ElseBody, err = ps.suite()
		if err != nil {
			return nil, err
		}
	}
	return st, nil
}

func (ps *parseState) returnStmt() (ast.Stmt, error) {
	line := ps.advance().line // return
	st := &ast.ReturnStmt{BaseStmt: ast.BaseStmt{SourceLine: line}}
	if !ps.at(tokNewline) && !ps.at(tokEOF) && !ps.at(tokDedent) {
		v, err := ps.expression()
		if err != nil {
			return nil, err
		}
		st.Value = v
	}
	if err := ps.expectNewline(); err != nil {
		return nil, err
	}
	return st, nil
}

// suite parses the body of a compound statement: either an indented
// block, or one simple statement on the same line (def f(): return 1).
func (ps *parseState) suite() ([]ast.Stmt, error) {
	if err := ps.expectOp(":"); err != nil {
		return nil, err
	}
	if ps.at(tokNewline) {
		ps.advance()
		if !ps.at(tokIndent) {
			return nil, ps.errorf(ps.cur(), "expected an indented block")
		}
		ps.advance()
		var body []ast.Stmt
		for !ps.at(tokDedent) && !ps.at(tokEOF) {
			st, err := ps.statement()
			if err != nil {
				return nil, err
			}
			body = append(body, st)
		}
		if ps.at(tokDedent) {
			ps.advance()
		}
		return body, nil
	}
	// Inline suite: a single simple statement.
	var st ast.Stmt
	var err error
	if ps.atKeyword("return") {
		st, err = ps.returnStmt()
	} else {
		st, err = ps.simpleStmt()
	}
	if err != nil {
		return nil, err
	}
	return []ast.Stmt{st}, nil
}

// --- Expressions ---

func (ps *parseState) expression() (ast.Expr, error) {
	return ps.orExpr()
}

func (ps *parseState) orExpr() (ast.Expr, error) {
	left, err := ps.andExpr()
	if err != nil {
		return nil, err
	}
	if !ps.atKeyword("or") {
		return left, nil
	}
	values := []ast.Expr{left}
	for ps.acceptKeyword("or") {
		v, err := ps.andExpr()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return &ast.BoolExpr{Op: "or", Values: values}, nil
}

func (ps *parseState) andExpr() (ast.Expr, error) {
	left, err := ps.notExpr()
	if err != nil {
		return nil, err
	}
	if !ps.atKeyword("and") {
		return left, nil
	}
	values := []ast.Expr{left}
	for ps.acceptKeyword("and") {
		v, err := ps.notExpr()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return &ast.BoolExpr{Op: "and", Values: values}, nil
}

func (ps *parseState) notExpr() (ast.Expr, error) {
	if ps.acceptKeyword("not") {
		operand, err := ps.notExpr()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: "not", Operand: operand}, nil
	}
	return ps.comparison()
}

var compareOps = map[string]bool{
	"==": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true,
}

func (ps *parseState) comparison() (ast.Expr, error) {
	left, err := ps.arith()
	if err != nil {
		return nil, err
	}
	if ps.cur().kind != tokOp || !compareOps[ps.cur().text] {
		return left, nil
	}
	cmp := &ast.CompareExpr{Left: left}
	for ps.cur().kind == tokOp && compareOps[ps.cur().text] {
		op := ps.advance().text
		right, err := ps.arith()
		if err != nil {
			return nil, err
		}
		cmp.Ops = append(cmp.Ops, op)
		cmp.Comparators = append(cmp.Comparators, right)
	}
	return cmp, nil
}

func (ps *parseState) arith() (ast.Expr, error) {
	left, err := ps.term()
	if err != nil {
		return nil, err
	}
	for ps.atOp("+") || ps.atOp("-") {
		op := ps.advance().text
		right, err := ps.term()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (ps *parseState) term() (ast.Expr, error) {
	left, err := ps.unary()
	if err != nil {
		return nil, err
	}
	for ps.atOp("*") || ps.atOp("/") || ps.atOp("%") || ps.atOp("//") {
		op := ps.advance().text
		right, err := ps.unary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (ps *parseState) unary() (ast.Expr, error) {
	if ps.atOp("+") || ps.atOp("-") {
		op := ps.advance().text
		operand, err := ps.unary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: op, Operand: operand}, nil
	}
	return ps.power()
}

func (ps *parseState) power() (ast.Expr, error) {
	base, err := ps.postfix()
	if err != nil {
		return nil, err
	}
	if ps.acceptOp("**") {
		exp, err := ps.unary()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Left: base, Op: "**", Right: exp}, nil
	}
	return base, nil
}

func (ps *parseState) postfix() (ast.Expr, error) {
	e, err := ps.primary()
	if err != nil {
		return nil, err
	}
	for ps.atOp("(") {
		ps.advance()
		var args []ast.Expr
		if !ps.atOp(")") {
			for {
				a, err := ps.expression()
				if err != nil {
					return nil, err
				}
				args = append(args, a)
				if !ps.acceptOp(",") {
					break
				}
			}
		}
		if err := ps.expectOp(")"); err != nil {
			return nil, err
		}
		e = &ast.CallExpr{Func: e, Args: args}
	}
	return e, nil
}

func (ps *parseState) primary() (ast.Expr, error) {
	t := ps.cur()
	switch t.kind {
	case tokNumber:
		ps.advance()
		return &ast.NumberLit{Value: t.text}, nil
	case tokString:
		ps.advance()
		return &ast.StringLit{Value: t.text}, nil
	case tokIdent:
		ps.advance()
		return &ast.Ident{Name: t.text}, nil
	case tokKeyword:
		switch t.text {
		case "True":
			ps.advance()
			return &ast.BoolLit{Value: true}, nil
		case "False":
			ps.advance()
			return &ast.BoolLit{Value: false}, nil
		}
	case tokOp:
		if t.text == "(" {
			ps.advance()
			e, err := ps.expression()
			if err != nil {
				return nil, err
			}
			if err := ps.expectOp(")"); err != nil {
				return nil, err
			}
			return e, nil
		}
	}
	return nil, ps.errorf(t, "unexpected %s", describe(t))
}
