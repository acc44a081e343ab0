package ast

// Node is the interface for all AST nodes.
type Node interface {
	node()
}

// Stmt is the interface for statement nodes.
type Stmt interface {
	Node
	stmt()
	StmtLine() int
}

// BaseStmt provides common fields for all statements.
type BaseStmt struct {
	SourceLine int // start line in the original source
}

func (b BaseStmt) StmtLine() int { return b.SourceLine }

// Expr is the interface for expression nodes.
type Expr interface {
	Node
	expr()
}

// Module is the root node.
type Module struct {
	Statements []Stmt
	SourceFile string // display path of the source file
}

func (m *Module) node() {}

// ImportStmt represents import mod [, mod2, ...].
type ImportStmt struct {
	BaseStmt
	Modules []string
}

func (i *ImportStmt) node() {}
func (i *ImportStmt) stmt() {}

// ImportFromStmt represents from mod import name [, name2, ...].
type ImportFromStmt struct {
	BaseStmt
	Module string
	Names  []string
}

func (i *ImportFromStmt) node() {}
func (i *ImportFromStmt) stmt() {}

// Param is a function parameter with an optional type annotation.
type Param struct {
	Name       string
	Annotation string // empty when the parameter is unannotated
}

// FuncDef represents def name(params): body.
type FuncDef struct {
	BaseStmt
	Name   string
	Params []Param
	Body   []Stmt
}

func (f *FuncDef) node() {}
func (f *FuncDef) stmt() {}

// AssignStmt represents target = value, including chained
// assignments like a = b = 1 (one target per link).
type AssignStmt struct {
	BaseStmt
	Targets []Expr
	Value   Expr
}

func (a *AssignStmt) node() {}
func (a *AssignStmt) stmt() {}

// IfStmt represents if/elif/else. An elif clause parses as a
// nested IfStmt in ElseBody.
type IfStmt struct {
	BaseStmt
	Condition Expr
	Body      []Stmt
	ElseBody  []Stmt
}

func (i *IfStmt) node() {}
func (i *IfStmt) stmt() {}

// ReturnStmt represents return [expr].
type ReturnStmt struct {
	BaseStmt
	Value Expr // nil if bare return
}

func (r *ReturnStmt) node() {}
func (r *ReturnStmt) stmt() {}

// ExprStmt is a statement that is just an expression.
type ExprStmt struct {
	BaseStmt
	Expression Expr
}

func (e *ExprStmt) node() {}
func (e *ExprStmt) stmt() {}

// NumberLit is an integer or floating point literal, kept as
// source text so it renders verbatim.
type NumberLit struct {
	Value string
}

func (n *NumberLit) node() {}
func (n *NumberLit) expr() {}

// StringLit is a string literal (with quotes stripped).
type StringLit struct {
	Value string
}

func (s *StringLit) node() {}
func (s *StringLit) expr() {}

// BoolLit is True or False.
type BoolLit struct {
	Value bool
}

func (b *BoolLit) node() {}
func (b *BoolLit) expr() {}

// Ident is a variable/function reference.
type Ident struct {
	Name string
}

func (i *Ident) node() {}
func (i *Ident) expr() {}

// BinaryExpr represents left op right for arithmetic operators.
type BinaryExpr struct {
	Left  Expr
	Op    string
	Right Expr
}

func (b *BinaryExpr) node() {}
func (b *BinaryExpr) expr() {}

// CompareExpr represents a comparison chain: Left Ops[0]
// Comparators[0] Ops[1] Comparators[1] ...
type CompareExpr struct {
	Left        Expr
	Ops         []string
	Comparators []Expr
}

func (c *CompareExpr) node() {}
func (c *CompareExpr) expr() {}

// BoolExpr represents values joined by and/or.
type BoolExpr struct {
	Op     string // "and" or "or"
	Values []Expr
}

func (b *BoolExpr) node() {}
func (b *BoolExpr) expr() {}

// UnaryExpr represents op operand (not, unary plus/minus).
type UnaryExpr struct {
	Op      string // "not", "+", "-"
	Operand Expr
}

func (u *UnaryExpr) node() {}
func (u *UnaryExpr) expr() {}

// CallExpr represents func(args...).
type CallExpr struct {
	Func Expr
	Args []Expr
}

func (c *CallExpr) node() {}
func (c *CallExpr) expr() {}
