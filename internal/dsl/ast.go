package dsl

// Program is the parsed form of a DSL script: an ordered list of
// statements, executed left to right with no hoisting.
type Program struct {
	Statements []Statement
}

// Statement is one of Assignment, MethodCall, or Call.
type Statement interface {
	statementNode()
}

// Assignment is `IDENT = expr`.
type Assignment struct {
	Target string
	Value  Expr
}

// MethodCall is `IDENT.IDENT(exprList)` — an operation on an environment
// handle, e.g. `PATH.prepend("/usr/local/bin")`.
type MethodCall struct {
	Receiver string
	Method   string
	Args     []Expr
}

// Call is `IDENT(exprList)` — a free call to one of the recorder methods.
type Call struct {
	Func string
	Args []Expr
}

func (Assignment) statementNode() {}
func (MethodCall) statementNode() {}
func (Call) statementNode()       {}

// Expr is one of StringLit, ListLit, or Ident.
type Expr interface {
	exprNode()
}

// StringLit is a quoted string literal. Its Value is exactly the text
// between the quotes — no interpolation happens at this layer; $ and !
// sequences survive verbatim for the expansion engine to process later.
type StringLit struct {
	Value string
}

// ListLit is a `[expr, expr, ...]` sequence literal.
type ListLit struct {
	Elements []Expr
}

// Ident is a bare identifier used as a value, referring to a previously
// assigned local variable.
type Ident struct {
	Name string
}

func (StringLit) exprNode() {}
func (ListLit) exprNode()   {}
func (Ident) exprNode()     {}
