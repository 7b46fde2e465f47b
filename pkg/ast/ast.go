// Package ast defines the Pakhi abstract syntax tree produced by
// pkg/parser and walked by pkg/interpreter.
package ast

import "github.com/pakhi-lang/pakhi/pkg/token"

// Position re-exports the lexer/parser position type so callers outside
// pkg/token don't need to import it directly for every node field.
type Position = token.Position

// Node is the common interface implemented by every AST node.
type Node interface {
	Pos() Position
}

// Statement is any top-level or block-level statement form.
type Statement interface {
	Node
	statementNode()
}

// Expression is any value-producing syntax form.
type Expression interface {
	Node
	expressionNode()
}

//-----------------------------------------------------------------------------
// Module
//-----------------------------------------------------------------------------

// Module is the parsed form of a single Pakhi source file.
type Module struct {
	Path string
	Body []Statement
}

//-----------------------------------------------------------------------------
// Statements
//-----------------------------------------------------------------------------

// VarDecl is `নাম IDENT = EXPR ;`.
type VarDecl struct {
	Position Position
	Name     string
	Value    Expression
}

func (n *VarDecl) Pos() Position { return n.Position }
func (*VarDecl) statementNode()  {}

// Assign is assignment to a name, a list index, or a record key. Target
// is always an *Identifier or an *IndexExpr chain rooted at one — the
// parser enforces this shape (see pkg/parser).
type Assign struct {
	Position Position
	Target   Expression
	Value    Expression
}

func (n *Assign) Pos() Position { return n.Position }
func (*Assign) statementNode()  {}

// Print is `দেখাও EXPR ;` or, with NoNewline set, `_দেখাও EXPR ;` — the
// same statement without the trailing newline.
type Print struct {
	Position  Position
	Value     Expression
	NoNewline bool
}

func (n *Print) Pos() Position { return n.Position }
func (*Print) statementNode()  {}

// If is `যদি EXPR { ... } [অথবা { ... }]`.
type If struct {
	Position Position
	Cond     Expression
	Then     []Statement
	Else     []Statement // nil when no অথবা branch
}

func (n *If) Pos() Position { return n.Position }
func (*If) statementNode()  {}

// Loop is `লুপ { ... } আবার ;`.
type Loop struct {
	Position Position
	Body     []Statement
}

func (n *Loop) Pos() Position { return n.Position }
func (*Loop) statementNode()  {}

// Break is `থামাও ;`.
type Break struct {
	Position Position
}

func (n *Break) Pos() Position { return n.Position }
func (*Break) statementNode()  {}

// FuncDecl is `ফাং IDENT ( params ) { ... } ফেরত ;`.
type FuncDecl struct {
	Position Position
	Name     string
	Params   []string
	Body     []Statement
}

func (n *FuncDecl) Pos() Position { return n.Position }
func (*FuncDecl) statementNode()  {}

// Return is `ফেরত [EXPR] ;`. Value is nil for the no-expression form.
type Return struct {
	Position Position
	Value    Expression
}

func (n *Return) Pos() Position { return n.Position }
func (*Return) statementNode()  {}

// ModuleDecl is `মডিউল IDENT = "PATH" ;`.
type ModuleDecl struct {
	Position Position
	Name     string
	Path     string
}

func (n *ModuleDecl) Pos() Position { return n.Position }
func (*ModuleDecl) statementNode()  {}

// ExprStmt is an expression evaluated for its side effect.
type ExprStmt struct {
	Position Position
	Value    Expression
}

func (n *ExprStmt) Pos() Position { return n.Position }
func (*ExprStmt) statementNode()  {}

//-----------------------------------------------------------------------------
// Expressions
//-----------------------------------------------------------------------------

// NumberLit is a numeric literal, already converted to its float64 value
// (Bengali digits are normalized to ASCII before parsing).
type NumberLit struct {
	Position Position
	Value    float64
}

func (n *NumberLit) Pos() Position { return n.Position }
func (*NumberLit) expressionNode() {}

// StringLit is a string literal, escapes already decoded.
type StringLit struct {
	Position Position
	Value    string
}

func (n *StringLit) Pos() Position { return n.Position }
func (*StringLit) expressionNode() {}

// BoolLit is সত্য / মিথ্যা.
type BoolLit struct {
	Position Position
	Value    bool
}

func (n *BoolLit) Pos() Position { return n.Position }
func (*BoolLit) expressionNode() {}

// NullLit is শূন্য.
type NullLit struct {
	Position Position
}

func (n *NullLit) Pos() Position { return n.Position }
func (*NullLit) expressionNode() {}

// ListLit is `[e1, e2, ...]`.
type ListLit struct {
	Position Position
	Elements []Expression
}

func (n *ListLit) Pos() Position { return n.Position }
func (*ListLit) expressionNode() {}

// RecordLit is `@{ "k" -> v, ... }`. Keys and Values are parallel slices
// in source order; duplicate keys are resolved last-write-wins at
// evaluation time.
type RecordLit struct {
	Position Position
	Keys     []Expression
	Values   []Expression
}

func (n *RecordLit) Pos() Position { return n.Position }
func (*RecordLit) expressionNode() {}

// Identifier is a variable or parameter reference.
type Identifier struct {
	Position Position
	Name     string
}

func (n *Identifier) Pos() Position { return n.Position }
func (*Identifier) expressionNode() {}

// IndexExpr is `e[e]`.
type IndexExpr struct {
	Position Position
	Target   Expression
	Index    Expression
}

func (n *IndexExpr) Pos() Position { return n.Position }
func (*IndexExpr) expressionNode() {}

// SlashExpr is `IDENT/IDENT` (or, more generally, `postfix/IDENT`). It is
// ambiguous between module-member access and division until evaluation
// time resolves it by inspecting Left's kind.
type SlashExpr struct {
	Position  Position
	Left      Expression
	RightName string
	RightPos  Position
}

func (n *SlashExpr) Pos() Position { return n.Position }
func (*SlashExpr) expressionNode() {}

// Unary is `-e` or `!e`.
type Unary struct {
	Position Position
	Op       string
	Operand  Expression
}

func (n *Unary) Pos() Position { return n.Position }
func (*Unary) expressionNode() {}

// Binary is any binary operator. `/` is a Binary only when the token
// after it is not an identifier; otherwise the parser builds a SlashExpr.
type Binary struct {
	Position Position
	Op       string
	Left     Expression
	Right    Expression
}

func (n *Binary) Pos() Position { return n.Position }
func (*Binary) expressionNode() {}

// Call is `callee(args...)`.
type Call struct {
	Position Position
	Callee   Expression
	Args     []Expression
}

func (n *Call) Pos() Position { return n.Position }
func (*Call) expressionNode() {}
