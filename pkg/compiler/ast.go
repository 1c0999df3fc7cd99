package compiler

import "fmt"

// NodeKind discriminates the variants of Node.
type NodeKind int

const (
	ProgramNode NodeKind = iota
	FunctionNode
	StatementNode
	ExpressionNode
	IdentifierNode
	ConstantNode
)

var nodeKindNames = [...]string{
	ProgramNode:    "Program",
	FunctionNode:   "Function",
	StatementNode:  "Statement",
	ExpressionNode: "Expression",
	IdentifierNode: "Identifier",
	ConstantNode:   "Constant",
}

func (k NodeKind) String() string {
	if int(k) >= 0 && int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

// Node is implemented by every AST variant. Children are returned in
// source order; leaves return nil.
type Node interface {
	Kind() NodeKind
	Children() []Node
	String() string
}

// Program is the root of a translation unit.
//
//	int main(void) { return 2; }
//	^^^^^^^^^^^^^^^^^^^^^^^^^^^^  Program{Function: ...}
type Program struct {
	Function *Function
}

func (*Program) Kind() NodeKind     { return ProgramNode }
func (p *Program) Children() []Node { return []Node{p.Function} }
func (p *Program) String() string   { return fmt.Sprintf("Program(%s)", p.Function) }

// Function is a parameterless int function.
//
//	int main(void) { return 2; }
//	    ^^^^         ^^^^^^^^^
//	    Name         Body
type Function struct {
	Name *Identifier
	Body *Statement
}

func (*Function) Kind() NodeKind     { return FunctionNode }
func (f *Function) Children() []Node { return []Node{f.Name, f.Body} }
func (f *Function) String() string {
	return fmt.Sprintf("Function(%s, %s)", f.Name, f.Body)
}

// Statement is a return statement.
type Statement struct {
	Expr *Expression
}

func (*Statement) Kind() NodeKind     { return StatementNode }
func (s *Statement) Children() []Node { return []Node{s.Expr} }
func (s *Statement) String() string   { return fmt.Sprintf("Statement(%s)", s.Expr) }

// Expression wraps a single constant.
type Expression struct {
	Value *Constant
}

func (*Expression) Kind() NodeKind     { return ExpressionNode }
func (e *Expression) Children() []Node { return []Node{e.Value} }
func (e *Expression) String() string   { return fmt.Sprintf("Expression(%s)", e.Value) }

// Identifier is a name.
type Identifier struct {
	Name string
}

func (*Identifier) Kind() NodeKind   { return IdentifierNode }
func (*Identifier) Children() []Node { return nil }
func (i *Identifier) String() string { return fmt.Sprintf("Identifier(%q)", i.Name) }

// Constant is a compile-time signed 32-bit integer.
type Constant struct {
	Value int32
}

func (*Constant) Kind() NodeKind   { return ConstantNode }
func (*Constant) Children() []Node { return nil }
func (c *Constant) String() string { return fmt.Sprintf("Constant(%d)", c.Value) }
