package ast

import "math/big"

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

type Node interface {
	NodePos() Position
	String() string
}

// Statement is the closed set of statement nodes a block can contain.
type Statement interface {
	Node
	isStatement()
}

// Expression is the closed set of value-producing nodes.
type Expression interface {
	Node
	isExpression()
}

// Block represents a brace-delimited statement sequence.
// The top level of a compilation unit is a Block whose statements are
// all function definitions.
type Block struct {
	Pos        Position
	Statements []Statement
}

// FunctionDefinition represents a function with named return variables.
// Example: "function f(a, b) -> x, y { ... }"
type FunctionDefinition struct {
	Pos             Position
	Name            string
	Parameters      []string
	ReturnVariables []string
	Body            *Block
}

// VariableDeclaration represents a let statement, with or without an
// initializer. A single initializer can populate several variables when
// it is a call to a multi-value function.
// Example: "let x, y := f(1)"
type VariableDeclaration struct {
	Pos       Position
	Variables []string
	Value     Expression // nil when declared without initializer
}

// Assignment writes an expression into one or more existing variables.
// Example: "x, y := f(1)"
type Assignment struct {
	Pos           Position
	VariableNames []string
	Value         Expression
}

// ExpressionStatement is an expression evaluated for its side effects.
type ExpressionStatement struct {
	Pos        Position
	Expression Expression
}

// If has no else branch; the surface language does not have one.
type If struct {
	Pos       Position
	Condition Expression
	Body      *Block
}

// SwitchCase is one arm of a switch. A nil Value marks the default case,
// which must come last.
type SwitchCase struct {
	Pos   Position
	Value *Literal
	Body  *Block
}

type Switch struct {
	Pos        Position
	Expression Expression
	Cases      []SwitchCase
}

// ForLoop carries the classic four parts. Variables declared in Pre are
// visible to the condition, body and post block.
// Example: "for { let i := 0 } lt(i, 10) { i := add(i, 1) } { ... }"
type ForLoop struct {
	Pos       Position
	Pre       *Block
	Condition Expression
	Post      *Block
	Body      *Block
}

type Break struct {
	Pos Position
}

type Continue struct {
	Pos Position
}

// Leave exits the enclosing function, like an early return.
type Leave struct {
	Pos Position
}

type FunctionCall struct {
	Pos          Position
	FunctionName string
	Arguments    []Expression
}

type Identifier struct {
	Pos  Position
	Name string
}

// Literal is a number or string literal. Value is nil for string
// literals; Text always holds the raw payload without quotes.
type Literal struct {
	Pos   Position
	Text  string
	Value *big.Int
}
