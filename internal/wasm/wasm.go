// Package wasm holds the structured target-module tree produced by code
// generation: functions made of labeled blocks, loops and branches over
// a single i64 value type, plus the import and global declarations the
// module needs.
package wasm

// Expression is any instruction node. Instructions that produce no
// value (assignments, branches) are Expressions too; the tree is
// statement-shaped and the printer flattens it.
type Expression interface {
	isExpression()
}

// Literal is an i64 constant.
type Literal struct {
	Value uint64
}

// StringLiteral is a raw text payload, only valid as an argument to a
// builtin that declares the parameter literal (dataoffset, datasize).
type StringLiteral struct {
	Value string
}

type LocalVariable struct {
	Name string
}

type GlobalVariable struct {
	Name string
}

type LocalAssignment struct {
	VariableName string
	Value        Expression
}

type GlobalAssignment struct {
	VariableName string
	Value        Expression
}

// FunctionCall calls a function defined in the module or imported into
// it under the same internal name.
type FunctionCall struct {
	FunctionName string
	Arguments    []Expression
}

// BuiltinCall applies a wasm instruction directly.
type BuiltinCall struct {
	FunctionName string
	Arguments    []Expression
}

// If has a then-sequence and an optional else-sequence. A nil else and
// an empty-but-allocated else print identically; the distinction only
// matters while the tree is under construction.
type If struct {
	Condition      Expression
	Statements     []Expression
	ElseStatements []Expression
}

// Block is a labeled or unlabeled sequence; a branch to its label exits
// past its end.
type Block struct {
	LabelName  string
	Statements []Expression
}

// Loop is a labeled sequence; a branch to its label restarts it.
type Loop struct {
	LabelName  string
	Statements []Expression
}

type Branch struct {
	Label string
}

type BranchIf struct {
	Label     string
	Condition Expression
}

func (*Literal) isExpression()          {}
func (*StringLiteral) isExpression()    {}
func (*LocalVariable) isExpression()    {}
func (*GlobalVariable) isExpression()   {}
func (*LocalAssignment) isExpression()  {}
func (*GlobalAssignment) isExpression() {}
func (*FunctionCall) isExpression()     {}
func (*BuiltinCall) isExpression()      {}
func (*If) isExpression()               {}
func (*Block) isExpression()            {}
func (*Loop) isExpression()             {}
func (*Branch) isExpression()           {}
func (*BranchIf) isExpression()         {}

// VariableDeclaration declares one i64 function local.
type VariableDeclaration struct {
	VariableName string
}

// GlobalVariableDeclaration declares one mutable i64 module global.
type GlobalVariableDeclaration struct {
	VariableName string
}

// FunctionImport binds an external function into the module under an
// internal name. ReturnType is nil for void imports.
type FunctionImport struct {
	Module       string
	ExternalName string
	InternalName string
	ParamTypes   []string
	ReturnType   *string
}

// FunctionDefinition is one module function. When Returns is set the
// body's trailing expression is the function result.
type FunctionDefinition struct {
	Name           string
	ParameterNames []string
	Locals         []VariableDeclaration
	Returns        bool
	Body           []Expression
}

// Module is the whole translation result, ready for serialization.
type Module struct {
	Imports   []FunctionImport
	Globals   []GlobalVariableDeclaration
	Functions []FunctionDefinition
}
