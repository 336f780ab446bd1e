// Package parser turns the participle parse tree from the grammar
// package into the AST consumed by code generation, resolving number
// literals to arbitrary-precision integers along the way.
package parser

import (
	"fmt"
	"math/big"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"yulc/grammar"
	"yulc/internal/ast"
)

// Error is a positional problem found while parsing or converting.
type Error struct {
	Position ast.Position
	Message  string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Position.Filename, e.Position.Line, e.Position.Column, e.Message)
}

// ParseFile reads and parses one source file.
func ParseFile(path string) (*ast.Block, []Error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, []Error{{Position: ast.Position{Filename: path}, Message: err.Error()}}
	}
	return ParseSource(path, string(source))
}

// ParseSource parses a compilation unit and converts it to the AST.
// A nil block is returned when the surface syntax itself does not parse.
func ParseSource(sourceName, source string) (*ast.Block, []Error) {
	src, err := grammar.ParseString(sourceName, source)
	if err != nil {
		if pe, ok := err.(participle.Error); ok {
			return nil, []Error{{Position: convertPos(pe.Position()), Message: pe.Message()}}
		}
		return nil, []Error{{Position: ast.Position{Filename: sourceName}, Message: err.Error()}}
	}

	c := &converter{}
	block := c.convertBlock(src.Block)
	if len(c.errors) > 0 {
		return nil, c.errors
	}
	return block, nil
}

type converter struct {
	errors []Error
}

func (c *converter) errorf(pos lexer.Position, format string, args ...interface{}) {
	c.errors = append(c.errors, Error{Position: convertPos(pos), Message: fmt.Sprintf(format, args...)})
}

func convertPos(pos lexer.Position) ast.Position {
	return ast.Position{
		Filename: pos.Filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}

func (c *converter) convertBlock(block *grammar.Block) *ast.Block {
	out := &ast.Block{Pos: convertPos(block.Pos)}
	for _, stmt := range block.Statements {
		out.Statements = append(out.Statements, c.convertStatement(stmt))
	}
	return out
}

func (c *converter) convertStatement(stmt *grammar.Statement) ast.Statement {
	switch {
	case stmt.Block != nil:
		return c.convertBlock(stmt.Block)
	case stmt.Function != nil:
		return c.convertFunction(stmt.Function)
	case stmt.Let != nil:
		decl := &ast.VariableDeclaration{
			Pos:       convertPos(stmt.Let.Pos),
			Variables: stmt.Let.Names,
		}
		if stmt.Let.Value != nil {
			decl.Value = c.convertExpr(stmt.Let.Value)
		}
		return decl
	case stmt.Assign != nil:
		return &ast.Assignment{
			Pos:           convertPos(stmt.Assign.Pos),
			VariableNames: stmt.Assign.Targets,
			Value:         c.convertExpr(stmt.Assign.Value),
		}
	case stmt.If != nil:
		return &ast.If{
			Pos:       convertPos(stmt.If.Pos),
			Condition: c.convertExpr(stmt.If.Condition),
			Body:      c.convertBlock(stmt.If.Body),
		}
	case stmt.Switch != nil:
		return c.convertSwitch(stmt.Switch)
	case stmt.For != nil:
		return &ast.ForLoop{
			Pos:       convertPos(stmt.For.Pos),
			Pre:       c.convertBlock(stmt.For.Pre),
			Condition: c.convertExpr(stmt.For.Condition),
			Post:      c.convertBlock(stmt.For.Post),
			Body:      c.convertBlock(stmt.For.Body),
		}
	case stmt.Break != nil:
		return &ast.Break{Pos: convertPos(stmt.Break.Pos)}
	case stmt.Continue != nil:
		return &ast.Continue{Pos: convertPos(stmt.Continue.Pos)}
	case stmt.Leave != nil:
		return &ast.Leave{Pos: convertPos(stmt.Leave.Pos)}
	case stmt.Expr != nil:
		return &ast.ExpressionStatement{
			Pos:        convertPos(stmt.Expr.Pos),
			Expression: c.convertExpr(stmt.Expr),
		}
	}
	c.errorf(stmt.Pos, "empty statement")
	return &ast.Block{Pos: convertPos(stmt.Pos)}
}

func (c *converter) convertFunction(fn *grammar.Function) *ast.FunctionDefinition {
	return &ast.FunctionDefinition{
		Pos:             convertPos(fn.Pos),
		Name:            fn.Name,
		Parameters:      fn.Params,
		ReturnVariables: fn.Returns,
		Body:            c.convertBlock(fn.Body),
	}
}

func (c *converter) convertSwitch(sw *grammar.Switch) *ast.Switch {
	out := &ast.Switch{
		Pos:        convertPos(sw.Pos),
		Expression: c.convertExpr(sw.Expr),
	}
	for _, cs := range sw.Cases {
		converted := ast.SwitchCase{
			Pos:  convertPos(cs.Pos),
			Body: c.convertBlock(cs.Body),
		}
		if cs.Value != nil {
			converted.Value = c.convertLiteral(cs.Value)
		}
		out.Cases = append(out.Cases, converted)
	}
	if len(out.Cases) == 0 {
		c.errorf(sw.Pos, "switch statement without cases")
	}
	return out
}

func (c *converter) convertExpr(expr *grammar.Expr) ast.Expression {
	switch {
	case expr.Call != nil:
		call := &ast.FunctionCall{
			Pos:          convertPos(expr.Call.Pos),
			FunctionName: expr.Call.Name,
		}
		for _, arg := range expr.Call.Args {
			call.Arguments = append(call.Arguments, c.convertExpr(arg))
		}
		return call
	case expr.Literal != nil:
		return c.convertLiteral(expr.Literal)
	case expr.Ident != nil:
		return &ast.Identifier{Pos: convertPos(expr.Pos), Name: *expr.Ident}
	}
	c.errorf(expr.Pos, "empty expression")
	return &ast.Literal{Pos: convertPos(expr.Pos), Text: "0", Value: big.NewInt(0)}
}

func (c *converter) convertLiteral(lit *grammar.Literal) *ast.Literal {
	out := &ast.Literal{Pos: convertPos(lit.Pos)}
	switch {
	case lit.Hex != nil:
		out.Text = *lit.Hex
		value, ok := new(big.Int).SetString((*lit.Hex)[2:], 16)
		if !ok {
			c.errorf(lit.Pos, "invalid hex literal %q", *lit.Hex)
			value = big.NewInt(0)
		}
		out.Value = value
	case lit.Decimal != nil:
		out.Text = *lit.Decimal
		value, ok := new(big.Int).SetString(*lit.Decimal, 10)
		if !ok {
			c.errorf(lit.Pos, "invalid number literal %q", *lit.Decimal)
			value = big.NewInt(0)
		}
		out.Value = value
	case lit.Str != nil:
		// Strip the surrounding quotes; Value stays nil for strings.
		out.Text = (*lit.Str)[1 : len(*lit.Str)-1]
	}
	return out
}
