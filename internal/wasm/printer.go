package wasm

import (
	"fmt"
	"strings"
)

// Printer renders a module in the textual format. Output order is
// exactly the module's import, global and function order.
type Printer struct {
	indent int
	output strings.Builder
}

func NewPrinter() *Printer {
	return &Printer{}
}

// Print returns the text representation of a module.
func Print(module *Module) string {
	p := NewPrinter()
	p.printModule(module)
	return p.output.String()
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.output.WriteString("  ")
	}
}

func (p *Printer) writeLine(format string, args ...interface{}) {
	p.writeIndent()
	p.output.WriteString(fmt.Sprintf(format, args...))
	p.output.WriteString("\n")
}

func (p *Printer) printModule(module *Module) {
	p.writeLine("(module")
	p.indent++

	for _, imp := range module.Imports {
		p.printImport(imp)
	}
	for _, global := range module.Globals {
		p.writeLine("(global $%s (mut i64) (i64.const 0))", global.VariableName)
	}
	for _, fun := range module.Functions {
		p.printFunction(fun)
	}

	p.indent--
	p.writeLine(")")
}

func (p *Printer) printImport(imp FunctionImport) {
	var sig strings.Builder
	sig.WriteString(fmt.Sprintf("(func $%s", imp.InternalName))
	if len(imp.ParamTypes) > 0 {
		sig.WriteString(" (param " + strings.Join(imp.ParamTypes, " ") + ")")
	}
	if imp.ReturnType != nil {
		sig.WriteString(fmt.Sprintf(" (result %s)", *imp.ReturnType))
	}
	sig.WriteString(")")
	p.writeLine("(import %q %q %s)", imp.Module, imp.ExternalName, sig.String())
}

func (p *Printer) printFunction(fun FunctionDefinition) {
	header := fmt.Sprintf("(func $%s", fun.Name)
	for _, param := range fun.ParameterNames {
		header += fmt.Sprintf(" (param $%s i64)", param)
	}
	if fun.Returns {
		header += " (result i64)"
	}
	p.writeLine("%s", header)
	p.indent++

	for _, local := range fun.Locals {
		p.writeLine("(local $%s i64)", local.VariableName)
	}
	for _, stmt := range fun.Body {
		p.printStatement(stmt)
	}

	p.indent--
	p.writeLine(")")
}

// printStatement writes structured instructions over several lines and
// everything else as one inline s-expression.
func (p *Printer) printStatement(expr Expression) {
	switch e := expr.(type) {
	case *Block:
		if e.LabelName != "" {
			p.writeLine("(block $%s", e.LabelName)
		} else {
			p.writeLine("(block")
		}
		p.indent++
		for _, stmt := range e.Statements {
			p.printStatement(stmt)
		}
		p.indent--
		p.writeLine(")")
	case *Loop:
		p.writeLine("(loop $%s", e.LabelName)
		p.indent++
		for _, stmt := range e.Statements {
			p.printStatement(stmt)
		}
		p.indent--
		p.writeLine(")")
	case *If:
		p.writeLine("(if %s", p.exprString(e.Condition))
		p.indent++
		p.writeLine("(then")
		p.indent++
		for _, stmt := range e.Statements {
			p.printStatement(stmt)
		}
		p.indent--
		p.writeLine(")")
		if len(e.ElseStatements) > 0 {
			p.writeLine("(else")
			p.indent++
			for _, stmt := range e.ElseStatements {
				p.printStatement(stmt)
			}
			p.indent--
			p.writeLine(")")
		}
		p.indent--
		p.writeLine(")")
	default:
		p.writeLine("%s", p.exprString(expr))
	}
}

func (p *Printer) exprString(expr Expression) string {
	switch e := expr.(type) {
	case *Literal:
		return fmt.Sprintf("(i64.const %d)", e.Value)
	case *StringLiteral:
		return fmt.Sprintf("%q", e.Value)
	case *LocalVariable:
		return fmt.Sprintf("(local.get $%s)", e.Name)
	case *GlobalVariable:
		return fmt.Sprintf("(global.get $%s)", e.Name)
	case *LocalAssignment:
		return fmt.Sprintf("(local.set $%s %s)", e.VariableName, p.exprString(e.Value))
	case *GlobalAssignment:
		return fmt.Sprintf("(global.set $%s %s)", e.VariableName, p.exprString(e.Value))
	case *FunctionCall:
		return p.callString("call $"+e.FunctionName, e.Arguments)
	case *BuiltinCall:
		return p.callString(e.FunctionName, e.Arguments)
	case *Branch:
		return fmt.Sprintf("(br $%s)", e.Label)
	case *BranchIf:
		return fmt.Sprintf("(br_if $%s %s)", e.Label, p.exprString(e.Condition))
	default:
		// Structured instructions nested inside a value position do not
		// occur in generated code.
		return fmt.Sprintf("<%T>", expr)
	}
}

func (p *Printer) callString(head string, args []Expression) string {
	parts := []string{head}
	for _, arg := range args {
		parts = append(parts, p.exprString(arg))
	}
	return "(" + strings.Join(parts, " ") + ")"
}
