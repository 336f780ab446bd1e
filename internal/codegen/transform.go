// Package codegen translates the source tree into a wasm module. The
// translation is a single recursive walk: structured control flow
// becomes labeled blocks, loops and branches; functions with several
// return variables return the first value directly and pass the rest
// through module globals shared by every call site.
package codegen

import (
	"fmt"
	"strings"

	"yulc/internal/ast"
	"yulc/internal/dialect"
	"yulc/internal/names"
	"yulc/internal/wasm"
)

// CodeTransform carries all transform state. The import table, its
// insertion order and the global slot list live for the whole run; the
// remaining fields are reset around each function translation.
type CodeTransform struct {
	dialect *dialect.Dialect
	names   *names.Dispenser

	imports     map[string]*wasm.FunctionImport
	importOrder []string
	globals     []wasm.GlobalVariableDeclaration

	localVariables    []wasm.VariableDeclaration
	breakContinue     []labelPair
	functionBodyLabel string
}

type labelPair struct {
	breakLabel    string
	continueLabel string
}

// Transform translates a whole compilation unit. Every top-level
// statement must be a function definition; the input is assumed to be
// validated and any violation is a programming error, reported by
// panicking.
func Transform(d *dialect.Dialect, object *ast.Block) wasm.Module {
	c := &CodeTransform{
		dialect: d,
		names:   names.NewDispenser(names.Collect(object)),
		imports: make(map[string]*wasm.FunctionImport),
	}

	var module wasm.Module
	for _, stmt := range object.Statements {
		fun, ok := stmt.(*ast.FunctionDefinition)
		if !ok {
			panic(fmt.Sprintf("expected only function definitions at the top level, got %T", stmt))
		}
		module.Functions = append(module.Functions, c.translateFunction(fun))
	}

	for _, name := range c.importOrder {
		module.Imports = append(module.Imports, *c.imports[name])
	}
	module.Globals = c.globals

	return module
}

func (c *CodeTransform) translateFunction(fun *ast.FunctionDefinition) wasm.FunctionDefinition {
	out := wasm.FunctionDefinition{
		Name:           fun.Name,
		ParameterNames: append([]string(nil), fun.Parameters...),
		Returns:        len(fun.ReturnVariables) > 0,
	}
	// Return variables are plain locals so the body can assign to them.
	for _, ret := range fun.ReturnVariables {
		out.Locals = append(out.Locals, wasm.VariableDeclaration{VariableName: ret})
	}

	if len(c.localVariables) != 0 {
		panic("local variables leaked from a previous function translation")
	}
	if c.functionBodyLabel != "" {
		panic("function body label leaked from a previous function translation")
	}

	c.functionBodyLabel = c.newLabel()
	out.Body = []wasm.Expression{&wasm.Block{
		LabelName:  c.functionBodyLabel,
		Statements: c.visitStatements(fun.Body.Statements),
	}}
	out.Locals = append(out.Locals, c.localVariables...)

	c.localVariables = nil
	c.functionBodyLabel = ""

	if len(fun.ReturnVariables) > 0 {
		// The first return variable falls off the end of the body; the
		// rest are handed over in globals.
		c.allocateGlobals(len(fun.ReturnVariables) - 1)
		for i := 1; i < len(fun.ReturnVariables); i++ {
			out.Body = append(out.Body, &wasm.GlobalAssignment{
				VariableName: c.globals[i-1].VariableName,
				Value:        &wasm.LocalVariable{Name: fun.ReturnVariables[i]},
			})
		}
		out.Body = append(out.Body, &wasm.LocalVariable{Name: fun.ReturnVariables[0]})
	}
	return out
}

func (c *CodeTransform) visitStatements(stmts []ast.Statement) []wasm.Expression {
	out := make([]wasm.Expression, 0, len(stmts))
	for _, stmt := range stmts {
		out = append(out, c.visitStatement(stmt))
	}
	return out
}

func (c *CodeTransform) visitStatement(stmt ast.Statement) wasm.Expression {
	switch s := stmt.(type) {
	case *ast.VariableDeclaration:
		variableNames := make([]string, 0, len(s.Variables))
		for _, name := range s.Variables {
			variableNames = append(variableNames, name)
			c.localVariables = append(c.localVariables, wasm.VariableDeclaration{VariableName: name})
		}
		if s.Value == nil {
			return &wasm.BuiltinCall{FunctionName: "nop"}
		}
		return c.generateMultiAssignment(variableNames, c.visitExpression(s.Value))

	case *ast.Assignment:
		return c.generateMultiAssignment(s.VariableNames, c.visitExpression(s.Value))

	case *ast.ExpressionStatement:
		return c.visitExpression(s.Expression)

	case *ast.If:
		// The conditional needs a definite zero or non-zero test.
		condition := &wasm.BuiltinCall{
			FunctionName: "i64.ne",
			Arguments: []wasm.Expression{
				c.visitExpression(s.Condition),
				&wasm.Literal{Value: 0},
			},
		}
		return &wasm.If{
			Condition:  condition,
			Statements: c.visitStatements(s.Body.Statements),
		}

	case *ast.Switch:
		return c.visitSwitch(s)

	case *ast.ForLoop:
		return c.visitForLoop(s)

	case *ast.Break:
		if len(c.breakContinue) == 0 {
			panic("break outside of a loop")
		}
		return &wasm.Branch{Label: c.breakContinue[len(c.breakContinue)-1].breakLabel}

	case *ast.Continue:
		if len(c.breakContinue) == 0 {
			panic("continue outside of a loop")
		}
		return &wasm.Branch{Label: c.breakContinue[len(c.breakContinue)-1].continueLabel}

	case *ast.Leave:
		if c.functionBodyLabel == "" {
			panic("leave outside of a function body")
		}
		return &wasm.Branch{Label: c.functionBodyLabel}

	case *ast.Block:
		return &wasm.Block{Statements: c.visitStatements(s.Statements)}

	case *ast.FunctionDefinition:
		panic("function definitions are only allowed at the top level")

	default:
		panic(fmt.Sprintf("unexpected statement node %T", stmt))
	}
}

// visitSwitch lowers a switch into a right-leaning if/else-if chain over
// a synthesized condition local, so at most one case body runs.
func (c *CodeTransform) visitSwitch(s *ast.Switch) wasm.Expression {
	block := &wasm.Block{}
	condition := c.names.New("condition")
	c.localVariables = append(c.localVariables, wasm.VariableDeclaration{VariableName: condition})
	block.Statements = append(block.Statements, &wasm.LocalAssignment{
		VariableName: condition,
		Value:        c.visitExpression(s.Expression),
	})

	current := &block.Statements
	for i, cs := range s.Cases {
		if cs.Value == nil {
			if i != len(s.Cases)-1 {
				panic("default case must be last")
			}
			*current = append(*current, c.visitStatements(cs.Body.Statements)...)
			continue
		}

		comparison := &wasm.BuiltinCall{
			FunctionName: "i64.eq",
			Arguments: []wasm.Expression{
				&wasm.LocalVariable{Name: condition},
				c.visitExpression(cs.Value),
			},
		}
		ifStmt := &wasm.If{
			Condition:  comparison,
			Statements: c.visitStatements(cs.Body.Statements),
		}
		*current = append(*current, ifStmt)
		if i != len(s.Cases)-1 {
			// Open an else slot for the next case to nest into.
			ifStmt.ElseStatements = []wasm.Expression{}
			current = &ifStmt.ElseStatements
		} else {
			current = nil
		}
	}
	return block
}

// visitForLoop lowers a for-loop into an outer break-labeled block
// around a loop: pre statements, exit test, body in a continue-labeled
// block, post statements, branch back.
func (c *CodeTransform) visitForLoop(f *ast.ForLoop) wasm.Expression {
	breakLabel := c.newLabel()
	continueLabel := c.newLabel()
	c.breakContinue = append(c.breakContinue, labelPair{breakLabel, continueLabel})

	loop := &wasm.Loop{LabelName: c.newLabel()}
	loop.Statements = c.visitStatements(f.Pre.Statements)
	loop.Statements = append(loop.Statements, &wasm.BranchIf{
		Label: breakLabel,
		Condition: &wasm.BuiltinCall{
			FunctionName: "i64.eqz",
			Arguments:    []wasm.Expression{c.visitExpression(f.Condition)},
		},
	})
	loop.Statements = append(loop.Statements, &wasm.Block{
		LabelName:  continueLabel,
		Statements: c.visitStatements(f.Body.Statements),
	})
	loop.Statements = append(loop.Statements, c.visitStatements(f.Post.Statements)...)
	loop.Statements = append(loop.Statements, &wasm.Branch{Label: loop.LabelName})

	c.breakContinue = c.breakContinue[:len(c.breakContinue)-1]

	return &wasm.Block{
		LabelName:  breakLabel,
		Statements: []wasm.Expression{loop},
	}
}

func (c *CodeTransform) visitExpressions(exprs []ast.Expression) []wasm.Expression {
	out := make([]wasm.Expression, 0, len(exprs))
	for _, expr := range exprs {
		out = append(out, c.visitExpression(expr))
	}
	return out
}

func (c *CodeTransform) visitExpression(expr ast.Expression) wasm.Expression {
	switch e := expr.(type) {
	case *ast.Identifier:
		return &wasm.LocalVariable{Name: e.Name}

	case *ast.Literal:
		if e.Value == nil {
			panic(fmt.Sprintf("string literal %q used as a value", e.Text))
		}
		if !e.Value.IsUint64() {
			panic("literal too large: " + e.Value.String())
		}
		return &wasm.Literal{Value: e.Value.Uint64()}

	case *ast.FunctionCall:
		return c.visitCall(e)

	default:
		panic(fmt.Sprintf("unexpected expression node %T", expr))
	}
}

func (c *CodeTransform) visitCall(call *ast.FunctionCall) wasm.Expression {
	typeConversionNeeded := false

	if builtin := c.dialect.Builtin(call.FunctionName); builtin != nil {
		switch {
		case builtin.IsImported():
			if len(builtin.Returns) > 1 {
				panic("imported function " + builtin.Name + " declares more than one return value")
			}
			// Imported function: a regular call, but record the import
			// once and coerce at the boundary.
			if _, found := c.imports[builtin.Name]; !found {
				imp := &wasm.FunctionImport{
					Module:       dialect.ImportModule,
					ExternalName: strings.TrimPrefix(builtin.Name, dialect.ImportPrefix),
					InternalName: builtin.Name,
				}
				for _, param := range builtin.Params {
					imp.ParamTypes = append(imp.ParamTypes, string(param))
				}
				if len(builtin.Returns) == 1 {
					returnType := string(builtin.Returns[0])
					imp.ReturnType = &returnType
				}
				c.imports[builtin.Name] = imp
				c.importOrder = append(c.importOrder, builtin.Name)
			}
			typeConversionNeeded = true

		case builtin.HasLiteralArguments():
			arguments := make([]wasm.Expression, 0, len(call.Arguments))
			for i, arg := range call.Arguments {
				if builtin.LiteralArguments[i] {
					literal, ok := arg.(*ast.Literal)
					if !ok {
						panic("builtin " + builtin.Name + " requires a literal argument")
					}
					arguments = append(arguments, &wasm.StringLiteral{Value: literal.Text})
				} else {
					arguments = append(arguments, c.visitExpression(arg))
				}
			}
			return &wasm.BuiltinCall{FunctionName: call.FunctionName, Arguments: arguments}

		default:
			builtinCall := &wasm.BuiltinCall{
				FunctionName: call.FunctionName,
				Arguments:    c.injectTypeConversions(c.visitExpressions(call.Arguments), builtin.Params),
			}
			if len(builtin.Returns) > 0 && builtin.Returns[0] != "" && builtin.Returns[0] != dialect.I64 {
				if builtin.Returns[0] != dialect.I32 {
					panic("invalid return type " + string(builtin.Returns[0]) + " of builtin " + builtin.Name)
				}
				return &wasm.BuiltinCall{
					FunctionName: "i64.extend_i32_u",
					Arguments:    []wasm.Expression{builtinCall},
				}
			}
			return builtinCall
		}
	}

	// A call to a function returning multiple values surfaces only the
	// first value here; the rest sit in globals and are picked up by the
	// enclosing assignment or declaration.
	funCall := &wasm.FunctionCall{
		FunctionName: call.FunctionName,
		Arguments:    c.visitExpressions(call.Arguments),
	}
	if typeConversionNeeded {
		return c.injectCallTypeConversion(funCall)
	}
	return funCall
}

// injectCallTypeConversion narrows i32 arguments and widens an i32
// result of a call to an imported function, using the import recorded
// for it.
func (c *CodeTransform) injectCallTypeConversion(call *wasm.FunctionCall) wasm.Expression {
	imp, found := c.imports[call.FunctionName]
	if !found {
		panic("no import recorded for " + call.FunctionName)
	}

	for i := range call.Arguments {
		switch imp.ParamTypes[i] {
		case string(dialect.I32):
			call.Arguments[i] = &wasm.BuiltinCall{
				FunctionName: "i32.wrap_i64",
				Arguments:    []wasm.Expression{call.Arguments[i]},
			}
		case string(dialect.I64):
		default:
			panic("unknown parameter type " + imp.ParamTypes[i] + " of import " + call.FunctionName)
		}
	}

	if imp.ReturnType != nil && *imp.ReturnType != string(dialect.I64) {
		if *imp.ReturnType != string(dialect.I32) {
			panic("invalid return type " + *imp.ReturnType + " of import " + call.FunctionName)
		}
		return &wasm.BuiltinCall{
			FunctionName: "i64.extend_i32_u",
			Arguments:    []wasm.Expression{call},
		}
	}
	return call
}

// injectTypeConversions narrows arguments whose declared parameter type
// is i32. Untyped parameters count as i64.
func (c *CodeTransform) injectTypeConversions(arguments []wasm.Expression, parameterTypes []dialect.Type) []wasm.Expression {
	for i := range arguments {
		switch parameterTypes[i] {
		case dialect.I32:
			arguments[i] = &wasm.BuiltinCall{
				FunctionName: "i32.wrap_i64",
				Arguments:    []wasm.Expression{arguments[i]},
			}
		case dialect.I64, "":
		default:
			panic("unknown parameter type " + string(parameterTypes[i]))
		}
	}
	return arguments
}

// generateMultiAssignment assigns a value to one or more variables: the
// first one directly, the rest out of the shared global slots in order.
func (c *CodeTransform) generateMultiAssignment(variableNames []string, value wasm.Expression) wasm.Expression {
	if len(variableNames) == 0 {
		panic("assignment without variables")
	}
	assignment := &wasm.LocalAssignment{VariableName: variableNames[0], Value: value}
	if len(variableNames) == 1 {
		return assignment
	}

	c.allocateGlobals(len(variableNames) - 1)

	block := &wasm.Block{Statements: []wasm.Expression{assignment}}
	for i := 1; i < len(variableNames); i++ {
		block.Statements = append(block.Statements, &wasm.LocalAssignment{
			VariableName: variableNames[i],
			Value:        &wasm.GlobalVariable{Name: c.globals[i-1].VariableName},
		})
	}
	return block
}

func (c *CodeTransform) newLabel() string {
	return c.names.New("label")
}

// allocateGlobals grows the shared global slot list to at least amount
// entries. Slots are never released; unrelated call sites reuse them.
func (c *CodeTransform) allocateGlobals(amount int) {
	for len(c.globals) < amount {
		c.globals = append(c.globals, wasm.GlobalVariableDeclaration{
			VariableName: c.names.New("global"),
		})
	}
}
