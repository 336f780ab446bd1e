package ast

import (
	"fmt"
	"strings"
)

// String renders nodes back into surface syntax. The output parses to an
// equivalent tree, which the parser tests rely on.

func (b *Block) String() string {
	if len(b.Statements) == 0 {
		return "{ }"
	}

	var sb strings.Builder
	sb.WriteString("{\n")
	for _, stmt := range b.Statements {
		sb.WriteString("    " + strings.ReplaceAll(stmt.String(), "\n", "\n    ") + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (f *FunctionDefinition) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("function %s(%s)", f.Name, strings.Join(f.Parameters, ", ")))
	if len(f.ReturnVariables) > 0 {
		sb.WriteString(" -> " + strings.Join(f.ReturnVariables, ", "))
	}
	sb.WriteString(" " + f.Body.String())
	return sb.String()
}

func (v *VariableDeclaration) String() string {
	if v.Value == nil {
		return "let " + strings.Join(v.Variables, ", ")
	}
	return fmt.Sprintf("let %s := %s", strings.Join(v.Variables, ", "), v.Value.String())
}

func (a *Assignment) String() string {
	return fmt.Sprintf("%s := %s", strings.Join(a.VariableNames, ", "), a.Value.String())
}

func (e *ExpressionStatement) String() string {
	return e.Expression.String()
}

func (i *If) String() string {
	return fmt.Sprintf("if %s %s", i.Condition.String(), i.Body.String())
}

func (s *Switch) String() string {
	var sb strings.Builder
	sb.WriteString("switch " + s.Expression.String())
	for _, c := range s.Cases {
		if c.Value != nil {
			sb.WriteString(fmt.Sprintf("\ncase %s %s", c.Value.String(), c.Body.String()))
		} else {
			sb.WriteString("\ndefault " + c.Body.String())
		}
	}
	return sb.String()
}

func (f *ForLoop) String() string {
	return fmt.Sprintf("for %s %s %s %s",
		f.Pre.String(), f.Condition.String(), f.Post.String(), f.Body.String())
}

func (b *Break) String() string    { return "break" }
func (c *Continue) String() string { return "continue" }
func (l *Leave) String() string    { return "leave" }

func (c *FunctionCall) String() string {
	args := make([]string, len(c.Arguments))
	for i, arg := range c.Arguments {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", c.FunctionName, strings.Join(args, ", "))
}

func (i *Identifier) String() string { return i.Name }

func (l *Literal) String() string {
	if l.Value == nil {
		return `"` + l.Text + `"`
	}
	return l.Text
}
