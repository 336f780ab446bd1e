package names

import "yulc/internal/ast"

// Collect gathers every identifier appearing in the tree: function
// names, parameters, return variables, declared variables, assignment
// targets and identifier expressions.
func Collect(node ast.Node) map[string]bool {
	used := make(map[string]bool)
	collect(node, used)
	return used
}

func collect(node ast.Node, used map[string]bool) {
	switch n := node.(type) {
	case *ast.Block:
		for _, stmt := range n.Statements {
			collect(stmt, used)
		}
	case *ast.FunctionDefinition:
		used[n.Name] = true
		for _, name := range n.Parameters {
			used[name] = true
		}
		for _, name := range n.ReturnVariables {
			used[name] = true
		}
		collect(n.Body, used)
	case *ast.VariableDeclaration:
		for _, name := range n.Variables {
			used[name] = true
		}
		if n.Value != nil {
			collect(n.Value, used)
		}
	case *ast.Assignment:
		for _, name := range n.VariableNames {
			used[name] = true
		}
		collect(n.Value, used)
	case *ast.ExpressionStatement:
		collect(n.Expression, used)
	case *ast.If:
		collect(n.Condition, used)
		collect(n.Body, used)
	case *ast.Switch:
		collect(n.Expression, used)
		for _, c := range n.Cases {
			collect(c.Body, used)
		}
	case *ast.ForLoop:
		collect(n.Pre, used)
		collect(n.Condition, used)
		collect(n.Post, used)
		collect(n.Body, used)
	case *ast.FunctionCall:
		used[n.FunctionName] = true
		for _, arg := range n.Arguments {
			collect(arg, used)
		}
	case *ast.Identifier:
		used[n.Name] = true
	case *ast.Break, *ast.Continue, *ast.Leave, *ast.Literal:
	}
}
