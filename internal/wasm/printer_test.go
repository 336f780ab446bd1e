package wasm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintEmptyModule(t *testing.T) {
	assert.Equal(t, "(module\n)\n", Print(&Module{}))
}

func TestPrintImport(t *testing.T) {
	returnType := "i32"
	module := &Module{
		Imports: []FunctionImport{{
			Module:       "ethereum",
			ExternalName: "getCallDataSize",
			InternalName: "eth.getCallDataSize",
			ReturnType:   &returnType,
		}, {
			Module:       "ethereum",
			ExternalName: "storageStore",
			InternalName: "eth.storageStore",
			ParamTypes:   []string{"i32", "i32"},
		}},
	}

	out := Print(module)
	assert.Contains(t, out,
		`(import "ethereum" "getCallDataSize" (func $eth.getCallDataSize (result i32)))`)
	assert.Contains(t, out,
		`(import "ethereum" "storageStore" (func $eth.storageStore (param i32 i32)))`)
}

func TestPrintGlobals(t *testing.T) {
	module := &Module{
		Globals: []GlobalVariableDeclaration{{VariableName: "global"}, {VariableName: "global_1"}},
	}

	out := Print(module)
	first := strings.Index(out, "(global $global (mut i64) (i64.const 0))")
	second := strings.Index(out, "(global $global_1 (mut i64) (i64.const 0))")
	require.GreaterOrEqual(t, first, 0)
	assert.Greater(t, second, first, "globals print in declaration order")
}

func TestPrintFunction(t *testing.T) {
	module := &Module{
		Functions: []FunctionDefinition{{
			Name:           "f",
			ParameterNames: []string{"a", "b"},
			Locals:         []VariableDeclaration{{VariableName: "x"}},
			Returns:        true,
			Body: []Expression{
				&Block{LabelName: "label", Statements: []Expression{
					&LocalAssignment{VariableName: "x", Value: &BuiltinCall{
						FunctionName: "i64.add",
						Arguments: []Expression{
							&LocalVariable{Name: "a"},
							&LocalVariable{Name: "b"},
						},
					}},
				}},
				&LocalVariable{Name: "x"},
			},
		}},
	}

	out := Print(module)
	assert.Contains(t, out, "(func $f (param $a i64) (param $b i64) (result i64)")
	assert.Contains(t, out, "(local $x i64)")
	assert.Contains(t, out, "(block $label")
	assert.Contains(t, out, "(local.set $x (i64.add (local.get $a) (local.get $b)))")
	assert.Contains(t, out, "(local.get $x)")
}

func TestPrintControlFlow(t *testing.T) {
	module := &Module{
		Functions: []FunctionDefinition{{
			Name: "loops",
			Body: []Expression{
				&Block{LabelName: "break_out", Statements: []Expression{
					&Loop{LabelName: "again", Statements: []Expression{
						&BranchIf{Label: "break_out", Condition: &BuiltinCall{
							FunctionName: "i64.eqz",
							Arguments:    []Expression{&LocalVariable{Name: "n"}},
						}},
						&If{
							Condition:  &LocalVariable{Name: "n"},
							Statements: []Expression{&Branch{Label: "again"}},
							ElseStatements: []Expression{
								&GlobalAssignment{VariableName: "g", Value: &Literal{Value: 7}},
							},
						},
						&Branch{Label: "again"},
					}},
				}},
			},
		}},
	}

	out := Print(module)
	assert.Contains(t, out, "(block $break_out")
	assert.Contains(t, out, "(loop $again")
	assert.Contains(t, out, "(br_if $break_out (i64.eqz (local.get $n)))")
	assert.Contains(t, out, "(if (local.get $n)")
	assert.Contains(t, out, "(then")
	assert.Contains(t, out, "(else")
	assert.Contains(t, out, "(global.set $g (i64.const 7))")
	assert.Contains(t, out, "(br $again)")
}

func TestPrintCallsAndLiterals(t *testing.T) {
	module := &Module{
		Functions: []FunctionDefinition{{
			Name: "f",
			Body: []Expression{
				&FunctionCall{FunctionName: "g", Arguments: []Expression{&Literal{Value: 5}}},
				&BuiltinCall{FunctionName: "dataoffset", Arguments: []Expression{
					&StringLiteral{Value: "payload"},
				}},
				&BuiltinCall{FunctionName: "nop"},
			},
		}},
	}

	out := Print(module)
	assert.Contains(t, out, "(call $g (i64.const 5))")
	assert.Contains(t, out, `(dataoffset "payload")`)
	assert.Contains(t, out, "(nop)")
}

func TestIfWithoutElseOmitsElse(t *testing.T) {
	module := &Module{
		Functions: []FunctionDefinition{{
			Name: "f",
			Body: []Expression{
				&If{
					Condition:  &Literal{Value: 1},
					Statements: []Expression{&BuiltinCall{FunctionName: "nop"}},
				},
			},
		}},
	}

	out := Print(module)
	assert.Contains(t, out, "(then")
	assert.NotContains(t, out, "(else")
}
