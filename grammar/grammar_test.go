package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFunctionDefinition(t *testing.T) {
	src, err := ParseString("test.yul", `{
		function transfer(to, amount) -> ok, code {
			ok := 1
			code := 0
		}
	}`)
	require.NoError(t, err)
	require.Len(t, src.Block.Statements, 1)

	fn := src.Block.Statements[0].Function
	require.NotNil(t, fn)
	assert.Equal(t, "transfer", fn.Name)
	assert.Equal(t, []string{"to", "amount"}, fn.Params)
	assert.Equal(t, []string{"ok", "code"}, fn.Returns)
	require.Len(t, fn.Body.Statements, 2)
	assert.NotNil(t, fn.Body.Statements[0].Assign)
}

func TestParseFunctionWithoutParameters(t *testing.T) {
	src, err := ParseString("test.yul", `{
		function init() {
			leave
		}
	}`)
	require.NoError(t, err)

	fn := src.Block.Statements[0].Function
	require.NotNil(t, fn)
	assert.Empty(t, fn.Params)
	assert.Empty(t, fn.Returns)
	assert.NotNil(t, fn.Body.Statements[0].Leave)
}

func TestParseLetForms(t *testing.T) {
	src, err := ParseString("test.yul", `{
		let x
		let y := 42
		let a, b := pair()
	}`)
	require.NoError(t, err)
	require.Len(t, src.Block.Statements, 3)

	bare := src.Block.Statements[0].Let
	require.NotNil(t, bare)
	assert.Equal(t, []string{"x"}, bare.Names)
	assert.Nil(t, bare.Value)

	single := src.Block.Statements[1].Let
	require.NotNil(t, single)
	require.NotNil(t, single.Value)
	require.NotNil(t, single.Value.Literal)
	assert.Equal(t, "42", *single.Value.Literal.Decimal)

	multi := src.Block.Statements[2].Let
	require.NotNil(t, multi)
	assert.Equal(t, []string{"a", "b"}, multi.Names)
	require.NotNil(t, multi.Value.Call)
	assert.Equal(t, "pair", multi.Value.Call.Name)
}

func TestParseCallStatementIsNotAnAssignment(t *testing.T) {
	src, err := ParseString("test.yul", `{
		eth.finish(0, 0)
	}`)
	require.NoError(t, err)

	stmt := src.Block.Statements[0]
	assert.Nil(t, stmt.Assign)
	require.NotNil(t, stmt.Expr)
	require.NotNil(t, stmt.Expr.Call)
	assert.Equal(t, "eth.finish", stmt.Expr.Call.Name)
	assert.Len(t, stmt.Expr.Call.Args, 2)
}

func TestParseDottedNames(t *testing.T) {
	src, err := ParseString("test.yul", `{
		x := i64.add(y, 1)
	}`)
	require.NoError(t, err)

	assign := src.Block.Statements[0].Assign
	require.NotNil(t, assign)
	assert.Equal(t, []string{"x"}, assign.Targets)
	assert.Equal(t, "i64.add", assign.Value.Call.Name)
}

func TestParseSwitchWithDefault(t *testing.T) {
	src, err := ParseString("test.yul", `{
		switch selector()
		case 0x11 { a() }
		case 2 { b() }
		default { c() }
	}`)
	require.NoError(t, err)

	sw := src.Block.Statements[0].Switch
	require.NotNil(t, sw)
	require.Len(t, sw.Cases, 3)
	require.NotNil(t, sw.Cases[0].Value)
	assert.Equal(t, "0x11", *sw.Cases[0].Value.Hex)
	assert.Equal(t, "2", *sw.Cases[1].Value.Decimal)
	assert.True(t, sw.Cases[2].Default)
	assert.Nil(t, sw.Cases[2].Value)
}

func TestParseForLoop(t *testing.T) {
	src, err := ParseString("test.yul", `{
		for { let i := 0 } i64.lt_u(i, 10) { i := i64.add(i, 1) } {
			if i64.eq(i, 5) { break }
			continue
		}
	}`)
	require.NoError(t, err)

	loop := src.Block.Statements[0].For
	require.NotNil(t, loop)
	assert.Len(t, loop.Pre.Statements, 1)
	assert.NotNil(t, loop.Condition.Call)
	assert.Len(t, loop.Post.Statements, 1)
	require.Len(t, loop.Body.Statements, 2)
	assert.NotNil(t, loop.Body.Statements[0].If)
	assert.NotNil(t, loop.Body.Statements[1].Continue)
}

func TestParseStringLiteralArgument(t *testing.T) {
	src, err := ParseString("test.yul", `{
		let offset := dataoffset("payload")
	}`)
	require.NoError(t, err)

	call := src.Block.Statements[0].Let.Value.Call
	require.Len(t, call.Args, 1)
	require.NotNil(t, call.Args[0].Literal)
	assert.Equal(t, `"payload"`, *call.Args[0].Literal.Str)
}

func TestCommentsAreIgnored(t *testing.T) {
	src, err := ParseString("test.yul", `{
		// leading comment
		let x := 1 // trailing comment
	}`)
	require.NoError(t, err)
	assert.Len(t, src.Block.Statements, 1)
}

func TestParseErrorCarriesPosition(t *testing.T) {
	_, err := ParseString("test.yul", `{
		x :=
	}`)
	require.Error(t, err)
}

func TestParseExamples(t *testing.T) {
	for _, path := range []string{"../examples/counter.yul", "../examples/arith.yul"} {
		_, err := ParseFile(path)
		assert.NoError(t, err, path)
	}
}
