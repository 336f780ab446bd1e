package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinLookup(t *testing.T) {
	d := WasmDialect()

	add := d.Builtin("i64.add")
	require.NotNil(t, add)
	assert.Equal(t, []Type{I64, I64}, add.Params)
	assert.Equal(t, []Type{I64}, add.Returns)
	assert.False(t, add.IsImported())
	assert.False(t, add.HasLiteralArguments())

	assert.Nil(t, d.Builtin("userFunction"), "unknown names are user functions")
}

func TestComparisonsReturnNarrowType(t *testing.T) {
	d := WasmDialect()

	for _, name := range []string{"i64.eq", "i64.ne", "i64.lt_u", "i64.le_u", "i64.gt_u", "i64.ge_u", "i64.eqz"} {
		b := d.Builtin(name)
		require.NotNil(t, b, name)
		assert.Equal(t, []Type{I32}, b.Returns, name)
	}
}

func TestImportedBuiltins(t *testing.T) {
	d := WasmDialect()

	store := d.Builtin("eth.storageStore")
	require.NotNil(t, store)
	assert.True(t, store.IsImported())
	assert.Equal(t, []Type{I32, I32}, store.Params)
	assert.Empty(t, store.Returns)

	gas := d.Builtin("eth.getGasLeft")
	require.NotNil(t, gas)
	assert.Equal(t, []Type{I64}, gas.Returns)

	size := d.Builtin("eth.getCallDataSize")
	require.NotNil(t, size)
	assert.Equal(t, []Type{I32}, size.Returns)
}

func TestLiteralArgumentBuiltins(t *testing.T) {
	d := WasmDialect()

	for _, name := range []string{"dataoffset", "datasize"} {
		b := d.Builtin(name)
		require.NotNil(t, b, name)
		assert.True(t, b.HasLiteralArguments(), name)
		assert.Equal(t, []bool{true}, b.LiteralArguments, name)
	}
}

func TestNoImportDeclaresMultipleReturns(t *testing.T) {
	d := WasmDialect()

	for name, b := range d.builtins {
		if b.IsImported() {
			assert.LessOrEqual(t, len(b.Returns), 1, name)
		}
	}
}
