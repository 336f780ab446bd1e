// Package dialect describes the builtin functions available to source
// programs: native wasm instructions and the external functions imported
// from the execution environment.
package dialect

import "strings"

// Type is a value type tag on a builtin signature. The empty tag means
// untyped and is treated as I64 everywhere.
type Type string

const (
	I32 Type = "i32"
	I64 Type = "i64"
)

// ImportPrefix marks builtin names that resolve to imported functions
// rather than wasm instructions. ImportModule is the module those
// imports come from.
const (
	ImportPrefix = "eth."
	ImportModule = "ethereum"
)

// Builtin describes one builtin function. LiteralArguments, when set,
// flags parameters that take a raw literal payload instead of an
// evaluated value.
type Builtin struct {
	Name             string
	Params           []Type
	Returns          []Type
	LiteralArguments []bool
}

// HasLiteralArguments reports whether any parameter is flagged literal.
func (b *Builtin) HasLiteralArguments() bool {
	for _, flag := range b.LiteralArguments {
		if flag {
			return true
		}
	}
	return false
}

// IsImported reports whether the builtin lives in the import namespace.
func (b *Builtin) IsImported() bool {
	return strings.HasPrefix(b.Name, ImportPrefix)
}

// Dialect is a pure lookup table from builtin name to its descriptor.
type Dialect struct {
	builtins map[string]*Builtin
}

// Builtin returns the descriptor for name, or nil for user functions.
func (d *Dialect) Builtin(name string) *Builtin {
	return d.builtins[name]
}

func (d *Dialect) add(b *Builtin) {
	d.builtins[b.Name] = b
}

func params(types ...Type) []Type { return types }

// WasmDialect builds the builtin table for the wasm target: i64
// arithmetic and comparison instructions, the i32/i64 conversions, the
// data builtins taking literal arguments, and the ethereum environment
// imports.
func WasmDialect() *Dialect {
	d := &Dialect{builtins: make(map[string]*Builtin)}

	arithmeticOps := []string{
		"add", "sub", "mul", "div_u", "rem_u",
		"and", "or", "xor", "shl", "shr_u",
	}
	for _, op := range arithmeticOps {
		d.add(&Builtin{
			Name:    "i64." + op,
			Params:  params(I64, I64),
			Returns: []Type{I64},
		})
	}

	// Comparisons produce the narrow type; call sites widen the result.
	comparisonOps := []string{"eq", "ne", "lt_u", "le_u", "gt_u", "ge_u"}
	for _, op := range comparisonOps {
		d.add(&Builtin{
			Name:    "i64." + op,
			Params:  params(I64, I64),
			Returns: []Type{I32},
		})
	}

	d.add(&Builtin{Name: "i64.eqz", Params: params(I64), Returns: []Type{I32}})
	d.add(&Builtin{Name: "i32.wrap_i64", Params: params(I64), Returns: []Type{I32}})
	d.add(&Builtin{Name: "i64.extend_i32_u", Params: params(I32), Returns: []Type{I64}})

	d.add(&Builtin{Name: "i64.load", Params: params(I32), Returns: []Type{I64}})
	d.add(&Builtin{Name: "i64.store", Params: params(I32, I64)})

	d.add(&Builtin{Name: "nop"})
	d.add(&Builtin{Name: "unreachable"})

	d.add(&Builtin{
		Name:             "dataoffset",
		Params:           params(I64),
		Returns:          []Type{I64},
		LiteralArguments: []bool{true},
	})
	d.add(&Builtin{
		Name:             "datasize",
		Params:           params(I64),
		Returns:          []Type{I64},
		LiteralArguments: []bool{true},
	})

	addEthereumImports(d)
	return d
}

// addEthereumImports registers the environment interface. Pointer and
// length parameters are i32 per the interface definition; the transform
// inserts the i64 narrowing and widening at every call site.
func addEthereumImports(d *Dialect) {
	external := func(name string, p []Type, r ...Type) {
		d.add(&Builtin{Name: ImportPrefix + name, Params: p, Returns: r})
	}

	external("getAddress", params(I32))
	external("getExternalBalance", params(I32, I32))
	external("getCallDataSize", nil, I32)
	external("callDataCopy", params(I32, I32, I32))
	external("getCaller", params(I32))
	external("getCallValue", params(I32))
	external("storageLoad", params(I32, I32))
	external("storageStore", params(I32, I32))
	external("getGasLeft", nil, I64)
	external("getBlockNumber", nil, I64)
	external("getBlockTimestamp", nil, I64)
	external("getReturnDataSize", nil, I32)
	external("returnDataCopy", params(I32, I32, I32))
	external("callStatic", params(I64, I32, I32, I32), I32)
	external("log", params(I32, I32, I32, I32, I32, I32, I32))
	external("finish", params(I32, I32))
	external("revert", params(I32, I32))
	external("selfDestruct", params(I32))
}
