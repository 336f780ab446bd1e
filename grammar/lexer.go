package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// YulLexer tokenizes the surface syntax. Builtin names such as "i64.add"
// or "eth.finish" are plain identifiers, so '.' and '$' are identifier
// characters.
var YulLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `//[^\n]*`, nil},

		{"String", `"[^"\n]*"`, nil},

		// Hex before Decimal so "0x" is not split
		{"Hex", `0x[0-9a-fA-F]+`, nil},
		{"Decimal", `[0-9]+`, nil},

		{"Ident", `[a-zA-Z_$][a-zA-Z0-9_$.]*`, nil},

		{"Assign", `:=`, nil},
		{"Arrow", `->`, nil},
		{"Punctuation", `[{}(),]`, nil},

		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
