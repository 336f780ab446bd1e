package grammar

import "github.com/alecthomas/participle/v2/lexer"

// Source is one compilation unit: a single top-level block whose
// statements are expected (but not grammatically required) to be
// function definitions.
type Source struct {
	Pos   lexer.Position
	Block *Block `@@`
}

type Block struct {
	Pos        lexer.Position
	Statements []*Statement `"{" @@* "}"`
}

type Statement struct {
	Pos      lexer.Position
	Block    *Block    `  @@`
	Function *Function `| @@`
	Let      *Let      `| @@`
	If       *If       `| @@`
	Switch   *Switch   `| @@`
	For      *For      `| @@`
	Break    *Break    `| @@`
	Continue *Continue `| @@`
	Leave    *Leave    `| @@`
	Assign   *Assign   `| @@`
	Expr     *Expr     `| @@`
}

type Function struct {
	Pos     lexer.Position
	Name    string   `"function" @Ident "("`
	Params  []string `[ @Ident { "," @Ident } ] ")"`
	Returns []string `[ "->" @Ident { "," @Ident } ]`
	Body    *Block   `@@`
}

type Let struct {
	Pos   lexer.Position
	Names []string `"let" @Ident { "," @Ident }`
	Value *Expr    `[ ":=" @@ ]`
}

type Assign struct {
	Pos     lexer.Position
	Targets []string `@Ident { "," @Ident } ":="`
	Value   *Expr    `@@`
}

type If struct {
	Pos       lexer.Position
	Condition *Expr  `"if" @@`
	Body      *Block `@@`
}

type Switch struct {
	Pos   lexer.Position
	Expr  *Expr   `"switch" @@`
	Cases []*Case `@@*`
}

type Case struct {
	Pos     lexer.Position
	Value   *Literal `( "case" @@`
	Default bool     `| @"default" )`
	Body    *Block   `@@`
}

type For struct {
	Pos       lexer.Position
	Pre       *Block `"for" @@`
	Condition *Expr  `@@`
	Post      *Block `@@`
	Body      *Block `@@`
}

type Break struct {
	Pos lexer.Position
	Kw  bool `@"break"`
}

type Continue struct {
	Pos lexer.Position
	Kw  bool `@"continue"`
}

type Leave struct {
	Pos lexer.Position
	Kw  bool `@"leave"`
}

type Expr struct {
	Pos     lexer.Position
	Call    *Call    `  @@`
	Literal *Literal `| @@`
	Ident   *string  `| @Ident`
}

type Call struct {
	Pos  lexer.Position
	Name string  `@Ident "("`
	Args []*Expr `[ @@ { "," @@ } ] ")"`
}

type Literal struct {
	Pos     lexer.Position
	Hex     *string `  @Hex`
	Decimal *string `| @Decimal`
	Str     *string `| @String`
}
