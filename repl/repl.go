// SPDX-License-Identifier: Apache-2.0

// Package repl implements the interactive compile loop: source goes in,
// the compiled module text comes out.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"yulc/internal/codegen"
	"yulc/internal/dialect"
	"yulc/internal/parser"
	"yulc/internal/wasm"
)

const PROMPT = ">> "

// Start reads source from in and writes the compiled module text to
// out. Input accumulates until braces balance, so multi-line functions
// can be typed directly. Input that is not already a braced block is
// wrapped in one.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	d := dialect.WasmDialect()

	var pending strings.Builder
	fmt.Fprint(out, PROMPT)
	for scanner.Scan() {
		pending.WriteString(scanner.Text())
		pending.WriteString("\n")

		if braceDepth(pending.String()) > 0 {
			fmt.Fprint(out, ".. ")
			continue
		}

		source := strings.TrimSpace(pending.String())
		pending.Reset()
		if source == "" {
			fmt.Fprint(out, PROMPT)
			continue
		}
		if !strings.HasPrefix(source, "{") {
			source = "{ " + source + " }"
		}

		text, err := compile(d, source)
		if err != nil {
			fmt.Fprintf(out, "error: %s\n", err)
		} else {
			fmt.Fprint(out, text)
		}
		fmt.Fprint(out, PROMPT)
	}
}

func compile(d *dialect.Dialect, source string) (text string, err error) {
	// The transform panics on contract violations; a REPL session
	// should survive them.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	block, parseErrors := parser.ParseSource("repl", source)
	if len(parseErrors) > 0 {
		return "", parseErrors[0]
	}

	module := codegen.Transform(d, block)
	return wasm.Print(&module), nil
}

func braceDepth(source string) int {
	depth := 0
	inString := false
	for _, r := range source {
		switch {
		case inString:
			if r == '"' {
				inString = false
			}
		case r == '"':
			inString = true
		case r == '{':
			depth++
		case r == '}':
			depth--
		}
	}
	return depth
}
