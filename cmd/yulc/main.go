// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"yulc/internal/ast"
	"yulc/internal/codegen"
	"yulc/internal/dialect"
	"yulc/internal/parser"
	"yulc/internal/wasm"
)

var log = commonlog.GetLogger("yulc")

func main() {
	var path, outPath string
	verbose := false
	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-v":
			verbose = true
		case "-o":
			i++
			if i >= len(args) {
				fmt.Fprintln(os.Stderr, "-o requires a file argument")
				os.Exit(1)
			}
			outPath = args[i]
		default:
			path = args[i]
		}
	}
	if path == "" {
		fmt.Println("Usage: yulc [-v] [-o out.wat] <file.yul>")
		os.Exit(1)
	}

	if verbose {
		commonlog.Configure(1, nil)
	}

	startTime := time.Now()

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	object, parseErrors := parser.ParseSource(path, string(source))
	if len(parseErrors) > 0 {
		for _, parseError := range parseErrors {
			fmt.Print(formatError(path, parseError, string(source)))
		}
		color.Red("Compilation failed after %s", formatDuration(time.Since(startTime)))
		os.Exit(1)
	}
	log.Infof("parsed %d top-level definitions", len(object.Statements))

	module, err := transform(object)
	if err != nil {
		color.Red("error: %s", err)
		color.Red("Compilation failed after %s", formatDuration(time.Since(startTime)))
		os.Exit(1)
	}
	log.Infof("emitted %d functions, %d imports, %d globals",
		len(module.Functions), len(module.Imports), len(module.Globals))

	text := wasm.Print(module)
	if outPath != "" {
		if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write output: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Print(text)
	}

	color.Green("Successfully compiled %s in %s", path, formatDuration(time.Since(startTime)))
}

// transform surfaces code generation panics as errors so the CLI
// reports them instead of printing a stack trace.
func transform(object *ast.Block) (module *wasm.Module, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	result := codegen.Transform(dialect.WasmDialect(), object)
	return &result, nil
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}

func formatError(path string, parseError parser.Error, source string) string {
	lines := strings.Split(source, "\n")
	pos := parseError.Position

	var lineContent string
	if pos.Line-1 < len(lines) && pos.Line-1 >= 0 {
		lineContent = lines[pos.Line-1]
	}

	marker := strings.Repeat(" ", max(0, pos.Column-1)) + "^"

	red := color.New(color.FgRed).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	lineNumberWidth := len(fmt.Sprintf("%d", pos.Line))
	if lineNumberWidth < 3 {
		lineNumberWidth = 3
	}
	indent := strings.Repeat(" ", lineNumberWidth)

	return fmt.Sprintf(
		"%s: %s\n%s┌─ %s:%d:%d\n%s│\n%3d│%s\n%s│%s\n\n",
		red("error"),
		parseError.Message,
		indent,
		path, pos.Line, pos.Column,
		indent,
		pos.Line, lineContent,
		indent,
		bold(marker),
	)
}
