package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dalzilio/boolbdd/interp"
	"github.com/dalzilio/boolbdd/lang"
)

func main() {
	source := flag.String("source", "", "path to a script to run non-interactively")
	flag.Parse()

	if *source != "" {
		os.Exit(runFile(*source))
	}
	os.Exit(runREPL())
}

// runFile lexes, parses and runs path through a single WalkStatements
// call, then flushes the accumulated output to stdout. Color is left off:
// piping --source output to a file must never carry escape codes.
func runFile(path string) int {
	contents, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "boolbdd: cannot read %s: %v\n", path, err)
		return 1
	}
	tokens, err := lang.Lex(string(contents))
	if err != nil {
		fmt.Fprintf(os.Stderr, "boolbdd: %v\n", err)
		return 1
	}
	stmts, errs := lang.Parse(tokens)
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "boolbdd: PARSE ERROR: %v\n", e)
		}
		return 1
	}
	ip := interp.NewInterpreter()
	ip.WalkStatements(stmts)
	printOutput(ip.Output())
	return 0
}

func printOutput(lines []interp.Line) {
	for _, l := range lines {
		if l.IsError {
			fmt.Println(red(l.Text))
			continue
		}
		fmt.Println(l.Text)
	}
}
