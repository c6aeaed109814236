package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/dalzilio/boolbdd/interp"
	"github.com/dalzilio/boolbdd/lang"
)

const (
	promptMain  = ">> "
	promptCont  = "... "
	banner      = "boolbdd REPL -- Ctrl+C cancels the current line, Ctrl+D exits."
	historyFile = ".boolbdd_history"
)

// runREPL drives an interactive session: each statement-terminated chunk
// of input is lexed, parsed and run through WalkSingle (not
// WalkStatements), so an earlier statement's error never prevents a later
// one in the same session from executing.
func runREPL() int {
	fmt.Println(banner)
	EnableColor = true

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}

	ip := interp.NewInterpreter()
	for {
		stmt, ok := readStatement(ln)
		if !ok {
			fmt.Println()
			break
		}
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		runLine(ip, stmt)
		ln.AppendHistory(strings.ReplaceAll(stmt, "\n", " "))
	}

	if f, err := os.Create(histPath); err == nil {
		ln.WriteHistory(f)
		f.Close()
	}
	return 0
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}

// readStatement accumulates prompted lines until one ends with ';', the
// script grammar's statement terminator. Ctrl+C returns an empty,
// successfully-read statement, which the caller treats as a blank line;
// Ctrl+D (EOF) reports ok=false so the caller can exit cleanly.
func readStatement(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		cur := promptMain
		if b.Len() > 0 {
			cur = promptCont
		}
		line, err := ln.Prompt(cur)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if strings.HasSuffix(strings.TrimSpace(line), ";") {
			return b.String(), true
		}
	}
}

func runLine(ip *interp.Interpreter, src string) {
	before := len(ip.Output())
	tokens, err := lang.Lex(src)
	if err != nil {
		fmt.Println(red(err.Error()))
		return
	}
	stmts, errs := lang.Parse(tokens)
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Println(red(fmt.Sprintf("PARSE ERROR: %v", e)))
		}
		return
	}
	for _, s := range stmts {
		ip.WalkSingle(s)
	}
	printOutput(ip.Output()[before:])
}
