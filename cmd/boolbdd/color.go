package main

// EnableColor gates ANSI coloring of error lines. It is turned on for an
// interactive REPL session and left off for --source output, so piping
// --source output to a file never carries escape codes.
var EnableColor = false

const (
	colorReset = "\x1b[0m"
	colorRed   = "\x1b[31m"
)

func red(s string) string {
	if !EnableColor {
		return s
	}
	return colorRed + s + colorReset
}
