package interp

import (
	"strings"
	"testing"

	"github.com/dalzilio/boolbdd/lang"
)

func run(t *testing.T, src string) *Interpreter {
	t.Helper()
	tokens, err := lang.Lex(src)
	if err != nil {
		t.Fatalf("Lex(%q): %v", src, err)
	}
	stmts, errs := lang.Parse(tokens)
	if len(errs) > 0 {
		t.Fatalf("Parse(%q): %v", src, errs)
	}
	interp := NewInterpreter()
	interp.WalkStatements(stmts)
	return interp
}

func lastLine(t *testing.T, interp *Interpreter) string {
	t.Helper()
	out := interp.Output()
	if len(out) == 0 {
		t.Fatalf("expected at least one output line")
	}
	return out[len(out)-1].Text
}

func TestScenarioConjunction(t *testing.T) {
	interp := run(t, "bvar x y; set a = x & y; display_tree a;")
	want := "x ? (y ? (TRUE) : (FALSE)) : (FALSE)"
	if got := lastLine(t, interp); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestScenarioImplicationEqualityIsTrue(t *testing.T) {
	interp := run(t, "bvar x y z; set b = (x -> y) == (x -> y); display_tree b;")
	if got := lastLine(t, interp); got != "TRUE" {
		t.Fatalf("got %q, want TRUE", got)
	}
}

func TestScenarioInequality(t *testing.T) {
	interp := run(t, "bvar x y; set c = x != y; display_tree c;")
	want := "x ? (y ? (FALSE) : (TRUE)) : (y ? (TRUE) : (FALSE))"
	if got := lastLine(t, interp); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestScenarioExistsProjectsOutVariable(t *testing.T) {
	interp := run(t, "bvar x y; display_tree exists (x) (x & y);")
	want := "y ? (TRUE) : (FALSE)"
	if got := lastLine(t, interp); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestScenarioSubstitution(t *testing.T) {
	interp := run(t, "bvar x y z; display_tree sub { x: y, y: z } (x & y);")
	want := "y ? (z ? (TRUE) : (FALSE)) : (FALSE)"
	if got := lastLine(t, interp); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestScenarioPreserveSweepThenUnknownName(t *testing.T) {
	interp := run(t, "bvar x y z; set a = x & y; set b = x | z; preserve a; sweep; is_sat b;")
	out := interp.Output()
	last := out[len(out)-1]
	if !last.IsError {
		t.Fatalf("expected the final line to be an error, got %q", last.Text)
	}
	if !strings.Contains(last.Text, "ExecutionException") {
		t.Fatalf("expected an ExecutionException, got %q", last.Text)
	}

	interp2 := run(t, "bvar x y z; set a = x & y; preserve a; sweep; is_sat a;")
	if got := lastLine(t, interp2); got != "satisfiable" {
		t.Fatalf("got %q, want satisfiable", got)
	}
}

func TestDeclareTwiceIsNoOp(t *testing.T) {
	interp := run(t, "bvar x; bvar x;")
	out := interp.Output()
	if len(out) != 2 {
		t.Fatalf("expected 2 lines, got %v", out)
	}
	if !strings.Contains(out[1].Text, "already declared") {
		t.Fatalf("expected an already-declared message, got %q", out[1].Text)
	}
}

func TestAssignToSymbolicIsRejected(t *testing.T) {
	interp := run(t, "bvar x; set x = true;")
	if got := lastLine(t, interp); !strings.Contains(got, "declared as a symbolic variable") {
		t.Fatalf("got %q, want a conflict message", got)
	}
}

func TestExistsOverAbsentVariableIsNoOp(t *testing.T) {
	interp := run(t, "bvar x y; display_tree exists (y) x;")
	if got := lastLine(t, interp); got != "x ? (TRUE) : (FALSE)" {
		t.Fatalf("got %q", got)
	}
}

func TestSourceMissingFileReportsExecutionError(t *testing.T) {
	interp := run(t, "source does-not-exist.bdd;")
	last := interp.Output()[len(interp.Output())-1]
	if !last.IsError || !strings.Contains(last.Text, "ExecutionException") {
		t.Fatalf("expected an ExecutionException for a missing file, got %q", last.Text)
	}
}

func TestWalkSingleContinuesAfterError(t *testing.T) {
	tokens, err := lang.Lex("foo;")
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	stmts, errs := lang.Parse(tokens)
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	interp := NewInterpreter()
	interp.WalkSingle(stmts[0])
	if !interp.Output()[0].IsError {
		t.Fatalf("expected the first statement to report an error")
	}

	tokens2, _ := lang.Lex("bvar ok;")
	stmts2, _ := lang.Parse(tokens2)
	interp.WalkSingle(stmts2[0])
	out := interp.Output()
	if out[len(out)-1].IsError {
		t.Fatalf("expected the second statement to succeed, got %q", out[len(out)-1].Text)
	}
}
