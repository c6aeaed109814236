package lang

import "testing"

func parse(t *testing.T, src string) []Statement {
	t.Helper()
	tokens, err := Lex(src)
	if err != nil {
		t.Fatalf("Lex(%q): %v", src, err)
	}
	stmts, errs := Parse(tokens)
	if len(errs) > 0 {
		t.Fatalf("Parse(%q): %v", src, errs)
	}
	return stmts
}

func TestParseDecl(t *testing.T) {
	stmts := parse(t, "bvar x y z;")
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
	decl, ok := stmts[0].(*Decl)
	if !ok {
		t.Fatalf("expected *Decl, got %T", stmts[0])
	}
	if len(decl.Names) != 3 {
		t.Fatalf("expected 3 names, got %v", decl.Names)
	}
}

func TestParseAssignAndConjunction(t *testing.T) {
	stmts := parse(t, "set a = x & y;")
	assign, ok := stmts[0].(*Assign)
	if !ok {
		t.Fatalf("expected *Assign, got %T", stmts[0])
	}
	bin, ok := assign.Value.(*Binary)
	if !ok || bin.Op != AMP {
		t.Fatalf("expected a top-level AMP binary, got %#v", assign.Value)
	}
}

func TestImplicationDesugarsToOrNot(t *testing.T) {
	stmts := parse(t, "set a = x -> y;")
	assign := stmts[0].(*Assign)
	bin, ok := assign.Value.(*Binary)
	if !ok || bin.Op != PIPE {
		t.Fatalf("expected desugared implication to be a top-level PIPE, got %#v", assign.Value)
	}
	if _, ok := bin.Left.(*Unary); !ok {
		t.Fatalf("expected the left side of a desugared implication to be negated, got %#v", bin.Left)
	}
}

func TestEqualityIsNotAssociative(t *testing.T) {
	tokens, err := Lex("set a = x == y == z;")
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if _, errs := Parse(tokens); len(errs) == 0 {
		t.Fatalf("expected a chained '==' to be rejected as non-associative")
	}
}

func TestParseFuncCall(t *testing.T) {
	stmts := parse(t, "display_tree a;")
	call, ok := stmts[0].(*FuncCall)
	if !ok {
		t.Fatalf("expected *FuncCall, got %T", stmts[0])
	}
	if call.Name != DISPLAY_TREE || len(call.Args) != 1 {
		t.Fatalf("unexpected func call: %#v", call)
	}
}

func TestParseQuantifierWithParenthesizedVars(t *testing.T) {
	stmts := parse(t, "display_tree exists (x y) (x & y);")
	call := stmts[0].(*FuncCall)
	q, ok := call.Args[0].(*Quantifier)
	if !ok {
		t.Fatalf("expected *Quantifier, got %T", call.Args[0])
	}
	if q.Kind != EXISTS || len(q.Vars) != 2 {
		t.Fatalf("unexpected quantifier: %#v", q)
	}
}

func TestParseSubstitution(t *testing.T) {
	stmts := parse(t, "display_tree sub { x: y, y: z } (x & y);")
	call := stmts[0].(*FuncCall)
	sub, ok := call.Args[0].(*Substitution)
	if !ok {
		t.Fatalf("expected *Substitution, got %T", call.Args[0])
	}
	if len(sub.Pairs) != 2 || sub.Pairs[0].Name != "x" || sub.Pairs[1].Name != "y" {
		t.Fatalf("unexpected substitution pairs: %#v", sub.Pairs)
	}
}

func TestParseErrorResynchronizes(t *testing.T) {
	tokens, err := Lex("set = x; bvar y;")
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	_, errs := Parse(tokens)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one parse error, got %d: %v", len(errs), errs)
	}
}
