// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "testing"

func TestApplyShortCircuits(t *testing.T) {
	tab := NewTable()
	x := tab.Declare("x")
	vx := mustIntern(t, tab, x, FalseID, TrueID)

	type step struct {
		name     string
		op       func() (NodeID, error)
		expected NodeID
	}
	steps := []step{
		{"and false", func() (NodeID, error) { return tab.And(FalseID, vx) }, FalseID},
		{"and true", func() (NodeID, error) { return tab.And(TrueID, vx) }, vx},
		{"or true", func() (NodeID, error) { return tab.Or(TrueID, vx) }, TrueID},
		{"or false", func() (NodeID, error) { return tab.Or(FalseID, vx) }, vx},
	}
	for _, s := range steps {
		got, err := s.op()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", s.name, err)
		}
		if got != s.expected {
			t.Errorf("%s: expected %d, got %d", s.name, s.expected, got)
		}
	}
}

func TestNotIsIdempotent(t *testing.T) {
	tab := NewTable()
	x := tab.Declare("x")
	y := tab.Declare("y")
	vx := mustIntern(t, tab, x, FalseID, TrueID)
	vy := mustIntern(t, tab, y, FalseID, TrueID)
	and, err := tab.And(vx, vy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	once, err := tab.Not(and)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	twice, err := tab.Not(once)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if twice != and {
		t.Fatalf("expected NOT(NOT(a)) == a, got %d != %d", twice, and)
	}
}

func TestDeMorgan(t *testing.T) {
	tab := NewTable()
	x := tab.Declare("x")
	y := tab.Declare("y")
	vx := mustIntern(t, tab, x, FalseID, TrueID)
	vy := mustIntern(t, tab, y, FalseID, TrueID)

	and, err := tab.And(vx, vy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	notAnd, err := tab.Not(and)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	notX, err := tab.Not(vx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	notY, err := tab.Not(vy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	orNot, err := tab.Or(notX, notY)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if notAnd != orNot {
		t.Fatalf("expected NOT(a AND b) == NOT(a) OR NOT(b), got %d != %d", notAnd, orNot)
	}
}

func TestExistsEliminatesVariable(t *testing.T) {
	tab := NewTable()
	x := tab.Declare("x")
	y := tab.Declare("y")
	vx := mustIntern(t, tab, x, FalseID, TrueID)
	vy := mustIntern(t, tab, y, FalseID, TrueID)
	and, err := tab.And(vx, vy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err := tab.Exists(and, []int32{x})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != vy {
		t.Fatalf("expected exists(x, x & y) == y, got node %d", res)
	}
}

func TestIsSat(t *testing.T) {
	tab := NewTable()
	x := tab.Declare("x")
	vx := mustIntern(t, tab, x, FalseID, TrueID)

	if tab.IsSat(FalseID) {
		t.Fatalf("FALSE must not be satisfiable")
	}
	if !tab.IsSat(vx) {
		t.Fatalf("x must be satisfiable")
	}
	notX, err := tab.Not(vx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	and, err := tab.And(vx, notX)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if and != FalseID {
		t.Fatalf("expected x & !x to collapse to FALSE")
	}
}
