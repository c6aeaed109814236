package interp

import (
	"fmt"

	"github.com/dalzilio/boolbdd/bdd"
)

// Kind distinguishes the two things a name in an Environment can be.
type Kind int

const (
	// Symbolic names a declared Boolean decision variable (a "bvar").
	Symbolic Kind = iota
	// Bound names a node id attached by a "set" statement.
	Bound
)

type binding struct {
	kind      Kind
	id        bdd.NodeID // meaningful only when kind == Bound
	preserved bool
}

// Environment is the interpreter's single namespace, mapping every
// declared or assigned name to either a Symbolic decision variable or a
// Bound node id. It owns no BDD storage itself; it only ever references
// ids minted by the Table it was built over.
type Environment struct {
	table    *bdd.Table
	bindings map[string]*binding
}

// NewEnvironment creates an empty Environment over table.
func NewEnvironment(table *bdd.Table) *Environment {
	return &Environment{table: table, bindings: make(map[string]*binding)}
}

// Declare adds name as a Symbolic variable if it is not already known,
// registering it with the underlying Table's variable order. It never
// fails; instead it returns the human-readable line describing what
// happened, for the caller to append to the output buffer.
func (e *Environment) Declare(name string) string {
	b, ok := e.bindings[name]
	if !ok {
		e.table.Declare(name)
		e.bindings[name] = &binding{kind: Symbolic}
		return fmt.Sprintf("Declared Symbolic Variable: %s", name)
	}
	if b.kind == Symbolic {
		return fmt.Sprintf("%s already declared", name)
	}
	return fmt.Sprintf("cannot declare %s: already bound to a BDD value", name)
}

// Assign records id under name, preserving any existing preserved bit if
// name was already Bound. It is a no-op that returns a conflict line,
// rather than an ExecutionError, when name is Symbolic.
func (e *Environment) Assign(name string, id bdd.NodeID) string {
	b, ok := e.bindings[name]
	if ok && b.kind == Symbolic {
		return fmt.Sprintf("cannot assign to %s: declared as a symbolic variable", name)
	}
	preserved := ok && b.preserved
	e.bindings[name] = &binding{kind: Bound, id: id, preserved: preserved}
	return fmt.Sprintf("Assigned to %s with BDD ID: %d", name, id)
}

// Resolve looks up name, reporting its Kind and, when Bound, its id.
func (e *Environment) Resolve(name string) (id bdd.NodeID, kind Kind, ok bool) {
	b, found := e.bindings[name]
	if !found {
		return 0, 0, false
	}
	return b.id, b.kind, true
}

// IsSymbolic reports whether name is currently declared as a Symbolic
// variable; used by the substitution walk to decide whether an identifier
// is a free occurrence eligible for replacement.
func (e *Environment) IsSymbolic(name string) bool {
	b, ok := e.bindings[name]
	return ok && b.kind == Symbolic
}

// Preserve sets the preserved bit on a Bound name, so a later Sweep keeps
// it alive. It fails if name is unknown or is not a Bound value.
func (e *Environment) Preserve(name string, line, col int) error {
	b, ok := e.bindings[name]
	if !ok {
		return fail("preserve", UnknownName, line, col, "%q is not declared", name)
	}
	if b.kind != Bound {
		return fail("preserve", NotABddVariable, line, col, "%q is not a bound BDD value", name)
	}
	b.preserved = true
	return nil
}

// Unpreserve clears the preserved bit on a Bound name, symmetric to
// Preserve.
func (e *Environment) Unpreserve(name string, line, col int) error {
	b, ok := e.bindings[name]
	if !ok {
		return fail("unpreserve", UnknownName, line, col, "%q is not declared", name)
	}
	if b.kind != Bound {
		return fail("unpreserve", NotABddVariable, line, col, "%q is not a bound BDD value", name)
	}
	b.preserved = false
	return nil
}

// PreserveAll sets the preserved bit on every Bound name.
func (e *Environment) PreserveAll() {
	for _, b := range e.bindings {
		if b.kind == Bound {
			b.preserved = true
		}
	}
}

// UnpreserveAll clears the preserved bit on every Bound name.
func (e *Environment) UnpreserveAll() {
	for _, b := range e.bindings {
		if b.kind == Bound {
			b.preserved = false
		}
	}
}

// Sweep removes every non-preserved Bound name, then sweeps the underlying
// Table with the surviving preserved ids as roots, returning the number of
// node table entries reclaimed.
func (e *Environment) Sweep() int {
	var roots []bdd.NodeID
	for name, b := range e.bindings {
		if b.kind != Bound {
			continue
		}
		if b.preserved {
			roots = append(roots, b.id)
			continue
		}
		delete(e.bindings, name)
	}
	return e.table.Sweep(roots)
}
