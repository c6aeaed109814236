// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "errors"

// Sentinel errors returned by Table methods. Callers in the interp package
// wrap these into the user-facing ExecutionError/InternalError taxonomy;
// the bdd package itself stays free of any notion of "statements" or
// "scripts" and only ever reports invariant violations on the node table.
var (
	// ErrDanglingNode is returned by Intern when asked to build a node
	// referencing an id that Sweep has already reclaimed.
	ErrDanglingNode = errors.New("bdd: dangling node reference")
	// ErrVariableOrder is returned by Intern when the requested variable
	// would not strictly precede the top variable of a child, which would
	// violate the ordering invariant.
	ErrVariableOrder = errors.New("bdd: variable order violation")
	// ErrUnicityCollision indicates a genuine hash collision was detected
	// in the unicity table; this should never occur in practice and, if it
	// does, indicates a bug rather than a user error.
	ErrUnicityCollision = errors.New("bdd: unicity table hash collision")
)
