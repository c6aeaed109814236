// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// Operator names the binary Apply operations this engine supports. Unlike
// the BuDDy-style interface it borrows its Apply algorithm from, this
// engine only needs conjunction and disjunction: implication, biconditional
// and exclusive-or are desugared into AND/OR/NOT before they ever reach
// Apply (see the lang package), which keeps this switch, and the Apply
// cache's key space, minimal.
type Operator int

const (
	OpAnd Operator = iota // Boolean conjunction
	OpOr                  // Boolean disjunction
)

var opnames = [2]string{
	OpAnd: "and",
	OpOr:  "or",
}

func (op Operator) String() string {
	return opnames[op]
}
