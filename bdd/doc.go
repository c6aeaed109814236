// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package bdd implements a reduced, ordered binary decision diagram engine: a
single hash-consed table of Boolean formula nodes shared across every
binding made by a caller, together with the Apply, quantifier-elimination
and satisfiability algorithms that operate on it.

Basics

Nodes are addressed by an opaque NodeID, never by pointer. The terminal ids
are fixed: FalseID is 0, TrueID is 1. Every other id refers to an internal
node carrying a decision variable and two children, High and Low, with
High != Low (the table collapses any attempt to build a node that would
violate this) and with the variable of a node strictly preceding the
variables of both of its children in the table's variable order.

Variables are declared dynamically, in the order a caller first needs them,
rather than fixed up front like in the BuDDy-style libraries this package
borrows its hash-consing and Apply algorithms from. A Table grows its
variable order on demand via Declare.

Memory management

The table performs no reference counting and runs no background collector.
Nodes accumulate in the unicity table until a caller calls Sweep with an
explicit root set (see the interp package built on top of this one), at
which point every node not reachable from that root set is discarded along
with the memoization caches. This trades automatic reclamation for a
simple, single-threaded liveness model that a caller drives explicitly,
which is adequate for an interactive, single-session tool and avoids the
finalizer and resize machinery that a long-running BDD library needs.
*/
package bdd
