// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"
)

// NodeID is an opaque handle for a node in a Table's unicity table. The
// terminal ids are fixed: FalseID is 0, TrueID is 1.
type NodeID uint32

// FalseID and TrueID are the two terminal nodes, present in every Table.
const (
	FalseID NodeID = 0
	TrueID  NodeID = 1
)

// tombstone marks a node slot that was reclaimed by a Sweep; its id must
// never again compare equal to a live node, so Intern will never reissue it.
const tombstone int32 = -2

// terminal marks the two preallocated constant slots.
const terminal int32 = -1

type node struct {
	variable int32 // terminal, tombstone, or an index into varOrder
	low      NodeID
	high     NodeID
}

// Table is the canonical, hash-consed store of BDD nodes shared by every
// binding a caller makes. A Table owns the variable order, the unicity
// table, and the Apply/Not/quantifier memoization caches; it has no
// reference counter and relies entirely on the caller to drive reclamation
// through Sweep.
type Table struct {
	nodes  []node
	unique map[uint64]NodeID

	varOrder []string
	varIndex map[string]int32

	andCache   map[pairKey]NodeID
	orCache    map[pairKey]NodeID
	notCache   map[NodeID]NodeID
	quantCache map[quantKey]NodeID
	satCache   map[NodeID]bool

	stat cacheStat
}

type pairKey struct {
	a, b NodeID
}

type quantKey struct {
	root      NodeID
	remaining int
}

// cacheStat mirrors the hit/miss accounting kept by BuDDy-derived engines,
// used only for diagnostics (see Stats).
type cacheStat struct {
	andHit, andMiss     int
	orHit, orMiss        int
	notHit, notMiss      int
	quantHit, quantMiss  int
}

// NewTable allocates an empty Table with the two terminal nodes and no
// declared variables.
func NewTable(opts ...Option) *Table {
	cfg := makeconfigs()
	for _, opt := range opts {
		opt(cfg)
	}
	t := &Table{
		nodes:      make([]node, 2, cfg.nodesize),
		unique:     make(map[uint64]NodeID, cfg.cachesize),
		varIndex:   make(map[string]int32),
		andCache:   make(map[pairKey]NodeID, cfg.cachesize),
		orCache:    make(map[pairKey]NodeID, cfg.cachesize),
		notCache:   make(map[NodeID]NodeID, cfg.cachesize),
		quantCache: make(map[quantKey]NodeID, cfg.cachesize),
		satCache:   make(map[NodeID]bool, cfg.cachesize),
	}
	t.nodes[FalseID] = node{variable: terminal}
	t.nodes[TrueID] = node{variable: terminal}
	return t
}

// Declare adds name to the variable order if it is not already present and
// returns its index. The variable order is append-only: once a name has an
// index, that index never changes, which keeps every existing node's
// ordering invariant intact.
func (t *Table) Declare(name string) int32 {
	if idx, ok := t.varIndex[name]; ok {
		return idx
	}
	idx := int32(len(t.varOrder))
	t.varOrder = append(t.varOrder, name)
	t.varIndex[name] = idx
	return idx
}

// VarIndex returns the order index of a declared variable name.
func (t *Table) VarIndex(name string) (int32, bool) {
	idx, ok := t.varIndex[name]
	return idx, ok
}

// VarName returns the declared name at a given order index.
func (t *Table) VarName(idx int32) string {
	return t.varOrder[idx]
}

// IsTerminal reports whether id names FalseID or TrueID.
func (t *Table) IsTerminal(id NodeID) bool {
	return id == FalseID || id == TrueID
}

// Live reports whether id refers to a node currently present in the table
// (not out of range, not reclaimed by a prior Sweep).
func (t *Table) Live(id NodeID) bool {
	return int(id) < len(t.nodes) && t.nodes[id].variable != tombstone
}

// Variable returns the order index of the node's decision variable. The
// result is unspecified for terminals; callers must check IsTerminal first.
func (t *Table) Variable(id NodeID) int32 {
	return t.nodes[id].variable
}

// Low returns the false-branch child of an internal node.
func (t *Table) Low(id NodeID) NodeID {
	return t.nodes[id].low
}

// High returns the true-branch child of an internal node.
func (t *Table) High(id NodeID) NodeID {
	return t.nodes[id].high
}

// topVariable returns the order index of id, or math.MaxInt32 for a
// terminal, so that terminal nodes always compare as "after" every real
// variable when picking an Apply pivot.
func (t *Table) topVariable(id NodeID) int32 {
	if t.IsTerminal(id) {
		return 1<<31 - 1
	}
	return t.nodes[id].variable
}

func hashTriple(variable int32, low, high NodeID) uint64 {
	var buf [12]byte
	binary.LittleEndian.PutUint32(buf[0:4], uint32(variable))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(low))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(high))
	return xxhash.Sum64(buf[:])
}

// Intern returns the unique id for the internal node (variable, low, high).
// If high == low the call collapses to that shared child, maintaining
// reducedness. The caller is responsible for ensuring variable precedes the
// top variable of both children in the global order; Intern checks this and
// returns an error rather than silently building a malformed node.
func (t *Table) Intern(variable int32, low, high NodeID) (NodeID, error) {
	if low == high {
		return low, nil
	}
	if !t.Live(low) || !t.Live(high) {
		return FalseID, fmt.Errorf("%w: low=%d, high=%d", ErrDanglingNode, low, high)
	}
	if lv := t.topVariable(low); lv <= variable {
		return FalseID, fmt.Errorf("%w: var=%d, low's var=%d", ErrVariableOrder, variable, lv)
	}
	if hv := t.topVariable(high); hv <= variable {
		return FalseID, fmt.Errorf("%w: var=%d, high's var=%d", ErrVariableOrder, variable, hv)
	}
	key := hashTriple(variable, low, high)
	if id, ok := t.unique[key]; ok {
		n := t.nodes[id]
		if n.variable != variable || n.low != low || n.high != high {
			return FalseID, ErrUnicityCollision
		}
		return id, nil
	}
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{variable: variable, low: low, high: high})
	t.unique[key] = id
	return id, nil
}

// ClearCaches discards the Apply, Not and quantifier memoization caches
// without touching the unicity table. Every id remains valid.
func (t *Table) ClearCaches() {
	t.andCache = make(map[pairKey]NodeID, len(t.andCache))
	t.orCache = make(map[pairKey]NodeID, len(t.orCache))
	t.notCache = make(map[NodeID]NodeID, len(t.notCache))
	t.quantCache = make(map[quantKey]NodeID, len(t.quantCache))
	t.satCache = make(map[NodeID]bool, len(t.satCache))
}

// ClearQuantCache discards only the quantifier-elimination memo cache. A
// caller building a fresh top-level quantifier expression must call this
// first: the cache key is (node id, remaining bound-variable count), and a
// stale entry from a previous call with a different bound-variable set but
// the same remaining count would silently return a wrong result.
func (t *Table) ClearQuantCache() {
	t.quantCache = make(map[quantKey]NodeID, len(t.quantCache))
}

// Sweep computes the transitive closure of roots under Low/High (plus the
// two terminals), clears every memoization cache, then discards any
// unicity-table entry whose id is not in that closure. It returns the
// number of nodes reclaimed. A node discarded by Sweep is tombstoned: its id
// is never reissued, so a later reference to it is reported as a dangling
// id rather than silently resolving to an unrelated node.
func (t *Table) Sweep(roots []NodeID) int {
	t.ClearCaches()
	live := mapset.NewThreadUnsafeSet(FalseID, TrueID)
	queue := append([]NodeID{}, roots...)
	for _, r := range roots {
		live.Add(r)
	}
	for i := 0; i < len(queue); i++ {
		id := queue[i]
		if !t.Live(id) || t.IsTerminal(id) {
			continue
		}
		for _, c := range [2]NodeID{t.nodes[id].low, t.nodes[id].high} {
			if !live.Contains(c) {
				live.Add(c)
				queue = append(queue, c)
			}
		}
	}
	for key, id := range t.unique {
		if !live.Contains(id) {
			delete(t.unique, key)
		}
	}
	reclaimed := 0
	for id := NodeID(2); int(id) < len(t.nodes); id++ {
		if t.nodes[id].variable == tombstone {
			continue
		}
		if !live.Contains(id) {
			t.nodes[id] = node{variable: tombstone}
			reclaimed++
		}
	}
	return reclaimed
}

// Stats returns a short human-readable summary of table occupancy and cache
// performance, in the spirit of a BuDDy-style PrintStats but scoped to what
// this engine actually tracks.
func (t *Table) Stats() string {
	return fmt.Sprintf(
		"nodes: %d (declared vars: %d)\nand cache:   hit %d / miss %d\nor cache:    hit %d / miss %d\nnot cache:   hit %d / miss %d\nquant cache: hit %d / miss %d",
		len(t.nodes), len(t.varOrder),
		t.stat.andHit, t.stat.andMiss,
		t.stat.orHit, t.stat.orMiss,
		t.stat.notHit, t.stat.notMiss,
		t.stat.quantHit, t.stat.quantMiss,
	)
}
