// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// IsSat reports whether the Boolean function denoted by id has at least one
// satisfying assignment. FALSE is unsatisfiable by definition; every other
// node is satisfiable if either of its branches is. The result is memoized
// per id and the cache is cleared only by ClearCaches or Sweep.
func (t *Table) IsSat(id NodeID) bool {
	if id == FalseID {
		return false
	}
	if id == TrueID {
		return true
	}
	if res, ok := t.satCache[id]; ok {
		return res
	}
	res := t.IsSat(t.High(id)) || t.IsSat(t.Low(id))
	t.satCache[id] = res
	return res
}
