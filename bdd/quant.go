// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// Exists returns the existential quantification of body over the variables
// named in bound, i.e. the BDD for "there exists an assignment of bound
// that makes body true when the other variables are held fixed".
//
// bound must be sorted in ascending order index; the Builder also filters
// it to the variables at or after body's top variable (see the interp
// package). Passing an unsorted slice silently gives a wrong result.
func (t *Table) Exists(body NodeID, bound []int32) (NodeID, error) {
	return t.quant(OpOr, body, bound)
}

// Forall returns the universal quantification of body over bound, under
// the same preconditions as Exists.
func (t *Table) Forall(body NodeID, bound []int32) (NodeID, error) {
	return t.quant(OpAnd, body, bound)
}

// quant eliminates the variables in bound from n, combining the two
// branches of a node whose variable is being eliminated with combiner (OR
// for Exists, AND for Forall) and otherwise rebuilding the node unchanged
// under both children quantified with the same bound list.
func (t *Table) quant(combiner Operator, n NodeID, bound []int32) (NodeID, error) {
	if t.IsTerminal(n) {
		return n, nil
	}
	// Bound variables earlier in the order than n's variable cannot occur
	// below n (a path may skip them); drop them so bound[0] never precedes it.
	for len(bound) > 0 && bound[0] < t.Variable(n) {
		bound = bound[1:]
	}
	if len(bound) == 0 {
		return n, nil
	}
	key := quantKey{n, len(bound)}
	if res, ok := t.quantCache[key]; ok {
		t.stat.quantHit++
		return res, nil
	}
	t.stat.quantMiss++

	var res NodeID
	var err error
	if t.Variable(n) == bound[0] {
		low, err := t.quant(combiner, t.Low(n), bound[1:])
		if err != nil {
			return FalseID, err
		}
		high, err := t.quant(combiner, t.High(n), bound[1:])
		if err != nil {
			return FalseID, err
		}
		if low == high {
			res = low
		} else if res, err = t.apply(combiner, low, high); err != nil {
			return FalseID, err
		}
	} else {
		low, lerr := t.quant(combiner, t.Low(n), bound)
		if lerr != nil {
			return FalseID, lerr
		}
		high, herr := t.quant(combiner, t.High(n), bound)
		if herr != nil {
			return FalseID, herr
		}
		if res, err = t.Intern(t.Variable(n), low, high); err != nil {
			return FalseID, err
		}
	}
	t.quantCache[key] = res
	return res, nil
}
