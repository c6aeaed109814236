// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// And returns the BDD for the conjunction of a and b, building and caching
// any new internal nodes it needs along the way.
func (t *Table) And(a, b NodeID) (NodeID, error) {
	return t.apply(OpAnd, a, b)
}

// Or returns the BDD for the disjunction of a and b.
func (t *Table) Or(a, b NodeID) (NodeID, error) {
	return t.apply(OpOr, a, b)
}

// apply implements the standard recursive Apply algorithm for a binary,
// commutative, idempotent operator (AND or OR): short-circuit on equal
// operands and on terminals, then recurse pivoting on whichever operand's
// top variable is earlier in the global order, combining children pairwise
// when both operands share the same top variable.
func (t *Table) apply(op Operator, a, b NodeID) (NodeID, error) {
	if a == b {
		return a, nil
	}
	switch op {
	case OpAnd:
		if a == FalseID || b == FalseID {
			return FalseID, nil
		}
		if a == TrueID {
			return b, nil
		}
		if b == TrueID {
			return a, nil
		}
	case OpOr:
		if a == TrueID || b == TrueID {
			return TrueID, nil
		}
		if a == FalseID {
			return b, nil
		}
		if b == FalseID {
			return a, nil
		}
	}

	// Canonicalize the cache key so that apply(a,b) and apply(b,a) always
	// land on the same entry.
	ka, kb := a, b
	if ka > kb {
		ka, kb = kb, ka
	}
	key := pairKey{ka, kb}
	cache := t.andCache
	if op == OpOr {
		cache = t.orCache
	}
	if res, ok := cache[key]; ok {
		t.hit(op, true)
		return res, nil
	}
	t.hit(op, false)

	va, vb := t.topVariable(a), t.topVariable(b)
	var pivot int32
	var low, high NodeID
	var err error
	switch {
	case va == vb:
		pivot = va
		if low, err = t.apply(op, t.Low(a), t.Low(b)); err != nil {
			return FalseID, err
		}
		if high, err = t.apply(op, t.High(a), t.High(b)); err != nil {
			return FalseID, err
		}
	case va < vb:
		pivot = va
		if low, err = t.apply(op, t.Low(a), b); err != nil {
			return FalseID, err
		}
		if high, err = t.apply(op, t.High(a), b); err != nil {
			return FalseID, err
		}
	default:
		pivot = vb
		if low, err = t.apply(op, a, t.Low(b)); err != nil {
			return FalseID, err
		}
		if high, err = t.apply(op, a, t.High(b)); err != nil {
			return FalseID, err
		}
	}
	res, err := t.Intern(pivot, low, high)
	if err != nil {
		return FalseID, err
	}
	cache[key] = res
	return res, nil
}

func (t *Table) hit(op Operator, hit bool) {
	switch {
	case op == OpAnd && hit:
		t.stat.andHit++
	case op == OpAnd && !hit:
		t.stat.andMiss++
	case op == OpOr && hit:
		t.stat.orHit++
	default:
		t.stat.orMiss++
	}
}

// Not returns the negation of a: terminals flip, internal nodes rebuild
// with both children negated. Because the two children of an internal node
// are already distinct, their negations remain distinct, so the result of
// negating an internal node is always itself internal.
func (t *Table) Not(a NodeID) (NodeID, error) {
	if a == FalseID {
		return TrueID, nil
	}
	if a == TrueID {
		return FalseID, nil
	}
	if res, ok := t.notCache[a]; ok {
		t.stat.notHit++
		return res, nil
	}
	t.stat.notMiss++
	low, err := t.Not(t.Low(a))
	if err != nil {
		return FalseID, err
	}
	high, err := t.Not(t.High(a))
	if err != nil {
		return FalseID, err
	}
	res, err := t.Intern(t.Variable(a), low, high)
	if err != nil {
		return FalseID, err
	}
	t.notCache[a] = res
	return res, nil
}
