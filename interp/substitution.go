package interp

import (
	"github.com/dalzilio/boolbdd/bdd"
	"github.com/dalzilio/boolbdd/lang"
)

// ReificationCache turns a node id back into an expression tree: each
// internal node `v ? H : L` becomes `(!v | H) & (v | L)`. Results are
// memoized per id, and the memo is reusable across substitutions until a
// clear_cache or sweep invalidates it (see Interpreter).
type ReificationCache struct {
	table *bdd.Table
	memo  map[bdd.NodeID]lang.Expression
}

// NewReificationCache creates an empty ReificationCache over table.
func NewReificationCache(table *bdd.Table) *ReificationCache {
	return &ReificationCache{table: table, memo: make(map[bdd.NodeID]lang.Expression)}
}

// Clear discards every memoized reification. Called when clear_cache or
// sweep invalidates the underlying node table.
func (r *ReificationCache) Clear() {
	r.memo = make(map[bdd.NodeID]lang.Expression)
}

// Reify returns the (possibly shared, via the memo) expression denoting id.
func (r *ReificationCache) Reify(id bdd.NodeID) lang.Expression {
	if id == bdd.TrueID {
		return &lang.Literal{Kind: lang.TRUE}
	}
	if id == bdd.FalseID {
		return &lang.Literal{Kind: lang.FALSE}
	}
	if e, ok := r.memo[id]; ok {
		return e
	}
	name := r.table.VarName(r.table.Variable(id))
	v := &lang.Identifier{Name: name}
	notV := &lang.Unary{Op: lang.BANG, Operand: v}
	high := r.Reify(r.table.High(id))
	low := r.Reify(r.table.Low(id))
	e := &lang.Binary{
		Op:   lang.AMP,
		Left: &lang.Binary{Op: lang.PIPE, Left: notV, Right: high},
		Right: &lang.Binary{Op: lang.PIPE, Left: v, Right: low},
	}
	r.memo[id] = e
	return e
}

// substituteFree walks expr, replacing every Identifier that names a free
// (Symbolic) occurrence found in replacements. cache is a fresh
// expression-to-expression memo, scoped to a single substitution call,
// needed because the reified tree shares subexpression pointers (from
// ReificationCache's own memo) that would otherwise be revisited and
// rebuilt redundantly.
func substituteFree(expr lang.Expression, replacements map[string]lang.Expression, env *Environment, cache map[lang.Expression]lang.Expression) lang.Expression {
	if out, ok := cache[expr]; ok {
		return out
	}
	var out lang.Expression
	switch e := expr.(type) {
	case *lang.Literal:
		out = e
	case *lang.Identifier:
		if repl, ok := replacements[e.Name]; ok && env.IsSymbolic(e.Name) {
			out = repl
		} else {
			out = e
		}
	case *lang.Unary:
		out = &lang.Unary{Op: e.Op, Operand: substituteFree(e.Operand, replacements, env, cache), Line: e.Line, Col: e.Col}
	case *lang.Binary:
		out = &lang.Binary{
			Op:    e.Op,
			Left:  substituteFree(e.Left, replacements, env, cache),
			Right: substituteFree(e.Right, replacements, env, cache),
			Line:  e.Line,
			Col:   e.Col,
		}
	case *lang.Quantifier:
		out = &lang.Quantifier{Kind: e.Kind, Vars: e.Vars, Body: substituteFree(e.Body, replacements, env, cache), Line: e.Line, Col: e.Col}
	case *lang.Substitution:
		pairs := make([]lang.SubPair, len(e.Pairs))
		for i, p := range e.Pairs {
			pairs[i] = lang.SubPair{Name: p.Name, Value: substituteFree(p.Value, replacements, env, cache)}
		}
		out = &lang.Substitution{Pairs: pairs, Body: substituteFree(e.Body, replacements, env, cache), Line: e.Line, Col: e.Col}
	default:
		internal("substitute", "unsupported expression node %T", expr)
	}
	cache[expr] = out
	return out
}
