package interp

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/dalzilio/boolbdd/bdd"
	"github.com/dalzilio/boolbdd/lang"
)

// Builder translates an expression AST into a bdd.NodeID, dispatching
// structurally over the closed lang.Expression sum type. It is the only
// piece of this package that talks to both the Table and the Environment
// at once.
type Builder struct {
	table *bdd.Table
	env   *Environment
	reify *ReificationCache
}

// NewBuilder creates a Builder over table and env, sharing reify for
// substitution reification (see ReificationCache).
func NewBuilder(table *bdd.Table, env *Environment, reify *ReificationCache) *Builder {
	return &Builder{table: table, env: env, reify: reify}
}

// Build recursively constructs the node id denoted by expr.
func (b *Builder) Build(expr lang.Expression) (bdd.NodeID, error) {
	switch e := expr.(type) {
	case *lang.Literal:
		return b.buildLiteral(e)
	case *lang.Identifier:
		return b.buildIdentifier(e)
	case *lang.Unary:
		return b.buildUnary(e)
	case *lang.Binary:
		return b.buildBinary(e)
	case *lang.Quantifier:
		return b.buildQuantifier(e)
	case *lang.Substitution:
		return b.buildSubstitution(e)
	default:
		internal("build", "unsupported expression node %T", expr)
		panic("unreachable")
	}
}

func (b *Builder) buildLiteral(e *lang.Literal) (bdd.NodeID, error) {
	switch e.Kind {
	case lang.TRUE:
		return bdd.TrueID, nil
	case lang.FALSE:
		return bdd.FalseID, nil
	case lang.INT:
		id := bdd.NodeID(e.Value)
		if !b.table.Live(id) {
			return 0, fail("build", UnknownID, e.Line, e.Col, "no live node with id %d", e.Value)
		}
		return id, nil
	default:
		internal("build", "literal with unexpected kind %v", e.Kind)
		panic("unreachable")
	}
}

func (b *Builder) buildIdentifier(e *lang.Identifier) (bdd.NodeID, error) {
	id, kind, ok := b.env.Resolve(e.Name)
	if !ok {
		return 0, fail("build", UnknownName, e.Line, e.Col, "%q is not declared", e.Name)
	}
	if kind == Bound {
		return id, nil
	}
	idx, ok := b.table.VarIndex(e.Name)
	if !ok {
		internal("build", "symbolic name %q has no variable index", e.Name)
	}
	return b.table.Intern(idx, bdd.FalseID, bdd.TrueID)
}

func (b *Builder) buildUnary(e *lang.Unary) (bdd.NodeID, error) {
	if e.Op != lang.BANG {
		internal("build", "unary node with unsupported operator %v", e.Op)
	}
	operand, err := b.Build(e.Operand)
	if err != nil {
		return 0, err
	}
	id, err := b.table.Not(operand)
	if err != nil {
		internal("build", "Not: %v", err)
	}
	return id, nil
}

func (b *Builder) buildBinary(e *lang.Binary) (bdd.NodeID, error) {
	left, err := b.Build(e.Left)
	if err != nil {
		return 0, err
	}
	right, err := b.Build(e.Right)
	if err != nil {
		return 0, err
	}
	switch e.Op {
	case lang.AMP:
		id, err := b.table.And(left, right)
		if err != nil {
			internal("build", "And: %v", err)
		}
		return id, nil
	case lang.PIPE:
		id, err := b.table.Or(left, right)
		if err != nil {
			internal("build", "Or: %v", err)
		}
		return id, nil
	default:
		return 0, fail("build", UnsupportedOperator, e.Line, e.Col, "binary operator %v should have been desugared", e.Op)
	}
}

func (b *Builder) buildQuantifier(e *lang.Quantifier) (bdd.NodeID, error) {
	body, err := b.Build(e.Body)
	if err != nil {
		return 0, err
	}
	if b.table.IsTerminal(body) {
		return body, nil
	}
	bound, err := b.boundVariables(e.Vars, body, e.Line, e.Col)
	if err != nil {
		return 0, err
	}
	if len(bound) == 0 {
		return body, nil
	}
	b.table.ClearQuantCache()
	var id bdd.NodeID
	if e.Kind == lang.EXISTS {
		id, err = b.table.Exists(body, bound)
	} else {
		id, err = b.table.Forall(body, bound)
	}
	if err != nil {
		internal("build", "quantifier elimination: %v", err)
	}
	return id, nil
}

// boundVariables resolves each declared name to its variable index,
// dedupes with a set (golang-set/v2, matching how the Memory Manager
// accumulates node-id sets), filters to indices at or below body's top
// variable, and sorts ascending — the precondition the Quantifier Engine
// requires of its bound-variable argument.
func (b *Builder) boundVariables(names []string, body bdd.NodeID, line, col int) ([]int32, error) {
	indices := mapset.NewThreadUnsafeSet[int32]()
	for _, name := range names {
		if !b.env.IsSymbolic(name) {
			return nil, fail("build", NotABddVariable, line, col, "%q is not a declared symbolic variable", name)
		}
		idx, ok := b.table.VarIndex(name)
		if !ok {
			internal("build", "symbolic name %q has no variable index", name)
		}
		indices.Add(idx)
	}
	top := b.table.Variable(body)
	filtered := make([]int32, 0, indices.Cardinality())
	indices.Each(func(idx int32) bool {
		if idx >= top {
			filtered = append(filtered, idx)
		}
		return false
	})
	sort.Slice(filtered, func(i, j int) bool { return filtered[i] < filtered[j] })
	return filtered, nil
}

func (b *Builder) buildSubstitution(e *lang.Substitution) (bdd.NodeID, error) {
	bodyID, err := b.Build(e.Body)
	if err != nil {
		return 0, err
	}
	replacements := make(map[string]lang.Expression, len(e.Pairs))
	for _, pair := range e.Pairs {
		if !b.env.IsSymbolic(pair.Name) {
			return 0, fail("build", NotABddVariable, e.Line, e.Col, "%q is not a declared symbolic variable", pair.Name)
		}
		replacements[pair.Name] = pair.Value // last pair for a name wins
	}
	reified := b.reify.Reify(bodyID)
	cache := make(map[lang.Expression]lang.Expression)
	substituted := substituteFree(reified, replacements, b.env, cache)
	return b.Build(substituted)
}
