package lang

// Expression is a closed sum type over the expression forms the parser can
// produce. The parser desugars "->", "==" and "!=" into And/Or/Not nodes
// before returning, so Binary.Op is only ever AMP or PIPE.
type Expression interface {
	exprNode()
}

// Literal is a terminal expression: TRUE, FALSE, or an integer node-id
// reference into an already-built BDD.
type Literal struct {
	Kind  TokenType // TRUE, FALSE, or INT
	Value int       // meaningful only when Kind == INT
	Line  int
	Col   int
}

// Identifier names a declared symbolic variable or a bound name.
type Identifier struct {
	Name string
	Line int
	Col  int
}

// Unary is a prefix operation; Op is always BANG.
type Unary struct {
	Op      TokenType
	Operand Expression
	Line    int
	Col     int
}

// Binary is an infix operation; Op is always AMP or PIPE once the parser's
// desugaring has run.
type Binary struct {
	Op    TokenType
	Left  Expression
	Right Expression
	Line  int
	Col   int
}

// Quantifier is an existential or universal elimination over a list of
// bound variable names.
type Quantifier struct {
	Kind TokenType // EXISTS or FORALL
	Vars []string
	Body Expression
	Line int
	Col  int
}

// SubPair is one name-to-expression entry in a Substitution. When several
// pairs name the same identifier, the last one in the list wins.
type SubPair struct {
	Name  string
	Value Expression
}

// Substitution replaces every free (symbolic) occurrence of a name in Body
// by the corresponding expression in Pairs, all simultaneously.
type Substitution struct {
	Pairs []SubPair
	Body  Expression
	Line  int
	Col   int
}

func (*Literal) exprNode()      {}
func (*Identifier) exprNode()   {}
func (*Unary) exprNode()        {}
func (*Binary) exprNode()       {}
func (*Quantifier) exprNode()   {}
func (*Substitution) exprNode() {}

// Statement is a closed sum type over the statement forms a script is made
// of.
type Statement interface {
	stmtNode()
}

// Decl is a "bvar x y z;" declaration statement.
type Decl struct {
	Names []string
	Line  int
	Col   int
}

// Assign is a "set name = expr;" statement.
type Assign struct {
	Name  string
	Value Expression
	Line  int
	Col   int
}

// FuncCall is a statement invoking one of the interpreter's builtin
// operations by keyword: display_tree, display_graph, is_sat, source,
// clear_cache, preserve, preserve_all, unpreserve, unpreserve_all, sweep.
type FuncCall struct {
	Name TokenType
	Args []Expression
	Line int
	Col  int
}

// ExprStmt is a bare expression statement; the interpreter prints the
// resulting node id.
type ExprStmt struct {
	Value Expression
	Line  int
	Col   int
}

func (*Decl) stmtNode()     {}
func (*Assign) stmtNode()   {}
func (*FuncCall) stmtNode() {}
func (*ExprStmt) stmtNode() {}
