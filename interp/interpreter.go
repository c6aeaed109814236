package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/dalzilio/boolbdd/bdd"
	"github.com/dalzilio/boolbdd/lang"
)

// Line is one entry in an Interpreter's output buffer. IsError marks a
// line that carries an error category tag, which the CLI/REPL renderer
// colors red when writing to a terminal; Interpreter itself never embeds
// color escapes.
type Line struct {
	Text    string
	IsError bool
}

// Interpreter is the driver that walks a parsed script against one shared
// Table, Environment and Builder, accumulating human-readable output.
type Interpreter struct {
	table   *bdd.Table
	env     *Environment
	builder *Builder
	reify   *ReificationCache
	out     []Line
}

// NewInterpreter creates a fresh Interpreter with its own Table, wired
// with opts (see bdd.Nodesize, bdd.Cachesize).
func NewInterpreter(opts ...bdd.Option) *Interpreter {
	table := bdd.NewTable(opts...)
	env := NewEnvironment(table)
	reify := NewReificationCache(table)
	return &Interpreter{
		table:   table,
		env:     env,
		builder: NewBuilder(table, env, reify),
		reify:   reify,
	}
}

// Output returns every line accumulated so far.
func (i *Interpreter) Output() []Line {
	return i.out
}

func (i *Interpreter) emit(text string) {
	i.out = append(i.out, Line{Text: text})
}

func (i *Interpreter) emitError(err *ExecutionError) {
	i.out = append(i.out, Line{Text: err.Error(), IsError: true})
}

// WalkStatements runs stmts in order, stopping at (and reporting) the
// first ExecutionError. An InternalError is not recovered here; it
// propagates as a panic to the top of main.
func (i *Interpreter) WalkStatements(stmts []lang.Statement) {
	for _, s := range stmts {
		if err := i.execStatement(s); err != nil {
			i.emitError(err)
			return
		}
	}
}

// WalkSingle runs exactly one statement, the REPL's entry point. Unlike
// WalkStatements it never stops a caller's loop on error: the caller (the
// REPL) simply reads the next statement-terminated line and calls
// WalkSingle again.
func (i *Interpreter) WalkSingle(s lang.Statement) {
	if err := i.execStatement(s); err != nil {
		i.emitError(err)
	}
}

func (i *Interpreter) execStatement(s lang.Statement) *ExecutionError {
	switch stmt := s.(type) {
	case *lang.Decl:
		for _, name := range stmt.Names {
			i.emit(i.env.Declare(name))
		}
		return nil
	case *lang.Assign:
		id, err := i.builder.Build(stmt.Value)
		if err != nil {
			return asExecutionError(err)
		}
		i.emit(i.env.Assign(stmt.Name, id))
		return nil
	case *lang.ExprStmt:
		id, err := i.builder.Build(stmt.Value)
		if err != nil {
			return asExecutionError(err)
		}
		i.emit(fmt.Sprintf("%d", id))
		return nil
	case *lang.FuncCall:
		return i.execFuncCall(stmt)
	default:
		internal("walk", "unsupported statement node %T", s)
		panic("unreachable")
	}
}

func asExecutionError(err error) *ExecutionError {
	if ee, ok := err.(*ExecutionError); ok {
		return ee
	}
	internal("walk", "builder returned a non-ExecutionError: %v", err)
	panic("unreachable")
}

func (i *Interpreter) execFuncCall(s *lang.FuncCall) *ExecutionError {
	op := s.Name.String()
	switch s.Name {
	case lang.DISPLAY_TREE:
		id, err := i.oneBuiltID(op, s)
		if err != nil {
			return err
		}
		i.emit(i.table.TreeRepr(id))
	case lang.DISPLAY_GRAPH:
		id, err := i.oneBuiltID(op, s)
		if err != nil {
			return err
		}
		i.emit(i.table.GraphRepr(id))
	case lang.IS_SAT:
		id, err := i.oneBuiltID(op, s)
		if err != nil {
			return err
		}
		if i.table.IsSat(id) {
			i.emit("satisfiable")
		} else {
			i.emit("unsatisfiable")
		}
	case lang.SOURCE:
		return i.execSource(s)
	case lang.CLEAR_CACHE:
		if err := i.checkArity(op, s, 0); err != nil {
			return err
		}
		i.emit(i.ClearCache())
	case lang.SWEEP:
		if err := i.checkArity(op, s, 0); err != nil {
			return err
		}
		i.emit(i.SweepMemory())
	case lang.PRESERVE_ALL:
		if err := i.checkArity(op, s, 0); err != nil {
			return err
		}
		i.env.PreserveAll()
		i.emit("Preserved all")
	case lang.UNPRESERVE_ALL:
		if err := i.checkArity(op, s, 0); err != nil {
			return err
		}
		i.env.UnpreserveAll()
		i.emit("Unpreserved all")
	case lang.PRESERVE:
		name, err := i.oneIdentifierArg(op, s)
		if err != nil {
			return err
		}
		if err := i.env.Preserve(name, s.Line, s.Col); err != nil {
			return asExecutionError(err)
		}
		i.emit(fmt.Sprintf("Preserved %s", name))
	case lang.UNPRESERVE:
		name, err := i.oneIdentifierArg(op, s)
		if err != nil {
			return err
		}
		if err := i.env.Unpreserve(name, s.Line, s.Col); err != nil {
			return asExecutionError(err)
		}
		i.emit(fmt.Sprintf("Unpreserved %s", name))
	default:
		internal("walk", "unrecognized function call token %v", s.Name)
	}
	return nil
}

func (i *Interpreter) checkArity(op string, s *lang.FuncCall, want int) *ExecutionError {
	if len(s.Args) != want {
		return fail(op, BadArity, s.Line, s.Col, "expected %d argument(s), got %d", want, len(s.Args))
	}
	return nil
}

func (i *Interpreter) oneBuiltID(op string, s *lang.FuncCall) (bdd.NodeID, *ExecutionError) {
	if err := i.checkArity(op, s, 1); err != nil {
		return 0, err
	}
	id, err := i.builder.Build(s.Args[0])
	if err != nil {
		return 0, asExecutionError(err)
	}
	return id, nil
}

func (i *Interpreter) oneIdentifierArg(op string, s *lang.FuncCall) (string, *ExecutionError) {
	if err := i.checkArity(op, s, 1); err != nil {
		return "", err
	}
	ident, ok := s.Args[0].(*lang.Identifier)
	if !ok {
		return "", fail(op, BadArgumentKind, s.Line, s.Col, "argument must be a bare identifier")
	}
	return ident.Name, nil
}

// execSource reads, lexes and parses the file named by s's sole argument
// (an Identifier, since filenames lex as ordinary identifiers), then runs
// the resulting statements through WalkStatements to completion before
// returning control to the enclosing script, per the strictly sequential
// concurrency model this interpreter assumes.
func (i *Interpreter) execSource(s *lang.FuncCall) *ExecutionError {
	name, err := i.oneIdentifierArg("source", s)
	if err != nil {
		return err
	}
	f, openErr := os.Open(name)
	if openErr != nil {
		return fail("source", MissingFile, s.Line, s.Col, "%v", openErr)
	}
	defer f.Close()

	contents, readErr := io.ReadAll(f)
	if readErr != nil {
		return fail("source", MissingFile, s.Line, s.Col, "%v", readErr)
	}
	tokens, lexErr := lang.Lex(string(contents))
	if lexErr != nil {
		return fail("source", BadArgumentKind, s.Line, s.Col, "%v", lexErr)
	}
	stmts, parseErrs := lang.Parse(tokens)
	if len(parseErrs) > 0 {
		return fail("source", BadArgumentKind, s.Line, s.Col, "%d parse error(s) in %s: %v", len(parseErrs), name, parseErrs[0])
	}
	i.WalkStatements(stmts)
	return nil
}

func sweepLine(reclaimed int) string {
	return fmt.Sprintf("Swept %d node(s)", reclaimed)
}
