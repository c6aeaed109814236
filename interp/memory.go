package interp

// ClearCache discards every memoization cache the interpreter holds: the
// Table's Apply/Not/quantifier/sat caches and the Builder's substitution
// reification memo. It always succeeds and returns the line to print.
func (i *Interpreter) ClearCache() string {
	i.table.ClearCaches()
	i.reify.Clear()
	return "Cleared"
}

// SweepMemory discards every memoization cache, drops every non-preserved
// Bound name from the Environment, and reclaims every Node Table entry
// that is no longer reachable from a preserved binding. It always
// succeeds and returns the line to print.
func (i *Interpreter) SweepMemory() string {
	i.reify.Clear()
	reclaimed := i.env.Sweep()
	return sweepLine(reclaimed)
}
