// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package bdd

import (
	"bufio"
	"fmt"
	"sort"
)

// TreeRepr renders the BDD rooted at id as a nested "var ? (high) : (low)"
// expression, with leaves TRUE/FALSE. The string can be exponentially
// larger than the number of nodes reachable from id; this is produced
// verbatim regardless.
func (t *Table) TreeRepr(id NodeID) string {
	switch id {
	case FalseID:
		return "FALSE"
	case TrueID:
		return "TRUE"
	}
	return fmt.Sprintf("%s ? (%s) : (%s)",
		t.VarName(t.Variable(id)),
		t.TreeRepr(t.High(id)),
		t.TreeRepr(t.Low(id)),
	)
}

// GraphRepr renders the BDD rooted at id as a Graphviz "digraph" listing
// every node reachable from id, with a solid edge to each node's high
// child and a dashed edge to its low child.
func (t *Table) GraphRepr(id NodeID) string {
	var buf bufferedString
	w := bufio.NewWriter(&buf)
	fmt.Fprintln(w, "digraph G {")

	nodes := t.reachable(id)
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })
	for _, n := range nodes {
		switch n {
		case FalseID:
			fmt.Fprintln(w, `0 [shape=box, label="FALSE", style=filled];`)
		case TrueID:
			fmt.Fprintln(w, `1 [shape=box, label="TRUE", style=filled];`)
		default:
			fmt.Fprintf(w, "%d [label=%q];\n", n, t.VarName(t.Variable(n)))
			fmt.Fprintf(w, "%d -> %d;\n", n, t.High(n))
			fmt.Fprintf(w, "%d -> %d [style=dashed];\n", n, t.Low(n))
		}
	}
	fmt.Fprintln(w, "}")
	w.Flush()
	return buf.String()
}

// reachable returns every node id reachable from id, including id itself
// and any terminal it touches, in no particular order.
func (t *Table) reachable(id NodeID) []NodeID {
	seen := map[NodeID]bool{id: true}
	queue := []NodeID{id}
	for i := 0; i < len(queue); i++ {
		n := queue[i]
		if t.IsTerminal(n) {
			continue
		}
		for _, c := range [2]NodeID{t.Low(n), t.High(n)} {
			if !seen[c] {
				seen[c] = true
				queue = append(queue, c)
			}
		}
	}
	out := make([]NodeID, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	return out
}

// bufferedString is a minimal io.Writer-backed string accumulator, used so
// GraphRepr can write through a *bufio.Writer with fmt.Fprint calls without
// requiring a real file handle.
type bufferedString struct {
	data []byte
}

func (b *bufferedString) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

func (b *bufferedString) String() string {
	return string(b.data)
}
