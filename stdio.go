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

package ztree

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"
)

// Stats returns a short, human-readable summary of the Engine: table size,
// nodes produced, and cache hit/miss counters. Follows the layout of rudd's
// (*bdd).stats/(*hudd).stats.
func (e *Engine) Stats() string {
	res := fmt.Sprintf("Allocated:  %d\n", len(e.nodes))
	res += fmt.Sprintf("Produced:   %d\n", e.stats.produced)
	res += fmt.Sprintf("Unique Access:  %d\n", e.stats.uniqueAccess)
	res += fmt.Sprintf("Unique Hit:     %d\n", e.stats.uniqueHit)
	res += fmt.Sprintf("Unique Miss:    %d\n", e.stats.uniqueMiss)
	res += fmt.Sprintf("CrossUnion cache: %s\n", e.cu)
	res += fmt.Sprintf("Union cache:      %s\n", e.un)
	return res
}

// String returns a one-line description of z: its handle, variable, and hi
// and lo branches, or "Bot"/"Top" for a sink. Mirrors rudd's (*BDD).Print.
func (z ZDD) String() string {
	switch z.ref {
	case zddBot:
		return "Bot"
	case zddTop:
		return "Top"
	default:
		n := z.eng.nodes[z.ref]
		return fmt.Sprintf("(%d[%d] ? %d : %d)", z.ref, n.variable, n.hi, n.lo)
	}
}

// Print writes a table of every node reachable from z (its own transitive
// hi/lo closure) to w, one line per node, in the same tabwriter-aligned
// style as rudd's (*BDD).print_string.
func (z ZDD) Print(w io.Writer) error {
	seen := map[int]bool{}
	var nodes []int
	var walk func(n int)
	walk = func(n int) {
		if n < 2 || seen[n] {
			return
		}
		seen[n] = true
		nodes = append(nodes, n)
		walk(z.eng.hi(n))
		walk(z.eng.lo(n))
	}
	walk(z.ref)
	sort.Ints(nodes)
	tw := tabwriter.NewWriter(w, 0, 0, 0, ' ', 0)
	for _, n := range nodes {
		node := z.eng.nodes[n]
		fmt.Fprintf(tw, "%d\t[%d\t] ? \t%d\t : %d\n", n, node.variable, node.hi, node.lo)
	}
	return tw.Flush()
}

// PrintStdout writes z's node table to standard output.
func (z ZDD) PrintStdout() {
	z.Print(os.Stdout)
}
