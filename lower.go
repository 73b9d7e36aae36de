// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ztree

// ZDD is a handle to a node in some Engine's node table, denoting a set of
// sets of variables (spec.md §3). It plays the role of rudd's Node, but
// carries its owning Engine along so that Union/CrossUnion can be called as
// methods without threading an explicit table parameter through user code,
// the way Java's static ZDD.union(eq, un, a, b) needs to.
//
// The zero value of ZDD is not meaningful; obtain one from Trees, Subtrees,
// Engine.Bot, Engine.Top or Engine.Singleton.
type ZDD struct {
	eng *Engine
	ref int
}

// IsBot reports whether z denotes the empty set.
func (z ZDD) IsBot() bool { return z.ref == zddBot }

// IsTop reports whether z denotes {∅}.
func (z ZDD) IsTop() bool { return z.ref == zddTop }

// Variable returns the variable of z's node and true, or (0, false) if z is
// a sink.
func (z ZDD) Variable() (uint64, bool) {
	if z.ref < 2 {
		return 0, false
	}
	return z.eng.nodes[z.ref].variable, true
}

// Hi returns the hi branch of z. It is z itself if z is a sink.
func (z ZDD) Hi() ZDD { return ZDD{eng: z.eng, ref: z.eng.hi(z.ref)} }

// Lo returns the lo branch of z. It is z itself if z is a sink.
func (z ZDD) Lo() ZDD { return ZDD{eng: z.eng, ref: z.eng.lo(z.ref)} }

// Union returns the set-theoretic union of z and other. z and other must
// share the same Engine (combining two internal nodes from independent
// engines is a programmer error and panics, like a variable-ordering
// violation in make; sink operands are not checked, see checkSameEngine).
func (z ZDD) Union(other ZDD) ZDD {
	z.checkSameEngine(other)
	return ZDD{eng: z.eng, ref: z.eng.union(z.ref, other.ref)}
}

// CrossUnion returns the pairwise union of the members of z and other. z and
// other must share the same Engine.
func (z ZDD) CrossUnion(other ZDD) ZDD {
	z.checkSameEngine(other)
	return ZDD{eng: z.eng, ref: z.eng.crossUnion(z.ref, other.ref)}
}

// checkSameEngine panics if z and other were not built from the same Engine.
// Sinks (ref < 2) are engine-agnostic and never trigger the check.
func (z ZDD) checkSameEngine(other ZDD) {
	if z.ref < 2 || other.ref < 2 {
		return
	}
	if z.eng != other.eng {
		invariantf("ZDD operands from two different Engines cannot be combined")
	}
}

// Equal reports whether z and other are the same node in the same Engine.
// Because of hash-consing (spec.md §3's uniqueness invariant), this is
// equivalent to structural equality of the denoted sets, as long as both
// ZDDs were built with the same Engine.
func (z ZDD) Equal(other ZDD) bool {
	return z.eng == other.eng && z.ref == other.ref
}

// ************************************************************

// Trees materializes the ZDD whose elements are exactly the trees described
// by e, using a fresh Engine.
func Trees(e Expr) ZDD {
	return TreesWith(e, NewEngine())
}

// TreesWith is like Trees but lowers e using the caller-supplied Engine, so
// that several lowerings can share one unique table and set of operation
// caches (spec.md §5).
func TreesWith(e Expr, eng *Engine) ZDD {
	return ZDD{eng: eng, ref: lowerTrees(e, eng, 1)}
}

// Subtrees materializes the ZDD whose elements are every subtree (including
// the empty prefix) of every tree described by e, using a fresh Engine.
func Subtrees(e Expr) ZDD {
	return SubtreesWith(e, NewEngine())
}

// SubtreesWith is like Subtrees but lowers e using the caller-supplied
// Engine.
func SubtreesWith(e Expr, eng *Engine) ZDD {
	return ZDD{eng: eng, ref: lowerSubtrees(e, eng, 1)}
}

// lowerTrees and lowerSubtrees are the two recursive procedures of spec.md
// §4.1, ported directly from original_source's ZDDTree.trees/subtrees. h is
// the running rolling-hash prefix, seeded to 1 at the top-level Trees(With)/
// Subtrees(With) call.
func lowerTrees(e Expr, eng *Engine, h uint64) int {
	switch e.kind {
	case kindBot:
		return zddBot
	case kindTop:
		return zddTop
	case kindPrefix:
		h1 := mix(h, e.symbol)
		return eng.crossUnion(eng.singleton(h1), lowerTrees(*e.child, eng, h1))
	case kindProduct:
		return eng.crossUnionAll(mapLower(e.children, eng, h, lowerTrees))
	case kindSum:
		return eng.unionAll(mapLower(e.children, eng, h, lowerTrees))
	default:
		invariantf("lowerTrees: unknown expression kind %d", e.kind)
		return zddBot
	}
}

// mapLower applies lower to each child of a Product/Sum node, following the
// same order they appear in (spec.md §4.1 specifies left-to-right folding
// for determinism), mirroring original_source's mapTrees/mapSubtrees.
func mapLower(children []Expr, eng *Engine, h uint64, lower func(Expr, *Engine, uint64) int) []int {
	zdds := make([]int, len(children))
	for i, c := range children {
		zdds[i] = lower(c, eng, h)
	}
	return zdds
}

func lowerSubtrees(e Expr, eng *Engine, h uint64) int {
	switch e.kind {
	case kindBot:
		return zddBot
	case kindTop:
		return zddTop
	case kindPrefix:
		h1 := mix(h, e.symbol)
		return eng.union(zddTop, eng.crossUnion(eng.singleton(h1), lowerSubtrees(*e.child, eng, h1)))
	case kindProduct:
		return eng.crossUnionAll(mapLower(e.children, eng, h, lowerSubtrees))
	case kindSum:
		return eng.unionAll(mapLower(e.children, eng, h, lowerSubtrees))
	default:
		invariantf("lowerSubtrees: unknown expression kind %d", e.kind)
		return zddBot
	}
}
