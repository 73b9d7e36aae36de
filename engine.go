// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ztree

// Engine is a hash-consed table of ZDD nodes, together with the two
// operation caches (crossUnion and union) spec.md §3 calls for. It plays the
// role of rudd's bdd/hudd pair, generalized from a fixed Boolean-variable
// arena to an open-ended uint64 variable space, and stripped of the
// reference-counted garbage collection that a fixed arena needs but an
// unbounded, host-garbage-collected one does not (see DESIGN.md).
//
// An Engine is not safe for concurrent use (spec.md §5): independent
// computations that must run in parallel need independent Engines.
type Engine struct {
	nodes  []zNode         // node table; index 0 and 1 are unused placeholders for the sinks
	unique map[zNode]int   // hash-consing table: (variable, hi, lo) -> handle
	cu     *opCache        // crossUnion memo
	un     *opCache        // union memo
	stats  engineStats
}

// engineStats tracks unique-table access counters, mirroring (in spirit,
// not in mechanism) rudd's uniqueAccess/uniqueHit/uniqueMiss fields.
type engineStats struct {
	uniqueAccess int
	uniqueHit    int
	uniqueMiss   int
	produced     int
}

// NewEngine allocates a fresh Engine with its own node table and caches. Use
// TreesWith/SubtreesWith with an explicit Engine to have several lowerings
// share one unique table (and thus memoize across each other), per spec.md
// §5 ("Shared caches across calls").
func NewEngine(opts ...EngineOption) *Engine {
	cfg := makeconfig(opts)
	return &Engine{
		nodes:  make([]zNode, 2, cfg.nodeCapacity),
		unique: make(map[zNode]int, cfg.nodeCapacity),
		cu:     newOpCache(cfg.cacheCapacity),
		un:     newOpCache(cfg.cacheCapacity),
	}
}

// make is the unique-node constructor of spec.md §4.2. It zero-suppresses
// nodes whose hi branch is the bottom sink, and otherwise returns the
// canonical handle for (variable, hi, lo), allocating a fresh node the first
// time that triple is seen.
func (e *Engine) make(variable uint64, hi, lo int) int {
	e.stats.uniqueAccess++
	if hi == zddBot {
		return lo
	}
	if variable >= e.variableOf(hi) || variable >= e.variableOf(lo) {
		invariantf("make(%d, %d, %d): variable ordering violated (var(hi)=%d, var(lo)=%d)",
			variable, hi, lo, e.variableOf(hi), e.variableOf(lo))
	}
	key := zNode{variable, hi, lo}
	if h, ok := e.unique[key]; ok {
		e.stats.uniqueHit++
		return h
	}
	e.stats.uniqueMiss++
	e.nodes = append(e.nodes, key)
	h := len(e.nodes) - 1
	e.unique[key] = h
	e.stats.produced++
	return h
}

// singleton returns the handle of the ZDD denoting {{v}}, i.e. make(v, top,
// bot).
func (e *Engine) singleton(v uint64) int {
	return e.make(v, zddTop, zddBot)
}

// Singleton is the exported counterpart of singleton, wrapping the result as
// a ZDD bound to this Engine.
func (e *Engine) Singleton(v uint64) ZDD {
	return ZDD{eng: e, ref: e.singleton(v)}
}

// Bot returns the ZDD denoting the empty set, bound to this Engine.
func (e *Engine) Bot() ZDD { return ZDD{eng: e, ref: zddBot} }

// Top returns the ZDD denoting {∅}, bound to this Engine.
func (e *Engine) Top() ZDD { return ZDD{eng: e, ref: zddTop} }

// union implements spec.md §4.3.
func (e *Engine) union(a, b int) int {
	if a == zddBot {
		return b
	}
	if b == zddBot {
		return a
	}
	if a == b {
		return a
	}
	if res, ok := e.un.get(a, b); ok {
		return res
	}
	va, vb := e.variableOf(a), e.variableOf(b)
	var res int
	switch {
	case va < vb:
		res = e.make(va, e.hi(a), e.union(e.lo(a), b))
	case va > vb:
		res = e.make(vb, e.hi(b), e.union(a, e.lo(b)))
	default:
		res = e.make(va, e.union(e.hi(a), e.hi(b)), e.union(e.lo(a), e.lo(b)))
	}
	e.un.set(a, b, res)
	return res
}

// crossUnion implements spec.md §4.4.
func (e *Engine) crossUnion(a, b int) int {
	if a == zddBot || b == zddBot {
		return zddBot
	}
	if a == zddTop {
		return b
	}
	if b == zddTop {
		return a
	}
	if res, ok := e.cu.get(a, b); ok {
		return res
	}
	va, vb := e.variableOf(a), e.variableOf(b)
	var res int
	switch {
	case va < vb:
		res = e.make(va, e.crossUnion(e.hi(a), b), e.crossUnion(e.lo(a), b))
	case va > vb:
		res = e.make(vb, e.crossUnion(a, e.hi(b)), e.crossUnion(a, e.lo(b)))
	default:
		hiBranch := e.union(
			e.crossUnion(e.hi(a), e.hi(b)),
			e.union(e.crossUnion(e.hi(a), e.lo(b)), e.crossUnion(e.lo(a), e.hi(b))),
		)
		loBranch := e.crossUnion(e.lo(a), e.lo(b))
		res = e.make(va, hiBranch, loBranch)
	}
	e.cu.set(a, b, res)
	return res
}

// crossUnionAll folds crossUnion left-to-right over zdds, starting from the
// top sink, per spec.md §4.1/§4.4.
func (e *Engine) crossUnionAll(zdds []int) int {
	res := zddTop
	for _, z := range zdds {
		res = e.crossUnion(res, z)
	}
	return res
}

// unionAll folds union left-to-right over zdds, starting from the bottom
// sink, per spec.md §4.1.
func (e *Engine) unionAll(zdds []int) int {
	res := zddBot
	for _, z := range zdds {
		res = e.union(res, z)
	}
	return res
}
