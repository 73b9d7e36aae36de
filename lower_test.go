// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ztree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

//********************************************************************************************

// TestTreesSeeds checks the seed scenarios S1-S3 of spec.md §8: the shape of
// the ZDD produced by lowerTrees for Top, Bot, and a two-symbol branch.
func TestTreesSeeds(t *testing.T) {
	e := NewEngine()

	// S1: trees(Top) -> Top.
	if got := TreesWith(Top, e); !got.IsTop() {
		t.Errorf("trees(Top): expected Top, actual %v", got)
	}

	// S2: trees(Bot) -> Bot.
	if got := TreesWith(Bot, e); !got.IsBot() {
		t.Errorf("trees(Bot): expected Bot, actual %v", got)
	}

	// S3: trees(branch("a","b")) is a two-node chain over {h1, h2}, each
	// with lo=Bot, denoting the single set {h1, h2}.
	h1 := mix(1, "a")
	h2 := mix(h1, "b")
	got := TreesWith(Branch("a", "b"), e)
	v, ok := got.Variable()
	if !ok {
		t.Fatalf("trees(branch(a,b)): expected an internal node, got a sink")
	}
	if v != h1 && v != h2 {
		t.Errorf("trees(branch(a,b)): top variable %d is neither h1=%d nor h2=%d", v, h1, h2)
	}
	if lo := got.Lo(); !lo.IsBot() {
		t.Errorf("trees(branch(a,b)): expected lo=Bot at the top node, actual %v", lo)
	}
	inner := got.Hi()
	iv, ok := inner.Variable()
	if !ok {
		t.Fatalf("trees(branch(a,b)): expected a second internal node on the hi branch")
	}
	if iv != h1 && iv != h2 {
		t.Errorf("trees(branch(a,b)): inner variable %d is neither h1=%d nor h2=%d", iv, h1, h2)
	}
	if v == iv {
		t.Errorf("trees(branch(a,b)): top and inner node share variable %d, expected h1 != h2", v)
	}
}

//********************************************************************************************

// TestTreesSumDistinctBranches checks S4: trees(sum(branch("a"),
// branch("b"))) denotes {{ha}, {hb}}, a single node with both children
// pointing at the top sink on the hi side.
func TestTreesSumDistinctBranches(t *testing.T) {
	e := NewEngine()
	got := TreesWith(Sum(Branch("a"), Branch("b")), e)
	v, ok := got.Variable()
	if !ok {
		t.Fatalf("trees(sum(branch(a),branch(b))): expected an internal node, got a sink")
	}
	ha, hb := mix(1, "a"), mix(1, "b")
	if v != ha && v != hb {
		t.Errorf("trees(sum(...)): top variable %d is neither ha=%d nor hb=%d", v, ha, hb)
	}
	if hi := got.Hi(); !hi.IsTop() {
		t.Errorf("trees(sum(...)): expected hi=Top, actual %v", hi)
	}
	lo := got.Lo()
	lv, ok := lo.Variable()
	if !ok {
		t.Fatalf("trees(sum(...)): expected lo to be the other singleton, got a sink")
	}
	if lv == v {
		t.Errorf("trees(sum(...)): top and lo share variable %d, expected ha != hb", v)
	}
}

//********************************************************************************************

// TestTreesProductSiblingBranches checks S5: in
// trees(product(branch("a"), branch("b"))), the "b" prefix's variable is
// mix(1,"b"), not mix(ha,"b") — products lower each child from the same
// running hash, unlike nested Prefix.
func TestTreesProductSiblingBranches(t *testing.T) {
	e := NewEngine()
	got := TreesWith(Product(Branch("a"), Branch("b")), e)
	ha, hb := mix(1, "a"), mix(1, "b")
	v, _ := got.Variable()
	if v != ha && v != hb {
		t.Errorf("trees(product(...)): top variable %d is neither ha=%d nor hb=%d", v, ha, hb)
	}
}

//********************************************************************************************

// TestSubtreesSeed checks S6: subtrees(branch("a","b")) denotes
// {∅, {h1}, {h1,h2}}, i.e. it contains Top (the empty prefix), the
// singleton {h1}, and the full tree {h1,h2} that trees(branch("a","b"))
// denotes.
func TestSubtreesSeed(t *testing.T) {
	e := NewEngine()
	trees := TreesWith(Branch("a", "b"), e)
	subtrees := SubtreesWith(Branch("a", "b"), e)

	require.False(t, subtrees.IsTop(), "subtrees(branch(a,b)) denotes more than {∅}")
	require.False(t, subtrees.IsBot())
	require.True(t, subtrees.Union(e.Top()).Equal(subtrees), "Top must already be a member of subtrees(branch(a,b))")
	require.True(t, subtrees.Union(trees).Equal(subtrees), "the full tree must already be a member of subtrees(branch(a,b))")
}

//********************************************************************************************

// TestSubtreeSupersetsTree checks the general property of spec.md §8.7:
// den(subtrees(e)) ⊇ den(trees(e)) for arbitrary e, and Top is always a
// member of subtrees(e) when e != Bot.
func TestSubtreeSupersetsTree(t *testing.T) {
	exprs := []Expr{
		Top,
		Branch("x"),
		Branch("a", "b", "c"),
		Sum(Branch("a"), Branch("b"), Branch("c")),
		Product(Branch("a"), Sum(Branch("b"), Branch("c"))),
	}
	for _, e := range exprs {
		eng := NewEngine()
		trees := TreesWith(e, eng)
		subtrees := SubtreesWith(e, eng)
		require.True(t, subtrees.Union(trees).Equal(subtrees), "subtrees(%v) does not contain trees(%v)", e, e)
		require.True(t, subtrees.Union(eng.Top()).Equal(subtrees), "subtrees(%v) does not contain Top", e)
	}
}

//********************************************************************************************

// TestLoweringDeterministic checks spec.md §8.6: two fresh lowerings of the
// same expression, sharing one Engine, produce the same handle.
func TestLoweringDeterministic(t *testing.T) {
	e := NewEngine()
	exprs := []Expr{
		Branch("a", "b"),
		Sum(Branch("a"), Branch("b")),
		Product(Branch("a"), Branch("b")),
	}
	for _, expr := range exprs {
		first := TreesWith(expr, e)
		second := TreesWith(expr, e)
		require.True(t, first.Equal(second), "two lowerings of %v produced different handles: %v != %v", expr, first, second)
	}
}

//********************************************************************************************

// TestLoweringRandomSubtreeSuperset samples random small expressions and
// checks the subtree-superset property holds for all of them, following
// rudd's practice (TestOperations) of driving invariant checks with
// math/rand rather than only fixed cases.
func TestLoweringRandomSubtreeSuperset(t *testing.T) {
	alphabet := []string{"a", "b", "c", "d"}
	randomExpr := func(depth int) Expr {
		var build func(d int) Expr
		build = func(d int) Expr {
			if d <= 0 || rand.Intn(3) == 0 {
				return Top
			}
			sym := alphabet[rand.Intn(len(alphabet))]
			switch rand.Intn(3) {
			case 0:
				return Prefix(sym, build(d-1))
			case 1:
				return Sum(Prefix(sym, build(d-1)), build(d-1))
			default:
				return Product(Prefix(sym, build(d-1)), Top)
			}
		}
		return build(depth)
	}

	for i := 0; i < 25; i++ {
		eng := NewEngine()
		expr := randomExpr(3)
		trees := TreesWith(expr, eng)
		subtrees := SubtreesWith(expr, eng)
		require.True(t, subtrees.Union(trees).Equal(subtrees), "iteration %d: subtrees(%v) does not contain trees(%v)", i, expr, expr)
	}
}
