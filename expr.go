// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ztree

// Symbol is an opaque byte string labeling an edge of a tree. Only equality
// and stable hashing are required of it (spec.md §3); a Go string already
// provides both, so unlike rudd's Node (a raw *int, kept as a distinct named
// type to hide the underlying implementation) Symbol needs no wrapper.
type Symbol = string

// exprKind tags the five cases of a tree-set expression. spec.md §9
// explicitly recommends a tagged-variant representation dispatched by a
// single pair of functions over a set of dynamic-dispatch types, since the
// variant is closed and small; this is a deliberate departure from rudd's
// BDD interface, which spec.md itself calls out as the wrong shape here.
type exprKind uint8

const (
	kindBot exprKind = iota
	kindTop
	kindPrefix
	kindProduct
	kindSum
)

// Expr is a tree-set expression: Bot, Top, Prefix(symbol, child),
// Product(children) or Sum(children). Expressions are immutable and share
// children freely; the zero value is Bot.
type Expr struct {
	kind     exprKind
	symbol   Symbol
	child    *Expr
	children []Expr
}

// Bot denotes the empty set of trees.
var Bot = Expr{kind: kindBot}

// Top denotes the singleton set containing only the empty tree.
var Top = Expr{kind: kindTop}

// Prefix returns the tree-set expression denoting every tree of child with a
// single edge labeled symbol prepended at the root.
func Prefix(symbol Symbol, child Expr) Expr {
	c := child
	return Expr{kind: kindPrefix, symbol: symbol, child: &c}
}

// PrefixPath right-folds a sequence of symbols into nested Prefix nodes
// around child. An empty path returns child unchanged.
func PrefixPath(path []Symbol, child Expr) Expr {
	if len(path) == 0 {
		return child
	}
	return Prefix(path[0], PrefixPath(path[1:], child))
}

// Branch is PrefixPath(path, Top): the singleton set containing exactly the
// one tree that follows path from the root.
func Branch(path ...Symbol) Expr {
	return PrefixPath(path, Top)
}

// Product returns the exterior product of children: the set of trees whose
// root has one edge per child expression, combined.
func Product(children ...Expr) Expr {
	return Expr{kind: kindProduct, children: children}
}

// Sum returns the set-theoretic union of children.
func Sum(children ...Expr) Expr {
	return Expr{kind: kindSum, children: children}
}
