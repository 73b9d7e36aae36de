// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package ztree defines an algebra of sets of labeled trees, represented and
manipulated through Zero-suppressed Binary Decision Diagrams (ZDD). A labeled
tree is a rooted tree whose edges carry an arbitrary symbol, and a "set of
trees" is a, possibly huge, finite collection of such trees encoded compactly
by sharing common subgraphs.

Basics

A tree-set expression (type Expr) is a small closed variant with five cases:
Bot (the empty set), Top (the singleton set containing only the empty tree),
Prefix (every tree of a child expression with one edge prepended), Product
(the exterior product of a sequence of expressions) and Sum (their union).
Expressions are pure, immutable data and share children freely.

Trees and Subtrees lower an expression into a ZDD: Trees materializes the set
of trees the expression describes; Subtrees materializes the set of every
prefix-closed selection of edges (including the empty one) of every tree in
that set.

Each ZDD is a hash-consed DAG of (variable, hi, lo) triples held by an
Engine. Variables are 64-bit integers derived from a rolling djb2-style hash
of the symbols on the path from the root, so that identical paths always
resolve to the same variable and distinct paths resolve, with overwhelming
probability, to distinct ones. This recipe is part of the wire contract of
the library: two independent lowerings of the same expression, under fresh
engines, always produce bit-identical node graphs.

Use of build tags

Unlike this package's sibling, rudd, which offers two interchangeable BDD
engines (a hashmap-backed one and a BuDDy-style array), ztree needs only one:
the tree-set algebra has exactly two combinators over ZDDs, union and
crossUnion, and neither benefits from an Apply-style dispatch table the way a
general Boolean connective suite does. Compiling with the build tag `debug`
adds an unexported Engine.logTable method that logs (via logrus, at debug
level) the node table and the operation caches' hit/miss counters; no
function of the package calls it.

Automatic memory management

The library is written in pure Go. An Engine's node table and operation
caches grow with Go's native slice and map growth, and are simply dropped by
the caller (and reclaimed by the Go garbage collector) once a computation is
done; there is no manual arena resizing or reference-counted node reclamation
to manage, since a single top-level Trees/Subtrees call owns its Engine for
its whole lifetime.
*/
package ztree
