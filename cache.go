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

import "fmt"

// opKey is the memo key for a binary ZDD operation: a canonicalized pair of
// operand handles (see orderPair in hashing.go).
type opKey struct {
	a, b int
}

// opCache memoizes the result of one binary operation (union or crossUnion).
// This plays the role of rudd's applycache/itecache (cache.go), but is a
// plain Go map rather than a fixed-size, prime-length array: spec.md §5
// states explicitly that no eviction policy is required for the operation
// caches, so there is nothing to gain from rudd's manual sizing/resizing
// dance (bdd_prime_gte, cacheratio) and a map lets the runtime grow the
// table as needed.
type opCache struct {
	table map[opKey]int
	hit   int
	miss  int
}

func newOpCache(capacity int) *opCache {
	return &opCache{table: make(map[opKey]int, capacity)}
}

// get looks up the memoized result of op(a,b), returning ok=false on a miss.
// Operands are canonicalized before lookup so that op(a,b) and op(b,a) share
// one entry, per spec.md's canonicalization rule for commutative operators.
func (c *opCache) get(a, b int) (int, bool) {
	lo, hi := orderPair(a, b)
	res, ok := c.table[opKey{lo, hi}]
	if ok {
		c.hit++
	} else {
		c.miss++
	}
	return res, ok
}

func (c *opCache) set(a, b, res int) {
	lo, hi := orderPair(a, b)
	c.table[opKey{lo, hi}] = res
}

// String reports the cache's hit/miss counters, following the format of
// rudd's cacheStat.String.
func (c *opCache) String() string {
	return fmt.Sprintf("entries: %d, hits: %d, misses: %d", len(c.table), c.hit, c.miss)
}
