// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bstmap

import "math/bits"

// Height returns the number of nodes on the longest path from the root
// to a leaf. The height of an empty map is 0.
func (m *Map[K, V]) Height() int { return m._root.height() }

// Height returns the number of nodes on the longest path from the root
// to a leaf. The height of an empty map is 0.
func (m *MapFunc[K, V]) Height() int { return m._root.height() }

func (x *node[K, V]) height() int {
	if x == nil {
		return 0
	}
	return 1 + max(x.left.height(), x.right.height())
}

// IsBalanced reports whether m.Height() <= ⌈log2(m.Len())⌉.
// This is a bound on the whole tree, not a per-node property.
// An empty map is balanced.
//
// No tree of 2^k nodes satisfies the bound, since it needs k+1 levels.
func (m *Map[K, V]) IsBalanced() bool { return isBalanced(m) }

// IsBalanced reports whether m.Height() <= ⌈log2(m.Len())⌉.
// This is a bound on the whole tree, not a per-node property.
// An empty map is balanced.
//
// No tree of 2^k nodes satisfies the bound, since it needs k+1 levels.
func (m *MapFunc[K, V]) IsBalanced() bool { return isBalanced(m) }

func isBalanced[K, V any](m omap[K, V]) bool {
	return (*m.root()).height() <= ceilLog2(*m.count())
}

// ceilLog2 returns ⌈log2(n)⌉ for n > 0, and 0 for n == 0.
func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// Balance rebuilds m into a tree of minimal height.
//
// The entries are taken in key order and inserted level by level:
// for level i in 1..⌈log2(n)⌉ and each odd j < 2^i, the entry at
// sorted position ⌊j·n/2^i⌋ is inserted unless it already was.
// When n is a power of two that sequence misses position 0,
// which is inserted last.
//
// Iterators into m are invalidated.
func (m *Map[K, V]) Balance() { balance(m) }

// Balance rebuilds m into a tree of minimal height.
//
// The entries are taken in key order and inserted level by level:
// for level i in 1..⌈log2(n)⌉ and each odd j < 2^i, the entry at
// sorted position ⌊j·n/2^i⌋ is inserted unless it already was.
// When n is a power of two that sequence misses position 0,
// which is inserted last.
//
// Iterators into m are invalidated.
func (m *MapFunc[K, V]) Balance() { balance(m) }

func balance[K, V any](m omap[K, V]) {
	n := *m.count()
	if n == 0 {
		return
	}
	sorted := make([]*node[K, V], 0, n)
	for x := (*m.root()).minNode(); x != nil; x = x.next() {
		sorted = append(sorted, x)
	}
	*m.root() = nil

	placed := make([]bool, n)
	place := func(p int) {
		if !placed[p] {
			placed[p] = true
			attach(m, sorted[p])
		}
	}
	levels := ceilLog2(n)
	for i := 1; i <= levels; i++ {
		width := 1 << i
		for j := 1; j < width; j += 2 {
			place(j * n / width)
		}
	}
	for p := range placed {
		place(p)
	}
}
