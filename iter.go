// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bstmap

import "iter"

// An Iterator is a position in a map: either an entry or the end.
// Iterators are comparable; two iterators are equal when they refer
// to the same entry, or when both are at the end.
// The zero Iterator is at the end.
//
// An Iterator remains usable after other entries are erased: Next
// moves to the successor in the tree as it is then. After the current
// entry is erased, Next returns the end. Iterators obtained before
// Clear or Balance must not be used afterwards.
type Iterator[K, V any] struct {
	x *node[K, V]
}

// Done reports whether it is at the end.
func (it Iterator[K, V]) Done() bool { return it.x == nil }

// Key returns the key of the current entry.
// It panics if it is at the end.
func (it Iterator[K, V]) Key() K { return it.x.key }

// Value returns the value of the current entry.
// It panics if it is at the end.
func (it Iterator[K, V]) Value() V { return it.x.val }

// SetValue replaces the value of the current entry.
// It panics if it is at the end.
func (it Iterator[K, V]) SetValue(v V) { it.x.val = v }

// Next returns the iterator for the entry following the current one
// in key order, or the end.
// It panics if it is at the end.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	return Iterator[K, V]{it.x.next()}
}

// next returns the successor node of x, or nil.
// x must not be nil.
func (x *node[K, V]) next() *node[K, V] {
	if x.right == nil {
		for x.parent != nil && x.parent.right == x {
			x = x.parent
		}
		return x.parent
	}
	return x.right.minNode()
}

// Begin returns an iterator at the entry with the smallest key,
// or the end if m is empty.
func (m *Map[K, V]) Begin() Iterator[K, V] { return begin(m) }

// Begin returns an iterator at the entry with the smallest key,
// or the end if m is empty.
func (m *MapFunc[K, V]) Begin() Iterator[K, V] { return begin(m) }

func begin[K, V any](m omap[K, V]) Iterator[K, V] {
	x := *m.root()
	if x != nil {
		x = x.minNode()
	}
	return Iterator[K, V]{x}
}

// End returns the end iterator.
func (m *Map[K, V]) End() Iterator[K, V] { return Iterator[K, V]{} }

// End returns the end iterator.
func (m *MapFunc[K, V]) End() Iterator[K, V] { return Iterator[K, V]{} }

// Find returns an iterator at the entry for key, or the end if
// key is not present.
func (m *Map[K, V]) Find(key K) Iterator[K, V] { return find(m, key) }

// Find returns an iterator at the entry for key, or the end if
// key is not present.
func (m *MapFunc[K, V]) Find(key K) Iterator[K, V] { return find(m, key) }

func find[K, V any](m omap[K, V], key K) Iterator[K, V] {
	pos, _ := m.find(key)
	return Iterator[K, V]{*pos}
}

// All returns an iterator over the map m from smallest to largest key.
// If entries after the current one are erased during the iteration,
// they are not visited.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return all(m)
}

// All returns an iterator over the map m from smallest to largest key.
// If entries after the current one are erased during the iteration,
// they are not visited.
func (m *MapFunc[K, V]) All() iter.Seq2[K, V] {
	return all(m)
}

func all[K, V any](m omap[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := begin(m); !it.Done() && yield(it.Key(), it.Value()); {
			it = it.Next()
		}
	}
}

// Keys returns an iterator over the keys of m in increasing order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return keys(m)
}

// Keys returns an iterator over the keys of m in increasing order.
func (m *MapFunc[K, V]) Keys() iter.Seq[K] {
	return keys(m)
}

func keys[K, V any](m omap[K, V]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range all(m) {
			if !yield(k) {
				return
			}
		}
	}
}
