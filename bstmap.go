// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bstmap implements in-memory ordered maps backed by a plain
// binary search tree.
// [Map][K, V] is suitable for ordered types K,
// while [MapFunc][K, V] supports arbitrary keys and a less-than function.
//
// The tree is never rebalanced implicitly: inserting keys in sorted order
// produces a tree whose height equals its size. Call Balance to rebuild
// the tree into a minimal-height shape.
//
// A map is not safe for concurrent use. Callers that share a map between
// goroutines must serialize all access to it.
package bstmap

import (
	"cmp"
)

// A Map is a map[K]V ordered according to K's standard Go ordering.
// The zero value of a Map is an empty Map ready to use.
type Map[K cmp.Ordered, V any] struct {
	_root *node[K, V]
	n     int
}

// A MapFunc is a map[K]V ordered according to an arbitrary less-than function.
// The zero value of a MapFunc is not meaningful since it has no less function.
// Use [NewMapFunc] to create a [MapFunc].
type MapFunc[K, V any] struct {
	_root *node[K, V]
	n     int
	less  func(K, K) bool
}

// A node is a node in the tree.
// left and right own their subtrees; parent is only a back link.
type node[K any, V any] struct {
	parent *node[K, V]
	left   *node[K, V]
	right  *node[K, V]
	key    K
	val    V
}

// NewMapFunc returns a new MapFunc[K, V] ordered according to less.
// less must be a strict weak ordering; keys a and b are considered
// equal when neither is less than the other.
func NewMapFunc[K, V any](less func(a, b K) bool) *MapFunc[K, V] {
	return &MapFunc[K, V]{less: less}
}

// omap is the interface implemented by both Map[K, V] and MapFunc[K, V]
// that enables a common implementation of the map operations.
type omap[K, V any] interface {
	// root returns &m._root; the caller can read or write *m.root().
	root() **node[K, V]

	// count returns &m.n, the number of nodes reachable from the root.
	count() *int

	// find reports where a node with the key would be: at *pos.
	// If *pos != nil, then key is present in the tree;
	// otherwise *pos is where a new node with the key should be attached.
	//
	// If parent != nil, then pos is either &parent.left or &parent.right
	// depending on how parent.key compares with key.
	// If parent == nil, then pos is m.root().
	find(key K) (pos **node[K, V], parent *node[K, V])
}

func (m *Map[K, V]) root() **node[K, V]     { return &m._root }
func (m *MapFunc[K, V]) root() **node[K, V] { return &m._root }

func (m *Map[K, V]) count() *int     { return &m.n }
func (m *MapFunc[K, V]) count() *int { return &m.n }

// find looks up the key k in the map.
// It returns the parent of k as well as the position where k would be attached.
// *pos is non-nil if k is present, nil if k is missing.
// parent is nil if there are no nodes in the map, or if k is at the root.
func (m *Map[K, V]) find(k K) (pos **node[K, V], parent *node[K, V]) {
	pos = &m._root
	for x := *pos; x != nil; x = *pos {
		c := cmp.Compare(k, x.key)
		if c == 0 {
			break
		}
		parent = x
		if c < 0 {
			pos = &x.left
		} else {
			pos = &x.right
		}
	}
	return pos, parent
}

// find is the same as for Map[K, V] but using m.less.
func (m *MapFunc[K, V]) find(k K) (pos **node[K, V], parent *node[K, V]) {
	pos = &m._root
	for x := *pos; x != nil; x = *pos {
		switch {
		case m.less(k, x.key):
			parent = x
			pos = &x.left
		case m.less(x.key, k):
			parent = x
			pos = &x.right
		default:
			return pos, parent
		}
	}
	return pos, parent
}

// Len returns the number of entries in m.
func (m *Map[K, V]) Len() int { return m.n }

// Len returns the number of entries in m.
func (m *MapFunc[K, V]) Len() int { return m.n }

// Get returns the value of m[key] and reports whether it exists.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return get(m, key)
}

// Get returns the value of m[key] and reports whether it exists.
func (m *MapFunc[K, V]) Get(key K) (V, bool) {
	return get(m, key)
}

func get[K, V any](m omap[K, V], key K) (V, bool) {
	pos, _ := m.find(key)
	if x := *pos; x != nil {
		return x.val, true
	}
	var zero V
	return zero, false
}

// Set sets m[key] = val.
// If the entry was present, Set returns the former value and false.
// Otherwise it returns the zero value and true.
func (m *Map[K, V]) Set(key K, val V) (old V, added bool) {
	return set(m, key, val)
}

// Set sets m[key] = val.
// If the entry was present, Set returns the former value and false.
// Otherwise it returns the zero value and true.
func (m *MapFunc[K, V]) Set(key K, val V) (old V, added bool) {
	return set(m, key, val)
}

// Insert sets m[key] = val, overwriting the value of an existing entry.
// It always reports true.
func (m *Map[K, V]) Insert(key K, val V) bool {
	set(m, key, val)
	return true
}

// Insert sets m[key] = val, overwriting the value of an existing entry.
// It always reports true.
func (m *MapFunc[K, V]) Insert(key K, val V) bool {
	set(m, key, val)
	return true
}

func set[K, V any](m omap[K, V], key K, val V) (V, bool) {
	pos, parent := m.find(key)
	if x := *pos; x != nil {
		old := x.val
		x.val = val
		return old, false
	}
	*pos = &node[K, V]{key: key, val: val, parent: parent}
	*m.count()++
	var z V
	return z, true
}

// Ref returns a pointer to the value of m[key].
// If key is not present, an entry with the zero value is added first.
// The pointer stays valid until the entry is erased.
func (m *Map[K, V]) Ref(key K) *V {
	return ref(m, key)
}

// Ref returns a pointer to the value of m[key].
// If key is not present, an entry with the zero value is added first.
// The pointer stays valid until the entry is erased.
func (m *MapFunc[K, V]) Ref(key K) *V {
	return ref(m, key)
}

func ref[K, V any](m omap[K, V], key K) *V {
	pos, parent := m.find(key)
	if *pos == nil {
		*pos = &node[K, V]{key: key, parent: parent}
		*m.count()++
	}
	return &(*pos).val
}

// attach links the detached node x into m at the position for x.key.
// x.key must not already be present. The count is not changed.
func attach[K, V any](m omap[K, V], x *node[K, V]) {
	pos, parent := m.find(x.key)
	if *pos != nil {
		panic("bstmap: attach of a duplicate key")
	}
	x.parent = parent
	x.left, x.right = nil, nil
	*pos = x
}

// Min returns the minimum key in m and true.
// If m is empty, the second return value is false.
func (m *Map[K, V]) Min() (K, bool) {
	return _min(m)
}

// Min returns the minimum key in m and true.
// If m is empty, the second return value is false.
func (m *MapFunc[K, V]) Min() (K, bool) {
	return _min(m)
}

func _min[K, V any](m omap[K, V]) (K, bool) {
	x := *m.root()
	if x == nil {
		var z K
		return z, false
	}
	return x.minNode().key, true
}

// minNode returns the node in x's subtree with the smallest key.
// x must not be nil.
func (x *node[K, V]) minNode() *node[K, V] {
	for x.left != nil {
		x = x.left
	}
	return x
}

// Max returns the maximum key in m and true.
// If m is empty, the second return value is false.
func (m *Map[K, V]) Max() (K, bool) {
	return _max(m)
}

// Max returns the maximum key in m and true.
// If m is empty, the second return value is false.
func (m *MapFunc[K, V]) Max() (K, bool) {
	return _max(m)
}

func _max[K, V any](m omap[K, V]) (K, bool) {
	x := *m.root()
	if x == nil {
		var z K
		return z, false
	}
	return x.maxNode().key, true
}

// maxNode returns the node in x's subtree with the largest key.
// x must not be nil.
func (x *node[K, V]) maxNode() *node[K, V] {
	for x.right != nil {
		x = x.right
	}
	return x
}

// Clear deletes m[k] for all keys in m.
func (m *Map[K, V]) Clear() {
	m._root = nil
	m.n = 0
}

// Clear deletes m[k] for all keys in m.
func (m *MapFunc[K, V]) Clear() {
	m._root = nil
	m.n = 0
}

// Clone returns a copy of m.
// The copy is built by inserting the entries of m in pre-order,
// so it has the same shape as m and shares no nodes with it.
func (m *Map[K, V]) Clone() *Map[K, V] {
	m2 := &Map[K, V]{}
	preorder(m._root, func(x *node[K, V]) { set(m2, x.key, x.val) })
	return m2
}

// Clone returns a copy of m.
// The copy is built by inserting the entries of m in pre-order,
// so it has the same shape as m and shares no nodes with it.
func (m *MapFunc[K, V]) Clone() *MapFunc[K, V] {
	m2 := NewMapFunc[K, V](m.less)
	preorder(m._root, func(x *node[K, V]) { set(m2, x.key, x.val) })
	return m2
}

// Move returns a new map holding the entries of m and leaves m empty.
func (m *Map[K, V]) Move() *Map[K, V] {
	m2 := &Map[K, V]{_root: m._root, n: m.n}
	m.Clear()
	return m2
}

// Move returns a new map holding the entries of m and leaves m empty.
// The new map uses the same less function as m.
func (m *MapFunc[K, V]) Move() *MapFunc[K, V] {
	m2 := &MapFunc[K, V]{_root: m._root, n: m.n, less: m.less}
	m.Clear()
	return m2
}

// preorder calls f for x and then for the nodes of its left and right
// subtrees. f must not change the links of the nodes it is given.
func preorder[K, V any](x *node[K, V], f func(*node[K, V])) {
	if x == nil {
		return
	}
	f(x)
	preorder(x.left, f)
	preorder(x.right, f)
}
