// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bstmap

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound is the error matched by errors.Is for
// every error returned by Erase.
var ErrKeyNotFound = errors.New("key not found")

// A KeyNotFoundError reports that Erase was asked to remove
// a key that is not in the map.
type KeyNotFoundError struct {
	Key any
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("bstmap: erase %v: %v", e.Key, ErrKeyNotFound)
}

func (e *KeyNotFoundError) Unwrap() error { return ErrKeyNotFound }

// Erase removes the entry for key and returns its key and value.
// If key is not present, Erase returns a *KeyNotFoundError.
//
// The left subtree of the removed node takes its place; the nodes of
// its right subtree are then re-inserted one at a time, in pre-order.
func (m *Map[K, V]) Erase(key K) (K, V, error) {
	return erase(m, key)
}

// Erase removes the entry for key and returns its key and value.
// If key is not present, Erase returns a *KeyNotFoundError.
//
// The left subtree of the removed node takes its place; the nodes of
// its right subtree are then re-inserted one at a time, in pre-order.
func (m *MapFunc[K, V]) Erase(key K) (K, V, error) {
	return erase(m, key)
}

// Delete deletes m[key] if it exists and reports whether it did.
func (m *Map[K, V]) Delete(key K) bool {
	_, _, err := erase(m, key)
	return err == nil
}

// Delete deletes m[key] if it exists and reports whether it did.
func (m *MapFunc[K, V]) Delete(key K) bool {
	_, _, err := erase(m, key)
	return err == nil
}

func erase[K, V any](m omap[K, V], key K) (K, V, error) {
	pos, parent := m.find(key)
	x := *pos
	if x == nil {
		var (
			zk K
			zv V
		)
		return zk, zv, &KeyNotFoundError{Key: key}
	}

	// Splice the left subtree into x's slot.
	l, r := x.left, x.right
	*pos = l
	if l != nil {
		l.parent = parent
	}
	x.parent, x.left, x.right = nil, nil, nil
	*m.count()--

	// Re-insert the right subtree node by node.
	if r != nil {
		var nodes []*node[K, V]
		preorder(r, func(y *node[K, V]) { nodes = append(nodes, y) })
		for _, y := range nodes {
			attach(m, y)
		}
	}
	return x.key, x.val, nil
}
