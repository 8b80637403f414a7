// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bstmap

import (
	"cmp"
	"fmt"
)

// Check verifies the structure of m: every node is ordered against
// its neighbors, every parent link matches the edge that owns the node,
// and Len equals the number of reachable nodes.
// A non-nil result means m has been corrupted.
func (m *Map[K, V]) Check() error {
	return check(m, cmp.Less[K])
}

// Check verifies the structure of m: every node is ordered against
// its neighbors, every parent link matches the edge that owns the node,
// and Len equals the number of reachable nodes.
// A non-nil result means m has been corrupted.
func (m *MapFunc[K, V]) Check() error {
	return check(m, m.less)
}

func check[K, V any](m omap[K, V], less func(K, K) bool) error {
	root := *m.root()
	if root != nil && root.parent != nil {
		return fmt.Errorf("root %v has parent %v", root.key, root.parent.key)
	}
	n, err := checkup(root, nil)
	if err != nil {
		return err
	}
	if c := *m.count(); c != n {
		return fmt.Errorf("count is %d, but %d nodes are reachable", c, n)
	}
	// An in-order walk must be strictly increasing.
	if root == nil {
		return nil
	}
	var prev *node[K, V]
	for x := root.minNode(); x != nil; x = x.next() {
		if prev != nil && !less(prev.key, x.key) {
			return fmt.Errorf("key %v follows %v", x.key, prev.key)
		}
		prev = x
	}
	return nil
}

// checkup checks the parent links of x's subtree
// and returns the number of nodes in it.
func checkup[K, V any](x, parent *node[K, V]) (int, error) {
	if x == nil {
		return 0, nil
	}
	if x.parent != parent {
		return 0, fmt.Errorf("node %v: parent link does not match its owner", x.key)
	}
	l, err := checkup(x.left, x)
	if err != nil {
		return 0, err
	}
	r, err := checkup(x.right, x)
	if err != nil {
		return 0, err
	}
	return 1 + l + r, nil
}
