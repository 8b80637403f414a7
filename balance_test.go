// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bstmap

import (
	"math/bits"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestBalance(t *testing.T) {
	test(t, func(t *testing.T, newMap func() Interface[int, int]) {
		for N := range 300 {
			m := newMap()
			_, slice := permute(m, N)
			before := slices.Collect(m.Keys())

			m.Balance()
			checkMap(t, m)
			if m.Len() != N {
				t.Fatalf("N=%d: Len() = %d after Balance", N, m.Len())
			}
			if got := slices.Collect(m.Keys()); !slices.Equal(got, before) {
				t.Fatalf("N=%d: keys changed by Balance: %v", N, got)
			}
			for k, v := range m.All() {
				if v != slice[k] {
					t.Fatalf("N=%d: m[%d] = %d after Balance, want %d", N, k, v, slice[k])
				}
			}
			if got, want := m.Height(), bits.Len(uint(N)); got != want {
				t.Errorf("N=%d: Height() = %d after Balance, want %d\nM: %v", N, got, want, dump(m))
			}
			// Powers of two can never meet the ⌈log2(n)⌉ bound.
			if powerOfTwo := N&(N-1) == 0 && N > 0; m.IsBalanced() == powerOfTwo {
				t.Errorf("N=%d: IsBalanced() = %t after Balance", N, m.IsBalanced())
			}
		}
	})
}

func TestBalanceSorted(t *testing.T) {
	test(t, func(t *testing.T, newMap func() Interface[int, int]) {
		m := newMap()
		for i := range 1000 {
			m.Insert(i, i)
		}
		if m.Height() != 1000 {
			t.Fatalf("Height() = %d before Balance", m.Height())
		}
		m.Balance()
		if m.Height() != 10 || !m.IsBalanced() {
			t.Errorf("Height() = %d, IsBalanced() = %t after Balance", m.Height(), m.IsBalanced())
		}
		// Balancing twice gives the same tree.
		first := dump(m)
		m.Balance()
		if got := dump(m); got != first {
			t.Errorf("second Balance changed the tree")
		}
	})
}

// The level order of inserts for n = 9 is fixed.
func TestBalanceShape(t *testing.T) {
	var m Map[int, int]
	for _, k := range []int{12, 4, 15, 1, 22, 8, 9, 10, 11} {
		m.Set(k, k)
	}
	m.Balance()
	want := "(10 (8 (4 (1 nil nil) nil) (9 nil nil)) (12 (11 nil nil) (15 nil (22 nil nil))))"
	if got := dump(&m); got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestBalanceThenMutate(t *testing.T) {
	test(t, func(t *testing.T, newMap func() Interface[int, int]) {
		m := newMap()
		_, slice := permute(m, 50)
		m.Balance()
		for _, x := range rand.Perm(len(slice)) {
			if slice[x] != 0 {
				if _, _, err := m.Erase(x); err != nil {
					t.Fatal(err)
				}
			}
			m.Set(1000+x, x)
			checkMap(t, m)
		}
		if m.Len() != len(slice) {
			t.Errorf("Len() = %d, want %d", m.Len(), len(slice))
		}
	})
}

func TestIsBalancedEmpty(t *testing.T) {
	var m Map[string, int]
	if !m.IsBalanced() {
		t.Error("empty map is not balanced")
	}
	m.Balance()
	if m.Len() != 0 || m.Height() != 0 {
		t.Errorf("Balance of empty map: Len() = %d, Height() = %d", m.Len(), m.Height())
	}
	m.Set("a", 1)
	if m.IsBalanced() {
		t.Error("a single entry has height 1 > ⌈log2(1)⌉")
	}
}
