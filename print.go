// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bstmap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// String returns the entries of m in key order, formatted as
// {'k1': 'v1', 'k2': 'v2'}.
func (m *Map[K, V]) String() string { return format(m) }

// String returns the entries of m in key order, formatted as
// {'k1': 'v1', 'k2': 'v2'}.
func (m *MapFunc[K, V]) String() string { return format(m) }

func format[K, V any](m omap[K, V]) string {
	var b strings.Builder
	b.WriteByte('{')
	sep := ""
	for k, v := range all(m) {
		fmt.Fprintf(&b, "%s'%v': '%v'", sep, k, v)
		sep = ", "
	}
	b.WriteByte('}')
	return b.String()
}

// WriteTo writes m.String() followed by a newline to w.
func (m *Map[K, V]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, format(m)+"\n")
	return int64(n), err
}

// WriteTo writes m.String() followed by a newline to w.
func (m *MapFunc[K, V]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, format(m)+"\n")
	return int64(n), err
}

// Print writes m.String() followed by a newline to standard output.
// It returns the error from the write, if any.
func (m *Map[K, V]) Print() error {
	_, err := m.WriteTo(os.Stdout)
	return err
}

// Print writes m.String() followed by a newline to standard output.
// It returns the error from the write, if any.
func (m *MapFunc[K, V]) Print() error {
	_, err := m.WriteTo(os.Stdout)
	return err
}

// Draw writes a picture of the tree to w, root on the left and
// larger keys above smaller ones. Each line shows a key and,
// after ^, the key of its parent.
func (m *Map[K, V]) Draw(w io.Writer) error { return draw(w, m._root) }

// Draw writes a picture of the tree to w, root on the left and
// larger keys above smaller ones. Each line shows a key and,
// after ^, the key of its parent.
func (m *MapFunc[K, V]) Draw(w io.Writer) error { return draw(w, m._root) }

// to control the draw routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

func draw[K, V any](w io.Writer, x *node[K, V]) error {
	bw := bufio.NewWriter(w)
	drawNode(bw, x, "", rootBranch)
	return bw.Flush()
}

func drawNode[K, V any](w *bufio.Writer, x *node[K, V], prefix string, br branch) {
	if x == nil {
		return
	}
	if x.right != nil {
		t := "       "
		if br == leftBranch {
			t = "|      "
		}
		drawNode(w, x.right, prefix+t, rightBranch)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if x.parent != nil {
		fmt.Fprintf(w, "%v ^%v\n", x.key, x.parent.key)
	} else {
		fmt.Fprintf(w, "%v\n", x.key)
	}
	if x.left != nil {
		t := "       "
		if br == rightBranch {
			t = "|      "
		}
		drawNode(w, x.left, prefix+t, leftBranch)
	}
}
