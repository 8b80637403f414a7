// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bstmap benchmarks and draws binary search tree maps.
//
// Usage:
//
//	bstmap bench [--size N]... [--lookups N] [--key-range R] [--seed S] [--parallel P]
//	bstmap draw [--balance] KEY...
//
// Every flag can also be set with an environment variable named
// BSTMAP_ followed by the flag name in upper case, with dashes
// replaced by underscores; for example BSTMAP_KEY_RANGE.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := NewCLI().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
