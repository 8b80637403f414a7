// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bench measures lookups in a bstmap.Map before and after
// it is balanced.
//
// Each run inserts random keys drawn from [-KeyRange, KeyRange],
// times a series of random lookups, balances the map and times the
// same lookups again.
package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/sync/errgroup"

	"github.com/jba/bstmap"
	"github.com/jba/bstmap/internal/logutil"
)

// Config describes a set of benchmark runs.
type Config struct {
	// Sizes lists the number of inserts for each run.
	Sizes []int
	// Lookups is the number of lookups timed in each phase.
	Lookups int
	// KeyRange bounds the keys: each is drawn from [-KeyRange, KeyRange].
	KeyRange int
	// Seed makes runs reproducible.
	Seed uint64
	// Parallel is the number of runs allowed at once.
	Parallel int
}

// DefaultConfig returns the standard benchmark configuration:
// 100000 inserts and 1000000 lookups over keys in [-10000, 10000].
func DefaultConfig() Config {
	return Config{
		Sizes:    []int{100_000},
		Lookups:  1_000_000,
		KeyRange: 10_000,
		Seed:     42,
		Parallel: 1,
	}
}

func (c Config) validate() error {
	var errs []error
	if len(c.Sizes) == 0 {
		errs = append(errs, errors.New("no sizes"))
	}
	for _, n := range c.Sizes {
		if n <= 0 {
			errs = append(errs, fmt.Errorf("size %d is not positive", n))
		}
	}
	if c.Lookups < 0 {
		errs = append(errs, fmt.Errorf("lookups %d is negative", c.Lookups))
	}
	if c.KeyRange <= 0 {
		errs = append(errs, fmt.Errorf("key range %d is not positive", c.KeyRange))
	}
	if c.Parallel <= 0 {
		errs = append(errs, fmt.Errorf("parallel %d is not positive", c.Parallel))
	}
	return errors.Join(errs...)
}

// Phase holds the measurements taken on one shape of the tree.
type Phase struct {
	Height   int
	Balanced bool
	Hits     int
	Elapsed  time.Duration
}

// Result is the outcome of one run.
type Result struct {
	Inserts int
	Len     int
	Before  Phase
	After   Phase
	Balance time.Duration
}

// Run performs one run per configured size and returns the results
// in the order of cfg.Sizes. Each run owns its map.
func Run(ctx context.Context, cfg Config, logger *slog.Logger) ([]Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("bench: %w", err)
	}
	results := make([]Result, len(cfg.Sizes))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallel)
	for i, size := range cfg.Sizes {
		g.Go(func() error {
			r := rand.New(rand.NewPCG(cfg.Seed, uint64(i)))
			res, err := run(ctx, r, size, cfg, logger.With("run", i, "size", size))
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func run(ctx context.Context, r *rand.Rand, size int, cfg Config, logger *slog.Logger) (Result, error) {
	randomKey := func() int { return r.IntN(2*cfg.KeyRange+1) - cfg.KeyRange }

	var m bstmap.Map[int, int]
	start := time.Now()
	for range size {
		m.Insert(randomKey(), 1234)
	}
	logger.Debug("inserted", "len", m.Len(), "elapsed", time.Since(start))

	// Both phases look up the same keys.
	lookups := make([]int, cfg.Lookups)
	for i := range lookups {
		lookups[i] = randomKey()
	}

	res := Result{Inserts: size, Len: m.Len()}
	var err error
	if res.Before, err = measure(ctx, &m, lookups, logger); err != nil {
		return Result{}, err
	}

	start = time.Now()
	m.Balance()
	res.Balance = time.Since(start)
	logger.Debug("balanced", "elapsed", res.Balance)

	if res.After, err = measure(ctx, &m, lookups, logger); err != nil {
		return Result{}, err
	}
	if m.Len() != res.Len {
		return Result{}, fmt.Errorf("bench: balance changed the size from %d to %d", res.Len, m.Len())
	}
	logger.Info("run complete",
		"len", res.Len,
		"height.before", res.Before.Height,
		"height.after", res.After.Height,
		"lookup.before", res.Before.Elapsed,
		"lookup.after", res.After.Elapsed)
	return res, nil
}

// measure times Find for each key in lookups.
func measure(ctx context.Context, m *bstmap.Map[int, int], lookups []int, logger *slog.Logger) (Phase, error) {
	p := Phase{Height: m.Height(), Balanced: m.IsBalanced()}
	start := time.Now()
	for i, k := range lookups {
		if i%(1<<16) == 0 {
			if err := ctx.Err(); err != nil {
				return Phase{}, err
			}
		}
		if m.Find(k) != m.End() {
			p.Hits++
		}
	}
	p.Elapsed = time.Since(start)
	logger.Log(ctx, logutil.LevelTrace, "measured", "height", p.Height, "hits", p.Hits, "elapsed", p.Elapsed)
	return p, nil
}

// WriteTable writes results to w as a table.
func WriteTable(w io.Writer, results []Result) {
	var data [][]string
	for _, res := range results {
		data = append(data, []string{
			humanize.Comma(int64(res.Inserts)),
			humanize.Comma(int64(res.Len)),
			phaseHeight(res.Before),
			phaseHeight(res.After),
			res.Before.Elapsed.Round(time.Microsecond).String(),
			res.After.Elapsed.Round(time.Microsecond).String(),
			res.Balance.Round(time.Microsecond).String(),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"INSERTS", "SIZE", "HEIGHT BEFORE", "HEIGHT AFTER", "LOOKUP BEFORE", "LOOKUP AFTER", "BALANCE"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}

func phaseHeight(p Phase) string {
	s := strconv.Itoa(p.Height)
	if p.Balanced {
		s += " (balanced)"
	}
	return s
}
