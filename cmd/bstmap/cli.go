// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jba/bstmap"
	"github.com/jba/bstmap/internal/bench"
	"github.com/jba/bstmap/internal/logutil"
)

// newConfig returns a viper instance that resolves each flag of cmd,
// falling back to BSTMAP_<FLAG> environment variables.
func newConfig(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("BSTMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	return v, nil
}

func logger(cmd *cobra.Command, v *viper.Viper) *slog.Logger {
	return logutil.NewLogger(cmd.ErrOrStderr(), logutil.Level(v.GetBool("debug"), v.GetBool("trace")))
}

// NewCLI returns the root bstmap command with its bench and draw
// subcommands.
func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bstmap",
		Short:         "Explore and benchmark binary search tree maps",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	rootCmd.PersistentFlags().Bool("debug", false, "Log benchmark phases")
	rootCmd.PersistentFlags().Bool("trace", false, "Log every measurement")

	rootCmd.AddCommand(newBenchCmd(), newDrawCmd())
	return rootCmd
}

func newBenchCmd() *cobra.Command {
	def := bench.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time random lookups before and after balancing",
		Args:  cobra.NoArgs,
		RunE:  benchHandler,
	}
	cmd.Flags().StringSlice("size", []string{strconv.Itoa(def.Sizes[0])}, "Number of random inserts per run (repeatable)")
	cmd.Flags().Int("lookups", def.Lookups, "Number of timed lookups per phase")
	cmd.Flags().Int("key-range", def.KeyRange, "Keys are drawn from [-key-range, key-range]")
	cmd.Flags().Int("seed", int(def.Seed), "Random seed")
	cmd.Flags().Int("parallel", def.Parallel, "Number of runs executed concurrently")
	return cmd
}

func benchHandler(cmd *cobra.Command, _ []string) error {
	v, err := newConfig(cmd)
	if err != nil {
		return err
	}
	sizes, err := parseInts(v.GetStringSlice("size"))
	if err != nil {
		return fmt.Errorf("--size: %w", err)
	}
	cfg := bench.Config{
		Sizes:    sizes,
		Lookups:  v.GetInt("lookups"),
		KeyRange: v.GetInt("key-range"),
		Seed:     uint64(v.GetInt("seed")),
		Parallel: v.GetInt("parallel"),
	}

	results, err := bench.Run(cmd.Context(), cfg, logger(cmd, v))
	if err != nil {
		return err
	}
	bench.WriteTable(cmd.OutOrStdout(), results)
	return nil
}

func newDrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draw KEY...",
		Short: "Insert integer keys in order and draw the resulting tree",
		Args:  cobra.MinimumNArgs(1),
		RunE:  drawHandler,
	}
	cmd.Flags().Bool("balance", false, "Also draw the tree after balancing")
	return cmd
}

func drawHandler(cmd *cobra.Command, args []string) error {
	v, err := newConfig(cmd)
	if err != nil {
		return err
	}
	keys, err := parseInts(args)
	if err != nil {
		return err
	}
	log := logger(cmd, v)

	var m bstmap.Map[int, int]
	for i, k := range keys {
		m.Insert(k, i)
	}
	log.Debug("inserted", "keys", len(keys), "len", m.Len())

	w := cmd.OutOrStdout()
	show := func() error {
		if err := m.Draw(w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "size=%d height=%d balanced=%t\n", m.Len(), m.Height(), m.IsBalanced())
		return err
	}
	if err := show(); err != nil {
		return err
	}
	if v.GetBool("balance") {
		m.Balance()
		fmt.Fprintln(w)
		if err := show(); err != nil {
			return err
		}
	}
	return m.Check()
}

func parseInts(ss []string) ([]int, error) {
	var ns []int
	for _, s := range ss {
		n, err := strconv.ParseInt(strings.TrimSpace(s), 0, 0)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", s)
		}
		ns = append(ns, int(n))
	}
	return ns, nil
}
