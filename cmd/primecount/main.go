// Command primecount runs the odd-only prime sieve micro-benchmark.
//
// The bare invocation reproduces the reference workload:
//
//	$ primecount
//	Primes found: 78498
//
// Subcommands expose the parameterized surface: run (count up to any limit),
// bench (timed ladder), snapshot (write a checksummed sieve blob), and
// verify (validate a snapshot against a fresh run).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/primecount"
	"github.com/arloliu/primecount/bench"
	"github.com/arloliu/primecount/format"
	"github.com/arloliu/primecount/sieve"
	"github.com/arloliu/primecount/snapshot"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "primecount",
		Short:         "Odd-only prime sieve micro-benchmark",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd, primecount.DefaultLimit)
		},
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newBenchCmd())
	root.AddCommand(newSnapshotCmd())
	root.AddCommand(newVerifyCmd())

	return root
}

func runCount(cmd *cobra.Command, limit int64) error {
	count, err := primecount.Count(limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Primes found: %d\n", count)

	return nil
}

func newRunCmd() *cobra.Command {
	var limit int64

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Count primes up to a limit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd, limit)
		},
	}
	cmd.Flags().Int64Var(&limit, "limit", primecount.DefaultLimit, "inclusive upper bound for prime counting")

	return cmd
}

func newBenchCmd() *cobra.Command {
	var (
		limit     int64
		runs      int
		suitePath string
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time sieve runs across a ladder of limits",
		RunE: func(cmd *cobra.Command, args []string) error {
			suite := bench.Suite{Runs: runs, Limits: []int64{limit}}
			switch {
			case suitePath != "":
				loaded, err := bench.LoadSuite(suitePath)
				if err != nil {
					return err
				}
				suite = loaded
			case !cmd.Flags().Changed("limit"):
				suite = bench.DefaultSuite()
				suite.Runs = runs
			}

			results, err := suite.Run()
			if err != nil {
				return err
			}
			bench.WriteResults(cmd.OutOrStdout(), results)

			return nil
		},
	}
	cmd.Flags().Int64Var(&limit, "limit", primecount.DefaultLimit, "single limit to measure")
	cmd.Flags().IntVar(&runs, "runs", 5, "timed runs per limit")
	cmd.Flags().StringVar(&suitePath, "suite", "", "YAML suite file with limits and runs")

	return cmd
}

func newSnapshotCmd() *cobra.Command {
	var (
		limit       int64
		outPath     string
		compression string
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Run the sieve and write a checksummed snapshot blob",
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, err := format.ParseCompression(compression)
			if err != nil {
				return err
			}

			s, err := sieve.Run(limit)
			if err != nil {
				return err
			}

			data, err := snapshot.Encode(s, snapshot.WithCompression(ct))
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("failed to write snapshot: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s: limit=%d count=%d size=%d bytes (%s)\n",
				outPath, s.Limit(), s.Count(), len(data), ct)

			return nil
		},
	}
	cmd.Flags().Int64Var(&limit, "limit", primecount.DefaultLimit, "inclusive upper bound for prime counting")
	cmd.Flags().StringVar(&outPath, "out", "primes.snap", "output file path")
	cmd.Flags().StringVar(&compression, "compression", "none", "bitmap compression: none, zstd, s2, lz4")

	return cmd
}

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <file>",
		Short: "Decode a snapshot and verify it against a fresh sieve run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read snapshot: %w", err)
			}

			snap, err := snapshot.Decode(data)
			if err != nil {
				return err
			}
			if err := snap.Verify(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "OK: limit=%d count=%d\n", snap.Limit(), snap.Count())

			return nil
		},
	}

	return cmd
}
