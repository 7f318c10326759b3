package main

import (
	"encoding/csv"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tshepard/cogito/cdcl"
)

func newBenchCmd() *cobra.Command {
	opts := cdcl.DefaultOptions
	var heuristics string
	var out string

	cmd := &cobra.Command{
		Use:   "bench <dir>",
		Short: "solve every .cnf instance under dir and write a CSV summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := listInstances(args[0])
			if err != nil {
				return err
			}

			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			return runBench(w, paths, strings.Split(heuristics, ","), opts)
		},
	}

	cmd.Flags().StringVar(&heuristics, "heuristics", opts.HeuristicName, "comma-separated list of heuristics to run against every instance")
	cmd.Flags().Float64Var(&opts.TimeoutSec, "timeout", opts.TimeoutSec, "per-instance wall-clock budget in seconds, <=0 disables it")
	cmd.Flags().Int64Var(&opts.Seed, "seed", opts.Seed, "PRNG seed")
	cmd.Flags().StringVar(&out, "out", "", "CSV output path, defaults to stdout")

	return cmd
}

// listInstances mirrors the teacher's test-case discovery in yass_test.go,
// generalized to walk an arbitrary directory for .cnf files.
func listInstances(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".cnf") {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}

func runBench(w *os.File, paths, names []string, opts cdcl.Options) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"file", "path", "heuristic", "status", "runtime_sec", "decisions", "conflicts", "learned_clauses", "propagations"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, path := range paths {
		for _, name := range names {
			name = strings.TrimSpace(name)
			instanceOpts := opts
			instanceOpts.HeuristicName = name

			result, err := cdcl.SolveDIMACS(path, instanceOpts)
			if err != nil {
				fmt.Fprintf(os.Stderr, "cogito: bench: %s (%s): %v\n", path, name, err)
				continue
			}

			row := []string{
				filepath.Base(path),
				path,
				name,
				result.Status.String(),
				strconv.FormatFloat(result.RuntimeSec, 'f', 6, 64),
				strconv.Itoa(result.Stats.Decisions),
				strconv.Itoa(result.Stats.Conflicts),
				strconv.Itoa(result.Stats.LearnedClauses),
				strconv.Itoa(result.Stats.Propagations),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}
