package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tshepard/cogito/cdcl"
)

func newSolveCmd() *cobra.Command {
	opts := cdcl.DefaultOptions
	var cpuProfile, memProfile string

	cmd := &cobra.Command{
		Use:   "solve <instance.cnf>",
		Short: "solve a single DIMACS CNF instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cpuProfile != "" {
				f, err := os.Create(cpuProfile)
				if err != nil {
					return err
				}
				pprof.StartCPUProfile(f)
				defer pprof.StopCPUProfile()
			}

			result, err := cdcl.SolveDIMACS(args[0], opts)
			if err != nil {
				return fmt.Errorf("could not solve %q: %w", args[0], err)
			}

			printResult(result)

			if memProfile != "" {
				f, err := os.Create(memProfile)
				if err != nil {
					return err
				}
				defer f.Close()
				pprof.WriteHeapProfile(f)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.HeuristicName, "heuristic", opts.HeuristicName, "decision heuristic: baseline, random or vsids")
	cmd.Flags().Float64Var(&opts.TimeoutSec, "timeout", opts.TimeoutSec, "wall-clock budget in seconds, <=0 disables it")
	cmd.Flags().Int64Var(&opts.Seed, "seed", opts.Seed, "PRNG seed")
	cmd.Flags().Float64Var(&opts.VSIDSBump, "vsids-bump", opts.VSIDSBump, "VSIDS per-literal activity bump")
	cmd.Flags().Float64Var(&opts.VSIDSDecayFactor, "vsids-decay-factor", opts.VSIDSDecayFactor, "VSIDS decay multiplier")
	cmd.Flags().IntVar(&opts.VSIDSDecayPeriod, "vsids-decay-period", opts.VSIDSDecayPeriod, "conflicts between VSIDS decay applications, 0 disables it")
	cmd.Flags().BoolVar(&opts.Debug, "debug", opts.Debug, "emit diagnostics to stderr")
	cmd.Flags().StringVar(&cpuProfile, "cpuprofile", "", "write a pprof CPU profile to this file")
	cmd.Flags().StringVar(&memProfile, "memprofile", "", "write a pprof heap profile to this file")

	return cmd
}

func printResult(r cdcl.Result) {
	fmt.Printf("c status:          %s\n", r.Status)
	fmt.Printf("c time (sec):       %f\n", r.RuntimeSec)
	fmt.Printf("c decisions:        %d\n", r.Stats.Decisions)
	fmt.Printf("c conflicts:        %d\n", r.Stats.Conflicts)
	fmt.Printf("c learned clauses:  %d\n", r.Stats.LearnedClauses)
	fmt.Printf("c propagations:     %d\n", r.Stats.Propagations)

	if r.Status != cdcl.StatusSAT {
		return
	}

	names := make([]string, 0, len(r.Assignment))
	for name := range r.Assignment {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if r.Assignment[name] {
			fmt.Printf("v %s\n", name)
		} else {
			fmt.Printf("v -%s\n", name)
		}
	}
}
