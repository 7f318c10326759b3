package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cogito",
		Short: "cogito is a CDCL SAT engine",
	}
	root.AddCommand(newSolveCmd())
	root.AddCommand(newBenchCmd())
	return root
}
