package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	seed     int64
	heapSize int
	ops      int
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "allocbench",
	Short: "Drive and inspect the heaparena allocator",
	Long: `allocbench builds a heaparena allocator over an in-memory region and
runs a deterministic, seeded workload of Malloc, Free, and Realloc calls
against it, for benchmarking and debugging the allocator's behavior.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 1, "workload PRNG seed")
	rootCmd.PersistentFlags().IntVar(&ops, "ops", 1000, "number of allocator operations to run")
	rootCmd.PersistentFlags().IntVar(&heapSize, "heap-size", 1<<20, "maximum heap size in bytes")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each workload operation")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	execute()
}
