package main

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Run a seeded workload and print the final heap layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := runWorkload(ops, seed, heapSize, verbose)
			if err != nil {
				return err
			}
			if err := a.DumpHeap(os.Stdout); err != nil {
				return err
			}
			return a.DumpFreeLists(os.Stdout)
		},
	}
}
