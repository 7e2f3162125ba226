package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newBenchCmd())
}

func newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Run a seeded workload and report allocator statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := runWorkload(ops, seed, heapSize, verbose)
			if err != nil {
				return err
			}
			s := a.Stats()
			fmt.Printf("ops=%d seed=%d heap-size=%d\n", ops, seed, heapSize)
			fmt.Printf("malloc=%d free=%d grow=%d(%d bytes) splits=%d coalesce-fwd=%d coalesce-bwd=%d bytes-allocated=%d bytes-freed=%d\n",
				s.AllocCalls, s.FreeCalls, s.GrowCalls, s.GrowBytes, s.SplitCount,
				s.CoalesceForward, s.CoalesceBackward, s.BytesAllocated, s.BytesFreed)
			return nil
		},
	}
}
