package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newCheckCmd())
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run a seeded workload and verify heap consistency",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := runWorkload(ops, seed, heapSize, verbose)
			if err != nil {
				return err
			}
			if err := a.Check(); err != nil {
				return fmt.Errorf("heap inconsistent: %w", err)
			}
			fmt.Println("ok")
			return nil
		},
	}
}
