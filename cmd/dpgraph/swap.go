package main

import (
	"github.com/spf13/cobra"
	"github.com/viant/dpgraph/profile"
)

var swapCmd = &cobra.Command{
	Use:   "swap POINT POINT",
	Short: "Exchange the positions of two data points",
	Args:  cobra.ExactArgs(2),
	RunE:  runSwap,
}

func init() {
	rootCmd.AddCommand(swapCmd)
}

func runSwap(cmd *cobra.Command, args []string) error {
	return edit(cmd, func(p *profile.Profile) error {
		indices, err := positions(p, args...)
		if err != nil {
			return err
		}
		return p.SwapPoints(indices[0], indices[1])
	})
}
