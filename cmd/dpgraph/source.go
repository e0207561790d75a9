package main

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/viant/dpgraph/profile"
)

var sourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Edit the sources of a calculated data point",
}

var sourceAddCmd = &cobra.Command{
	Use:   "add POINT SOURCE",
	Short: "Append a source",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return edit(cmd, func(p *profile.Profile) error {
			indices, err := positions(p, args...)
			if err != nil {
				return err
			}
			return p.AddSource(indices[0], indices[1])
		})
	},
}

var sourceSetCmd = &cobra.Command{
	Use:   "set POINT SLOT SOURCE",
	Short: "Replace the source at SLOT",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		return edit(cmd, func(p *profile.Profile) error {
			indices, err := positions(p, args[0], args[2])
			if err != nil {
				return err
			}
			return p.SetSource(indices[0], slot, indices[1])
		})
	},
}

var sourceRemoveCmd = &cobra.Command{
	Use:   "remove POINT SLOT",
	Short: "Remove the source at SLOT",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		return edit(cmd, func(p *profile.Profile) error {
			index, err := position(p, args[0])
			if err != nil {
				return err
			}
			return p.RemoveSource(index, slot)
		})
	},
}

func init() {
	sourceCmd.AddCommand(sourceAddCmd, sourceSetCmd, sourceRemoveCmd)
	rootCmd.AddCommand(sourceCmd)
}
