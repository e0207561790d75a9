package main

import (
	"github.com/spf13/cobra"
	"github.com/viant/dpgraph/profile"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete POINT",
	Short: "Delete a data point",
	Long: `Delete a data point. A point used as a source is kept unless --force is given,
in which case its dependents lose the reference and are refilled with default sources.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteForce, "force", false, "Delete even if other points use it as a source")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	return edit(cmd, func(p *profile.Profile) error {
		index, err := position(p, args[0])
		if err != nil {
			return err
		}
		if deleteForce {
			return p.DetachPoint(index)
		}
		return p.DeletePoint(index)
	})
}
