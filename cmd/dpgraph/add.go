package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/dpgraph/profile"
)

var addID string

var addCmd = &cobra.Command{
	Use:   "add KIND",
	Short: "Append a stored data point of kind Number, Flag or Text",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addID, "id", "", "Point ID, corrected into a unique identifier")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	kind, err := profile.ParseKind(args[0])
	if err != nil {
		return err
	}
	return edit(cmd, func(p *profile.Profile) error {
		index := p.AddPoint(kind)
		point, err := p.Point(index)
		if err != nil {
			return err
		}
		id := point.ID
		if addID != "" {
			if id, err = p.RenamePoint(index, addID); err != nil {
				return err
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d %v\n", index, id)
		return nil
	})
}
