package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/dpgraph/profile"
)

var renameCmd = &cobra.Command{
	Use:   "rename POINT ID",
	Short: "Rename a data point",
	Long: `Rename a data point. Characters other than letters, digits and underscores are
dropped, a leading digit gets an underscore prefix and a taken ID gets underscore
suffixes. The assigned ID is printed.`,
	Args: cobra.ExactArgs(2),
	RunE: runRename,
}

func init() {
	rootCmd.AddCommand(renameCmd)
}

func runRename(cmd *cobra.Command, args []string) error {
	return edit(cmd, func(p *profile.Profile) error {
		index, err := position(p, args[0])
		if err != nil {
			return err
		}
		id, err := p.RenamePoint(index, args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), id)
		return nil
	})
}
