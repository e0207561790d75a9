package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/dpgraph/calculation"
	"github.com/viant/dpgraph/profile"
)

var calcCmd = &cobra.Command{
	Use:   "calc POINT NAME",
	Short: "Attach a calculation to a data point, None removes it",
	Long: `Attach a calculation to a data point. Missing sources are defaulted to the first
eligible points, extra sources are dropped. None turns the point back into a stored value.`,
	Args: cobra.ExactArgs(2),
	RunE: runCalc,
}

var calculationsCmd = &cobra.Command{
	Use:   "calculations",
	Short: "List available calculations",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, name := range calculation.Names() {
			strategy, _ := calculation.Lookup(name)
			limits := strategy.Range()
			fmt.Fprintf(out, "%-12v sources %d..%d  %v\n", name, limits.Min, limits.Max, strategy.Description())
		}
	},
}

func init() {
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(calculationsCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	return edit(cmd, func(p *profile.Profile) error {
		index, err := position(p, args[0])
		if err != nil {
			return err
		}
		return p.SetCalculation(index, args[1])
	})
}
