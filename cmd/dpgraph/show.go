package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/viant/dpgraph/calculation"
	"github.com/viant/dpgraph/profile"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the data points with their resolved values",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	_, p, err := open(cmd.Context())
	if err != nil {
		return err
	}
	rows, err := describe(p)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if p.Description != "" {
		fmt.Fprintf(out, "%v: %v\n", p.Name, p.Description)
	} else {
		fmt.Fprintln(out, p.Name)
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "ID", "KIND", "VALUE", "EXPORT", "CALCULATION", "SOURCES").
		Rows(rows...)
	fmt.Fprintln(out, t.Render())
	return nil
}

// describe renders one row per data point, in display order
func describe(p *profile.Profile) ([][]string, error) {
	var rows = make([][]string, 0, p.Len())
	for i, point := range p.Points() {
		value, err := p.Resolve(i)
		if err != nil {
			return nil, err
		}
		sources, err := p.SourceIndices(i)
		if err != nil {
			return nil, err
		}
		var refs = make([]string, 0, len(sources))
		for _, source := range sources {
			refs = append(refs, strconv.Itoa(source))
		}
		name := calculation.None
		if point.IsCalculated() {
			name = point.Calculation
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			point.ID,
			string(point.Kind),
			value.String(),
			strconv.FormatBool(point.Export),
			name,
			strings.Join(refs, ","),
		})
	}
	return rows, nil
}
