package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/viant/dpgraph/profile"
)

var (
	setAdd    bool
	setToggle bool
)

var setCmd = &cobra.Command{
	Use:   "set POINT [VALUE]",
	Short: "Set the stored value of a data point for its kind",
	Long: `Set the stored value of a data point. VALUE is parsed for the point kind.

Examples:
  dpgraph set Score 12.5
  dpgraph set Score 1 --add
  dpgraph set Done true
  dpgraph set Done --toggle
  dpgraph set Note "well done"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSet,
}

var kindCmd = &cobra.Command{
	Use:   "kind POINT KIND",
	Short: "Change the kind of a data point",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := profile.ParseKind(args[1])
		if err != nil {
			return err
		}
		return edit(cmd, func(p *profile.Profile) error {
			index, err := position(p, args[0])
			if err != nil {
				return err
			}
			return p.SetKind(index, kind)
		})
	},
}

var markCmd = &cobra.Command{
	Use:   "mark POINT true|false",
	Short: "Include or exclude a data point from the export",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		export, err := strconv.ParseBool(args[1])
		if err != nil {
			return err
		}
		return edit(cmd, func(p *profile.Profile) error {
			index, err := position(p, args[0])
			if err != nil {
				return err
			}
			return p.SetExport(index, export)
		})
	},
}

func init() {
	setCmd.Flags().BoolVar(&setAdd, "add", false, "Increment a number by VALUE")
	setCmd.Flags().BoolVar(&setToggle, "toggle", false, "Invert a flag")
	rootCmd.AddCommand(setCmd, kindCmd, markCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	return edit(cmd, func(p *profile.Profile) error {
		index, err := position(p, args[0])
		if err != nil {
			return err
		}
		point, err := p.Point(index)
		if err != nil {
			return err
		}
		return assign(p, index, point.Kind, args[1:])
	})
}

// assign applies the raw value for kind
func assign(p *profile.Profile, index int, kind profile.Kind, values []string) error {
	if setToggle {
		if kind != profile.Flag {
			return fmt.Errorf("--toggle applies to %v points, got %v", profile.Flag, kind)
		}
		return p.ToggleFlag(index)
	}
	if len(values) == 0 {
		return errors.New("missing value")
	}
	value := values[0]
	switch kind {
	case profile.Flag:
		flag, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		return p.SetFlag(index, flag)
	case profile.Text:
		return p.SetText(index, value)
	}
	number, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return err
	}
	if setAdd {
		return p.AddNumber(index, number)
	}
	return p.SetNumber(index, number)
}
