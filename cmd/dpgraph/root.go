package main

import (
	"github.com/spf13/cobra"
	"github.com/viant/dpgraph/config"
	"github.com/viant/dpgraph/logger"
	"github.com/viant/dpgraph/logger/console"
)

var (
	// profileFlag is the CLI --profile flag value
	profileFlag string
	debugFlag   bool

	settings *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "dpgraph",
	Short: "Edit data point profiles",
	Long: `dpgraph edits a profile: an ordered list of named data points holding a number,
a flag or a text. A point either stores its value or derives it with a calculation
over other points, which must never form a dependency loop.

Points are addressed by position or by ID. The profile location comes from --profile,
then DPGRAPH_PROFILE, then profile.yaml; any afs URL (file, s3, gs, mem) is accepted.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&profileFlag, "profile", "",
		"Profile document URL, .json selects JSON encoding (default: $DPGRAPH_PROFILE or profile.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
}

// setup resolves the settings. Precedence: CLI flag > environment > default
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if profileFlag != "" {
		cfg.Profile = profileFlag
	}
	if debugFlag {
		cfg.Debug = true
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	logger.Init(console.New(console.Params{Debug: cfg.Debug, Output: cmd.ErrOrStderr()}))
	settings = cfg
	return nil
}
