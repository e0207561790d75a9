package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/dpgraph/profile"
	"github.com/viant/dpgraph/store"
)

var (
	initDescription string
	initForce       bool
)

var initCmd = &cobra.Command{
	Use:   "init NAME",
	Short: "Create an empty profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVar(&initDescription, "description", "", "Profile description")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing profile")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s := store.New()
	exists, err := s.Exists(ctx, settings.Profile)
	if err != nil {
		return err
	}
	if exists && !initForce {
		return fmt.Errorf("profile %v already exists, use --force to overwrite", settings.Profile)
	}
	p := profile.New(args[0], profile.WithDescription(initDescription))
	if _, err = s.Save(ctx, settings.Profile, p); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created %v at %v\n", p.Name, settings.Profile)
	return nil
}
