package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vadmin/internal/config"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [name]",
		Short: "Create a starter vadmin.json in the current directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(config.ConfigFileName); err == nil {
				return fmt.Errorf("%s already exists", config.ConfigFileName)
			}

			cfg := config.New()
			if len(args) == 1 {
				cfg.Name = args[0]
			}
			if err := cfg.SaveTo(config.ConfigFileName); err != nil {
				return err
			}

			success("Created %s", config.ConfigFileName)
			info("Add your collections and globals, then run 'vadmin serve'")
			return nil
		},
	}
	return cmd
}
