// Init command for the carbnb CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize carbnb storage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}
		if err := ensureConfigDir(configDir); err != nil {
			return fmt.Errorf("init: %w", err)
		}
		if err := ensureDefaultConfigFile(configDir); err != nil {
			return fmt.Errorf("init: %w", err)
		}

		// Attach creates the data directory, the collection files or the
		// database, and the counter.
		_, detach, err := attachService()
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}
		defer detach()

		dataDir, err := resolveDataDir()
		if err != nil {
			return fmt.Errorf("init: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Carbnb initialized successfully")
		fmt.Fprintln(cmd.OutOrStdout(), "  backend:", resolveBackend())
		fmt.Fprintln(cmd.OutOrStdout(), "  config: ", configDir)
		fmt.Fprintln(cmd.OutOrStdout(), "  data:   ", dataDir)
		return nil
	},
}
