// Root command for the carbnb CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/carbnb/carbnb/internal/paths"
)

// Exit codes: user-correctable failures exit 1, system failures exit 2.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagBackend   string
)

// Values loaded from config.yaml by PersistentPreRunE.
var (
	configDataDir string
	configBackend string
)

var rootCmd = &cobra.Command{
	Use:     "carbnb",
	Short:   "Carbnb is a rental-fleet record manager",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configBackend = cfg.GetString(cfgKeyBackend)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.carbnb-db)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend: csv or sqlite (default: config.yaml value)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(clientCmd)
	rootCmd.AddCommand(carCmd)
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(earningsCmd)
}

// resolveDataDir follows the precedence flag > config.yaml > env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir follows the precedence flag > env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveBackend follows the precedence flag > config.yaml > default.
func resolveBackend() string {
	if flagBackend != "" {
		return flagBackend
	}
	if configBackend != "" {
		return configBackend
	}
	return defaultBackend
}
