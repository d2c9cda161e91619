// Root command for the icebox CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/frostkeep/icebox/internal/paths"
	"github.com/frostkeep/icebox/pkg/icebox"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

var rootCmd = &cobra.Command{
	Use:     "icebox",
	Short:   "Icebox is a household freezer inventory manager",
	Version: icebox.Version,
	Long: `Icebox tracks what is in your freezer: food items grouped by category,
recipes matched against the inventory, and a shopping list that restocks
the freezer when you get back from the store.`,
	SilenceUsage: true,
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
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(itemCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(recipeCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(widgetsCmd)
}

// resolveDataDir returns the data directory with precedence
// flag > config.yaml data_dir > ICEBOX_DATA_DIR env > platform default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory with precedence
// flag > ICEBOX_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
