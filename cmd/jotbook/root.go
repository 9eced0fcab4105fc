// Root command for the jotbook CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/jotbook/internal/paths"
	"github.com/mesh-intelligence/jotbook/pkg/jotbook"
)

// Exit codes: 0 success, 1 user error, 2 system error.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagOwner     string
	flagJSON      bool
)

// Values loaded from config.yaml by PersistentPreRunE so all
// subcommands can use them.
var (
	configDataDir string
	configOwner   string
)

var rootCmd = &cobra.Command{
	Use:     "jotbook",
	Short:   "Jotbook is a local per-user note keeper",
	Version: jotbook.Version,
	Long: `Jotbook keeps short notes (title, description, emoji marker, optional
image) per owner in a local SQLite database. Every operation is scoped
to the owner resolved from --owner, config.yaml, or JOTBOOK_OWNER.`,
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
		configOwner = cfg.GetString(cfgKeyOwner)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.jotbook-db)")
	rootCmd.PersistentFlags().StringVar(&flagOwner, "owner", "", "owner identifier (default: config.yaml owner or $JOTBOOK_OWNER)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(watchCmd)
}

// resolveDataDir returns the data directory with precedence:
// --data-dir flag > config.yaml data_dir > JOTBOOK_DATA_DIR env >
// default $(CWD)/.jotbook-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory with precedence:
// --config-dir flag > JOTBOOK_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
