// Root command and global flags for the lawdesk CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/lexhall/lawdesk/internal/paths"
	"github.com/lexhall/lawdesk/pkg/types"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

// Values loaded from config.yaml by PersistentPreRunE, consumed by every
// subcommand through openAdapter and sessionGate.
var (
	configBackend string
	configDataDir string
	configAuth    types.AuthConfig
)

var rootCmd = &cobra.Command{
	Use:     "lawdesk",
	Short:   "Lawdesk is a local-first practice records manager for law firms",
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

		configBackend = cfg.GetString(cfgKeyBackend)
		configDataDir = cfg.GetString(cfgKeyDataDir)
		configAuth = types.AuthConfig{
			URL:      cfg.GetString(cfgKeyAuthURL),
			APIKey:   cfg.GetString(cfgKeyAuthAPIKey),
			Required: cfg.GetBool(cfgKeyAuthRequired),
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.lawdesk-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(casesCmd)
	rootCmd.AddCommand(clientsCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(feesCmd)
	rootCmd.AddCommand(timeCmd)
	rootCmd.AddCommand(docsCmd)
}

// resolveDataDir follows the precedence chain:
// --data-dir flag > config.yaml data_dir > LAWDESK_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir follows the precedence chain:
// --config-dir flag > LAWDESK_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
