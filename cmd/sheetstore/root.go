// Root command for the sheetstore CLI.
package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kidorama/sheetstore/internal/logging"
	"github.com/kidorama/sheetstore/internal/paths"
	"github.com/kidorama/sheetstore/pkg/datastore"
	"github.com/kidorama/sheetstore/pkg/types"
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
	flagBackend   string
	flagJSON      bool
)

// store is the backend handle every subcommand operates on. Set by
// PersistentPreRunE.
var store types.Store

// diagnostics records what the selector actually constructed, so commands
// can warn when they are talking to the volatile fallback.
var diagnostics datastore.Diagnostics

var rootCmd = &cobra.Command{
	Use:     "sheetstore",
	Short:   "Sheetstore is a document store over human-edited spreadsheets",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		v, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		logging.Setup(v.GetString(cfgKeyLogLevel), v.GetString(cfgKeyLogFormat))

		cfg := storeConfig(v)
		if flagBackend != "" {
			cfg.Backend = flagBackend
		}

		store, diagnostics = datastore.New(context.Background(), cfg, nil)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "backend override (memory, sheets, airtable)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(i18nCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence flag > SHEETSTORE_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
