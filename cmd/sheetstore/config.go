// Config loading for the sheetstore CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/kidorama/sheetstore/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBackend   = "backend"
	cfgKeyLogLevel  = "log_level"
	cfgKeyLogFormat = "log_format"

	cfgKeySheetsServiceAccount = "sheets.service_account"
	cfgKeySheetsPrivateKey     = "sheets.private_key"
	cfgKeySheetsSpreadsheetID  = "sheets.spreadsheet_id"
	cfgKeyAirtableAPIKey       = "airtable.api_key"
	cfgKeyAirtableBaseID       = "airtable.base_id"

	defaultBackend = types.BackendMemory
)

// defaultConfigYAML is the content written to config.yaml on first run.
// Credentials are usually supplied through the environment instead, so the
// sheets and airtable sections ship commented out.
const defaultConfigYAML = `# Sheetstore CLI configuration

# Backend selection: memory, sheets, or airtable.
# Overridable by --backend or the DATA_BACKEND environment variable.
backend: memory

# Logging
log_level: info
log_format: text

# Google Sheets backend (or set GS_SERVICE_ACCOUNT, GS_PRIVATE_KEY, GS_SHEET_ID)
# sheets:
#   service_account:
#   private_key:
#   spreadsheet_id:

# Airtable backend (or set AIRTABLE_API_KEY, AIRTABLE_BASE_ID)
# airtable:
#   api_key:
#   base_id:
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper, with credential environment variables bound over the file values.
// It creates the config directory and a default config.yaml on first run.
// A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetDefault(cfgKeyLogLevel, "info")
	v.SetDefault(cfgKeyLogFormat, "text")
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	// Environment variables take precedence over file values. The names
	// match what the hosting deployments already export.
	bindings := map[string]string{
		cfgKeyBackend:              "DATA_BACKEND",
		cfgKeySheetsServiceAccount: "GS_SERVICE_ACCOUNT",
		cfgKeySheetsPrivateKey:     "GS_PRIVATE_KEY",
		cfgKeySheetsSpreadsheetID:  "GS_SHEET_ID",
		cfgKeyAirtableAPIKey:       "AIRTABLE_API_KEY",
		cfgKeyAirtableBaseID:       "AIRTABLE_BASE_ID",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Missing config.yaml is not an error.
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// storeConfig maps the loaded Viper values onto the backend configuration.
func storeConfig(v *viper.Viper) types.Config {
	return types.Config{
		Backend: v.GetString(cfgKeyBackend),
		Sheets: types.SheetsConfig{
			ServiceAccount: v.GetString(cfgKeySheetsServiceAccount),
			PrivateKey:     v.GetString(cfgKeySheetsPrivateKey),
			SpreadsheetID:  v.GetString(cfgKeySheetsSpreadsheetID),
		},
		Airtable: types.AirtableConfig{
			APIKey: v.GetString(cfgKeyAirtableAPIKey),
			BaseID: v.GetString(cfgKeyAirtableBaseID),
		},
	}
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
