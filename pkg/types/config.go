package types

import (
	"errors"
	"fmt"
	"strings"
)

// Config holds backend selection and credentials for datastore.New.
type Config struct {
	Backend  string         `json:"backend" yaml:"backend" mapstructure:"backend"`
	Sheets   SheetsConfig   `json:"sheets" yaml:"sheets" mapstructure:"sheets"`
	Airtable AirtableConfig `json:"airtable" yaml:"airtable" mapstructure:"airtable"`
}

// SheetsConfig carries the Google Sheets service-account credentials.
type SheetsConfig struct {
	ServiceAccount string `json:"service_account" yaml:"service_account" mapstructure:"service_account"`
	PrivateKey     string `json:"private_key" yaml:"private_key" mapstructure:"private_key"`
	SpreadsheetID  string `json:"spreadsheet_id" yaml:"spreadsheet_id" mapstructure:"spreadsheet_id"`
}

// AirtableConfig carries the Airtable credentials for the stub backend.
type AirtableConfig struct {
	APIKey string `json:"api_key" yaml:"api_key" mapstructure:"api_key"`
	BaseID string `json:"base_id" yaml:"base_id" mapstructure:"base_id"`
}

// Supported backend names.
const (
	BackendMemory   = "memory"
	BackendSheets   = "sheets"
	BackendAirtable = "airtable"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendMemory:   true,
	BackendSheets:   true,
	BackendAirtable: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package, or a *CredentialsError naming every missing
// sheets credential.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return fmt.Errorf("%w: %q", ErrBackendUnknown, c.Backend)
	}
	if c.Backend == BackendSheets {
		if missing := c.Sheets.MissingCredentials(); len(missing) > 0 {
			return &CredentialsError{Missing: missing}
		}
	}
	return nil
}

// MissingCredentials returns the environment-variable names of every unset
// sheets credential, in a fixed order.
func (s SheetsConfig) MissingCredentials() []string {
	var missing []string
	if s.ServiceAccount == "" {
		missing = append(missing, "GS_SERVICE_ACCOUNT")
	}
	if s.PrivateKey == "" {
		missing = append(missing, "GS_PRIVATE_KEY")
	}
	if s.SpreadsheetID == "" {
		missing = append(missing, "GS_SHEET_ID")
	}
	return missing
}

// CredentialsError reports every missing backend credential at once, so a
// misconfigured deployment is fixed in one pass instead of one variable at
// a time.
type CredentialsError struct {
	Missing []string
}

func (e *CredentialsError) Error() string {
	return fmt.Sprintf("google sheets credentials required but missing: %s (set backend=memory to use the memory backend instead)",
		strings.Join(e.Missing, ", "))
}
