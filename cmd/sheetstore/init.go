// Init command for the sheetstore CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kidorama/sheetstore/pkg/types"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the configured backend",
	Long: `Init constructs the configured backend and reports what it built.
For the sheets backend this provisions any missing entity tabs with their
canonical header rows. For the memory backend it is a connectivity no-op.

A fresh config.yaml is written to the config directory on first run.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	// Backend construction, including sheet provisioning, already happened
	// in PersistentPreRunE; here we just report the outcome.
	if diagnostics.Backend == "" {
		return fmt.Errorf("backend %s failed to initialize: %w", diagnostics.Requested, diagnostics.Err)
	}
	if diagnostics.Fallback {
		fmt.Printf("Requested %s backend unavailable (%v); initialized volatile %s backend\n",
			diagnostics.Requested, diagnostics.Err, diagnostics.Backend)
		return nil
	}

	fmt.Printf("Initialized %s backend\n", diagnostics.Backend)
	if diagnostics.Backend == types.BackendSheets {
		fmt.Printf("All %d entity tabs present\n", len(types.Entities()))
	}
	return nil
}
