// Update command for the sheetstore CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update <entity> <id> <json>",
	Short: "Merge a JSON patch into a document",
	Long: `Update merges the given JSON object into the document with the given
id. Fields present in the patch replace the stored values; other fields
are left untouched. The patch is read from stdin when the argument is "-".

Example:
  sheetstore update activities activity-1 '{"waitlist":true}'`,
	Args: cobra.ExactArgs(3),
	RunE: runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	warnFallback()

	coll, err := entityArg(args[0])
	if err != nil {
		return err
	}

	patch, err := parseDocArg(args[2])
	if err != nil {
		return err
	}

	updated, err := coll.Update(cmd.Context(), args[1], patch)
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", args[0], args[1], err)
	}
	if updated == nil {
		fmt.Fprintf(os.Stderr, "not found: %s/%s\n", args[0], args[1])
		os.Exit(exitUserError)
	}

	if flagJSON {
		return printJSON(updated)
	}
	fmt.Printf("Updated %s: %s\n", args[0], updated.ID())
	return nil
}
