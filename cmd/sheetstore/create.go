// Create command for the sheetstore CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create <entity> <json>",
	Short: "Create a document from a JSON object",
	Long: `Create appends a new document to the entity table. The document is
given as a JSON object argument, or read from stdin when the argument
is "-". A missing id field is filled with a generated UUID.

Example:
  sheetstore create activities '{"title_en":"Pottery class","ageMin":6}'
  cat doc.json | sheetstore create users -`,
	Args: cobra.ExactArgs(2),
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	warnFallback()

	coll, err := entityArg(args[0])
	if err != nil {
		return err
	}

	doc, err := parseDocArg(args[1])
	if err != nil {
		return err
	}

	created, err := coll.Create(cmd.Context(), doc)
	if err != nil {
		return fmt.Errorf("create %s: %w", args[0], err)
	}

	if flagJSON {
		return printJSON(created)
	}
	fmt.Printf("Created %s: %s\n", args[0], created.ID())
	return nil
}
