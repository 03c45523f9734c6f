// List command for the sheetstore CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <entity>",
	Short: "List all documents in an entity table",
	Long: `List reads the whole entity table and prints every document.

Example:
  sheetstore list activities
  sheetstore list users --json`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	warnFallback()

	coll, err := entityArg(args[0])
	if err != nil {
		return err
	}

	docs, err := coll.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list %s: %w", args[0], err)
	}

	if flagJSON {
		return printJSON(docs)
	}
	for _, doc := range docs {
		fmt.Println(doc.ID())
	}
	return nil
}
