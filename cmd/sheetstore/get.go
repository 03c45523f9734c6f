// Get command for the sheetstore CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <entity> <id>",
	Short: "Get a document by id",
	Args:  cobra.ExactArgs(2),
	RunE:  runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	warnFallback()

	coll, err := entityArg(args[0])
	if err != nil {
		return err
	}

	doc, err := coll.Get(cmd.Context(), args[1])
	if err != nil {
		return fmt.Errorf("get %s/%s: %w", args[0], args[1], err)
	}
	if doc == nil {
		fmt.Fprintf(os.Stderr, "not found: %s/%s\n", args[0], args[1])
		os.Exit(exitUserError)
	}

	return printJSON(doc)
}
