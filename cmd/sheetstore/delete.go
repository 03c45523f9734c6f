// Delete command for the sheetstore CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <entity> <id>",
	Short: "Delete a document by id",
	Args:  cobra.ExactArgs(2),
	RunE:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	warnFallback()

	coll, err := entityArg(args[0])
	if err != nil {
		return err
	}

	removed, err := coll.Remove(cmd.Context(), args[1])
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", args[0], args[1], err)
	}
	if !removed {
		fmt.Fprintf(os.Stderr, "not found: %s/%s\n", args[0], args[1])
		os.Exit(exitUserError)
	}

	fmt.Printf("Deleted %s: %s\n", args[0], args[1])
	return nil
}
