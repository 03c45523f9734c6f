// Package main provides the sheetstore CLI, a thin operator console over
// the document store: inspect, create, update, and delete records in any
// entity table, and manage translations, against whichever backend the
// configuration selects.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
