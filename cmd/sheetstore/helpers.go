// Shared helpers for sheetstore CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kidorama/sheetstore/pkg/types"
)

// validEntityNamesStr is a comma-separated list of valid entity names for
// error output.
var validEntityNamesStr = func() string {
	names := make([]string, 0, len(types.Entities()))
	for _, e := range types.Entities() {
		names = append(names, string(e))
	}
	return strings.Join(names, ", ")
}()

// entityArg validates the entity argument and resolves the collection.
func entityArg(name string) (types.Collection, error) {
	entity := types.EntityType(name)
	if !entity.Valid() {
		return nil, fmt.Errorf("unknown entity %q (valid: %s)", name, validEntityNamesStr)
	}

	coll, err := store.Collection(entity)
	if err != nil {
		return nil, fmt.Errorf("get collection: %w", err)
	}
	return coll, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// warnFallback prints a notice to stderr when the store is not the backend
// the configuration asked for.
func warnFallback() {
	if diagnostics.Fallback {
		fmt.Fprintf(os.Stderr, "warning: %s backend unavailable, using volatile memory backend: %v\n",
			diagnostics.Requested, diagnostics.Err)
	}
}

// parseDocArg decodes a JSON object argument, reading stdin when the
// argument is "-".
func parseDocArg(arg string) (types.Document, error) {
	data := []byte(arg)
	if arg == "-" {
		var err error
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
	}

	var doc types.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document JSON: %w", err)
	}
	return doc, nil
}
