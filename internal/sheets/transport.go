// Package sheets implements the spreadsheet-backed Store. The backing
// store exposes only whole-range reads and whole-range overwrites — no
// row-level addressing, no transactions — so every mutation is a
// snapshot-mutate-write over the full table.
package sheets

import (
	"context"
	"errors"
)

// Transport is the range-oriented surface of the backing spreadsheet. Each
// call is atomic on its own; calls do not compose into transactions.
type Transport interface {
	// ReadRange returns the full cell matrix of the named sheet (columns
	// A:Z), header row included. Returns ErrSheetMissing when the sheet
	// does not exist.
	ReadRange(ctx context.Context, sheet string) ([][]string, error)

	// WriteRange replaces the named sheet's contents with rows, starting
	// at A1.
	WriteRange(ctx context.Context, sheet string, rows [][]string) error

	// SheetTitles lists the titles of the sheets in the spreadsheet.
	SheetTitles(ctx context.Context) ([]string, error)

	// AddSheet creates an empty sheet with the given title.
	AddSheet(ctx context.Context, title string) error
}

// ErrSheetMissing reports a range read against a sheet that does not
// exist. The engine treats it as an empty table, not a failure.
var ErrSheetMissing = errors.New("sheet does not exist")
