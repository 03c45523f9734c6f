package sheets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/kidorama/sheetstore/pkg/types"
)

// googleTransport implements Transport over the Google Sheets v4 API using
// a service-account JWT.
type googleTransport struct {
	svc           *sheetsapi.Service
	spreadsheetID string
}

// NewGoogleTransport builds the production Transport from service-account
// credentials. Private keys arriving through environment variables carry
// literal "\n" sequences; they are unescaped here.
func NewGoogleTransport(ctx context.Context, cfg types.SheetsConfig) (Transport, error) {
	jwtCfg := &jwt.Config{
		Email:      cfg.ServiceAccount,
		PrivateKey: []byte(strings.ReplaceAll(cfg.PrivateKey, `\n`, "\n")),
		Scopes:     []string{sheetsapi.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := sheetsapi.NewService(ctx, option.WithHTTPClient(jwtCfg.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}

	return &googleTransport{svc: svc, spreadsheetID: cfg.SpreadsheetID}, nil
}

func (g *googleTransport) ReadRange(ctx context.Context, sheet string) ([][]string, error) {
	resp, err := g.svc.Spreadsheets.Values.
		Get(g.spreadsheetID, sheet+"!A:Z").
		Context(ctx).Do()
	if err != nil {
		if isMissingRange(err) {
			return nil, ErrSheetMissing
		}
		return nil, fmt.Errorf("reading range %s: %w", sheet, err)
	}

	rows := make([][]string, len(resp.Values))
	for i, raw := range resp.Values {
		row := make([]string, len(raw))
		for j, cell := range raw {
			if cell != nil {
				row[j] = fmt.Sprint(cell)
			}
		}
		rows[i] = row
	}
	return rows, nil
}

func (g *googleTransport) WriteRange(ctx context.Context, sheet string, rows [][]string) error {
	// Clear first: the write fully replaces the range, and a shorter table
	// must not leave stale rows below it.
	if _, err := g.svc.Spreadsheets.Values.
		Clear(g.spreadsheetID, sheet+"!A:Z", &sheetsapi.ClearValuesRequest{}).
		Context(ctx).Do(); err != nil {
		return fmt.Errorf("clearing range %s: %w", sheet, err)
	}

	values := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}

	if _, err := g.svc.Spreadsheets.Values.
		Update(g.spreadsheetID, sheet+"!A1", &sheetsapi.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).Do(); err != nil {
		return fmt.Errorf("writing range %s: %w", sheet, err)
	}
	return nil
}

func (g *googleTransport) SheetTitles(ctx context.Context) ([]string, error) {
	meta, err := g.svc.Spreadsheets.
		Get(g.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("reading spreadsheet metadata: %w", err)
	}

	titles := make([]string, 0, len(meta.Sheets))
	for _, s := range meta.Sheets {
		if s.Properties != nil {
			titles = append(titles, s.Properties.Title)
		}
	}
	return titles, nil
}

func (g *googleTransport) AddSheet(ctx context.Context, title string) error {
	req := &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{{
			AddSheet: &sheetsapi.AddSheetRequest{
				Properties: &sheetsapi.SheetProperties{Title: title},
			},
		}},
	}
	if _, err := g.svc.Spreadsheets.
		BatchUpdate(g.spreadsheetID, req).
		Context(ctx).Do(); err != nil {
		return fmt.Errorf("adding sheet %s: %w", title, err)
	}
	return nil
}

// isMissingRange recognizes the API error returned when the named sheet
// does not exist in the spreadsheet.
func isMissingRange(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == 400 && strings.Contains(apiErr.Message, "Unable to parse range")
	}
	return false
}
