package sheets

import (
	"context"
	"fmt"
	"os"

	"github.com/adiwignya/tembakau-api/internal/config"
	"google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// Client wraps the Google Sheets API for the mirror export.
type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
}

// NewClient creates a Sheets client from validated configuration using
// service account credentials (inline JSON or a credentials file).
func NewClient(ctx context.Context, cfg *config.SheetsConfig) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	credentials := []byte(cfg.CredentialsJSON)
	if len(credentials) == 0 {
		data, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read credentials file: %w", err)
		}
		credentials = data
	}

	svc, err := gsheet.NewService(ctx,
		option.WithCredentialsJSON(credentials),
		option.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
	}, nil
}

// Clear empties the A:Z range of the named sheet.
func (c *Client) Clear(ctx context.Context, sheetName string) error {
	rng := fmt.Sprintf("%s!A:Z", sheetName)
	_, err := c.svc.Spreadsheets.Values.
		Clear(c.spreadsheetID, rng, &gsheet.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("clear %s: %w", sheetName, err)
	}
	return nil
}

// Append appends rows after the existing content of the named sheet.
// Values are written raw, without spreadsheet-side parsing.
func (c *Client) Append(ctx context.Context, sheetName string, rows [][]interface{}) error {
	vr := &gsheet.ValueRange{Values: rows}
	_, err := c.svc.Spreadsheets.Values.
		Append(c.spreadsheetID, fmt.Sprintf("%s!A1", sheetName), vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append to %s: %w", sheetName, err)
	}
	return nil
}
