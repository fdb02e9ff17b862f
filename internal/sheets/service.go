package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Service adapts the Google Sheets API to RangeAppender for one
// spreadsheet. It is created once at startup and read-only afterwards.
type Service struct {
	srv           *sheetsapi.Service
	spreadsheetID string
}

// NewService authenticates with a service-account credential file and
// binds the target spreadsheet.
func NewService(ctx context.Context, credentialsPath, spreadsheetID string) (*Service, error) {
	if credentialsPath == "" {
		return nil, fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS is required")
	}
	if spreadsheetID == "" {
		return nil, fmt.Errorf("GOOGLE_SHEET_ID is required")
	}

	srv, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("initialize sheets service: %w", err)
	}

	return &Service{srv: srv, spreadsheetID: spreadsheetID}, nil
}

// AppendRow appends one row after the last row of the range. The API
// picks the row position (INSERT_ROWS); we never target a row number.
func (s *Service) AppendRow(ctx context.Context, rangeA1 string, row []interface{}) error {
	vr := &sheetsapi.ValueRange{Values: [][]interface{}{row}}

	_, err := s.srv.Spreadsheets.Values.
		Append(s.spreadsheetID, rangeA1, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets append %s: %w", rangeA1, err)
	}
	return nil
}
