// Package spreadsheet reads cell ranges from Google Sheets.
//
// It wraps the generated Sheets v4 client behind a single call, ReadRange, which returns the
// range as a grid of strings. Errors from the API (bad credentials, missing sheet, quota) are
// returned to the caller instead of being collapsed into an empty result, so "the range is
// empty" and "the read failed" stay distinguishable.
package spreadsheet

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client reads ranges from the Sheets API. It is safe for concurrent use.
type Client struct {
	svc *sheets.Service
}

// New builds a Client authenticated as the service account described by credentialsJSON.
// Only read access to spreadsheets is requested.
func New(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	conf, err := google.JWTConfigFromJSON(credentialsJSON, sheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("parsing service account credentials: %w", err)
	}
	return NewWithOptions(ctx, option.WithHTTPClient(conf.Client(ctx)))
}

// NewWithOptions builds a Client from raw client options, e.g. a custom endpoint.
func NewWithOptions(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("building sheets service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// ReadRange fetches readRange (A1 notation or a named range) from the spreadsheet and returns
// it row by row. Every cell is returned as its formatted text. A range with no values returns
// an empty table and a nil error.
func (c *Client) ReadRange(ctx context.Context, spreadsheetID, readRange string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.
		Get(spreadsheetID, readRange).
		MajorDimension("ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("reading range %q: %w", readRange, err)
	}

	log.WithFields(log.Fields{
		"spreadsheet": spreadsheetID,
		"range":       readRange,
		"rows":        len(resp.Values),
	}).Info("rows retrieved")

	table := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = cellText(v)
		}
		table = append(table, cells)
	}
	return table, nil
}

// cellText renders a decoded JSON cell as text. With the default FORMATTED_VALUE rendering the
// API only sends strings, but numbers and booleans can appear under other render options.
func cellText(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

const sheetsLinkRe = `^https://docs.google.com/spreadsheets/d/([\w\d_\-]+)(/|$)`

var sheetsLink = regexp.MustCompile(sheetsLinkRe)

// ParseSpreadsheetID accepts either a bare spreadsheet ID or a full Google Sheets URL and
// returns the ID.
func ParseSpreadsheetID(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("spreadsheet ID is empty")
	}
	if !strings.Contains(s, "://") {
		return s, nil
	}

	var matches = sheetsLink.FindStringSubmatch(s)
	if len(matches) < 2 || len(matches[1]) == 0 {
		return "", fmt.Errorf("invalid Google Sheets URL: %s", s)
	}
	return matches[1], nil
}
