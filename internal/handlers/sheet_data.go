package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/googleapi"

	"github.com/trentd187/sheet-data-api/internal/config"
	"github.com/trentd187/sheet-data-api/internal/dataset"
	"github.com/trentd187/sheet-data-api/internal/middleware"
)

// RangeReader fetches one range of a spreadsheet as rows of cell text.
// *spreadsheet.Client satisfies it; tests use a fake.
type RangeReader interface {
	ReadRange(ctx context.Context, spreadsheetID, readRange string) ([][]string, error)
}

// readFailedMessage is the only error detail callers ever see. The real cause is logged.
const readFailedMessage = "Failed to read data"

// GetSheetData returns a handler for GET /api/sheet_data.
//
// Each request reads the configured range afresh, uses the first row as field names and
// responds with one JSON object per remaining row. Nothing is cached between requests. An
// empty range is a successful, empty array; a failed read is a 500.
func GetSheetData(reader RangeReader, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		table, err := reader.ReadRange(c.UserContext(), cfg.SpreadsheetID, cfg.Range)
		if err != nil {
			fields := log.Fields{
				"requestID":   middleware.GetRequestID(c),
				"spreadsheet": cfg.SpreadsheetID,
				"range":       cfg.Range,
				"error":       err,
			}
			var apiErr *googleapi.Error
			if errors.As(err, &apiErr) {
				fields["upstreamStatus"] = apiErr.Code
			}
			log.WithFields(fields).Error("failed to read sheet data")

			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": readFailedMessage,
			})
		}

		return c.JSON(dataset.FromTable(table))
	}
}
