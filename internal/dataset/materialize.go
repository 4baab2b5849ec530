package dataset

import "github.com/trentd187/sheet-data-api/internal/models"

// Materialize builds one Record per data row, keyed by headers.
//
// Every Record gets a key for each header. Cells missing from the end of a short row are
// treated as "" before coercion, and cells past the last header are ignored. When two headers
// share a name the later column's value wins.
//
// The result is never nil, so an empty input serializes as [] rather than null.
func Materialize(headers models.HeaderRow, rows []models.DataRow) models.Dataset {
	out := make(models.Dataset, 0, len(rows))
	if len(headers) == 0 {
		return out
	}

	for _, row := range rows {
		record := models.NewRecord(len(headers))
		for i, header := range headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			record.Set(header, Coerce(cell))
		}
		out = append(out, record)
	}
	return out
}

// FromTable treats the first row of table as the header row and materializes the rest.
// A nil or empty table, or one holding only a header row, yields an empty Dataset.
func FromTable(table [][]string) models.Dataset {
	if len(table) == 0 {
		return models.Dataset{}
	}

	rows := make([]models.DataRow, 0, len(table)-1)
	for _, row := range table[1:] {
		rows = append(rows, models.DataRow(row))
	}
	return Materialize(models.HeaderRow(table[0]), rows)
}
