// Package models defines the data structures that flow from the spreadsheet to the HTTP response.
//
// The sheet is read as a grid of strings. The first row names the fields (HeaderRow) and every
// following row (DataRow) becomes one Record. A Dataset is the ordered list of Records produced
// by a single read; it is built fresh for every request and never stored.
package models

import (
	// orderedmap keeps keys in insertion order, so a Record serializes its fields in the same
	// left-to-right order as the sheet's columns instead of Go's sorted map-key order.
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// HeaderRow is the first row of the range: one field name per column.
// Duplicate names are allowed; the later column overwrites the earlier one in each Record.
type HeaderRow []string

// DataRow is one row of raw cell text, aligned by position with the HeaderRow.
// It may be shorter than the header row when trailing cells are blank.
type DataRow []string

// Record maps a field name to its value. Values are either a string or a float64.
type Record = orderedmap.OrderedMap[string, any]

// Dataset is every Record from one read, in sheet row order.
type Dataset []*Record

// NewRecord returns an empty Record with room for size fields.
func NewRecord(size int) *Record {
	return orderedmap.New[string, any](orderedmap.WithCapacity[string, any](size))
}
