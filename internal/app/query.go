package app

import "context"

// Query describes a single-table read: which columns to return and which
// column orders the result.
type Query struct {
	Table      string
	Columns    []string
	OrderBy    string
	Descending bool
}

// TableQuerier runs a read query against the backing store and returns the
// matching rows as a JSON array. Errors reported by the store are returned
// as produced.
type TableQuerier interface {
	Select(ctx context.Context, q Query) ([]byte, error)
}
