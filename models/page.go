package models

import "math"

// PageResult is one page of records together with the total number of
// records matching the query.
type PageResult[T any] struct {
	Total   int64 `json:"total"`
	Records []T   `json:"records"`
}

// Offset returns the zero-based row offset for the given 1-based page.
// Offsets beyond a PostgreSQL bigint saturate at [math.MaxInt64], which
// selects an empty page.
func Offset(page, pageSize int) uint64 {
	if page < 1 || pageSize < 1 {
		return 0
	}
	skipped := uint64(page - 1)
	if skipped > math.MaxInt64/uint64(pageSize) {
		return math.MaxInt64
	}
	return skipped * uint64(pageSize)
}
