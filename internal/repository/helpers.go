package repository

import (
	"database/sql"
	"time"
)

// nullableInt converts a *int to a value suitable for SQLite storage:
// nil becomes SQL NULL.
func nullableInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// intPtrFromNull converts a scanned sql.NullInt64 back to a *int.
func intPtrFromNull(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
