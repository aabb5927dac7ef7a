package sqlite

import (
	"fmt"
	"strings"
	"time"
)

// parseRFC3339 parses a stored run timestamp. Runs are written with
// second precision in UTC; the error names the column that failed.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends the LIMIT and OFFSET of a RunFilter to a query
// builder. Zero values leave the clause out.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
