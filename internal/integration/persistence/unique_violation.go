// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// pq error code for unique_violation.
const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a unique-constraint violation
// touching the given column. Postgres errors are matched by SQLSTATE; the
// string fallback covers the sqlite driver used in tests.
func isUniqueViolation(err error, column string) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code != uniqueViolationCode {
			return false
		}
		return strings.Contains(pqErr.Constraint, column) ||
			strings.Contains(pqErr.Detail, column)
	}

	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") {
		return strings.Contains(msg, column)
	}
	return false
}
