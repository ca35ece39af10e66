// internal/repository/postgres/pg_errors.go
package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// PostgreSQL error codes this package translates into application errors.
const (
	codeUniqueViolation     pq.ErrorCode = "23505"
	codeForeignKeyViolation pq.ErrorCode = "23503"
)

func pgErrorCode(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code
	}
	return ""
}
