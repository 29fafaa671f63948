// Package sqlxrepos implements the core repositories on top of postgres
// via sqlx. Repositories accept any core.DBExecutor so they run against
// *sqlx.DB and *sqlx.Tx alike.
package sqlxrepos

import (
	"database/sql"
	"strings"

	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/duy-ank/asm-apdp/core"
)

const pqUniqueViolation = "23505"

// trapNoRowsErr converts sql.ErrNoRows into the owning package's
// not-found sentinel.
func trapNoRowsErr(err, notFound error) error {
	if errors.Cause(err) == sql.ErrNoRows {
		return notFound
	}
	return err
}

// trapUniqueErr maps a unique constraint violation to the sentinel
// registered for the violated index. Duplicate races that slip past the
// pre-insert checks surface here.
func trapUniqueErr(err error, sentinels map[string]error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		if sentinel, ok := sentinels[pqErr.Constraint]; ok {
			return sentinel
		}
	}
	return err
}

func orderBy(ordering []core.DBOrdering) string {
	if len(ordering) == 0 {
		return ""
	}
	parts := make([]string, len(ordering))
	for i, ord := range ordering {
		parts[i] = ord.String()
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}
