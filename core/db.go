package core

import "github.com/jmoiron/sqlx"

// DBExecutor is the query surface the repositories run against.
// Both *sqlx.DB and *sqlx.Tx satisfy it.
type DBExecutor interface {
	sqlx.ExtContext
}

type DBOrdering struct {
	Field     string
	Ascending bool
}

func (ord DBOrdering) String() string {
	direction := "DESC"
	if ord.Ascending {
		direction = "ASC"
	}
	return ord.Field + " " + direction
}
