package entity

import (
	"time"
)

// Base holds the columns every table carries. Rows are never updated in
// bulk, so there is no updated_at column.
type Base struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
