package db

import (
	"errors"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// Query narrows a read or delete. An empty Where matches every row.
type Query struct {
	Where string
	Args  []any
	Order string
	Limit int
}

// Dialector picks the gorm driver for a DSN: postgres URLs and key/value DSNs go to
// postgres, anything else is treated as a sqlite file path or URI.
func Dialector(dsn string) gorm.Dialector {
	switch {
	case strings.HasPrefix(dsn, "postgres://"),
		strings.HasPrefix(dsn, "postgresql://"),
		strings.HasPrefix(dsn, "host="):
		return postgres.Open(dsn)
	default:
		return sqlite.Open(dsn)
	}
}

func isSqlite(dialector gorm.Dialector) bool {
	return dialector.Name() == "sqlite"
}
