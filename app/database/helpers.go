package database

import (
	"fmt"
	"time"
)

// nullable maps an empty string to NULL so optional text columns are not
// stored as empty strings.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// nullableInt maps zero to NULL; used for the unassigned class reference.
func nullableInt(n int) any {
	if n == 0 {
		return nil
	}
	return n
}

// dateText scans a date column into its YYYY-MM-DD text form regardless of
// how the active driver reports it: SQLite hands back text, PostgreSQL a
// time.Time.
type dateText string

func (d *dateText) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = dateText(v.Format("2006-01-02"))
	case string:
		*d = dateText(v)
	case []byte:
		*d = dateText(v)
	default:
		return fmt.Errorf("cannot scan %T into date", src)
	}
	if len(*d) > 10 {
		*d = (*d)[:10]
	}
	return nil
}
