package database

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	sqlite3 "github.com/mattn/go-sqlite3"
)

// ErrDuplicateKey reports that an insert collided with an existing primary
// key or unique value. Batch inserts surface it after rolling the whole
// batch back.
var ErrDuplicateKey = errors.New("duplicate key")

// ErrLastAdmin reports a refused deletion of the only remaining
// administrator account.
var ErrLastAdmin = errors.New("cannot delete the last administrator")

// ErrInvalidSearchField reports an out-of-range search field selector.
var ErrInvalidSearchField = errors.New("invalid search field")

// DependencyConflictError reports a class deletion refused because other
// rows still reference the class. The counts are suitable for user-facing
// messages.
type DependencyConflictError struct {
	Students    int
	Assignments int
}

func (e *DependencyConflictError) Error() string {
	return fmt.Sprintf("class is still referenced by %d student(s) and %d teacher assignment(s)",
		e.Students, e.Assignments)
}

// isDuplicateKey reports whether err is a unique or primary key violation
// from whichever driver is active.
func isDuplicateKey(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// unique_violation
		return pqErr.Code == "23505"
	}
	var sqErr sqlite3.Error
	if errors.As(err, &sqErr) {
		// ErrConstraint alone also covers FK, NOT NULL and CHECK failures;
		// only key collisions count here.
		return sqErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
			sqErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
