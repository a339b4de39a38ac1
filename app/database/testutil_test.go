package database

import (
	"path/filepath"
	"testing"

	"github.com/IbnIssah/SchoolManagementSystem/app/models"
)

// newTestDataSource opens a fresh SQLite store in a temp directory and
// provisions the schema, mirroring the fallback path taken in production.
func newTestDataSource(t *testing.T) *DataSource {
	t.Helper()
	ds, err := OpenSQLite(filepath.Join(t.TempDir(), "school.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(ds.Shutdown)
	if err := EnsureSchema(ds); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	return ds
}

// mustAddStudent inserts a student with a fixed id, for tests that need
// known keys in place.
func mustAddStudent(t *testing.T, ds *DataSource, id int, first, last string) {
	t.Helper()
	err := AddStudentsBatch(ds, []models.Student{{
		ID:        id,
		FirstName: first,
		LastName:  last,
		Gender:    models.GenderMale,
	}})
	if err != nil {
		t.Fatalf("adding student %d: %v", id, err)
	}
}

func countRows(t *testing.T, ds *DataSource, table string) int {
	t.Helper()
	var n int
	if err := ds.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("counting %s: %v", table, err)
	}
	return n
}
