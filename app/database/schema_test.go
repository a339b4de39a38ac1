package database

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func tableColumns(t *testing.T, ds *DataSource, table string) []string {
	t.Helper()
	rows, err := ds.db.Query("SELECT * FROM " + table + " LIMIT 0")
	if err != nil {
		t.Fatalf("inspecting %s: %v", table, err)
	}
	defer rows.Close()
	cols, err := rows.Columns()
	if err != nil {
		t.Fatalf("columns of %s: %v", table, err)
	}
	return cols
}

func TestEnsureSchemaCreatesAllTables(t *testing.T) {
	ds := newTestDataSource(t)
	for _, tbl := range tableDefs {
		if got := tableColumns(t, ds, tbl.name); len(got) == 0 {
			t.Errorf("table %s has no columns", tbl.name)
		}
	}
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	ds := newTestDataSource(t)

	before := make(map[string][]string)
	for _, tbl := range tableDefs {
		before[tbl.name] = tableColumns(t, ds, tbl.name)
	}

	if err := EnsureSchema(ds); err != nil {
		t.Fatalf("second EnsureSchema: %v", err)
	}
	for _, tbl := range tableDefs {
		after := tableColumns(t, ds, tbl.name)
		if !reflect.DeepEqual(before[tbl.name], after) {
			t.Errorf("table %s columns changed on re-run: %v != %v", tbl.name, before[tbl.name], after)
		}
	}
}

func TestEnsureSchemaAddsProfilePicToLegacyStore(t *testing.T) {
	ds, err := OpenSQLite(filepath.Join(t.TempDir(), "legacy.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer ds.Shutdown()

	// A store provisioned before profile pictures existed.
	_, err = ds.db.Exec(`CREATE TABLE students (
		std_id integer PRIMARY KEY,
		std_fname text NOT NULL,
		std_mname text,
		std_lname text NOT NULL,
		std_gender text NOT NULL,
		std_dob text,
		std_class integer
	)`)
	if err != nil {
		t.Fatalf("creating legacy table: %v", err)
	}
	_, err = ds.db.Exec(`INSERT INTO students(std_fname, std_lname, std_gender) VALUES ('Kofi', 'Mensah', 'Male')`)
	if err != nil {
		t.Fatalf("seeding legacy row: %v", err)
	}

	if err := EnsureSchema(ds); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}

	found := false
	for _, c := range tableColumns(t, ds, "students") {
		if strings.EqualFold(c, "profile_pic") {
			found = true
		}
	}
	if !found {
		t.Fatal("profile_pic column was not added to legacy students table")
	}
	// The additive migration must not have touched existing rows.
	if n := countRows(t, ds, "students"); n != 1 {
		t.Errorf("expected 1 surviving row, got %d", n)
	}
}
