package database

import (
	"fmt"
	"log"
	"strings"
)

// The canonical schema. DDL is shared between backends except for three type
// spellings substituted per backend: %[1]s auto-assigning integer primary
// key, %[2]s binary blob, %[3]s floating point.
var tableDefs = []struct {
	name string
	ddl  string
}{
	{"students", `
		CREATE TABLE IF NOT EXISTS students (
		  std_id %[1]s,
		  std_fname text NOT NULL,
		  std_mname text,
		  std_lname text NOT NULL,
		  std_gender text NOT NULL,
		  std_dob text,
		  std_class integer,
		  profile_pic %[2]s
		)`},
	{"admin", `
		CREATE TABLE IF NOT EXISTS admin (
		  adm_id %[1]s,
		  adm_name text NOT NULL,
		  adm_username varchar(255) NOT NULL UNIQUE,
		  password varchar(255) NOT NULL
		)`},
	{"teachers", `
		CREATE TABLE IF NOT EXISTS teachers (
		  tch_id %[1]s,
		  tch_name text NOT NULL,
		  tch_contact text,
		  tch_gender text NOT NULL,
		  tch_email text,
		  tch_address text,
		  profile_pic %[2]s
		)`},
	{"subjects", `
		CREATE TABLE IF NOT EXISTS subjects (
		  subject_id %[1]s,
		  subject_name varchar(255) NOT NULL UNIQUE
		)`},
	{"teacher_assignments", `
		CREATE TABLE IF NOT EXISTS teacher_assignments (
		  assignment_id %[1]s,
		  teacher_id integer,
		  subject_id integer,
		  class_level integer,
		  FOREIGN KEY(teacher_id) REFERENCES teachers(tch_id),
		  FOREIGN KEY(subject_id) REFERENCES subjects(subject_id)
		)`},
	{"class_levels", `
		CREATE TABLE IF NOT EXISTS class_levels (
		  class_id %[1]s,
		  class_name varchar(255) NOT NULL UNIQUE
		)`},
	{"student_attendance", `
		CREATE TABLE IF NOT EXISTS student_attendance (
		  attendance_id %[1]s,
		  student_id integer,
		  attendance_date date NOT NULL,
		  status text NOT NULL,
		  FOREIGN KEY(student_id) REFERENCES students(std_id)
		)`},
	{"student_payments", `
		CREATE TABLE IF NOT EXISTS student_payments (
		  payment_id %[1]s,
		  student_id integer,
		  amount_paid %[3]s NOT NULL,
		  payment_date date NOT NULL,
		  term text,
		  academic_year integer,
		  FOREIGN KEY(student_id) REFERENCES students(std_id)
		)`},
}

func ddlTypes(kind BackendKind) (pk, blob, float string) {
	if kind == BackendPostgres {
		return "serial PRIMARY KEY", "bytea", "double precision"
	}
	return "integer PRIMARY KEY", "blob", "real"
}

// EnsureSchema creates every required table and applies additive column
// migrations. It is safe to run on every startup, including against a store
// that is already fully provisioned. A failure creating a required table is
// fatal; the optional column migrations only log.
func EnsureSchema(ds *DataSource) error {
	pk, blob, float := ddlTypes(ds.backend)
	for _, t := range tableDefs {
		if _, err := ds.db.Exec(fmt.Sprintf(t.ddl, pk, blob, float)); err != nil {
			return fmt.Errorf("create table %s: %w", t.name, err)
		}
	}

	// profile_pic was added after the first release; stores provisioned by
	// older versions lack the column.
	ensureColumn(ds, "students", "profile_pic", blob)
	ensureColumn(ds, "teachers", "profile_pic", blob)
	return nil
}

// serialResyncQuery builds the statement that advances a serial id column's
// sequence past the largest stored value. PostgreSQL does not move the
// sequence when rows arrive with explicit ids, so without this the next
// default-id insert would draw an already-taken value.
func serialResyncQuery(table, column string) string {
	return fmt.Sprintf(
		"SELECT setval(pg_get_serial_sequence('%[1]s', '%[2]s'), COALESCE(MAX(%[2]s), 0) + 1, false) FROM %[1]s",
		table, column)
}

// resyncSerial advances table's id sequence past the largest stored value.
// A no-op on SQLite, whose rowid allocation is max-based already.
func resyncSerial(ds *DataSource, table, column string) error {
	if ds.backend != BackendPostgres {
		return nil
	}
	_, err := ds.db.Exec(serialResyncQuery(table, column))
	return err
}

// ensureColumn adds column to table when it is missing. The live column set
// is read through a zero-row select so the check works the same on both
// backends; names are compared case-insensitively.
func ensureColumn(ds *DataSource, table, column, colType string) {
	rows, err := ds.db.Query("SELECT * FROM " + table + " LIMIT 0")
	if err != nil {
		log.Printf("Error inspecting %s columns: %v", table, err)
		return
	}
	cols, err := rows.Columns()
	rows.Close()
	if err != nil {
		log.Printf("Error inspecting %s columns: %v", table, err)
		return
	}
	for _, c := range cols {
		if strings.EqualFold(c, column) {
			return
		}
	}
	if _, err := ds.db.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, colType)); err != nil {
		log.Printf("Error adding %s column to %s: %v", column, table, err)
		return
	}
	log.Printf("Added %s column to %s", column, table)
}
