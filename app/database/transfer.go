package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/IbnIssah/SchoolManagementSystem/app/settings"
)

// MigratedFlag is the settings key recording that the one-time copy from the
// fallback store into the primary backend has completed.
const MigratedFlag = "backend_migrated"

// Data tables copied from the fallback store into the primary, in a fixed
// order that satisfies the foreign keys, with their full column counts and
// serial id columns.
var transferTables = []struct {
	name  string
	idCol string
	cols  int
}{
	{"admin", "adm_id", 4},
	{"students", "std_id", 8},
	{"teachers", "tch_id", 7},
	{"student_attendance", "attendance_id", 4},
	{"student_payments", "payment_id", 6},
}

// MigrateIfNeeded copies all rows from the embedded fallback store into the
// primary backend, exactly once. It only applies when the primary is active
// and the completion flag is unset. Failures are logged, never fatal: the
// flag stays unset so the next startup retries.
//
// A primary store that already holds students is treated as migrated, which
// also protects retries from duplicating rows after a partial earlier copy —
// provided that copy reached the students table.
func MigrateIfNeeded(ds *DataSource, st *settings.Store) {
	if !ds.UsingPrimary() || st.Bool(MigratedFlag, false) {
		return
	}
	log.Println("Checking if data migration to the primary backend is needed...")

	src, err := OpenSQLite(fallbackPath)
	if err != nil {
		log.Printf("Data migration skipped, cannot open fallback store: %v", err)
		return
	}
	defer src.Shutdown()

	if err := runTransfer(src.Pool(), ds, st); err != nil {
		log.Printf("Data migration failed: %v", err)
	}
}

// runTransfer does the actual copy. Split from MigrateIfNeeded so tests can
// drive it with their own source and destination stores.
func runTransfer(src *sql.DB, dst *DataSource, st *settings.Store) error {
	var existing int
	if err := dst.db.QueryRow("SELECT COUNT(*) FROM students").Scan(&existing); err != nil {
		return fmt.Errorf("count primary students: %w", err)
	}
	if existing > 0 {
		log.Println("Primary database is not empty. Skipping migration.")
		if err := st.PutBool(MigratedFlag, true); err != nil {
			log.Printf("Error recording migration flag: %v", err)
		}
		return nil
	}

	log.Println("Primary database is empty. Starting data migration from the fallback store...")
	for _, t := range transferTables {
		if err := copyTable(src, dst, t.name, t.cols); err != nil {
			return fmt.Errorf("table %s: %w", t.name, err)
		}
		// Rows arrive with their original ids; move the destination's id
		// sequence past them so later default-id inserts do not collide.
		if err := resyncSerial(dst, t.name, t.idCol); err != nil {
			return fmt.Errorf("resync %s id sequence: %w", t.name, err)
		}
	}
	if err := st.PutBool(MigratedFlag, true); err != nil {
		return fmt.Errorf("record migration flag: %w", err)
	}
	log.Println("Data migration to the primary backend completed")
	return nil
}

// copyTable copies every row of one table verbatim, keeping the original
// primary keys, through a positional prepared insert inside one transaction.
func copyTable(src *sql.DB, dst *DataSource, table string, cols int) error {
	rows, err := src.Query("SELECT * FROM " + table)
	if err != nil {
		return err
	}
	defer rows.Close()

	placeholders := strings.TrimSuffix(strings.Repeat("?,", cols), ",")
	insert := dst.Rebind(fmt.Sprintf("INSERT INTO %s VALUES (%s)", table, placeholders))

	tx, err := dst.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(insert)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	copied := 0
	for rows.Next() {
		holders := make([]any, cols)
		for i := range holders {
			holders[i] = new(any)
		}
		if err := rows.Scan(holders...); err != nil {
			tx.Rollback()
			return err
		}
		args := make([]any, cols)
		for i, h := range holders {
			args[i] = *(h.(*any))
		}
		if _, err := stmt.Exec(args...); err != nil {
			tx.Rollback()
			return err
		}
		copied++
	}
	if err := rows.Err(); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Printf("Migrated %d row(s) from %s", copied, table)
	return nil
}
