package database

import (
	"log"
	"strings"

	"github.com/IbnIssah/SchoolManagementSystem/app/password"
)

// bcrypt hashes start with $2a$, $2b$ or $2y$; anything else in the password
// column is legacy plaintext.
const bcryptPrefix = "$2"

// MigrateWeakCredentials upgrades any plaintext admin passwords to salted
// bcrypt hashes. It must run after EnsureSchema and before the first login,
// since login verification assumes every stored credential is hashed. Once
// all rows carry the hash prefix this is a no-op scan.
func MigrateWeakCredentials(ds *DataSource) error {
	rows, err := ds.db.Query("SELECT adm_id, password FROM admin")
	if err != nil {
		return err
	}
	defer rows.Close()

	updates := make(map[int]string)
	for rows.Next() {
		var id int
		var stored string
		if err := rows.Scan(&id, &stored); err != nil {
			return err
		}
		if stored == "" || strings.HasPrefix(stored, bcryptPrefix) {
			continue
		}
		hashed, err := password.Hash(stored)
		if err != nil {
			return err
		}
		updates[id] = hashed
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if len(updates) == 0 {
		return nil
	}

	log.Printf("Migrating %d plain-text password(s) to bcrypt hashes...", len(updates))
	tx, err := ds.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(ds.Rebind("UPDATE admin SET password = ? WHERE adm_id = ?"))
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()
	for id, hashed := range updates {
		if _, err := stmt.Exec(hashed, id); err != nil {
			tx.Rollback()
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Println("Password migration complete")
	return nil
}
