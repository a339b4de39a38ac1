package database

import (
	"fmt"

	"github.com/IbnIssah/SchoolManagementSystem/app/models"
	"github.com/IbnIssah/SchoolManagementSystem/app/password"
)

// GetAdminByUsername returns the admin row for username including the stored
// password hash, or sql.ErrNoRows when no such account exists. Login
// verification is the only caller that should see the hash.
func GetAdminByUsername(ds *DataSource, username string) (*models.Admin, error) {
	query := ds.Rebind("SELECT adm_id, adm_name, adm_username, password FROM admin WHERE adm_username = ?")
	var a models.Admin
	err := ds.db.QueryRow(query, username).Scan(&a.ID, &a.Name, &a.Username, &a.PasswordHash)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAdmin adds an administrator account, hashing the supplied plaintext
// before storage. A username collision is reported as ErrDuplicateKey.
func CreateAdmin(ds *DataSource, a *models.Admin, plain string) error {
	hashed, err := password.Hash(plain)
	if err != nil {
		return err
	}
	query := ds.Rebind("INSERT INTO admin(adm_name, adm_username, password) VALUES (?,?,?)")
	if _, err := ds.db.Exec(query, a.Name, a.Username, hashed); err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("%w: username %q", ErrDuplicateKey, a.Username)
		}
		return err
	}
	return nil
}

// FetchAllAdmins lists every administrator, ordered by display name. The
// password hashes are not read.
func FetchAllAdmins(ds *DataSource) ([]models.Admin, error) {
	rows, err := ds.db.Query("SELECT adm_id, adm_name, adm_username FROM admin ORDER BY adm_name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []models.Admin
	for rows.Next() {
		var a models.Admin
		if err := rows.Scan(&a.ID, &a.Name, &a.Username); err != nil {
			return nil, err
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}

// UpdateAdmin rewrites an admin's name and username. When newPassword is
// non-empty the credential is replaced with a fresh hash as well.
func UpdateAdmin(ds *DataSource, a *models.Admin, newPassword string) error {
	if newPassword != "" {
		hashed, err := password.Hash(newPassword)
		if err != nil {
			return err
		}
		query := ds.Rebind("UPDATE admin SET adm_name = ?, adm_username = ?, password = ? WHERE adm_id = ?")
		_, err = ds.db.Exec(query, a.Name, a.Username, hashed, a.ID)
		return err
	}
	query := ds.Rebind("UPDATE admin SET adm_name = ?, adm_username = ? WHERE adm_id = ?")
	_, err := ds.db.Exec(query, a.Name, a.Username, a.ID)
	return err
}

// DeleteAdmin removes an administrator account. Deleting the last remaining
// admin is refused with ErrLastAdmin so the application can never lock
// itself out.
func DeleteAdmin(ds *DataSource, id int) error {
	var total int
	if err := ds.db.QueryRow("SELECT COUNT(*) FROM admin").Scan(&total); err != nil {
		return err
	}
	if total <= 1 {
		return ErrLastAdmin
	}
	_, err := ds.db.Exec(ds.Rebind("DELETE FROM admin WHERE adm_id = ?"), id)
	return err
}
