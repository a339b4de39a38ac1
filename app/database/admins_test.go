package database

import (
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/IbnIssah/SchoolManagementSystem/app/models"
	"github.com/IbnIssah/SchoolManagementSystem/app/password"
)

func TestCreateAndFetchAdmin(t *testing.T) {
	ds := newTestDataSource(t)

	a := &models.Admin{Name: "Alice Arthur", Username: "alice"}
	if err := CreateAdmin(ds, a, "secret1"); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}

	got, err := GetAdminByUsername(ds, "alice")
	if err != nil {
		t.Fatalf("GetAdminByUsername: %v", err)
	}
	if !strings.HasPrefix(got.PasswordHash, "$2") {
		t.Errorf("stored password is not a bcrypt hash: %q", got.PasswordHash)
	}
	if !password.Check("secret1", got.PasswordHash) {
		t.Error("stored hash does not verify against the original password")
	}

	if _, err := GetAdminByUsername(ds, "nobody"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows for unknown username, got %v", err)
	}
}

func TestCreateAdminDuplicateUsername(t *testing.T) {
	ds := newTestDataSource(t)

	if err := CreateAdmin(ds, &models.Admin{Name: "Alice", Username: "alice"}, "secret1"); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}
	err := CreateAdmin(ds, &models.Admin{Name: "Impostor", Username: "alice"}, "other")
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestFetchAllAdminsOmitsHashes(t *testing.T) {
	ds := newTestDataSource(t)
	if err := CreateAdmin(ds, &models.Admin{Name: "Alice", Username: "alice"}, "secret1"); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}

	all, err := FetchAllAdmins(ds)
	if err != nil {
		t.Fatalf("FetchAllAdmins: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 admin, got %d", len(all))
	}
	if all[0].PasswordHash != "" {
		t.Errorf("FetchAllAdmins leaked a password hash")
	}
}

func TestUpdateAdminPassword(t *testing.T) {
	ds := newTestDataSource(t)
	if err := CreateAdmin(ds, &models.Admin{Name: "Alice", Username: "alice"}, "secret1"); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}
	a, _ := GetAdminByUsername(ds, "alice")

	a.Name = "Alice A."
	if err := UpdateAdmin(ds, a, ""); err != nil {
		t.Fatalf("UpdateAdmin without password: %v", err)
	}
	got, _ := GetAdminByUsername(ds, "alice")
	if got.Name != "Alice A." {
		t.Errorf("name not updated: %q", got.Name)
	}
	if got.PasswordHash != a.PasswordHash {
		t.Error("password changed even though no new one was given")
	}

	if err := UpdateAdmin(ds, a, "newpass"); err != nil {
		t.Fatalf("UpdateAdmin with password: %v", err)
	}
	got, _ = GetAdminByUsername(ds, "alice")
	if !password.Check("newpass", got.PasswordHash) {
		t.Error("new password does not verify")
	}
}

func TestDeleteAdminRefusesLastAccount(t *testing.T) {
	ds := newTestDataSource(t)
	if err := CreateAdmin(ds, &models.Admin{Name: "Alice", Username: "alice"}, "secret1"); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}
	alice, _ := GetAdminByUsername(ds, "alice")

	if err := DeleteAdmin(ds, alice.ID); !errors.Is(err, ErrLastAdmin) {
		t.Fatalf("expected ErrLastAdmin, got %v", err)
	}
	if n := countRows(t, ds, "admin"); n != 1 {
		t.Errorf("last admin was deleted anyway")
	}

	if err := CreateAdmin(ds, &models.Admin{Name: "Bob", Username: "bob"}, "secret2"); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}
	if err := DeleteAdmin(ds, alice.ID); err != nil {
		t.Fatalf("DeleteAdmin with two accounts: %v", err)
	}
	if n := countRows(t, ds, "admin"); n != 1 {
		t.Errorf("expected 1 admin left, got %d", n)
	}
}
