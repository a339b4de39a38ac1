package services

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/IbnIssah/SchoolManagementSystem/app/database"
	"github.com/IbnIssah/SchoolManagementSystem/app/models"
	"github.com/IbnIssah/SchoolManagementSystem/app/settings"
)

func newTestAuth(t *testing.T) (*AuthService, *database.DataSource, *settings.Store) {
	t.Helper()
	dir := t.TempDir()
	ds, err := database.OpenSQLite(filepath.Join(dir, "school.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(ds.Shutdown)
	if err := database.EnsureSchema(ds); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	st, err := settings.Open(filepath.Join(dir, "settings.json"))
	if err != nil {
		t.Fatalf("settings.Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return NewAuthService(ds, st), ds, st
}

func TestLoginSuccessPersistsSession(t *testing.T) {
	svc, ds, st := newTestAuth(t)
	if err := database.CreateAdmin(ds, &models.Admin{Name: "Alice Arthur", Username: "alice"}, "secret1"); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}

	admin, err := svc.Login("alice", "secret1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if admin.Username != "alice" || admin.Name != "Alice Arthur" {
		t.Errorf("unexpected identity: %+v", admin)
	}
	if admin.PasswordHash != "" {
		t.Error("Login leaked the password hash")
	}
	if !svc.IsLoggedIn() {
		t.Error("logged-in flag not set")
	}
	if got := st.String("last_admin_user", ""); got != "alice" {
		t.Errorf("last user = %q, want alice", got)
	}
	if cur := svc.Current(); cur == nil || cur.Username != "alice" {
		t.Errorf("Current() = %+v", cur)
	}
}

func TestLoginFailureClearsFlag(t *testing.T) {
	svc, ds, _ := newTestAuth(t)
	if err := database.CreateAdmin(ds, &models.Admin{Name: "Alice", Username: "alice"}, "secret1"); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}
	if _, err := svc.Login("alice", "secret1"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if _, err := svc.Login("alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if svc.IsLoggedIn() {
		t.Error("flag still set after failed login")
	}
	if svc.Current() != nil {
		t.Error("identity still attached after failed login")
	}

	if _, err := svc.Login("nobody", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown username: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAutoLoginRestoresSession(t *testing.T) {
	svc, ds, st := newTestAuth(t)
	if err := database.CreateAdmin(ds, &models.Admin{Name: "Alice", Username: "alice"}, "secret1"); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}
	if _, err := svc.Login("alice", "secret1"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	// A fresh service over the same stores stands in for a restart.
	restarted := NewAuthService(ds, st)
	admin := restarted.AttemptAutoLogin()
	if admin == nil || admin.Username != "alice" {
		t.Fatalf("auto-login identity = %+v", admin)
	}
	if !restarted.IsLoggedIn() {
		t.Error("flag lost across restart")
	}
}

func TestAutoLoginHonorsFlagWithoutIdentity(t *testing.T) {
	svc, _, st := newTestAuth(t)
	if err := st.PutBool("admin_logged_in", true); err != nil {
		t.Fatalf("PutBool: %v", err)
	}
	if err := st.PutString("last_admin_user", "ghost"); err != nil {
		t.Fatalf("PutString: %v", err)
	}

	admin := svc.AttemptAutoLogin()
	if admin != nil {
		t.Errorf("expected no identity for an unresolvable username, got %+v", admin)
	}
	if !svc.IsLoggedIn() {
		t.Error("persisted flag should still count as logged in")
	}
}

func TestAutoLoginWithoutFlag(t *testing.T) {
	svc, _, _ := newTestAuth(t)
	if admin := svc.AttemptAutoLogin(); admin != nil {
		t.Errorf("expected nil without the persisted flag, got %+v", admin)
	}
	if svc.IsLoggedIn() {
		t.Error("IsLoggedIn should be false on a fresh store")
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	svc, ds, st := newTestAuth(t)
	if err := database.CreateAdmin(ds, &models.Admin{Name: "Alice", Username: "alice"}, "secret1"); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}
	if _, err := svc.Login("alice", "secret1"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	svc.Logout()
	if svc.IsLoggedIn() {
		t.Error("flag still set after logout")
	}
	if svc.Current() != nil {
		t.Error("identity still attached after logout")
	}
	if got := st.String("last_admin_user", ""); got != "" {
		t.Errorf("last user not cleared: %q", got)
	}
}
