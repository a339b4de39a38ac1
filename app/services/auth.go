// Package services holds the business logic that sits between the
// persistence core and the outer surfaces.
package services

import (
	"database/sql"
	"errors"
	"log"
	"sync"

	"github.com/IbnIssah/SchoolManagementSystem/app/database"
	"github.com/IbnIssah/SchoolManagementSystem/app/models"
	"github.com/IbnIssah/SchoolManagementSystem/app/password"
	"github.com/IbnIssah/SchoolManagementSystem/app/settings"
)

// ErrInvalidCredentials is the single failure reported for a bad login.
// Whether the username was unknown or the password wrong is deliberately not
// distinguished.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Settings keys for the persisted session state.
const (
	loggedInKey = "admin_logged_in"
	lastUserKey = "last_admin_user"
)

// AuthService verifies admin logins and keeps the persisted session state:
// a logged-in flag and the last logged-in username survive restarts through
// the settings store.
type AuthService struct {
	ds *database.DataSource
	st *settings.Store

	mu      sync.Mutex
	current *models.Admin
}

func NewAuthService(ds *database.DataSource, st *settings.Store) *AuthService {
	return &AuthService{ds: ds, st: st}
}

// Login verifies the supplied credentials. On success the logged-in flag is
// persisted, the username recorded, and a sanitized copy of the admin
// returned. Any failure clears the flag and reports ErrInvalidCredentials.
func (s *AuthService) Login(username, plain string) (*models.Admin, error) {
	admin, err := database.GetAdminByUsername(s.ds, username)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		s.setLoggedOut()
		return nil, ErrInvalidCredentials
	}
	if !password.Check(plain, admin.PasswordHash) {
		s.setLoggedOut()
		return nil, ErrInvalidCredentials
	}

	admin.PasswordHash = ""
	s.mu.Lock()
	s.current = admin
	s.mu.Unlock()

	if err := s.st.PutBool(loggedInKey, true); err != nil {
		log.Printf("Error persisting login flag: %v", err)
	}
	if err := s.st.PutString(lastUserKey, username); err != nil {
		log.Printf("Error persisting last admin user: %v", err)
	}
	return admin, nil
}

// AttemptAutoLogin restores the session from a previous run. When the
// persisted flag is set it re-hydrates the admin identity from the recorded
// username. The flag is honored even when that username no longer resolves
// to an admin row; the session is then logged in with no attached identity.
func (s *AuthService) AttemptAutoLogin() *models.Admin {
	if !s.st.Bool(loggedInKey, false) {
		return nil
	}
	lastUser := s.st.String(lastUserKey, "")
	if lastUser != "" {
		admin, err := database.GetAdminByUsername(s.ds, lastUser)
		if err == nil {
			admin.PasswordHash = ""
			s.mu.Lock()
			s.current = admin
			s.mu.Unlock()
		} else if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("Error restoring admin session: %v", err)
		}
	}
	if err := s.st.PutBool(loggedInKey, true); err != nil {
		log.Printf("Error persisting login flag: %v", err)
	}
	return s.Current()
}

// Logout clears the persisted session state and the in-memory identity.
func (s *AuthService) Logout() {
	s.setLoggedOut()
	if err := s.st.Remove(lastUserKey); err != nil {
		log.Printf("Error clearing last admin user: %v", err)
	}
}

// IsLoggedIn reports the persisted logged-in flag.
func (s *AuthService) IsLoggedIn() bool {
	return s.st.Bool(loggedInKey, false)
}

// Current returns a copy of the logged-in admin, or nil when no identity is
// attached.
func (s *AuthService) Current() *models.Admin {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	copy := *s.current
	return &copy
}

func (s *AuthService) setLoggedOut() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	if err := s.st.PutBool(loggedInKey, false); err != nil {
		log.Printf("Error persisting login flag: %v", err)
	}
}
