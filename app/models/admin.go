package models

// Admin is an administrator account. PasswordHash holds the stored bcrypt
// hash and is never serialised; repository reads that list admins leave it
// empty.
type Admin struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
