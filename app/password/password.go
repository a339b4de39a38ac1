// Package password hashes and verifies admin credentials with bcrypt.
package password

import "golang.org/x/crypto/bcrypt"

// bcryptCost trades login latency for brute-force resistance.
const bcryptCost = 14

// Hash returns the bcrypt hash of plain, with a fresh random salt embedded
// in the result.
func Hash(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	return string(bytes), err
}

// Check reports whether plain matches the stored bcrypt hash.
func Check(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
