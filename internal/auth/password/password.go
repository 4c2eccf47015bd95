// Package password wraps the one-way credential comparison capability.
package password

import "golang.org/x/crypto/bcrypt"

// Hash returns the bcrypt hash stored for dashboard accounts.
func Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify checks whether a plaintext password matches the stored hash.
func Verify(password, encoded string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password)) == nil
}
