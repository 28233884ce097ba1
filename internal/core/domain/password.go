package domain

import "golang.org/x/crypto/bcrypt"

// passwordCost matches the work factor the clinic has always used for
// stored credentials; raising it invalidates nothing but slows logins.
const passwordCost = 10

// HashPassword derives a salted one-way hash from a plaintext password.
// Only the hash is ever persisted.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), passwordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored hash.
// A mismatch is a false return, never an error.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
