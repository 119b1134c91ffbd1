package service

import "golang.org/x/crypto/bcrypt"

// bcryptCost mirrors the salt rounds used by the original deployment.
const bcryptCost = 12

// HashPassword computes a salted one-way bcrypt digest of plain.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches the stored hash. It returns
// false for any mismatch or malformed hash and never panics on a wrong
// password.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
