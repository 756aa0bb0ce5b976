package services

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a salted bcrypt hash of the password. bcrypt embeds
// its own per-password salt in the hash string.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plain password matches the stored
// hash. It never distinguishes "bad hash" from "wrong password" to keep a
// constant failure surface.
func VerifyPassword(storedHash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}
