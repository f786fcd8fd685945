package tools

import "golang.org/x/crypto/bcrypt"

// PasswordEncrypt hashes a plaintext password with bcrypt.
func PasswordEncrypt(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	PanicOnErr(err)
	return string(hash)
}

// PasswordCompare reports whether plaintext matches the stored bcrypt hash.
func PasswordCompare(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
