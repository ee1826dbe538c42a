package service

import "golang.org/x/crypto/bcrypt"

// hashPassword derives a bcrypt digest with a fresh random salt; hashing the
// same password twice yields different digests.
func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// verifyPassword fails closed: a malformed digest is indistinguishable from a
// wrong password.
func verifyPassword(password, passwordHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil
}
