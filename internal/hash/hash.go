package hash

import "golang.org/x/crypto/bcrypt"

// One-time codes are never kept in clear text while a registration is
// pending; only the bcrypt hash is held until the second step.

func HashCode(code string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

func CheckCode(hash, code string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}
