package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const maxPasswordLen = 64

func Hash(password string, cost int) (string, error) {
	if password == "" {
		return "", errors.New("password is required")
	}
	if len(password) > maxPasswordLen {
		return "", errors.New("password too long, max 64 characters")
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

func CheckHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
