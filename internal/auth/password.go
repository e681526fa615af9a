package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword создает bcrypt хеш пароля
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

// CheckPasswordHash проверяет пароль против хеша
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// SentinelPassword - единственный пароль демо-доски.
// Паролей пользователей нет: любой существующий email входит с этим значением.
// Значение хранится только в виде bcrypt хеша.
type SentinelPassword struct {
	hash string
}

func NewSentinelPassword(password string, cost int) (*SentinelPassword, error) {
	if password == "" {
		return nil, errors.New("sentinel password must not be empty")
	}
	hash, err := HashPassword(password, cost)
	if err != nil {
		return nil, err
	}
	return &SentinelPassword{hash: hash}, nil
}

func (p *SentinelPassword) Matches(password string) bool {
	return CheckPasswordHash(password, p.hash)
}
