package auth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tekfix_jobboard/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

const (
	TokenFormatJWT   = "jwt"
	TokenFormatPlain = "plain"
)

// Claims - то, что зашито в токен: id, email и роль
type Claims struct {
	UserID string          `json:"id"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
}

// TokenCodec выпускает и разбирает токены сессии
type TokenCodec interface {
	Issue(user *models.User) (string, error)
	Parse(token string) (*Claims, error)
}

// NewTokenCodec выбирает кодек по формату из конфига
func NewTokenCodec(format, secret string, ttl time.Duration) (TokenCodec, error) {
	switch format {
	case TokenFormatJWT, "":
		if secret == "" {
			return nil, errors.New("jwt secret is required")
		}
		return &JWTCodec{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
	case TokenFormatPlain:
		return PlainCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown token format: %s", format)
	}
}

// PlainCodec - base64 от JSON {id,email,role} без подписи.
// Любой может подделать такой токен, формат только для демо.
type PlainCodec struct{}

func (PlainCodec) Issue(user *models.User) (string, error) {
	payload, err := json.Marshal(Claims{UserID: user.ID, Email: user.Email, Role: user.Role})
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(payload), nil
}

func (PlainCodec) Parse(token string) (*Claims, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	var claims Claims
	if err := json.Unmarshal(raw, &claims); err != nil || claims.UserID == "" || !claims.Role.IsValid() {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}

// JWTCodec - HS256 с теми же полями и сроком жизни
type JWTCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type jwtClaims struct {
	Claims
	jwt.RegisteredClaims
}

func (c *JWTCodec) Issue(user *models.User) (string, error) {
	now := time.Now()
	if c.now != nil {
		now = c.now()
	}
	claims := jwtClaims{
		Claims: Claims{UserID: user.ID, Email: user.Email, Role: user.Role},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  user.ID,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if c.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(c.ttl))
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

func (c *JWTCodec) Parse(token string) (*Claims, error) {
	var claims jwtClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" || !claims.Role.IsValid() {
		return nil, ErrInvalidToken
	}
	return &claims.Claims, nil
}
