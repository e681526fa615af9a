package auth

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"tekfix_jobboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var employer = &models.User{
	BaseModel: models.BaseModel{ID: "2"},
	Email:     "employer@techcorp.com",
	Role:      models.UserRoleEmployer,
}

func TestSentinelPassword(t *testing.T) {
	p, err := NewSentinelPassword("password", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, p.Matches("password"))
	assert.False(t, p.Matches("Password"))
	assert.False(t, p.Matches(""))

	_, err = NewSentinelPassword("", bcrypt.MinCost)
	assert.Error(t, err)
}

func TestPlainCodec_RoundTripAndFormat(t *testing.T) {
	codec, err := NewTokenCodec(TokenFormatPlain, "", 0)
	require.NoError(t, err)

	token, err := codec.Issue(employer)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(token)
	require.NoError(t, err)
	var payload map[string]string
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, map[string]string{"id": "2", "email": "employer@techcorp.com", "role": "employer"}, payload)

	claims, err := codec.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "2", claims.UserID)
	assert.Equal(t, models.UserRoleEmployer, claims.Role)

	_, err = codec.Parse("not base64!")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// подделанная роль не проходит разбор
	forged := base64.StdEncoding.EncodeToString([]byte(`{"id":"3","email":"john@example.com","role":"root"}`))
	_, err = codec.Parse(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTCodec(t *testing.T) {
	codec, err := NewTokenCodec(TokenFormatJWT, "secret", time.Hour)
	require.NoError(t, err)

	token, err := codec.Issue(employer)
	require.NoError(t, err)

	claims, err := codec.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "2", claims.UserID)
	assert.Equal(t, "employer@techcorp.com", claims.Email)

	other, _ := NewTokenCodec(TokenFormatJWT, "other-secret", time.Hour)
	_, err = other.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	plain, _ := PlainCodec{}.Issue(employer)
	_, err = codec.Parse(plain)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTCodec_Expired(t *testing.T) {
	// токен выпущен два часа назад и жил час
	issuedAt := time.Now().Add(-2 * time.Hour)
	codec := &JWTCodec{secret: []byte("secret"), ttl: time.Hour, now: func() time.Time { return issuedAt }}

	token, err := codec.Issue(employer)
	require.NoError(t, err)

	_, err = codec.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestNewTokenCodec_Errors(t *testing.T) {
	_, err := NewTokenCodec(TokenFormatJWT, "", time.Hour)
	assert.Error(t, err)

	_, err = NewTokenCodec("rot13", "x", time.Hour)
	assert.Error(t, err)
}

func TestPermissions(t *testing.T) {
	seeker := &Claims{UserID: "3", Role: models.UserRoleSeeker}
	admin := &Claims{UserID: "1", Role: models.UserRoleAdmin}

	assert.False(t, CanPerformAction(seeker, PermJobsWrite))
	assert.True(t, CanPerformAction(seeker, PermJobsApply))
	assert.True(t, IsAdmin(admin))
	assert.True(t, CanEditProfile(seeker, "3"))
	assert.False(t, CanEditProfile(seeker, "4"))
	assert.True(t, CanEditProfile(admin, "4"))
	assert.False(t, CanEditProfile(nil, "4"))
}
