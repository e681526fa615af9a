package integration_test

import (
	"net/http"
	"testing"

	"tekfix_jobboard/internal/config"
	"tekfix_jobboard/internal/models"
	"tekfix_jobboard/internal/services/dto"
	"tekfix_jobboard/pkg/apperrors"
	"tekfix_jobboard/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAuthFlow - регистрация, вход, /me и выход
func TestAuthFlow(t *testing.T) {
	ts := helpers.NewTestServer(t)

	registerBody := map[string]interface{}{
		"name":     "Nadia Park",
		"email":    "nadia@example.com",
		"password": "anything",
		"role":     "seeker",
	}
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var registered dto.AuthResponse
	helpers.DecodeJSON(t, body, &registered)
	assert.Equal(t, models.UserRoleSeeker, registered.User.Role)
	assert.NotEmpty(t, registered.Token)

	// повторная регистрация
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, body, "User already exists")

	// вход только с демо-паролем
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "nadia@example.com",
		"password": "anything",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	token := ts.Login(t, "nadia@example.com")

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var me models.User
	helpers.DecodeJSON(t, body, &me)
	assert.Equal(t, registered.User.ID, me.ID)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/logout", token, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)
}

func TestRegister_Validation(t *testing.T) {
	ts := helpers.NewTestServer(t)

	cases := []struct {
		name string
		body map[string]interface{}
	}{
		{"admin role", map[string]interface{}{"name": "A", "email": "a@x.io", "password": "p", "role": "admin"}},
		{"employer without company", map[string]interface{}{"name": "B", "email": "b@x.io", "password": "p", "role": "employer"}},
		{"bad email", map[string]interface{}{"name": "C", "email": "nope", "password": "p", "role": "seeker"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", tc.body)
			assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)

			var envelope apperrors.ErrorResponse
			helpers.DecodeJSON(t, body, &envelope)
			assert.Equal(t, apperrors.CodeValidationFailed, envelope.Error.Code)
		})
	}
}

func TestLogin_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	ts := helpers.NewTestServer(t)

	_, unknown := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "ghost@example.com", "password": helpers.DemoPassword,
	})
	_, wrong := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "john@example.com", "password": "bad",
	})
	assert.JSONEq(t, unknown, wrong)
}

func TestMe_RequiresToken(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", "forged.token.value", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestLogin_RateLimited(t *testing.T) {
	ts := helpers.NewTestServer(t, func(cfg *config.Config) {
		cfg.RateLimit.AuthPerMinute = 1
		cfg.RateLimit.Burst = 1
	})

	body := map[string]string{"email": "john@example.com", "password": helpers.DemoPassword}
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", body)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", body)
	assert.Equal(t, http.StatusTooManyRequests, res.StatusCode)
}

func TestPlainTokenFormat(t *testing.T) {
	ts := helpers.NewTestServer(t, func(cfg *config.Config) {
		cfg.Auth.TokenFormat = "plain"
	})

	token := ts.Login(t, "employer@techcorp.com")
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "employer@techcorp.com")
}
