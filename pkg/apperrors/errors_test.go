package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_IsMatchesByCodeAndDomain(t *testing.T) {
	decoded := New(CodeNotFound, "job", "Job not found", http.StatusNotFound)

	assert.True(t, Is(decoded, ErrJobNotFound))
	assert.False(t, Is(decoded, ErrUserNotFound))

	wrapped := fmt.Errorf("update: %w", decoded)
	assert.True(t, Is(wrapped, ErrJobNotFound))
}

func TestAppError_WithDetailsDoesNotMutateSentinel(t *testing.T) {
	withDetails := ErrEmailAlreadyExists.WithDetails(map[string]string{"email": "taken"})

	assert.Nil(t, ErrEmailAlreadyExists.Details)
	assert.NotNil(t, withDetails.Details)
	assert.True(t, Is(withDetails, ErrEmailAlreadyExists))
}

func TestAsAppError(t *testing.T) {
	appErr, ok := AsAppError(fmt.Errorf("login: %w", ErrInvalidCredentials))
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := InternalError(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
}
