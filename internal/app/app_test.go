package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tekfix_jobboard/internal/config"
	"tekfix_jobboard/internal/logger"
	"tekfix_jobboard/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Server.Env = "test"
	cfg.Latency.AuthMS = 0
	cfg.Latency.UsersMS = 0
	cfg.Latency.JobsMS = 0
	cfg.Auth.BcryptCost = 4
	return cfg
}

func TestNew_MemoryDriver(t *testing.T) {
	logger.Init("test")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := New(ctx, testConfig())
	require.NoError(t, err)
	defer application.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	application.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestNew_ListsSeededJobs(t *testing.T) {
	logger.Init("test")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := New(ctx, testConfig())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs?type=full-time", nil)
	application.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var jobs []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &jobs))
	require.Len(t, jobs, 2)
	assert.Equal(t, "1", jobs[0]["id"])
	assert.Equal(t, "2", jobs[1]["id"])
}

func TestNew_RejectsUnknownTokenFormat(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.TokenFormat = "opaque"

	_, err := New(context.Background(), cfg)
	assert.Error(t, err)
}

func TestNewLocalServices_Login(t *testing.T) {
	logger.Init("test")
	container, closer, err := NewLocalServices(testConfig())
	require.NoError(t, err)
	defer closer()

	users, err := container.AuthService.GetAllUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 4)

	resp, err := container.AuthService.Login(context.Background(), &dto.LoginRequest{
		Email:    "john@example.com",
		Password: "password",
	})
	require.NoError(t, err)
	assert.Equal(t, "3", resp.User.ID)
	assert.NotEmpty(t, resp.Token)
}
