package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"tekfix_jobboard/internal/app"
	"tekfix_jobboard/internal/config"
	"tekfix_jobboard/internal/logger"
	"tekfix_jobboard/internal/services/dto"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const DemoPassword = "password"

// TestServer - полный роутер поверх in-memory репозиториев
type TestServer struct {
	Server *httptest.Server
	App    *app.App

	cancel context.CancelFunc
}

// TestConfig - конфиг без задержек и без лимита на вход
func TestConfig() *config.Config {
	cfg := config.Default()
	cfg.Server.Env = "test"
	cfg.Database.Driver = "memory"
	cfg.Auth.DemoPassword = DemoPassword
	cfg.Auth.BcryptCost = bcrypt.MinCost
	cfg.Latency.AuthMS = 0
	cfg.Latency.UsersMS = 0
	cfg.Latency.JobsMS = 0
	cfg.RateLimit.AuthPerMinute = 0
	return cfg
}

// NewTestServer поднимает сервер с тестовым конфигом; mutate может его поправить
func NewTestServer(t *testing.T, mutate ...func(*config.Config)) *TestServer {
	t.Helper()
	logger.Init("test")

	cfg := TestConfig()
	for _, m := range mutate {
		m(cfg)
	}

	ctx, cancel := context.WithCancel(context.Background())
	application, err := app.New(ctx, cfg)
	if err != nil {
		cancel()
		t.Fatalf("Не удалось собрать приложение: %v", err)
	}

	ts := &TestServer{
		Server: httptest.NewServer(application.Router),
		App:    application,
		cancel: cancel,
	}
	t.Cleanup(ts.Close)
	return ts
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	ts.cancel()
	ts.App.Close()
}

// SendRequest отправляет JSON и возвращает ответ и тело строкой
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Ошибка отправки HTTP-запроса: %v", err)
	}
	defer res.Body.Close()

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}
	return res, string(resBodyBytes)
}

// Login входит демо-пользователем и возвращает токен
func (ts *TestServer) Login(t *testing.T, email string) string {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": DemoPassword,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var auth dto.AuthResponse
	require.NoError(t, json.Unmarshal([]byte(body), &auth))
	return auth.Token
}

// DecodeJSON разбирает тело ответа в out
func DecodeJSON(t *testing.T, body string, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(body), out), body)
}
