package integration_test

import (
	"net/http"
	"testing"

	"tekfix_jobboard/internal/models"
	"tekfix_jobboard/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileUpdate(t *testing.T) {
	ts := helpers.NewTestServer(t)
	john := ts.Login(t, "john@example.com")

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/users/3/profile", john, map[string]interface{}{
		"bio":        "Now writing Go",
		"experience": "experienced",
		"role":       "admin",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var user models.User
	helpers.DecodeJSON(t, body, &user)
	assert.Equal(t, "Now writing Go", user.Bio)
	assert.Equal(t, models.UserRoleSeeker, user.Role)
	require.NotNil(t, user.UpdatedAt)

	// чужой профиль
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/users/4/profile", john, map[string]string{"bio": "x"})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// email другого пользователя
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/users/3/profile", john, map[string]string{"email": "sarah@example.com"})
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/users/3/profile", john, map[string]string{"experience": "guru"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// администратор может править любой профиль
	admin := ts.Login(t, "admin@tekfix.com")
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/users/4/profile", admin, map[string]string{"location": "Remote"})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/users/4", john, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"location":"Remote"`)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/users/404", john, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestAdminDashboard(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/stats", ts.Login(t, "employer@techcorp.com"), nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	admin := ts.Login(t, "admin@tekfix.com")
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/stats", admin, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{
		"totalJobs": 3,
		"totalUsers": 4,
		"employers": 1,
		"seekers": 2,
		"jobsByType": {"full-time": 2, "contract": 1}
	}`, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/users?q=example.com", admin, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var users []models.User
	helpers.DecodeJSON(t, body, &users)
	assert.Len(t, users, 2)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/jobs?q=techcorp", admin, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var jobs []models.Job
	helpers.DecodeJSON(t, body, &jobs)
	require.Len(t, jobs, 1)
	assert.Equal(t, "1", jobs[0].ID)

	// поиск по названию, а не только по компании
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/jobs?q=developer", admin, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	jobs = nil
	helpers.DecodeJSON(t, body, &jobs)
	assert.Len(t, jobs, 2)
}
