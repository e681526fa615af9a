package apiclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tekfix_jobboard/internal/apiclient"
	"tekfix_jobboard/internal/models"
	"tekfix_jobboard/internal/services/dto"
	"tekfix_jobboard/internal/session"
	"tekfix_jobboard/internal/store"
	"tekfix_jobboard/pkg/apperrors"
	"tekfix_jobboard/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newClient(t *testing.T) (*apiclient.Client, *string) {
	t.Helper()
	ts := helpers.NewTestServer(t)

	token := new(string)
	client := apiclient.New(ts.Server.URL, 5*time.Second, func() string { return *token })
	return client, token
}

func TestClient_LoginAndSentinelErrors(t *testing.T) {
	client, token := newClient(t)
	ctx := context.Background()

	_, err := client.Login(ctx, &dto.LoginRequest{Email: "john@example.com", Password: "nope"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidCredentials))

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode)

	resp, err := client.Login(ctx, &dto.LoginRequest{Email: "john@example.com", Password: helpers.DemoPassword})
	require.NoError(t, err)
	assert.Equal(t, "3", resp.User.ID)
	*token = resp.Token

	me, err := client.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", me.Email)

	assert.NoError(t, client.Logout(ctx))
}

func TestClient_RegisterDuplicate(t *testing.T) {
	client, _ := newClient(t)

	_, err := client.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Again",
		Email:    "sarah@example.com",
		Password: "x",
		Role:     models.UserRoleSeeker,
	})
	assert.True(t, apperrors.Is(err, apperrors.ErrEmailAlreadyExists))
}

func TestClient_JobLifecycle(t *testing.T) {
	client, token := newClient(t)
	ctx := context.Background()

	resp, err := client.Login(ctx, &dto.LoginRequest{Email: "employer@techcorp.com", Password: helpers.DemoPassword})
	require.NoError(t, err)
	*token = resp.Token

	job, err := client.CreateJob(ctx, &dto.JobInput{
		Title:       "Platform Engineer",
		Description: "Kubernetes and Go",
		Company:     "TechCorp Solutions",
		Location:    "Remote",
		Type:        models.JobTypeContract,
	})
	require.NoError(t, err)
	assert.Equal(t, "2", job.PostedBy)

	jobs, err := client.GetJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 4)
	assert.Equal(t, job.ID, jobs[0].ID)

	mine, err := client.GetJobsByPoster(ctx, "2")
	require.NoError(t, err)
	assert.Len(t, mine, 4)

	updated, err := client.UpdateJob(ctx, job.ID, &dto.JobPatch{Salary: strPtr("$90/h")})
	require.NoError(t, err)
	assert.Equal(t, "$90/h", updated.Salary)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	_, err = client.UpdateJob(ctx, "missing", &dto.JobPatch{Salary: strPtr("x")})
	assert.True(t, apperrors.Is(err, apperrors.ErrJobNotFound))

	require.NoError(t, client.DeleteJob(ctx, job.ID))
	_, err = client.GetJobByID(ctx, job.ID)
	assert.True(t, apperrors.Is(err, apperrors.ErrJobNotFound))
}

func TestClient_AdminEndpoints(t *testing.T) {
	client, token := newClient(t)
	ctx := context.Background()

	resp, err := client.Login(ctx, &dto.LoginRequest{Email: "john@example.com", Password: helpers.DemoPassword})
	require.NoError(t, err)
	*token = resp.Token

	_, err = client.Overview(ctx)
	assert.True(t, apperrors.Is(err, apperrors.ErrInsufficientPermissions))

	resp, err = client.Login(ctx, &dto.LoginRequest{Email: "admin@tekfix.com", Password: helpers.DemoPassword})
	require.NoError(t, err)
	*token = resp.Token

	stats, err := client.Overview(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalJobs)
	assert.EqualValues(t, 4, stats.TotalUsers)

	users, err := client.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 4)

	found, err := client.SearchUsers(ctx, "SARAH")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "4", found[0].ID)

	jobs, err := client.SearchJobs(ctx, "designer")
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "3", jobs[0].ID)
}

func TestClient_DrivesStores(t *testing.T) {
	client, token := newClient(t)
	ctx := context.Background()

	authStore := store.NewAuthStore(client, session.NewMemoryStorage())
	unsubscribe := authStore.Subscribe(func(st store.AuthState) { *token = st.Token })
	defer unsubscribe()

	require.NoError(t, authStore.Login(ctx, "sarah@example.com", helpers.DemoPassword))

	user, err := authStore.UpdateProfile(ctx, &dto.ProfilePatch{Location: strPtr("Remote")})
	require.NoError(t, err)
	assert.Equal(t, "Remote", user.Location)

	jobStore := store.NewJobStore(client, nil)
	require.NoError(t, jobStore.FetchJobs(ctx))
	jobStore.SetTypeFilter(string(models.JobTypeContract))
	filtered := jobStore.FilteredJobs()
	require.Len(t, filtered, 1)
	assert.Equal(t, "3", filtered[0].ID)
}

func TestClient_UnexpectedErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := apiclient.New(srv.URL, time.Second, nil)
	_, err := client.GetJobs(context.Background())
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeUnknownError, appErr.Code)
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPCode)
}
