package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"tekfix_jobboard/internal/models"
	"tekfix_jobboard/internal/services"
	"tekfix_jobboard/internal/services/dto"
)

var (
	_ services.AuthService  = (*Client)(nil)
	_ services.JobService   = (*Client)(nil)
	_ services.AdminService = (*Client)(nil)
)

// --- auth ---

func (c *Client) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var resp dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	var resp dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout сообщает серверу о выходе; сессию клиента чистит стор
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

// Me - пользователь, которому принадлежит текущий токен
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAllUsers доступен только администратору
func (c *Client) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return c.SearchUsers(ctx, "")
}

func (c *Client) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(userID), nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateUserProfile(ctx context.Context, userID string, patch *dto.ProfilePatch) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(userID)+"/profile", nil, patch, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// --- jobs ---

func (c *Client) GetJobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := c.do(ctx, http.MethodGet, "/jobs", nil, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *Client) GetJobByID(ctx context.Context, jobID string) (*models.Job, error) {
	var job models.Job
	if err := c.do(ctx, http.MethodGet, "/jobs/"+url.PathEscape(jobID), nil, nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// GetJobsByPoster фильтрует публичный список, авторизация не нужна
func (c *Client) GetJobsByPoster(ctx context.Context, userID string) ([]models.Job, error) {
	jobs, err := c.GetJobs(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.PostedBy == userID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (c *Client) CreateJob(ctx context.Context, input *dto.JobInput) (*models.Job, error) {
	var job models.Job
	if err := c.do(ctx, http.MethodPost, "/jobs", nil, input, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) UpdateJob(ctx context.Context, jobID string, patch *dto.JobPatch) (*models.Job, error) {
	var job models.Job
	if err := c.do(ctx, http.MethodPut, "/jobs/"+url.PathEscape(jobID), nil, patch, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) DeleteJob(ctx context.Context, jobID string) error {
	return c.do(ctx, http.MethodDelete, "/jobs/"+url.PathEscape(jobID), nil, nil, nil)
}

// --- admin ---

func (c *Client) Overview(ctx context.Context) (*dto.AdminStats, error) {
	var stats dto.AdminStats
	if err := c.do(ctx, http.MethodGet, "/admin/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/admin/users", searchQuery(query), nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) SearchJobs(ctx context.Context, query string) ([]models.Job, error) {
	var jobs []models.Job
	if err := c.do(ctx, http.MethodGet, "/admin/jobs", searchQuery(query), nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func searchQuery(q string) url.Values {
	if q == "" {
		return nil
	}
	return url.Values{"q": []string{q}}
}
