package repositories

import (
	"sync"
	"time"

	"tekfix_jobboard/internal/algorithms"
	"tekfix_jobboard/internal/models"
)

// MemoryUserRepository - "база" пользователей в памяти процесса.
// Создается один раз при старте и передается в сервисы.
// Наружу отдаются только копии.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users []models.User
}

func NewMemoryUserRepository(seed []models.User) *MemoryUserRepository {
	r := &MemoryUserRepository{users: make([]models.User, 0, len(seed))}
	for i := range seed {
		r.users = append(r.users, *seed[i].Clone())
	}
	return r
}

func (r *MemoryUserRepository) indexOf(id string) int {
	for i := range r.users {
		if r.users[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *MemoryUserRepository) FindByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.users[i].Clone(), nil
	}
	return nil, ErrUserNotFound
}

func (r *MemoryUserRepository) FindByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].Email == email {
			return r.users[i].Clone(), nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *MemoryUserRepository) FindAll() ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.User, 0, len(r.users))
	for i := range r.users {
		out = append(out, *r.users[i].Clone())
	}
	return out, nil
}

func (r *MemoryUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Email == user.Email {
			return ErrUserAlreadyExists
		}
	}
	r.users = append(r.users, *user.Clone())
	return nil
}

func (r *MemoryUserRepository) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(user.ID)
	if i < 0 {
		return ErrUserNotFound
	}

	updated := user.Clone()
	// роль и дата создания не меняются
	updated.Role = r.users[i].Role
	updated.CreatedAt = r.users[i].CreatedAt
	r.users[i] = *updated
	return nil
}

func (r *MemoryUserRepository) CountAll() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.users)), nil
}

func (r *MemoryUserRepository) CountByRole(role models.UserRole) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for i := range r.users {
		if r.users[i].Role == role {
			count++
		}
	}
	return count, nil
}

func (r *MemoryUserRepository) Search(query string) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.User, 0)
	for i := range r.users {
		if algorithms.MatchAdminUser(&r.users[i], query) {
			out = append(out, *r.users[i].Clone())
		}
	}
	return out, nil
}

// MemoryJobRepository хранит вакансии в порядке списка: новые в начале
type MemoryJobRepository struct {
	mu   sync.RWMutex
	jobs []models.Job
}

func NewMemoryJobRepository(seed []models.Job) *MemoryJobRepository {
	jobs := make([]models.Job, len(seed))
	copy(jobs, seed)
	return &MemoryJobRepository{jobs: jobs}
}

func (r *MemoryJobRepository) indexOf(id string) int {
	for i := range r.jobs {
		if r.jobs[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *MemoryJobRepository) snapshot(keep func(*models.Job) bool) []models.Job {
	out := make([]models.Job, 0, len(r.jobs))
	for i := range r.jobs {
		if keep == nil || keep(&r.jobs[i]) {
			out = append(out, r.jobs[i])
		}
	}
	return out
}

func (r *MemoryJobRepository) FindAll() ([]models.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(nil), nil
}

func (r *MemoryJobRepository) FindByID(id string) (*models.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.jobs[i].Clone(), nil
	}
	return nil, ErrJobNotFound
}

func (r *MemoryJobRepository) FindByPoster(userID string) ([]models.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(func(j *models.Job) bool { return j.PostedBy == userID }), nil
}

func (r *MemoryJobRepository) Create(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.jobs = append([]models.Job{*job.Clone()}, r.jobs...)
	return nil
}

func (r *MemoryJobRepository) Update(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(job.ID)
	if i < 0 {
		return ErrJobNotFound
	}

	updated := job.Clone()
	updated.PostedBy = r.jobs[i].PostedBy
	updated.CreatedAt = r.jobs[i].CreatedAt
	r.jobs[i] = *updated
	return nil
}

func (r *MemoryJobRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrJobNotFound
	}
	r.jobs = append(r.jobs[:i:i], r.jobs[i+1:]...)
	return nil
}

func (r *MemoryJobRepository) CountAll() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.jobs)), nil
}

func (r *MemoryJobRepository) CountByType() (map[models.JobType]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[models.JobType]int64)
	for i := range r.jobs {
		result[r.jobs[i].Type]++
	}
	return result, nil
}

func (r *MemoryJobRepository) Search(query string) ([]models.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(func(j *models.Job) bool { return algorithms.MatchAdminJob(j, query) }), nil
}

// NewSeededMemoryRepositories - пара репозиториев с демо-данными
func NewSeededMemoryRepositories(now time.Time) (*MemoryUserRepository, *MemoryJobRepository) {
	return NewMemoryUserRepository(DemoUsers(now)), NewMemoryJobRepository(DemoJobs(now))
}

var (
	_ UserRepository = (*MemoryUserRepository)(nil)
	_ JobRepository  = (*MemoryJobRepository)(nil)
)
