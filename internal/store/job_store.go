package store

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"tekfix_jobboard/internal/algorithms"
	"tekfix_jobboard/internal/logger"
	"tekfix_jobboard/internal/models"
	"tekfix_jobboard/internal/services"
	"tekfix_jobboard/internal/services/dto"
	"tekfix_jobboard/internal/session"
	"tekfix_jobboard/pkg/apperrors"
)

// JobStore держит список вакансий, фильтры и отметки об отклике
type JobStore struct {
	service services.JobService
	storage session.Storage

	dispatchMu sync.Mutex
	mu         sync.RWMutex
	state      JobState
	subs       subscribers[JobState]

	// чьи отклики сейчас загружены; пусто - никто не вошел
	owner string
}

// NewJobStore; storage может быть nil - тогда отклики не переживают процесс
func NewJobStore(service services.JobService, storage session.Storage) *JobStore {
	return &JobStore{
		service: service,
		storage: storage,
	}
}

func (s *JobStore) State() JobState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *JobStore) Subscribe(fn func(JobState)) (unsubscribe func()) {
	return s.subs.add(fn)
}

func (s *JobStore) dispatch(action JobAction) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	s.state = ReduceJobs(s.state, action)
	snapshot := s.state
	s.mu.Unlock()

	logger.Debug("job store dispatch", "action", action.Type)
	s.subs.notify(snapshot)
}

func (s *JobStore) FetchJobs(ctx context.Context) error {
	s.dispatch(JobAction{Type: ActionFetchJobsStart})

	jobs, err := s.service.GetJobs(ctx)
	if err != nil {
		s.dispatch(JobAction{Type: ActionFetchJobsFailure})
		return err
	}

	s.dispatch(JobAction{Type: ActionFetchJobsSuccess, Jobs: jobs})
	return nil
}

func (s *JobStore) CreateJob(ctx context.Context, input *dto.JobInput) (*models.Job, error) {
	job, err := s.service.CreateJob(ctx, input)
	if err != nil {
		return nil, err
	}
	s.dispatch(JobAction{Type: ActionAddJob, Job: job})
	return job, nil
}

// UpdateJob; при ошибке сервиса список не меняется
func (s *JobStore) UpdateJob(ctx context.Context, id string, patch *dto.JobPatch) (*models.Job, error) {
	job, err := s.service.UpdateJob(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.dispatch(JobAction{Type: ActionUpdateJob, Job: job})
	return job, nil
}

func (s *JobStore) DeleteJob(ctx context.Context, id string) error {
	if err := s.service.DeleteJob(ctx, id); err != nil {
		return err
	}
	s.dispatch(JobAction{Type: ActionDeleteJob, JobID: id})
	return nil
}

func (s *JobStore) SetSearchTerm(term string) {
	s.dispatch(JobAction{Type: ActionSetSearchTerm, Value: term})
}

func (s *JobStore) SetLocationFilter(location string) {
	s.dispatch(JobAction{Type: ActionSetLocation, Value: location})
}

func (s *JobStore) SetTypeFilter(jobType string) {
	s.dispatch(JobAction{Type: ActionSetType, Value: jobType})
}

// FilteredJobs - производный список по текущим фильтрам
func (s *JobStore) FilteredJobs() []models.Job {
	st := s.State()
	return algorithms.FilterJobs(st.Jobs, st.Filter)
}

// JobsPostedBy - вакансии одного работодателя из загруженного списка
func (s *JobStore) JobsPostedBy(userID string) []models.Job {
	st := s.State()
	out := make([]models.Job, 0)
	for _, j := range st.Jobs {
		if j.PostedBy == userID {
			out = append(out, j)
		}
	}
	return out
}

// Apply отмечает отклик на вакансию. Отклик живет только на клиенте.
func (s *JobStore) Apply(jobID string) error {
	found := false
	for _, j := range s.State().Jobs {
		if j.ID == jobID {
			found = true
			break
		}
	}
	if !found {
		return apperrors.ErrJobNotFound
	}

	s.dispatch(JobAction{Type: ActionJobApplied, JobID: jobID})
	return s.saveApplied()
}

func (s *JobStore) HasApplied(jobID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.state.Applied[jobID]
	return ok
}

// AppliedIDs - отсортированный список откликов
func (s *JobStore) AppliedIDs() []string {
	s.mu.RLock()
	ids := make([]string, 0, len(s.state.Applied))
	for id := range s.state.Applied {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	sort.Strings(ids)
	return ids
}

// FollowAuth переключает отклики вслед за пользователем auth-стора:
// вход подгружает его отклики, выход их сбрасывает
func (s *JobStore) FollowAuth(auth *AuthStore) (unsubscribe func()) {
	follow := func(st AuthState) {
		userID := ""
		if st.User != nil {
			userID = st.User.ID
		}
		if err := s.SetOwner(userID); err != nil {
			logger.Warn("Failed to load applied jobs", "user_id", userID, "error", err)
		}
	}

	unsubscribe = auth.Subscribe(follow)
	follow(auth.State())
	return unsubscribe
}

// SetOwner загружает отклики пользователя userID вместо текущих
func (s *JobStore) SetOwner(userID string) error {
	s.mu.Lock()
	if s.owner == userID {
		s.mu.Unlock()
		return nil
	}
	s.owner = userID
	s.mu.Unlock()

	s.dispatch(JobAction{Type: ActionAppliedLoaded})
	return s.RestoreApplied()
}

func (s *JobStore) currentOwner() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.owner
}

// RestoreApplied читает отклики текущего пользователя из storage
func (s *JobStore) RestoreApplied() error {
	owner := s.currentOwner()
	if s.storage == nil || owner == "" {
		return nil
	}

	raw, ok, err := s.storage.Get(session.AppliedKey(owner))
	if err != nil || !ok {
		return err
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		logger.Warn("Ignoring corrupt applied list", "error", err)
		return nil
	}

	s.dispatch(JobAction{Type: ActionAppliedLoaded, JobIDs: ids})
	return nil
}

func (s *JobStore) saveApplied() error {
	owner := s.currentOwner()
	if s.storage == nil || owner == "" {
		return nil
	}

	raw, err := json.Marshal(s.AppliedIDs())
	if err != nil {
		return err
	}
	return s.storage.Set(session.AppliedKey(owner), string(raw))
}
