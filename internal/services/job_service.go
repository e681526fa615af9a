package services

import (
	"context"
	"time"

	"tekfix_jobboard/internal/logger"
	"tekfix_jobboard/internal/models"
	"tekfix_jobboard/internal/repositories"
	"tekfix_jobboard/internal/services/dto"
	"tekfix_jobboard/pkg/apperrors"
)

type JobService interface {
	GetJobs(ctx context.Context) ([]models.Job, error)
	GetJobByID(ctx context.Context, jobID string) (*models.Job, error)
	GetJobsByPoster(ctx context.Context, userID string) ([]models.Job, error)
	CreateJob(ctx context.Context, input *dto.JobInput) (*models.Job, error)
	UpdateJob(ctx context.Context, jobID string, patch *dto.JobPatch) (*models.Job, error)
	DeleteJob(ctx context.Context, jobID string) error
}

// JobEventPublisher получает событие после каждой успешной мутации
type JobEventPublisher interface {
	PublishJobEvent(event dto.JobEvent)
}

type JobServiceImpl struct {
	jobRepo   repositories.JobRepository
	publisher JobEventPublisher
	latency   time.Duration
	ids       *idGenerator
	now       func() time.Time
}

func NewJobService(jobRepo repositories.JobRepository, publisher JobEventPublisher, latency time.Duration) *JobServiceImpl {
	return &JobServiceImpl{
		jobRepo:   jobRepo,
		publisher: publisher,
		latency:   latency,
		ids:       newIDGenerator(time.Now),
		now:       time.Now,
	}
}

func (s *JobServiceImpl) GetJobs(ctx context.Context) ([]models.Job, error) {
	if err := simulateLatency(ctx, s.latency, "jobs", "GetJobs"); err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *JobServiceImpl) GetJobByID(ctx context.Context, jobID string) (*models.Job, error) {
	if err := simulateLatency(ctx, s.latency, "jobs", "GetJobByID"); err != nil {
		return nil, err
	}
	return s.findJob(jobID)
}

// GetJobsByPoster - вакансии одного работодателя ("My Jobs")
func (s *JobServiceImpl) GetJobsByPoster(ctx context.Context, userID string) ([]models.Job, error) {
	if err := simulateLatency(ctx, s.latency, "jobs", "GetJobsByPoster"); err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.FindByPoster(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

// CreateJob добавляет вакансию в начало списка
func (s *JobServiceImpl) CreateJob(ctx context.Context, input *dto.JobInput) (*models.Job, error) {
	if err := simulateLatency(ctx, s.latency, "jobs", "CreateJob"); err != nil {
		return nil, err
	}

	now := s.now()
	job := &models.Job{
		BaseModel:    models.BaseModel{ID: s.ids.Next(), CreatedAt: now},
		Title:        input.Title,
		Description:  input.Description,
		Company:      input.Company,
		Location:     input.Location,
		Salary:       input.Salary,
		Type:         input.Type,
		Requirements: input.Requirements,
		Benefits:     input.Benefits,
		PostedBy:     input.PostedBy,
		UpdatedAt:    now,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Job created", "job_id", job.ID, "posted_by", job.PostedBy)
	s.publish(dto.JobEventCreated, job.ID, job)
	return job, nil
}

// UpdateJob - частичное обновление. Для неизвестного id список не меняется,
// а updatedAt результата всегда строго позже createdAt.
func (s *JobServiceImpl) UpdateJob(ctx context.Context, jobID string, patch *dto.JobPatch) (*models.Job, error) {
	if err := simulateLatency(ctx, s.latency, "jobs", "UpdateJob"); err != nil {
		return nil, err
	}

	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}

	patch.Apply(job)
	job.UpdatedAt = laterThan(s.now(), job.UpdatedAt)
	job.UpdatedAt = laterThan(job.UpdatedAt, job.CreatedAt)

	if err := s.jobRepo.Update(job); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Job updated", "job_id", job.ID)
	s.publish(dto.JobEventUpdated, job.ID, job)
	return job, nil
}

// DeleteJob удаляет ровно одну вакансию
func (s *JobServiceImpl) DeleteJob(ctx context.Context, jobID string) error {
	if err := simulateLatency(ctx, s.latency, "jobs", "DeleteJob"); err != nil {
		return err
	}

	if err := s.jobRepo.Delete(jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Job deleted", "job_id", jobID)
	s.publish(dto.JobEventDeleted, jobID, nil)
	return nil
}

func (s *JobServiceImpl) findJob(jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) publish(eventType, jobID string, job *models.Job) {
	if s.publisher == nil {
		return
	}
	s.publisher.PublishJobEvent(dto.JobEvent{
		Type:  eventType,
		JobID: jobID,
		Job:   job.Clone(),
		At:    s.now(),
	})
}
