package services

import (
	"context"
	"time"

	"tekfix_jobboard/internal/models"
	"tekfix_jobboard/internal/repositories"
	"tekfix_jobboard/internal/services/dto"
	"tekfix_jobboard/pkg/apperrors"
)

type AdminService interface {
	Overview(ctx context.Context) (*dto.AdminStats, error)
	SearchUsers(ctx context.Context, query string) ([]models.User, error)
	SearchJobs(ctx context.Context, query string) ([]models.Job, error)
}

type AdminServiceImpl struct {
	userRepo repositories.UserRepository
	jobRepo  repositories.JobRepository
	latency  time.Duration
}

func NewAdminService(userRepo repositories.UserRepository, jobRepo repositories.JobRepository, latency time.Duration) *AdminServiceImpl {
	return &AdminServiceImpl{
		userRepo: userRepo,
		jobRepo:  jobRepo,
		latency:  latency,
	}
}

// Overview собирает счетчики для карточек панели
func (s *AdminServiceImpl) Overview(ctx context.Context) (*dto.AdminStats, error) {
	if err := simulateLatency(ctx, s.latency, "admin", "Overview"); err != nil {
		return nil, err
	}

	var (
		stats dto.AdminStats
		err   error
	)

	if stats.TotalJobs, err = s.jobRepo.CountAll(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalUsers, err = s.userRepo.CountAll(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.Employers, err = s.userRepo.CountByRole(models.UserRoleEmployer); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.Seekers, err = s.userRepo.CountByRole(models.UserRoleSeeker); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.JobsByType, err = s.jobRepo.CountByType(); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &stats, nil
}

// SearchUsers - подстрока в имени или email без учета регистра
func (s *AdminServiceImpl) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	if err := simulateLatency(ctx, s.latency, "admin", "SearchUsers"); err != nil {
		return nil, err
	}

	users, err := s.userRepo.Search(query)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return users, nil
}

// SearchJobs - подстрока в названии или компании без учета регистра
func (s *AdminServiceImpl) SearchJobs(ctx context.Context, query string) ([]models.Job, error) {
	if err := simulateLatency(ctx, s.latency, "admin", "SearchJobs"); err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.Search(query)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}
