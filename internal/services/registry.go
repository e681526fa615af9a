package services

import (
	"tekfix_jobboard/internal/auth"
	"tekfix_jobboard/internal/email"
	"tekfix_jobboard/internal/repositories"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService  AuthService
	JobService   JobService
	AdminService AdminService
	TokenCodec   auth.TokenCodec
	EmailService email.Provider
}

// Dependencies - то, из чего собирается контейнер
type Dependencies struct {
	UserRepo  repositories.UserRepository
	JobRepo   repositories.JobRepository
	Codec     auth.TokenCodec
	Password  *auth.SentinelPassword
	Email     email.Provider
	Publisher JobEventPublisher
	Latency   Latency
}

func NewServiceContainer(deps Dependencies) *ServiceContainer {
	return &ServiceContainer{
		AuthService:  NewAuthService(deps.UserRepo, deps.Codec, deps.Password, deps.Email, deps.Latency),
		JobService:   NewJobService(deps.JobRepo, deps.Publisher, deps.Latency.Jobs),
		AdminService: NewAdminService(deps.UserRepo, deps.JobRepo, deps.Latency.Users),
		TokenCodec:   deps.Codec,
		EmailService: deps.Email,
	}
}
