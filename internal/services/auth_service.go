package services

import (
	"context"
	"time"

	"tekfix_jobboard/internal/auth"
	"tekfix_jobboard/internal/email"
	"tekfix_jobboard/internal/logger"
	"tekfix_jobboard/internal/models"
	"tekfix_jobboard/internal/repositories"
	"tekfix_jobboard/internal/services/dto"
	"tekfix_jobboard/pkg/apperrors"
)

type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	UpdateUserProfile(ctx context.Context, userID string, patch *dto.ProfilePatch) (*models.User, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	codec         auth.TokenCodec
	password      *auth.SentinelPassword
	emailProvider email.Provider
	latency       Latency
	ids           *idGenerator
	now           func() time.Time
}

func NewAuthService(
	userRepo repositories.UserRepository,
	codec auth.TokenCodec,
	password *auth.SentinelPassword,
	emailProvider email.Provider,
	latency Latency,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		codec:         codec,
		password:      password,
		emailProvider: emailProvider,
		latency:       latency,
		ids:           newIDGenerator(time.Now),
		now:           time.Now,
	}
}

// Login - вход существующего пользователя по демо-паролю.
// Неизвестный email и неверный пароль дают одну и ту же ошибку.
func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := simulateLatency(ctx, s.latency.Auth, "auth", "Login"); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			logger.CtxWarn(ctx, "Login failed: unknown email", "email", req.Email)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !s.password.Matches(req.Password) {
		logger.CtxWarn(ctx, "Login failed: wrong password", "user_id", user.ID)
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issue(ctx, user)
}

// Register - создание работодателя или соискателя
func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := simulateLatency(ctx, s.latency.Auth, "auth", "Register"); err != nil {
		return nil, err
	}

	if !req.Role.CanSelfRegister() {
		return nil, apperrors.ErrInvalidUserRole
	}

	user := &models.User{
		BaseModel: models.BaseModel{
			ID:        s.ids.Next(),
			CreatedAt: s.now(),
		},
		Name:    req.Name,
		Email:   req.Email,
		Role:    req.Role,
		Company: req.Company,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "User registered", "user_id", user.ID, "role", user.Role)
	s.sendWelcomeEmail(ctx, user)

	return s.issue(ctx, user)
}

func (s *AuthServiceImpl) GetAllUsers(ctx context.Context) ([]models.User, error) {
	if err := simulateLatency(ctx, s.latency.Users, "auth", "GetAllUsers"); err != nil {
		return nil, err
	}

	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return users, nil
}

func (s *AuthServiceImpl) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	if err := simulateLatency(ctx, s.latency.Users, "auth", "GetUserByID"); err != nil {
		return nil, err
	}
	return s.findUser(userID)
}

// UpdateUserProfile - частичное обновление профиля; роль не меняется
func (s *AuthServiceImpl) UpdateUserProfile(ctx context.Context, userID string, patch *dto.ProfilePatch) (*models.User, error) {
	if err := simulateLatency(ctx, s.latency.Users, "auth", "UpdateUserProfile"); err != nil {
		return nil, err
	}

	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil && *patch.Email != user.Email {
		other, err := s.userRepo.FindByEmail(*patch.Email)
		if err == nil && other.ID != user.ID {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		if err != nil && !apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.InternalError(err)
		}
	}

	patch.Apply(user)

	prev := user.CreatedAt
	if user.UpdatedAt != nil {
		prev = *user.UpdatedAt
	}
	updatedAt := laterThan(s.now(), prev)
	user.UpdatedAt = &updatedAt

	if err := s.userRepo.Update(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Profile updated", "user_id", user.ID)
	return s.findUser(userID)
}

func (s *AuthServiceImpl) findUser(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *AuthServiceImpl) issue(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	token, err := s.codec.Issue(user)
	if err != nil {
		logger.CtxWithError(ctx, "Failed to issue token", err, "user_id", user.ID)
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{User: user, Token: token}, nil
}

// sendWelcomeEmail не блокирует регистрацию: ошибка только логируется
func (s *AuthServiceImpl) sendWelcomeEmail(ctx context.Context, user *models.User) {
	if s.emailProvider == nil {
		return
	}

	data := email.TemplateData{
		"Name":    user.Name,
		"Email":   user.Email,
		"Role":    string(user.Role),
		"Company": user.Company,
	}
	log := logger.FromContext(ctx).With("user_id", user.ID)
	to := []string{user.Email}

	go func() {
		if err := s.emailProvider.SendTemplate(to, "Welcome to TekFix Jobs", email.TemplateWelcome, data); err != nil {
			log.Warn("Failed to send welcome email", "error", err.Error())
		}
	}()
}
