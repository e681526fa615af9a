package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"tekfix_jobboard/internal/logger"
	"tekfix_jobboard/internal/models"
	"tekfix_jobboard/internal/services"
	"tekfix_jobboard/internal/services/dto"
	"tekfix_jobboard/internal/session"
	"tekfix_jobboard/pkg/apperrors"
)

var ErrNotAuthenticated = apperrors.New(
	apperrors.CodeUnauthorized,
	"auth",
	"Not logged in",
	http.StatusUnauthorized,
)

// AuthStore держит текущего пользователя и токен и зеркалит их в storage
type AuthStore struct {
	service services.AuthService
	storage session.Storage

	dispatchMu sync.Mutex
	mu         sync.RWMutex
	state      AuthState
	subs       subscribers[AuthState]
}

func NewAuthStore(service services.AuthService, storage session.Storage) *AuthStore {
	return &AuthStore{
		service: service,
		storage: storage,
	}
}

// State возвращает снимок; пользователь в нем - копия
func (s *AuthStore) State() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.state
	st.User = st.User.Clone()
	return st
}

// Token - для транспорта, которому нужен заголовок Authorization
func (s *AuthStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

func (s *AuthStore) Subscribe(fn func(AuthState)) (unsubscribe func()) {
	return s.subs.add(fn)
}

func (s *AuthStore) dispatch(action AuthAction) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	s.state = ReduceAuth(s.state, action)
	snapshot := s.state
	snapshot.User = snapshot.User.Clone()
	s.mu.Unlock()

	logger.Debug("auth store dispatch", "action", action.Type)
	s.subs.notify(snapshot)
}

// Restore поднимает сессию из storage, если есть и токен, и пользователь.
// Подпись токена не проверяется.
func (s *AuthStore) Restore() (bool, error) {
	token, hasToken, err := s.storage.Get(session.KeyToken)
	if err != nil {
		return false, err
	}
	raw, hasUser, err := s.storage.Get(session.KeyUser)
	if err != nil {
		return false, err
	}
	if !hasToken || !hasUser || token == "" {
		return false, nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		logger.Warn("Ignoring corrupt stored user", "error", err)
		return false, nil
	}

	s.dispatch(AuthAction{Type: ActionLoginSuccess, User: &user, Token: token})
	return true, nil
}

func (s *AuthStore) Login(ctx context.Context, email, password string) error {
	s.dispatch(AuthAction{Type: ActionLoginStart})

	resp, err := s.service.Login(ctx, &dto.LoginRequest{Email: email, Password: password})
	if err == nil {
		err = s.persist(resp)
	}
	if err != nil {
		s.dispatch(AuthAction{Type: ActionLoginFailure})
		return err
	}

	s.dispatch(AuthAction{Type: ActionLoginSuccess, User: resp.User, Token: resp.Token})
	return nil
}

func (s *AuthStore) Register(ctx context.Context, name, email, password string, role models.UserRole, company string) error {
	s.dispatch(AuthAction{Type: ActionRegisterStart})

	resp, err := s.service.Register(ctx, &dto.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
		Company:  company,
	})
	if err == nil {
		err = s.persist(resp)
	}
	if err != nil {
		s.dispatch(AuthAction{Type: ActionRegisterFailure})
		return err
	}

	s.dispatch(AuthAction{Type: ActionRegisterSuccess, User: resp.User, Token: resp.Token})
	return nil
}

// Logout удаляет оба ключа сессии одним вызовом
func (s *AuthStore) Logout() error {
	err := s.storage.Remove(session.KeyToken, session.KeyUser)
	s.dispatch(AuthAction{Type: ActionLogout})
	return err
}

// UpdateProfile обновляет профиль текущего пользователя
func (s *AuthStore) UpdateProfile(ctx context.Context, patch *dto.ProfilePatch) (*models.User, error) {
	current := s.State()
	if !current.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	user, err := s.service.UpdateUserProfile(ctx, current.User.ID, patch)
	if err != nil {
		return nil, err
	}

	if err := s.writeUser(user); err != nil {
		return nil, err
	}
	s.dispatch(AuthAction{Type: ActionProfileUpdated, User: user})
	return user, nil
}

// persist пишет токен и пользователя; если второе не удалось, токен удаляется
func (s *AuthStore) persist(resp *dto.AuthResponse) error {
	if err := s.storage.Set(session.KeyToken, resp.Token); err != nil {
		return err
	}
	if err := s.writeUser(resp.User); err != nil {
		if rmErr := s.storage.Remove(session.KeyToken); rmErr != nil {
			logger.Warn("Failed to drop orphaned token", "error", rmErr)
		}
		return err
	}
	return nil
}

func (s *AuthStore) writeUser(user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	return s.storage.Set(session.KeyUser, string(raw))
}
