package store

import "tekfix_jobboard/internal/models"

type AuthActionType string

const (
	ActionLoginStart      AuthActionType = "LOGIN_START"
	ActionLoginSuccess    AuthActionType = "LOGIN_SUCCESS"
	ActionLoginFailure    AuthActionType = "LOGIN_FAILURE"
	ActionRegisterStart   AuthActionType = "REGISTER_START"
	ActionRegisterSuccess AuthActionType = "REGISTER_SUCCESS"
	ActionRegisterFailure AuthActionType = "REGISTER_FAILURE"
	ActionLogout          AuthActionType = "LOGOUT"
	ActionProfileUpdated  AuthActionType = "PROFILE_UPDATED"
)

type AuthAction struct {
	Type  AuthActionType
	User  *models.User
	Token string
}

// AuthState - текущая сессия клиента
type AuthState struct {
	User    *models.User `json:"user"`
	Token   string       `json:"token"`
	Loading bool         `json:"isLoading"`
}

func (s AuthState) IsAuthenticated() bool {
	return s.User != nil && s.Token != ""
}

// ReduceAuth - чистый переход состояния, входной state не меняется.
// Неудачный вход или регистрация сбрасывают пользователя и токен.
func ReduceAuth(state AuthState, action AuthAction) AuthState {
	switch action.Type {
	case ActionLoginStart, ActionRegisterStart:
		state.Loading = true
	case ActionLoginSuccess, ActionRegisterSuccess:
		state.User = action.User.Clone()
		state.Token = action.Token
		state.Loading = false
	case ActionLoginFailure, ActionRegisterFailure, ActionLogout:
		state.User = nil
		state.Token = ""
		state.Loading = false
	case ActionProfileUpdated:
		if state.User != nil && action.User != nil && action.User.ID == state.User.ID {
			state.User = action.User.Clone()
		}
	}
	return state
}
