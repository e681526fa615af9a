package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler  *AuthHandler
	JobHandler   *JobHandler
	UserHandler  *UserHandler
	AdminHandler *AdminHandler
}
