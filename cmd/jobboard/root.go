package main

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"tekfix_jobboard/internal/apiclient"
	"tekfix_jobboard/internal/app"
	"tekfix_jobboard/internal/auth"
	"tekfix_jobboard/internal/config"
	"tekfix_jobboard/internal/logger"
	"tekfix_jobboard/internal/models"
	"tekfix_jobboard/internal/services"
	"tekfix_jobboard/internal/session"
	"tekfix_jobboard/internal/store"
	"tekfix_jobboard/internal/validator"
	"tekfix_jobboard/pkg/apperrors"

	"github.com/spf13/cobra"
)

type cliOptions struct {
	server  string
	session string
	local   bool
}

// cliEnv - то, с чем работают команды: сторы поверх локальных сервисов
// или HTTP-клиента и файл сессии
type cliEnv struct {
	cfg       *config.Config
	storage   session.Storage
	auth      *store.AuthStore
	jobs      *store.JobStore
	jobSvc    services.JobService
	admin     services.AdminService
	remote    *apiclient.Client // nil в режиме --local
	validator *validator.Validator
	closers   []func() error
}

func execute(args []string, out io.Writer) error {
	env := &cliEnv{}
	root := newRootCmd(env)
	root.SetArgs(args)
	root.SetOut(out)

	err := root.Execute()
	if closeErr := env.close(); err == nil {
		err = closeErr
	}
	return err
}

func newRootCmd(env *cliEnv) *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:   "jobboard",
		Short: "TekFix job board client",
		Long: `jobboard - клиент доски вакансий.

Сессия (токен и пользователь) хранится в sqlite-файле и переживает перезапуск.
По умолчанию команды ходят в HTTP API, с --local - в сервисы напрямую.

Examples:
  jobboard login --email john@example.com
  jobboard jobs list --search react --type full-time
  jobboard jobs apply 2
  jobboard admin stats`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.open(opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.server, "server", "", "API base URL (default from config client.server_url)")
	root.PersistentFlags().StringVar(&opts.session, "session", "", "session file path (default from config client.session_path)")
	root.PersistentFlags().BoolVar(&opts.local, "local", false, "use in-process services instead of the HTTP API")

	root.AddCommand(
		newLoginCmd(env),
		newRegisterCmd(env),
		newLogoutCmd(env),
		newWhoamiCmd(env),
		newJobsCmd(env),
		newProfileCmd(env),
		newAdminCmd(env),
	)
	return root
}

func (e *cliEnv) open(opts *cliOptions) error {
	logger.InitWithWriter("cli", os.Stderr)

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if opts.server != "" {
		cfg.Client.ServerURL = opts.server
	}
	if opts.session != "" {
		cfg.Client.SessionPath = opts.session
	}
	e.cfg = cfg
	e.validator = validator.New()

	storage, err := session.OpenSQLite(cfg.Client.SessionPath)
	if err != nil {
		return err
	}
	e.storage = storage
	e.closers = append(e.closers, storage.Close)

	var authSvc services.AuthService
	if opts.local {
		container, closer, err := app.NewLocalServices(cfg)
		if err != nil {
			return err
		}
		e.closers = append(e.closers, closer)
		authSvc, e.jobSvc, e.admin = container.AuthService, container.JobService, container.AdminService
	} else {
		timeout := time.Duration(cfg.Client.TimeoutSec) * time.Second
		client := apiclient.New(cfg.Client.ServerURL, timeout, func() string { return e.auth.Token() })
		authSvc, e.jobSvc, e.admin = client, client, client
		e.remote = client
	}

	e.auth = store.NewAuthStore(authSvc, storage)
	if _, err := e.auth.Restore(); err != nil {
		return err
	}
	e.jobs = store.NewJobStore(e.jobSvc, storage)
	e.jobs.FollowAuth(e.auth)
	return nil
}

func (e *cliEnv) close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	e.closers = nil
	return errors.Join(errs...)
}

// currentUser требует сессию и, если задано, разрешение роли.
// Сервер проверяет то же самое; здесь проверка нужна для --local.
func (e *cliEnv) currentUser(permission string) (*models.User, error) {
	st := e.auth.State()
	if !st.IsAuthenticated() {
		return nil, store.ErrNotAuthenticated
	}
	if permission != "" && !auth.HasPermission(st.User.Role, permission) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return st.User, nil
}

func (e *cliEnv) validate(obj interface{}) error {
	if err := e.validator.Validate(obj); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			details := make(map[string]interface{}, len(vErr.Errors))
			for k, v := range vErr.Errors {
				details[k] = v
			}
			return apperrors.ValidationError(details)
		}
		return err
	}
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
