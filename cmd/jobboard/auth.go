package main

import (
	"fmt"

	"tekfix_jobboard/internal/logger"
	"tekfix_jobboard/internal/models"
	"tekfix_jobboard/internal/services/dto"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newLoginCmd(env *cliEnv) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with email and the demo password",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				var err error
				password, err = pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
				if err != nil {
					return err
				}
			}

			req := &dto.LoginRequest{Email: email, Password: password}
			if err := env.validate(req); err != nil {
				return err
			}

			if err := env.auth.Login(commandContext(cmd), email, password); err != nil {
				return err
			}

			user := env.auth.State().User
			fmt.Fprintln(cmd.OutOrStdout(), pterm.Success.Sprintf("Logged in as %s (%s)", user.Name, user.Role))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newRegisterCmd(env *cliEnv) *cobra.Command {
	var req dto.RegisterRequest
	var role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an employer or seeker account",
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Role = models.UserRole(role)
			if err := env.validate(&req); err != nil {
				return err
			}

			if err := env.auth.Register(commandContext(cmd), req.Name, req.Email, req.Password, req.Role, req.Company); err != nil {
				return err
			}

			user := env.auth.State().User
			fmt.Fprintln(cmd.OutOrStdout(), pterm.Success.Sprintf("Registered %s with id %s", user.Email, user.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "full name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email")
	cmd.Flags().StringVar(&req.Password, "password", "", "password")
	cmd.Flags().StringVar(&role, "role", string(models.UserRoleSeeker), "employer | seeker")
	cmd.Flags().StringVar(&req.Company, "company", "", "company name (required for employers)")
	return cmd
}

func newLogoutCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			// сервер только фиксирует выход; локальную сессию чистим в любом случае
			if env.remote != nil && env.auth.State().IsAuthenticated() {
				if err := env.remote.Logout(commandContext(cmd)); err != nil {
					logger.Warn("Server logout failed", "error", err)
				}
			}
			if err := env.auth.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pterm.Success.Sprint("Logged out"))
			return nil
		},
	}
}

func newWhoamiCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := env.currentUser("")
			if err != nil {
				return err
			}
			// сервер знает свежий профиль и проверяет, что токен еще жив
			if env.remote != nil {
				if user, err = env.remote.Me(commandContext(cmd)); err != nil {
					return err
				}
			}
			return renderUser(cmd.OutOrStdout(), user)
		},
	}
}
