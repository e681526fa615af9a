package main

import (
	"tekfix_jobboard/internal/auth"

	"github.com/spf13/cobra"
)

func newAdminCmd(env *cliEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin dashboard",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// корневой PersistentPreRunE cobra сама не вызывает
			if err := cmd.Root().PersistentPreRunE(cmd, args); err != nil {
				return err
			}
			_, err := env.currentUser(auth.PermAdminDashboard)
			return err
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "stats",
			Short: "Platform counters",
			RunE: func(cmd *cobra.Command, args []string) error {
				stats, err := env.admin.Overview(commandContext(cmd))
				if err != nil {
					return err
				}
				return renderStats(cmd.OutOrStdout(), stats)
			},
		},
		&cobra.Command{
			Use:   "users [query]",
			Short: "Search users by name or email",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				users, err := env.admin.SearchUsers(commandContext(cmd), firstArg(args))
				if err != nil {
					return err
				}
				return renderUsers(cmd.OutOrStdout(), users)
			},
		},
		&cobra.Command{
			Use:   "jobs [query]",
			Short: "Search jobs by title or company",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				jobs, err := env.admin.SearchJobs(commandContext(cmd), firstArg(args))
				if err != nil {
					return err
				}
				return renderJobs(cmd.OutOrStdout(), jobs, nil)
			},
		},
	)
	return cmd
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
