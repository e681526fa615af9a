package main

import (
	"fmt"

	"tekfix_jobboard/internal/auth"
	"tekfix_jobboard/internal/models"
	"tekfix_jobboard/internal/services/dto"
	"tekfix_jobboard/pkg/apperrors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newJobsCmd(env *cliEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Browse and manage job postings",
	}
	cmd.AddCommand(
		newJobsListCmd(env),
		newJobsShowCmd(env),
		newJobsCreateCmd(env),
		newJobsUpdateCmd(env),
		newJobsDeleteCmd(env),
		newJobsApplyCmd(env),
	)
	return cmd
}

func newJobsListCmd(env *cliEnv) *cobra.Command {
	var query dto.JobListQuery
	var mine bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List jobs, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := env.validate(&query); err != nil {
				return err
			}
			if err := env.jobs.FetchJobs(commandContext(cmd)); err != nil {
				return err
			}

			if mine {
				user, err := env.currentUser("")
				if err != nil {
					return err
				}
				if !user.IsEmployer() {
					return apperrors.ErrInsufficientPermissions
				}
				return renderJobs(cmd.OutOrStdout(), env.jobs.JobsPostedBy(user.ID), nil)
			}

			env.jobs.SetSearchTerm(query.Search)
			env.jobs.SetLocationFilter(query.Location)
			env.jobs.SetTypeFilter(query.Type)
			// отметка об отклике есть только у соискателя
			var applied func(string) bool
			if user := env.auth.State().User; user != nil && user.IsSeeker() {
				applied = env.jobs.HasApplied
			}
			return renderJobs(cmd.OutOrStdout(), env.jobs.FilteredJobs(), applied)
		},
	}

	cmd.Flags().StringVar(&query.Search, "search", "", "substring of title, company or description")
	cmd.Flags().StringVar(&query.Location, "location", "", "substring of location")
	cmd.Flags().StringVar(&query.Type, "type", "", "full-time | part-time | contract | internship")
	cmd.Flags().BoolVar(&mine, "mine", false, "only jobs posted by the logged in employer")
	return cmd
}

func newJobsShowCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := env.jobSvc.GetJobByID(commandContext(cmd), args[0])
			if err != nil {
				return err
			}
			return renderJob(cmd.OutOrStdout(), job)
		},
	}
}

func newJobsCreateCmd(env *cliEnv) *cobra.Command {
	var input dto.JobInput
	var jobType string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Post a new job (employer or admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := env.currentUser(auth.PermJobsWrite)
			if err != nil {
				return err
			}

			input.Type = models.JobType(jobType)
			input.PostedBy = user.ID
			if input.Company == "" {
				input.Company = user.Company
			}
			if err := env.validate(&input); err != nil {
				return err
			}

			job, err := env.jobs.CreateJob(commandContext(cmd), &input)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pterm.Success.Sprintf("Job %s created", job.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Title, "title", "", "job title")
	cmd.Flags().StringVar(&input.Description, "description", "", "description")
	cmd.Flags().StringVar(&input.Company, "company", "", "company (defaults to the profile company)")
	cmd.Flags().StringVar(&input.Location, "location", "", "location")
	cmd.Flags().StringVar(&input.Salary, "salary", "", "salary range")
	cmd.Flags().StringVar(&jobType, "type", string(models.JobTypeFullTime), "full-time | part-time | contract | internship")
	cmd.Flags().StringVar(&input.Requirements, "requirements", "", "requirements")
	cmd.Flags().StringVar(&input.Benefits, "benefits", "", "benefits")
	return cmd
}

// jobPatchFlags - флаги, которые пользователь явно передал, становятся полями патча
var jobPatchFlags = []string{"title", "description", "company", "location", "salary", "requirements", "benefits"}

func newJobsUpdateCmd(env *cliEnv) *cobra.Command {
	values := make(map[string]*string, len(jobPatchFlags))
	var jobType string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a job (employer or admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := env.currentUser(auth.PermJobsWrite); err != nil {
				return err
			}

			patch := &dto.JobPatch{}
			fields := map[string]**string{
				"title":        &patch.Title,
				"description":  &patch.Description,
				"company":      &patch.Company,
				"location":     &patch.Location,
				"salary":       &patch.Salary,
				"requirements": &patch.Requirements,
				"benefits":     &patch.Benefits,
			}
			for name, dst := range fields {
				if cmd.Flags().Changed(name) {
					*dst = values[name]
				}
			}
			if cmd.Flags().Changed("type") {
				t := models.JobType(jobType)
				patch.Type = &t
			}
			if err := env.validate(patch); err != nil {
				return err
			}

			job, err := env.jobs.UpdateJob(commandContext(cmd), args[0], patch)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pterm.Success.Sprintf("Job %s updated", job.ID))
			return nil
		},
	}

	for _, name := range jobPatchFlags {
		values[name] = new(string)
		cmd.Flags().StringVar(values[name], name, "", "new "+name)
	}
	cmd.Flags().StringVar(&jobType, "type", "", "new type")
	return cmd
}

func newJobsDeleteCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a job (employer or admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := env.currentUser(auth.PermJobsWrite); err != nil {
				return err
			}
			if err := env.jobs.DeleteJob(commandContext(cmd), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pterm.Success.Sprintf("Job %s deleted", args[0]))
			return nil
		},
	}
}

func newJobsApplyCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "apply <id>",
		Short: "Mark a job as applied (job seekers)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := env.currentUser(auth.PermJobsApply); err != nil {
				return err
			}
			if err := env.jobs.FetchJobs(commandContext(cmd)); err != nil {
				return err
			}
			if err := env.jobs.Apply(args[0]); err != nil {
				return err
			}

			count := len(env.jobs.AppliedIDs())
			fmt.Fprintln(cmd.OutOrStdout(), pterm.Success.Sprintf("Application submitted. Applied to %d job(s)", count))
			return nil
		},
	}
}
