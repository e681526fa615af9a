package main

import (
	"fmt"

	"tekfix_jobboard/internal/auth"
	"tekfix_jobboard/internal/models"
	"tekfix_jobboard/internal/services/dto"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newProfileCmd(env *cliEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage your profile",
	}
	cmd.AddCommand(newProfileUpdateCmd(env))
	return cmd
}

func newProfileUpdateCmd(env *cliEnv) *cobra.Command {
	names := []string{"name", "email", "phone", "location", "bio", "company",
		"designation", "education", "qualification", "resume-url"}
	values := make(map[string]*string, len(names))
	var experience string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change profile fields (role cannot be changed)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := env.currentUser(auth.PermProfileWrite); err != nil {
				return err
			}

			patch := &dto.ProfilePatch{}
			fields := map[string]**string{
				"name":          &patch.Name,
				"email":         &patch.Email,
				"phone":         &patch.Phone,
				"location":      &patch.Location,
				"bio":           &patch.Bio,
				"company":       &patch.Company,
				"designation":   &patch.Designation,
				"education":     &patch.Education,
				"qualification": &patch.Qualification,
				"resume-url":    &patch.ResumeURL,
			}
			for name, dst := range fields {
				if cmd.Flags().Changed(name) {
					*dst = values[name]
				}
			}
			if cmd.Flags().Changed("experience") {
				e := models.Experience(experience)
				patch.Experience = &e
			}
			if err := env.validate(patch); err != nil {
				return err
			}

			user, err := env.auth.UpdateProfile(commandContext(cmd), patch)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pterm.Success.Sprint("Profile updated"))
			return renderUser(cmd.OutOrStdout(), user)
		},
	}

	for _, name := range names {
		values[name] = new(string)
		cmd.Flags().StringVar(values[name], name, "", "new "+name)
	}
	cmd.Flags().StringVar(&experience, "experience", "", "fresher | experienced")
	return cmd
}
