package main

import (
	"fmt"
	"io"
	"sort"

	"tekfix_jobboard/internal/models"
	"tekfix_jobboard/internal/services/dto"

	"github.com/pterm/pterm"
)

func renderTable(w io.Writer, data pterm.TableData) error {
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func renderJobs(w io.Writer, jobs []models.Job, applied func(string) bool) error {
	if len(jobs) == 0 {
		_, err := fmt.Fprintln(w, pterm.Info.Sprint("No jobs found"))
		return err
	}

	data := pterm.TableData{{"ID", "Title", "Company", "Location", "Type", "Salary", ""}}
	for _, j := range jobs {
		mark := ""
		if applied != nil && applied(j.ID) {
			mark = "applied"
		}
		data = append(data, []string{j.ID, j.Title, j.Company, j.Location, string(j.Type), j.Salary, mark})
	}
	return renderTable(w, data)
}

func renderJob(w io.Writer, job *models.Job) error {
	fmt.Fprintln(w, pterm.DefaultSection.Sprint(job.Title))
	data := pterm.TableData{
		{"Field", "Value"},
		{"ID", job.ID},
		{"Company", job.Company},
		{"Location", job.Location},
		{"Type", string(job.Type)},
		{"Salary", job.Salary},
		{"Posted by", job.PostedBy},
		{"Created", job.CreatedAt.Format("2006-01-02 15:04")},
		{"Updated", job.UpdatedAt.Format("2006-01-02 15:04")},
	}
	if err := renderTable(w, data); err != nil {
		return err
	}

	fmt.Fprintln(w, job.Description)
	if job.Requirements != "" {
		fmt.Fprintln(w, pterm.Bold.Sprint("\nRequirements"))
		fmt.Fprintln(w, job.Requirements)
	}
	if job.Benefits != "" {
		fmt.Fprintln(w, pterm.Bold.Sprint("\nBenefits"))
		fmt.Fprintln(w, job.Benefits)
	}
	return nil
}

func renderUser(w io.Writer, user *models.User) error {
	data := pterm.TableData{
		{"Field", "Value"},
		{"ID", user.ID},
		{"Name", user.Name},
		{"Email", user.Email},
		{"Role", string(user.Role)},
	}

	optional := []struct{ name, value string }{
		{"Company", user.Company},
		{"Designation", user.Designation},
		{"Education", user.Education},
		{"Qualification", user.Qualification},
		{"Experience", string(user.Experience)},
		{"Resume", user.ResumeURL},
		{"Phone", user.Phone},
		{"Location", user.Location},
		{"Bio", user.Bio},
	}
	for _, f := range optional {
		if f.value != "" {
			data = append(data, []string{f.name, f.value})
		}
	}
	return renderTable(w, data)
}

func renderUsers(w io.Writer, users []models.User) error {
	data := pterm.TableData{{"ID", "Name", "Email", "Role", "Company"}}
	for _, u := range users {
		data = append(data, []string{u.ID, u.Name, u.Email, string(u.Role), u.Company})
	}
	return renderTable(w, data)
}

func renderStats(w io.Writer, stats *dto.AdminStats) error {
	data := pterm.TableData{
		{"Metric", "Count"},
		{"Total jobs", fmt.Sprint(stats.TotalJobs)},
		{"Total users", fmt.Sprint(stats.TotalUsers)},
		{"Employers", fmt.Sprint(stats.Employers)},
		{"Job seekers", fmt.Sprint(stats.Seekers)},
	}

	types := make([]string, 0, len(stats.JobsByType))
	for t := range stats.JobsByType {
		types = append(types, string(t))
	}
	sort.Strings(types)
	for _, t := range types {
		data = append(data, []string{"Jobs: " + t, fmt.Sprint(stats.JobsByType[models.JobType(t)])})
	}
	return renderTable(w, data)
}
