package algorithms

import (
	"testing"

	"tekfix_jobboard/internal/models"

	"github.com/stretchr/testify/assert"
)

func backendJob() models.Job {
	return models.Job{
		BaseModel:   models.BaseModel{ID: "2"},
		Title:       "Backend Developer",
		Description: "Join our backend team to build scalable APIs and microservices.",
		Company:     "StartupHub",
		Location:    "New York, NY",
		Type:        models.JobTypeFullTime,
	}
}

func TestMatchJob(t *testing.T) {
	job := backendJob()

	tests := []struct {
		name   string
		filter models.JobFilter
		want   bool
	}{
		{"empty filter", models.JobFilter{}, true},
		{"search in title", models.JobFilter{Search: "backend"}, true},
		{"search upper case", models.JobFilter{Search: "BACKEND"}, true},
		{"search in company", models.JobFilter{Search: "startup"}, true},
		{"search in description", models.JobFilter{Search: "microservices"}, true},
		{"search miss", models.JobFilter{Search: "design"}, false},
		{"location case-insensitive", models.JobFilter{Location: "new york"}, true},
		{"location miss", models.JobFilter{Location: "remote"}, false},
		{"type exact", models.JobFilter{Type: "full-time"}, true},
		{"type other", models.JobFilter{Type: "contract"}, false},
		{"type is not substring", models.JobFilter{Type: "full"}, false},
		{"type is case-sensitive", models.JobFilter{Type: "Full-Time"}, false},
		{"all clauses", models.JobFilter{Search: "developer", Location: "NY", Type: "full-time"}, true},
		{"one clause fails", models.JobFilter{Search: "developer", Location: "NY", Type: "internship"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchJob(&job, tt.filter))
		})
	}
}

func TestFilterJobs_KeepsOrderAndCopies(t *testing.T) {
	jobs := []models.Job{
		{BaseModel: models.BaseModel{ID: "3"}, Title: "UI/UX Designer", Company: "DesignStudio", Location: "Remote", Type: models.JobTypeContract},
		backendJob(),
		{BaseModel: models.BaseModel{ID: "1"}, Title: "Senior Frontend Developer", Company: "TechCorp Solutions", Location: "San Francisco, CA", Type: models.JobTypeFullTime},
	}

	all := FilterJobs(jobs, models.JobFilter{})
	assert.Len(t, all, 3)
	all[0].Title = "changed"
	assert.Equal(t, "UI/UX Designer", jobs[0].Title)

	devs := FilterJobs(jobs, models.JobFilter{Search: "developer"})
	if assert.Len(t, devs, 2) {
		assert.Equal(t, "2", devs[0].ID)
		assert.Equal(t, "1", devs[1].ID)
	}

	assert.Empty(t, FilterJobs(jobs, models.JobFilter{Type: "internship"}))
}

func TestAdminMatchers(t *testing.T) {
	job := backendJob()
	assert.True(t, MatchAdminJob(&job, "startup"))
	assert.False(t, MatchAdminJob(&job, "microservices"))

	user := models.User{Name: "Sarah Johnson", Email: "sarah@example.com"}
	assert.True(t, MatchAdminUser(&user, "JOHNSON"))
	assert.True(t, MatchAdminUser(&user, "example.com"))
	assert.False(t, MatchAdminUser(&user, "tekfix"))
	assert.True(t, MatchAdminUser(&user, ""))
}
