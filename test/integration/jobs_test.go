package integration_test

import (
	"net/http"
	"testing"
	"time"

	"tekfix_jobboard/internal/models"
	"tekfix_jobboard/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jobIDs(jobs []models.Job) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.ID
	}
	return out
}

func listJobs(t *testing.T, ts *helpers.TestServer, query string) []models.Job {
	t.Helper()
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs"+query, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var jobs []models.Job
	helpers.DecodeJSON(t, body, &jobs)
	return jobs
}

func TestJobList_Filters(t *testing.T) {
	ts := helpers.NewTestServer(t)

	assert.Equal(t, []string{"1", "2", "3"}, jobIDs(listJobs(t, ts, "")))
	assert.Contains(t, jobIDs(listJobs(t, ts, "?search=backend")), "2")
	assert.NotContains(t, jobIDs(listJobs(t, ts, "?search=design")), "2")
	assert.Equal(t, []string{"2"}, jobIDs(listJobs(t, ts, "?location=new%20york")))
	assert.Empty(t, listJobs(t, ts, "?location=new%20york&type=contract"))
	assert.Equal(t, []string{"3"}, jobIDs(listJobs(t, ts, "?search=FIGMA")))

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs?type=freelance", "", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestJobCRUD(t *testing.T) {
	ts := helpers.NewTestServer(t)
	employer := ts.Login(t, "employer@techcorp.com")
	seeker := ts.Login(t, "john@example.com")

	input := map[string]interface{}{
		"title":       "Site Reliability Engineer",
		"description": "Keep the lights on",
		"company":     "TechCorp Solutions",
		"location":    "Austin, TX",
		"type":        "full-time",
		"postedBy":    "someone-else",
	}

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", seeker, input)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", "", input)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", employer, input)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var created models.Job
	helpers.DecodeJSON(t, body, &created)
	assert.Equal(t, "2", created.PostedBy)
	assert.Equal(t, created.CreatedAt.UnixNano(), created.UpdatedAt.UnixNano())

	assert.Equal(t, created.ID, listJobs(t, ts, "")[0].ID)

	// неизвестный id не меняет список
	before := listJobs(t, ts, "")
	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/jobs/nope", employer, map[string]string{"title": "X"})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "Job not found")
	assert.Equal(t, before, listJobs(t, ts, ""))

	time.Sleep(2 * time.Millisecond)
	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/jobs/"+created.ID, employer, map[string]interface{}{
		"salary":   "$140k",
		"postedBy": "3",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var updated models.Job
	helpers.DecodeJSON(t, body, &updated)
	assert.Equal(t, "$140k", updated.Salary)
	assert.Equal(t, "2", updated.PostedBy)
	assert.Equal(t, created.Title, updated.Title)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/jobs/nope", employer, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Len(t, listJobs(t, ts, ""), 4)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/jobs/"+created.ID, employer, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)
	assert.Equal(t, []string{"1", "2", "3"}, jobIDs(listJobs(t, ts, "")))

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestEmployerJobs(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/employer/jobs", ts.Login(t, "employer@techcorp.com"), nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var jobs []models.Job
	helpers.DecodeJSON(t, body, &jobs)
	assert.Len(t, jobs, 3)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/employer/jobs", ts.Login(t, "sarah@example.com"), nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
