package dto

import (
	"time"

	"tekfix_jobboard/internal/models"
)

// JobInput - данные новой вакансии. id и даты выставляет сервис.
type JobInput struct {
	Title        string         `json:"title" validate:"required,max=200"`
	Description  string         `json:"description" validate:"required"`
	Company      string         `json:"company" validate:"required,max=200"`
	Location     string         `json:"location" validate:"required,max=200"`
	Salary       string         `json:"salary,omitempty" validate:"max=100"`
	Type         models.JobType `json:"type" validate:"required,is-job-type"`
	Requirements string         `json:"requirements,omitempty"`
	Benefits     string         `json:"benefits,omitempty"`
	PostedBy     string         `json:"postedBy"`
}

// JobPatch - частичное обновление. id, postedBy и createdAt не меняются.
type JobPatch struct {
	Title        *string         `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description  *string         `json:"description,omitempty" validate:"omitempty,min=1"`
	Company      *string         `json:"company,omitempty" validate:"omitempty,min=1,max=200"`
	Location     *string         `json:"location,omitempty" validate:"omitempty,min=1,max=200"`
	Salary       *string         `json:"salary,omitempty" validate:"omitempty,max=100"`
	Type         *models.JobType `json:"type,omitempty" validate:"omitempty,is-job-type"`
	Requirements *string         `json:"requirements,omitempty"`
	Benefits     *string         `json:"benefits,omitempty"`
}

func (p *JobPatch) Apply(j *models.Job) {
	setString(&j.Title, p.Title)
	setString(&j.Description, p.Description)
	setString(&j.Company, p.Company)
	setString(&j.Location, p.Location)
	setString(&j.Salary, p.Salary)
	setString(&j.Requirements, p.Requirements)
	setString(&j.Benefits, p.Benefits)
	if p.Type != nil {
		j.Type = *p.Type
	}
}

// Типы событий ленты вакансий
const (
	JobEventCreated = "created"
	JobEventUpdated = "updated"
	JobEventDeleted = "deleted"
)

// JobEvent уходит подписчикам /ws/jobs после каждой успешной мутации
type JobEvent struct {
	Type  string      `json:"type"`
	JobID string      `json:"jobId"`
	Job   *models.Job `json:"job,omitempty"`
	At    time.Time   `json:"at"`
}
