package dto

import "tekfix_jobboard/internal/models"

// AdminStats - карточки панели администратора
type AdminStats struct {
	TotalJobs  int64                    `json:"totalJobs"`
	TotalUsers int64                    `json:"totalUsers"`
	Employers  int64                    `json:"employers"`
	Seekers    int64                    `json:"seekers"`
	JobsByType map[models.JobType]int64 `json:"jobsByType"`
}

// AdminSearchQuery - строка поиска на вкладках users и jobs
type AdminSearchQuery struct {
	Query string `form:"q" json:"q" validate:"max=200"`
}

// JobListQuery - фильтры GET /jobs
type JobListQuery struct {
	Search   string `form:"search" json:"search" validate:"max=200"`
	Location string `form:"location" json:"location" validate:"max=200"`
	Type     string `form:"type" json:"type" validate:"omitempty,is-job-type"`
}

func (q JobListQuery) Filter() models.JobFilter {
	return models.JobFilter{Search: q.Search, Location: q.Location, Type: q.Type}
}
