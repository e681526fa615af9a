package algorithms

import (
	"strings"

	"tekfix_jobboard/internal/models"
)

// MatchJob решает, попадает ли вакансия в отфильтрованный список.
//
// Все три условия соединены через И:
//   - поисковая строка пустая или входит (без учета регистра) в title, company или description;
//   - фильтр локации пустой или входит (без учета регистра) в location;
//   - фильтр типа пустой или в точности равен type.
func MatchJob(job *models.Job, filter models.JobFilter) bool {
	if filter.Search != "" {
		term := strings.ToLower(filter.Search)
		if !containsFold(job.Title, term) &&
			!containsFold(job.Company, term) &&
			!containsFold(job.Description, term) {
			return false
		}
	}

	if filter.Location != "" && !containsFold(job.Location, strings.ToLower(filter.Location)) {
		return false
	}

	if filter.Type != "" && string(job.Type) != filter.Type {
		return false
	}

	return true
}

// FilterJobs сохраняет порядок исходного списка
func FilterJobs(jobs []models.Job, filter models.JobFilter) []models.Job {
	if filter.IsEmpty() {
		out := make([]models.Job, len(jobs))
		copy(out, jobs)
		return out
	}

	out := make([]models.Job, 0, len(jobs))
	for i := range jobs {
		if MatchJob(&jobs[i], filter) {
			out = append(out, jobs[i])
		}
	}
	return out
}

// MatchAdminJob - поиск на странице администратора: только title и company
func MatchAdminJob(job *models.Job, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return containsFold(job.Title, q) || containsFold(job.Company, q)
}

// MatchAdminUser - поиск пользователей администратором по имени и email
func MatchAdminUser(user *models.User, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return containsFold(user.Name, q) || containsFold(user.Email, q)
}

// lowerTerm должен быть уже в нижнем регистре
func containsFold(s, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(s), lowerTerm)
}
