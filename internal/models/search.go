package models

// JobFilter - три поля фильтра списка вакансий. Пустое поле не ограничивает выборку.
type JobFilter struct {
	Search   string `json:"searchTerm" form:"search"`
	Location string `json:"locationFilter" form:"location"`
	Type     string `json:"typeFilter" form:"type"`
}

func (f JobFilter) IsEmpty() bool {
	return f.Search == "" && f.Location == "" && f.Type == ""
}
