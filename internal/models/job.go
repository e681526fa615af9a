package models

import "time"

// Job - вакансия. PostedBy ссылается на User.ID, но связь ничем не проверяется.
type Job struct {
	BaseModel
	Title        string  `json:"title" gorm:"not null"`
	Description  string  `json:"description" gorm:"type:text;not null"`
	Company      string  `json:"company" gorm:"not null;index"`
	Location     string  `json:"location" gorm:"not null"`
	Salary       string  `json:"salary,omitempty"`
	Type         JobType `json:"type" gorm:"type:varchar(20);not null;index"`
	Requirements string  `json:"requirements,omitempty" gorm:"type:text"`
	Benefits     string  `json:"benefits,omitempty" gorm:"type:text"`
	PostedBy     string  `json:"postedBy" gorm:"type:varchar(32);index"`

	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime:false;not null"`

	// Seq - порядок вставки; список идет от большего к меньшему
	Seq int64 `json:"-" gorm:"autoIncrement;uniqueIndex"`
}

func (j *Job) Clone() *Job {
	if j == nil {
		return nil
	}
	cp := *j
	return &cp
}
