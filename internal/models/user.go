package models

import "time"

// User - пользователь доски. Роль задается при создании и больше не меняется.
// Поля профиля зависят от роли только по соглашению.
type User struct {
	BaseModel
	Name  string   `json:"name" gorm:"not null"`
	Email string   `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Role  UserRole `json:"role" gorm:"type:varchar(20);not null"`

	// Работодатель
	Company     string `json:"company,omitempty"`
	Designation string `json:"designation,omitempty"`

	// Соискатель
	Education     string     `json:"education,omitempty"`
	Qualification string     `json:"qualification,omitempty"`
	Experience    Experience `json:"experience,omitempty" gorm:"type:varchar(20)"`
	ResumeURL     string     `json:"resumeUrl,omitempty"`

	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Bio      string `json:"bio,omitempty" gorm:"type:text"`

	UpdatedAt *time.Time `json:"updatedAt,omitempty" gorm:"autoUpdateTime:false"`
}

func (u *User) IsEmployer() bool { return u.Role == UserRoleEmployer }
func (u *User) IsSeeker() bool   { return u.Role == UserRoleSeeker }

// Clone возвращает независимую копию
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	cp := *u
	if u.UpdatedAt != nil {
		t := *u.UpdatedAt
		cp.UpdatedAt = &t
	}
	return &cp
}
