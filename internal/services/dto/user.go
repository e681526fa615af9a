package dto

import "tekfix_jobboard/internal/models"

// ProfilePatch - частичное обновление профиля.
// nil означает "не трогать", роль сюда не входит.
type ProfilePatch struct {
	Name          *string            `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Email         *string            `json:"email,omitempty" validate:"omitempty,email"`
	Phone         *string            `json:"phone,omitempty"`
	Location      *string            `json:"location,omitempty"`
	Bio           *string            `json:"bio,omitempty" validate:"omitempty,max=2000"`
	Company       *string            `json:"company,omitempty"`
	Designation   *string            `json:"designation,omitempty"`
	Education     *string            `json:"education,omitempty"`
	Qualification *string            `json:"qualification,omitempty"`
	Experience    *models.Experience `json:"experience,omitempty" validate:"omitempty,is-experience"`
	ResumeURL     *string            `json:"resumeUrl,omitempty" validate:"omitempty,url"`
}

// Apply переносит заданные поля в пользователя
func (p *ProfilePatch) Apply(u *models.User) {
	setString(&u.Name, p.Name)
	setString(&u.Email, p.Email)
	setString(&u.Phone, p.Phone)
	setString(&u.Location, p.Location)
	setString(&u.Bio, p.Bio)
	setString(&u.Company, p.Company)
	setString(&u.Designation, p.Designation)
	setString(&u.Education, p.Education)
	setString(&u.Qualification, p.Qualification)
	setString(&u.ResumeURL, p.ResumeURL)
	if p.Experience != nil {
		u.Experience = *p.Experience
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
