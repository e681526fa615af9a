package models

type UserRole string
type JobType string
type Experience string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleEmployer UserRole = "employer"
	UserRoleSeeker   UserRole = "seeker"

	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"

	ExperienceFresher     Experience = "fresher"
	ExperienceExperienced Experience = "experienced"
)

var AllJobTypes = []JobType{JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship}

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleEmployer, UserRoleSeeker:
		return true
	}
	return false
}

// CanSelfRegister - админа нельзя создать через регистрацию
func (r UserRole) CanSelfRegister() bool {
	return r == UserRoleEmployer || r == UserRoleSeeker
}

func (t JobType) IsValid() bool {
	for _, v := range AllJobTypes {
		if v == t {
			return true
		}
	}
	return false
}

func (e Experience) IsValid() bool {
	return e == ExperienceFresher || e == ExperienceExperienced
}
