package repositories

import (
	"time"

	"tekfix_jobboard/internal/models"
)

// DemoUsers - учетные записи, с которыми стартует доска.
// Все входят с демо-паролем из конфига.
func DemoUsers(now time.Time) []models.User {
	return []models.User{
		{
			BaseModel: models.BaseModel{ID: "1", CreatedAt: now},
			Name:      "Admin User",
			Email:     "admin@tekfix.com",
			Role:      models.UserRoleAdmin,
		},
		{
			BaseModel:   models.BaseModel{ID: "2", CreatedAt: now},
			Name:        "TechCorp Employer",
			Email:       "employer@techcorp.com",
			Role:        models.UserRoleEmployer,
			Company:     "TechCorp Solutions",
			Designation: "HR Manager",
			Education:   "MBA in Human Resources",
			Phone:       "+1 (555) 123-4567",
			Location:    "San Francisco, CA",
			Bio:         "Experienced HR professional with 8+ years in tech recruitment.",
		},
		{
			BaseModel:     models.BaseModel{ID: "3", CreatedAt: now},
			Name:          "John Seeker",
			Email:         "john@example.com",
			Role:          models.UserRoleSeeker,
			Qualification: "Bachelor of Computer Science",
			Experience:    models.ExperienceExperienced,
			Phone:         "+1 (555) 987-6543",
			Location:      "New York, NY",
			Bio:           "Full-stack developer with 3 years of experience in React and Node.js.",
			ResumeURL:     "https://example.com/resume/john-seeker.pdf",
		},
		{
			BaseModel:     models.BaseModel{ID: "4", CreatedAt: now},
			Name:          "Sarah Johnson",
			Email:         "sarah@example.com",
			Role:          models.UserRoleSeeker,
			Qualification: "Master of Computer Science",
			Experience:    models.ExperienceFresher,
			Phone:         "+1 (555) 456-7890",
			Location:      "Austin, TX",
			Bio:           "Recent graduate passionate about frontend development and UI/UX design.",
			ResumeURL:     "https://example.com/resume/sarah-johnson.pdf",
		},
	}
}

// DemoJobs - стартовые вакансии работодателя "2" в исходном порядке списка
func DemoJobs(now time.Time) []models.Job {
	daysAgo := func(d int) time.Time { return now.Add(-time.Duration(d) * 24 * time.Hour) }

	jobs := []models.Job{
		{
			BaseModel:    models.BaseModel{ID: "1", CreatedAt: daysAgo(7)},
			Title:        "Senior Frontend Developer",
			Description:  "We are looking for a Senior Frontend Developer to join our team. You will be responsible for developing and maintaining our web applications using React, TypeScript, and modern frontend technologies.",
			Company:      "TechCorp Solutions",
			Location:     "San Francisco, CA",
			Salary:       "$120,000 - $150,000",
			Type:         models.JobTypeFullTime,
			Requirements: "Bachelor's degree in Computer Science or related field. 5+ years of experience with React, TypeScript, and modern frontend frameworks. Experience with state management libraries like Redux or Context API.",
			Benefits:     "Health insurance, 401k matching, flexible work hours, remote work options, professional development budget.",
			PostedBy:     "2",
		},
		{
			BaseModel:    models.BaseModel{ID: "2", CreatedAt: daysAgo(5)},
			Title:        "Backend Developer",
			Description:  "Join our backend team to build scalable APIs and microservices. Experience with Node.js, Express, and MongoDB required.",
			Company:      "StartupHub",
			Location:     "New York, NY",
			Salary:       "$90,000 - $120,000",
			Type:         models.JobTypeFullTime,
			Requirements: "3+ years of experience with Node.js and Express. Experience with MongoDB or other NoSQL databases. Knowledge of RESTful API design and microservices architecture.",
			Benefits:     "Competitive salary, stock options, health insurance, unlimited PTO.",
			PostedBy:     "2",
		},
		{
			BaseModel:    models.BaseModel{ID: "3", CreatedAt: daysAgo(3)},
			Title:        "UI/UX Designer",
			Description:  "Create beautiful and intuitive user interfaces. Experience with Figma, Adobe Creative Suite, and user research methodologies preferred.",
			Company:      "DesignStudio",
			Location:     "Remote",
			Salary:       "$70,000 - $95,000",
			Type:         models.JobTypeContract,
			Requirements: "Bachelor's degree in Design or related field. 2+ years of experience in UI/UX design. Proficiency in Figma, Sketch, or Adobe XD. Portfolio demonstrating design thinking and problem-solving skills.",
			Benefits:     "Flexible schedule, remote work, creative freedom, design tool subscriptions.",
			PostedBy:     "2",
		},
	}

	for i := range jobs {
		jobs[i].UpdatedAt = jobs[i].CreatedAt
	}
	return jobs
}
