package repositories

import (
	"errors"

	"tekfix_jobboard/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	// FindAll возвращает вакансии в порядке списка: новые добавляются в начало
	FindAll() ([]models.Job, error)
	FindByID(id string) (*models.Job, error)
	FindByPoster(userID string) ([]models.Job, error)
	Create(job *models.Job) error
	Update(job *models.Job) error
	Delete(id string) error

	// Admin operations
	CountAll() (int64, error)
	CountByType() (map[models.JobType]int64, error)
	Search(query string) ([]models.Job, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

// newestFirst - тот же порядок, что у памяти: последняя вставка первой
func (r *JobRepositoryImpl) newestFirst() *gorm.DB {
	return r.db.Order("seq DESC")
}

func (r *JobRepositoryImpl) FindAll() ([]models.Job, error) {
	var jobs []models.Job
	err := r.newestFirst().Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindByPoster(userID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.newestFirst().Where("posted_by = ?", userID).Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) Update(job *models.Job) error {
	result := r.db.Model(&models.Job{}).Where("id = ?", job.ID).Updates(map[string]interface{}{
		"title":        job.Title,
		"description":  job.Description,
		"company":      job.Company,
		"location":     job.Location,
		"salary":       job.Salary,
		"type":         job.Type,
		"requirements": job.Requirements,
		"benefits":     job.Benefits,
		"updated_at":   job.UpdatedAt,
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Job{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Count(&count).Error
	return count, err
}

func (r *JobRepositoryImpl) CountByType() (map[models.JobType]int64, error) {
	type typeCount struct {
		Type  models.JobType
		Count int64
	}

	var rows []typeCount
	err := r.db.Model(&models.Job{}).
		Select("type, COUNT(*) as count").
		Group("type").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[models.JobType]int64, len(rows))
	for _, row := range rows {
		result[row.Type] = row.Count
	}
	return result, nil
}

func (r *JobRepositoryImpl) Search(query string) ([]models.Job, error) {
	var jobs []models.Job
	q := r.newestFirst()
	if query != "" {
		pattern := containsPattern(query)
		q = q.Where("LOWER(title) LIKE ? ESCAPE '!' OR LOWER(company) LIKE ? ESCAPE '!'", pattern, pattern)
	}
	err := q.Find(&jobs).Error
	return jobs, err
}
