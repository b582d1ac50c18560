package repository

import (
	"errors"
	"log"

	"github.com/jobboardhq/jobboard-backend/internal/domain"
	"gorm.io/gorm"
)

type JobRepository interface {
	CreateJob(job *domain.Job) (*domain.Job, error)
	SaveJob(job *domain.Job) error
	FindAll() ([]domain.Job, error)
	FindJobByID(jobID uint) (*domain.Job, error)
	FindJobsByPoster(posterID uint) ([]domain.Job, error)
	DeleteJob(jobID uint) error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) CreateJob(job *domain.Job) (*domain.Job, error) {
	if job == nil {
		return nil, errors.New("nil job")
	}

	if err := r.db.Create(job).Error; err != nil {
		log.Printf("create job error: %v", err)
		return nil, err
	}

	return job, nil
}

func (r *jobRepository) SaveJob(job *domain.Job) error {
	if job == nil {
		return errors.New("nil job")
	}

	if err := r.db.Save(job).Error; err != nil {
		log.Printf("save job error: %v", err)
		return err
	}
	return nil
}

func (r *jobRepository) FindAll() ([]domain.Job, error) {
	var jobs []domain.Job

	if err := r.db.Order("created_at DESC").Find(&jobs).Error; err != nil {
		log.Printf("find jobs error: %v", err)
		return nil, err
	}

	return jobs, nil
}

func (r *jobRepository) FindJobByID(jobID uint) (*domain.Job, error) {
	job := &domain.Job{}

	if err := r.db.First(job, jobID).Error; err != nil {
		return nil, err
	}

	return job, nil
}

func (r *jobRepository) FindJobsByPoster(posterID uint) ([]domain.Job, error) {
	var jobs []domain.Job

	if err := r.db.Where("poster_id = ?", posterID).Order("created_at DESC").Find(&jobs).Error; err != nil {
		log.Printf("find employer jobs error: %v", err)
		return nil, err
	}

	return jobs, nil
}

func (r *jobRepository) DeleteJob(jobID uint) error {
	return r.db.Delete(&domain.Job{}, jobID).Error
}
