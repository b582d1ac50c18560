package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jobboardhq/jobboard-backend/internal/domain"
	"github.com/jobboardhq/jobboard-backend/internal/dto"
	"github.com/jobboardhq/jobboard-backend/internal/interfaces"
	"github.com/jobboardhq/jobboard-backend/internal/repository"
	"gorm.io/gorm"
)

const (
	cvUploadFolder  = "jobboard/cv"
	cvUploadTimeout = 20 * time.Second
)

type JobService interface {
	ListJobs() ([]domain.Job, error)
	PostJob(posterID uint, input dto.JobRequest) (*domain.Job, error)
	ApplyJob(jobID, seekerID uint, cv *dto.CVUpload, coverLetter string) (*domain.Notification, error)
	ListEmployerJobs(employerID uint) ([]domain.Job, error)
	UpdateJob(jobID, userID uint, input dto.JobUpdateRequest) (*domain.Job, error)
	DeleteJob(jobID, userID uint) error
}

type jobService struct {
	jobRepo   repository.JobRepository
	userRepo  repository.UserRepository
	notifRepo repository.NotificationRepository
	uploader  interfaces.Uploader
	producer  interfaces.ProducerHandler
}

func NewJobService(
	jobRepo repository.JobRepository,
	userRepo repository.UserRepository,
	notifRepo repository.NotificationRepository,
	uploader interfaces.Uploader,
	producer interfaces.ProducerHandler,
) JobService {
	return &jobService{
		jobRepo:   jobRepo,
		userRepo:  userRepo,
		notifRepo: notifRepo,
		uploader:  uploader,
		producer:  producer,
	}
}

// positionMatches is the entire matching algorithm: exact equality of the
// job title and the seeker's declared position after trimming, ignoring case.
func positionMatches(title string, position *string) bool {
	if position == nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(title), strings.TrimSpace(*position))
}

func (s *jobService) ListJobs() ([]domain.Job, error) {
	return s.jobRepo.FindAll()
}

// PostJob persists the job, then fans out one notification per jobseeker whose
// position matches the title. The job is durable before any notification
// referencing it is written, and the fan-out is best-effort: a failed write is
// logged and the loop continues.
func (s *jobService) PostJob(posterID uint, input dto.JobRequest) (*domain.Job, error) {
	title := strings.TrimSpace(input.Title)
	company := strings.TrimSpace(input.Company)
	location := strings.TrimSpace(input.Location)
	contact := strings.TrimSpace(input.Contact)

	if title == "" || company == "" || location == "" || contact == "" {
		return nil, fmt.Errorf("%w: title, company, location and contact are required", ErrValidation)
	}
	if input.Salary < 0 {
		return nil, fmt.Errorf("%w: salary cannot be negative", ErrValidation)
	}

	job, err := s.jobRepo.CreateJob(&domain.Job{
		Title:       title,
		Description: input.Description,
		Company:     company,
		Location:    location,
		Contact:     contact,
		PosterID:    posterID,
		Salary:      input.Salary,
	})
	if err != nil {
		return nil, err
	}

	matches := s.notifyMatchingSeekers(job)
	s.publishJobPosted(job, matches)

	return job, nil
}

func (s *jobService) notifyMatchingSeekers(job *domain.Job) int {
	seekers, err := s.userRepo.FindJobseekers()
	if err != nil {
		log.Printf("job %d fan-out: list jobseekers: %v", job.ID, err)
		return 0
	}

	matches := 0
	for _, seeker := range seekers {
		if !positionMatches(job.Title, seeker.Position) {
			continue
		}
		matches++

		_, err := s.notifRepo.CreateNotification(&domain.Notification{
			UserID:  seeker.ID,
			FromID:  job.PosterID,
			Type:    domain.NotificationApplyEmployee,
			JobID:   &job.ID,
			Message: fmt.Sprintf("A new job for %q has been posted", job.Title),
			Match:   true,
		})
		if err != nil {
			// Prior writes stay; nothing spans the loop.
			log.Printf("job %d fan-out: notify seeker %d: %v", job.ID, seeker.ID, err)
		}
	}

	return matches
}

// ApplyJob records an application as a notification to the poster, carrying
// the optional CV (uploaded to the blob store) and cover letter verbatim.
func (s *jobService) ApplyJob(jobID, seekerID uint, cv *dto.CVUpload, coverLetter string) (*domain.Notification, error) {
	job, err := s.jobRepo.FindJobByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: job", ErrNotFound)
		}
		return nil, err
	}

	seeker, err := s.userRepo.FindUserByID(seekerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", ErrNotFound)
		}
		return nil, err
	}

	cvURL := ""
	if cv != nil && len(cv.Data) > 0 {
		cvURL, err = s.uploadCV(cv)
		if err != nil {
			return nil, fmt.Errorf("cv upload failed: %w", err)
		}
	}

	return s.notifRepo.CreateNotification(&domain.Notification{
		UserID:      job.PosterID,
		FromID:      seeker.ID,
		Type:        domain.NotificationApplyJob,
		JobID:       &job.ID,
		Message:     fmt.Sprintf("%s applied for %s", seeker.Name, job.Title),
		Match:       positionMatches(job.Title, seeker.Position),
		CV:          cvURL,
		CoverLetter: coverLetter,
	})
}

func (s *jobService) uploadCV(cv *dto.CVUpload) (string, error) {
	if s.uploader == nil {
		return "", errors.New("blob store not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cvUploadTimeout)
	defer cancel()

	ext := filepath.Ext(cv.Filename)
	name := uuid.NewString() + ext

	return s.uploader.UploadBytes(ctx, cvUploadFolder, name, cv.Data)
}

func (s *jobService) ListEmployerJobs(employerID uint) ([]domain.Job, error) {
	return s.jobRepo.FindJobsByPoster(employerID)
}

func (s *jobService) UpdateJob(jobID, userID uint, input dto.JobUpdateRequest) (*domain.Job, error) {
	job, err := s.ownedJob(jobID, userID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		t := strings.TrimSpace(*input.Title)
		if t == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
		}
		job.Title = t
	}
	if input.Description != nil {
		job.Description = *input.Description
	}
	if input.Company != nil {
		job.Company = strings.TrimSpace(*input.Company)
	}
	if input.Location != nil {
		job.Location = strings.TrimSpace(*input.Location)
	}
	if input.Contact != nil {
		job.Contact = strings.TrimSpace(*input.Contact)
	}
	if input.Salary != nil {
		if *input.Salary < 0 {
			return nil, fmt.Errorf("%w: salary cannot be negative", ErrValidation)
		}
		job.Salary = *input.Salary
	}

	if err := s.jobRepo.SaveJob(job); err != nil {
		return nil, err
	}

	return job, nil
}

func (s *jobService) DeleteJob(jobID, userID uint) error {
	if _, err := s.ownedJob(jobID, userID); err != nil {
		return err
	}
	return s.jobRepo.DeleteJob(jobID)
}

func (s *jobService) ownedJob(jobID, userID uint) (*domain.Job, error) {
	job, err := s.jobRepo.FindJobByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: job", ErrNotFound)
		}
		return nil, err
	}
	if job.PosterID != userID {
		return nil, ErrForbidden
	}
	return job, nil
}

func (s *jobService) publishJobPosted(job *domain.Job, matches int) {
	if s.producer == nil {
		return
	}

	payload, err := json.Marshal(dto.JobPostedEvent{
		JobID:    job.ID,
		PosterID: job.PosterID,
		Title:    job.Title,
		Matches:  matches,
		PostedAt: job.CreatedAt.Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	if err := s.producer.PublishMessage([]byte(dto.EventJobPosted), payload); err != nil {
		log.Printf("publish %s event: %v", dto.EventJobPosted, err)
	}
}
