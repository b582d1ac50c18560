package services

import (
	"errors"
	"fmt"

	"github.com/jobboardhq/jobboard-backend/internal/domain"
	"github.com/jobboardhq/jobboard-backend/internal/repository"
	"gorm.io/gorm"
)

type EmployeeService interface {
	ListEmployees() ([]domain.User, error)
	ContactEmployee(employerID, employeeID uint) (*domain.Notification, error)
	GetUser(userID uint) (*domain.User, error)
}

type employeeService struct {
	userRepo  repository.UserRepository
	notifRepo repository.NotificationRepository
}

func NewEmployeeService(
	userRepo repository.UserRepository,
	notifRepo repository.NotificationRepository,
) EmployeeService {
	return &employeeService{
		userRepo:  userRepo,
		notifRepo: notifRepo,
	}
}

func (s *employeeService) ListEmployees() ([]domain.User, error) {
	return s.userRepo.FindJobseekers()
}

// ContactEmployee sends a fixed-template notification from an employer to a
// jobseeker; there is no job context on this one.
func (s *employeeService) ContactEmployee(employerID, employeeID uint) (*domain.Notification, error) {
	employee, err := s.userRepo.FindUserByID(employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: employee", ErrNotFound)
		}
		return nil, err
	}

	employer, err := s.userRepo.FindUserByID(employerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: employer", ErrNotFound)
		}
		return nil, err
	}

	return s.notifRepo.CreateNotification(&domain.Notification{
		UserID:  employee.ID,
		FromID:  employer.ID,
		Type:    domain.NotificationApplyEmployee,
		Message: fmt.Sprintf("%s contacted you for a position", employer.Name),
	})
}

func (s *employeeService) GetUser(userID uint) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}
