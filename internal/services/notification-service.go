package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jobboardhq/jobboard-backend/internal/domain"
	"github.com/jobboardhq/jobboard-backend/internal/repository"
	"gorm.io/gorm"
)

type NotificationService interface {
	List(userID uint) ([]domain.Notification, error)
	Respond(notificationID, responderID uint, response string) (*domain.Notification, *domain.Notification, error)
	Delete(notificationID, userID uint) error
}

type notificationService struct {
	notifRepo repository.NotificationRepository
}

func NewNotificationService(notifRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notifRepo: notifRepo}
}

func (s *notificationService) List(userID uint) ([]domain.Notification, error) {
	return s.notifRepo.FindByRecipient(userID)
}

// Respond stores the response text on the original notification for
// record-keeping and creates a second cvResponse notification addressed to
// the original sender. Two persisted artifacts per response is intentional.
func (s *notificationService) Respond(notificationID, responderID uint, response string) (*domain.Notification, *domain.Notification, error) {
	response = strings.TrimSpace(response)
	if response == "" {
		return nil, nil, fmt.Errorf("%w: response is required", ErrValidation)
	}

	original, err := s.notifRepo.FindNotificationByID(notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: notification", ErrNotFound)
		}
		return nil, nil, err
	}

	original.Response = response
	if err := s.notifRepo.SaveNotification(original); err != nil {
		return nil, nil, err
	}

	followUp, err := s.notifRepo.CreateNotification(&domain.Notification{
		UserID:  original.FromID,
		FromID:  responderID,
		Type:    domain.NotificationCVResponse,
		JobID:   original.JobID,
		Message: response,
	})
	if err != nil {
		return nil, nil, err
	}

	return original, followUp, nil
}

func (s *notificationService) Delete(notificationID, userID uint) error {
	affected, err := s.notifRepo.DeleteByIDAndRecipient(notificationID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: notification", ErrNotFound)
	}
	return nil
}
