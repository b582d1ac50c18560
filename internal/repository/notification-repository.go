package repository

import (
	"errors"
	"log"

	"github.com/jobboardhq/jobboard-backend/internal/domain"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	CreateNotification(n *domain.Notification) (*domain.Notification, error)
	SaveNotification(n *domain.Notification) error
	FindByRecipient(userID uint) ([]domain.Notification, error)
	FindNotificationByID(id uint) (*domain.Notification, error)
	DeleteByIDAndRecipient(id, userID uint) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) CreateNotification(n *domain.Notification) (*domain.Notification, error) {
	if n == nil {
		return nil, errors.New("nil notification")
	}

	if err := r.db.Create(n).Error; err != nil {
		log.Printf("create notification error: %v", err)
		return nil, err
	}

	return n, nil
}

func (r *notificationRepository) SaveNotification(n *domain.Notification) error {
	if n == nil {
		return errors.New("nil notification")
	}

	if err := r.db.Save(n).Error; err != nil {
		log.Printf("save notification error: %v", err)
		return err
	}
	return nil
}

func (r *notificationRepository) FindByRecipient(userID uint) ([]domain.Notification, error) {
	var notifications []domain.Notification

	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		log.Printf("find notifications error: %v", err)
		return nil, err
	}

	return notifications, nil
}

func (r *notificationRepository) FindNotificationByID(id uint) (*domain.Notification, error) {
	n := &domain.Notification{}

	if err := r.db.First(n, id).Error; err != nil {
		return nil, err
	}

	return n, nil
}

// DeleteByIDAndRecipient deletes only when both id and owner match, so a
// recipient can never remove someone else's notification. The affected row
// count distinguishes a real delete from a miss.
func (r *notificationRepository) DeleteByIDAndRecipient(id, userID uint) (int64, error) {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Notification{})
	if res.Error != nil {
		log.Printf("delete notification error: %v", res.Error)
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
