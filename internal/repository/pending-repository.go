package repository

import (
	"errors"
	"time"

	"github.com/jobboardhq/jobboard-backend/internal/domain"
	"gorm.io/gorm"
)

type PendingVerificationRepository interface {
	Upsert(email, code string, expiresAt time.Time) error
	FindByEmail(email string) (*domain.PendingVerification, error)
	FindValid(email, code string, at time.Time) (*domain.PendingVerification, error)
	DeleteByEmail(email string) error
}

type pendingVerificationRepository struct {
	db *gorm.DB
}

func NewPendingVerificationRepository(db *gorm.DB) PendingVerificationRepository {
	return &pendingVerificationRepository{db: db}
}

// Upsert overwrites any code previously issued for the email, so at most one
// pending code exists per address.
func (r *pendingVerificationRepository) Upsert(email, code string, expiresAt time.Time) error {
	pending := &domain.PendingVerification{}

	err := r.db.First(pending, "email = ?", email).Error
	switch {
	case err == nil:
		pending.Code = code
		pending.ExpiresAt = expiresAt
		return r.db.Save(pending).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return r.db.Create(&domain.PendingVerification{
			Email:     email,
			Code:      code,
			ExpiresAt: expiresAt,
		}).Error
	default:
		return err
	}
}

func (r *pendingVerificationRepository) FindByEmail(email string) (*domain.PendingVerification, error) {
	pending := &domain.PendingVerification{}

	if err := r.db.First(pending, "email = ?", email).Error; err != nil {
		return nil, err
	}

	return pending, nil
}

func (r *pendingVerificationRepository) FindValid(email, code string, at time.Time) (*domain.PendingVerification, error) {
	pending := &domain.PendingVerification{}

	err := r.db.
		Where("email = ? AND code = ? AND expires_at > ?", email, code, at).
		First(pending).Error
	if err != nil {
		return nil, err
	}

	return pending, nil
}

func (r *pendingVerificationRepository) DeleteByEmail(email string) error {
	return r.db.Where("email = ?", email).Delete(&domain.PendingVerification{}).Error
}
