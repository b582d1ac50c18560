package repository

import (
	"errors"
	"log"
	"time"

	"github.com/jobboardhq/jobboard-backend/internal/domain"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(user *domain.User) (*domain.User, error)
	SaveUser(user *domain.User) error
	FindUserByEmail(email string) (*domain.User, error)
	FindVerifiedUserByEmail(email string) (*domain.User, error)
	FindUserByID(userID uint) (*domain.User, error)
	FindUserByValidResetCode(email, code string, at time.Time) (*domain.User, error)
	FindJobseekers() ([]domain.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("nil user")
	}

	if err := r.db.Create(user).Error; err != nil {
		log.Printf("create user error: %v", err)
		return nil, err
	}

	return user, nil
}

func (r *userRepository) SaveUser(user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}

	if err := r.db.Save(user).Error; err != nil {
		log.Printf("save user error: %v", err)
		return err
	}
	return nil
}

func (r *userRepository) FindUserByEmail(email string) (*domain.User, error) {
	user := &domain.User{}

	if err := r.db.First(user, "email = ?", email).Error; err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) FindVerifiedUserByEmail(email string) (*domain.User, error) {
	user := &domain.User{}

	if err := r.db.Where("email = ? AND is_email_verified = ?", email, true).First(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) FindUserByID(userID uint) (*domain.User, error) {
	user := &domain.User{}

	if err := r.db.First(user, userID).Error; err != nil {
		return nil, err
	}

	return user, nil
}

// FindUserByValidResetCode mirrors the compound lookup used for verification:
// email, exact code and an unexpired window must all match in one query.
func (r *userRepository) FindUserByValidResetCode(email, code string, at time.Time) (*domain.User, error) {
	user := &domain.User{}

	err := r.db.
		Where("email = ? AND password_reset_code = ? AND password_reset_expires > ?", email, code, at).
		First(user).Error
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) FindJobseekers() ([]domain.User, error) {
	var users []domain.User

	if err := r.db.Where("role = ?", domain.RoleJobseeker).Find(&users).Error; err != nil {
		log.Printf("find jobseekers error: %v", err)
		return nil, err
	}

	return users, nil
}
