package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jobboardhq/jobboard-backend/internal/domain"
	"github.com/jobboardhq/jobboard-backend/internal/dto"
	"github.com/jobboardhq/jobboard-backend/internal/helper"
	"github.com/jobboardhq/jobboard-backend/internal/helper/utils"
	"github.com/jobboardhq/jobboard-backend/internal/interfaces"
	"github.com/jobboardhq/jobboard-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	codeValidity      = 10 * time.Minute
	minPasswordLength = 6

	// CheckCode kinds.
	CodeKindVerify = "verify"
	CodeKindReset  = "reset"
)

// dummy bcrypt hash compared against when the email is unknown, so login
// latency does not reveal whether an account exists.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type AuthService interface {
	SendVerificationCode(email string) error
	VerifyEmailAndRegister(input dto.VerifyEmailRequest) (*domain.User, string, error)
	ResendVerificationCode(email string) error
	CheckCode(email, code, kind string) error
	ForgotPassword(email string) error
	ResetPassword(input dto.ResetPasswordRequest) error
	Login(input dto.UserLogin) (*domain.User, string, error)
}

type authService struct {
	repo        repository.UserRepository
	pendingRepo repository.PendingVerificationRepository
	mailer      interfaces.Mailer
	auth        helper.Auth
	producer    interfaces.ProducerHandler
}

func NewAuthService(
	repo repository.UserRepository,
	pendingRepo repository.PendingVerificationRepository,
	mailer interfaces.Mailer,
	auth helper.Auth,
	producer interfaces.ProducerHandler,
) AuthService {
	return &authService{
		repo:        repo,
		pendingRepo: pendingRepo,
		mailer:      mailer,
		auth:        auth,
		producer:    producer,
	}
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

// SendVerificationCode issues a fresh code for the email unless a verified
// account already holds it. Re-requests overwrite the previous code.
func (s *authService) SendVerificationCode(email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}

	if _, err := s.repo.FindVerifiedUserByEmail(email); err == nil {
		return ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	code, err := utils.GenerateVerificationCode()
	if err != nil {
		return err
	}
	expiresAt := time.Now().Add(codeValidity)

	if err := s.pendingRepo.Upsert(email, code, expiresAt); err != nil {
		return err
	}

	// The code is already persisted; a delivery failure is surfaced but the
	// caller may retry through resend without a new code being forced.
	if err := s.mailer.SendVerificationCode(email, code); err != nil {
		return fmt.Errorf("%w: %v", ErrEmailDelivery, err)
	}

	return nil
}

// VerifyEmailAndRegister consumes a pending code and creates the account in
// its final, verified form. Codes are single-use: the pending record is
// removed as part of a successful registration.
func (s *authService) VerifyEmailAndRegister(input dto.VerifyEmailRequest) (*domain.User, string, error) {
	email := normalizeEmail(input.Email)
	code := strings.TrimSpace(input.VerificationCode)
	name := strings.TrimSpace(input.Name)
	contact := strings.TrimSpace(input.Contact)
	role := strings.TrimSpace(strings.ToLower(input.Role))
	position := strings.TrimSpace(input.Position)

	if email == "" || code == "" {
		return nil, "", fmt.Errorf("%w: email and verification code are required", ErrValidation)
	}
	if name == "" {
		return nil, "", fmt.Errorf("%w: name is required", ErrValidation)
	}
	if contact == "" {
		return nil, "", fmt.Errorf("%w: contact number is required", ErrValidation)
	}
	if role != domain.RoleEmployer && role != domain.RoleJobseeker {
		return nil, "", fmt.Errorf("%w: role must be employer or jobseeker", ErrValidation)
	}
	if role == domain.RoleJobseeker {
		if position == "" {
			return nil, "", fmt.Errorf("%w: position is required for job seekers", ErrValidation)
		}
		if input.YearsOfExperience == nil {
			return nil, "", fmt.Errorf("%w: years of experience is required", ErrValidation)
		}
		if *input.YearsOfExperience < 0 {
			return nil, "", fmt.Errorf("%w: years of experience cannot be negative", ErrValidation)
		}
	}
	if len(input.Password) < minPasswordLength {
		return nil, "", ErrWeakPassword
	}

	if _, err := s.pendingRepo.FindValid(email, code, time.Now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidOrExpiredCode
		}
		return nil, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", errors.New("failed to hash password")
	}

	user := &domain.User{
		Name:            name,
		Email:           email,
		PasswordHash:    string(hashedPassword),
		Role:            role,
		Contact:         contact,
		IsEmailVerified: true,
	}
	if role == domain.RoleJobseeker {
		user.Position = &position
		user.YearsOfExperience = input.YearsOfExperience
	}

	if _, err := s.repo.CreateUser(user); err != nil {
		if helper.IsDuplicateKey(err) {
			return nil, "", ErrConflict
		}
		return nil, "", err
	}

	if err := s.pendingRepo.DeleteByEmail(email); err != nil {
		log.Printf("clear pending verification for %s: %v", email, err)
	}

	s.publishUserVerified(user)

	token, err := s.auth.GenerateToken(user.ID, user.Name, user.Role)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *authService) ResendVerificationCode(email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}

	if _, err := s.repo.FindVerifiedUserByEmail(email); err == nil {
		return ErrAlreadyVerified
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if _, err := s.pendingRepo.FindByEmail(email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	code, err := utils.GenerateVerificationCode()
	if err != nil {
		return err
	}
	if err := s.pendingRepo.Upsert(email, code, time.Now().Add(codeValidity)); err != nil {
		return err
	}

	if err := s.mailer.SendVerificationCode(email, code); err != nil {
		return fmt.Errorf("%w: %v", ErrEmailDelivery, err)
	}

	return nil
}

// CheckCode is a read-only probe used by clients to validate a code before
// committing; it never consumes the code.
func (s *authService) CheckCode(email, code, kind string) error {
	email = normalizeEmail(email)
	code = strings.TrimSpace(code)
	if email == "" || code == "" {
		return fmt.Errorf("%w: email and code are required", ErrValidation)
	}

	var err error
	if kind == CodeKindReset {
		_, err = s.repo.FindUserByValidResetCode(email, code, time.Now())
	} else {
		_, err = s.pendingRepo.FindValid(email, code, time.Now())
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidOrExpiredCode
		}
		return err
	}

	return nil
}

func (s *authService) ForgotPassword(email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}

	user, err := s.repo.FindVerifiedUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	code, err := utils.GenerateVerificationCode()
	if err != nil {
		return err
	}
	expiresAt := time.Now().Add(codeValidity)

	user.PasswordResetCode = code
	user.PasswordResetExpires = &expiresAt
	if err := s.repo.SaveUser(user); err != nil {
		return err
	}

	if err := s.mailer.SendPasswordResetCode(email, code); err != nil {
		return fmt.Errorf("%w: %v", ErrEmailDelivery, err)
	}

	return nil
}

func (s *authService) ResetPassword(input dto.ResetPasswordRequest) error {
	email := normalizeEmail(input.Email)
	code := strings.TrimSpace(input.ResetCode)

	if email == "" || code == "" {
		return fmt.Errorf("%w: email and reset code are required", ErrValidation)
	}
	if len(input.NewPassword) < minPasswordLength {
		return ErrWeakPassword
	}

	user, err := s.repo.FindUserByValidResetCode(email, code, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidOrExpiredCode
		}
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("failed to hash password")
	}

	user.PasswordHash = string(hashedPassword)
	user.PasswordResetCode = ""
	user.PasswordResetExpires = nil

	return s.repo.SaveUser(user)
}

func (s *authService) Login(input dto.UserLogin) (*domain.User, string, error) {
	email := normalizeEmail(input.Email)
	password := input.Password

	if email == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	user, findErr := s.repo.FindUserByEmail(email)

	passwordHash := dummyPasswordHash
	if findErr == nil {
		passwordHash = user.PasswordHash
	}

	// bcrypt comparison always runs, known email or not.
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if findErr != nil || compareErr != nil {
		return nil, "", ErrInvalidCredentials
	}
	if !user.IsEmailVerified {
		return nil, "", ErrEmailNotVerified
	}

	token, err := s.auth.GenerateToken(user.ID, user.Name, user.Role)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *authService) publishUserVerified(user *domain.User) {
	if s.producer == nil {
		return
	}

	payload, err := json.Marshal(dto.UserVerifiedEvent{
		UserID:     user.ID,
		Email:      user.Email,
		Role:       user.Role,
		VerifiedAt: time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	if err := s.producer.PublishMessage([]byte(dto.EventUserVerified), payload); err != nil {
		log.Printf("publish %s event: %v", dto.EventUserVerified, err)
	}
}
