package services

import (
	"context"
	"errors"
	"time"

	"github.com/jobboardhq/jobboard-backend/internal/domain"
	"gorm.io/gorm"
)

// In-memory fakes standing in for the gorm repositories. They reproduce the
// compound code+expiry lookups the real queries perform.

type fakeUserRepo struct {
	users   map[uint]*domain.User
	nextID  uint
	saveErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*domain.User{}}
}

func (r *fakeUserRepo) CreateUser(user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, errors.New("duplicate email")
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return user, nil
}

func (r *fakeUserRepo) SaveUser(user *domain.User) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindUserByEmail(email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindVerifiedUserByEmail(email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.IsEmailVerified {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindUserByID(userID uint) (*domain.User, error) {
	if u, ok := r.users[userID]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindUserByValidResetCode(email, code string, at time.Time) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.PasswordResetCode != "" && u.PasswordResetCode == code &&
			u.PasswordResetExpires != nil && u.PasswordResetExpires.After(at) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindJobseekers() ([]domain.User, error) {
	var seekers []domain.User
	for _, u := range r.users {
		if u.Role == domain.RoleJobseeker {
			seekers = append(seekers, *u)
		}
	}
	return seekers, nil
}

type fakePendingRepo struct {
	pending map[string]*domain.PendingVerification
	nextID  uint
}

func newFakePendingRepo() *fakePendingRepo {
	return &fakePendingRepo{pending: map[string]*domain.PendingVerification{}}
}

func (r *fakePendingRepo) Upsert(email, code string, expiresAt time.Time) error {
	if p, ok := r.pending[email]; ok {
		p.Code = code
		p.ExpiresAt = expiresAt
		return nil
	}
	r.nextID++
	r.pending[email] = &domain.PendingVerification{
		ID:        r.nextID,
		Email:     email,
		Code:      code,
		ExpiresAt: expiresAt,
	}
	return nil
}

func (r *fakePendingRepo) FindByEmail(email string) (*domain.PendingVerification, error) {
	if p, ok := r.pending[email]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePendingRepo) FindValid(email, code string, at time.Time) (*domain.PendingVerification, error) {
	if p, ok := r.pending[email]; ok && p.Code == code && p.ExpiresAt.After(at) {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePendingRepo) DeleteByEmail(email string) error {
	delete(r.pending, email)
	return nil
}

type fakeJobRepo struct {
	jobs   map[uint]*domain.Job
	nextID uint
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[uint]*domain.Job{}}
}

func (r *fakeJobRepo) CreateJob(job *domain.Job) (*domain.Job, error) {
	r.nextID++
	job.ID = r.nextID
	job.CreatedAt = time.Now()
	r.jobs[job.ID] = job
	return job, nil
}

func (r *fakeJobRepo) SaveJob(job *domain.Job) error {
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) FindAll() ([]domain.Job, error) {
	var jobs []domain.Job
	for _, j := range r.jobs {
		jobs = append(jobs, *j)
	}
	return jobs, nil
}

func (r *fakeJobRepo) FindJobByID(jobID uint) (*domain.Job, error) {
	if j, ok := r.jobs[jobID]; ok {
		return j, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeJobRepo) FindJobsByPoster(posterID uint) ([]domain.Job, error) {
	var jobs []domain.Job
	for _, j := range r.jobs {
		if j.PosterID == posterID {
			jobs = append(jobs, *j)
		}
	}
	return jobs, nil
}

func (r *fakeJobRepo) DeleteJob(jobID uint) error {
	delete(r.jobs, jobID)
	return nil
}

type fakeNotifRepo struct {
	notifications map[uint]*domain.Notification
	nextID        uint

	// failCreates makes the next N CreateNotification calls fail, for
	// exercising the best-effort fan-out loop.
	failCreates int
}

func newFakeNotifRepo() *fakeNotifRepo {
	return &fakeNotifRepo{notifications: map[uint]*domain.Notification{}}
}

func (r *fakeNotifRepo) CreateNotification(n *domain.Notification) (*domain.Notification, error) {
	if r.failCreates > 0 {
		r.failCreates--
		return nil, errors.New("write failed")
	}
	r.nextID++
	n.ID = r.nextID
	n.CreatedAt = time.Now()
	r.notifications[n.ID] = n
	return n, nil
}

func (r *fakeNotifRepo) SaveNotification(n *domain.Notification) error {
	r.notifications[n.ID] = n
	return nil
}

func (r *fakeNotifRepo) FindByRecipient(userID uint) ([]domain.Notification, error) {
	var out []domain.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *fakeNotifRepo) FindNotificationByID(id uint) (*domain.Notification, error) {
	if n, ok := r.notifications[id]; ok {
		return n, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeNotifRepo) DeleteByIDAndRecipient(id, userID uint) (int64, error) {
	if n, ok := r.notifications[id]; ok && n.UserID == userID {
		delete(r.notifications, id)
		return 1, nil
	}
	return 0, nil
}

// fakeMailer records every delivery and can be told to fail.
type fakeMailer struct {
	verificationCodes []string
	resetCodes        []string
	lastTo            string
	fail              bool
}

func (m *fakeMailer) SendVerificationCode(to, code string) error {
	if m.fail {
		return errors.New("smtp unreachable")
	}
	m.lastTo = to
	m.verificationCodes = append(m.verificationCodes, code)
	return nil
}

func (m *fakeMailer) SendPasswordResetCode(to, code string) error {
	if m.fail {
		return errors.New("smtp unreachable")
	}
	m.lastTo = to
	m.resetCodes = append(m.resetCodes, code)
	return nil
}

func (m *fakeMailer) lastVerificationCode() string {
	if len(m.verificationCodes) == 0 {
		return ""
	}
	return m.verificationCodes[len(m.verificationCodes)-1]
}

func (m *fakeMailer) lastResetCode() string {
	if len(m.resetCodes) == 0 {
		return ""
	}
	return m.resetCodes[len(m.resetCodes)-1]
}

type fakeProducer struct {
	keys []string
}

func (p *fakeProducer) PublishMessage(key, value []byte) error {
	p.keys = append(p.keys, string(key))
	return nil
}

type fakeUploader struct {
	uploaded map[string][]byte
	fail     bool
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{uploaded: map[string][]byte{}}
}

func (u *fakeUploader) UploadBytes(_ context.Context, folder, filename string, b []byte) (string, error) {
	if u.fail {
		return "", errors.New("upload failed")
	}
	u.uploaded[filename] = b
	return "https://blobs.test/" + folder + "/" + filename, nil
}
