package services

import (
	"testing"

	"github.com/jobboardhq/jobboard-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEmployees(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewEmployeeService(users, newFakeNotifRepo())

	seedEmployer(t, users, "Acme HR", "hr@acme.test")
	seedSeeker(t, users, "Alice", "a@x.com", strPtr("Chef"))
	seedSeeker(t, users, "Bob", "b@x.com", nil)

	employees, err := svc.ListEmployees()
	require.NoError(t, err)
	assert.Len(t, employees, 2)
	for _, e := range employees {
		assert.Equal(t, domain.RoleJobseeker, e.Role)
	}
}

func TestContactEmployee(t *testing.T) {
	t.Run("creates a notification with the fixed template", func(t *testing.T) {
		users := newFakeUserRepo()
		notifs := newFakeNotifRepo()
		svc := NewEmployeeService(users, notifs)

		employer := seedEmployer(t, users, "Acme HR", "hr@acme.test")
		seeker := seedSeeker(t, users, "Alice", "a@x.com", strPtr("Chef"))

		n, err := svc.ContactEmployee(employer.ID, seeker.ID)
		require.NoError(t, err)

		assert.Equal(t, seeker.ID, n.UserID)
		assert.Equal(t, employer.ID, n.FromID)
		assert.Equal(t, domain.NotificationApplyEmployee, n.Type)
		assert.Equal(t, "Acme HR contacted you for a position", n.Message)
		assert.Nil(t, n.JobID)
	})

	t.Run("unknown employee", func(t *testing.T) {
		users := newFakeUserRepo()
		svc := NewEmployeeService(users, newFakeNotifRepo())
		employer := seedEmployer(t, users, "Acme HR", "hr@acme.test")

		_, err := svc.ContactEmployee(employer.ID, 999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGetUser(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewEmployeeService(users, newFakeNotifRepo())
	seeker := seedSeeker(t, users, "Alice", "a@x.com", strPtr("Chef"))

	got, err := svc.GetUser(seeker.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)

	_, err = svc.GetUser(999)
	assert.ErrorIs(t, err, ErrNotFound)
}
