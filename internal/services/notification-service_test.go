package services

import (
	"testing"

	"github.com/jobboardhq/jobboard-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespond(t *testing.T) {
	t.Run("stores the response and creates a follow-up for the sender", func(t *testing.T) {
		notifs := newFakeNotifRepo()
		svc := NewNotificationService(notifs)

		jobID := uint(7)
		original, err := notifs.CreateNotification(&domain.Notification{
			UserID:  1, // employer inbox
			FromID:  2, // applicant
			Type:    domain.NotificationApplyJob,
			JobID:   &jobID,
			Message: "Alice applied for Chef",
		})
		require.NoError(t, err)

		updated, followUp, err := svc.Respond(original.ID, 1, "Thanks!")
		require.NoError(t, err)

		assert.Equal(t, "Thanks!", updated.Response)
		assert.Equal(t, original.ID, updated.ID)

		assert.Equal(t, uint(2), followUp.UserID, "follow-up goes back to the original sender")
		assert.Equal(t, uint(1), followUp.FromID)
		assert.Equal(t, domain.NotificationCVResponse, followUp.Type)
		require.NotNil(t, followUp.JobID)
		assert.Equal(t, jobID, *followUp.JobID)
		assert.Equal(t, "Thanks!", followUp.Message)

		// Both artifacts are persisted.
		assert.Len(t, notifs.notifications, 2)
	})

	t.Run("empty response is rejected", func(t *testing.T) {
		notifs := newFakeNotifRepo()
		svc := NewNotificationService(notifs)

		original, err := notifs.CreateNotification(&domain.Notification{UserID: 1, FromID: 2})
		require.NoError(t, err)

		_, _, err = svc.Respond(original.ID, 1, "   ")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown notification", func(t *testing.T) {
		svc := NewNotificationService(newFakeNotifRepo())

		_, _, err := svc.Respond(999, 1, "Thanks!")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteNotification(t *testing.T) {
	notifs := newFakeNotifRepo()
	svc := NewNotificationService(notifs)

	n, err := notifs.CreateNotification(&domain.Notification{UserID: 1, FromID: 2})
	require.NoError(t, err)

	t.Run("only the recipient can delete", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(n.ID, 2), ErrNotFound)
		assert.Len(t, notifs.notifications, 1)
	})

	t.Run("recipient delete succeeds once", func(t *testing.T) {
		require.NoError(t, svc.Delete(n.ID, 1))
		assert.Empty(t, notifs.notifications)

		assert.ErrorIs(t, svc.Delete(n.ID, 1), ErrNotFound)
	})
}
