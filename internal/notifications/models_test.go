package notifications

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationBuilder(t *testing.T) {
	n := NewNotification(NotificationBookingConfirmed, "user-1", "casey@example.com").
		WithBooking("booking-1", "ABC234", "showtime-1", []string{"A1", "A2"}, 400).
		WithContent("Your booking is confirmed", "See you there")

	assert.NotEmpty(t, n.ID)
	assert.Equal(t, StatusPending, n.Status)
	assert.Equal(t, "ABC234", n.BookingReference)
	assert.Equal(t, []string{"A1", "A2"}, n.Seats)
	assert.Equal(t, 3, n.MaxRetries)
}

func TestPartitionKeyPrefersUserID(t *testing.T) {
	n := NewNotification(NotificationBookingConfirmed, "user-1", "casey@example.com")
	assert.Equal(t, "user-1", n.PartitionKey())

	anonymous := NewNotification(NotificationBookingConfirmed, "", "casey@example.com")
	assert.Equal(t, anonymous.ID, anonymous.PartitionKey())
}

func TestDeliveryTracking(t *testing.T) {
	n := NewNotification(NotificationBookingConfirmed, "user-1", "casey@example.com")

	n.MarkFailed("smtp timeout")
	assert.Equal(t, StatusRetry, n.Status)
	assert.True(t, n.ShouldRetry())

	n.MarkFailed("smtp timeout")
	assert.True(t, n.ShouldRetry())

	n.MarkFailed("smtp timeout")
	assert.Equal(t, StatusFailed, n.Status)
	assert.False(t, n.ShouldRetry(), "exhausted after max retries")

	sent := NewNotification(NotificationCheckInConfirmed, "user-1", "casey@example.com")
	sent.MarkSent()
	assert.Equal(t, StatusSent, sent.Status)
	require.NotNil(t, sent.ProcessedAt)
	assert.False(t, sent.ShouldRetry())
}
