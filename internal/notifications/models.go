package notifications

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType identifies the booking lifecycle event being announced.
type NotificationType string

const (
	NotificationBookingConfirmed NotificationType = "BOOKING_CONFIRMED"
	NotificationBookingCancelled NotificationType = "BOOKING_CANCELLED"
	NotificationCheckInConfirmed NotificationType = "CHECKIN_CONFIRMED"
	NotificationPaymentFailed    NotificationType = "PAYMENT_FAILED"
)

// NotificationStatus tracks delivery progress
type NotificationStatus string

const (
	StatusPending NotificationStatus = "PENDING"
	StatusSent    NotificationStatus = "SENT"
	StatusFailed  NotificationStatus = "FAILED"
	StatusRetry   NotificationStatus = "RETRY"
)

// Notification is the message published to Kafka for every booking
// lifecycle event. Consumers turn it into an outbound email.
type Notification struct {
	ID     string           `json:"id"`
	Type   NotificationType `json:"type"`
	UserID string           `json:"user_id"`

	// Recipient
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`

	// Booking context
	BookingID        string   `json:"booking_id,omitempty"`
	BookingReference string   `json:"booking_reference,omitempty"`
	ShowtimeID       string   `json:"showtime_id,omitempty"`
	Seats            []string `json:"seats,omitempty"`
	TotalAmount      float64  `json:"total_amount,omitempty"`

	// Rendered content
	Subject string `json:"subject"`
	Message string `json:"message"`

	// Delivery tracking
	Status      NotificationStatus `json:"status"`
	RetryCount  int                `json:"retry_count"`
	MaxRetries  int                `json:"max_retries"`
	CreatedAt   time.Time          `json:"created_at"`
	ProcessedAt *time.Time         `json:"processed_at,omitempty"`
	ErrorMsg    string             `json:"error_msg,omitempty"`
}

// NewNotification creates a notification with defaults applied
func NewNotification(notifType NotificationType, userID, email string) *Notification {
	return &Notification{
		ID:         uuid.New().String(),
		Type:       notifType,
		UserID:     userID,
		Email:      email,
		Status:     StatusPending,
		RetryCount: 0,
		MaxRetries: 3,
		CreatedAt:  time.Now().UTC(),
	}
}

// WithBooking attaches booking context
func (n *Notification) WithBooking(bookingID, reference, showtimeID string, seats []string, totalAmount float64) *Notification {
	n.BookingID = bookingID
	n.BookingReference = reference
	n.ShowtimeID = showtimeID
	n.Seats = seats
	n.TotalAmount = totalAmount
	return n
}

// WithContent sets the rendered subject and body
func (n *Notification) WithContent(subject, message string) *Notification {
	n.Subject = subject
	n.Message = message
	return n
}

// PartitionKey keeps all of one user's notifications on the same
// partition so they are delivered in order.
func (n *Notification) PartitionKey() string {
	if n.UserID != "" {
		return n.UserID
	}
	return n.ID
}

// MarkSent marks the notification as delivered
func (n *Notification) MarkSent() {
	now := time.Now().UTC()
	n.Status = StatusSent
	n.ProcessedAt = &now
	n.ErrorMsg = ""
}

// MarkFailed records a delivery failure
func (n *Notification) MarkFailed(errMsg string) {
	now := time.Now().UTC()
	n.RetryCount++
	n.ErrorMsg = errMsg
	n.ProcessedAt = &now
	if n.RetryCount >= n.MaxRetries {
		n.Status = StatusFailed
	} else {
		n.Status = StatusRetry
	}
}

// ShouldRetry reports whether another delivery attempt is allowed
func (n *Notification) ShouldRetry() bool {
	return n.Status == StatusRetry && n.RetryCount < n.MaxRetries
}
