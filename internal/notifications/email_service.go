package notifications

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"showtix/internal/shared/config"
	"showtix/pkg/logger"
)

// EmailService delivers a notification to its recipient.
type EmailService interface {
	SendNotification(ctx context.Context, notification *Notification) error
}

// SMTPEmailService sends notifications as plain-text email over SMTP.
type SMTPEmailService struct {
	cfg config.EmailConfig
}

func NewSMTPEmailService(cfg config.EmailConfig) (*SMTPEmailService, error) {
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if cfg.SMTPPort <= 0 || cfg.SMTPPort > 65535 {
		return nil, fmt.Errorf("smtp port %d out of range", cfg.SMTPPort)
	}
	if cfg.FromEmail == "" {
		return nil, fmt.Errorf("from email is required")
	}
	return &SMTPEmailService{cfg: cfg}, nil
}

func (s *SMTPEmailService) SendNotification(ctx context.Context, notification *Notification) error {
	if notification.Email == "" {
		return fmt.Errorf("notification %s has no recipient", notification.ID)
	}

	subject := notification.Subject
	if subject == "" {
		subject = defaultSubject(notification.Type)
	}
	body := notification.Message
	if body == "" {
		body = defaultBody(notification)
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.cfg.FromEmail)
	fmt.Fprintf(&msg, "To: %s\r\n", notification.Email)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	return smtp.SendMail(addr, auth, s.cfg.FromEmail, []string{notification.Email}, []byte(msg.String()))
}

// LogEmailService is the development fallback when SMTP is not configured.
// It records the notification instead of sending it.
type LogEmailService struct {
	log *logger.Logger
}

func NewLogEmailService(log *logger.Logger) *LogEmailService {
	return &LogEmailService{log: log}
}

func (s *LogEmailService) SendNotification(ctx context.Context, notification *Notification) error {
	s.log.InfoContext(ctx, "email (dry run)",
		"to", notification.Email,
		"type", string(notification.Type),
		"booking_ref", notification.BookingReference,
	)
	return nil
}

func defaultSubject(notifType NotificationType) string {
	switch notifType {
	case NotificationBookingConfirmed:
		return "Your booking is confirmed"
	case NotificationBookingCancelled:
		return "Your booking was cancelled"
	case NotificationCheckInConfirmed:
		return "You are checked in"
	case NotificationPaymentFailed:
		return "Payment failed for your booking"
	default:
		return "Booking update"
	}
}

func defaultBody(n *Notification) string {
	var b strings.Builder
	name := n.Name
	if name == "" {
		name = "there"
	}
	fmt.Fprintf(&b, "Hi %s,\n\n", name)

	switch n.Type {
	case NotificationBookingConfirmed:
		fmt.Fprintf(&b, "Your booking %s is confirmed.\n", n.BookingReference)
		if len(n.Seats) > 0 {
			fmt.Fprintf(&b, "Seats: %s\n", strings.Join(n.Seats, ", "))
		}
		if n.TotalAmount > 0 {
			fmt.Fprintf(&b, "Amount paid: %.2f\n", n.TotalAmount)
		}
		b.WriteString("\nShow this reference at the venue to check in.\n")
	case NotificationBookingCancelled:
		fmt.Fprintf(&b, "Your booking %s has been cancelled and the seats released.\n", n.BookingReference)
	case NotificationCheckInConfirmed:
		fmt.Fprintf(&b, "Booking %s is checked in. Enjoy the show!\n", n.BookingReference)
	case NotificationPaymentFailed:
		fmt.Fprintf(&b, "Payment for booking %s failed. The seats have been released; please try again.\n", n.BookingReference)
	default:
		fmt.Fprintf(&b, "There is an update on your booking %s.\n", n.BookingReference)
	}

	b.WriteString("\nThe ShowTix Team\n")
	return b.String()
}
