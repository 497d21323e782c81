package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/Muhammedsajid10/spaBackend/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails
type EmailService interface {
	SendBookingConfirmation(to, clientName, bookingNumber, appointmentDate, serviceNames, totalAmount string) error
	SendGiftCardReceipt(to, recipientName, code, value, expiryDate, message string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type bookingConfirmationData struct {
	ClientName      string
	BookingNumber   string
	AppointmentDate string
	ServiceNames    string
	TotalAmount     string
}

// SendBookingConfirmation sends a confirmation email after a booking is placed
func (s *emailServiceImpl) SendBookingConfirmation(to, clientName, bookingNumber, appointmentDate, serviceNames, totalAmount string) error {
	data := bookingConfirmationData{
		ClientName:      clientName,
		BookingNumber:   bookingNumber,
		AppointmentDate: appointmentDate,
		ServiceNames:    serviceNames,
		TotalAmount:     totalAmount,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "booking_confirmation.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Booking Confirmed: %s", bookingNumber), body.String())
}

type giftCardReceiptData struct {
	RecipientName string
	Code          string
	Value         string
	ExpiryDate    string
	Message       string
}

// SendGiftCardReceipt sends the gift card code to its recipient
func (s *emailServiceImpl) SendGiftCardReceipt(to, recipientName, code, value, expiryDate, message string) error {
	data := giftCardReceiptData{
		RecipientName: recipientName,
		Code:          code,
		Value:         value,
		ExpiryDate:    expiryDate,
		Message:       message,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "gift_card.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Your Gift Card", body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s\r\n", from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
