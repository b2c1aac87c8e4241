package usecase

import (
	"context"
	"fmt"
	"net/smtp"

	"travel-booking/internal/dto/request"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

type ContactService interface {
	Send(ctx context.Context, req *request.ContactRequest) error
}

// mailSender lets tests stub the SMTP dial.
type mailSender func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type contactService struct {
	config utils.EmailConfig
	send   mailSender
	log    *zap.Logger
}

func NewContactService(config utils.EmailConfig, log *zap.Logger) ContactService {
	return &contactService{
		config: config,
		send:   smtp.SendMail,
		log:    log.With(zap.String("service", "contact")),
	}
}

// Send relays a contact-form submission to the configured mailbox.
// Nothing is persisted.
func (s *contactService) Send(ctx context.Context, req *request.ContactRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	subject := fmt.Sprintf("Contact Form Submission from %s", req.Name)
	body := fmt.Sprintf(
		"<p><strong>Name:</strong> %s</p>"+
			"<p><strong>Phone:</strong> %s</p>"+
			"<p><strong>Email:</strong> %s</p>"+
			"<p><strong>Message:</strong> %s</p>",
		req.Name, req.Phone, req.Email, req.Message,
	)

	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		s.config.From, s.config.To, subject, body,
	)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	auth := smtp.PlainAuth("", s.config.User, s.config.Password, s.config.Host)

	if err := s.send(addr, auth, s.config.From, []string{s.config.To}, []byte(msg)); err != nil {
		s.log.Error("Failed to send contact email",
			zap.Error(err),
			zap.String("from", req.Email),
		)
		return fmt.Errorf("failed to send contact email")
	}

	s.log.Info("Contact email sent", zap.String("from", req.Email))
	return nil
}
