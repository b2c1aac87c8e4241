package usecase

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"testing"

	"travel-booking/internal/dto/request"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

func newContactTestService(send mailSender) ContactService {
	srv := NewContactService(utils.EmailConfig{
		Host: "smtp.example.com",
		Port: 587,
		From: "noreply@example.com",
		To:   "office@example.com",
	}, zap.NewNop()).(*contactService)
	srv.send = send
	return srv
}

func TestContactSend(t *testing.T) {
	t.Run("Given a valid submission then the mail goes to the configured mailbox", func(t *testing.T) {
		var gotTo []string
		var gotMsg string
		srv := newContactTestService(func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			if addr != "smtp.example.com:587" {
				t.Errorf("addr = %s", addr)
			}
			gotTo = to
			gotMsg = string(msg)
			return nil
		})

		err := srv.Send(context.Background(), &request.ContactRequest{
			Name:    "Jane Doe",
			Email:   "jane@example.com",
			Phone:   "01234567890",
			Message: "Do you run tours in October?",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(gotTo) != 1 || gotTo[0] != "office@example.com" {
			t.Errorf("to = %v, want office@example.com", gotTo)
		}
		if !strings.Contains(gotMsg, "Jane Doe") || !strings.Contains(gotMsg, "Do you run tours in October?") {
			t.Error("message must carry the submitted name and text")
		}
		if !strings.Contains(gotMsg, "Subject: Contact Form Submission from Jane Doe") {
			t.Error("subject must name the sender")
		}
	})

	t.Run("Given a missing message then validation rejects it before any dial", func(t *testing.T) {
		dialed := false
		srv := newContactTestService(func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			dialed = true
			return nil
		})

		err := srv.Send(context.Background(), &request.ContactRequest{
			Name:  "Jane Doe",
			Email: "jane@example.com",
		})
		if err == nil || !strings.Contains(err.Error(), "validation failed") {
			t.Fatalf("error = %v, want validation failure", err)
		}
		if dialed {
			t.Error("SMTP must not be dialed for invalid submissions")
		}
	})

	t.Run("Given an SMTP failure then the error stays generic", func(t *testing.T) {
		srv := newContactTestService(func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			return fmt.Errorf("535 authentication failed for office@example.com")
		})

		err := srv.Send(context.Background(), &request.ContactRequest{
			Name:    "Jane Doe",
			Email:   "jane@example.com",
			Message: "Hello",
		})
		if err == nil {
			t.Fatal("expected error")
		}
		if strings.Contains(err.Error(), "535") {
			t.Error("SMTP detail must not leak to the client")
		}
	})
}
