package email

import (
	"context"
	"fmt"
	"net/smtp"

	"relecloud-backend/pkg/logger"
)

// InfoRequestEmailData carries everything needed to notify about a new
// information request: the operator notification and the requester confirmation.
type InfoRequestEmailData struct {
	Name       string
	Email      string
	CruiseName string
	Notes      string
}

type EmailService interface {
	// SendInfoRequestNotification emails the operator address about a new request
	SendInfoRequestNotification(ctx context.Context, data InfoRequestEmailData) error
	// SendInfoRequestConfirmation emails the requester a receipt confirmation
	SendInfoRequestConfirmation(ctx context.Context, data InfoRequestEmailData) error
}

type smtpEmailService struct {
	smtpAddr    string
	smtpFrom    string
	notifyEmail string
}

func NewSMTPEmailService(smtpHost, smtpPort, from, notifyEmail string) EmailService {
	return &smtpEmailService{
		smtpAddr:    smtpHost + ":" + smtpPort,
		smtpFrom:    from,
		notifyEmail: notifyEmail,
	}
}

func (s *smtpEmailService) SendInfoRequestNotification(ctx context.Context, data InfoRequestEmailData) error {
	subject := "New information request"
	body := fmt.Sprintf(`A new information request has arrived from the ReleCloud website.

Request details:
-------------------------
Name: %s
Email: %s
Cruise: %s

Message:
%s

-------------------------
This is an automated message generated by the ReleCloud system.`,
		data.Name, data.Email, data.CruiseName, data.Notes)

	return s.send(data.Email, s.notifyEmail, subject, body)
}

func (s *smtpEmailService) SendInfoRequestConfirmation(ctx context.Context, data InfoRequestEmailData) error {
	subject := "Information request received - ReleCloud"
	body := fmt.Sprintf(`Hello %s,

Thank you for contacting ReleCloud. We have received your information request.

Your request:
-------------------------
Cruise: %s
Message: %s

-------------------------
Our team will review your request and get back to you at this address shortly.

Thank you for trusting ReleCloud with your next space adventure!

The ReleCloud team

-------------------------
This is an automated message, please do not reply.`,
		data.Name, data.CruiseName, data.Notes)

	return s.send(data.Email, data.Email, subject, body)
}

func (s *smtpEmailService) send(requester, to, subject, body string) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtpFrom, to, subject, body))

	if err := smtp.SendMail(s.smtpAddr, nil, s.smtpFrom, []string{to}, msg); err != nil {
		logger.Info("Failed to send email", map[string]interface{}{
			"error":     err.Error(),
			"to":        to,
			"requester": requester,
			"smtp_addr": s.smtpAddr,
		})
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
