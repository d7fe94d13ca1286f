package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendRequestNotice(ctx context.Context, adminEmail, requesterName, groupName string) error {
	subject := fmt.Sprintf("New join request for %s", groupName)
	body := fmt.Sprintf("Hello,\n\n%s has requested to join your study group %q.\n\nOpen the group's request list to approve or reject it.\n\nThe Study Groups Team", requesterName, groupName)
	return s.send(adminEmail, subject, body)
}

func (s *emailService) SendRequestOutcome(ctx context.Context, email, name, groupName string, approved bool) error {
	var subject, body string
	if approved {
		subject = fmt.Sprintf("You're in: %s", groupName)
		body = fmt.Sprintf("Hello %s,\n\nYour request to join the study group %q has been approved. You can now take part in the group chat.\n\nThe Study Groups Team", name, groupName)
	} else {
		subject = fmt.Sprintf("Update on your request for %s", groupName)
		body = fmt.Sprintf("Hello %s,\n\nYour request to join the study group %q was not approved this time.\n\nThe Study Groups Team", name, groupName)
	}
	return s.send(email, subject, body)
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}
	return nil
}
