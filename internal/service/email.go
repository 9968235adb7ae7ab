package service

import (
	"context"
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host, port, username, password, from string) EmailService {
	p, _ := strconv.Atoi(port)
	return &emailService{
		host:     host,
		port:     p,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendApplicationReceived(ctx context.Context, ownerEmail, applicantName, jobTitle string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", ownerEmail)
	m.SetHeader("Subject", fmt.Sprintf("New applicant for %s", jobTitle))

	body := fmt.Sprintf("Hello,\n\n%s has applied to your job posting '%s'.\n\nOpen the app to review their profile and decide.\n\nBest regards,\nThe QuickGig Team", applicantName, jobTitle)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send application email: %w", err)
	}

	return nil
}

func (s *emailService) SendHireDecision(ctx context.Context, applicantEmail, applicantName, jobTitle string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", applicantEmail)
	m.SetHeader("Subject", fmt.Sprintf("You were hired for %s", jobTitle))

	body := fmt.Sprintf("Hello %s,\n\nCongratulations! You were hired for '%s'.\n\nOpen the app for the shift details and to message the job owner.\n\nBest regards,\nThe QuickGig Team", applicantName, jobTitle)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send hire email: %w", err)
	}

	return nil
}
