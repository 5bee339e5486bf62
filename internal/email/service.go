package email

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"

	"github.com/jwalitptl/clinic-tracker/internal/config"
)

type Service interface {
	SendDueSoon(ctx context.Context, to, fullName, taskName, dueDate, link string) error
	SendCustom(ctx context.Context, to string, subject string, content string) error
}

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpService struct {
	dialer  sender
	from    string
	baseURL string
}

// NewService returns an SMTP-backed mailer, or a no-op mailer when SMTP is not configured.
func NewService(cfg config.SMTPConfig) Service {
	if !cfg.Enabled() {
		return NewNopService()
	}
	return &smtpService{
		dialer:  gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:    cfg.From,
		baseURL: cfg.BaseURL,
	}
}

func (s *smtpService) SendDueSoon(ctx context.Context, to, fullName, taskName, dueDate, link string) error {
	subject := fmt.Sprintf("Task due soon: %s", taskName)
	body := fmt.Sprintf("<p>Hi %s,</p><p>The task <strong>%s</strong> is due on %s.</p><p><a href=\"%s%s\">Open the task</a></p>",
		fullName, taskName, dueDate, s.baseURL, link)
	return s.SendCustom(ctx, to, subject, body)
}

func (s *smtpService) SendCustom(ctx context.Context, to string, subject string, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.dialer.DialAndSend(s.message(to, subject, content)); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	log.Debug().Str("to", to).Str("subject", subject).Msg("Email sent")
	return nil
}

func (s *smtpService) message(to, subject, content string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", content)
	return m
}

type nopService struct{}

func NewNopService() Service {
	return nopService{}
}

func (nopService) SendDueSoon(context.Context, string, string, string, string, string) error {
	return nil
}

func (nopService) SendCustom(context.Context, string, string, string) error {
	return nil
}
