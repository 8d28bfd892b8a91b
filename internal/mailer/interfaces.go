package mailer

import "github.com/zhdanov/girls-backend/pkg/config"

// Service delivers a one-time access code out-of-band. Implementations are
// selected once at startup; callers never branch per send.
type Service interface {
	SendAccessCode(toEmail, code, name string) error
}

// Select picks the delivery channel from configuration: dev stub, MailerSend
// API, or plain SMTP, in that order of precedence.
func Select(cfg *config.Config) Service {
	if cfg.Email.DevMode {
		return NewDevMailer()
	}
	if cfg.Email.MailerSendKey != "" {
		return NewMailerSend(cfg.Email.MailerSendKey, cfg.Email.FromName, cfg.Email.SMTPFrom)
	}
	return NewSMTPMailer(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPFrom, cfg.Email.SMTPUser, cfg.Email.SMTPPass, cfg.Email.SMTPUseTLS)
}
