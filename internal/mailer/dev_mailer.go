package mailer

import (
	"github.com/zhdanov/girls-backend/pkg/logger"
)

// DevMailer logs codes instead of sending them.
type DevMailer struct{}

func NewDevMailer() *DevMailer {
	return &DevMailer{}
}

func (d *DevMailer) SendAccessCode(toEmail, code, name string) error {
	logger.Info("[DEV MAIL] Access code email",
		"to", toEmail,
		"name", name,
		"code", code,
	)
	return nil
}
