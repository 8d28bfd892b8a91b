package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

type Girl struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	GiftCertificateURL *string   `json:"gift_certificate_url,omitempty"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
}

type CreateGirlRequest struct {
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	GiftCertificateURL *string `json:"gift_certificate_url,omitempty"`
}

type UpdateGirlRequest struct {
	Name               *string `json:"name,omitempty"`
	Email              *string `json:"email,omitempty"`
	GiftCertificateURL *string `json:"gift_certificate_url,omitempty"`
	IsActive           *bool   `json:"is_active,omitempty"`
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func (r *CreateGirlRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(r.Email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

func (r *CreateGirlRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *UpdateGirlRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if r.Email != nil && !emailRegex.MatchString(*r.Email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

func (r *UpdateGirlRequest) Normalize() {
	if r.Name != nil {
		trimmed := strings.TrimSpace(*r.Name)
		r.Name = &trimmed
	}
	if r.Email != nil {
		lowered := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &lowered
	}
}
