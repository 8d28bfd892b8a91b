package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// AccessCode is a single-use login credential delivered by email.
// Records are append-only: redemption stamps used_at exactly once and the
// ledger is retained for audit, never purged by the core.
type AccessCode struct {
	ID        int64      `json:"id"`
	GirlID    int64      `json:"girl_id"`
	Code      string     `json:"-"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	ExpiresAt time.Time  `json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
}

const CodeLength = 8

var codeRegex = regexp.MustCompile(`^[A-Z0-9]{8}$`)

type RequestCodeRequest struct {
	GirlID int64 `json:"girl_id"`
}

type VerifyCodeRequest struct {
	GirlID int64  `json:"girl_id"`
	Code   string `json:"code"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	GirlID      int64  `json:"girl_id"`
}

func (r *RequestCodeRequest) Validate() error {
	if r.GirlID <= 0 {
		return fmt.Errorf("girl_id is required")
	}
	return nil
}

func (r *VerifyCodeRequest) Validate() error {
	if r.GirlID <= 0 {
		return fmt.Errorf("girl_id is required")
	}
	if r.Code == "" {
		return fmt.Errorf("code is required")
	}
	if !codeRegex.MatchString(r.Code) {
		return fmt.Errorf("code must be %d uppercase characters", CodeLength)
	}
	return nil
}

func (r *VerifyCodeRequest) Normalize() {
	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
}

func (a *AccessCode) IsExpired() bool {
	return time.Now().After(a.ExpiresAt)
}

func (a *AccessCode) IsUsed() bool {
	return a.UsedAt != nil
}
