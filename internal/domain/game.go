package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

type Game struct {
	ID        int64     `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	SortOrder int       `json:"sort_order"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateGameRequest struct {
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	SortOrder int    `json:"sort_order"`
}

type UpdateGameRequest struct {
	Title     *string `json:"title,omitempty"`
	SortOrder *int    `json:"sort_order,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func (r *CreateGameRequest) Validate() error {
	if r.Slug == "" {
		return fmt.Errorf("slug is required")
	}
	if !slugRegex.MatchString(r.Slug) {
		return fmt.Errorf("invalid slug format")
	}
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

func (r *CreateGameRequest) Normalize() {
	r.Slug = strings.ToLower(strings.TrimSpace(r.Slug))
	r.Title = strings.TrimSpace(r.Title)
}
