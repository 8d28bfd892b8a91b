package domain

import (
	"fmt"
	"strings"
	"time"
)

type TarotCard struct {
	ID          int64     `json:"-"`
	UUID        string    `json:"uuid"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"image_url,omitempty"`
	IsActive    bool      `json:"is_active"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

// TarotReading logs one draw for analytics.
type TarotReading struct {
	ID              int64     `json:"id"`
	QuestionText    *string   `json:"question_text,omitempty"`
	PastCardUUID    string    `json:"past_card_uuid"`
	PresentCardUUID string    `json:"present_card_uuid"`
	FutureCardUUID  string    `json:"future_card_uuid"`
	CreatedAt       time.Time `json:"created_at"`
}

type TarotDrawRequest struct {
	Question string `json:"question,omitempty"`
	Count    int    `json:"count,omitempty"`
}

type TarotDrawResponse struct {
	Past    *TarotCard `json:"past"`
	Present *TarotCard `json:"present"`
	Future  *TarotCard `json:"future"`
}

type CreateTarotCardRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image_url,omitempty"`
	SortOrder   int     `json:"sort_order"`
}

type UpdateTarotCardRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	SortOrder   *int    `json:"sort_order,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (r *CreateTarotCardRequest) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	if r.Description == "" {
		return fmt.Errorf("description is required")
	}
	return nil
}

func (r *CreateTarotCardRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
}

func (r *TarotDrawRequest) Normalize() {
	r.Question = strings.TrimSpace(r.Question)
	if r.Count == 0 {
		r.Count = 3
	}
}
