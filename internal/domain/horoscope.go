package domain

import (
	"fmt"
	"strings"
	"time"
)

type HoroscopePrediction struct {
	ID        int64     `json:"id"`
	UUID      string    `json:"uuid"`
	Text      string    `json:"text"`
	SortOrder int       `json:"sort_order"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// RoleSign is a horoscope role or zodiac sign. LabelRod keeps the Russian
// genitive form used when composing the prediction sentence.
type RoleSign struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	LabelRod string `json:"label_rod"`
}

var HoroscopeRoles = []RoleSign{
	{ID: "tester", Label: "Тестировщик", LabelRod: "тестировщика"},
	{ID: "analyst", Label: "Аналитик", LabelRod: "аналитика"},
	{ID: "developer", Label: "Разработчик", LabelRod: "разработчика"},
	{ID: "devops", Label: "ДевОпс", LabelRod: "девопса"},
	{ID: "pm", Label: "Проджект", LabelRod: "проджекта"},
}

var HoroscopeSigns = []RoleSign{
	{ID: "aries", Label: "Овен", LabelRod: "Овна"},
	{ID: "taurus", Label: "Телец", LabelRod: "Тельца"},
	{ID: "gemini", Label: "Близнецы", LabelRod: "Близнецов"},
	{ID: "cancer", Label: "Рак", LabelRod: "Рака"},
	{ID: "leo", Label: "Лев", LabelRod: "Льва"},
	{ID: "virgo", Label: "Дева", LabelRod: "Девы"},
	{ID: "libra", Label: "Весы", LabelRod: "Весов"},
	{ID: "scorpio", Label: "Скорпион", LabelRod: "Скорпиона"},
	{ID: "sagittarius", Label: "Стрелец", LabelRod: "Стрельца"},
	{ID: "capricorn", Label: "Козерог", LabelRod: "Козерога"},
	{ID: "aquarius", Label: "Водолей", LabelRod: "Водолея"},
	{ID: "pisces", Label: "Рыбы", LabelRod: "Рыб"},
}

// EasterEggPhrases are injected into predictions wrapped in the markers the
// frontend styles separately.
var EasterEggPhrases = []string{
	"ОТПепе",
	"ЕпА2faaa",
	"вотэфааа",
	"ШнелеПепе",
	"2FAааа",
}

const (
	EasterEggStart = "{{EASTER}}"
	EasterEggEnd   = "{{/EASTER}}"
)

type HoroscopePredictionRequest struct {
	RoleID string `json:"role_id"`
	SignID string `json:"sign_id"`
}

type HoroscopePredictionResponse struct {
	Text string `json:"text"`
}

type CreatePredictionRequest struct {
	Text      string `json:"text"`
	SortOrder int    `json:"sort_order"`
}

type UpdatePredictionRequest struct {
	Text      *string `json:"text,omitempty"`
	SortOrder *int    `json:"sort_order,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

func (r *HoroscopePredictionRequest) Validate() error {
	if r.RoleID == "" || r.SignID == "" {
		return fmt.Errorf("role_id and sign_id are required")
	}
	return nil
}

func (r *CreatePredictionRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return fmt.Errorf("text is required")
	}
	return nil
}

func (r *CreatePredictionRequest) Normalize() {
	r.Text = strings.TrimSpace(r.Text)
}
