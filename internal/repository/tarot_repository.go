package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zhdanov/girls-backend/internal/domain"
)

type TarotRepository interface {
	ListActiveCards(ctx context.Context) ([]domain.TarotCard, error)
	ListCards(ctx context.Context) ([]domain.TarotCard, error)
	CreateCard(ctx context.Context, req *domain.CreateTarotCardRequest) (*domain.TarotCard, error)
	UpdateCard(ctx context.Context, cardUUID string, req *domain.UpdateTarotCardRequest) (*domain.TarotCard, error)
	DeleteCard(ctx context.Context, cardUUID string) error
	CreateReading(ctx context.Context, reading *domain.TarotReading) error
}

type tarotRepository struct {
	pool *pgxpool.Pool
}

func NewTarotRepository(pool *pgxpool.Pool) TarotRepository {
	return &tarotRepository{pool: pool}
}

const tarotCols = `id, uuid, title, description, image_url, is_active, sort_order, created_at`

func (r *tarotRepository) ListActiveCards(ctx context.Context) ([]domain.TarotCard, error) {
	const q = `SELECT ` + tarotCols + ` FROM tarot_cards WHERE is_active ORDER BY sort_order, id`
	return r.list(ctx, q)
}

func (r *tarotRepository) ListCards(ctx context.Context) ([]domain.TarotCard, error) {
	const q = `SELECT ` + tarotCols + ` FROM tarot_cards ORDER BY sort_order, id`
	return r.list(ctx, q)
}

func (r *tarotRepository) list(ctx context.Context, q string) ([]domain.TarotCard, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []domain.TarotCard
	for rows.Next() {
		var c domain.TarotCard
		if err := rows.Scan(&c.ID, &c.UUID, &c.Title, &c.Description, &c.ImageURL, &c.IsActive, &c.SortOrder, &c.CreatedAt); err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}

	return cards, rows.Err()
}

func (r *tarotRepository) CreateCard(ctx context.Context, req *domain.CreateTarotCardRequest) (*domain.TarotCard, error) {
	const q = `
		INSERT INTO tarot_cards (uuid, title, description, image_url, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + tarotCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var c domain.TarotCard
	err := r.pool.QueryRow(ctx, q, uuid.NewString(), req.Title, req.Description, req.ImageURL, req.SortOrder).Scan(
		&c.ID, &c.UUID, &c.Title, &c.Description, &c.ImageURL, &c.IsActive, &c.SortOrder, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *tarotRepository) UpdateCard(ctx context.Context, cardUUID string, req *domain.UpdateTarotCardRequest) (*domain.TarotCard, error) {
	const q = `
		UPDATE tarot_cards
		SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			image_url = COALESCE($4, image_url),
			sort_order = COALESCE($5, sort_order),
			is_active = COALESCE($6, is_active)
		WHERE uuid = $1
		RETURNING ` + tarotCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var c domain.TarotCard
	err := r.pool.QueryRow(ctx, q, cardUUID, req.Title, req.Description, req.ImageURL, req.SortOrder, req.IsActive).Scan(
		&c.ID, &c.UUID, &c.Title, &c.Description, &c.ImageURL, &c.IsActive, &c.SortOrder, &c.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return &c, err
}

func (r *tarotRepository) DeleteCard(ctx context.Context, cardUUID string) error {
	const q = `DELETE FROM tarot_cards WHERE uuid = $1`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	result, err := r.pool.Exec(ctx, q, cardUUID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (r *tarotRepository) CreateReading(ctx context.Context, reading *domain.TarotReading) error {
	const q = `
		INSERT INTO tarot_readings (question_text, past_card_uuid, present_card_uuid, future_card_uuid)
		VALUES ($1, $2, $3, $4)`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.pool.Exec(ctx, q, reading.QuestionText, reading.PastCardUUID, reading.PresentCardUUID, reading.FutureCardUUID)
	return err
}
