package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zhdanov/girls-backend/internal/domain"
)

type HoroscopeRepository interface {
	ListActive(ctx context.Context) ([]domain.HoroscopePrediction, error)
	List(ctx context.Context) ([]domain.HoroscopePrediction, error)
	Create(ctx context.Context, req *domain.CreatePredictionRequest) (*domain.HoroscopePrediction, error)
	Update(ctx context.Context, predictionUUID string, req *domain.UpdatePredictionRequest) (*domain.HoroscopePrediction, error)
	Delete(ctx context.Context, predictionUUID string) error
}

type horoscopeRepository struct {
	pool *pgxpool.Pool
}

func NewHoroscopeRepository(pool *pgxpool.Pool) HoroscopeRepository {
	return &horoscopeRepository{pool: pool}
}

const predictionCols = `id, uuid, text, sort_order, is_active, created_at`

func (r *horoscopeRepository) ListActive(ctx context.Context) ([]domain.HoroscopePrediction, error) {
	const q = `SELECT ` + predictionCols + ` FROM horoscope_predictions WHERE is_active ORDER BY sort_order, id`
	return r.list(ctx, q)
}

func (r *horoscopeRepository) List(ctx context.Context) ([]domain.HoroscopePrediction, error) {
	const q = `SELECT ` + predictionCols + ` FROM horoscope_predictions ORDER BY sort_order, id`
	return r.list(ctx, q)
}

func (r *horoscopeRepository) list(ctx context.Context, q string) ([]domain.HoroscopePrediction, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var predictions []domain.HoroscopePrediction
	for rows.Next() {
		var p domain.HoroscopePrediction
		if err := rows.Scan(&p.ID, &p.UUID, &p.Text, &p.SortOrder, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, err
		}
		predictions = append(predictions, p)
	}

	return predictions, rows.Err()
}

func (r *horoscopeRepository) Create(ctx context.Context, req *domain.CreatePredictionRequest) (*domain.HoroscopePrediction, error) {
	const q = `
		INSERT INTO horoscope_predictions (uuid, text, sort_order)
		VALUES ($1, $2, $3)
		RETURNING ` + predictionCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var p domain.HoroscopePrediction
	err := r.pool.QueryRow(ctx, q, uuid.NewString(), req.Text, req.SortOrder).Scan(
		&p.ID, &p.UUID, &p.Text, &p.SortOrder, &p.IsActive, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *horoscopeRepository) Update(ctx context.Context, predictionUUID string, req *domain.UpdatePredictionRequest) (*domain.HoroscopePrediction, error) {
	const q = `
		UPDATE horoscope_predictions
		SET
			text = COALESCE($2, text),
			sort_order = COALESCE($3, sort_order),
			is_active = COALESCE($4, is_active)
		WHERE uuid = $1
		RETURNING ` + predictionCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var p domain.HoroscopePrediction
	err := r.pool.QueryRow(ctx, q, predictionUUID, req.Text, req.SortOrder, req.IsActive).Scan(
		&p.ID, &p.UUID, &p.Text, &p.SortOrder, &p.IsActive, &p.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return &p, err
}

func (r *horoscopeRepository) Delete(ctx context.Context, predictionUUID string) error {
	const q = `DELETE FROM horoscope_predictions WHERE uuid = $1`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	result, err := r.pool.Exec(ctx, q, predictionUUID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
