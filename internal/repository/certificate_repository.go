package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zhdanov/girls-backend/internal/domain"
)

type CertificateRepository interface {
	Create(ctx context.Context, girlID int64, token string) (*domain.Certificate, error)
	FindGirlNameByToken(ctx context.Context, token string) (string, bool, error)
}

type certificateRepository struct {
	pool *pgxpool.Pool
}

func NewCertificateRepository(pool *pgxpool.Pool) CertificateRepository {
	return &certificateRepository{pool: pool}
}

func (r *certificateRepository) Create(ctx context.Context, girlID int64, token string) (*domain.Certificate, error) {
	const q = `
		INSERT INTO certificates (girl_id, token)
		VALUES ($1, $2)
		RETURNING id, girl_id, token, created_at`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var c domain.Certificate
	err := r.pool.QueryRow(ctx, q, girlID, token).Scan(&c.ID, &c.GirlID, &c.Token, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *certificateRepository) FindGirlNameByToken(ctx context.Context, token string) (string, bool, error) {
	const q = `
		SELECT g.name
		FROM certificates c
		JOIN girls g ON g.id = c.girl_id
		WHERE c.token = $1`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var name string
	err := r.pool.QueryRow(ctx, q, token).Scan(&name)
	if err == pgx.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return name, true, nil
}
