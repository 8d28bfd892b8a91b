package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zhdanov/girls-backend/internal/domain"
)

type GirlRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Girl, error)
	FindActiveByID(ctx context.Context, id int64) (*domain.Girl, error)
	ListActive(ctx context.Context) ([]domain.Girl, error)
	List(ctx context.Context) ([]domain.Girl, error)
	Create(ctx context.Context, req *domain.CreateGirlRequest) (*domain.Girl, error)
	Update(ctx context.Context, id int64, req *domain.UpdateGirlRequest) (*domain.Girl, error)
	Delete(ctx context.Context, id int64) error
}

type girlRepository struct {
	pool *pgxpool.Pool
}

func NewGirlRepository(pool *pgxpool.Pool) GirlRepository {
	return &girlRepository{pool: pool}
}

const girlCols = `id, name, email, gift_certificate_url, is_active, created_at`

func (r *girlRepository) FindByID(ctx context.Context, id int64) (*domain.Girl, error) {
	const q = `SELECT ` + girlCols + ` FROM girls WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var g domain.Girl
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&g.ID, &g.Name, &g.Email, &g.GiftCertificateURL, &g.IsActive, &g.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return &g, err
}

func (r *girlRepository) FindActiveByID(ctx context.Context, id int64) (*domain.Girl, error) {
	const q = `SELECT ` + girlCols + ` FROM girls WHERE id = $1 AND is_active`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var g domain.Girl
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&g.ID, &g.Name, &g.Email, &g.GiftCertificateURL, &g.IsActive, &g.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return &g, err
}

func (r *girlRepository) ListActive(ctx context.Context) ([]domain.Girl, error) {
	const q = `SELECT ` + girlCols + ` FROM girls WHERE is_active ORDER BY name`
	return r.list(ctx, q)
}

func (r *girlRepository) List(ctx context.Context) ([]domain.Girl, error) {
	const q = `SELECT ` + girlCols + ` FROM girls ORDER BY name`
	return r.list(ctx, q)
}

func (r *girlRepository) list(ctx context.Context, q string) ([]domain.Girl, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var girls []domain.Girl
	for rows.Next() {
		var g domain.Girl
		if err := rows.Scan(&g.ID, &g.Name, &g.Email, &g.GiftCertificateURL, &g.IsActive, &g.CreatedAt); err != nil {
			return nil, err
		}
		girls = append(girls, g)
	}

	return girls, rows.Err()
}

func (r *girlRepository) Create(ctx context.Context, req *domain.CreateGirlRequest) (*domain.Girl, error) {
	const q = `
		INSERT INTO girls (name, email, gift_certificate_url)
		VALUES ($1, $2, $3)
		RETURNING ` + girlCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var g domain.Girl
	err := r.pool.QueryRow(ctx, q, req.Name, req.Email, req.GiftCertificateURL).Scan(
		&g.ID, &g.Name, &g.Email, &g.GiftCertificateURL, &g.IsActive, &g.CreatedAt,
	)
	if isUniqueViolation(err) {
		return nil, domain.ErrConflict
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *girlRepository) Update(ctx context.Context, id int64, req *domain.UpdateGirlRequest) (*domain.Girl, error) {
	const q = `
		UPDATE girls
		SET
			name = COALESCE($2, name),
			email = COALESCE($3, email),
			gift_certificate_url = COALESCE($4, gift_certificate_url),
			is_active = COALESCE($5, is_active)
		WHERE id = $1
		RETURNING ` + girlCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var g domain.Girl
	err := r.pool.QueryRow(ctx, q, id, req.Name, req.Email, req.GiftCertificateURL, req.IsActive).Scan(
		&g.ID, &g.Name, &g.Email, &g.GiftCertificateURL, &g.IsActive, &g.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if isUniqueViolation(err) {
		return nil, domain.ErrConflict
	}
	return &g, err
}

func (r *girlRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM girls WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	result, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
