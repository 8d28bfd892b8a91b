package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zhdanov/girls-backend/internal/domain"
)

type CodeRepository interface {
	// Create appends a new code to the ledger. Outstanding codes for the same
	// girl are left untouched.
	Create(ctx context.Context, girlID int64, code string, expiresAt time.Time) (*domain.AccessCode, error)

	// Redeem consumes a matching unused, unexpired code. It returns nil when
	// no such code exists; the caller cannot tell wrong from used from expired.
	Redeem(ctx context.Context, girlID int64, code string) (*domain.AccessCode, error)
}

type codeRepository struct {
	pool *pgxpool.Pool
}

func NewCodeRepository(pool *pgxpool.Pool) CodeRepository {
	return &codeRepository{pool: pool}
}

const codeCols = `id, girl_id, code, used_at, expires_at, created_at`

func (r *codeRepository) Create(ctx context.Context, girlID int64, code string, expiresAt time.Time) (*domain.AccessCode, error) {
	const q = `
		INSERT INTO access_codes (girl_id, code, expires_at)
		VALUES ($1, $2, $3)
		RETURNING ` + codeCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var ac domain.AccessCode
	err := r.pool.QueryRow(ctx, q, girlID, code, expiresAt).Scan(
		&ac.ID, &ac.GirlID, &ac.Code, &ac.UsedAt, &ac.ExpiresAt, &ac.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ac, nil
}

// Redeem relies on a single conditional UPDATE so that concurrent attempts on
// the same code resolve to exactly one winner at the storage layer.
func (r *codeRepository) Redeem(ctx context.Context, girlID int64, code string) (*domain.AccessCode, error) {
	const q = `
		UPDATE access_codes
		SET used_at = now()
		WHERE girl_id = $1
		  AND code = $2
		  AND used_at IS NULL
		  AND expires_at > now()
		RETURNING ` + codeCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var ac domain.AccessCode
	err := r.pool.QueryRow(ctx, q, girlID, code).Scan(
		&ac.ID, &ac.GirlID, &ac.Code, &ac.UsedAt, &ac.ExpiresAt, &ac.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil // invalid, used, or expired
	}
	if err != nil {
		return nil, err
	}
	return &ac, nil
}
