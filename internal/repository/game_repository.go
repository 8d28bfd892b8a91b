package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zhdanov/girls-backend/internal/domain"
)

type GameRepository interface {
	ListActive(ctx context.Context) ([]domain.Game, error)
	List(ctx context.Context) ([]domain.Game, error)
	FindActiveBySlug(ctx context.Context, slug string) (*domain.Game, error)
	Create(ctx context.Context, req *domain.CreateGameRequest) (*domain.Game, error)
	Update(ctx context.Context, id int64, req *domain.UpdateGameRequest) (*domain.Game, error)
	Delete(ctx context.Context, id int64) error
}

type gameRepository struct {
	pool *pgxpool.Pool
}

func NewGameRepository(pool *pgxpool.Pool) GameRepository {
	return &gameRepository{pool: pool}
}

const gameCols = `id, slug, title, sort_order, is_active, created_at`

func (r *gameRepository) ListActive(ctx context.Context) ([]domain.Game, error) {
	const q = `SELECT ` + gameCols + ` FROM games WHERE is_active ORDER BY sort_order, id`
	return r.list(ctx, q)
}

func (r *gameRepository) List(ctx context.Context) ([]domain.Game, error) {
	const q = `SELECT ` + gameCols + ` FROM games ORDER BY sort_order, id`
	return r.list(ctx, q)
}

func (r *gameRepository) list(ctx context.Context, q string) ([]domain.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []domain.Game
	for rows.Next() {
		var g domain.Game
		if err := rows.Scan(&g.ID, &g.Slug, &g.Title, &g.SortOrder, &g.IsActive, &g.CreatedAt); err != nil {
			return nil, err
		}
		games = append(games, g)
	}

	return games, rows.Err()
}

func (r *gameRepository) FindActiveBySlug(ctx context.Context, slug string) (*domain.Game, error) {
	const q = `SELECT ` + gameCols + ` FROM games WHERE slug = $1 AND is_active`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var g domain.Game
	err := r.pool.QueryRow(ctx, q, slug).Scan(&g.ID, &g.Slug, &g.Title, &g.SortOrder, &g.IsActive, &g.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return &g, err
}

func (r *gameRepository) Create(ctx context.Context, req *domain.CreateGameRequest) (*domain.Game, error) {
	const q = `
		INSERT INTO games (slug, title, sort_order)
		VALUES ($1, $2, $3)
		RETURNING ` + gameCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var g domain.Game
	err := r.pool.QueryRow(ctx, q, req.Slug, req.Title, req.SortOrder).Scan(
		&g.ID, &g.Slug, &g.Title, &g.SortOrder, &g.IsActive, &g.CreatedAt,
	)
	if isUniqueViolation(err) {
		return nil, domain.ErrConflict
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *gameRepository) Update(ctx context.Context, id int64, req *domain.UpdateGameRequest) (*domain.Game, error) {
	const q = `
		UPDATE games
		SET
			title = COALESCE($2, title),
			sort_order = COALESCE($3, sort_order),
			is_active = COALESCE($4, is_active)
		WHERE id = $1
		RETURNING ` + gameCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var g domain.Game
	err := r.pool.QueryRow(ctx, q, id, req.Title, req.SortOrder, req.IsActive).Scan(
		&g.ID, &g.Slug, &g.Title, &g.SortOrder, &g.IsActive, &g.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return &g, err
}

func (r *gameRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM games WHERE id = $1`

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
