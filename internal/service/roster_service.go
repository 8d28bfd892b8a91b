package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/zhdanov/girls-backend/internal/domain"
	"github.com/zhdanov/girls-backend/internal/repository"
)

type RosterService interface {
	ListActiveGirls(ctx context.Context) ([]domain.Girl, error)
	ListAllGirls(ctx context.Context) ([]domain.Girl, error)
	CreateGirl(ctx context.Context, req *domain.CreateGirlRequest) (*domain.Girl, error)
	UpdateGirl(ctx context.Context, id int64, req *domain.UpdateGirlRequest) (*domain.Girl, error)
	DeleteGirl(ctx context.Context, id int64) error
}

type rosterService struct {
	girlRepo repository.GirlRepository
}

func NewRosterService(girlRepo repository.GirlRepository) RosterService {
	return &rosterService{girlRepo: girlRepo}
}

func (s *rosterService) ListActiveGirls(ctx context.Context) ([]domain.Girl, error) {
	girls, err := s.girlRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list girls: %w", err)
	}
	return girls, nil
}

func (s *rosterService) ListAllGirls(ctx context.Context) ([]domain.Girl, error) {
	girls, err := s.girlRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list girls: %w", err)
	}
	return girls, nil
}

func (s *rosterService) CreateGirl(ctx context.Context, req *domain.CreateGirlRequest) (*domain.Girl, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	girl, err := s.girlRepo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create girl: %w", err)
	}
	return girl, nil
}

func (s *rosterService) UpdateGirl(ctx context.Context, id int64, req *domain.UpdateGirlRequest) (*domain.Girl, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	girl, err := s.girlRepo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update girl: %w", err)
	}
	if girl == nil {
		return nil, domain.ErrNotFound
	}
	return girl, nil
}

func (s *rosterService) DeleteGirl(ctx context.Context, id int64) error {
	if err := s.girlRepo.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to delete girl: %w", err)
	}
	return nil
}
