package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/zhdanov/girls-backend/internal/domain"
	"github.com/zhdanov/girls-backend/internal/repository"
)

// AdminService covers content administration: games, tarot deck and
// horoscope predictions. Girl administration lives in RosterService.
type AdminService interface {
	ListGames(ctx context.Context) ([]domain.Game, error)
	CreateGame(ctx context.Context, req *domain.CreateGameRequest) (*domain.Game, error)
	UpdateGame(ctx context.Context, id int64, req *domain.UpdateGameRequest) (*domain.Game, error)
	DeleteGame(ctx context.Context, id int64) error

	ListTarotCards(ctx context.Context) ([]domain.TarotCard, error)
	CreateTarotCard(ctx context.Context, req *domain.CreateTarotCardRequest) (*domain.TarotCard, error)
	UpdateTarotCard(ctx context.Context, cardUUID string, req *domain.UpdateTarotCardRequest) (*domain.TarotCard, error)
	DeleteTarotCard(ctx context.Context, cardUUID string) error

	ListPredictions(ctx context.Context) ([]domain.HoroscopePrediction, error)
	CreatePrediction(ctx context.Context, req *domain.CreatePredictionRequest) (*domain.HoroscopePrediction, error)
	UpdatePrediction(ctx context.Context, predictionUUID string, req *domain.UpdatePredictionRequest) (*domain.HoroscopePrediction, error)
	DeletePrediction(ctx context.Context, predictionUUID string) error
}

type adminService struct {
	gameRepo      repository.GameRepository
	tarotRepo     repository.TarotRepository
	horoscopeRepo repository.HoroscopeRepository
}

func NewAdminService(
	gameRepo repository.GameRepository,
	tarotRepo repository.TarotRepository,
	horoscopeRepo repository.HoroscopeRepository,
) AdminService {
	return &adminService{
		gameRepo:      gameRepo,
		tarotRepo:     tarotRepo,
		horoscopeRepo: horoscopeRepo,
	}
}

func (s *adminService) ListGames(ctx context.Context) ([]domain.Game, error) {
	games, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return games, nil
}

func (s *adminService) CreateGame(ctx context.Context, req *domain.CreateGameRequest) (*domain.Game, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	game, err := s.gameRepo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	return game, nil
}

func (s *adminService) UpdateGame(ctx context.Context, id int64, req *domain.UpdateGameRequest) (*domain.Game, error) {
	game, err := s.gameRepo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}
	if game == nil {
		return nil, domain.ErrNotFound
	}
	return game, nil
}

func (s *adminService) DeleteGame(ctx context.Context, id int64) error {
	if err := s.gameRepo.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return nil
}

func (s *adminService) ListTarotCards(ctx context.Context) ([]domain.TarotCard, error) {
	cards, err := s.tarotRepo.ListCards(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tarot cards: %w", err)
	}
	return cards, nil
}

func (s *adminService) CreateTarotCard(ctx context.Context, req *domain.CreateTarotCardRequest) (*domain.TarotCard, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	card, err := s.tarotRepo.CreateCard(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create tarot card: %w", err)
	}
	return card, nil
}

func (s *adminService) UpdateTarotCard(ctx context.Context, cardUUID string, req *domain.UpdateTarotCardRequest) (*domain.TarotCard, error) {
	card, err := s.tarotRepo.UpdateCard(ctx, cardUUID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update tarot card: %w", err)
	}
	if card == nil {
		return nil, domain.ErrNotFound
	}
	return card, nil
}

func (s *adminService) DeleteTarotCard(ctx context.Context, cardUUID string) error {
	if err := s.tarotRepo.DeleteCard(ctx, cardUUID); err != nil {
		if err == pgx.ErrNoRows {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to delete tarot card: %w", err)
	}
	return nil
}

func (s *adminService) ListPredictions(ctx context.Context) ([]domain.HoroscopePrediction, error) {
	predictions, err := s.horoscopeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}
	return predictions, nil
}

func (s *adminService) CreatePrediction(ctx context.Context, req *domain.CreatePredictionRequest) (*domain.HoroscopePrediction, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	prediction, err := s.horoscopeRepo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create prediction: %w", err)
	}
	return prediction, nil
}

func (s *adminService) UpdatePrediction(ctx context.Context, predictionUUID string, req *domain.UpdatePredictionRequest) (*domain.HoroscopePrediction, error) {
	prediction, err := s.horoscopeRepo.Update(ctx, predictionUUID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update prediction: %w", err)
	}
	if prediction == nil {
		return nil, domain.ErrNotFound
	}
	return prediction, nil
}

func (s *adminService) DeletePrediction(ctx context.Context, predictionUUID string) error {
	if err := s.horoscopeRepo.Delete(ctx, predictionUUID); err != nil {
		if err == pgx.ErrNoRows {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to delete prediction: %w", err)
	}
	return nil
}
