package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/zhdanov/girls-backend/internal/domain"
	"github.com/zhdanov/girls-backend/internal/repository"
)

// ErrDeckTooSmall means the draw asked for more cards than the deck holds.
var ErrDeckTooSmall = errors.New("not enough cards in deck")

// ErrNoPredictions means the horoscope predictions table is empty.
var ErrNoPredictions = errors.New("no predictions in database")

type GameService interface {
	ListGames(ctx context.Context) ([]domain.Game, error)
	GetGameStub(ctx context.Context, slug string) (*domain.Game, error)

	ListTarotCards(ctx context.Context) ([]domain.TarotCard, error)
	DrawTarot(ctx context.Context, req *domain.TarotDrawRequest) (*domain.TarotDrawResponse, error)

	HoroscopeRoles() []domain.RoleSign
	HoroscopeSigns() []domain.RoleSign
	HoroscopePrediction(ctx context.Context, roleID, signID string) (string, error)
}

type gameService struct {
	gameRepo      repository.GameRepository
	tarotRepo     repository.TarotRepository
	horoscopeRepo repository.HoroscopeRepository
}

func NewGameService(
	gameRepo repository.GameRepository,
	tarotRepo repository.TarotRepository,
	horoscopeRepo repository.HoroscopeRepository,
) GameService {
	return &gameService{
		gameRepo:      gameRepo,
		tarotRepo:     tarotRepo,
		horoscopeRepo: horoscopeRepo,
	}
}

func (s *gameService) ListGames(ctx context.Context) ([]domain.Game, error) {
	games, err := s.gameRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return games, nil
}

func (s *gameService) GetGameStub(ctx context.Context, slug string) (*domain.Game, error) {
	game, err := s.gameRepo.FindActiveBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to find game: %w", err)
	}
	if game == nil {
		return nil, domain.ErrNotFound
	}
	return game, nil
}

func (s *gameService) ListTarotCards(ctx context.Context) ([]domain.TarotCard, error) {
	cards, err := s.tarotRepo.ListActiveCards(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tarot cards: %w", err)
	}
	return cards, nil
}

func (s *gameService) DrawTarot(ctx context.Context, req *domain.TarotDrawRequest) (*domain.TarotDrawResponse, error) {
	req.Normalize()

	count := req.Count
	if count < 1 {
		count = 1
	}
	if count > 10 {
		count = 10
	}

	cards, err := s.tarotRepo.ListActiveCards(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tarot cards: %w", err)
	}
	if len(cards) < count {
		return nil, fmt.Errorf("%w (need %d, have %d)", ErrDeckTooSmall, count, len(cards))
	}

	drawn := make([]domain.TarotCard, 0, count)
	for _, idx := range rand.Perm(len(cards))[:count] {
		drawn = append(drawn, cards[idx])
	}

	past := &drawn[0]
	present := past
	future := past
	if len(drawn) > 1 {
		present = &drawn[1]
	}
	if len(drawn) > 2 {
		future = &drawn[2]
	}

	var question *string
	if req.Question != "" {
		question = &req.Question
	}

	reading := &domain.TarotReading{
		QuestionText:    question,
		PastCardUUID:    past.UUID,
		PresentCardUUID: present.UUID,
		FutureCardUUID:  future.UUID,
	}
	if err := s.tarotRepo.CreateReading(ctx, reading); err != nil {
		return nil, fmt.Errorf("failed to log tarot reading: %w", err)
	}

	return &domain.TarotDrawResponse{Past: past, Present: present, Future: future}, nil
}

func (s *gameService) HoroscopeRoles() []domain.RoleSign {
	return domain.HoroscopeRoles
}

func (s *gameService) HoroscopeSigns() []domain.RoleSign {
	return domain.HoroscopeSigns
}

func (s *gameService) HoroscopePrediction(ctx context.Context, roleID, signID string) (string, error) {
	role, sign, ok := lookupRoleAndSign(roleID, signID)
	if !ok {
		return "", domain.ErrNotFound
	}

	predictions, err := s.horoscopeRepo.ListActive(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list predictions: %w", err)
	}
	if len(predictions) == 0 {
		return "", ErrNoPredictions
	}

	pred := predictions[rand.Intn(len(predictions))]
	sentence := fmt.Sprintf("%s %s ждёт: %s", sign.LabelRod, role.LabelRod, pred.Text)
	return insertEasterEggs(sentence), nil
}

func lookupRoleAndSign(roleID, signID string) (role, sign domain.RoleSign, ok bool) {
	var haveRole, haveSign bool
	for _, r := range domain.HoroscopeRoles {
		if r.ID == roleID {
			role, haveRole = r, true
			break
		}
	}
	for _, s := range domain.HoroscopeSigns {
		if s.ID == signID {
			sign, haveSign = s, true
			break
		}
	}
	return role, sign, haveRole && haveSign
}

// insertEasterEggs drops 2-4 marked phrases into the text at random word
// boundaries. The frontend styles the marked spans.
func insertEasterEggs(text string) string {
	if len(domain.EasterEggPhrases) == 0 {
		return text
	}

	wrap := func(phrase string) string {
		return domain.EasterEggStart + strings.TrimSpace(phrase) + domain.EasterEggEnd
	}

	words := strings.Fields(text)
	if len(words) < 2 {
		phrase := domain.EasterEggPhrases[rand.Intn(len(domain.EasterEggPhrases))]
		return text + " " + wrap(phrase)
	}

	inserts := 2 + rand.Intn(3)
	for i := 0; i < inserts; i++ {
		phrase := domain.EasterEggPhrases[rand.Intn(len(domain.EasterEggPhrases))]
		pos := rand.Intn(len(words) + 1)
		words = append(words[:pos], append([]string{wrap(phrase)}, words[pos:]...)...)
	}
	return strings.Join(words, " ")
}
