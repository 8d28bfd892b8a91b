package service_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zhdanov/girls-backend/internal/domain"
	"github.com/zhdanov/girls-backend/internal/service"
)

// ---------- Mocks ----------

type mockGameRepo struct {
	games []domain.Game
}

func (m *mockGameRepo) ListActive(context.Context) ([]domain.Game, error) {
	var out []domain.Game
	for _, g := range m.games {
		if g.IsActive {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *mockGameRepo) List(context.Context) ([]domain.Game, error) { return m.games, nil }

func (m *mockGameRepo) FindActiveBySlug(_ context.Context, slug string) (*domain.Game, error) {
	for i := range m.games {
		if m.games[i].Slug == slug && m.games[i].IsActive {
			return &m.games[i], nil
		}
	}
	return nil, nil
}

func (m *mockGameRepo) Create(context.Context, *domain.CreateGameRequest) (*domain.Game, error) {
	return nil, nil
}
func (m *mockGameRepo) Update(context.Context, int64, *domain.UpdateGameRequest) (*domain.Game, error) {
	return nil, nil
}
func (m *mockGameRepo) Delete(context.Context, int64) error { return nil }

type mockTarotRepo struct {
	cards    []domain.TarotCard
	readings []domain.TarotReading
}

func (m *mockTarotRepo) ListActiveCards(context.Context) ([]domain.TarotCard, error) {
	var out []domain.TarotCard
	for _, c := range m.cards {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockTarotRepo) ListCards(context.Context) ([]domain.TarotCard, error) {
	return m.cards, nil
}

func (m *mockTarotRepo) CreateCard(context.Context, *domain.CreateTarotCardRequest) (*domain.TarotCard, error) {
	return nil, nil
}
func (m *mockTarotRepo) UpdateCard(context.Context, string, *domain.UpdateTarotCardRequest) (*domain.TarotCard, error) {
	return nil, nil
}
func (m *mockTarotRepo) DeleteCard(context.Context, string) error { return nil }

func (m *mockTarotRepo) CreateReading(_ context.Context, reading *domain.TarotReading) error {
	m.readings = append(m.readings, *reading)
	return nil
}

type mockHoroscopeRepo struct {
	predictions []domain.HoroscopePrediction
}

func (m *mockHoroscopeRepo) ListActive(context.Context) ([]domain.HoroscopePrediction, error) {
	var out []domain.HoroscopePrediction
	for _, p := range m.predictions {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockHoroscopeRepo) List(context.Context) ([]domain.HoroscopePrediction, error) {
	return m.predictions, nil
}

func (m *mockHoroscopeRepo) Create(context.Context, *domain.CreatePredictionRequest) (*domain.HoroscopePrediction, error) {
	return nil, nil
}
func (m *mockHoroscopeRepo) Update(context.Context, string, *domain.UpdatePredictionRequest) (*domain.HoroscopePrediction, error) {
	return nil, nil
}
func (m *mockHoroscopeRepo) Delete(context.Context, string) error { return nil }

// ---------- Fixtures ----------

func deckOf(n int) []domain.TarotCard {
	cards := make([]domain.TarotCard, n)
	for i := range cards {
		cards[i] = domain.TarotCard{
			ID:       int64(i + 1),
			UUID:     fmt.Sprintf("card-%02d", i+1),
			Title:    fmt.Sprintf("Карта %d", i+1),
			IsActive: true,
		}
	}
	return cards
}

func newGameService(tarot *mockTarotRepo, horoscope *mockHoroscopeRepo) service.GameService {
	if tarot == nil {
		tarot = &mockTarotRepo{}
	}
	if horoscope == nil {
		horoscope = &mockHoroscopeRepo{}
	}
	return service.NewGameService(&mockGameRepo{}, tarot, horoscope)
}

// ---------- Tarot ----------

func TestDrawTarotThreeDistinctCards(t *testing.T) {
	tarot := &mockTarotRepo{cards: deckOf(10)}
	svc := newGameService(tarot, nil)

	resp, err := svc.DrawTarot(context.Background(), &domain.TarotDrawRequest{Question: "Что меня ждёт?"})
	require.NoError(t, err)

	require.NotNil(t, resp.Past)
	require.NotNil(t, resp.Present)
	require.NotNil(t, resp.Future)

	assert.NotEqual(t, resp.Past.UUID, resp.Present.UUID)
	assert.NotEqual(t, resp.Past.UUID, resp.Future.UUID)
	assert.NotEqual(t, resp.Present.UUID, resp.Future.UUID)
}

func TestDrawTarotLogsReading(t *testing.T) {
	tarot := &mockTarotRepo{cards: deckOf(5)}
	svc := newGameService(tarot, nil)

	resp, err := svc.DrawTarot(context.Background(), &domain.TarotDrawRequest{Question: "  вопрос  "})
	require.NoError(t, err)

	require.Len(t, tarot.readings, 1)
	reading := tarot.readings[0]
	require.NotNil(t, reading.QuestionText)
	assert.Equal(t, "вопрос", *reading.QuestionText)
	assert.Equal(t, resp.Past.UUID, reading.PastCardUUID)
	assert.Equal(t, resp.Present.UUID, reading.PresentCardUUID)
	assert.Equal(t, resp.Future.UUID, reading.FutureCardUUID)
}

func TestDrawTarotWithoutQuestion(t *testing.T) {
	tarot := &mockTarotRepo{cards: deckOf(5)}
	svc := newGameService(tarot, nil)

	_, err := svc.DrawTarot(context.Background(), &domain.TarotDrawRequest{})
	require.NoError(t, err)

	require.Len(t, tarot.readings, 1)
	assert.Nil(t, tarot.readings[0].QuestionText)
}

func TestDrawTarotDeckTooSmall(t *testing.T) {
	svc := newGameService(&mockTarotRepo{cards: deckOf(2)}, nil)

	_, err := svc.DrawTarot(context.Background(), &domain.TarotDrawRequest{})
	assert.ErrorIs(t, err, service.ErrDeckTooSmall)
}

func TestDrawTarotIgnoresInactiveCards(t *testing.T) {
	cards := deckOf(5)
	for i := 2; i < 5; i++ {
		cards[i].IsActive = false
	}
	svc := newGameService(&mockTarotRepo{cards: cards}, nil)

	_, err := svc.DrawTarot(context.Background(), &domain.TarotDrawRequest{})
	assert.ErrorIs(t, err, service.ErrDeckTooSmall)
}

func TestDrawTarotClampsCount(t *testing.T) {
	tarot := &mockTarotRepo{cards: deckOf(10)}
	svc := newGameService(tarot, nil)

	// Oversized count is clamped to 10, so a 10-card deck still serves it.
	_, err := svc.DrawTarot(context.Background(), &domain.TarotDrawRequest{Count: 100})
	require.NoError(t, err)

	// A single-card draw fills all three positions with the same card.
	resp, err := svc.DrawTarot(context.Background(), &domain.TarotDrawRequest{Count: -1})
	require.NoError(t, err)
	assert.Equal(t, resp.Past.UUID, resp.Present.UUID)
	assert.Equal(t, resp.Past.UUID, resp.Future.UUID)
}

// ---------- Horoscope ----------

func TestHoroscopeRolesAndSigns(t *testing.T) {
	svc := newGameService(nil, nil)

	assert.Len(t, svc.HoroscopeRoles(), 5)
	assert.Len(t, svc.HoroscopeSigns(), 12)
}

func TestHoroscopePredictionSentence(t *testing.T) {
	horoscope := &mockHoroscopeRepo{predictions: []domain.HoroscopePrediction{
		{UUID: "p1", Text: "завтра будет лучше чем вчера", IsActive: true},
	}}
	svc := newGameService(nil, horoscope)

	text, err := svc.HoroscopePrediction(context.Background(), "tester", "leo")
	require.NoError(t, err)

	// Genitive labels appear even after the easter-egg pass reshuffles words.
	assert.Contains(t, text, "Льва")
	assert.Contains(t, text, "тестировщика")
	assert.Contains(t, text, "ждёт:")
	assert.Contains(t, text, "завтра")
}

func TestHoroscopePredictionEasterEggs(t *testing.T) {
	horoscope := &mockHoroscopeRepo{predictions: []domain.HoroscopePrediction{
		{UUID: "p1", Text: "много интересных событий на работе и дома", IsActive: true},
	}}
	svc := newGameService(nil, horoscope)

	text, err := svc.HoroscopePrediction(context.Background(), "developer", "aries")
	require.NoError(t, err)

	starts := strings.Count(text, domain.EasterEggStart)
	assert.Equal(t, starts, strings.Count(text, domain.EasterEggEnd))
	assert.GreaterOrEqual(t, starts, 2)
	assert.LessOrEqual(t, starts, 4)
}

func TestHoroscopePredictionUnknownRoleOrSign(t *testing.T) {
	horoscope := &mockHoroscopeRepo{predictions: []domain.HoroscopePrediction{
		{UUID: "p1", Text: "текст", IsActive: true},
	}}
	svc := newGameService(nil, horoscope)

	_, err := svc.HoroscopePrediction(context.Background(), "astronaut", "leo")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.HoroscopePrediction(context.Background(), "tester", "ophiuchus")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHoroscopePredictionEmptyTable(t *testing.T) {
	svc := newGameService(nil, &mockHoroscopeRepo{})

	_, err := svc.HoroscopePrediction(context.Background(), "tester", "leo")
	assert.ErrorIs(t, err, service.ErrNoPredictions)
}

func TestHoroscopePredictionSkipsInactive(t *testing.T) {
	horoscope := &mockHoroscopeRepo{predictions: []domain.HoroscopePrediction{
		{UUID: "p1", Text: "выключенный текст", IsActive: false},
	}}
	svc := newGameService(nil, horoscope)

	_, err := svc.HoroscopePrediction(context.Background(), "tester", "leo")
	assert.ErrorIs(t, err, service.ErrNoPredictions)
}

// ---------- Games list ----------

func TestListGamesAndStub(t *testing.T) {
	gameRepo := &mockGameRepo{games: []domain.Game{
		{ID: 1, Slug: "pro-pro-cards", Title: "Про-Про Карты", IsActive: true},
		{ID: 2, Slug: "hidden", Title: "Скрытая", IsActive: false},
	}}
	svc := service.NewGameService(gameRepo, &mockTarotRepo{}, &mockHoroscopeRepo{})

	games, err := svc.ListGames(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "pro-pro-cards", games[0].Slug)

	game, err := svc.GetGameStub(context.Background(), "pro-pro-cards")
	require.NoError(t, err)
	assert.Equal(t, "Про-Про Карты", game.Title)

	_, err = svc.GetGameStub(context.Background(), "hidden")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetGameStub(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
