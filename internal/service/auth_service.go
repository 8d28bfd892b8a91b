package service

import (
	"context"
	"fmt"
	"time"

	"github.com/zhdanov/girls-backend/internal/domain"
	"github.com/zhdanov/girls-backend/internal/mailer"
	"github.com/zhdanov/girls-backend/internal/repository"
	"github.com/zhdanov/girls-backend/pkg/auth"
	"github.com/zhdanov/girls-backend/pkg/config"
	"github.com/zhdanov/girls-backend/pkg/events"
	"github.com/zhdanov/girls-backend/pkg/logger"
)

type AuthService interface {
	// RequestCode issues a fresh one-time code for an active girl and emails
	// it to her. Outstanding codes stay valid.
	RequestCode(ctx context.Context, girlID int64) error

	// Verify redeems a code and mints a session token. Every redemption
	// failure surfaces as domain.ErrInvalidOrExpired.
	Verify(ctx context.Context, girlID int64, code string) (*domain.TokenResponse, error)

	// Authenticate resolves a bearer token to an active girl. An invalid or
	// expired token yields (nil, nil): the caller is anonymous.
	Authenticate(ctx context.Context, token string) (*domain.Girl, error)
}

type authService struct {
	girlRepo repository.GirlRepository
	codeRepo repository.CodeRepository
	mailer   mailer.Service
	events   events.Publisher
	config   *config.Config
}

func NewAuthService(
	girlRepo repository.GirlRepository,
	codeRepo repository.CodeRepository,
	mailer mailer.Service,
	events events.Publisher,
	config *config.Config,
) AuthService {
	return &authService{
		girlRepo: girlRepo,
		codeRepo: codeRepo,
		mailer:   mailer,
		events:   events,
		config:   config,
	}
}

func (s *authService) RequestCode(ctx context.Context, girlID int64) error {
	girl, err := s.girlRepo.FindActiveByID(ctx, girlID)
	if err != nil {
		return fmt.Errorf("failed to look up girl: %w", err)
	}
	if girl == nil {
		return domain.ErrNotFound
	}

	code := generateAccessCode()
	expiresAt := time.Now().Add(s.config.Auth.CodeTTL)

	access, err := s.codeRepo.Create(ctx, girl.ID, code, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to persist access code: %w", err)
	}

	if err := s.events.Publish(ctx, events.CodeRequested, events.CodeRequestedEvent{
		GirlID:      girl.ID,
		Email:       girl.Email,
		ExpiresAt:   access.ExpiresAt,
		RequestedAt: access.CreatedAt,
	}); err != nil {
		logger.WarnContext(ctx, "Failed to publish code requested event", "error", err, "girl_id", girl.ID)
	}

	// The code is already persisted; a failed send leaves it redeemable and
	// is reported to the caller without rollback.
	if err := s.mailer.SendAccessCode(girl.Email, code, girl.Name); err != nil {
		logger.ErrorContext(ctx, "Failed to send access code email", "error", err, "girl_id", girl.ID)
		return fmt.Errorf("%w: %v", domain.ErrDelivery, err)
	}

	return nil
}

func (s *authService) Verify(ctx context.Context, girlID int64, code string) (*domain.TokenResponse, error) {
	access, err := s.codeRepo.Redeem(ctx, girlID, code)
	if err != nil {
		return nil, fmt.Errorf("failed to redeem access code: %w", err)
	}
	if access == nil {
		return nil, domain.ErrInvalidOrExpired
	}

	token, err := auth.NewSessionToken(access.GirlID, s.config.Auth.JWTSecret, s.config.Auth.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to mint session token: %w", err)
	}

	if err := s.events.Publish(ctx, events.CodeVerified, events.CodeVerifiedEvent{
		GirlID:     access.GirlID,
		VerifiedAt: time.Now(),
	}); err != nil {
		logger.WarnContext(ctx, "Failed to publish code verified event", "error", err, "girl_id", access.GirlID)
	}

	return &domain.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		GirlID:      access.GirlID,
	}, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*domain.Girl, error) {
	claims, err := auth.Parse(token, s.config.Auth.JWTSecret)
	if err != nil {
		return nil, nil
	}

	// A valid token for a deactivated girl counts as unauthenticated.
	girl, err := s.girlRepo.FindActiveByID(ctx, claims.Sub)
	if err != nil {
		return nil, fmt.Errorf("failed to look up girl: %w", err)
	}
	return girl, nil
}
