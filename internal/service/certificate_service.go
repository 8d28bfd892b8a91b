package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/zhdanov/girls-backend/internal/domain"
	"github.com/zhdanov/girls-backend/internal/repository"
	"github.com/zhdanov/girls-backend/pkg/config"
	"github.com/zhdanov/girls-backend/pkg/events"
	"github.com/zhdanov/girls-backend/pkg/logger"
)

type CertificateService interface {
	Create(ctx context.Context, girl *domain.Girl) (*domain.CertificateResponse, error)
	Lookup(ctx context.Context, token string) (*domain.CertificateLookupResponse, error)
}

type certificateService struct {
	certRepo repository.CertificateRepository
	events   events.Publisher
	config   *config.Config
}

func NewCertificateService(certRepo repository.CertificateRepository, events events.Publisher, config *config.Config) CertificateService {
	return &certificateService{
		certRepo: certRepo,
		events:   events,
		config:   config,
	}
}

func (s *certificateService) Create(ctx context.Context, girl *domain.Girl) (*domain.CertificateResponse, error) {
	token := generateCertificateToken()

	cert, err := s.certRepo.Create(ctx, girl.ID, token)
	if err != nil {
		return nil, fmt.Errorf("failed to create certificate: %w", err)
	}

	if err := s.events.Publish(ctx, events.CertificateCreated, events.CertificateCreatedEvent{
		GirlID:    cert.GirlID,
		Token:     cert.Token,
		CreatedAt: time.Now(),
	}); err != nil {
		logger.WarnContext(ctx, "Failed to publish certificate created event", "error", err, "girl_id", girl.ID)
	}

	return &domain.CertificateResponse{
		URL:   fmt.Sprintf("%s/certificate/%s", s.config.App.BaseURL, cert.Token),
		Token: cert.Token,
	}, nil
}

func (s *certificateService) Lookup(ctx context.Context, token string) (*domain.CertificateLookupResponse, error) {
	name, found, err := s.certRepo.FindGirlNameByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to look up certificate: %w", err)
	}
	if !found {
		return &domain.CertificateLookupResponse{Found: false}, nil
	}
	return &domain.CertificateLookupResponse{Found: true, GirlName: name}, nil
}

func generateCertificateToken() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic("certificate token generation: entropy source failed: " + err.Error())
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}
