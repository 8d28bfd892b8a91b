package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/zhdanov/girls-backend/internal/handlers"
	"github.com/zhdanov/girls-backend/internal/mailer"
	"github.com/zhdanov/girls-backend/internal/repository"
	"github.com/zhdanov/girls-backend/internal/service"
	"github.com/zhdanov/girls-backend/pkg/config"
	"github.com/zhdanov/girls-backend/pkg/database"
	"github.com/zhdanov/girls-backend/pkg/events"
	"github.com/zhdanov/girls-backend/pkg/logger"
	mw "github.com/zhdanov/girls-backend/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	ctx := context.Background()

	if err := database.Migrate(ctx, cfg.Database.URL); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	pool, err := database.Connect(ctx, cfg.Database.URL)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	var bus events.Publisher = events.NoopPublisher{}
	if cfg.NATS.URL != "" {
		natsBus, err := events.NewNATSPublisher(cfg.NATS.URL)
		if err != nil {
			logger.Error("Failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer natsBus.Close()
		bus = natsBus
	}

	// Repositories
	girlRepo := repository.NewGirlRepository(pool)
	codeRepo := repository.NewCodeRepository(pool)
	gameRepo := repository.NewGameRepository(pool)
	tarotRepo := repository.NewTarotRepository(pool)
	horoscopeRepo := repository.NewHoroscopeRepository(pool)
	certRepo := repository.NewCertificateRepository(pool)

	// Services
	mail := mailer.Select(cfg)
	authService := service.NewAuthService(girlRepo, codeRepo, mail, bus, cfg)
	rosterService := service.NewRosterService(girlRepo)
	gameService := service.NewGameService(gameRepo, tarotRepo, horoscopeRepo)
	certService := service.NewCertificateService(certRepo, bus, cfg)
	adminService := service.NewAdminService(gameRepo, tarotRepo, horoscopeRepo)

	h := handlers.New(authService, rosterService, gameService, certService, adminService, cfg)

	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Logging)
	r.Use(mw.Health)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Admin-Password"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Use(h.WithGirl)

		r.Get("/girls", h.ListGirls)

		r.Post("/auth/request-code", h.RequestCode)
		r.Post("/auth/verify", h.VerifyCode)

		r.Get("/games", h.ListGames)
		r.Get("/games/{slug}", h.GameStub)

		r.Get("/tarot-cards", h.ListTarotCards)
		r.Post("/tarot-cards/draw", h.DrawTarot)

		r.Get("/horoscope/roles", h.ListHoroscopeRoles)
		r.Get("/horoscope/signs", h.ListHoroscopeSigns)
		r.Get("/horoscope/prediction", h.HoroscopePredictionGet)
		r.Post("/horoscope/prediction", h.HoroscopePredictionPost)

		r.Get("/certificate/{token}", h.LookupCertificate)
		r.With(h.RequireGirl).Post("/certificate", h.CreateCertificate)

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.RequireAdmin)

			r.Get("/girls", h.AdminListGirls)
			r.Post("/girls", h.AdminCreateGirl)
			r.Patch("/girls/{id}", h.AdminUpdateGirl)
			r.Delete("/girls/{id}", h.AdminDeleteGirl)

			r.Get("/games", h.AdminListGames)
			r.Post("/games", h.AdminCreateGame)
			r.Patch("/games/{id}", h.AdminUpdateGame)
			r.Delete("/games/{id}", h.AdminDeleteGame)

			r.Get("/tarot-cards", h.AdminListTarotCards)
			r.Post("/tarot-cards", h.AdminCreateTarotCard)
			r.Patch("/tarot-cards/{uuid}", h.AdminUpdateTarotCard)
			r.Delete("/tarot-cards/{uuid}", h.AdminDeleteTarotCard)

			r.Get("/predictions", h.AdminListPredictions)
			r.Post("/predictions", h.AdminCreatePrediction)
			r.Patch("/predictions/{uuid}", h.AdminUpdatePrediction)
			r.Delete("/predictions/{uuid}", h.AdminDeletePrediction)
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down API...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("API shutdown error", "error", err)
		}
	}()

	logger.Info("Starting API", "port", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("API server error", "error", err)
		os.Exit(1)
	}
}
