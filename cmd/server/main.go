package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/endoclin/admin/internal"
	"github.com/endoclin/admin/internal/api"
	"github.com/endoclin/admin/internal/auth"
	"github.com/endoclin/admin/internal/config"
	"github.com/endoclin/admin/internal/service"
	"github.com/endoclin/admin/internal/session"
	"github.com/endoclin/admin/internal/storage"
	"github.com/gin-gonic/gin"
)

type app struct {
	logger        internal.Logger
	identity      *session.Identity
	sessions      storage.SessionStore
	auth          *service.AuthService
	professionals *service.ProfessionalService
}

func (a *app) Logger() internal.Logger                     { return a.logger }
func (a *app) Identity() *session.Identity                 { return a.identity }
func (a *app) Sessions() storage.SessionStore              { return a.sessions }
func (a *app) Auth() *service.AuthService                  { return a.auth }
func (a *app) Professionals() *service.ProfessionalService { return a.professionals }

func main() {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	sessions, err := storage.NewSessionStore(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init session store: %v", err)
	}
	repo, err := storage.NewProfessionalRepository(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init professionals repository: %v", err)
	}
	provider, err := auth.NewProvider(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init auth provider: %v", err)
	}

	if cfg.Env == "development" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	a := &app{
		logger:        logger,
		identity:      session.NewIdentity(cfg.SessionKey(), cfg.Env != "development"),
		sessions:      sessions,
		auth:          service.NewAuthService(provider, cfg.APIKey, logger),
		professionals: service.NewProfessionalService(repo, cfg.Defaults, logger),
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.NewRouter(a),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Infof("Server running on %s (api=%s, sessions=%s, professionals=%s)",
			cfg.HTTPAddr, cfg.APIURL, cfg.SessionBackend, cfg.ProfessionalsBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}
	repo.Close()
	if err := sessions.Close(); err != nil {
		logger.Errorf("failed to flush sessions: %v", err)
	}
}
