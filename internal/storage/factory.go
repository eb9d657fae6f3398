package storage

import (
	"context"
	"fmt"
	"net/http"

	"github.com/endoclin/admin/internal"
	"github.com/endoclin/admin/internal/config"
)

func NewSessionStore(cfg *config.Config, logger internal.Logger) (SessionStore, error) {
	switch cfg.SessionBackend {
	case "file":
		return NewFileSessionStore(cfg.SessionFile, logger)
	case "redis":
		return NewRedisSessionStore(cfg.RedisURL, logger)
	case "sqlite":
		return NewSQLiteSessionStore(context.Background(), cfg.SQLiteDSN, logger)
	}
	return nil, fmt.Errorf("storage: unknown session backend %q", cfg.SessionBackend)
}

func NewProfessionalRepository(cfg *config.Config, logger internal.Logger) (ProfessionalRepository, error) {
	switch cfg.ProfessionalsBackend {
	case "remote":
		return NewRemoteProfessionalRepository(cfg.APIURL, &http.Client{Timeout: cfg.HTTPTimeout}, logger), nil
	case "postgres":
		return NewPostgresProfessionalRepository(context.Background(), cfg.PostgresDSN, logger)
	}
	return nil, fmt.Errorf("storage: unknown professionals backend %q", cfg.ProfessionalsBackend)
}
