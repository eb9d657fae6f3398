package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/endoclin/admin/internal"
	"github.com/endoclin/admin/internal/config"
)

const (
	FallbackLoginError      = "Falha ao fazer login"
	FallbackConnectionError = "Erro ao conectar com o servidor"
)

type Credentials struct {
	Username string
	Password string
}

// LoginResult carries the token issued by the provider. Token may be empty when
// the backend accepted the credentials without issuing one.
type LoginResult struct {
	Token string
}

type Provider interface {
	Login(ctx context.Context, creds Credentials) (LoginResult, error)
	Logout(ctx context.Context, token string) error
}

// LoginError is a failure the login form shows to the user as-is.
type LoginError struct {
	Status  int
	Message string
	Err     error
}

func (e *LoginError) Error() string { return e.Message }

func (e *LoginError) Unwrap() error { return e.Err }

func NewProvider(cfg *config.Config, logger internal.Logger) (Provider, error) {
	switch cfg.AuthProvider {
	case "remote":
		return NewRemoteAuthProvider(cfg.APIURL, &http.Client{Timeout: cfg.HTTPTimeout}, logger), nil
	case "local":
		return NewLocalAuthProvider(cfg.LocalAuthUsername, cfg.LocalAuthPassword, cfg.APIKey, logger)
	}
	return nil, fmt.Errorf("auth: unknown provider %q", cfg.AuthProvider)
}
