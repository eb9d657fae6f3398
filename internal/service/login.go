package service

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/endoclin/admin/internal"
	"github.com/endoclin/admin/internal/auth"
	"github.com/endoclin/admin/internal/session"
)

var ErrLoginInProgress = errors.New("login already in progress")

type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type AuthService struct {
	provider    auth.Provider
	staticToken string
	logger      internal.Logger
	inflight    sync.Map // namespace -> struct{}
}

// NewAuthService wires the login flow. staticToken is only used when the
// provider accepts the credentials without issuing a token.
func NewAuthService(provider auth.Provider, staticToken string, logger internal.Logger) *AuthService {
	return &AuthService{provider: provider, staticToken: staticToken, logger: logger}
}

// Login authenticates against the provider and, on success, persists the token
// in sess. Failures leave sess untouched.
func (s *AuthService) Login(ctx context.Context, sess *session.Session, req LoginRequest) error {
	if err := validate.Struct(req); err != nil {
		return &auth.LoginError{Status: http.StatusBadRequest, Message: "Informe usuário e senha", Err: invalid(err)}
	}
	if _, busy := s.inflight.LoadOrStore(sess.Namespace(), struct{}{}); busy {
		return ErrLoginInProgress
	}
	defer s.inflight.Delete(sess.Namespace())

	result, err := s.provider.Login(ctx, auth.Credentials{Username: req.Username, Password: req.Password})
	if err != nil {
		return err
	}

	token := result.Token
	if token == "" {
		if s.staticToken == "" {
			s.logger.Errorf("login for %q succeeded but no token was issued", req.Username)
			return &auth.LoginError{Status: http.StatusBadGateway, Message: auth.FallbackLoginError}
		}
		s.logger.Warnf("backend issued no token for %q, using the configured API key", req.Username)
		token = s.staticToken
	}

	if err := sess.Login(ctx, token); err != nil {
		s.logger.Errorf("failed to persist session: %v", err)
		return err
	}
	s.logger.Infof("user %q signed in", req.Username)
	return nil
}

// Logout notifies the provider on a best-effort basis and then always clears the
// session. Only a failure to clear the local store is returned.
func (s *AuthService) Logout(ctx context.Context, sess *session.Session) error {
	if token := sess.Token(); token != "" {
		if err := s.provider.Logout(ctx, token); err != nil {
			s.logger.Warnf("ignoring logout failure: %v", err)
		}
	}
	return sess.Clear(ctx)
}
