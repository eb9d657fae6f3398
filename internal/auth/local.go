package auth

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/endoclin/admin/internal"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const invalidCredentials = "Usuário ou senha inválidos"

// LocalAuthProvider checks a single configured account without a backend. It is
// meant for development.
type LocalAuthProvider struct {
	username     string
	passwordHash []byte
	token        string
	logger       internal.Logger
}

func (a *LocalAuthProvider) Login(ctx context.Context, creds Credentials) (LoginResult, error) {
	userOK := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(a.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(creds.Password))
	if !userOK || passErr != nil {
		a.logger.Warnf("local login rejected for %q", creds.Username)
		return LoginResult{}, &LoginError{Status: http.StatusUnauthorized, Message: invalidCredentials}
	}
	token := a.token
	if token == "" {
		token = uuid.NewString()
	}
	return LoginResult{Token: token}, nil
}

func (a *LocalAuthProvider) Logout(ctx context.Context, token string) error {
	return nil
}

// NewLocalAuthProvider hashes password up front. When token is empty each login
// gets a random one.
func NewLocalAuthProvider(username, password, token string, logger internal.Logger) (*LocalAuthProvider, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &LocalAuthProvider{username: username, passwordHash: hash, token: token, logger: logger}, nil
}

var _ Provider = (*LocalAuthProvider)(nil)
