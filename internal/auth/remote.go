package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/endoclin/admin/internal"
)

// RemoteAuthProvider authenticates against the clinic backend's /auth endpoints.
type RemoteAuthProvider struct {
	BaseURL    string
	HTTPClient *http.Client
	logger     internal.Logger
}

type loginResponse struct {
	Error       string `json:"error"`
	Token       string `json:"token"`
	AccessToken string `json:"access_token"`
	Data        struct {
		Token string `json:"token"`
	} `json:"data"`
}

func (r loginResponse) token() string {
	switch {
	case r.Token != "":
		return r.Token
	case r.AccessToken != "":
		return r.AccessToken
	}
	return r.Data.Token
}

func (a *RemoteAuthProvider) Login(ctx context.Context, creds Credentials) (LoginResult, error) {
	body, err := json.Marshal(map[string]string{"username": creds.Username, "password": creds.Password})
	if err != nil {
		return LoginResult{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.BaseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		a.logger.Errorf("failed to create request: %v", err)
		return LoginResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		a.logger.Errorf("failed to call auth service: %v", err)
		return LoginResult{}, &LoginError{Status: http.StatusBadGateway, Message: FallbackConnectionError, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		a.logger.Errorf("failed to read auth response: %v", err)
		return LoginResult{}, &LoginError{Status: http.StatusBadGateway, Message: FallbackConnectionError, Err: err}
	}
	var payload loginResponse
	var decodeErr error
	if len(bytes.TrimSpace(raw)) > 0 {
		decodeErr = json.Unmarshal(raw, &payload)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		a.logger.Warnf("auth service rejected login with %d", resp.StatusCode)
		msg := payload.Error
		if decodeErr != nil || msg == "" {
			msg = FallbackLoginError
		}
		return LoginResult{}, &LoginError{Status: resp.StatusCode, Message: msg, Err: fmt.Errorf("auth service returned %d", resp.StatusCode)}
	}
	if decodeErr != nil {
		a.logger.Errorf("failed to decode auth response: %v", decodeErr)
		return LoginResult{}, &LoginError{Status: http.StatusBadGateway, Message: FallbackConnectionError, Err: decodeErr}
	}
	return LoginResult{Token: payload.token()}, nil
}

// Logout tells the backend the token is done. Callers treat any error as
// informational.
func (a *RemoteAuthProvider) Logout(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.BaseURL+"/auth/logout", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("auth service returned %d on logout", resp.StatusCode)
	}
	return nil
}

func NewRemoteAuthProvider(baseURL string, client *http.Client, logger internal.Logger) *RemoteAuthProvider {
	return &RemoteAuthProvider{
		BaseURL:    baseURL,
		HTTPClient: client,
		logger:     logger,
	}
}

var _ Provider = (*RemoteAuthProvider)(nil)
