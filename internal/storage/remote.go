package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/endoclin/admin/internal"
)

// RemoteProfessionalRepository talks to the clinic backend's profissionais
// resource using the bearer token found in the request context.
type RemoteProfessionalRepository struct {
	BaseURL    string
	HTTPClient *http.Client
	logger     internal.Logger
}

func NewRemoteProfessionalRepository(baseURL string, client *http.Client, logger internal.Logger) *RemoteProfessionalRepository {
	return &RemoteProfessionalRepository{BaseURL: baseURL, HTTPClient: client, logger: logger}
}

func (r *RemoteProfessionalRepository) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	target := r.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (r *RemoteProfessionalRepository) do(req *http.Request, out any) error {
	resp, err := r.HTTPClient.Do(req)
	if err != nil {
		r.logger.Errorf("failed to call professionals resource: %v", err)
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		r.logger.Errorf("professionals resource returned %d", resp.StatusCode)
		return fmt.Errorf("professionals resource returned %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return decodeEnvelope(raw, out)
}

// decodeEnvelope accepts either a bare JSON value or one wrapped as {"data": ...}.
func decodeEnvelope(raw []byte, out any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var env struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &env); err == nil && len(env.Data) > 0 {
			trimmed = env.Data
		}
	}
	return json.Unmarshal(trimmed, out)
}

func (r *RemoteProfessionalRepository) ListProfessionals(ctx context.Context, filter ProfessionalFilter) ([]internal.Professional, error) {
	query := url.Values{}
	if filter.Ativo != nil {
		query.Set("ativo", strconv.FormatBool(*filter.Ativo))
	}
	req, err := r.newRequest(ctx, http.MethodGet, "/profissionais", query, nil)
	if err != nil {
		return nil, err
	}
	var professionals []internal.Professional
	if err := r.do(req, &professionals); err != nil {
		return nil, err
	}
	return professionals, nil
}

func (r *RemoteProfessionalRepository) GetProfessional(ctx context.Context, id string) (*internal.Professional, error) {
	req, err := r.newRequest(ctx, http.MethodGet, "/profissionais/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}
	var prof internal.Professional
	if err := r.do(req, &prof); err != nil {
		return nil, err
	}
	return &prof, nil
}

func (r *RemoteProfessionalRepository) UpdateAppointmentConfig(ctx context.Context, id string, cfg internal.AppointmentConfig) error {
	body := map[string]any{"config_atendimento": cfg}
	req, err := r.newRequest(ctx, http.MethodPatch, "/profissionais/"+url.PathEscape(id), nil, body)
	if err != nil {
		return err
	}
	return r.do(req, nil)
}

func (r *RemoteProfessionalRepository) Close() {
	r.HTTPClient.CloseIdleConnections()
}

var _ ProfessionalRepository = (*RemoteProfessionalRepository)(nil)
