package service

import (
	"context"
	"errors"
	"sync"

	"github.com/endoclin/admin/internal"
	"github.com/endoclin/admin/internal/auth"
	"github.com/endoclin/admin/internal/storage"
)

type fakeRepo struct {
	mu       sync.Mutex
	profs    map[string]internal.Professional
	listErr  error
	lastList storage.ProfessionalFilter
	updates  int
}

func newFakeRepo(profs ...internal.Professional) *fakeRepo {
	r := &fakeRepo{profs: make(map[string]internal.Professional)}
	for _, p := range profs {
		r.profs[p.ID] = p
	}
	return r
}

func (r *fakeRepo) ListProfessionals(ctx context.Context, filter storage.ProfessionalFilter) ([]internal.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastList = filter
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []internal.Professional
	for _, p := range r.profs {
		if filter.Ativo != nil && p.Ativo != *filter.Ativo {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeRepo) GetProfessional(ctx context.Context, id string) (*internal.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profs[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &p, nil
}

func (r *fakeRepo) UpdateAppointmentConfig(ctx context.Context, id string, cfg internal.AppointmentConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profs[id]
	if !ok {
		return storage.ErrNotFound
	}
	c := cfg.Clone()
	p.ConfigAtendimento = &c
	r.profs[id] = p
	r.updates++
	return nil
}

func (r *fakeRepo) Close() {}

type fakeProvider struct {
	mu          sync.Mutex
	token       string
	loginErr    error
	logoutErr   error
	logins      int
	logouts     []string
	block       chan struct{}
	loginCalled chan struct{}
}

func (p *fakeProvider) Login(ctx context.Context, creds auth.Credentials) (auth.LoginResult, error) {
	p.mu.Lock()
	p.logins++
	block, called := p.block, p.loginCalled
	p.mu.Unlock()
	if called != nil {
		called <- struct{}{}
	}
	if block != nil {
		<-block
	}
	if p.loginErr != nil {
		return auth.LoginResult{}, p.loginErr
	}
	return auth.LoginResult{Token: p.token}, nil
}

func (p *fakeProvider) Logout(ctx context.Context, token string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.logouts = append(p.logouts, token)
	return p.logoutErr
}

var errOffline = errors.New("connection refused")
