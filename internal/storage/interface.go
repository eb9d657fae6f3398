package storage

import (
	"context"
	"errors"

	"github.com/endoclin/admin/internal"
)

var ErrNotFound = errors.New("storage: not found")

// SessionStore persists small string values per browser namespace. It stands in
// for the browser's localStorage.
type SessionStore interface {
	Get(ctx context.Context, namespace, key string) (string, bool, error)
	Set(ctx context.Context, namespace, key, value string) error
	Remove(ctx context.Context, namespace string, keys ...string) error
	Close() error
}

type ProfessionalFilter struct {
	Ativo *bool
}

// ActiveOnly selects professionals with ativo = true.
func ActiveOnly() ProfessionalFilter {
	active := true
	return ProfessionalFilter{Ativo: &active}
}

type ProfessionalRepository interface {
	ListProfessionals(ctx context.Context, filter ProfessionalFilter) ([]internal.Professional, error)
	GetProfessional(ctx context.Context, id string) (*internal.Professional, error)
	UpdateAppointmentConfig(ctx context.Context, id string, cfg internal.AppointmentConfig) error
	Close()
}
