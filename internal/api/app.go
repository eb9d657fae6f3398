package api

import (
	"github.com/endoclin/admin/internal"
	"github.com/endoclin/admin/internal/service"
	"github.com/endoclin/admin/internal/session"
	"github.com/endoclin/admin/internal/storage"
)

type App interface {
	Logger() internal.Logger
	Identity() *session.Identity
	Sessions() storage.SessionStore
	Auth() *service.AuthService
	Professionals() *service.ProfessionalService
}
