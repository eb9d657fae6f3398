package service

import (
	"context"
	"sort"

	"github.com/endoclin/admin/internal"
	"github.com/endoclin/admin/internal/storage"
)

// ProfessionalView is a professional with its configuration already resolved
// against the defaults.
type ProfessionalView struct {
	ID           string
	NomeExibicao string
	Config       internal.AppointmentConfig
	Defaulted    bool
}

type DurationsRequest struct {
	DuracaoConsulta         int `json:"duracao_consulta" form:"duracao_consulta" validate:"required,gt=0"`
	PrimeiraConsultaDuracao int `json:"primeira_consulta_duracao" form:"primeira_consulta_duracao" validate:"required,gt=0"`
	RetornoDuracao          int `json:"retorno_duracao" form:"retorno_duracao" validate:"required,gt=0"`
}

type AttendanceUpdateRequest struct {
	Field string `json:"field" form:"field" validate:"required,oneof=tipo procedimento valor"`
	Value string `json:"value" form:"value"`
}

type ProfessionalService struct {
	repo     storage.ProfessionalRepository
	defaults internal.AppointmentDefaults
	logger   internal.Logger
}

func NewProfessionalService(repo storage.ProfessionalRepository, defaults internal.AppointmentDefaults, logger internal.Logger) *ProfessionalService {
	return &ProfessionalService{repo: repo, defaults: defaults, logger: logger}
}

// LoadActive reads the active professionals once. A failed read is logged and
// yields an empty list; the page then shows no configurations.
func (s *ProfessionalService) LoadActive(ctx context.Context) []ProfessionalView {
	profs, err := s.repo.ListProfessionals(ctx, storage.ActiveOnly())
	if err != nil {
		s.logger.Errorf("failed to load professionals: %v", err)
		return nil
	}
	views := make([]ProfessionalView, 0, len(profs))
	for _, p := range profs {
		views = append(views, ProfessionalView{
			ID:           p.ID,
			NomeExibicao: p.NomeExibicao,
			Config:       p.EffectiveConfig(s.defaults),
			Defaulted:    p.ConfigAtendimento == nil,
		})
	}
	sort.SliceStable(views, func(i, j int) bool { return views[i].NomeExibicao < views[j].NomeExibicao })
	return views
}

// LoadConfigs maps display name to configuration. Later records with the same
// name overwrite earlier ones.
func (s *ProfessionalService) LoadConfigs(ctx context.Context) map[string]internal.AppointmentConfig {
	configs := make(map[string]internal.AppointmentConfig)
	for _, v := range s.LoadActive(ctx) {
		configs[v.NomeExibicao] = v.Config
	}
	return configs
}

func (s *ProfessionalService) UpdateDurations(ctx context.Context, id string, req DurationsRequest) (internal.AppointmentConfig, error) {
	if err := validate.Struct(req); err != nil {
		return internal.AppointmentConfig{}, invalid(err)
	}
	return s.edit(ctx, id, func(cfg *internal.AppointmentConfig) error {
		cfg.DuracaoConsulta = req.DuracaoConsulta
		cfg.PrimeiraConsultaDuracao = req.PrimeiraConsultaDuracao
		cfg.RetornoDuracao = req.RetornoDuracao
		return nil
	})
}

func (s *ProfessionalService) AddAttendanceType(ctx context.Context, id string) (internal.AppointmentConfig, error) {
	return s.edit(ctx, id, func(cfg *internal.AppointmentConfig) error {
		AddAttendanceType(cfg)
		return nil
	})
}

func (s *ProfessionalService) RemoveAttendanceType(ctx context.Context, id string, index int) (internal.AppointmentConfig, error) {
	return s.edit(ctx, id, func(cfg *internal.AppointmentConfig) error {
		return RemoveAttendanceType(cfg, index)
	})
}

func (s *ProfessionalService) UpdateAttendanceType(ctx context.Context, id string, index int, req AttendanceUpdateRequest) (internal.AppointmentConfig, error) {
	if err := validate.Struct(req); err != nil {
		return internal.AppointmentConfig{}, invalid(err)
	}
	return s.edit(ctx, id, func(cfg *internal.AppointmentConfig) error {
		return UpdateAttendanceType(cfg, index, req.Field, req.Value)
	})
}

// edit applies fn to a copy of the stored configuration and writes it back.
// Concurrent edits are last-write-wins.
func (s *ProfessionalService) edit(ctx context.Context, id string, fn func(*internal.AppointmentConfig) error) (internal.AppointmentConfig, error) {
	prof, err := s.repo.GetProfessional(ctx, id)
	if err != nil {
		return internal.AppointmentConfig{}, err
	}
	cfg := prof.EffectiveConfig(s.defaults)
	if err := fn(&cfg); err != nil {
		return internal.AppointmentConfig{}, err
	}
	if err := s.repo.UpdateAppointmentConfig(ctx, id, cfg); err != nil {
		s.logger.Errorf("failed to save config of professional %s: %v", id, err)
		return internal.AppointmentConfig{}, err
	}
	return cfg, nil
}
