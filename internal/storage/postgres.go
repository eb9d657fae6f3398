package storage

import (
	"context"
	"errors"

	"github.com/endoclin/admin/internal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresProfessionalRepository reads the profissionais table directly.
// config_atendimento is a nullable jsonb column.
type PostgresProfessionalRepository struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresProfessionalRepository(ctx context.Context, dsn string, logger internal.Logger) (*PostgresProfessionalRepository, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	return &PostgresProfessionalRepository{pool: pool, logger: logger}, nil
}

func (p *PostgresProfessionalRepository) ListProfessionals(ctx context.Context, filter ProfessionalFilter) ([]internal.Professional, error) {
	query := `SELECT id::text, nome_exibicao, ativo, config_atendimento FROM profissionais`
	var args []any
	if filter.Ativo != nil {
		query += ` WHERE ativo = $1`
		args = append(args, *filter.Ativo)
	}
	query += ` ORDER BY nome_exibicao`

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Errorf("failed to query professionals: %v", err)
		return nil, err
	}
	defer rows.Close()

	var professionals []internal.Professional
	for rows.Next() {
		prof, err := scanProfessional(rows)
		if err != nil {
			p.logger.Errorf("failed to scan professional: %v", err)
			return nil, err
		}
		professionals = append(professionals, prof)
	}
	if err := rows.Err(); err != nil {
		p.logger.Errorf("failed to iterate professionals: %v", err)
		return nil, err
	}
	return professionals, nil
}

func (p *PostgresProfessionalRepository) GetProfessional(ctx context.Context, id string) (*internal.Professional, error) {
	row := p.pool.QueryRow(ctx, `SELECT id::text, nome_exibicao, ativo, config_atendimento FROM profissionais WHERE id::text = $1`, id)
	prof, err := scanProfessional(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		p.logger.Errorf("professional %s not loaded: %v", id, err)
		return nil, err
	}
	return &prof, nil
}

func (p *PostgresProfessionalRepository) UpdateAppointmentConfig(ctx context.Context, id string, cfg internal.AppointmentConfig) error {
	tag, err := p.pool.Exec(ctx, `UPDATE profissionais SET config_atendimento = $2 WHERE id::text = $1`, id, cfg)
	if err != nil {
		p.logger.Errorf("failed to update config of professional %s: %v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *PostgresProfessionalRepository) Close() {
	p.pool.Close()
}

func scanProfessional(row pgx.Row) (internal.Professional, error) {
	var prof internal.Professional
	var cfg *internal.AppointmentConfig
	if err := row.Scan(&prof.ID, &prof.NomeExibicao, &prof.Ativo, &cfg); err != nil {
		return internal.Professional{}, err
	}
	prof.ConfigAtendimento = cfg
	return prof, nil
}

var _ ProfessionalRepository = (*PostgresProfessionalRepository)(nil)
