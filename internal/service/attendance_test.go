package service

import (
	"testing"

	"github.com/endoclin/admin/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceEditor(t *testing.T) {
	cfg := internal.DefaultAppointmentDefaults().Config()

	AddAttendanceType(&cfg)
	AddAttendanceType(&cfg)
	require.Len(t, cfg.TiposAtendimento, 2)
	assert.Equal(t, internal.AttendanceType{Tipo: internal.AttendanceParticular}, cfg.TiposAtendimento[0])

	require.NoError(t, UpdateAttendanceType(&cfg, 1, FieldTipo, "Telemedicina"))
	require.NoError(t, UpdateAttendanceType(&cfg, 1, FieldProcedimento, "Retorno online"))
	require.NoError(t, UpdateAttendanceType(&cfg, 1, FieldValor, "R$ 1.234,56"))
	assert.Equal(t, internal.AttendanceTelemedicina, cfg.TiposAtendimento[1].Tipo)
	assert.Equal(t, "Retorno online", cfg.TiposAtendimento[1].Procedimento)
	assert.InDelta(t, 1234.56, cfg.TiposAtendimento[1].Valor, 0.0001)

	require.NoError(t, RemoveAttendanceType(&cfg, 0))
	require.Len(t, cfg.TiposAtendimento, 1)
	assert.Equal(t, "Retorno online", cfg.TiposAtendimento[0].Procedimento)
}

func TestAttendanceEditor_InvalidInput(t *testing.T) {
	cfg := internal.AppointmentConfig{}
	assert.ErrorIs(t, RemoveAttendanceType(&cfg, 0), ErrInvalidInput)
	assert.ErrorIs(t, UpdateAttendanceType(&cfg, 0, FieldTipo, "Particular"), ErrInvalidInput)

	AddAttendanceType(&cfg)
	assert.ErrorIs(t, UpdateAttendanceType(&cfg, 0, FieldTipo, "Gratuito"), ErrInvalidInput)
	assert.ErrorIs(t, UpdateAttendanceType(&cfg, 0, "desconto", "1"), ErrInvalidInput)
	assert.ErrorIs(t, RemoveAttendanceType(&cfg, -1), ErrInvalidInput)
	assert.Equal(t, internal.AttendanceParticular, cfg.TiposAtendimento[0].Tipo)
}

func TestRemoveAttendanceType_DoesNotAliasOriginal(t *testing.T) {
	original := internal.AppointmentConfig{TiposAtendimento: []internal.AttendanceType{
		{Procedimento: "a"}, {Procedimento: "b"}, {Procedimento: "c"},
	}}
	cfg := original.Clone()
	require.NoError(t, RemoveAttendanceType(&cfg, 0))
	assert.Equal(t, "a", original.TiposAtendimento[0].Procedimento)
	assert.Equal(t, []internal.AttendanceType{{Procedimento: "b"}, {Procedimento: "c"}}, cfg.TiposAtendimento)
}
