package storage

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/endoclin/admin/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRemoteRepo(t *testing.T, handler http.HandlerFunc) *RemoteProfessionalRepository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewRemoteProfessionalRepository(srv.URL+"/api", srv.Client(), internal.NopLogger())
}

func TestRemoteProfessionalRepository_ListActive(t *testing.T) {
	repo := newRemoteRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/profissionais", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("ativo"))
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[
			{"id":"1","nome_exibicao":"Dra. Ana","ativo":true,"config_atendimento":{"duracao_consulta":40,"primeira_consulta_duracao":80,"retorno_duracao":20}},
			{"id":"2","nome_exibicao":"Dr. Beto","ativo":true}
		]`)
	})

	ctx := ContextWithToken(context.Background(), "tok-1")
	profs, err := repo.ListProfessionals(ctx, ActiveOnly())
	require.NoError(t, err)
	require.Len(t, profs, 2)
	require.NotNil(t, profs[0].ConfigAtendimento)
	assert.Equal(t, 40, profs[0].ConfigAtendimento.DuracaoConsulta)
	assert.Nil(t, profs[1].ConfigAtendimento)
}

func TestRemoteProfessionalRepository_DataEnvelope(t *testing.T) {
	repo := newRemoteRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		io.WriteString(w, `{"data":[{"id":"9","nome_exibicao":"Dr. Caio","ativo":true}]}`)
	})

	profs, err := repo.ListProfessionals(context.Background(), ProfessionalFilter{})
	require.NoError(t, err)
	require.Len(t, profs, 1)
	assert.Equal(t, "Dr. Caio", profs[0].NomeExibicao)
}

func TestRemoteProfessionalRepository_ErrorStatus(t *testing.T) {
	repo := newRemoteRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := repo.ListProfessionals(context.Background(), ActiveOnly())
	assert.Error(t, err)
}

func TestRemoteProfessionalRepository_GetNotFound(t *testing.T) {
	repo := newRemoteRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/profissionais/42", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := repo.GetProfessional(context.Background(), "42")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoteProfessionalRepository_UpdateConfig(t *testing.T) {
	var got map[string]internal.AppointmentConfig
	repo := newRemoteRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/profissionais/7", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	})

	cfg := internal.AppointmentConfig{
		DuracaoConsulta:         30,
		PrimeiraConsultaDuracao: 60,
		RetornoDuracao:          30,
		TiposAtendimento: []internal.AttendanceType{
			{Tipo: internal.AttendanceConvenio, Procedimento: "Consulta", Valor: 150},
		},
	}
	require.NoError(t, repo.UpdateAppointmentConfig(context.Background(), "7", cfg))
	assert.Equal(t, cfg, got["config_atendimento"])
}
