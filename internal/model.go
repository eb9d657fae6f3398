package internal

// AttendanceKind is the billable category of an attendance type.
type AttendanceKind string

const (
	AttendanceParticular   AttendanceKind = "Particular"
	AttendanceConvenio     AttendanceKind = "Convênio"
	AttendanceTelemedicina AttendanceKind = "Telemedicina"
)

// AttendanceKinds lists the kinds in the order the editor offers them.
var AttendanceKinds = []AttendanceKind{AttendanceParticular, AttendanceConvenio, AttendanceTelemedicina}

func (k AttendanceKind) Valid() bool {
	for _, known := range AttendanceKinds {
		if k == known {
			return true
		}
	}
	return false
}

type AttendanceType struct {
	Tipo         AttendanceKind `json:"tipo"`
	Procedimento string         `json:"procedimento"`
	Valor        float64        `json:"valor"`
}

// AppointmentConfig is the per-professional appointment setup. Durations are in minutes.
type AppointmentConfig struct {
	DuracaoConsulta         int              `json:"duracao_consulta"`
	PrimeiraConsultaDuracao int              `json:"primeira_consulta_duracao"`
	RetornoDuracao          int              `json:"retorno_duracao"`
	TiposAtendimento        []AttendanceType `json:"tipos_atendimento,omitempty"`
}

// Clone returns a deep copy so editors never mutate a shared slice.
func (c AppointmentConfig) Clone() AppointmentConfig {
	out := c
	if c.TiposAtendimento != nil {
		out.TiposAtendimento = make([]AttendanceType, len(c.TiposAtendimento))
		copy(out.TiposAtendimento, c.TiposAtendimento)
	}
	return out
}

type Professional struct {
	ID                string             `json:"id"`
	NomeExibicao      string             `json:"nome_exibicao"`
	Ativo             bool               `json:"ativo"`
	ConfigAtendimento *AppointmentConfig `json:"config_atendimento,omitempty"`
}

// AppointmentDefaults holds the durations given to professionals that have no
// config_atendimento yet.
type AppointmentDefaults struct {
	DuracaoConsulta         int
	PrimeiraConsultaDuracao int
	RetornoDuracao          int
}

func DefaultAppointmentDefaults() AppointmentDefaults {
	return AppointmentDefaults{DuracaoConsulta: 30, PrimeiraConsultaDuracao: 60, RetornoDuracao: 30}
}

func (d AppointmentDefaults) Config() AppointmentConfig {
	return AppointmentConfig{
		DuracaoConsulta:         d.DuracaoConsulta,
		PrimeiraConsultaDuracao: d.PrimeiraConsultaDuracao,
		RetornoDuracao:          d.RetornoDuracao,
	}
}

// EffectiveConfig returns the professional's configuration, or the defaults when
// the record carries none.
func (p Professional) EffectiveConfig(defaults AppointmentDefaults) AppointmentConfig {
	if p.ConfigAtendimento == nil {
		return defaults.Config()
	}
	return p.ConfigAtendimento.Clone()
}
