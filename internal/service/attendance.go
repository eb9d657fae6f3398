package service

import (
	"fmt"

	"github.com/endoclin/admin/internal"
)

const (
	FieldTipo         = "tipo"
	FieldProcedimento = "procedimento"
	FieldValor        = "valor"
)

// AddAttendanceType appends a blank private attendance.
func AddAttendanceType(cfg *internal.AppointmentConfig) {
	cfg.TiposAtendimento = append(cfg.TiposAtendimento, internal.AttendanceType{
		Tipo:         internal.AttendanceParticular,
		Procedimento: "",
		Valor:        0,
	})
}

func RemoveAttendanceType(cfg *internal.AppointmentConfig, index int) error {
	if index < 0 || index >= len(cfg.TiposAtendimento) {
		return invalid(fmt.Errorf("attendance type %d out of range", index))
	}
	tipos := make([]internal.AttendanceType, 0, len(cfg.TiposAtendimento)-1)
	tipos = append(tipos, cfg.TiposAtendimento[:index]...)
	tipos = append(tipos, cfg.TiposAtendimento[index+1:]...)
	cfg.TiposAtendimento = tipos
	return nil
}

// UpdateAttendanceType sets one field of the entry at index. valor is
// sanitized and parsed; the result is not range checked.
func UpdateAttendanceType(cfg *internal.AppointmentConfig, index int, field, value string) error {
	if index < 0 || index >= len(cfg.TiposAtendimento) {
		return invalid(fmt.Errorf("attendance type %d out of range", index))
	}
	entry := &cfg.TiposAtendimento[index]
	switch field {
	case FieldTipo:
		kind := internal.AttendanceKind(value)
		if !kind.Valid() {
			return invalid(fmt.Errorf("unknown attendance kind %q", value))
		}
		entry.Tipo = kind
	case FieldProcedimento:
		entry.Procedimento = value
	case FieldValor:
		entry.Valor = ParseCurrency(value)
	default:
		return invalid(fmt.Errorf("unknown field %q", field))
	}
	return nil
}
