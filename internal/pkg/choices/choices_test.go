package choices

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upslabs/reservalab/internal/pkg/apperrors"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "estudiante", "ESTUDIANTE"},
		{"surrounding whitespace", "  Docente  ", "DOCENTE"},
		{"accented", "Computación", "COMPUTACION"},
		{"mixed accents and case", "  electrónica ", "ELECTRONICA"},
		{"already canonical", "CECASIS", "CECASIS"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, input := range []string{"Computación", " laboratorio ihm ", "1ro", "Maestría"} {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestValidateResolvesDisplayValue(t *testing.T) {
	tests := []struct {
		input string
		table Table
		want  string
	}{
		{"estudiante", Cargo, "Estudiante"},
		{"  DOCENTE ", Cargo, "Docente"},
		{"computación", Carrera, "Computacion"},
		{"laboratorio ihm", Laboratorio, "Laboratorio IHM"},
		{"kit arduino", Equipo, "Kit Arduino"},
		{"si", Discapacidad, "SI"},
		{"1ro", Nivel, "1ro"},
		{"10MO", Nivel, "10mo"},
	}

	for _, tt := range tests {
		got, err := Validate(tt.input, tt.table, "campo")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestValidateRejectionListsAllowedValues(t *testing.T) {
	_, err := Validate("presidente", Cargo, "cargo")
	require.Error(t, err)
	require.True(t, errors.Is(err, apperrors.ErrValidation))

	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Valor no permitido para cargo", verr.Message)
	assert.Equal(t, []string{"Docente", "Egresado", "Estudiante"}, verr.Permitidos)
}

func TestValidateUnknownLaboratory(t *testing.T) {
	_, err := Validate("gimnasio", Laboratorio, "laboratorio")
	require.Error(t, err)

	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Permitidos, len(Laboratorio))
}

func TestAllowedIsSorted(t *testing.T) {
	allowed := Equipo.Allowed()
	require.Len(t, allowed, len(Equipo))
	for i := 1; i < len(allowed); i++ {
		assert.LessOrEqual(t, allowed[i-1], allowed[i])
	}
}
