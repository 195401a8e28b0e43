// Package validation holds the pure per-field validators shared by the
// registration, reservation and admin-update flows.
package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/upslabs/reservalab/internal/pkg/apperrors"
)

// Field limits and formats
const (
	MaxEstudiantes = 35
	FechaFormat    = "2/1/2006"

	PasswordMinLength = 8
	PasswordMaxLength = 12
)

// Institutional email suffixes accepted for every account and reservation
var EmailAllowedDomains = []string{"@est.ups.edu.ec", "@ups.edu.ec"}

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Horario  *regexp.Regexp
	Password *regexp.Regexp
}{
	Horario:  regexp.MustCompile(`^\d{2}:\d{2}\s*-\s*\d{2}:\d{2}$`),
	Password: regexp.MustCompile(`^[A-Za-z0-9]{8,12}$`),
}

// NormalizeCorreo lower-cases and trims an email address.
func NormalizeCorreo(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ValidateCorreo checks the institutional domain. Returns the normalized
// address on success.
func ValidateCorreo(raw string) (string, error) {
	correo := NormalizeCorreo(raw)
	for _, domain := range EmailAllowedDomains {
		if strings.HasSuffix(correo, domain) {
			return correo, nil
		}
	}
	return "", apperrors.NewValidationError("Correo institucional invalido").
		WithDetalle("Debe pertenecer a @est.ups.edu.ec o @ups.edu.ec")
}

// ValidateContrasena enforces 8-12 ASCII letters and digits with at least one
// letter and one digit.
func ValidateContrasena(contrasena string) error {
	if !CompiledPatterns.Password.MatchString(contrasena) {
		return invalidPassword()
	}
	hasLetter := strings.ContainsFunc(contrasena, func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	})
	hasDigit := strings.ContainsFunc(contrasena, func(r rune) bool {
		return r >= '0' && r <= '9'
	})
	if !hasLetter || !hasDigit {
		return invalidPassword()
	}
	return nil
}

func invalidPassword() error {
	return apperrors.NewValidationError("Contrasena invalida").
		WithDetalle("Debe tener entre 8 y 12 caracteres alfanumericos con al menos una letra y un numero")
}

// ValidateHorario checks the HH:MM - HH:MM shape after trimming. Syntax only;
// it does not compare start against end.
func ValidateHorario(raw string) (string, error) {
	horario := strings.TrimSpace(raw)
	if !CompiledPatterns.Horario.MatchString(horario) {
		return "", apperrors.NewValidationError("Formato de horario invalido").
			WithDetalle("Use HH:MM - HH:MM")
	}
	return horario, nil
}

// ValidateFecha parses a d/m/yyyy loan date, tolerating 1- or 2-digit day and
// month.
func ValidateFecha(raw string) (time.Time, error) {
	fecha, err := time.Parse(FechaFormat, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("Fecha de prestamo invalida").
			WithDetalle("Use formato d/m/yyyy")
	}
	return fecha, nil
}

// ValidateEstudiantes enforces 0 < n <= MaxEstudiantes.
func ValidateEstudiantes(n int) error {
	if n <= 0 {
		return apperrors.NewValidationError("El numero de estudiantes debe ser mayor que cero")
	}
	if n > MaxEstudiantes {
		return apperrors.NewValidationError("Numero de estudiantes excede la capacidad").
			WithMaximo(MaxEstudiantes)
	}
	return nil
}
