package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrAdminNotFound       = errors.New("administrador no encontrado")
	ErrReservationNotFound = errors.New("reserva no encontrada")

	// Authentication errors
	ErrInvalidCredentials = errors.New("credenciales invalidas")
	ErrInvalidIdentity    = errors.New("identidad de usuario invalida")
	ErrTokenExpired       = errors.New("token expirado")
	ErrTokenInvalid       = errors.New("token invalido")
	ErrTokenMissing       = errors.New("token requerido")
	ErrTokenRevoked       = errors.New("token revocado")

	// Authorization errors
	ErrAdminOnly = errors.New("acceso solo para administradores")

	// Conflict errors
	ErrEmailTaken      = errors.New("el correo ya esta registrado")
	ErrAdminEmailTaken = errors.New("el correo ya esta registrado en administradores")
	ErrScheduleTaken   = errors.New("horario ya reservado")

	// Validation errors
	ErrValidation = errors.New("validacion fallida")
)

// ValidationError carries the user-facing diagnostics for a rejected payload:
// the missing-field list, the allowed-values list or the range maximum,
// depending on which rule failed.
type ValidationError struct {
	Message    string
	Detalle    string
	Faltantes  []string
	Permitidos []string
	Maximo     int
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap lets callers match any validation failure with errors.Is(err, ErrValidation)
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a ValidationError with a message only
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// WithDetalle attaches a human-readable hint
func (e *ValidationError) WithDetalle(detalle string) *ValidationError {
	e.Detalle = detalle
	return e
}

// WithFaltantes attaches the sorted list of missing required fields
func (e *ValidationError) WithFaltantes(fields []string) *ValidationError {
	e.Faltantes = fields
	return e
}

// WithPermitidos attaches the sorted list of accepted display values
func (e *ValidationError) WithPermitidos(values []string) *ValidationError {
	e.Permitidos = values
	return e
}

// WithMaximo attaches the upper bound that was exceeded
func (e *ValidationError) WithMaximo(max int) *ValidationError {
	e.Maximo = max
	return e
}

// Is returns whether target matches err or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
