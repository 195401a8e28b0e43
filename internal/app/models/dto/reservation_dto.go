package dto

import (
	"sort"
	"time"

	"github.com/upslabs/reservalab/internal/app/models"
)

// CreateReservationRequest carries a reservation payload. Pointer fields let
// the presence check distinguish an absent key from an empty value.
type CreateReservationRequest struct {
	CorreoInstitucional    *string `json:"correo_institucional"`
	NombresCompletos       *string `json:"nombres_completos"`
	Cargo                  *string `json:"cargo"`
	Carrera                *string `json:"carrera"`
	Nivel                  *string `json:"nivel"`
	Discapacidad           *string `json:"discapacidad"`
	MateriaMotivo          *string `json:"materia_motivo"`
	NumeroEstudiantes      *int    `json:"numero_estudiantes"`
	FechaPrestamo          *string `json:"fecha_prestamo"`
	HorarioUso             *string `json:"horario_uso"`
	DescripcionActividades *string `json:"descripcion_actividades"`
	Laboratorio            *string `json:"laboratorio"`
	Equipo                 *string `json:"equipo"`
}

// MissingFields returns the sorted names of required keys absent from the
// payload.
func (r *CreateReservationRequest) MissingFields() []string {
	var missing []string
	for name, present := range map[string]bool{
		"correo_institucional":    r.CorreoInstitucional != nil,
		"nombres_completos":       r.NombresCompletos != nil,
		"cargo":                   r.Cargo != nil,
		"carrera":                 r.Carrera != nil,
		"nivel":                   r.Nivel != nil,
		"discapacidad":            r.Discapacidad != nil,
		"materia_motivo":          r.MateriaMotivo != nil,
		"numero_estudiantes":      r.NumeroEstudiantes != nil,
		"fecha_prestamo":          r.FechaPrestamo != nil,
		"horario_uso":             r.HorarioUso != nil,
		"descripcion_actividades": r.DescripcionActividades != nil,
		"laboratorio":             r.Laboratorio != nil,
		"equipo":                  r.Equipo != nil,
	} {
		if !present {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// UpdateReservationRequest carries a partial reservation update: only the
// fields present are validated and applied.
type UpdateReservationRequest struct {
	CorreoInstitucional    *string `json:"correo_institucional"`
	NombresCompletos       *string `json:"nombres_completos"`
	Cargo                  *string `json:"cargo"`
	Carrera                *string `json:"carrera"`
	Nivel                  *string `json:"nivel"`
	Discapacidad           *string `json:"discapacidad"`
	MateriaMotivo          *string `json:"materia_motivo"`
	NumeroEstudiantes      *int    `json:"numero_estudiantes"`
	FechaPrestamo          *string `json:"fecha_prestamo"`
	HorarioUso             *string `json:"horario_uso"`
	DescripcionActividades *string `json:"descripcion_actividades"`
	Laboratorio            *string `json:"laboratorio"`
	Equipo                 *string `json:"equipo"`
}

// ReservationResponse is the wire view of a reservation; the loan date is
// rendered as an ISO date.
type ReservationResponse struct {
	ID                     int64     `json:"id"`
	UsuarioID              int64     `json:"usuario_id"`
	CorreoInstitucional    string    `json:"correo_institucional"`
	NombresCompletos       string    `json:"nombres_completos"`
	Cargo                  string    `json:"cargo"`
	Carrera                string    `json:"carrera"`
	Nivel                  string    `json:"nivel"`
	Discapacidad           string    `json:"discapacidad"`
	MateriaMotivo          string    `json:"materia_motivo"`
	NumeroEstudiantes      int       `json:"numero_estudiantes"`
	FechaPrestamo          string    `json:"fecha_prestamo"`
	HorarioUso             string    `json:"horario_uso"`
	DescripcionActividades string    `json:"descripcion_actividades"`
	Laboratorio            string    `json:"laboratorio"`
	Equipo                 string    `json:"equipo"`
	CreatedAt              time.Time `json:"created_at"`
}

// NewReservationResponse builds the wire view of a reservation
func NewReservationResponse(r *models.LaboratoryRequest) *ReservationResponse {
	return &ReservationResponse{
		ID:                     r.ID,
		UsuarioID:              r.UserID,
		CorreoInstitucional:    r.CorreoInstitucional,
		NombresCompletos:       r.NombresCompletos,
		Cargo:                  r.Cargo,
		Carrera:                r.Carrera,
		Nivel:                  r.Nivel,
		Discapacidad:           r.Discapacidad,
		MateriaMotivo:          r.MateriaMotivo,
		NumeroEstudiantes:      r.NumeroEstudiantes,
		FechaPrestamo:          r.FechaPrestamo.Format("2006-01-02"),
		HorarioUso:             r.HorarioUso,
		DescripcionActividades: r.DescripcionActividades,
		Laboratorio:            r.Laboratorio,
		Equipo:                 r.Equipo,
		CreatedAt:              r.CreatedAt,
	}
}

// NewReservationResponses maps a result set to its wire view
func NewReservationResponses(records []*models.LaboratoryRequest) []*ReservationResponse {
	responses := make([]*ReservationResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, NewReservationResponse(r))
	}
	return responses
}

// CreateReservationResponse wraps a persisted reservation
type CreateReservationResponse struct {
	Message   string               `json:"message"`
	Solicitud *ReservationResponse `json:"solicitud"`
}

// ReservationListResponse wraps a reservation listing
type ReservationListResponse struct {
	Reservas []*ReservationResponse `json:"reservas"`
	Total    int                    `json:"total"`
}
