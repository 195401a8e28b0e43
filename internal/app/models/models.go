// Package models defines the database-backed entities.
package models

import (
	"strings"
	"time"
)

// MaskedPassword is what admin-facing user records echo instead of a hash.
const MaskedPassword = "********"

// MaskCedula hides the middle of a national-id string: the first 2 and last 1
// characters stay visible. Strings of 3 characters or fewer pass through.
func MaskCedula(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if len(cleaned) <= 3 {
		return cleaned
	}
	return cleaned[:2] + strings.Repeat("X", len(cleaned)-3) + cleaned[len(cleaned)-1:]
}

// User is a student/staff account that owns laboratory reservations.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Nombre       string    `json:"nombre" db:"nombre"`
	Apellido     string    `json:"apellido" db:"apellido"`
	Correo       string    `json:"correo" db:"correo"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Cedula       string    `json:"-" db:"cedula"`
	Carrera      string    `json:"carrera" db:"carrera"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Admin has the same shape as User but lives in a disjoint table and logs in
// through its own flow.
type Admin struct {
	ID           int64     `json:"id" db:"id"`
	Nombre       string    `json:"nombre" db:"nombre"`
	Apellido     string    `json:"apellido" db:"apellido"`
	Correo       string    `json:"correo" db:"correo"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Cedula       string    `json:"-" db:"cedula"`
	Carrera      string    `json:"carrera" db:"carrera"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// RevokedToken records a jti invalidated by logout. Append-only.
type RevokedToken struct {
	ID        int64     `json:"id" db:"id"`
	JTI       string    `json:"jti" db:"jti"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// LaboratoryRequest is a reservation of a laboratory for a date and time
// window. The (laboratorio, fecha_prestamo, horario_uso) triple is unique
// across all rows, enforced by the uq_lab_schedule constraint.
type LaboratoryRequest struct {
	ID                     int64     `json:"id" db:"id"`
	UserID                 int64     `json:"usuario_id" db:"user_id"`
	CorreoInstitucional    string    `json:"correo_institucional" db:"correo_institucional"`
	NombresCompletos       string    `json:"nombres_completos" db:"nombres_completos"`
	Cargo                  string    `json:"cargo" db:"cargo"`
	Carrera                string    `json:"carrera" db:"carrera"`
	Nivel                  string    `json:"nivel" db:"nivel"`
	Discapacidad           string    `json:"discapacidad" db:"discapacidad"`
	MateriaMotivo          string    `json:"materia_motivo" db:"materia_motivo"`
	NumeroEstudiantes      int       `json:"numero_estudiantes" db:"numero_estudiantes"`
	FechaPrestamo          time.Time `json:"-" db:"fecha_prestamo"`
	HorarioUso             string    `json:"horario_uso" db:"horario_uso"`
	DescripcionActividades string    `json:"descripcion_actividades" db:"descripcion_actividades"`
	Laboratorio            string    `json:"laboratorio" db:"laboratorio"`
	Equipo                 string    `json:"equipo" db:"equipo"`
	CreatedAt              time.Time `json:"created_at" db:"created_at"`
}
