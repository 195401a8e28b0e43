package dto

import (
	"sort"
	"time"

	"github.com/upslabs/reservalab/internal/app/models"
)

// RegisterRequest carries a user or admin registration payload. Fields are
// pointers so an absent key can be reported in the missing-field list.
type RegisterRequest struct {
	Nombre     *string `json:"nombre"`
	Apellido   *string `json:"apellido"`
	Correo     *string `json:"correo"`
	Contrasena *string `json:"contrasena"`
	Cedula     *string `json:"cedula"`
	Carrera    *string `json:"carrera"`
	// Admin must be present and true on the register-admin route.
	Admin *bool `json:"admin,omitempty"`
}

// MissingFields returns the sorted names of required keys absent from the
// payload. withAdmin adds the admin flag to the required set.
func (r *RegisterRequest) MissingFields(withAdmin bool) []string {
	var missing []string
	if r.Nombre == nil {
		missing = append(missing, "nombre")
	}
	if r.Apellido == nil {
		missing = append(missing, "apellido")
	}
	if r.Correo == nil {
		missing = append(missing, "correo")
	}
	if r.Contrasena == nil {
		missing = append(missing, "contrasena")
	}
	if r.Cedula == nil {
		missing = append(missing, "cedula")
	}
	if r.Carrera == nil {
		missing = append(missing, "carrera")
	}
	if withAdmin && r.Admin == nil {
		missing = append(missing, "admin")
	}
	sort.Strings(missing)
	return missing
}

// LoginRequest carries login credentials
type LoginRequest struct {
	Correo     string `json:"correo"`
	Contrasena string `json:"contrasena"`
}

// UserResponse is the public view of a user record: cedula masked, hash
// never echoed.
type UserResponse struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	Apellido  string    `json:"apellido"`
	Correo    string    `json:"correo"`
	Cedula    string    `json:"cedula"`
	Carrera   string    `json:"carrera"`
	CreatedAt time.Time `json:"created_at"`
	Password  string    `json:"password,omitempty"`
}

// NewUserResponse builds the public view of a user
func NewUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Nombre:    u.Nombre,
		Apellido:  u.Apellido,
		Correo:    u.Correo,
		Cedula:    models.MaskCedula(u.Cedula),
		Carrera:   u.Carrera,
		CreatedAt: u.CreatedAt,
	}
}

// NewMaskedUserResponse builds the admin-facing view, which carries the
// masked password placeholder.
func NewMaskedUserResponse(u *models.User) *UserResponse {
	resp := NewUserResponse(u)
	resp.Password = models.MaskedPassword
	return resp
}

// AdminResponse is the public view of an administrator record
type AdminResponse struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	Apellido  string    `json:"apellido"`
	Correo    string    `json:"correo"`
	Cedula    string    `json:"cedula"`
	Carrera   string    `json:"carrera"`
	CreatedAt time.Time `json:"created_at"`
	Password  string    `json:"password"`
	Admin     bool      `json:"admin,omitempty"`
}

// NewAdminResponse builds the public view of an administrator
func NewAdminResponse(a *models.Admin) *AdminResponse {
	return &AdminResponse{
		ID:        a.ID,
		Nombre:    a.Nombre,
		Apellido:  a.Apellido,
		Correo:    a.Correo,
		Cedula:    models.MaskCedula(a.Cedula),
		Carrera:   a.Carrera,
		CreatedAt: a.CreatedAt,
		Password:  models.MaskedPassword,
	}
}

// RegisterUserResponse wraps a successful user registration
type RegisterUserResponse struct {
	Message string        `json:"message"`
	Usuario *UserResponse `json:"usuario"`
}

// RegisterAdminResponse wraps a successful admin registration
type RegisterAdminResponse struct {
	Message       string         `json:"message"`
	Administrador *AdminResponse `json:"administrador"`
}

// LoginUserResponse wraps a successful user login
type LoginUserResponse struct {
	Message string        `json:"message"`
	Token   string        `json:"token"`
	Usuario *UserResponse `json:"usuario"`
}

// LoginAdminResponse wraps a successful admin login
type LoginAdminResponse struct {
	Message       string         `json:"message"`
	Token         string         `json:"token"`
	Administrador *AdminResponse `json:"administrador"`
}
