package dto

// UpdateUserRequest carries a partial user update from the admin surface.
type UpdateUserRequest struct {
	Nombre     *string `json:"nombre"`
	Apellido   *string `json:"apellido"`
	Correo     *string `json:"correo"`
	Contrasena *string `json:"contrasena"`
	Cedula     *string `json:"cedula"`
	Carrera    *string `json:"carrera"`
}

// UserListResponse wraps the admin user listing
type UserListResponse struct {
	Usuarios []*UserResponse `json:"usuarios"`
	Total    int             `json:"total"`
}

// UpdateUserResponse wraps an updated user record
type UpdateUserResponse struct {
	Message string        `json:"message"`
	Usuario *UserResponse `json:"usuario"`
}

// UpdateReservationResponse wraps an updated reservation record
type UpdateReservationResponse struct {
	Message string               `json:"message"`
	Reserva *ReservationResponse `json:"reserva"`
}

// MessageResponse is a bare confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}
