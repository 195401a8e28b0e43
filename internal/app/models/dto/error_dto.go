package dto

// ErrorResponse is the wire shape for every failed request: a human-readable
// message plus optional structured detail.
type ErrorResponse struct {
	Message    string   `json:"message"`
	Detalle    string   `json:"detalle,omitempty"`
	Faltantes  []string `json:"faltantes,omitempty"`
	Permitidos []string `json:"permitidos,omitempty"`
	Maximo     int      `json:"maximo,omitempty"`
}

// NewErrorResponse creates an error response with a message only
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Message: message}
}

// WithDetalle attaches a hint to the response
func (e *ErrorResponse) WithDetalle(detalle string) *ErrorResponse {
	e.Detalle = detalle
	return e
}
