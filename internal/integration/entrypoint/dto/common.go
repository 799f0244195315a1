// Package dto defines data transfer objects for API requests and responses.
package dto

// ErrorResponse is the envelope for every error body. Codigo carries the
// machine-readable error code when one applies.
type ErrorResponse struct {
	Exito   bool   `json:"exito"`
	Mensaje string `json:"mensaje"`
	Codigo  string `json:"codigo,omitempty"`
}

// MessageResponse is the envelope for command-style success responses that
// carry no entity body.
type MessageResponse struct {
	Exito   bool   `json:"exito"`
	Mensaje string `json:"mensaje"`
}

// NewErrorResponse builds an error envelope.
func NewErrorResponse(mensaje, codigo string) ErrorResponse {
	return ErrorResponse{
		Exito:   false,
		Mensaje: mensaje,
		Codigo:  codigo,
	}
}
