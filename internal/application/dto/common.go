package dto

// ErrorResponse cuerpo de error HTTP.
// Redirect indica la ruta a la que el cliente debe navegar cuando el error proviene de un guard.
type ErrorResponse struct {
	Code     string            `json:"code"`
	Message  string            `json:"message"`
	Redirect string            `json:"redirect,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"`
}
