package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StatusResponse acuse simple de una operación (ej. borrado).
type StatusResponse struct {
	Status string `json:"status"`
}
