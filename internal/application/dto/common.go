package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ExistsResponse respuesta de los endpoints de existencia.
type ExistsResponse struct {
	Exists bool `json:"exists"`
}
