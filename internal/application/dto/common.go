package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ListResponse envoltorio de listados completos (sin paginación: los datos viven en el dispositivo).
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}
