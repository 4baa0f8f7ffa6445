package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse acuse de éxito con mensaje (delete de empresa).
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse acuse de éxito con status (delete de factura).
type StatusResponse struct {
	Status string `json:"status"`
}
