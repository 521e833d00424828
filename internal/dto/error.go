package dto

// ErrorResponse is the envelope of every non-2xx response.
type ErrorResponse struct {
	Code    int    `json:"code" example:"404"`
	Message string `json:"message" example:"Currency 'XYZ' not found"`
}
