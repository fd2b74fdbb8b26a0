// Package apierror defines the error envelope every 4xx/5xx response uses.
// Handlers never hand a raw error to the client; whatever happened inside
// (backend round trip failures included) leaves as one of these shapes.
package apierror

// APIError is the canonical error body.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError carries per-field failures from request binding.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validación", Fields: fields}
}
