package dto

// BaseError is the uniform error envelope.
// Code is machine-oriented (snake_case), Message is short human-readable
// text, Fields carries per-field validation failures.
type BaseError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func NewValidationError(message string, fields []FieldError) BaseError {
	return BaseError{Code: "validation_error", Message: message, Fields: fields}
}

func NewConflictError(message string) BaseError {
	return BaseError{Code: "conflict", Message: message}
}

func NewUnprocessableError(message string) BaseError {
	return BaseError{Code: "unprocessable", Message: message}
}

func NewNotFoundError(message string) BaseError {
	return BaseError{Code: "not_found", Message: message}
}

func NewInternalError(message string) BaseError {
	if message == "" {
		message = "internal server error"
	}
	return BaseError{Code: "internal_error", Message: message}
}
