package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeMissingField       = "MISSING_FIELD"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeSessionNotFound    = "SESSION_NOT_FOUND"
	ErrCodeInvalidLanguage    = "INVALID_LANGUAGE"
	ErrCodeCatalogUnavailable = "CATALOG_UNAVAILABLE"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrSessionNotFound    = NewDomainError(ErrCodeSessionNotFound, "Quote-request session not found")
	ErrInvalidLanguage    = NewDomainError(ErrCodeInvalidLanguage, "Language must be 'fa' or 'en'")
	ErrCatalogUnavailable = NewDomainError(ErrCodeCatalogUnavailable, "Catalogue data source is unavailable")
)
