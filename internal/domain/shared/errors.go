package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
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
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidAmount       = NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	ErrInsufficientBalance = NewDomainError("INSUFFICIENT_BALANCE", "Insufficient balance available")
	ErrAccountBusy         = NewDomainError("ACCOUNT_BUSY", "Account is locked by another operation")
	ErrAccountNotEmpty     = NewDomainError("ACCOUNT_NOT_EMPTY", "Account balance must be zero")
	ErrUnauthorized        = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrStoreMisconfigured  = NewDomainError("STORE_MISCONFIGURED", "Entity store configuration is incomplete")
)
