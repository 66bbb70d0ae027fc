package usecase

const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeStore             = "STORE_ERROR"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

func notFound(message string) *DomainError {
	return &DomainError{Code: CodeNotFound, Message: message}
}

func invalidTransition(message string) *DomainError {
	return &DomainError{Code: CodeInvalidTransition, Message: message}
}

func storeError(message string) *TechnicalError {
	return &TechnicalError{Code: CodeStore, Message: message}
}
