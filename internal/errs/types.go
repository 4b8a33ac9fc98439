package errs

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

// UnauthenticatedError covers a missing, malformed, or unverifiable
// credential. Callers never learn which.
type UnauthenticatedError struct {
	ErrorMessage
}

// ValidationError is a request-body schema failure.
type ValidationError struct {
	ErrorMessage
}

// NotFoundError is an update that matched zero rows, either because the id
// does not exist or because it belongs to someone else.
type NotFoundError struct {
	ErrorMessage
}

// StoreError is any failure from the backing store; the underlying message is
// carried through untouched.
type StoreError struct {
	ErrorMessage
}

func NewUnauthenticatedError(message string) *UnauthenticatedError {
	return &UnauthenticatedError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewStoreError(message string) *StoreError {
	return &StoreError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}
