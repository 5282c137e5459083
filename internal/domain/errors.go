package domain

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// UnauthorizedErr represents a request without a valid caller identity.
type UnauthorizedErr struct {
	domainErr
}

// NewUnauthorizedErr creates a new UnauthorizedErr with the given message.
func NewUnauthorizedErr(message string) *UnauthorizedErr {
	return &UnauthorizedErr{
		domainErr: domainErr{message: message},
	}
}

// ForbiddenErr represents an authenticated caller acting outside of its permissions.
type ForbiddenErr struct {
	domainErr
}

// NewForbiddenErr creates a new ForbiddenErr with the given message.
func NewForbiddenErr(message string) *ForbiddenErr {
	return &ForbiddenErr{
		domainErr: domainErr{message: message},
	}
}

// BackendUnavailableErr represents a failed call to the inference backend.
type BackendUnavailableErr struct {
	domainErr
	cause error
}

// NewBackendUnavailableErr creates a new BackendUnavailableErr wrapping the transport cause.
func NewBackendUnavailableErr(message string, cause error) *BackendUnavailableErr {
	return &BackendUnavailableErr{
		domainErr: domainErr{message: message},
		cause:     cause,
	}
}

// Unwrap returns the underlying transport error.
func (e *BackendUnavailableErr) Unwrap() error {
	return e.cause
}
